/*
Package ports defines the driven ports (interfaces) of the traits library.

These interfaces decouple the catalog from where trait definitions come from,
allowing the same catalog code to work with files, in-memory definitions or
builders.

# Key Interfaces

  - SpecLoader: Responsible for producing the trait specs of a catalog.
*/
package ports
