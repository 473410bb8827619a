/*
Package domain contains the core types shared by every trait sampler.

It is kept free of I/O and of any particular random source so that adapters
(files, HTTP, metrics) and samplers can depend on it without depending on each other.

# Key Entities

  - Trait: the sampling capability. Takes an occupancy array, returns per-slot values.
  - Kind: the distribution family (constant, gamma).
  - Spec: the serializable form of a trait used by catalog files.
*/
package domain
