// Package file loads trait catalogs from YAML or JSON files.
package file
