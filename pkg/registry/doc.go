// Package registry keeps the traits of a catalog addressable by name.
package registry
