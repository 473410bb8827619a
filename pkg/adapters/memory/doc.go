// Package memory provides an in-memory trait spec source, mostly for tests and embedding.
package memory
