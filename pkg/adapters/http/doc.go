// Package http exposes a trait catalog over HTTP using chi.
package http
