/*
Package observability provides tools for monitoring trait sampling.

It exposes Prometheus collectors for sampling activity and a decorator that
records them (and structured logs) around any domain.Trait without changing
its results.
*/
package observability
