package domain

import "fmt"

// Trait is a named per-individual attribute drawn from a distribution,
// conditioned on household occupancy.
type Trait interface {
	fmt.Stringer

	// Name returns the trait name used for lookup and labeling.
	Name() string

	// Kind reports the distribution family.
	Kind() Kind

	// Sample returns a new slice of the same length as occupancy.
	// Slots where occupancy is zero stay zero; every other slot receives an
	// independent draw. The magnitude of an occupied slot is ignored.
	// The input slice is never modified.
	Sample(occupancy []float64) ([]float64, error)
}
