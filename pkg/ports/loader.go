package ports

import "github.com/aretw0/traits/pkg/domain"

// SpecLoader defines how the catalog retrieves trait definitions.
// This allows the source (file, memory, builder) to be decoupled.
type SpecLoader interface {
	// LoadSpecs returns the trait specs in a stable order.
	// Names are expected to be non-empty and unique.
	LoadSpecs() ([]domain.Spec, error)
}
