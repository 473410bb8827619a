package memory

import (
	"fmt"

	"github.com/aretw0/traits/pkg/domain"
	"github.com/aretw0/traits/pkg/trait"
)

// Loader implements ports.SpecLoader using an in-memory list.
type Loader struct {
	specs []domain.Spec
}

// NewFromSpecs creates a Loader from domain specs, keeping their order.
func NewFromSpecs(specs ...domain.Spec) (*Loader, error) {
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: spec missing name", domain.ErrInvalidParameter)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateTrait, s.Name)
		}
		seen[s.Name] = true
	}
	return &Loader{specs: append([]domain.Spec(nil), specs...)}, nil
}

// NewLoader creates a Loader from loosely typed definitions (e.g. decoded JSON
// or frontmatter), in the given order.
func NewLoader(raw ...map[string]any) (*Loader, error) {
	specs := make([]domain.Spec, 0, len(raw))
	for i, r := range raw {
		s, err := trait.DecodeSpec(r)
		if err != nil {
			return nil, fmt.Errorf("trait #%d: %w", i+1, err)
		}
		specs = append(specs, s)
	}
	return NewFromSpecs(specs...)
}

// LoadSpecs returns a copy of the stored specs.
func (l *Loader) LoadSpecs() ([]domain.Spec, error) {
	return append([]domain.Spec{}, l.specs...), nil
}
