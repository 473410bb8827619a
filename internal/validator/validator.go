package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/traits/pkg/domain"
	"github.com/aretw0/traits/pkg/ports"
	"github.com/aretw0/traits/pkg/trait"
)

// Error lists every problem found in a catalog.
type Error struct {
	Problems []error
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("found %d errors:\n- %s", len(e.Problems), strings.Join(msgs, "\n- "))
}

// Unwrap exposes the individual problems to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	return e.Problems
}

// RawLoader is implemented by loaders that can return their specs before any
// name checks, so that every name problem is reported alongside the others.
type RawLoader interface {
	RawSpecs() ([]domain.Spec, error)
}

// ValidateCatalog checks every spec from loader instead of stopping at the
// first bad one: names, distributions and parameters.
func ValidateCatalog(loader ports.SpecLoader) error {
	load := loader.LoadSpecs
	if raw, ok := loader.(RawLoader); ok {
		load = raw.RawSpecs
	}
	specs, err := load()
	if err != nil {
		return fmt.Errorf("failed to load trait specs: %w", err)
	}
	return ValidateSpecs(specs)
}

// ValidateSpecs is ValidateCatalog for specs already in memory.
func ValidateSpecs(specs []domain.Spec) error {
	var problems []error
	seen := make(map[string]bool, len(specs))

	for i, spec := range specs {
		if spec.Name != "" {
			if seen[spec.Name] {
				problems = append(problems, fmt.Errorf("trait #%d: %w: %s", i+1, domain.ErrDuplicateTrait, spec.Name))
			}
			seen[spec.Name] = true
		}

		if _, err := trait.FromSpec(spec); err != nil {
			problems = append(problems, fmt.Errorf("trait #%d: %w", i+1, err))
		}
	}

	if len(problems) > 0 {
		return &Error{Problems: problems}
	}
	return nil
}
