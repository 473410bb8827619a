package trait

import (
	"fmt"

	"github.com/aretw0/traits/pkg/domain"
)

// Constant assigns the same value to every occupied slot.
type Constant struct {
	name  string
	value float64
}

var _ domain.Trait = (*Constant)(nil)

// NewConstant creates a constant trait. The value must be finite and non-negative.
func NewConstant(name string, value float64) (*Constant, error) {
	if err := checkParam("value", value); err != nil {
		return nil, fmt.Errorf("constant trait %q: %w", name, err)
	}
	return &Constant{name: name, value: value}, nil
}

func (c *Constant) Name() string      { return c.name }
func (c *Constant) Kind() domain.Kind { return domain.KindConstant }

// Value returns the configured value.
func (c *Constant) Value() float64 { return c.value }

// Sample sets every occupied slot to the configured value.
func (c *Constant) Sample(occupancy []float64) ([]float64, error) {
	if err := ValidateOccupancy(occupancy); err != nil {
		return nil, err
	}
	return fill(occupancy, func() float64 { return c.value }), nil
}

func (c *Constant) String() string {
	return fmt.Sprintf("Constant trait named %s with value %.2f", c.name, c.value)
}
