package dsl

import (
	"fmt"

	"github.com/aretw0/traits/pkg/adapters/memory"
	"github.com/aretw0/traits/pkg/domain"
)

// Builder manages the catalog construction.
type Builder struct {
	order  []string
	traits map[string]*TraitBuilder
}

// New creates a new catalog builder.
func New() *Builder {
	return &Builder{
		traits: make(map[string]*TraitBuilder),
	}
}

// Add creates a new trait in the catalog.
// If the trait already exists, it returns the existing builder.
func (b *Builder) Add(name string) *TraitBuilder {
	if tb, ok := b.traits[name]; ok {
		return tb
	}
	tb := &TraitBuilder{
		spec: domain.Spec{
			Name:         name,
			Distribution: domain.KindConstant,
		},
	}
	b.traits[name] = tb
	b.order = append(b.order, name)
	return tb
}

// Build compiles the catalog into a memory Loader, keeping insertion order.
func (b *Builder) Build() (*memory.Loader, error) {
	specs := make([]domain.Spec, 0, len(b.order))
	for _, name := range b.order {
		specs = append(specs, b.traits[name].spec)
	}

	loader, err := memory.NewFromSpecs(specs...)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return loader, nil
}
