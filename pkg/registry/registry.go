package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/traits/pkg/domain"
)

// Registry manages the available traits by name.
// It is safe for concurrent use; the traits themselves are immutable.
type Registry struct {
	mu     sync.RWMutex
	traits map[string]domain.Trait
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		traits: make(map[string]domain.Trait),
	}
}

// Register adds a trait to the registry.
// Names must be non-empty and unique.
func (r *Registry) Register(t domain.Trait) error {
	name := t.Name()
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: trait name is required", domain.ErrInvalidParameter)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.traits[name]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateTrait, name)
	}
	r.traits[name] = t
	return nil
}

// Get looks up a trait by name.
func (r *Registry) Get(name string) (domain.Trait, error) {
	r.mu.RLock()
	t, ok := r.traits[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTraitNotFound, name)
	}
	return t, nil
}

// Sample looks up a trait by name and samples it.
func (r *Registry) Sample(name string, occupancy []float64) ([]float64, error) {
	t, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return t.Sample(occupancy)
}

// Names returns the registered trait names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.traits))
	for name := range r.traits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered traits.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.traits)
}
