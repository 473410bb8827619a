package traits

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path/filepath"

	"github.com/aretw0/traits/internal/logging"
	"github.com/aretw0/traits/pkg/adapters/file"
	"github.com/aretw0/traits/pkg/domain"
	"github.com/aretw0/traits/pkg/observability"
	"github.com/aretw0/traits/pkg/ports"
	"github.com/aretw0/traits/pkg/registry"
	"github.com/aretw0/traits/pkg/trait"
)

// Catalog is the high-level entry point of the library.
// It holds a set of named traits and samples them on demand.
type Catalog struct {
	registry *registry.Registry
	loader   ports.SpecLoader
	src      rand.Source
	metrics  *observability.Metrics
	logger   *slog.Logger
	specs    []domain.Spec
	traits   []domain.Trait
	name     string
}

// Option defines a functional option for configuring the Catalog.
type Option func(*Catalog)

// WithName labels the catalog in logs.
func WithName(name string) Option {
	return func(c *Catalog) {
		c.name = name
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithSource sets the random source used by every stochastic trait built from specs.
// The source must be safe for concurrent use if the catalog is sampled from several goroutines.
func WithSource(src rand.Source) Option {
	return func(c *Catalog) {
		c.src = src
	}
}

// WithMetrics records sampling activity into m.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Catalog) {
		c.metrics = m
	}
}

// WithLoader reads trait specs from l when the catalog is built.
func WithLoader(l ports.SpecLoader) Option {
	return func(c *Catalog) {
		c.loader = l
	}
}

// WithSpecs adds traits described by specs.
func WithSpecs(specs ...domain.Spec) Option {
	return func(c *Catalog) {
		c.specs = append(c.specs, specs...)
	}
}

// WithTraits adds already constructed traits.
func WithTraits(traits ...domain.Trait) Option {
	return func(c *Catalog) {
		c.traits = append(c.traits, traits...)
	}
}

// New builds a catalog from the traits given as options.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{registry: registry.NewRegistry()}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	if c.name != "" {
		c.logger = c.logger.With("catalog", c.name)
	}

	if c.loader != nil {
		loaded, err := c.loader.LoadSpecs()
		if err != nil {
			return nil, fmt.Errorf("failed to load trait specs: %w", err)
		}
		c.specs = append(loaded, c.specs...)
	}

	for _, spec := range c.specs {
		t, err := trait.FromSpec(spec, trait.WithSource(c.src))
		if err != nil {
			return nil, err
		}
		c.traits = append(c.traits, t)
	}

	for _, t := range c.traits {
		if err := c.registry.Register(observability.Instrument(t, c.metrics, c.logger)); err != nil {
			return nil, err
		}
		c.logger.Debug("trait registered", "trait", t.Name(), "kind", t.Kind())
	}

	c.logger.Info("catalog ready", "traits", c.registry.Len())
	return c, nil
}

// Load reads a catalog file (YAML, or JSON by extension) and builds a catalog from it.
// A missing file yields an empty catalog. Options may add further traits.
func Load(path string, opts ...Option) (*Catalog, error) {
	all := append([]Option{WithLoader(file.NewLoader(path)), WithName(filepath.Base(path))}, opts...)
	cat, err := New(all...)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Sample draws values of the named trait for one occupancy array.
func (c *Catalog) Sample(name string, occupancy []float64) ([]float64, error) {
	return c.registry.Sample(name, occupancy)
}

// SampleAny is Sample for loosely typed input such as decoded JSON.
// Input that is not an array of non-negative numbers fails with domain.ErrInvalidOccupancy.
func (c *Catalog) SampleAny(name string, input any) ([]float64, error) {
	t, err := c.registry.Get(name)
	if err != nil {
		return nil, err
	}
	occ, err := trait.Occupancy(input)
	if err != nil {
		return nil, err
	}
	return t.Sample(occ)
}

// Trait returns the named trait.
func (c *Catalog) Trait(name string) (domain.Trait, error) {
	return c.registry.Get(name)
}

// Describe returns the human-readable description of the named trait.
func (c *Catalog) Describe(name string) (string, error) {
	t, err := c.registry.Get(name)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// Name returns the catalog label set by WithName, or the file name for Load.
func (c *Catalog) Name() string {
	return c.name
}

// Names returns the trait names in sorted order.
func (c *Catalog) Names() []string {
	return c.registry.Names()
}

// Specs returns the specs of every trait whose parameters are known, in name order.
func (c *Catalog) Specs() []domain.Spec {
	names := c.registry.Names()
	specs := make([]domain.Spec, 0, len(names))
	for _, name := range names {
		t, err := c.registry.Get(name)
		if err != nil {
			continue
		}
		if spec, ok := trait.SpecOf(t); ok {
			specs = append(specs, spec)
		}
	}
	return specs
}
