package trait

import "math/rand/v2"

type options struct {
	src rand.Source
}

// Option configures a sampler at construction time.
type Option func(*options)

// WithSource sets the random source used for draws.
// A nil source falls back to the global math/rand/v2 generator.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
