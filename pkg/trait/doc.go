/*
Package trait implements the trait samplers: Constant and Gamma.

Both satisfy domain.Trait. A sampler is built once with fixed parameters and can
be sampled any number of times; each call is independent and only consumes
randomness from its source.

	susceptibility, err := trait.NewGamma("susceptibility", 1.0, 0.25)
	if err != nil {
		return err
	}
	values, err := susceptibility.Sample([]float64{1, 1, 0, 0})

# Randomness

By default draws come from the process-wide math/rand/v2 generator, which cannot
be seeded. Pass WithSource to make a sampler reproducible. A rand.Source shared
by samplers running on different goroutines must be safe for concurrent use
(see rng.Locked).
*/
package trait
