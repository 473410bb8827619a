/*
Package dsl provides a Go DSL for programmatically constructing trait catalogs.

It lets population generators define traits with a fluent builder instead of
relying on external YAML or JSON files, which is handy for tests and for
catalogs computed at runtime.

Example usage:

	b := dsl.New()
	b.Add("susceptibility").Gamma(1.0, 0.5)
	b.Add("infectivity").Constant(1.0)

	// The result is a ports.SpecLoader
	loader, err := b.Build()
	if err != nil {
		return err
	}
	cat, err := traits.New(traits.WithLoader(loader))
*/
package dsl
