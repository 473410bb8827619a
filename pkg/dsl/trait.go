package dsl

import "github.com/aretw0/traits/pkg/domain"

// TraitBuilder provides a fluent API for configuring a trait.
// A trait with no distribution set is a constant trait with the default value.
type TraitBuilder struct {
	spec domain.Spec
}

// Constant makes the trait assign value to every occupant.
func (t *TraitBuilder) Constant(value float64) *TraitBuilder {
	t.spec.Distribution = domain.KindConstant
	t.spec.Value = &value
	t.spec.Mean, t.spec.Variance = 0, 0
	return t
}

// Gamma makes the trait gamma distributed with the given mean and variance.
func (t *TraitBuilder) Gamma(mean, variance float64) *TraitBuilder {
	t.spec.Distribution = domain.KindGamma
	t.spec.Value = nil
	t.spec.Mean = mean
	t.spec.Variance = variance
	return t
}

// Spec returns the spec built so far.
func (t *TraitBuilder) Spec() domain.Spec {
	return t.spec
}
