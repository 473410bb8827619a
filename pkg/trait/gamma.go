package trait

import (
	"fmt"
	"math"

	"github.com/aretw0/traits/pkg/domain"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gamma draws occupied slots from a gamma distribution whose mean and variance
// match the configured values (method of moments):
//
//	shape k = mean² / variance
//	scale θ = variance / mean
//
// A zero variance degenerates to a constant trait at the mean.
type Gamma struct {
	name     string
	mean     float64
	variance float64
	dist     distuv.Gamma
}

var _ domain.Trait = (*Gamma)(nil)

// NewGamma creates a gamma trait.
//
// Both mean and variance must be finite and non-negative (domain.ErrInvalidParameter).
// A zero mean with a positive variance has no gamma distribution and fails with
// domain.ErrDomain, as do parameters whose shape or rate fall outside (0, +Inf).
func NewGamma(name string, mean, variance float64, opts ...Option) (*Gamma, error) {
	if err := checkParam("mean", mean); err != nil {
		return nil, fmt.Errorf("gamma trait %q: %w", name, err)
	}
	if err := checkParam("variance", variance); err != nil {
		return nil, fmt.Errorf("gamma trait %q: %w", name, err)
	}
	if mean == 0 && variance > 0 {
		return nil, fmt.Errorf("gamma trait %q: %w: shape mean²/variance needs a positive mean, got mean=0 variance=%v",
			name, domain.ErrDomain, variance)
	}

	o := applyOptions(opts)
	g := &Gamma{name: name, mean: mean, variance: variance}
	if variance > 0 {
		// distuv uses the rate parameterization: Beta = 1/θ = mean/variance.
		alpha, beta := mean*mean/variance, mean/variance
		if !positiveFinite(alpha) || !positiveFinite(beta) {
			return nil, fmt.Errorf("gamma trait %q: %w: mean=%v variance=%v give shape=%v rate=%v",
				name, domain.ErrDomain, mean, variance, alpha, beta)
		}
		g.dist = distuv.Gamma{
			Alpha: alpha,
			Beta:  beta,
			Src:   o.src,
		}
	}
	return g, nil
}

func (g *Gamma) Name() string      { return g.name }
func (g *Gamma) Kind() domain.Kind { return domain.KindGamma }

// Mean returns the configured mean.
func (g *Gamma) Mean() float64 { return g.mean }

// Variance returns the configured variance.
func (g *Gamma) Variance() float64 { return g.variance }

// Shape returns k = mean²/variance, or 0 for the degenerate case.
func (g *Gamma) Shape() float64 { return g.dist.Alpha }

// Scale returns θ = variance/mean, or 0 for the degenerate case.
func (g *Gamma) Scale() float64 {
	if g.variance == 0 {
		return 0
	}
	return g.variance / g.mean
}

// Sample draws every occupied slot independently. Empty slots stay zero and
// consume no randomness.
func (g *Gamma) Sample(occupancy []float64) ([]float64, error) {
	if err := ValidateOccupancy(occupancy); err != nil {
		return nil, err
	}
	if g.variance == 0 {
		return fill(occupancy, func() float64 { return g.mean }), nil
	}
	return fill(occupancy, g.dist.Rand), nil
}

func (g *Gamma) String() string {
	return fmt.Sprintf("Gamma distributed trait named %s with mean %.2f and variance %.2f", g.name, g.mean, g.variance)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
