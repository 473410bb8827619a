package domain

// Kind identifies the distribution a trait samples from.
type Kind string

const (
	// KindConstant assigns the same value to every occupied slot.
	KindConstant Kind = "constant"
	// KindGamma draws from a gamma distribution parameterized by mean and variance.
	KindGamma Kind = "gamma"
)

// DefaultConstantValue is used when a constant spec omits its value.
const DefaultConstantValue = 1.0
