package domain

// Spec is the serializable description of a trait, as found in catalog files
// or decoded from loose maps.
type Spec struct {
	Name         string   `json:"name" yaml:"name" mapstructure:"name"`
	Distribution Kind     `json:"distribution" yaml:"distribution" mapstructure:"distribution"`
	Value        *float64 `json:"value,omitempty" yaml:"value,omitempty" mapstructure:"value"` // constant only
	Mean         float64  `json:"mean,omitempty" yaml:"mean,omitempty" mapstructure:"mean"`
	Variance     float64  `json:"variance,omitempty" yaml:"variance,omitempty" mapstructure:"variance"`
}

// ConstantValue returns the configured constant value, or DefaultConstantValue when unset.
func (s Spec) ConstantValue() float64 {
	if s.Value == nil {
		return DefaultConstantValue
	}
	return *s.Value
}
