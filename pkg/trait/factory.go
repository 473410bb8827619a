package trait

import (
	"fmt"
	"strings"

	"github.com/aretw0/traits/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// FromSpec builds the sampler described by spec.
func FromSpec(spec domain.Spec, opts ...Option) (domain.Trait, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, fmt.Errorf("%w: trait name is required", domain.ErrInvalidParameter)
	}

	switch domain.Kind(strings.ToLower(string(spec.Distribution))) {
	case domain.KindConstant:
		return NewConstant(spec.Name, spec.ConstantValue())
	case domain.KindGamma:
		return NewGamma(spec.Name, spec.Mean, spec.Variance, opts...)
	default:
		return nil, fmt.Errorf("trait %q: %w: %q", spec.Name, domain.ErrUnknownDistribution, spec.Distribution)
	}
}

// DecodeSpec decodes a loosely typed map (e.g. frontmatter or a JSON object)
// into a Spec. Numeric strings are accepted; unknown keys are rejected.
func DecodeSpec(raw map[string]any) (domain.Spec, error) {
	var spec domain.Spec
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &spec,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return domain.Spec{}, fmt.Errorf("failed to create spec decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return domain.Spec{}, fmt.Errorf("%w: %v", domain.ErrInvalidParameter, err)
	}
	return spec, nil
}

// Decode is DecodeSpec followed by FromSpec.
func Decode(raw map[string]any, opts ...Option) (domain.Trait, error) {
	spec, err := DecodeSpec(raw)
	if err != nil {
		return nil, err
	}
	return FromSpec(spec, opts...)
}

// SpecOf returns the spec that rebuilds t, for samplers defined in this package.
// Decorators exposing Unwrap() domain.Trait are looked through.
func SpecOf(t domain.Trait) (domain.Spec, bool) {
	for {
		w, ok := t.(interface{ Unwrap() domain.Trait })
		if !ok {
			break
		}
		t = w.Unwrap()
	}

	switch v := t.(type) {
	case *Constant:
		value := v.value
		return domain.Spec{Name: v.name, Distribution: domain.KindConstant, Value: &value}, true
	case *Gamma:
		return domain.Spec{Name: v.name, Distribution: domain.KindGamma, Mean: v.mean, Variance: v.variance}, true
	}
	return domain.Spec{}, false
}
