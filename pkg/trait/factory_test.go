package trait

import (
	"testing"

	"github.com/aretw0/traits/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestFromSpec(t *testing.T) {
	c, err := FromSpec(domain.Spec{Name: "a", Distribution: domain.KindConstant, Value: ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, "Constant trait named a with value 2.00", c.String())

	def, err := FromSpec(domain.Spec{Name: "b", Distribution: "CONSTANT"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, def.(*Constant).Value())

	g, err := FromSpec(domain.Spec{Name: "c", Distribution: domain.KindGamma, Mean: 2, Variance: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.KindGamma, g.Kind())
}

func TestFromSpec_Errors(t *testing.T) {
	_, err := FromSpec(domain.Spec{Distribution: domain.KindConstant})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = FromSpec(domain.Spec{Name: "x", Distribution: "poisson"})
	assert.ErrorIs(t, err, domain.ErrUnknownDistribution)

	_, err = FromSpec(domain.Spec{Name: "x", Distribution: domain.KindGamma, Mean: 0, Variance: 2})
	assert.ErrorIs(t, err, domain.ErrDomain)
}

func TestDecode(t *testing.T) {
	tr, err := Decode(map[string]any{
		"name":         "susceptibility",
		"distribution": "gamma",
		"mean":         "1.5",
		"variance":     0.5,
	})
	require.NoError(t, err)
	g, ok := tr.(*Gamma)
	require.True(t, ok)
	assert.Equal(t, 1.5, g.Mean())
	assert.Equal(t, 0.5, g.Variance())
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := Decode(map[string]any{
		"name":         "x",
		"distribution": "gamma",
		"mena":         1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestSpecOf(t *testing.T) {
	g, err := NewGamma("g", 2, 1)
	require.NoError(t, err)
	spec, ok := SpecOf(g)
	require.True(t, ok)
	assert.Equal(t, domain.Spec{Name: "g", Distribution: domain.KindGamma, Mean: 2, Variance: 1}, spec)

	c, err := NewConstant("c", 3)
	require.NoError(t, err)
	spec, ok = SpecOf(c)
	require.True(t, ok)
	assert.Equal(t, 3.0, spec.ConstantValue())

	rebuilt, err := FromSpec(spec)
	require.NoError(t, err)
	assert.Equal(t, c.String(), rebuilt.String())
}
