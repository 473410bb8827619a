package observability

import (
	"bytes"
	"testing"

	"github.com/aretw0/traits/internal/logging"
	"github.com/aretw0/traits/pkg/domain"
	"github.com/aretw0/traits/pkg/trait"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	c, err := trait.NewConstant("infectivity", 2)
	require.NoError(t, err)
	inst := Instrument(c, m, nil)

	out, err := inst.Sample([]float64{0, 1, 0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 0, 2, 2}, out)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Samples.WithLabelValues("infectivity")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Occupied.WithLabelValues("infectivity")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Errors.WithLabelValues("infectivity")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Values, "traits_sampled_value"))
}

func TestInstrument_RecordsErrors(t *testing.T) {
	m, err := NewMetrics(nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	c, err := trait.NewConstant("x", 1)
	require.NoError(t, err)
	inst := Instrument(c, m, logging.New("info", &buf))

	_, err = inst.Sample([]float64{-1})
	assert.ErrorIs(t, err, domain.ErrInvalidOccupancy)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Errors.WithLabelValues("x")))
	assert.Contains(t, buf.String(), "sample failed")
	assert.Contains(t, buf.String(), "trait=x")
}

func TestInstrument_PreservesIdentity(t *testing.T) {
	g, err := trait.NewGamma("g", 2, 1)
	require.NoError(t, err)
	inst := Instrument(g, nil, nil)

	assert.Equal(t, g.String(), inst.String())
	assert.Equal(t, domain.KindGamma, inst.Kind())

	spec, ok := trait.SpecOf(inst)
	require.True(t, ok)
	assert.Equal(t, 2.0, spec.Mean)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}
