package traits_test

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/traits"
	"github.com/aretw0/traits/internal/logging"
	"github.com/aretw0/traits/pkg/domain"
	"github.com/aretw0/traits/pkg/dsl"
	"github.com/aretw0/traits/pkg/observability"
	"github.com/aretw0/traits/pkg/trait"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "traits.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Integration(t *testing.T) {
	path := writeCatalog(t, `
traits:
  - name: susceptibility
    distribution: gamma
    mean: 5
    variance: 0
  - name: infectivity
    distribution: constant
    value: 2
`)

	cat, err := traits.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "traits.yaml", cat.Name())
	assert.Equal(t, []string{"infectivity", "susceptibility"}, cat.Names())

	out, err := cat.Sample("infectivity", []float64{0, 1, 0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 0, 2, 2}, out)

	out, err = cat.Sample("susceptibility", []float64{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0, 5}, out)

	desc, err := cat.Describe("susceptibility")
	require.NoError(t, err)
	assert.Equal(t, "Gamma distributed trait named susceptibility with mean 5.00 and variance 0.00", desc)
}

func TestLoad_DomainError(t *testing.T) {
	path := writeCatalog(t, `
traits:
  - name: broken
    distribution: gamma
    mean: 0
    variance: 2
`)
	_, err := traits.Load(path)
	assert.ErrorIs(t, err, domain.ErrDomain)
}

func TestNew_SeededSourceIsReproducible(t *testing.T) {
	spec := domain.Spec{Name: "g", Distribution: domain.KindGamma, Mean: 2, Variance: 1}
	occ := []float64{1, 1, 0, 1}

	a, err := traits.New(traits.WithSpecs(spec), traits.WithSource(rand.NewPCG(5, 5)))
	require.NoError(t, err)
	b, err := traits.New(traits.WithSpecs(spec), traits.WithSource(rand.NewPCG(5, 5)))
	require.NoError(t, err)

	outA, err := a.Sample("g", occ)
	require.NoError(t, err)
	outB, err := b.Sample("g", occ)
	require.NoError(t, err)
	assert.Equal(t, outA, outB)
	assert.Zero(t, outA[2])
}

func TestNew_WithTraitsAndMetrics(t *testing.T) {
	m, err := observability.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	c, err := trait.NewConstant("c", 1)
	require.NoError(t, err)

	cat, err := traits.New(traits.WithTraits(c), traits.WithMetrics(m))
	require.NoError(t, err)

	_, err = cat.Sample("c", []float64{1, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Occupied.WithLabelValues("c")))
}

func TestNew_WithName(t *testing.T) {
	var buf bytes.Buffer
	cat, err := traits.New(
		traits.WithName("households"),
		traits.WithLogger(logging.New("info", &buf)),
		traits.WithSpecs(domain.Spec{Name: "a", Distribution: domain.KindConstant}),
	)
	require.NoError(t, err)
	assert.Equal(t, "households", cat.Name())
	assert.Contains(t, buf.String(), "catalog=households")
}

func TestNew_DuplicateNames(t *testing.T) {
	_, err := traits.New(traits.WithSpecs(
		domain.Spec{Name: "x", Distribution: domain.KindConstant},
		domain.Spec{Name: "x", Distribution: domain.KindConstant},
	))
	assert.ErrorIs(t, err, domain.ErrDuplicateTrait)
}

func TestCatalog_SampleAny(t *testing.T) {
	cat, err := traits.New(traits.WithSpecs(domain.Spec{Name: "x", Distribution: domain.KindConstant}))
	require.NoError(t, err)

	out, err := cat.SampleAny("x", []any{float64(0), float64(3)})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, out)

	_, err = cat.SampleAny("x", "not an array")
	assert.ErrorIs(t, err, domain.ErrInvalidOccupancy)

	_, err = cat.SampleAny("missing", []float64{1})
	assert.ErrorIs(t, err, domain.ErrTraitNotFound)
}

func TestCatalog_Specs(t *testing.T) {
	specs := []domain.Spec{
		{Name: "b", Distribution: domain.KindGamma, Mean: 1, Variance: 0.5},
		{Name: "a", Distribution: domain.KindConstant},
	}
	cat, err := traits.New(traits.WithSpecs(specs...))
	require.NoError(t, err)

	got := cat.Specs()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, 1.0, got[0].ConstantValue())
	assert.Equal(t, specs[0], got[1])
}

func TestNew_WithDSLLoader(t *testing.T) {
	b := dsl.New()
	b.Add("susceptibility").Gamma(5, 0)
	b.Add("infectivity").Constant(2)
	loader, err := b.Build()
	require.NoError(t, err)

	cat, err := traits.New(traits.WithLoader(loader))
	require.NoError(t, err)

	out, err := cat.Sample("susceptibility", []float64{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0, 5}, out)
}

type failingLoader struct{}

func (failingLoader) LoadSpecs() ([]domain.Spec, error) {
	return nil, errors.New("source offline")
}

func TestNew_LoaderError(t *testing.T) {
	_, err := traits.New(traits.WithLoader(failingLoader{}))
	assert.ErrorContains(t, err, "source offline")
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	cat, err := traits.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cat.Names())
}
