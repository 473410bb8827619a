package histogram

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/aretw0/traits/pkg/trait"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Constant(t *testing.T) {
	c, err := trait.NewConstant("infectivity", 2)
	require.NoError(t, err)

	r, err := Build(c, 0, 0)
	require.NoError(t, err)
	assert.Len(t, r.Samples, DefaultSamples)
	assert.Equal(t, 2.0, r.Mean)
	assert.Equal(t, 0.0, r.Variance)
	assert.Equal(t, "Constant trait named infectivity with value 2.00.\nSample mean 2.00 and sample var 0.00", r.Title)
	assert.Equal(t, "relative magnitude of infectivity", r.XLabel)
	assert.Equal(t, "# people", r.YLabel)
	require.Len(t, r.Bins, 1)
	assert.Equal(t, DefaultSamples, r.Bins[0].Count)
}

func TestBuild_GammaBinsCoverAllSamples(t *testing.T) {
	g, err := trait.NewGamma("susceptibility", 2, 1, trait.WithSource(rand.NewPCG(3, 4)))
	require.NoError(t, err)

	r, err := Build(g, 5000, 12)
	require.NoError(t, err)
	require.Len(t, r.Bins, 12)

	total := 0
	for i, b := range r.Bins {
		total += b.Count
		assert.Less(t, b.Lo, b.Hi)
		if i > 0 {
			assert.Equal(t, r.Bins[i-1].Hi, b.Lo)
		}
	}
	assert.Equal(t, 5000, total)
	assert.InEpsilon(t, 2.0, r.Mean, 0.05)
}

func TestRender(t *testing.T) {
	c, err := trait.NewConstant("mobility", 1)
	require.NoError(t, err)
	r, err := Build(c, 10, 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, 20))

	s := buf.String()
	assert.Contains(t, s, "Constant trait named mobility with value 1.00.")
	assert.Contains(t, s, "Sample mean 1.00 and sample var 0.00")
	assert.Contains(t, s, "# people")
	assert.Contains(t, s, "relative magnitude of mobility")
	assert.Contains(t, s, "████████████████████ 10")
}
