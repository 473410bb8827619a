package tests

import (
	"testing"

	"github.com/aretw0/traits/pkg/domain"
	"github.com/aretw0/traits/pkg/ports"
	"github.com/aretw0/traits/pkg/trait"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SpecLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.SpecLoader.
func SpecLoaderContractTest(t *testing.T, loader ports.SpecLoader, want []domain.Spec) {
	t.Helper()

	t.Run("LoadSpecs_Content", func(t *testing.T) {
		specs, err := loader.LoadSpecs()
		require.NoError(t, err)
		assert.Equal(t, want, specs)
	})

	t.Run("LoadSpecs_Stable", func(t *testing.T) {
		first, err := loader.LoadSpecs()
		require.NoError(t, err)
		second, err := loader.LoadSpecs()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("LoadSpecs_UniqueNames", func(t *testing.T) {
		specs, err := loader.LoadSpecs()
		require.NoError(t, err)
		seen := make(map[string]bool)
		for _, s := range specs {
			assert.NotEmpty(t, s.Name)
			assert.False(t, seen[s.Name], "duplicate name %s", s.Name)
			seen[s.Name] = true
		}
	})

	t.Run("LoadSpecs_Buildable", func(t *testing.T) {
		specs, err := loader.LoadSpecs()
		require.NoError(t, err)
		for _, s := range specs {
			_, err := trait.FromSpec(s)
			assert.NoError(t, err, "spec %s", s.Name)
		}
	})
}
