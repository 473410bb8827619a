package memory_test

import (
	"testing"

	"github.com/aretw0/traits/pkg/adapters/memory"
	"github.com/aretw0/traits/pkg/domain"
	contract "github.com/aretw0/traits/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryLoader_Contract(t *testing.T) {
	specs := []domain.Spec{
		{Name: "susceptibility", Distribution: domain.KindGamma, Mean: 1, Variance: 0.5},
		{Name: "infectivity", Distribution: domain.KindConstant},
	}
	loader, err := memory.NewFromSpecs(specs...)
	require.NoError(t, err)

	contract.SpecLoaderContractTest(t, loader, specs)
}

func TestNewLoader_Decodes(t *testing.T) {
	loader, err := memory.NewLoader(
		map[string]any{"name": "a", "distribution": "gamma", "mean": 2, "variance": "1"},
		map[string]any{"name": "b", "distribution": "constant", "value": 3},
	)
	require.NoError(t, err)

	value := 3.0
	contract.SpecLoaderContractTest(t, loader, []domain.Spec{
		{Name: "a", Distribution: domain.KindGamma, Mean: 2, Variance: 1},
		{Name: "b", Distribution: domain.KindConstant, Value: &value},
	})
}

func TestNewFromSpecs_Errors(t *testing.T) {
	_, err := memory.NewFromSpecs(domain.Spec{Distribution: domain.KindConstant})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = memory.NewFromSpecs(
		domain.Spec{Name: "x", Distribution: domain.KindConstant},
		domain.Spec{Name: "x", Distribution: domain.KindGamma},
	)
	assert.ErrorIs(t, err, domain.ErrDuplicateTrait)

	_, err = memory.NewLoader(map[string]any{"name": "x", "bogus": true})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestLoader_ReturnsCopy(t *testing.T) {
	loader, err := memory.NewFromSpecs(domain.Spec{Name: "x", Distribution: domain.KindConstant})
	require.NoError(t, err)

	specs, _ := loader.LoadSpecs()
	specs[0].Name = "mutated"

	again, _ := loader.LoadSpecs()
	assert.Equal(t, "x", again[0].Name)
}
