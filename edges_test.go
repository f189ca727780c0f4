package gowmt

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformEdges(t *testing.T) {
	e, err := UniformEdges(20., 30., 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{20, 22, 24, 26, 28, 30}, e, 1e-12)
	assert.InDeltaSlice(t, []float64{21, 23, 25, 27, 29}, e.Centers(), 1e-12)
	assert.InDeltaSlice(t, []float64{2, 2, 2, 2, 2}, e.Widths(), 1e-12)

	_, err = UniformEdges(30., 20., 5)
	var nm *NonMonotonicBinsError
	require.ErrorAs(t, err, &nm)
	_, err = UniformEdges(20., 30., 0)
	require.ErrorAs(t, err, &nm)
}

func TestPercentileEdges(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	v := make([]float64, 2000)
	for i := range v {
		v[i] = 24. + 4.*rng.Float64()
	}
	v[0], v[1] = math.NaN(), math.NaN() // masked cells ignored

	e, err := PercentileEdges(cells(t, "sigma0", v...), .05, .95, 50)
	require.NoError(t, err)
	require.NoError(t, e.Check())
	assert.Len(t, e, 51)
	assert.Greater(t, e[0], 24.)
	assert.Less(t, e[len(e)-1], 28.)

	masked := cells(t, "sigma0", math.NaN(), math.NaN())
	var nm *NonMonotonicBinsError
	_, err = PercentileEdges(masked, .05, .95, 10)
	require.ErrorAs(t, err, &nm)

	flat := cells(t, "sigma0", 25., 25., 25.)
	_, err = PercentileEdges(flat, .05, .95, 10)
	require.ErrorAs(t, err, &nm)
}
