package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearOperatorInterp(t *testing.T) {
	f, _ := NewFieldData("lam", "", []string{"lev"}, []Position{Center}, []float64{1, 2, 3}, 3)

	fc, err := LinearOperator{}.Interp(f, "lev", Face)
	require.NoError(t, err)
	assert.Equal(t, Face, fc.Pos[0])
	assert.Equal(t, []float64{1, 1.5, 2.5, 3}, fc.Data.Elements) // extended boundaries

	cc, err := LinearOperator{}.Interp(fc, "lev", Center)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.25, 2, 2.75}, cc.Data.Elements)

	same, err := LinearOperator{}.Interp(f, "lev", Center)
	require.NoError(t, err)
	assert.Equal(t, f.Data.Elements, same.Data.Elements)

	_, err = LinearOperator{}.Interp(f, "zz", Face)
	var ae *AlignmentError
	require.ErrorAs(t, err, &ae)
}

func TestLinearOperatorDiff(t *testing.T) {
	j, _ := NewFieldData("J", "W/m²", []string{"lev"}, []Position{Face}, []float64{0, 2, 0}, 3)
	d, err := LinearOperator{}.Diff(j, "lev", Center)
	require.NoError(t, err)
	assert.Equal(t, Center, d.Pos[0])
	assert.Equal(t, []float64{2, -2}, d.Data.Elements)
}

func TestLinearOperatorAxis2D(t *testing.T) {
	// differencing along the second axis must respect strides
	f, _ := NewFieldData("J", "", []string{"y", "lev"}, []Position{Center, Face},
		[]float64{
			0, 1, 3,
			0, 2, 6,
		}, 2, 3)
	d, err := LinearOperator{}.Diff(f, "lev", Center)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, d.Data.Shape)
	assert.Equal(t, []float64{1, 2, 2, 4}, d.Data.Elements)
}

func TestDestaggerDegenerateAxis(t *testing.T) {
	// a single-valued face axis has no center to destagger to; this must
	// surface as a typed error, never a nil field or a panic downstream
	one, err := NewField("J", "", []string{"lev"}, []Position{Face}, 1)
	require.NoError(t, err)

	var ae *AlignmentError
	f, err := LinearOperator{}.Interp(one, "lev", Center)
	require.ErrorAs(t, err, &ae)
	assert.Nil(t, f)

	f, err = LinearOperator{}.Diff(one, "lev", Center)
	require.ErrorAs(t, err, &ae)
	assert.Nil(t, f)

	ctr, _ := NewField("w", "", []string{"lev"}, []Position{Center}, 2)
	require.NotPanics(t, func() {
		_, err = Adapter{Op: LinearOperator{}}.AlignTo(ctr, one)
	})
	require.ErrorAs(t, err, &ae)
}

func TestAdapterAlign(t *testing.T) {
	ctr, _ := NewField("w", "", []string{"lev", "x"}, []Position{Center, Center}, 2, 3)
	stag, _ := NewField("J", "", []string{"lev", "x"}, []Position{Face, Center}, 3, 3)

	out, err := Adapter{Op: LinearOperator{}}.AlignTo(ctr, stag)
	require.NoError(t, err)
	assert.Equal(t, []Position{Center, Center}, out[0].Pos)
	assert.Equal(t, []int{2, 3}, out[0].Data.Shape)
	assert.Equal(t, Face, stag.Pos[0], "input must not be mutated")

	// no operator: staggered input cannot be reconciled
	_, err = Adapter{}.AlignTo(ctr, stag)
	var ae *AlignmentError
	require.ErrorAs(t, err, &ae)

	// aligned positions but incompatible extents
	bad, _ := NewField("b", "", []string{"lev", "x"}, []Position{Center, Center}, 2, 5)
	_, err = Adapter{Op: LinearOperator{}}.AlignTo(ctr, bad)
	var sm *ShapeMismatchError
	require.ErrorAs(t, err, &sm)
}
