package budget

import (
	"math"
	"testing"

	"github.com/maseology/gowmt/eos"
	"github.com/maseology/gowmt/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctr(t *testing.T, name string, v ...float64) *grid.Field {
	t.Helper()
	f, err := grid.NewFieldData(name, "", []string{"lev"}, []grid.Position{grid.Center}, v, len(v))
	require.NoError(t, err)
	return f
}

func coord(t *testing.T, lam, ddt, dds []float64) *eos.Coordinate {
	t.Helper()
	return &eos.Coordinate{
		Name: "sigma0",
		Lam:  ctr(t, "sigma0", lam...),
		Deriv: map[string]*grid.Field{
			eos.TracerTemperature: ctr(t, "ddt", ddt...),
			eos.TracerSalinity:    ctr(t, "dds", dds...),
		},
	}
}

func TestAssembleChainRule(t *testing.T) {
	crd := coord(t, []float64{25, 26}, []float64{-.2, -.2}, []float64{.8, .8})
	fs, err := Assembler{}.Assemble(crd, Term{
		Name:    "vertical_diffusion_heat",
		Process: Interior,
		Tend:    map[string]*grid.Field{eos.TracerTemperature: ctr(t, "opottempdiff", 2, -1)},
	})
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, Interior, fs[0].Process)
	assert.InDeltaSlice(t, []float64{-.4, .2}, fs[0].Field.Data.Elements, 1e-14)
}

func TestAssembleMultivariate(t *testing.T) {
	// a mixed flux perturbs both tracers; the full chain-rule sum applies
	crd := coord(t, []float64{25}, []float64{-.2}, []float64{.8})
	fs, err := Assembler{}.Assemble(crd, Term{
		Name:    "boundary_forcing",
		Process: Surface,
		Tend: map[string]*grid.Field{
			eos.TracerTemperature: ctr(t, "ht", 3),
			eos.TracerSalinity:    ctr(t, "st", -2),
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 3*-.2+-2*.8, fs[0].Field.Data.Elements[0], 1e-14)
}

func TestAssembleInterfacialFlux(t *testing.T) {
	crd := coord(t, []float64{25, 26}, []float64{1, 1}, []float64{0, 0})
	j, err := grid.NewFieldData("J", "", []string{"lev"}, []grid.Position{grid.Face}, []float64{0, 2, 0}, 3)
	require.NoError(t, err)

	fs, err := Assembler{Op: grid.LinearOperator{}, VAxis: "lev"}.Assemble(crd, Term{
		Name:    "boundary_forcing_heat",
		Process: Surface,
		Kind:    InterfacialFlux,
		Tend:    map[string]*grid.Field{eos.TracerTemperature: j},
	})
	require.NoError(t, err)
	// convergence: minus the downward difference of the interfacial flux
	assert.Equal(t, []float64{-2, 2}, fs[0].Field.Data.Elements)

	// without an operator the flux cannot be converged
	_, err = Assembler{}.Assemble(crd, Term{
		Name: "boundary_forcing_heat",
		Kind: InterfacialFlux,
		Tend: map[string]*grid.Field{eos.TracerTemperature: j},
	})
	var ae *grid.AlignmentError
	require.ErrorAs(t, err, &ae)
}

func TestAssembleThicknessMask(t *testing.T) {
	crd := coord(t, []float64{25, 26}, []float64{1, 1}, []float64{0, 0})
	j, _ := grid.NewFieldData("J", "", []string{"lev"}, []grid.Position{grid.Face}, []float64{0, 2, 0}, 3)
	h := ctr(t, "h", 10, 0) // vanished bottom layer
	fs, err := Assembler{Op: grid.LinearOperator{}, VAxis: "lev", Thick: h}.Assemble(crd, Term{
		Name: "boundary_forcing_heat",
		Kind: InterfacialFlux,
		Tend: map[string]*grid.Field{eos.TracerTemperature: j},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 0}, fs[0].Field.Data.Elements)
}

func TestAssembleMaskedCellsZero(t *testing.T) {
	// land cells carry the defined zero sentinel, never NaN, so closure
	// sums stay well-defined over the full domain
	crd := coord(t, []float64{25, 26}, []float64{math.NaN(), -.2}, []float64{0, 0})
	fs, err := Assembler{}.Assemble(crd, Term{
		Name: "vdiff",
		Tend: map[string]*grid.Field{eos.TracerTemperature: ctr(t, "x", 2, 2)},
	})
	require.NoError(t, err)
	assert.Equal(t, 0., fs[0].Field.Data.Elements[0])
	assert.InDelta(t, -.4, fs[0].Field.Data.Elements[1], 1e-14)
}

func TestAssembleMissingDerivative(t *testing.T) {
	crd := &eos.Coordinate{Name: "theta", Lam: ctr(t, "theta", 15), Deriv: map[string]*grid.Field{}}
	_, err := Assembler{}.Assemble(crd, Term{
		Name: "vdiff",
		Tend: map[string]*grid.Field{eos.TracerTemperature: ctr(t, "x", 1)},
	})
	var mt *eos.MissingTracerError
	require.ErrorAs(t, err, &mt)
}

func TestFluxConversions(t *testing.T) {
	q := ctr(t, "hfds", eos.RhoRef*eos.Cp, 0)
	th := HeatToTheta(q)
	assert.InDeltaSlice(t, []float64{1, 0}, th.Data.Elements, 1e-14)
	assert.Equal(t, "K m/s", th.Units)
	assert.Equal(t, eos.RhoRef*eos.Cp, q.Data.Elements[0], "input immutable")

	sf := SaltToSalinity(ctr(t, "sfdsi", eos.RhoRef))
	assert.InDeltaSlice(t, []float64{1000}, sf.Data.Elements, 1e-14)
	assert.Equal(t, "g/kg m/s", sf.Units)
}

func TestMergeTerms(t *testing.T) {
	a := Term{Name: "vdiff", Process: Interior, Tend: map[string]*grid.Field{eos.TracerTemperature: ctr(t, "a", 1, 2)}}
	b := Term{Name: "ndiff", Process: Interior, Tend: map[string]*grid.Field{eos.TracerTemperature: ctr(t, "b", 3, 4)}}
	m, err := MergeTerms("diffusion", a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, m.Tend[eos.TracerTemperature].Data.Elements)
	assert.Equal(t, []float64{1, 2}, a.Tend[eos.TracerTemperature].Data.Elements, "inputs immutable")

	c := Term{Name: "bf", Process: Surface, Tend: map[string]*grid.Field{}}
	_, err = MergeTerms("bad", a, c)
	require.Error(t, err)
}
