package gowmt

import (
	"math"
	"math/rand"
	"sort"

	"github.com/maseology/gowmt/grid"
	"github.com/maseology/mmaths"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
	"gonum.org/v1/gonum/stat"
)

// cap on cells sorted for quantile estimation; larger coordinate fields
// are subsampled with a fixed-seed generator so edges stay reproducible
const maxQuantileSample = 1 << 17

// Edges defines B bins from B+1 strictly increasing coordinate values;
// index 0 is the lowest edge.
type Edges []float64

// Check validates ordering: at least one bin, strictly increasing, no NaN.
func (e Edges) Check() error {
	if len(e) < 2 {
		return &NonMonotonicBinsError{Msg: "fewer than two edges"}
	}
	for i, v := range e {
		if math.IsNaN(v) {
			return &NonMonotonicBinsError{Msg: "NaN edge"}
		}
		if i > 0 && v <= e[i-1] {
			return &NonMonotonicBinsError{Msg: "edges not strictly increasing"}
		}
	}
	return nil
}

// Widths returns the B bin widths.
func (e Edges) Widths() []float64 {
	w := make([]float64, len(e)-1)
	for i := range w {
		w[i] = e[i+1] - e[i]
	}
	return w
}

// Centers returns the B bin midpoints.
func (e Edges) Centers() []float64 {
	c := make([]float64, len(e)-1)
	for i := range c {
		c[i] = .5 * (e[i] + e[i+1])
	}
	return c
}

// UniformEdges builds nb equal bins spanning [lo,hi].
func UniformEdges(lo, hi float64, nb int) (Edges, error) {
	if nb < 1 || hi <= lo {
		return nil, &NonMonotonicBinsError{Msg: "degenerate range"}
	}
	e := make(Edges, nb+1)
	for i := range e {
		e[i] = mmaths.LinearTransform(lo, hi, float64(i)/float64(nb))
	}
	return e, e.Check()
}

// PercentileEdges derives nb uniform bins between the plo and phi
// quantiles of the coordinate field, ignoring masked cells. This is the
// automatic-range policy used when the caller supplies no edges.
func PercentileEdges(lam *grid.Field, plo, phi float64, nb int) (Edges, error) {
	if plo < 0. || phi > 1. || phi <= plo {
		return nil, &NonMonotonicBinsError{Msg: "quantile bounds out of order"}
	}
	v := make([]float64, 0, len(lam.Data.Elements))
	for _, x := range lam.Data.Elements {
		if !math.IsNaN(x) {
			v = append(v, x)
		}
	}
	if len(v) == 0 {
		return nil, &NonMonotonicBinsError{Msg: "coordinate field fully masked"}
	}
	if len(v) > maxQuantileSample {
		rng := rand.New(mrg63k3a.New())
		rng.Seed(1)
		s := make([]float64, maxQuantileSample)
		for i := range s {
			s[i] = v[rng.Intn(len(v))]
		}
		v = s
	}
	sort.Float64s(v)
	lo := stat.Quantile(plo, stat.Empirical, v, nil)
	hi := stat.Quantile(phi, stat.Empirical, v, nil)
	if hi <= lo {
		return nil, &NonMonotonicBinsError{Msg: "coordinate field has no spread"}
	}
	return UniformEdges(lo, hi, nb)
}
