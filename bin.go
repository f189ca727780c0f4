package gowmt

import (
	"math"
	"sort"
	"sync"

	"github.com/maseology/gowmt/budget"
	"github.com/maseology/gowmt/grid"
	"gonum.org/v1/gonum/floats"
)

// BinCensus bins a coordinate-space forcing field, weighted by cell
// volume/area, into the cumulative water-mass census over the given
// edges, one row per time slice. The census at edge i sums
// weight*forcing over cells with coordinate strictly less than edges[i];
// a cell equal to an edge lands in the bin bounded below by it. Masked
// (NaN) coordinate, forcing or weight cells contribute zero. Cost is
// linear in cells plus bins: one bucket pass, then a prefix sum per
// slice.
func BinCensus(f budget.Forcing, lam, w *grid.Field, edges Edges, opts ...Option) (*Census, error) {
	o := newOptions(opts)
	if err := edges.Check(); err != nil {
		return nil, err
	}
	if err := grid.CheckAligned(lam, f.Field, w); err != nil {
		return nil, err
	}

	nt, ts := 1, 0
	if it := lam.Axis(TimeAxis); it >= 0 {
		nt = lam.Data.Shape[it]
		ts = lam.Strides()[it]
	}
	ne, n := len(edges), len(lam.Data.Elements)
	le, fe, we := lam.Data.Elements, f.Field.Data.Elements, w.Data.Elements

	// bucket j holds the contribution excluded from censuses below edge j;
	// cells at or above the last edge fall off the high end
	acc := func(a, b int, bk [][]float64) {
		for i := a; i < b; i++ {
			lv := le[i]
			if math.IsNaN(lv) || math.IsNaN(fe[i]) || math.IsNaN(we[i]) {
				continue
			}
			j := sort.Search(ne, func(k int) bool { return edges[k] > lv })
			if j == ne {
				continue
			}
			t := 0
			if ts > 0 {
				t = i / ts % nt
			}
			bk[t][j] += we[i] * fe[i]
		}
	}

	bk := newBuckets(nt, ne)
	if nw := o.workers; o.det || nw < 2 || n < 2*nw {
		acc(0, n, bk) // fixed cell-index order
	} else {
		// partial buckets per spatial chunk, merged by elementwise
		// addition in chunk order
		parts := make([][][]float64, nw)
		csz := (n + nw - 1) / nw
		var wg sync.WaitGroup
		for k := 0; k < nw; k++ {
			a := k * csz
			b := a + csz
			if b > n {
				b = n
			}
			parts[k] = newBuckets(nt, ne)
			wg.Add(1)
			go func(a, b int, p [][]float64) {
				defer wg.Done()
				acc(a, b, p)
			}(a, b, parts[k])
		}
		wg.Wait()
		for _, p := range parts {
			for t := range bk {
				floats.Add(bk[t], p[t])
			}
		}
	}

	for t := range bk {
		floats.CumSum(bk[t], bk[t])
	}
	return &Census{Term: f.Term, Process: f.Process, Edges: edges, V: bk}, nil
}

func newBuckets(nt, ne int) [][]float64 {
	b := make([][]float64, nt)
	for t := range b {
		b[t] = make([]float64, ne)
	}
	return b
}
