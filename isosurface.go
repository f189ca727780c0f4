package gowmt

import (
	"fmt"
	"math"
)

// IsosurfaceMean returns the interval-weighted time mean of a rate at
// the given coordinate values, each taken at the nearest bin center. dt
// holds the interval weight of each time slice (e.g. days per record);
// nil weights every slice equally.
func IsosurfaceMean(r *Rate, vals, dt []float64) ([]float64, error) {
	nt := len(r.V)
	if nt == 0 {
		return nil, fmt.Errorf("isosurface mean: empty rate")
	}
	if dt == nil {
		dt = make([]float64, nt)
		for t := range dt {
			dt[t] = 1.
		}
	}
	if len(dt) != nt {
		return nil, fmt.Errorf("isosurface mean: %d interval weights for %d time slices", len(dt), nt)
	}
	sdt := 0.
	for _, d := range dt {
		sdt += d
	}
	if sdt == 0. {
		return nil, fmt.Errorf("isosurface mean: zero total interval")
	}

	ctr := r.Edges.Centers()
	out := make([]float64, len(vals))
	for k, v := range vals {
		ib, db := 0, math.Inf(1)
		for i, c := range ctr {
			if d := math.Abs(c - v); d < db {
				ib, db = i, d
			}
		}
		s := 0.
		for t := range r.V {
			s += r.V[t][ib] * dt[t]
		}
		out[k] = s / sdt
	}
	return out, nil
}
