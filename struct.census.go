package gowmt

import "github.com/maseology/gowmt/budget"

// TimeAxis names the axis treated as independent time slices.
const TimeAxis = "time"

// Census is the cumulative water-mass distribution of one term: for each
// bin edge, the volume/area-weighted total forcing of fluid with
// coordinate value strictly below that edge. V[t][i] is the census of
// time slice t at edge i; edge 0 is the lowest coordinate.
type Census struct {
	Term    string
	Process budget.Process
	Edges   Edges
	V       [][]float64
}

// Rate is the bin-centered derivative of a census with respect to the
// coordinate: V[t][i] is the transformation rate of time slice t in bin
// i, bin 0 the lowest. Positive rates move fluid toward higher
// coordinate values.
type Rate struct {
	Term    string
	Process budget.Process
	Edges   Edges
	V       [][]float64
}

// zeroRate builds an empty rate with the geometry of r.
func (r *Rate) zeroRate(name string) *Rate {
	z := &Rate{Term: name, Process: r.Process, Edges: r.Edges, V: make([][]float64, len(r.V))}
	for t := range z.V {
		z.V[t] = make([]float64, len(r.V[t]))
	}
	return z
}

// add accumulates o elementwise.
func (r *Rate) add(o *Rate) {
	for t := range r.V {
		for i := range r.V[t] {
			r.V[t][i] += o.V[t][i]
		}
	}
}
