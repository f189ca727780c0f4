package gowmt

// Differentiate converts a census to bin-centered transformation rates:
// rate_i = (census[i+1]-census[i]) / (edges[i+1]-edges[i]). Bin 0 is the
// lowest-coordinate bin; a positive rate is transformation toward higher
// coordinate values. Bins holding no cells difference to exactly zero,
// never NaN or Inf, since edges are strictly increasing. The discrete
// fundamental theorem holds by construction: the census increment of any
// bin equals its rate times its width.
func Differentiate(c *Census) (*Rate, error) {
	if err := c.Edges.Check(); err != nil {
		return nil, err
	}
	w := c.Edges.Widths()
	r := &Rate{Term: c.Term, Process: c.Process, Edges: c.Edges, V: make([][]float64, len(c.V))}
	for t, cv := range c.V {
		rv := make([]float64, len(w))
		for i := range rv {
			rv[i] = (cv[i+1] - cv[i]) / w[i]
		}
		r.V[t] = rv
	}
	return r, nil
}
