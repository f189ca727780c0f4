package gowmt

import (
	"github.com/gosuri/uiprogress"
	"github.com/maseology/gowmt/budget"
	"github.com/maseology/gowmt/grid"
	"golang.org/x/sync/errgroup"
)

// evalConcur bins and differentiates the forcing terms concurrently.
// Terms are independent, so each worker runs a fixed-order serial pass;
// chunk-level parallelism inside the binner is reserved for single-term
// evaluations so summation order per term stays reproducible here.
func evalConcur(forcings []budget.Forcing, lam, w *grid.Field, edges Edges, o options) ([]*Rate, error) {
	if len(forcings) == 1 {
		r, err := binRate(forcings[0], lam, w, edges, o)
		if err != nil {
			return nil, err
		}
		return []*Rate{r}, nil
	}

	var bar *uiprogress.Bar
	if o.verbose {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(forcings)).AppendCompleted().PrependElapsed()
		defer uiprogress.Stop()
	}

	rates := make([]*Rate, len(forcings))
	g := new(errgroup.Group)
	g.SetLimit(o.workers)
	for k := range forcings {
		k := k
		g.Go(func() error {
			c, err := BinCensus(forcings[k], lam, w, edges, Deterministic())
			if err != nil {
				return err
			}
			if rates[k], err = Differentiate(c); err != nil {
				return err
			}
			if bar != nil {
				bar.Incr()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rates, nil
}
