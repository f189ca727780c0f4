package gowmt

import (
	"fmt"
	"sort"

	"github.com/maseology/gowmt/budget"
	"github.com/maseology/gowmt/eos"
	"github.com/maseology/gowmt/grid"
	"github.com/maseology/mmio"
	"go.uber.org/zap"
)

// Evaluate runs the full pipeline for one dataset: align tracers onto
// the weight grid, resolve the coordinate and its tracer derivatives,
// assemble every budget term into coordinate-space forcing, bin each
// into a census per time slice, differentiate, and decompose into a
// budget with closure diagnostics.
func (ev *Evaluator) Evaluate(tracers map[string]*grid.Field, opts ...Option) (*Budget, error) {
	o := newOptions(opts)
	tt := mmio.NewTimer()

	forcings, lam, w, edges, err := ev.prep(tracers, o)
	if err != nil {
		o.lg.Error("evaluation preparation failed", zap.String("coordinate", ev.Coordinate), zap.Error(err))
		return nil, err
	}
	if o.verbose {
		tt.Lap(fmt.Sprintf(" %q resolved over %s cells, %d terms", ev.Coordinate, mmio.Thousands(int64(len(lam.Data.Elements))), len(forcings)))
	}

	var rates []*Rate
	if o.det || o.workers < 2 {
		rates = make([]*Rate, len(forcings))
		for k, f := range forcings {
			if rates[k], err = binRate(f, lam, w, edges, o); err != nil {
				o.lg.Error("binning failed", zap.String("term", f.Term), zap.Error(err))
				return nil, err
			}
		}
	} else if rates, err = evalConcur(forcings, lam, w, edges, o); err != nil {
		o.lg.Error("binning failed", zap.Error(err))
		return nil, err
	}

	b, err := Decompose(rates, ev.Ref)
	if err != nil {
		o.lg.Error("decomposition failed", zap.Error(err))
		return nil, err
	}
	if o.verbose {
		tt.Print(" transformation complete")
	}
	o.lg.Debug("evaluated transformation budget",
		zap.String("coordinate", ev.Coordinate),
		zap.Int("terms", len(rates)),
		zap.Int("bins", len(edges)-1))
	return b, nil
}

// prep aligns inputs, resolves the coordinate and assembles forcing.
func (ev *Evaluator) prep(tracers map[string]*grid.Field, o options) ([]budget.Forcing, *grid.Field, *grid.Field, Edges, error) {
	if ev.Weights == nil {
		return nil, nil, nil, nil, &grid.ShapeMismatchError{Msg: "evaluator has no weight field"}
	}
	if ev.Reg == nil || ev.Terms == nil {
		return nil, nil, nil, nil, fmt.Errorf("evaluator missing registry collaborators")
	}

	// stable tracer order for alignment and cache keying
	names := make([]string, 0, len(tracers))
	for n := range tracers {
		names = append(names, n)
	}
	sort.Strings(names)
	flds := make([]*grid.Field, len(names))
	for i, n := range names {
		flds[i] = tracers[n]
	}
	algn, err := ev.Adp.AlignTo(ev.Weights, flds...)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	o.lg.Debug("aligned tracers onto weight grid", zap.Strings("tracers", names))
	tr := make(map[string]*grid.Field, len(names))
	for i, n := range names {
		tr[n] = algn[i]
	}

	var crd *eos.Coordinate
	if o.cache != nil {
		crd, err = o.cache.Resolve(ev.Reg, tr, ev.Coordinate)
	} else {
		crd, err = ev.Reg.Resolve(tr, ev.Coordinate)
	}
	if err != nil {
		return nil, nil, nil, nil, err
	}
	o.lg.Debug("resolved coordinate", zap.String("coordinate", crd.Name), zap.Bool("cached", o.cache != nil))

	terms, err := ev.alignTerms(crd.Lam)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	forcings, err := ev.Asm.Assemble(crd, terms...)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	o.lg.Debug("assembled forcing", zap.Int("terms", len(terms)), zap.Int("forcings", len(forcings)))

	edges := ev.Edges
	if edges == nil {
		if edges, err = PercentileEdges(crd.Lam, .05, .95, nbinsAuto); err != nil {
			return nil, nil, nil, nil, err
		}
	} else if err = edges.Check(); err != nil {
		return nil, nil, nil, nil, err
	}
	return forcings, crd.Lam, ev.Weights, edges, nil
}

// alignTerms brings layer-tendency fields onto the coordinate grid;
// interfacial fluxes keep their vertical stagger for the assembler to
// converge.
func (ev *Evaluator) alignTerms(lam *grid.Field) ([]budget.Term, error) {
	terms := ev.Terms.Terms()
	out := make([]budget.Term, len(terms))
	for k, t := range terms {
		if t.Kind == budget.InterfacialFlux {
			out[k] = t
			continue
		}
		nt := budget.Term{Name: t.Name, Process: t.Process, Kind: t.Kind, Tend: make(map[string]*grid.Field, len(t.Tend))}
		for tracer, f := range t.Tend {
			a, err := ev.Adp.AlignTo(lam, f)
			if err != nil {
				return nil, fmt.Errorf("term %q: %w", t.Name, err)
			}
			nt.Tend[tracer] = a[0]
		}
		out[k] = nt
	}
	return out, nil
}

// binRate is the serial census-and-differentiate of one forcing term.
func binRate(f budget.Forcing, lam, w *grid.Field, edges Edges, o options) (*Rate, error) {
	bopts := []Option{Workers(o.workers)}
	if o.det {
		bopts = append(bopts, Deterministic())
	}
	c, err := BinCensus(f, lam, w, edges, bopts...)
	if err != nil {
		return nil, err
	}
	return Differentiate(c)
}
