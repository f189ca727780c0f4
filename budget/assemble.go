package budget

import (
	"fmt"
	"math"

	"github.com/maseology/gowmt/eos"
	"github.com/maseology/gowmt/grid"
)

// Assembler converts budget terms to coordinate-space forcing. Op and
// VAxis are needed only when interfacial-flux terms are present; Thick,
// when given, masks cells of zero layer thickness.
type Assembler struct {
	Op    grid.Operator
	VAxis string
	Thick *grid.Field
}

// Assemble computes, per term, forcing = Σ_tracers tendency × ∂λ/∂tracer
// (the full chain rule over every tracer the term perturbs). Each term
// keeps its own output array. Masked (NaN) cells contribute the defined
// zero sentinel, never dropped, so domain-wide closure sums stay
// well-defined.
func (a Assembler) Assemble(crd *eos.Coordinate, terms ...Term) ([]Forcing, error) {
	out := make([]Forcing, 0, len(terms))
	for _, t := range terms {
		f := crd.Lam.Like(t.Name, "")
		for tracer, tend := range t.Tend {
			d, ok := crd.Deriv[tracer]
			if !ok {
				return nil, &eos.MissingTracerError{Tracer: tracer, Coordinate: crd.Name}
			}
			h, err := a.tendency(t, tend)
			if err != nil {
				return nil, fmt.Errorf("term %q: %w", t.Name, err)
			}
			if err := grid.CheckAligned(crd.Lam, h, d); err != nil {
				return nil, fmt.Errorf("term %q: %w", t.Name, err)
			}
			fe, he, de := f.Data.Elements, h.Data.Elements, d.Data.Elements
			for i := range fe {
				v := he[i] * de[i]
				if math.IsNaN(v) {
					continue // masked: zero contribution
				}
				fe[i] += v
			}
		}
		out = append(out, Forcing{Term: t.Name, Process: t.Process, Field: f})
	}
	return out, nil
}

// tendency returns the layer tendency of one tracer field, converging
// interfacial fluxes through the grid operator when required.
func (a Assembler) tendency(t Term, tend *grid.Field) (*grid.Field, error) {
	if t.Kind != InterfacialFlux {
		return tend, nil
	}
	if a.Op == nil || a.VAxis == "" {
		return nil, &grid.AlignmentError{Field: tend.Name, Axis: a.VAxis, Msg: "no operator to converge an interfacial flux"}
	}
	// convergence reverses the sign of the vertical difference
	d, err := a.Op.Diff(tend, a.VAxis, grid.Center)
	if err != nil {
		return nil, err
	}
	d.Scale(-1.)
	if a.Thick != nil {
		if err := grid.CheckAligned(d, a.Thick); err != nil {
			return nil, err
		}
		for i, h := range a.Thick.Data.Elements {
			if h == 0. || math.IsNaN(h) {
				d.Data.Elements[i] = 0.
			}
		}
	}
	return d, nil
}
