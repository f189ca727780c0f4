package eos

import (
	"math"

	"github.com/maseology/gowmt/grid"
)

// Resolver computes a Coordinate from tracer fields.
type Resolver func(tr map[string]*grid.Field) (*Coordinate, error)

// Registry is an explicit dispatch table from coordinate names to
// resolvers; no reflective lookup.
type Registry struct {
	m map[string]Resolver
}

// DefaultRegistry registers the identity coordinates "theta" and "salt"
// and the potential-density coordinates "sigma0".."sigma4" (referenced at
// 0..4000 dbar) against the given equation of state.
func DefaultRegistry(e Eos) *Registry {
	r := &Registry{m: map[string]Resolver{
		"theta": identity("theta", TracerTemperature),
		"salt":  identity("salt", TracerSalinity),
	}}
	for i := 0; i <= 4; i++ {
		name, pref := "sigma"+string(rune('0'+i)), float64(i)*1000.
		r.m[name] = sigma(name, pref, e)
	}
	return r
}

// Register adds or replaces a resolver.
func (r *Registry) Register(name string, rs Resolver) { r.m[name] = rs }

// Resolve dispatches on the coordinate name. Fails with
// UnsupportedCoordinateError for unregistered names.
func (r *Registry) Resolve(tr map[string]*grid.Field, name string) (*Coordinate, error) {
	rs, ok := r.m[name]
	if !ok {
		return nil, &UnsupportedCoordinateError{Name: name}
	}
	return rs(tr)
}

// identity resolves a coordinate that is one tracer itself. The
// derivative with respect to that tracer is the constant 1 and every
// cross-derivative is 0, materialized explicitly so chain-rule weighting
// downstream stays uniform.
func identity(name, tracer string) Resolver {
	return func(tr map[string]*grid.Field) (*Coordinate, error) {
		f, ok := tr[tracer]
		if !ok {
			return nil, &MissingTracerError{Tracer: tracer, Coordinate: name}
		}
		lam := f.Copy()
		lam.Name = name
		crd := &Coordinate{Name: name, Lam: lam, Deriv: map[string]*grid.Field{}}
		for _, t := range []string{TracerTemperature, TracerSalinity} {
			d, err := grid.NewField("d"+name+"_d"+t, "", f.Axes, f.Pos, f.Data.Shape...)
			if err != nil {
				return nil, err
			}
			if t == tracer {
				d.Fill(1.)
			}
			crd.Deriv[t] = d
		}
		return crd, nil
	}
}

// sigma resolves a potential-density coordinate at a fixed reference
// pressure through the equation-of-state collaborator. Masked (NaN)
// cells propagate to the coordinate and both derivatives.
func sigma(name string, pref float64, e Eos) Resolver {
	return func(tr map[string]*grid.Field) (*Coordinate, error) {
		t, ok := tr[TracerTemperature]
		if !ok {
			return nil, &MissingTracerError{Tracer: TracerTemperature, Coordinate: name}
		}
		s, ok := tr[TracerSalinity]
		if !ok {
			return nil, &MissingTracerError{Tracer: TracerSalinity, Coordinate: name}
		}
		if err := grid.CheckAligned(t, s); err != nil {
			return nil, err
		}
		lam, err := grid.NewField(name, "kg/m³", t.Axes, t.Pos, t.Data.Shape...)
		if err != nil {
			return nil, err
		}
		dt, _ := grid.NewField("d"+name+"_d"+TracerTemperature, "kg/m³/K", t.Axes, t.Pos, t.Data.Shape...)
		ds, _ := grid.NewField("d"+name+"_d"+TracerSalinity, "kg/g", t.Axes, t.Pos, t.Data.Shape...)
		for i, tv := range t.Data.Elements {
			sv := s.Data.Elements[i]
			if math.IsNaN(tv) || math.IsNaN(sv) {
				lam.Data.Elements[i] = math.NaN()
				dt.Data.Elements[i] = math.NaN()
				ds.Data.Elements[i] = math.NaN()
				continue
			}
			lam.Data.Elements[i], dt.Data.Elements[i], ds.Data.Elements[i] = e.Eval(tv, sv, pref)
		}
		return &Coordinate{
			Name: name,
			Lam:  lam,
			Deriv: map[string]*grid.Field{
				TracerTemperature: dt,
				TracerSalinity:    ds,
			},
		}, nil
	}
}
