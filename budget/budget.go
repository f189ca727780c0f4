// Package budget holds named tracer-tendency terms and their conversion
// to coordinate-space forcing by chain-rule weighting.
package budget

import (
	"fmt"

	"github.com/maseology/gowmt/grid"
)

// Process categorizes a budget term by the physics that produced it.
type Process int

const (
	Surface  Process = iota // boundary heat/freshwater forcing
	Interior                // resolved interior mixing
	Residual                // numerical-mixing residual
)

func (p Process) String() string {
	switch p {
	case Surface:
		return "surface"
	case Interior:
		return "interior"
	case Residual:
		return "residual"
	}
	return "unknown"
}

// Kind states how a term's fields are to be read.
type Kind int

const (
	// LayerTendency is a layer-integrated tracer tendency, used directly.
	LayerTendency Kind = iota
	// InterfacialFlux is a flux through cell faces along the vertical
	// axis; its convergence yields the layer tendency.
	InterfacialFlux
)

// Term is one named, signed budget contribution: a tendency field per
// affected tracer (multivariate terms carry several). Immutable once
// assembled.
type Term struct {
	Name    string
	Process Process
	Kind    Kind
	Tend    map[string]*grid.Field // by tracer code, tracer units per time
}

// Registry is the budget-term collaborator: an opaque enumerable source
// of terms for a dataset, not a fixed schema.
type Registry interface {
	Terms() []Term
}

// Forcing is a term converted to coordinate space.
type Forcing struct {
	Term    string
	Process Process
	Field   *grid.Field
}

// MergeTerms sums same-category terms into one prior to weighting. The
// caller opts in; terms are otherwise kept separate for decomposition.
func MergeTerms(name string, terms ...Term) (Term, error) {
	if len(terms) == 0 {
		return Term{}, fmt.Errorf("merge %q: no terms", name)
	}
	m := Term{Name: name, Process: terms[0].Process, Kind: terms[0].Kind, Tend: map[string]*grid.Field{}}
	for _, t := range terms {
		if t.Process != m.Process || t.Kind != m.Kind {
			return Term{}, fmt.Errorf("merge %q: term %q differs in process or kind", name, t.Name)
		}
		for tr, f := range t.Tend {
			if g, ok := m.Tend[tr]; ok {
				if err := g.Add(f); err != nil {
					return Term{}, fmt.Errorf("merge %q: %w", name, err)
				}
			} else {
				m.Tend[tr] = f.Copy()
			}
		}
	}
	return m, nil
}
