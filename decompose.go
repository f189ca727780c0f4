package gowmt

import (
	"fmt"

	"github.com/maseology/gowmt/budget"
)

// Budget maps process groups to their transformation rates, with the
// derived total and, when a reference total was supplied, the closure
// residual. The residual is a diagnostic of input-budget conservation
// quality, surfaced for the caller to judge; a nonzero value is never an
// engine error.
type Budget struct {
	Edges     Edges
	ByTerm    map[string]*Rate
	ByProcess map[string]*Rate
	Groups    map[string]*Rate
	Total     *Rate
	Residual  *Rate
}

// Decompose groups per-term rates by process category, sums within each
// category, derives total = sum of categories and, given a reference
// total from an independent diagnostic, residual = total - ref.
func Decompose(rates []*Rate, ref *Rate) (*Budget, error) {
	if len(rates) == 0 {
		return nil, fmt.Errorf("decompose: no rates")
	}
	b := &Budget{
		Edges:     rates[0].Edges,
		ByTerm:    map[string]*Rate{},
		ByProcess: map[string]*Rate{},
		Groups:    map[string]*Rate{},
	}
	for _, r := range rates {
		if err := sameGeometry(rates[0], r); err != nil {
			return nil, err
		}
		if _, ok := b.ByTerm[r.Term]; ok {
			return nil, fmt.Errorf("decompose: duplicate term %q", r.Term)
		}
		b.ByTerm[r.Term] = r
		p := r.Process.String()
		if g, ok := b.ByProcess[p]; ok {
			g.add(r)
		} else {
			g = r.zeroRate(p)
			g.add(r)
			b.ByProcess[p] = g
		}
	}
	b.Total = rates[0].zeroRate("total")
	for _, g := range b.ByProcess {
		b.Total.add(g)
	}
	if ref != nil {
		if err := sameGeometry(b.Total, ref); err != nil {
			return nil, err
		}
		res := b.Total.zeroRate("residual")
		res.add(b.Total)
		for t := range res.V {
			for i := range res.V[t] {
				res.V[t][i] -= ref.V[t][i]
			}
		}
		b.Residual = res
	}
	return b, nil
}

// Group sums named terms into a caller-defined process group (e.g.
// surface forcing plus diffusion as diabatic forcing) and retains it on
// the budget.
func (b *Budget) Group(name string, terms ...string) (*Rate, error) {
	var g *Rate
	for _, tn := range terms {
		r, ok := b.ByTerm[tn]
		if !ok {
			return nil, fmt.Errorf("group %q: unknown term %q", name, tn)
		}
		if g == nil {
			g = r.zeroRate(name)
			g.Process = budget.Process(-1) // composite
		}
		g.add(r)
	}
	if g == nil {
		return nil, fmt.Errorf("group %q: no terms", name)
	}
	b.Groups[name] = g
	return g, nil
}

func sameGeometry(a, b *Rate) error {
	if len(a.Edges) != len(b.Edges) || len(a.V) != len(b.V) {
		return fmt.Errorf("rate %q and %q disagree on bins or time slices", a.Term, b.Term)
	}
	for i := range a.Edges {
		if a.Edges[i] != b.Edges[i] {
			return &NonMonotonicBinsError{Msg: "rates binned over different edges"}
		}
	}
	return nil
}
