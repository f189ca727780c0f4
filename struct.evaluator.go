package gowmt

import (
	"github.com/maseology/gowmt/budget"
	"github.com/maseology/gowmt/eos"
	"github.com/maseology/gowmt/grid"
)

// Evaluator wires the collaborators of one transformation analysis: the
// coordinate to bin by, its resolver registry, the budget-term source,
// the flux assembler, the grid adapter and the cell weights. It holds no
// state across invocations; Evaluate is a pure function of its inputs.
type Evaluator struct {
	Coordinate string // registered coordinate name, e.g. "sigma0"
	Reg        *eos.Registry
	Terms      budget.Registry
	Asm        budget.Assembler
	Adp        grid.Adapter
	Weights    *grid.Field // cell volume/area on the evaluation grid
	Edges      Edges       // nil derives percentile edges from the coordinate field
	Ref        *Rate       // optional independent total for the closure residual
}

// nbinsAuto is the bin count used when no edges are supplied, spanning
// the 5th to 95th percentile of the coordinate field.
const nbinsAuto = 100
