package grid

// Adapter reconciles fields defined at different grid positions onto one
// evaluation grid. A pure transform; inputs are never mutated.
type Adapter struct {
	Op Operator
}

// Align returns every field interpolated to the target position per axis.
// Fails with AlignmentError when an axis has no mapping to the target and
// ShapeMismatchError when the aligned set disagrees on extents.
func (a Adapter) Align(target []Position, flds ...*Field) ([]*Field, error) {
	for _, p := range target {
		if !p.valid() {
			return nil, &AlignmentError{Msg: "unknown target position"}
		}
	}
	out := make([]*Field, len(flds))
	for k, f := range flds {
		if f == nil {
			return nil, &ShapeMismatchError{Msg: "nil field"}
		}
		if len(f.Pos) != len(target) {
			return nil, &ShapeMismatchError{Field: f.Name, Msg: "dimensionality differs from target"}
		}
		g := f
		for i, p := range f.Pos {
			if p == target[i] {
				continue
			}
			if a.Op == nil {
				return nil, &AlignmentError{Field: f.Name, Axis: f.Axes[i], Msg: "no operator for " + p.String() + " to " + target[i].String()}
			}
			h, err := a.Op.Interp(g, f.Axes[i], target[i])
			if err != nil {
				return nil, err
			}
			if h.Data.Shape[i]-h.Pos[i].noffset() != f.Data.Shape[i]-p.noffset() {
				return nil, &AlignmentError{Field: f.Name, Axis: f.Axes[i], Msg: "operator broke the staggering offset"}
			}
			g = h
		}
		out[k] = g
	}
	if err := CheckAligned(out...); err != nil {
		return nil, err
	}
	return out, nil
}

// AlignTo aligns fields onto the geometry of a reference field.
func (a Adapter) AlignTo(ref *Field, flds ...*Field) ([]*Field, error) {
	out, err := a.Align(ref.Pos, flds...)
	if err != nil {
		return nil, err
	}
	if err := CheckAligned(append([]*Field{ref}, out...)...); err != nil {
		return nil, err
	}
	return out, nil
}
