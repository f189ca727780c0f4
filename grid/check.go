package grid

// CheckAligned verifies that all fields share axes, positions and extents.
func CheckAligned(flds ...*Field) error {
	if len(flds) < 2 {
		return nil
	}
	f0 := flds[0]
	for _, f := range flds[1:] {
		if f == nil {
			return &ShapeMismatchError{Msg: "nil field"}
		}
		if len(f.Axes) != len(f0.Axes) {
			return &ShapeMismatchError{Field: f.Name, Msg: "dimensionality differs from " + f0.Name}
		}
		for i := range f.Axes {
			switch {
			case f.Axes[i] != f0.Axes[i]:
				return &ShapeMismatchError{Field: f.Name, Msg: "axis order differs from " + f0.Name}
			case f.Pos[i] != f0.Pos[i]:
				return &ShapeMismatchError{Field: f.Name, Msg: "grid position differs from " + f0.Name + " along " + f.Axes[i]}
			case f.Data.Shape[i] != f0.Data.Shape[i]:
				return &ShapeMismatchError{Field: f.Name, Msg: "extent differs from " + f0.Name + " along " + f.Axes[i]}
			}
		}
	}
	return nil
}
