package grid

// Operator is the external grid-operator collaborator: it moves a field
// between adjacent positions along one axis, changing the axis length only
// by the staggering offset.
type Operator interface {
	Interp(f *Field, axis string, to Position) (*Field, error)
	Diff(f *Field, axis string, to Position) (*Field, error)
}

// alongAxis applies fn to every grid line along the given axis, writing a
// new field whose axis length is nout and position is pos.
func alongAxis(f *Field, axis, nout int, pos Position, fn func(in, out []float64)) (*Field, error) {
	dims := append([]int{}, f.Data.Shape...)
	nin := dims[axis]
	dims[axis] = nout
	ps := append([]Position{}, f.Pos...)
	ps[axis] = pos
	out, err := NewField(f.Name, f.Units, f.Axes, ps, dims...)
	if err != nil {
		return nil, err
	}

	inner := f.Strides()[axis]
	outer := f.nval() / (nin * inner)
	in, ln := f.Data.Elements, make([]float64, nin)
	lo := make([]float64, nout)
	for o := 0; o < outer; o++ {
		for j := 0; j < inner; j++ {
			bi, bo := o*nin*inner+j, o*nout*inner+j
			for i := 0; i < nin; i++ {
				ln[i] = in[bi+i*inner]
			}
			fn(ln, lo)
			for i := 0; i < nout; i++ {
				out.Data.Elements[bo+i*inner] = lo[i]
			}
		}
	}
	return out, nil
}

// LinearOperator is a reference Operator: two-point means for
// interpolation, forward differences for differencing, with extended
// boundaries. External collaborators with metric-aware operators satisfy
// the same interface.
type LinearOperator struct{}

func (LinearOperator) Interp(f *Field, axis string, to Position) (*Field, error) {
	ia := f.Axis(axis)
	if ia < 0 {
		return nil, &AlignmentError{Field: f.Name, Axis: axis, Msg: "axis not present"}
	}
	from, n := f.Pos[ia], f.Data.Shape[ia]
	switch {
	case from == to:
		return f.Copy(), nil
	case from == Center && to == Face:
		return alongAxis(f, ia, n+1, Face, func(in, out []float64) {
			out[0], out[n] = in[0], in[n-1]
			for i := 1; i < n; i++ {
				out[i] = .5 * (in[i-1] + in[i])
			}
		})
	case from == Face && to == Center:
		if n < 2 {
			return nil, &AlignmentError{Field: f.Name, Axis: axis, Msg: "face axis too short to destagger"}
		}
		return alongAxis(f, ia, n-1, Center, func(in, out []float64) {
			for i := 0; i < n-1; i++ {
				out[i] = .5 * (in[i] + in[i+1])
			}
		})
	}
	return nil, &AlignmentError{Field: f.Name, Axis: axis, Msg: "no interpolation from " + from.String() + " to " + to.String()}
}

func (LinearOperator) Diff(f *Field, axis string, to Position) (*Field, error) {
	ia := f.Axis(axis)
	if ia < 0 {
		return nil, &AlignmentError{Field: f.Name, Axis: axis, Msg: "axis not present"}
	}
	from, n := f.Pos[ia], f.Data.Shape[ia]
	switch {
	case from == Face && to == Center:
		if n < 2 {
			return nil, &AlignmentError{Field: f.Name, Axis: axis, Msg: "face axis too short to destagger"}
		}
		return alongAxis(f, ia, n-1, Center, func(in, out []float64) {
			for i := 0; i < n-1; i++ {
				out[i] = in[i+1] - in[i]
			}
		})
	case from == Center && to == Face:
		return alongAxis(f, ia, n+1, Face, func(in, out []float64) {
			out[0], out[n] = 0., 0.
			for i := 1; i < n; i++ {
				out[i] = in[i] - in[i-1]
			}
		})
	}
	return nil, &AlignmentError{Field: f.Name, Axis: axis, Msg: "no difference from " + from.String() + " to " + to.String()}
}
