package grid

import (
	"math"

	"github.com/ctessum/sparse"
)

// Field is a dense n-dimensional gridded variable: named axes, a grid
// position per axis and physical units. Data are held flat in
// Data.Elements (C order, last axis fastest).
type Field struct {
	Name  string
	Units string
	Axes  []string
	Pos   []Position
	Data  *sparse.DenseArray
}

// NewField builds a zeroed field. len(axes), len(pos) and len(dims) must agree.
func NewField(name, units string, axes []string, pos []Position, dims ...int) (*Field, error) {
	if len(axes) != len(dims) || len(pos) != len(dims) {
		return nil, &ShapeMismatchError{Field: name, Msg: "axis/position/dimension counts disagree"}
	}
	for i, p := range pos {
		if !p.valid() {
			return nil, &AlignmentError{Field: name, Axis: axes[i], Msg: "unknown grid position"}
		}
		if dims[i] < 1 {
			return nil, &ShapeMismatchError{Field: name, Msg: "empty axis " + axes[i]}
		}
	}
	return &Field{
		Name:  name,
		Units: units,
		Axes:  append([]string{}, axes...),
		Pos:   append([]Position{}, pos...),
		Data:  sparse.ZerosDense(dims...),
	}, nil
}

// NewFieldData builds a field around an existing flat value slice.
func NewFieldData(name, units string, axes []string, pos []Position, v []float64, dims ...int) (*Field, error) {
	f, err := NewField(name, units, axes, pos, dims...)
	if err != nil {
		return nil, err
	}
	if len(v) != len(f.Data.Elements) {
		return nil, &ShapeMismatchError{Field: name, Msg: "value slice does not fill the grid"}
	}
	copy(f.Data.Elements, v)
	return f, nil
}

// Axis returns the index of a named axis, -1 if absent.
func (f *Field) Axis(name string) int {
	for i, a := range f.Axes {
		if a == name {
			return i
		}
	}
	return -1
}

func (f *Field) nval() int { return len(f.Data.Elements) }

// Copy returns a deep copy.
func (f *Field) Copy() *Field {
	c, _ := NewFieldData(f.Name, f.Units, f.Axes, f.Pos, f.Data.Elements, f.Data.Shape...)
	return c
}

// Fill sets every element to v.
func (f *Field) Fill(v float64) *Field {
	for i := range f.Data.Elements {
		f.Data.Elements[i] = v
	}
	return f
}

// Scale multiplies in place and returns f.
func (f *Field) Scale(s float64) *Field {
	for i := range f.Data.Elements {
		f.Data.Elements[i] *= s
	}
	return f
}

// Add accumulates o into f elementwise; NaN in either operand yields NaN.
func (f *Field) Add(o *Field) error {
	if err := CheckAligned(f, o); err != nil {
		return err
	}
	for i, v := range o.Data.Elements {
		f.Data.Elements[i] += v
	}
	return nil
}

// Defined reports whether element i carries a value (masked cells are NaN).
func (f *Field) Defined(i int) bool {
	return !math.IsNaN(f.Data.Elements[i])
}

// Like builds an empty field sharing f's geometry.
func (f *Field) Like(name, units string) *Field {
	g, _ := NewField(name, units, f.Axes, f.Pos, f.Data.Shape...)
	return g
}

// Strides returns the flat-index stride of each axis.
func (f *Field) Strides() []int {
	n := len(f.Data.Shape)
	s := make([]int, n)
	st := 1
	for i := n - 1; i >= 0; i-- {
		s[i] = st
		st *= f.Data.Shape[i]
	}
	return s
}
