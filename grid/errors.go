package grid

import "fmt"

// AlignmentError reports a field that cannot be brought to the requested
// grid position, either because no operator mapping exists for an axis or
// because sizes are incompatible after accounting for staggering offsets.
type AlignmentError struct {
	Field string
	Axis  string
	Msg   string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("grid alignment: field %q axis %q: %s", e.Field, e.Axis, e.Msg)
}

// ShapeMismatchError reports fields that disagree on dimensionality or
// extent after alignment.
type ShapeMismatchError struct {
	Field string
	Msg   string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: field %q: %s", e.Field, e.Msg)
}
