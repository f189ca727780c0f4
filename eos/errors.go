package eos

import "fmt"

// UnsupportedCoordinateError reports a coordinate name with no registered
// resolver.
type UnsupportedCoordinateError struct {
	Name string
}

func (e *UnsupportedCoordinateError) Error() string {
	return fmt.Sprintf("unsupported coordinate %q", e.Name)
}

// MissingTracerError reports a tracer required by a resolver or by
// chain-rule weighting that was not supplied.
type MissingTracerError struct {
	Tracer     string
	Coordinate string
}

func (e *MissingTracerError) Error() string {
	return fmt.Sprintf("coordinate %q: required tracer %q absent", e.Coordinate, e.Tracer)
}
