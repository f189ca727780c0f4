package gowmt

import "fmt"

// NonMonotonicBinsError reports bin edges that are not strictly
// increasing (or contain NaN, or define fewer than one bin).
type NonMonotonicBinsError struct {
	Msg string
}

func (e *NonMonotonicBinsError) Error() string {
	return fmt.Sprintf("bin edges: %s", e.Msg)
}
