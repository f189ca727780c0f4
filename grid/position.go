package grid

// Position locates a field along one axis of a staggered grid.
type Position int

const (
	// Center positions values at cell centers.
	Center Position = iota
	// Face positions values at cell faces; a face axis holds one more
	// value than the corresponding center axis.
	Face
)

func (p Position) String() string {
	switch p {
	case Center:
		return "center"
	case Face:
		return "face"
	}
	return "unknown"
}

func (p Position) valid() bool {
	return p == Center || p == Face
}

// noffset returns the size offset of a position relative to center.
func (p Position) noffset() int {
	if p == Face {
		return 1
	}
	return 0
}
