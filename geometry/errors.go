package geometry

import "fmt"

// GeometryError reports a degenerate construction: lines that do not
// intersect, coincident end points or a sector layout that cannot hold
// the requested number of nodes.
type GeometryError struct {
	Op     string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry: %s: %s", e.Op, e.Reason)
}

// MathError reports a floating point domain error, i.e. a NaN or an
// infinity produced by a coordinate conversion.
type MathError struct {
	Op    string
	Input [2]float64
}

func (e *MathError) Error() string {
	return fmt.Sprintf("math: %s: invalid operation on {%g, %g}", e.Op, e.Input[0], e.Input[1])
}
