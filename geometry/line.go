package geometry

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/moto-design/svggen/utils"
)

// parallelTolerance is the smallest slope difference for which two lines
// are considered to intersect. Star construction only needs well
// separated intersections, so nearly parallel lines are rejected too.
const parallelTolerance = 0.1

// verticalEpsilon is the relative run below which a line is treated as vertical.
const verticalEpsilon = 1e-9

// Line is the straight line through two distinct points.
// Slope and Intercept describe it as y = Slope*x + Intercept; for a
// vertical line Slope is infinite and Intercept is meaningless.
type Line struct {
	A, B      geom.Coord
	Slope     float64
	Intercept float64
}

// NewLine returns the line through a and b.
func NewLine(a, b geom.Coord) (Line, error) {
	if a == b {
		return Line{}, &GeometryError{Op: "line", Reason: "end points coincide"}
	}
	l := Line{A: a, B: b}

	dx := b.X - a.X
	scale := utils.Max(1, utils.Max(utils.Abs(a.X), utils.Abs(b.X)))
	if utils.Abs(dx) <= verticalEpsilon*scale {
		l.Slope = math.Inf(1)
		l.Intercept = math.NaN()
		return l, nil
	}
	l.Slope = (b.Y - a.Y) / dx
	l.Intercept = a.Y - l.Slope*a.X
	return l, nil
}

// Vertical reports whether the line is parallel to the y axis.
func (l Line) Vertical() bool {
	return math.IsInf(l.Slope, 0) || math.IsNaN(l.Slope)
}

// At returns the y coordinate of the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Intersection returns the point where the two lines cross.
func Intersection(l1, l2 Line) (geom.Coord, error) {
	switch v1, v2 := l1.Vertical(), l2.Vertical(); {
	case v1 && v2:
		return geom.Coord{}, &GeometryError{Op: "intersection", Reason: "no intersection (both lines vertical)"}
	case v1:
		x := l1.A.X
		return geom.Coord{X: x, Y: l2.At(x)}, nil
	case v2:
		x := l2.A.X
		return geom.Coord{X: x, Y: l1.At(x)}, nil
	}

	diff := l1.Slope - l2.Slope
	if utils.Abs(diff) < parallelTolerance {
		return geom.Coord{}, &GeometryError{Op: "intersection", Reason: "no intersection (nearly parallel lines)"}
	}

	x := (l2.Intercept - l1.Intercept) / diff
	return geom.Coord{X: x, Y: l1.At(x)}, nil
}
