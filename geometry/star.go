package geometry

import (
	"fmt"

	"github.com/jbeda/geom"
)

// StarParams describes a {Points/Density} star polygon.
type StarParams struct {
	Points   uint
	Density  uint
	Radius   float64
	Rotation float64
}

// Star is a star polygon with its derived construction values.
type Star struct {
	StarParams
	SectorAngle float64
	InnerRadius float64
}

// NewStar validates the parameters and derives the inner vertex radius.
//
// The inner radius is found by intersecting two chords of the
// circumscribed circle, each connecting outer vertices Density steps
// apart, the first starting at 0 degrees and the second one outer vertex
// later. A density of half the point count or more yields parallel or
// nearly parallel chords and is reported as a GeometryError.
func NewStar(p StarParams) (*Star, error) {
	if p.Points < 3 {
		return nil, &GeometryError{Op: "star", Reason: fmt.Sprintf("need at least 3 points, got %d", p.Points)}
	}
	if p.Density < 1 {
		return nil, &GeometryError{Op: "star", Reason: "density must be at least 1"}
	}
	if !finite(p.Radius, p.Rotation) {
		return nil, &MathError{Op: "star", Input: [2]float64{p.Radius, p.Rotation}}
	}
	if p.Radius <= 0 {
		return nil, &GeometryError{Op: "star", Reason: fmt.Sprintf("radius must be positive, got %g", p.Radius)}
	}

	s := &Star{
		StarParams:  p,
		SectorAngle: 360.0 / float64(2*p.Points),
	}

	span := 2.0 * s.SectorAngle * float64(p.Density)
	first, err := chord(p.Radius, 0, span)
	if err != nil {
		return nil, err
	}
	second, err := chord(p.Radius, 2.0*s.SectorAngle, span)
	if err != nil {
		return nil, err
	}

	i, err := Intersection(first, second)
	if err != nil {
		return nil, err
	}
	inner, err := ToPolar(i)
	if err != nil {
		return nil, err
	}
	s.InnerRadius = inner.R

	return s, nil
}

// chord returns the line between the points of the circle of radius r
// at angle start and start+span.
func chord(r, start, span float64) (Line, error) {
	a, err := ToCartesian(Polar{R: r, T: start})
	if err != nil {
		return Line{}, err
	}
	b, err := ToCartesian(Polar{R: r, T: start + span})
	if err != nil {
		return Line{}, err
	}
	return NewLine(a, b)
}

// Vertices returns the 2*Points outline vertices, alternating between the
// outer and the inner radius and starting at the rotation angle.
func (s *Star) Vertices() ([]geom.Coord, error) {
	count := 2 * s.Points
	nodes := make([]geom.Coord, 0, count)

	for n := uint(0); n < count; n++ {
		p := Polar{
			R: s.Radius,
			T: s.Rotation + float64(n)*s.SectorAngle,
		}
		if n%2 == 1 {
			p.R = s.InnerRadius
		}
		c, err := ToCartesian(p)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, c)
	}
	return nodes, nil
}

// StarPolygon computes the outline of the star described by p.
func StarPolygon(p StarParams) ([]geom.Coord, error) {
	s, err := NewStar(p)
	if err != nil {
		return nil, err
	}
	return s.Vertices()
}
