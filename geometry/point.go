// Package geometry implements the small amount of plane geometry needed
// by the generators: polar and cartesian points, straight lines through
// two points and regular star polygons.
package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Polar is a point given by its distance from the origin and its angle in degrees.
type Polar struct {
	R float64
	T float64
}

// DegToRad converts degrees into radians.
func DegToRad(d float64) float64 {
	return d * math.Pi / 180.0
}

// RadToDeg converts radians into degrees.
func RadToDeg(r float64) float64 {
	return r * 180.0 / math.Pi
}

func finite(v ...float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// ToCartesian converts a polar point into cartesian coordinates.
func ToCartesian(p Polar) (geom.Coord, error) {
	rad := DegToRad(p.T)
	c := geom.Coord{
		X: p.R * math.Cos(rad),
		Y: p.R * math.Sin(rad),
	}
	if !finite(p.R, p.T, c.X, c.Y) {
		return geom.Coord{}, &MathError{Op: "polar to cartesian", Input: [2]float64{p.R, p.T}}
	}
	return c, nil
}

// ToPolar converts a cartesian point into polar coordinates.
// The returned angle lies in (-180, 180].
func ToPolar(c geom.Coord) (Polar, error) {
	p := Polar{
		R: math.Hypot(c.X, c.Y),
		T: RadToDeg(math.Atan2(c.Y, c.X)),
	}
	if !finite(c.X, c.Y, p.R, p.T) {
		return Polar{}, &MathError{Op: "cartesian to polar", Input: [2]float64{c.X, c.Y}}
	}
	return p, nil
}
