package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestGeometry_PolarRoundTrip(t *testing.T) {
	assert := assert.New(t)

	c, err := ToCartesian(Polar{R: 2, T: 90})
	assert.NoError(err)
	assert.InDelta(0, c.X, tolerance)
	assert.InDelta(2, c.Y, tolerance)

	p, err := ToPolar(geom.Coord{X: -1, Y: 0})
	assert.NoError(err)
	assert.InDelta(1, p.R, tolerance)
	assert.InDelta(180, p.T, tolerance)

	p, err = ToPolar(geom.Coord{X: 3, Y: -3})
	assert.NoError(err)
	assert.InDelta(3*math.Sqrt2, p.R, tolerance)
	assert.InDelta(-45, p.T, tolerance)
}

func TestGeometry_InvalidConversion(t *testing.T) {
	var mathErr *MathError

	_, err := ToCartesian(Polar{R: math.Inf(1), T: 0})
	assert.True(t, errors.As(err, &mathErr))

	_, err = ToPolar(geom.Coord{X: math.NaN(), Y: 1})
	assert.True(t, errors.As(err, &mathErr))
}

func TestGeometry_LineThroughSamePoint(t *testing.T) {
	_, err := NewLine(geom.Coord{X: 1, Y: 1}, geom.Coord{X: 1, Y: 1})

	var geomErr *GeometryError
	assert.True(t, errors.As(err, &geomErr))
}

func TestGeometry_Intersection(t *testing.T) {
	assert := assert.New(t)

	// Slopes 0 and 0.2 through the origin and (0, 1).
	l1, err := NewLine(geom.Coord{X: 0, Y: 1}, geom.Coord{X: 10, Y: 1})
	require.NoError(t, err)
	l2, err := NewLine(geom.Coord{X: 0, Y: 0}, geom.Coord{X: 10, Y: 2})
	require.NoError(t, err)

	c, err := Intersection(l1, l2)
	assert.NoError(err)
	assert.InDelta(5, c.X, tolerance)
	assert.InDelta(1, c.Y, tolerance)

	// Slopes differing by 0.05 are too close to parallel.
	l3, err := NewLine(geom.Coord{X: 0, Y: 0}, geom.Coord{X: 20, Y: 1})
	require.NoError(t, err)
	_, err = Intersection(l1, l3)

	var geomErr *GeometryError
	assert.True(errors.As(err, &geomErr))
}

func TestGeometry_VerticalIntersection(t *testing.T) {
	assert := assert.New(t)

	v, err := NewLine(geom.Coord{X: 2, Y: -5}, geom.Coord{X: 2, Y: 5})
	require.NoError(t, err)
	assert.True(v.Vertical())

	l, err := NewLine(geom.Coord{X: 0, Y: 0}, geom.Coord{X: 1, Y: 1})
	require.NoError(t, err)

	c, err := Intersection(v, l)
	assert.NoError(err)
	assert.InDelta(2, c.X, tolerance)
	assert.InDelta(2, c.Y, tolerance)

	c, err = Intersection(l, v)
	assert.NoError(err)
	assert.InDelta(2, c.Y, tolerance)

	_, err = Intersection(v, v)
	assert.Error(err)
}

func TestStar_Pentagram(t *testing.T) {
	assert := assert.New(t)

	s, err := NewStar(StarParams{Points: 5, Density: 2, Radius: 100, Rotation: -90})
	require.NoError(t, err)
	assert.InDelta(36, s.SectorAngle, tolerance)

	expected := 100 * math.Cos(DegToRad(72)) / math.Cos(DegToRad(36))
	assert.InDelta(expected, s.InnerRadius, 1e-6)
	assert.InDelta(38.1966, s.InnerRadius, 1e-4)

	nodes, err := s.Vertices()
	require.NoError(t, err)
	assert.Len(nodes, 10)

	assert.InDelta(0, nodes[0].X, 1e-6)
	assert.InDelta(-100, nodes[0].Y, 1e-6)

	for i, n := range nodes {
		r := math.Hypot(n.X, n.Y)
		if i%2 == 0 {
			assert.InDelta(100, r, 1e-6)
		} else {
			assert.InDelta(s.InnerRadius, r, 1e-6)
		}
	}
}

func TestStar_Triangle(t *testing.T) {
	// The second chord of a {3/1} star is vertical.
	s, err := NewStar(StarParams{Points: 3, Density: 1, Radius: 10})
	require.NoError(t, err)
	assert.InDelta(t, 10, s.InnerRadius, 1e-6)
}

func TestStar_InvalidParams(t *testing.T) {
	tests := []StarParams{
		{Points: 2, Density: 1, Radius: 1},
		{Points: 5, Density: 0, Radius: 1},
		{Points: 5, Density: 2, Radius: 0},
		{Points: 5, Density: 2, Radius: math.NaN()},
	}
	for _, p := range tests {
		_, err := StarPolygon(p)
		assert.Error(t, err, "params %+v", p)
	}
}
