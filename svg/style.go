package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jbeda/geom"
	"github.com/moto-design/svggen/palette"
)

// Style holds the paint attributes of a group or shape.
// Colors that are not valid hex colors are left out of the output.
type Style struct {
	Fill        palette.Color
	Stroke      palette.Color
	StrokeWidth float64
}

// Fill returns a style that only fills with c.
func Fill(c palette.Color) *Style {
	return &Style{Fill: c}
}

// Stroke returns a style that only strokes with c.
func Stroke(c palette.Color, width float64) *Style {
	return &Style{Stroke: c, StrokeWidth: width}
}

func (s *Style) attrs() []string {
	if s == nil {
		return nil
	}
	var a []string
	if s.Fill.Valid() {
		a = append(a, attr("fill", string(s.Fill)))
	}
	if s.Stroke.Valid() {
		a = append(a, attr("stroke", string(s.Stroke)))
		if s.StrokeWidth > 0 {
			a = append(a, attr("stroke-width", Num(s.StrokeWidth)))
		}
	}
	return a
}

// Transform is a translate, scale, rotate sequence. Null parts
// (zero translation, a scale of 0 or 1, zero rotation) are not written.
type Transform struct {
	Translate geom.Coord
	Scale     float64
	Rotate    float64
	Center    geom.Coord
}

// Translate returns a transform that only moves by (x, y).
func Translate(x, y float64) *Transform {
	return &Transform{Translate: geom.Coord{X: x, Y: y}}
}

func (t *Transform) attrs() []string {
	if t == nil {
		return nil
	}
	var ops []string
	if t.Translate.X != 0 || t.Translate.Y != 0 {
		ops = append(ops, fmt.Sprintf("translate(%s %s)", Num(t.Translate.X), Num(t.Translate.Y)))
	}
	if t.Scale != 0 && t.Scale != 1 {
		ops = append(ops, fmt.Sprintf("scale(%s)", Num(t.Scale)))
	}
	if t.Rotate != 0 {
		if t.Center.X != 0 || t.Center.Y != 0 {
			ops = append(ops, fmt.Sprintf("rotate(%s %s %s)", Num(t.Rotate), Num(t.Center.X), Num(t.Center.Y)))
		} else {
			ops = append(ops, fmt.Sprintf("rotate(%s)", Num(t.Rotate)))
		}
	}
	if len(ops) == 0 {
		return nil
	}
	return []string{attr("transform", strings.Join(ops, " "))}
}

// Num formats a coordinate with at most four decimals and no trailing zeros.
func Num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		// Also turns -0 into 0.
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Pair formats a point as "x,y".
func Pair(c geom.Coord) string {
	return Num(c.X) + "," + Num(c.Y)
}

func attr(name, value string) string {
	return name + `="` + value + `"`
}
