package svggen

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/moto-design/svggen/config"
	"github.com/moto-design/svggen/geometry"
	"github.com/moto-design/svggen/palette"
	"github.com/moto-design/svggen/svg"
)

// Built-in star settings.
var (
	DefaultStarParams = geometry.StarParams{
		Points:   5,
		Density:  2,
		Radius:   10000.0 * 4.0 / 13.0 / 5.0 / 2.0,
		Rotation: 90,
	}
	DefaultStarStyle = svg.Style{
		Fill:        palette.Yellow,
		Stroke:      palette.TrueBlue,
		StrokeWidth: 3,
	}
)

// StarOptions collects the star parameters from their sources.
type StarOptions struct {
	Points      config.Param[uint]
	Density     config.Param[uint]
	Radius      config.Param[float64]
	Rotation    config.Param[float64]
	FillColor   config.Param[palette.Color]
	StrokeColor config.Param[palette.Color]
	StrokeWidth config.Param[float64]
}

// Bind registers the star flags.
func (o *StarOptions) Bind(fs *pflag.FlagSet) {
	d, s := DefaultStarParams, DefaultStarStyle

	fs.Var(&o.Points, "points", fmt.Sprintf("Number of star points (default %d)", d.Points))
	fs.Var(&o.Density, "density", fmt.Sprintf("Star density, vertices skipped per edge (default %d)", d.Density))
	fs.Var(&o.Radius, "radius", fmt.Sprintf("Star radius (default %g)", d.Radius))
	fs.Var(&o.Rotation, "rotation", fmt.Sprintf("Angle of the first point in degrees (default %g)", d.Rotation))
	fs.Var(&o.FillColor, "fill-color", fmt.Sprintf("Fill color (default %s)", s.Fill))
	fs.Var(&o.StrokeColor, "stroke-color", fmt.Sprintf("Stroke color (default %s)", s.Stroke))
	fs.Var(&o.StrokeWidth, "stroke-width", fmt.Sprintf("Stroke width (default %g)", s.StrokeWidth))
}

// Resolve applies the defaults. The star itself is validated on construction.
func (o *StarOptions) Resolve() (geometry.StarParams, svg.Style, error) {
	d, s := DefaultStarParams, DefaultStarStyle

	p := geometry.StarParams{
		Points:   o.Points.Resolve(d.Points),
		Density:  o.Density.Resolve(d.Density),
		Radius:   o.Radius.Resolve(d.Radius),
		Rotation: o.Rotation.Resolve(d.Rotation),
	}
	style := svg.Style{
		Fill:        o.FillColor.Resolve(s.Fill),
		Stroke:      o.StrokeColor.Resolve(s.Stroke),
		StrokeWidth: o.StrokeWidth.Resolve(s.StrokeWidth),
	}
	if style.StrokeWidth < 0 {
		return p, style, o.StrokeWidth.Invalid("stroke-width", "must not be negative, got %g", style.StrokeWidth)
	}
	return p, style, nil
}

// Star draws a single {Points/Density} star polygon centered in its view box.
type Star struct {
	Params geometry.StarParams
	// Style defaults to DefaultStarStyle when nil.
	Style *svg.Style
	Log   zerolog.Logger
}

// Name implements Generator.
func (s *Star) Name() string {
	return "star-generator"
}

// Generate implements Generator.
func (s *Star) Generate(w *svg.Writer) error {
	star, err := geometry.NewStar(s.Params)
	if err != nil {
		return err
	}
	nodes, err := star.Vertices()
	if err != nil {
		return err
	}
	s.Log.Debug().
		Uint("points", star.Points).
		Uint("density", star.Density).
		Float64("radius", star.Radius).
		Float64("sector_angle", star.SectorAngle).
		Float64("inner_radius", star.InnerRadius).
		Msg("star")

	style := s.Style
	if style == nil {
		style = &DefaultStarStyle
	}

	r := star.Radius
	vb := rect(-1.5*r, -1.5*r, 3*r, 3*r)
	w.OpenDocument(&vb)
	w.WritePolygon(fmt.Sprintf("star_%d", star.Points), style, nil, nodes)
	w.CloseDocument()
	return nil
}
