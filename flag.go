package svggen

import (
	"fmt"

	"github.com/jbeda/geom"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/moto-design/svggen/config"
	"github.com/moto-design/svggen/geometry"
	"github.com/moto-design/svggen/palette"
	"github.com/moto-design/svggen/svg"
)

// DefaultFlagHeight is the flag height used when none is given.
const DefaultFlagHeight = 10000.0

// FlagColors is the color scheme of the flag.
type FlagColors struct {
	Red   palette.Color
	White palette.Color
	Blue  palette.Color
}

// Flag color schemes, selected by name.
var FlagSchemes = map[string]FlagColors{
	"full": {
		Red:   "#b22234",
		White: palette.White,
		Blue:  "#3c3b6e",
	},
	"subdued": {
		Red:   "#706b5c",
		White: "#d9d9d9",
		Blue:  "#585850",
	},
}

// FlagDimensions are the flag proportions, all derived from the height.
type FlagDimensions struct {
	Height       float64
	Width        float64
	CantonHeight float64
	CantonWidth  float64
	StarVGrid    float64
	StarHGrid    float64
	StripeHeight float64
	StarDiameter float64
}

// NewFlagDimensions derives the flag proportions from its height.
func NewFlagDimensions(height float64) FlagDimensions {
	d := FlagDimensions{Height: height}
	d.Width = d.Height * 1.9
	d.CantonHeight = d.Height * 7.0 / 13.0
	d.CantonWidth = d.Width * 2.0 / 5.0
	d.StarVGrid = d.CantonHeight / 10.0
	d.StarHGrid = d.CantonWidth / 12.0
	d.StripeHeight = d.Height / 13.0
	d.StarDiameter = d.StripeHeight * 4.0 / 5.0
	return d
}

// FlagOptions collects the flag parameters from their sources.
type FlagOptions struct {
	Height config.Param[float64]
	Colors string
	Grid   bool
}

// Bind registers the flag flags.
func (o *FlagOptions) Bind(fs *pflag.FlagSet) {
	fs.Var(&o.Height, "height", fmt.Sprintf("Flag height (default %g)", DefaultFlagHeight))
	fs.StringVar(&o.Colors, "colors", "full", "Color scheme: full or subdued")
	fs.BoolVar(&o.Grid, "grid", false, "Draw the star grid of the canton")
}

// Resolve applies the defaults and validates the result.
func (o *FlagOptions) Resolve() (FlagDimensions, FlagColors, error) {
	h := o.Height.Resolve(DefaultFlagHeight)
	if h <= 0 {
		return FlagDimensions{}, FlagColors{}, o.Height.Invalid("height", "must be positive, got %g", h)
	}
	colors, ok := FlagSchemes[o.Colors]
	if !ok {
		return FlagDimensions{}, FlagColors{}, &config.FlagError{Flag: "colors", Msg: fmt.Sprintf("has unknown scheme %q", o.Colors)}
	}
	return NewFlagDimensions(h), colors, nil
}

// Flag draws 13 stripes, the canton and 50 stars. The stars are one
// template placed through nested use references.
type Flag struct {
	Dim    FlagDimensions
	Colors FlagColors
	// Grid adds the star placement grid over the canton.
	Grid bool
	Log  zerolog.Logger
}

// Name implements Generator.
func (f *Flag) Name() string {
	return "flag-generator"
}

// Generate implements Generator.
func (f *Flag) Generate(w *svg.Writer) error {
	d := f.Dim
	f.Log.Debug().
		Float64("height", d.Height).
		Float64("width", d.Width).
		Float64("canton_height", d.CantonHeight).
		Float64("canton_width", d.CantonWidth).
		Float64("star_v_grid", d.StarVGrid).
		Float64("star_h_grid", d.StarHGrid).
		Float64("stripe_height", d.StripeHeight).
		Float64("star_diameter", d.StarDiameter).
		Msg("flag_usa_1")

	vb := rect(0, 0, d.Width, d.Height)
	w.OpenDocument(&vb)
	w.OpenLayer("flag_usa_1", nil)

	w.WriteRect("white_background", svg.Fill(f.Colors.White), nil, vb, 0)

	var stripes string
	for i := 0; i < 7; i++ {
		if i > 0 {
			stripes += " "
		}
		stripes += fmt.Sprintf("M0,%s H%s", svg.Num((0.5+2.0*float64(i))*d.StripeHeight), svg.Num(d.Width))
	}
	w.WritePathData("red_stripes", svg.Stroke(f.Colors.Red, d.StripeHeight), nil, stripes)

	w.WriteRect("blue_background", svg.Fill(f.Colors.Blue), nil, rect(0, 0, d.CantonWidth, d.CantonHeight), 0)

	if f.Grid {
		f.writeGrid(w)
	}
	if err := f.writeStars(w); err != nil {
		return err
	}

	w.CloseGroup()
	w.CloseDocument()
	return nil
}

func (f *Flag) writeGrid(w *svg.Writer) {
	d := f.Dim
	style := svg.Stroke(palette.LightGreen, 1.0+d.Height/1000.0)

	for i := 0; i < 11; i++ {
		y := float64(i) * d.StarVGrid
		w.WriteLine(fmt.Sprintf("v_grid_%d", i), style, geom.Coord{X: 0, Y: y}, geom.Coord{X: d.CantonWidth, Y: y})
	}
	for i := 0; i < 13; i++ {
		x := float64(i) * d.StarHGrid
		w.WriteLine(fmt.Sprintf("h_grid_%d", i), style, geom.Coord{X: x, Y: 0}, geom.Coord{X: x, Y: d.CantonHeight})
	}
}

// writeStars builds the 50 stars from one: a column of 5 (stars_5, whose
// first 4 form stars_4), the offset column of 4 next to it (stars_9), two
// of those (stars_18) repeated once more, one more stars_9 and a last
// column of 5.
func (f *Flag) writeStars(w *svg.Writer) error {
	d := f.Dim
	h, v := d.StarHGrid, d.StarVGrid

	star := geometry.StarParams{
		Points:   5,
		Density:  2,
		Radius:   d.StarDiameter / 2.0,
		Rotation: -90,
	}

	w.OpenGroup("star_group", svg.Fill(f.Colors.White), nil)
	w.OpenGroup("stars_18", nil, nil)
	w.OpenGroup("stars_9", nil, nil)
	w.OpenGroup("stars_5", nil, nil)
	w.OpenGroup("stars_4", nil, nil)

	if err := w.WriteStar("stars_1", nil, svg.Translate(h, v), star); err != nil {
		return err
	}
	for _, y := range []float64{2, 4, 6} {
		w.WriteUse("stars_1", geom.Coord{Y: y * v})
	}
	w.CloseGroup() // stars_4

	w.WriteUse("stars_1", geom.Coord{Y: 8 * v})
	w.CloseGroup() // stars_5

	w.WriteUse("stars_4", geom.Coord{X: h, Y: v})
	w.CloseGroup() // stars_9

	w.WriteUse("stars_9", geom.Coord{X: 2 * h})
	w.CloseGroup() // stars_18

	w.WriteUse("stars_18", geom.Coord{X: 4 * h})
	w.WriteUse("stars_9", geom.Coord{X: 8 * h})
	w.WriteUse("stars_5", geom.Coord{X: 10 * h})
	w.CloseGroup() // star_group
	return nil
}
