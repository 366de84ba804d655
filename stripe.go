package svggen

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/moto-design/svggen/config"
	"github.com/moto-design/svggen/geometry"
	"github.com/moto-design/svggen/palette"
	"github.com/moto-design/svggen/svg"
	"github.com/moto-design/svggen/utils"
)

// StripeParams describes the chain of leaning blocks.
type StripeParams struct {
	BlockCount uint
	// TopAngle and BottomAngle are the slopes of the top and bottom edge lines in degrees.
	TopAngle    float64
	BottomAngle float64
	// LeanAngle is the angle of the block sides in degrees.
	LeanAngle   float64
	BlockHeight float64
	BlockWidth  float64
	GapWidth    float64
	// BlockMultiplier and GapMultiplier scale each width relative to the previous one.
	BlockMultiplier float64
	GapMultiplier   float64
}

// DefaultStripeParams are the built-in stripe settings.
var DefaultStripeParams = StripeParams{
	BlockCount:      10,
	TopAngle:        172,
	BottomAngle:     -1,
	LeanAngle:       60,
	BlockHeight:     150,
	BlockWidth:      210,
	GapWidth:        19,
	BlockMultiplier: 0.85,
	GapMultiplier:   0.91,
}

// stripeMargin is the space between the blocks and the view box edge.
const stripeMargin = 50.0

// StripeOptions collects the stripe parameters from their sources.
type StripeOptions struct {
	BlockCount      config.Param[uint]
	TopAngle        config.Param[float64]
	BottomAngle     config.Param[float64]
	LeanAngle       config.Param[float64]
	BlockHeight     config.Param[float64]
	BlockWidth      config.Param[float64]
	GapWidth        config.Param[float64]
	BlockMultiplier config.Param[float64]
	GapMultiplier   config.Param[float64]
}

type stripeFile struct {
	BlockCount      *uint    `config:"block_count"`
	TopAngle        *float64 `config:"top_angle"`
	BottomAngle     *float64 `config:"bottom_angle"`
	LeanAngle       *float64 `config:"lean_angle"`
	BlockHeight     *float64 `config:"block_height"`
	BlockWidth      *float64 `config:"block_width"`
	GapWidth        *float64 `config:"gap_width"`
	BlockMultiplier *float64 `config:"block_multiplier"`
	GapMultiplier   *float64 `config:"gap_multiplier"`
}

// Bind registers the stripe flags.
func (o *StripeOptions) Bind(fs *pflag.FlagSet) {
	d := DefaultStripeParams

	fs.Var(&o.BlockCount, "block-count", fmt.Sprintf("Number of blocks (default %d)", d.BlockCount))
	fs.Var(&o.TopAngle, "top-angle", fmt.Sprintf("Top edge angle (default %g)", d.TopAngle))
	fs.Var(&o.BottomAngle, "bottom-angle", fmt.Sprintf("Bottom edge angle (default %g)", d.BottomAngle))
	fs.Var(&o.LeanAngle, "lean-angle", fmt.Sprintf("Block lean angle (default %g)", d.LeanAngle))
	fs.Var(&o.BlockHeight, "block-height", fmt.Sprintf("Block height (default %g)", d.BlockHeight))
	fs.Var(&o.BlockWidth, "block-width", fmt.Sprintf("First block width (default %g)", d.BlockWidth))
	fs.Var(&o.GapWidth, "gap-width", fmt.Sprintf("First gap width (default %g)", d.GapWidth))
	fs.Var(&o.BlockMultiplier, "block-multiplier", fmt.Sprintf("Block width multiplier (default %g)", d.BlockMultiplier))
	fs.Var(&o.GapMultiplier, "gap-multiplier", fmt.Sprintf("Gap width multiplier (default %g)", d.GapMultiplier))
}

// ApplyFile fills the parameters not given on the command line from f.
// Keys no stripe parameter uses are returned.
func (o *StripeOptions) ApplyFile(f *config.File) ([]config.Entry, error) {
	var lf stripeFile
	unused, err := f.Decode(&lf)
	if err != nil {
		return nil, err
	}
	o.BlockCount.Merge(lf.BlockCount, f.Position("block_count"))
	o.TopAngle.Merge(lf.TopAngle, f.Position("top_angle"))
	o.BottomAngle.Merge(lf.BottomAngle, f.Position("bottom_angle"))
	o.LeanAngle.Merge(lf.LeanAngle, f.Position("lean_angle"))
	o.BlockHeight.Merge(lf.BlockHeight, f.Position("block_height"))
	o.BlockWidth.Merge(lf.BlockWidth, f.Position("block_width"))
	o.GapWidth.Merge(lf.GapWidth, f.Position("gap_width"))
	o.BlockMultiplier.Merge(lf.BlockMultiplier, f.Position("block_multiplier"))
	o.GapMultiplier.Merge(lf.GapMultiplier, f.Position("gap_multiplier"))
	return unused, nil
}

// Resolve applies the defaults and validates the result.
func (o *StripeOptions) Resolve() (StripeParams, error) {
	d := DefaultStripeParams
	p := StripeParams{
		BlockCount:      o.BlockCount.Resolve(d.BlockCount),
		TopAngle:        o.TopAngle.Resolve(d.TopAngle),
		BottomAngle:     o.BottomAngle.Resolve(d.BottomAngle),
		LeanAngle:       o.LeanAngle.Resolve(d.LeanAngle),
		BlockHeight:     o.BlockHeight.Resolve(d.BlockHeight),
		BlockWidth:      o.BlockWidth.Resolve(d.BlockWidth),
		GapWidth:        o.GapWidth.Resolve(d.GapWidth),
		BlockMultiplier: o.BlockMultiplier.Resolve(d.BlockMultiplier),
		GapMultiplier:   o.GapMultiplier.Resolve(d.GapMultiplier),
	}
	switch {
	case p.BlockCount == 0:
		return p, o.BlockCount.Invalid("block-count", "must be at least 1")
	case p.BlockHeight <= 0:
		return p, o.BlockHeight.Invalid("block-height", "must be positive, got %g", p.BlockHeight)
	case p.BlockWidth <= 0:
		return p, o.BlockWidth.Invalid("block-width", "must be positive, got %g", p.BlockWidth)
	case p.GapWidth < 0:
		return p, o.GapWidth.Invalid("gap-width", "must not be negative, got %g", p.GapWidth)
	}
	return p, nil
}

// lineFactors project a width along a block edge line.
type lineFactors struct {
	a, x, y float64
}

func newLineFactors(edge, lean float64) (lineFactors, error) {
	d := math.Sin(geometry.DegToRad(lean - edge))
	if utils.AlmostEqual(d, 0, 1e-9) {
		return lineFactors{}, &geometry.GeometryError{
			Op:     "stripe",
			Reason: fmt.Sprintf("edge angle %g is parallel to lean angle %g", edge, lean),
		}
	}
	lr := geometry.DegToRad(lean)
	return lineFactors{
		a: math.Sin(geometry.DegToRad(edge)) / d,
		x: math.Cos(lr),
		y: math.Sin(lr),
	}, nil
}

// next returns the point width further along the edge line from start.
func (f lineFactors) next(start geom.Coord, width float64) geom.Coord {
	a := width * f.a
	return geom.Coord{
		X: start.X + width + a*f.x,
		Y: start.Y + a*f.y,
	}
}

// StripeBlock holds the four corners of a block.
type StripeBlock struct {
	BottomLeft  geom.Coord
	TopLeft     geom.Coord
	TopRight    geom.Coord
	BottomRight geom.Coord
}

// StripeBlocks computes the block chain. Each block starts one gap to the
// right of the previous one; the first block follows the start edge
// leaning up from the origin.
func StripeBlocks(p StripeParams) ([]StripeBlock, error) {
	top, err := newLineFactors(p.TopAngle, p.LeanAngle)
	if err != nil {
		return nil, err
	}
	bottom, err := newLineFactors(p.BottomAngle, p.LeanAngle)
	if err != nil {
		return nil, err
	}
	tanLean := math.Tan(geometry.DegToRad(p.LeanAngle))
	if utils.AlmostEqual(tanLean, 0, 1e-12) || math.IsNaN(tanLean) {
		return nil, &geometry.GeometryError{Op: "stripe", Reason: fmt.Sprintf("bad lean angle %g", p.LeanAngle)}
	}

	prev := StripeBlock{
		BottomRight: geom.Coord{X: 0, Y: 0},
		TopRight:    geom.Coord{X: p.BlockHeight / tanLean, Y: p.BlockHeight},
	}

	blocks := make([]StripeBlock, 0, p.BlockCount)
	bw, gw := p.BlockWidth, p.GapWidth
	for i := uint(0); i < p.BlockCount; i++ {
		var b StripeBlock
		b.BottomLeft = bottom.next(prev.BottomRight, gw)
		b.BottomRight = bottom.next(b.BottomLeft, bw)
		b.TopLeft = top.next(prev.TopRight, gw)
		b.TopRight = top.next(b.TopLeft, bw)
		blocks = append(blocks, b)

		prev = b
		bw *= p.BlockMultiplier
		gw *= p.GapMultiplier
	}
	return blocks, nil
}

// Stripe draws a chain of leaning, shrinking blocks.
type Stripe struct {
	Params     StripeParams
	Background bool
	Log        zerolog.Logger
}

// Name implements Generator.
func (s *Stripe) Name() string {
	return "stripe-generator"
}

// Generate implements Generator.
func (s *Stripe) Generate(w *svg.Writer) error {
	blocks, err := StripeBlocks(s.Params)
	if err != nil {
		return err
	}

	bounds := geom.Rect{Min: blocks[0].BottomLeft, Max: blocks[0].BottomLeft}
	for i, b := range blocks {
		for _, c := range []geom.Coord{b.BottomLeft, b.TopLeft, b.TopRight, b.BottomRight} {
			bounds.ExpandToContainCoord(c)
		}
		s.Log.Debug().
			Str("BL", svg.Pair(b.BottomLeft)).
			Str("TL", svg.Pair(b.TopLeft)).
			Str("TR", svg.Pair(b.TopRight)).
			Str("BR", svg.Pair(b.BottomRight)).
			Msgf("block_%d", i+1)
	}
	vb := rect(
		bounds.Min.X-stripeMargin,
		bounds.Min.Y-stripeMargin,
		bounds.Width()+2*stripeMargin,
		bounds.Height()+2*stripeMargin,
	)

	w.OpenDocument(&vb)
	if s.Background {
		w.WriteBackground(svg.Fill(palette.LightGray), vb, stripeMargin)
	}
	w.OpenLayer("stripes", nil)
	style := svg.Fill(palette.Gray)
	for i, b := range blocks {
		nodes := []geom.Coord{b.BottomLeft, b.TopLeft, b.TopRight, b.BottomRight}
		w.WritePath(fmt.Sprintf("block_%d", i+1), style, nil, nodes, true)
	}
	w.CloseGroup()
	w.CloseDocument()
	return nil
}
