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

// BlobParams controls the shape of a single blob.
type BlobParams struct {
	NodeCountMin uint
	NodeCountMax uint
	RadiusMin    float64
	RadiusMax    float64
	// SectorMin is the smallest angle in degrees between two nodes.
	SectorMin float64
}

// GridParams controls the layout of the blobs.
type GridParams struct {
	Columns uint
	Rows    uint
	// Width is the distance between two cell origins.
	Width float64
	// Wiggle is the upper bound of the random offset added to each cell origin.
	Wiggle float64
}

// Built-in blob settings.
var (
	DefaultBlobParams = BlobParams{
		NodeCountMin: 8,
		NodeCountMax: 16,
		RadiusMin:    18,
		RadiusMax:    70,
		SectorMin:    15,
	}
	DefaultGridParams = GridParams{
		Columns: 15,
		Rows:    15,
		Width:   1.1 * DefaultBlobParams.RadiusMax,
		Wiggle:  0.8 * DefaultBlobParams.RadiusMax,
	}
)

// DefaultBlobPalette is the blue and gray camouflage palette.
var DefaultBlobPalette = palette.MustNew([]palette.Entry{
	{Weight: 2, Color: "#eeffff"},
	{Weight: 2, Color: "#bbbbbb"},
	{Weight: 2, Color: "#777777"},
	{Weight: 1, Color: "#97dcff"},
	{Weight: 1, Color: "#a3a3a3"},
	{Weight: 2, Color: "#00bbff"},
	{Weight: 2, Color: "#009aff"},
	{Weight: 2, Color: "#0077ff"},
	{Weight: 1, Color: "#004dff"},
	{Weight: 1, Color: "#003473"},
	{Weight: 2, Color: "#0000bb"},
	{Weight: 2, Color: "#000077"},
	{Weight: 2, Color: "#000011"},
})

// BlobOptions collects the blob parameters from their sources.
type BlobOptions struct {
	NodeCountMin config.Param[uint]
	NodeCountMax config.Param[uint]
	RadiusMin    config.Param[float64]
	RadiusMax    config.Param[float64]
	SectorMin    config.Param[float64]
	GridColumns  config.Param[uint]
	GridRows     config.Param[uint]
	GridWidth    config.Param[float64]
	GridWiggle   config.Param[float64]
}

type blobFile struct {
	NodeCountMin *uint    `config:"blob_node_count_min"`
	NodeCountMax *uint    `config:"blob_node_count_max"`
	RadiusMin    *float64 `config:"blob_radius_min"`
	RadiusMax    *float64 `config:"blob_radius_max"`
	SectorMin    *float64 `config:"blob_sector_min"`
	GridColumns  *uint    `config:"grid_columns"`
	GridRows     *uint    `config:"grid_rows"`
	GridWidth    *float64 `config:"grid_width"`
	GridWiggle   *float64 `config:"grid_wiggle"`
}

// Bind registers the blob flags.
func (o *BlobOptions) Bind(fs *pflag.FlagSet) {
	d, g := DefaultBlobParams, DefaultGridParams

	fs.Var(&o.NodeCountMin, "node-count-min", fmt.Sprintf("Minimum nodes per blob (default %d)", d.NodeCountMin))
	fs.Var(&o.NodeCountMax, "node-count-max", fmt.Sprintf("Maximum nodes per blob (default %d)", d.NodeCountMax))
	fs.Var(&o.RadiusMin, "radius-min", fmt.Sprintf("Minimum node radius (default %g)", d.RadiusMin))
	fs.Var(&o.RadiusMax, "radius-max", fmt.Sprintf("Maximum node radius (default %g)", d.RadiusMax))
	fs.Var(&o.SectorMin, "sector-min", fmt.Sprintf("Minimum angle between nodes in degrees (default %g)", d.SectorMin))
	fs.Var(&o.GridColumns, "grid-columns", fmt.Sprintf("Grid columns (default %d)", g.Columns))
	fs.Var(&o.GridRows, "grid-rows", fmt.Sprintf("Grid rows (default %d)", g.Rows))
	fs.Var(&o.GridWidth, "grid-width", "Grid cell width (default 1.1 x radius-max)")
	fs.Var(&o.GridWiggle, "grid-wiggle", "Random cell offset (default 0.8 x radius-max)")
}

// ApplyFile fills the parameters not given on the command line from f.
// Keys no blob parameter uses are returned.
func (o *BlobOptions) ApplyFile(f *config.File) ([]config.Entry, error) {
	var lf blobFile
	unused, err := f.Decode(&lf)
	if err != nil {
		return nil, err
	}
	o.NodeCountMin.Merge(lf.NodeCountMin, f.Position("blob_node_count_min"))
	o.NodeCountMax.Merge(lf.NodeCountMax, f.Position("blob_node_count_max"))
	o.RadiusMin.Merge(lf.RadiusMin, f.Position("blob_radius_min"))
	o.RadiusMax.Merge(lf.RadiusMax, f.Position("blob_radius_max"))
	o.SectorMin.Merge(lf.SectorMin, f.Position("blob_sector_min"))
	o.GridColumns.Merge(lf.GridColumns, f.Position("grid_columns"))
	o.GridRows.Merge(lf.GridRows, f.Position("grid_rows"))
	o.GridWidth.Merge(lf.GridWidth, f.Position("grid_width"))
	o.GridWiggle.Merge(lf.GridWiggle, f.Position("grid_wiggle"))
	return unused, nil
}

// Resolve applies the defaults and validates the result.
func (o *BlobOptions) Resolve() (BlobParams, GridParams, error) {
	d, g := DefaultBlobParams, DefaultGridParams

	bp := BlobParams{
		NodeCountMin: o.NodeCountMin.Resolve(d.NodeCountMin),
		NodeCountMax: o.NodeCountMax.Resolve(d.NodeCountMax),
		RadiusMin:    o.RadiusMin.Resolve(d.RadiusMin),
		RadiusMax:    o.RadiusMax.Resolve(d.RadiusMax),
		SectorMin:    o.SectorMin.Resolve(d.SectorMin),
	}
	gp := GridParams{
		Columns: o.GridColumns.Resolve(g.Columns),
		Rows:    o.GridRows.Resolve(g.Rows),
		Width:   o.GridWidth.Resolve(1.1 * bp.RadiusMax),
		Wiggle:  o.GridWiggle.Resolve(0.8 * bp.RadiusMax),
	}

	switch {
	case bp.NodeCountMin < 3:
		return bp, gp, o.NodeCountMin.Invalid("node-count-min", "must be at least 3, got %d", bp.NodeCountMin)
	case bp.NodeCountMin > bp.NodeCountMax:
		return bp, gp, rangeError(&o.NodeCountMin, &o.NodeCountMax, "node-count-min", "node-count-max")
	case bp.RadiusMin < 0:
		return bp, gp, o.RadiusMin.Invalid("radius-min", "must not be negative, got %g", bp.RadiusMin)
	case bp.RadiusMin > bp.RadiusMax:
		return bp, gp, rangeError(&o.RadiusMin, &o.RadiusMax, "radius-min", "radius-max")
	case bp.SectorMin < 0:
		return bp, gp, o.SectorMin.Invalid("sector-min", "must not be negative, got %g", bp.SectorMin)
	case gp.Columns == 0:
		return bp, gp, o.GridColumns.Invalid("grid-columns", "must be at least 1")
	case gp.Rows == 0:
		return bp, gp, o.GridRows.Invalid("grid-rows", "must be at least 1")
	case gp.Width <= 0:
		return bp, gp, o.GridWidth.Invalid("grid-width", "must be positive, got %g", gp.Width)
	case gp.Wiggle < 0:
		return bp, gp, o.GridWiggle.Invalid("grid-wiggle", "must not be negative, got %g", gp.Wiggle)
	}
	return bp, gp, nil
}

// rangeError reports an inverted range, blaming the end given with the
// higher precedence. A minimum from the configuration file above a
// default maximum is an error rather than a silent clamp.
func rangeError[T uint | float64](lo, hi *config.Param[T], loFlag, hiFlag string) error {
	if hi.Source() > lo.Source() {
		return hi.Invalid(hiFlag, "is below the minimum %v, got %v", lo.Get(), hi.Get())
	}
	return lo.Invalid(loFlag, "is above the maximum %v, got %v", hi.Get(), lo.Get())
}

// BlobPalette returns the palette defined in f, or the default palette.
func BlobPalette(f *config.File, log zerolog.Logger) (*palette.Palette, error) {
	if f == nil {
		return DefaultBlobPalette, nil
	}
	if !f.HasPalette() {
		log.Warn().Str("file", f.Name).Msg("no palette in config file, using the default palette")
		return DefaultBlobPalette, nil
	}
	p, err := palette.New(f.Palette)
	if err != nil {
		return nil, &config.Error{File: f.Name, Msg: "bad palette", Err: err}
	}
	return p, nil
}

// Blob lays out randomly shaped and colored blobs on a jittered grid.
type Blob struct {
	Params     BlobParams
	Grid       GridParams
	Palette    *palette.Palette
	Background bool
	Rand       *utils.Rand
	Log        zerolog.Logger
}

// Name implements Generator.
func (b *Blob) Name() string {
	return "blob-generator"
}

// Generate implements Generator.
func (b *Blob) Generate(w *svg.Writer) error {
	pal := b.Palette
	if pal == nil {
		pal = DefaultBlobPalette
	}
	rnd := b.Rand
	if rnd == nil {
		rnd = utils.NewTimeRand()
	}
	b.Log.Debug().Str("palette", pal.Describe()).Msg("blob palette")

	// All blobs are laid out before the first byte is written, so a bad
	// sector leaves no partial document behind.
	blobs, err := b.layout(pal, rnd)
	if err != nil {
		return err
	}

	gw := b.Grid.Width
	bg := rect(-gw, -gw, float64(2+b.Grid.Columns)*gw, float64(2+b.Grid.Rows)*gw)

	w.OpenDocument(&bg)
	if b.Background {
		w.WriteBackground(svg.Fill(palette.Royal), bg, 50)
	}
	w.OpenLayer("camo_blobs", nil)
	for i, bl := range blobs {
		w.WritePath(fmt.Sprintf("blob_%d", i), svg.Fill(bl.fill), nil, bl.nodes, true)
	}
	w.CloseGroup()
	w.CloseDocument()
	return nil
}

type blob struct {
	fill  palette.Color
	nodes []geom.Coord
}

// layout computes every blob in drawing order. Cells are visited in a
// random permutation so overlapping blobs stack unpredictably.
func (b *Blob) layout(pal *palette.Palette, rnd *utils.Rand) ([]blob, error) {
	cells := int(b.Grid.Columns * b.Grid.Rows)
	order := rnd.Permutation(cells)

	blobs := make([]blob, 0, cells)
	for i, cell := range order {
		row := uint(cell) / b.Grid.Columns
		col := uint(cell) % b.Grid.Columns

		fill := pal.Random(rnd)
		nodes, err := b.blobNodes(rnd, i, row, col)
		if err != nil {
			return nil, err
		}
		blobs = append(blobs, blob{fill: fill, nodes: nodes})
	}
	return blobs, nil
}

// blobNodes walks once around the circle placing one node in each sector.
func (b *Blob) blobNodes(rnd *utils.Rand, id int, row, col uint) ([]geom.Coord, error) {
	p := b.Params
	count := utils.Int(rnd, p.NodeCountMin, p.NodeCountMax)

	offset := geom.Coord{
		X: float64(col)*b.Grid.Width + rnd.Float(0, b.Grid.Wiggle),
		Y: float64(row)*b.Grid.Width + rnd.Float(0, b.Grid.Wiggle),
	}
	b.Log.Debug().
		Msgf("blob_%d: %d nodes at {%d,%d} => {%g,%g}", id, count, col, row, offset.X, offset.Y)

	nodes := make([]geom.Coord, 0, count)
	var angle float64
	for node := uint(0); node < count; node++ {
		// Integer division as the sector bounds are whole degrees.
		limit := float64((node + 1) * 360 / count)
		start := angle + p.SectorMin
		if start >= limit || math.IsNaN(start) {
			return nil, &geometry.GeometryError{
				Op:     fmt.Sprintf("blob_%d node_%d", id, node),
				Reason: fmt.Sprintf("bad sector {%g,%g}, sector-min too large for %d nodes", start, limit, count),
			}
		}
		angle = rnd.Float(start, limit)

		c, err := geometry.ToCartesian(geometry.Polar{
			R: rnd.Float(p.RadiusMin, p.RadiusMax),
			T: angle,
		})
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, c.Plus(offset))
	}
	return nodes, nil
}
