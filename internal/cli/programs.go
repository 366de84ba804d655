package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/moto-design/svggen"
	"github.com/moto-design/svggen/config"
	"github.com/moto-design/svggen/palette"
)

// The generator programs.
var (
	Blob = &Program{
		Name:      "blob-generator",
		Short:     "Generate camouflage blobs",
		Sections:  []string{config.SectionParams, config.SectionPalette},
		newRunner: func() runner { return &blobRunner{} },
	}
	Flag = &Program{
		Name:      "flag-generator",
		Short:     "Generate the 50 star flag",
		newRunner: func() runner { return &flagRunner{} },
	}
	Star = &Program{
		Name:      "star-generator",
		Short:     "Generate a star polygon",
		newRunner: func() runner { return &starRunner{} },
	}
	Stripe = &Program{
		Name:      "stripe-generator",
		Short:     "Generate leaning stripe blocks",
		Sections:  []string{config.SectionParams},
		newRunner: func() runner { return &stripeRunner{} },
	}
)

type blobRunner struct {
	opts    svggen.BlobOptions
	palette *palette.Palette
}

func (r *blobRunner) Bind(fs *pflag.FlagSet) {
	r.opts.Bind(fs)
}

func (r *blobRunner) ApplyFile(f *config.File, log zerolog.Logger) error {
	unused, err := r.opts.ApplyFile(f)
	if err != nil {
		return err
	}
	warnUnused(log, f, unused)

	r.palette, err = svggen.BlobPalette(f, log)
	return err
}

func (r *blobRunner) Generator(rc runContext) (svggen.Generator, error) {
	bp, gp, err := r.opts.Resolve()
	if err != nil {
		return nil, err
	}
	pal := r.palette
	if pal == nil {
		pal = svggen.DefaultBlobPalette
	}
	rc.Log.Debug().
		Uint("node_count_min", bp.NodeCountMin).
		Uint("node_count_max", bp.NodeCountMax).
		Float64("radius_min", bp.RadiusMin).
		Float64("radius_max", bp.RadiusMax).
		Float64("sector_min", bp.SectorMin).
		Uint("grid_columns", gp.Columns).
		Uint("grid_rows", gp.Rows).
		Float64("grid_width", gp.Width).
		Float64("grid_wiggle", gp.Wiggle).
		Msg("blob parameters")

	return &svggen.Blob{
		Params:     bp,
		Grid:       gp,
		Palette:    pal,
		Background: rc.Background,
		Rand:       rc.Rand,
		Log:        rc.Log,
	}, nil
}

type flagRunner struct {
	opts svggen.FlagOptions
}

func (r *flagRunner) Bind(fs *pflag.FlagSet) {
	r.opts.Bind(fs)
}

func (r *flagRunner) ApplyFile(*config.File, zerolog.Logger) error {
	return nil
}

func (r *flagRunner) Generator(rc runContext) (svggen.Generator, error) {
	dim, colors, err := r.opts.Resolve()
	if err != nil {
		return nil, err
	}
	return &svggen.Flag{
		Dim:    dim,
		Colors: colors,
		Grid:   r.opts.Grid,
		Log:    rc.Log,
	}, nil
}

type starRunner struct {
	opts svggen.StarOptions
}

func (r *starRunner) Bind(fs *pflag.FlagSet) {
	r.opts.Bind(fs)
}

func (r *starRunner) ApplyFile(*config.File, zerolog.Logger) error {
	return nil
}

func (r *starRunner) Generator(rc runContext) (svggen.Generator, error) {
	p, style, err := r.opts.Resolve()
	if err != nil {
		return nil, err
	}
	return &svggen.Star{
		Params: p,
		Style:  &style,
		Log:    rc.Log,
	}, nil
}

type stripeRunner struct {
	opts svggen.StripeOptions
}

func (r *stripeRunner) Bind(fs *pflag.FlagSet) {
	r.opts.Bind(fs)
}

func (r *stripeRunner) ApplyFile(f *config.File, log zerolog.Logger) error {
	unused, err := r.opts.ApplyFile(f)
	if err != nil {
		return err
	}
	warnUnused(log, f, unused)
	return nil
}

func (r *stripeRunner) Generator(rc runContext) (svggen.Generator, error) {
	p, err := r.opts.Resolve()
	if err != nil {
		return nil, err
	}
	rc.Log.Debug().
		Uint("block_count", p.BlockCount).
		Float64("lean_angle", p.LeanAngle).
		Float64("block_width", p.BlockWidth).
		Float64("gap_width", p.GapWidth).
		Msg("stripe parameters")

	return &svggen.Stripe{
		Params:     p,
		Background: rc.Background,
		Log:        rc.Log,
	}, nil
}
