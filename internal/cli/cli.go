// Package cli implements the command line programs of the generators.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/moto-design/svggen"
	"github.com/moto-design/svggen/config"
	"github.com/moto-design/svggen/geometry"
	"github.com/moto-design/svggen/logging"
	"github.com/moto-design/svggen/palette"
	"github.com/moto-design/svggen/utils"
)

// Version is the release of the generators, set at link time.
var Version = "1.0.0"

// pipeName selects the standard output as destination.
const pipeName = "-"

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
)

// UsageError is a malformed command line.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// runContext carries the resolved admin settings into a generator.
type runContext struct {
	Log        zerolog.Logger
	Background bool
	Rand       *utils.Rand
}

// runner binds, merges and resolves the parameters of one generator.
type runner interface {
	Bind(fs *pflag.FlagSet)
	ApplyFile(f *config.File, log zerolog.Logger) error
	Generator(rc runContext) (svggen.Generator, error)
}

// Program describes one generator binary.
type Program struct {
	Name  string
	Short string
	// Sections lists the accepted config file sections. Programs without
	// sections take neither a config file nor a background option.
	Sections  []string
	newRunner func() runner
}

func (p *Program) configurable() bool {
	return len(p.Sections) > 0
}

type adminFlags struct {
	output     string
	configFile string
	background bool
	verbose    bool
	version    bool
}

// Main runs the program with the given arguments and returns the exit code.
func Main(p *Program, args []string, stdout, stderr io.Writer) int {
	color := isTerminal(stderr)
	log := logging.New(logging.Options{Out: stderr, Color: color})

	cmd := NewCommand(p, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}
	report(log, err)

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return ExitError
}

// NewCommand returns the cobra command of p. The SVG document goes to
// stdout unless an output file is given; everything else goes to stderr.
func NewCommand(p *Program, stdout, stderr io.Writer) *cobra.Command {
	var admin adminFlags
	r := p.newRunner()

	cmd := &cobra.Command{
		Use:           p.Name + " [flags]",
		Short:         p.Short,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &UsageError{Err: fmt.Errorf("unexpected argument %q", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if admin.version {
				fmt.Fprintf(stdout, "%s (svggen) %s\n", p.Name, Version)
				return nil
			}
			return run(p, r, &admin, stdout, stderr)
		},
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	fs := cmd.Flags()
	fs.SortFlags = false
	r.Bind(fs)
	fs.StringVarP(&admin.output, "output-file", "o", pipeName, "Output file, '-' for standard output")
	if p.configurable() {
		fs.StringVarP(&admin.configFile, "config-file", "f", "", "Config file")
		fs.BoolVarP(&admin.background, "background", "b", false, "Generate image background")
	}
	fs.BoolVarP(&admin.verbose, "verbose", "v", false, "Verbose execution")
	fs.BoolVarP(&admin.version, "version", "V", false, "Display version information")

	return cmd
}

func run(p *Program, r runner, admin *adminFlags, stdout, stderr io.Writer) error {
	color := isTerminal(stderr)
	log := logging.New(logging.Options{
		Out:     stderr,
		Verbose: admin.verbose,
		Color:   color,
	})

	if admin.configFile != "" {
		f, err := config.Load(admin.configFile, p.Sections...)
		if err != nil {
			return err
		}
		for _, d := range f.Duplicates {
			log.Warn().Msgf("%s:%d: duplicate parameter %s ignored", f.Name, d.Line, d.Key)
		}
		if err := r.ApplyFile(f, log); err != nil {
			return err
		}
	}

	g, err := r.Generator(runContext{
		Log:        log,
		Background: admin.background,
		Rand:       utils.NewTimeRand(),
	})
	var flagErr *config.FlagError
	if errors.As(err, &flagErr) {
		return &UsageError{Err: err}
	}
	if err != nil {
		return err
	}

	ops := &svggen.Ops{
		Dst:       admin.output,
		PipeName:  pipeName,
		Stdout:    stdout,
		Logger:    log,
		Decorator: utils.Decorator{Enabled: color},
	}
	return ops.Execute(g)
}

// warnUnused reports config file keys no parameter of the program uses.
func warnUnused(log zerolog.Logger, f *config.File, unused []config.Entry) {
	for _, e := range unused {
		log.Warn().Msgf("%s:%d: unknown parameter %s ignored", f.Name, e.Line, e.Key)
	}
}

// report writes the diagnostic of a failed run.
func report(log zerolog.Logger, err error) {
	var (
		usageErr  *UsageError
		cfgErr    *config.Error
		geomErr   *geometry.GeometryError
		mathErr   *geometry.MathError
		colorErr  *palette.ColorError
		outputErr *svggen.OutputError
	)
	kind := "error"
	switch {
	case errors.As(err, &usageErr):
		kind = "usage"
	case errors.As(err, &cfgErr):
		kind = "config"
	case errors.As(err, &geomErr):
		kind = "geometry"
	case errors.As(err, &mathErr):
		kind = "math"
	case errors.As(err, &colorErr):
		kind = "color"
	case errors.As(err, &outputErr):
		kind = "output"
	}
	log.Error().Str("kind", kind).Msg(err.Error())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && utils.IsTerminal(f)
}
