package svggen

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/moto-design/svggen/utils"
)

// OutputError reports that the SVG document could not be written.
type OutputError struct {
	Op   string
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s output: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// Ops describes where a generator run sends its document.
type Ops struct {
	// Dst is the output file, or PipeName for the standard output.
	Dst, PipeName string

	Stdout    io.Writer
	Logger    zerolog.Logger
	Decorator utils.Decorator
}

// Execute renders g to the destination. A file that was only partly
// written because of an error is removed.
func (op *Ops) Execute(g Generator) error {
	now := time.Now()

	dst, err := op.pathToFile(op.Dst)
	if err != nil {
		op.printOpStatus(g, err)
		return err
	}

	err = Render(dst, g)
	if f, ok := dst.(*os.File); ok && op.Dst != op.PipeName {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &OutputError{Op: "close", Path: op.Dst, Err: cerr}
		}
		if err != nil {
			// remove the incomplete document
			os.Remove(f.Name())
		}
	}
	if err != nil {
		op.printOpStatus(g, err)
		return err
	}

	op.Logger.Debug().
		Str("elapsed", utils.FormatTime(time.Since(now))).
		Msg(op.Decorator.Status(g.Name(), "document written to "+op.describeDst(), true))
	return nil
}

// pathToFile opens the destination for writing, truncating an existing file.
func (op *Ops) pathToFile(out string) (io.Writer, error) {
	if out == "" || out == op.PipeName {
		if f, ok := op.Stdout.(*os.File); ok && utils.IsTerminal(f) {
			op.Logger.Warn().Msg("writing SVG markup to a terminal")
		}
		return op.Stdout, nil
	}
	f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, &OutputError{
			Op:   "open",
			Path: out,
			Err:  errors.Wrap(err, "unable to create the destination file"),
		}
	}
	return f, nil
}

func (op *Ops) describeDst() string {
	if op.Dst == "" || op.Dst == op.PipeName {
		return "stdout"
	}
	return op.Dst
}

// printOpStatus logs the failure of a run at debug level; reporting the
// error itself is left to the caller.
func (op *Ops) printOpStatus(g Generator, err error) {
	op.Logger.Debug().
		Str("dst", op.describeDst()).
		Msg(op.Decorator.Status(g.Name(), "generation failed: "+err.Error(), false))
}
