// Package logging builds the diagnostic logger of the generators.
// Diagnostics go to standard error, standard output is reserved for SVG.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	colorRed     = 31
	colorYellow  = 33
	colorCyan    = 36
	colorMagenta = 35
)

// Options controls the logger returned by New.
type Options struct {
	Out     io.Writer
	Verbose bool
	Color   bool
}

// New returns a console logger writing to opts.Out.
// Warnings and errors are always shown, verbose mode adds info and debug.
func New(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	w := zerolog.ConsoleWriter{
		Out:          out,
		NoColor:      !opts.Color,
		PartsExclude: []string{zerolog.TimestampFieldName},
		FormatLevel:  FormatLevel(opts.Color),
	}
	return zerolog.New(w).Level(level)
}

// FormatLevel returns the level formatter printing the severity prefixes.
func FormatLevel(color bool) zerolog.Formatter {
	return func(i any) string {
		ll, _ := i.(string)

		var (
			label string
			c     int
		)
		switch ll {
		case zerolog.LevelDebugValue:
			label, c = "DEBUG", colorMagenta
		case zerolog.LevelInfoValue:
			label, c = "INFO", colorCyan
		case zerolog.LevelWarnValue:
			label, c = "WARNING", colorYellow
		case zerolog.LevelErrorValue, zerolog.LevelFatalValue:
			label, c = "ERROR", colorRed
		default:
			return ""
		}
		if color {
			return fmt.Sprintf("\x1b[%dm%s:\x1b[0m", c, label)
		}
		return label + ":"
	}
}
