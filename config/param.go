// Package config resolves generator parameters from command line flags,
// a configuration file and built-in defaults.
package config

import (
	"fmt"

	"github.com/moto-design/svggen/palette"
	"github.com/moto-design/svggen/utils"
)

// Source tells where the value of a Param came from.
type Source int

// Parameter sources, lowest precedence first.
const (
	SourceUnset Source = iota
	SourceDefault
	SourceFile
	SourceFlag
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceFile:
		return "file"
	case SourceFlag:
		return "flag"
	}
	return "unset"
}

// Value lists the types a Param can hold.
type Value interface {
	uint | float64 | palette.Color
}

// Param is a parameter value together with its provenance.
// The zero value is unset. A *Param implements pflag.Value, so it can be
// bound straight to a command line flag.
type Param[T Value] struct {
	value  T
	source Source
	pos    Position
}

// Get returns the current value; the zero value of T when unset.
func (p *Param[T]) Get() T {
	return p.value
}

// IsSet reports whether any source provided a value.
func (p *Param[T]) IsSet() bool {
	return p.source != SourceUnset
}

// Source returns where the value came from.
func (p *Param[T]) Source() Source {
	return p.source
}

// Merge takes v from the configuration file entry at pos unless a value
// is already set. A nil v leaves the parameter untouched.
func (p *Param[T]) Merge(v *T, pos Position) {
	if v == nil || p.IsSet() {
		return
	}
	p.value, p.source, p.pos = *v, SourceFile, pos
}

// Resolve fills in the default if nothing else did and returns the value.
func (p *Param[T]) Resolve(def T) T {
	if !p.IsSet() {
		p.value, p.source = def, SourceDefault
	}
	return p.value
}

// Invalid returns the error for a value that failed validation.
// A value read from the configuration file yields an *Error pointing at
// its entry. Any other value is blamed on the command line flag named
// flag, as defaults only turn invalid through other flags.
func (p *Param[T]) Invalid(flag, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if p.source == SourceFile {
		return &Error{File: p.pos.File, Line: p.pos.Line, Msg: p.pos.Key + " " + msg}
	}
	return &FlagError{Flag: flag, Msg: msg}
}

// Set parses s strictly and marks the value as given on the command line.
func (p *Param[T]) Set(s string) error {
	v, err := parse[T](s)
	if err != nil {
		return err
	}
	p.value, p.source = v, SourceFlag
	return nil
}

// String returns the value as text, or an empty string when unset.
func (p *Param[T]) String() string {
	if p == nil || !p.IsSet() {
		return ""
	}
	return fmt.Sprint(p.value)
}

// Type returns the value type name shown in the usage text.
func (p *Param[T]) Type() string {
	var zero T
	switch any(zero).(type) {
	case uint:
		return "uint"
	case float64:
		return "float"
	}
	return "color"
}

func parse[T Value](s string) (T, error) {
	var zero T
	var (
		v   any
		err error
	)
	switch any(zero).(type) {
	case uint:
		v, err = utils.ParseUnsigned(s)
	case float64:
		v, err = utils.ParseFloat(s)
	case palette.Color:
		v, err = palette.ParseColor(s)
	}
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}
