// Package palette provides hex colors and weighted palettes to pick them from.
package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a "#rrggbb" hex color. The zero value means no color.
type Color string

// Named colors shared by the generators.
const (
	White      Color = "#ffffff"
	LightGray  Color = "#eeeeee"
	Gray       Color = "#808080"
	TrueBlue   Color = "#0000ff"
	Royal      Color = "#000099"
	Yellow     Color = "#ffdd00"
	LightGreen Color = "#1aff70"
)

// ColorError is returned for text which is not a valid hex color.
type ColorError struct {
	Text string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("invalid color %q: want '#' followed by six hex digits", e.Text)
}

// IsHexColor reports whether s is '#' followed by exactly six hex digits.
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ParseColor validates s and returns it normalized to lower case.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !IsHexColor(s) {
		return "", &ColorError{Text: s}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", &ColorError{Text: s}
	}
	return Color(c.Hex()), nil
}

// Valid reports whether c holds a hex color.
func (c Color) Valid() bool {
	return IsHexColor(string(c))
}

// String returns the hex representation.
func (c Color) String() string {
	return string(c)
}

// Set implements pflag.Value.
func (c *Color) Set(s string) error {
	v, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Type implements pflag.Value.
func (c *Color) Type() string {
	return "color"
}
