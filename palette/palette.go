package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moto-design/svggen/utils"
)

// Entry is a color together with its relative weight in a palette.
type Entry struct {
	Weight uint
	Color  Color
}

// Palette is a weighted color list expanded so that every color appears
// as many times as its weight, in entry order.
type Palette struct {
	entries []Entry
	colors  []Color
}

// ErrEmpty is returned when a palette would hold no colors.
var ErrEmpty = errors.New("palette is empty")

// New expands the entries into a palette.
func New(entries []Entry) (*Palette, error) {
	p := &Palette{
		entries: make([]Entry, 0, len(entries)),
	}
	for _, e := range entries {
		if !e.Color.Valid() {
			return nil, &ColorError{Text: string(e.Color)}
		}
		p.entries = append(p.entries, e)
		for i := uint(0); i < e.Weight; i++ {
			p.colors = append(p.colors, e.Color)
		}
	}
	if len(p.colors) == 0 {
		return nil, ErrEmpty
	}
	return p, nil
}

// MustNew is like New but panics on error. Use it for built-in palettes only.
func MustNew(entries []Entry) *Palette {
	p, err := New(entries)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of expanded colors.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Colors returns a copy of the expanded color list.
func (p *Palette) Colors() []Color {
	return append([]Color(nil), p.colors...)
}

// At returns the i-th expanded color.
func (p *Palette) At(i int) Color {
	return p.colors[i]
}

// Random picks a color uniformly from the expanded list,
// so heavier entries are picked proportionally more often.
func (p *Palette) Random(r *utils.Rand) Color {
	return p.colors[r.Intn(len(p.colors))]
}

// Describe returns a one line summary used in debug output.
func (p *Palette) Describe() string {
	parts := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		parts = append(parts, fmt.Sprintf("%d:%s", e.Weight, e.Color))
	}
	return fmt.Sprintf("%d colors [%s]", len(p.colors), strings.Join(parts, " "))
}
