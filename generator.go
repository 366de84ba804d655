package svggen

import (
	"bufio"
	"io"

	"github.com/jbeda/geom"

	"github.com/moto-design/svggen/svg"
)

// Generator writes one complete SVG document.
type Generator interface {
	// Name identifies the generator in diagnostics.
	Name() string
	// Generate emits the document, from the root element to its end.
	Generate(w *svg.Writer) error
}

// Render streams the document produced by g to w.
func Render(w io.Writer, g Generator) error {
	bw := bufio.NewWriter(w)
	sw := svg.NewWriter(bw)

	if err := g.Generate(sw); err != nil {
		return err
	}
	if err := sw.Err(); err != nil {
		return &OutputError{Op: "write", Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &OutputError{Op: "write", Err: err}
	}
	return nil
}

// rect returns the rectangle with top left corner (x, y) and size w×h.
func rect(x, y, w, h float64) geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: x, Y: y},
		Max: geom.Coord{X: x + w, Y: y + h},
	}
}
