// Package svg streams SVG markup. Structural tags go through svgo,
// geometry is written with float precision to the same stream.
package svg

import (
	"fmt"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"github.com/jbeda/geom"
	"github.com/moto-design/svggen/geometry"
)

// Shape kinds accepted by OpenShape.
const (
	KindPolygon = "polygon"
	KindLine    = "line"
	KindRect    = "rect"
)

// stickyWriter remembers the first write error and drops everything after it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	if err != nil {
		s.err = err
	}
	return n, err
}

// Writer emits one SVG document element by element.
// Callers must pair every Open call with its Close call.
type Writer struct {
	out    *stickyWriter
	canvas *svgo.SVG
	depth  int
}

// NewWriter returns a Writer streaming to w.
func NewWriter(w io.Writer) *Writer {
	out := &stickyWriter{w: w}
	return &Writer{
		out:    out,
		canvas: svgo.New(out),
	}
}

// Err returns the first error encountered while writing.
func (w *Writer) Err() error {
	return w.out.err
}

// Depth returns the number of currently open elements.
func (w *Writer) Depth() int {
	return w.depth
}

func (w *Writer) printf(format string, a ...any) {
	fmt.Fprintf(w.out, format, a...)
}

func joinAttrs(id string, attrs ...[]string) string {
	var all []string
	if id != "" {
		all = append(all, attr("id", id))
	}
	for _, a := range attrs {
		all = append(all, a...)
	}
	return strings.Join(all, " ")
}

// OpenDocument writes the XML declaration and the svg root element.
// The viewBox attribute is only written when viewBox is not nil.
func (w *Writer) OpenDocument(viewBox *geom.Rect) {
	w.printf("<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n")
	w.printf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"`)
	w.printf(` xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" version="1.1"`)
	if viewBox != nil {
		w.printf(` viewBox="%s %s %s %s"`,
			Num(viewBox.Min.X), Num(viewBox.Min.Y), Num(viewBox.Width()), Num(viewBox.Height()))
	}
	w.printf(">\n")
	w.depth++
}

// CloseDocument closes the svg root element.
func (w *Writer) CloseDocument() {
	w.canvas.End()
	w.depth--
}

// OpenGroup opens a g element whose style and transform apply to all children.
func (w *Writer) OpenGroup(id string, style *Style, t *Transform) {
	var attrs []string
	if id != "" {
		attrs = append(attrs, attr("id", id))
	}
	attrs = append(attrs, style.attrs()...)
	attrs = append(attrs, t.attrs()...)
	w.canvas.Group(attrs...)
	w.depth++
}

// OpenLayer opens a group that Inkscape shows as a named layer.
func (w *Writer) OpenLayer(id string, style *Style) {
	attrs := []string{
		attr("id", id),
		attr("inkscape:label", id),
		attr("inkscape:groupmode", "layer"),
	}
	w.canvas.Group(append(attrs, style.attrs()...)...)
	w.depth++
}

// CloseGroup closes the innermost group.
func (w *Writer) CloseGroup() {
	w.canvas.Gend()
	w.depth--
}

// OpenShape starts a shape element of the given kind. Geometry attributes
// follow through Attr and the element is finished by CloseShape.
func (w *Writer) OpenShape(kind, id string, style *Style, t *Transform) {
	w.printf("<%s", kind)
	if a := joinAttrs(id, style.attrs(), t.attrs()); a != "" {
		w.printf(" %s", a)
	}
	w.depth++
}

// Attr adds an attribute to the shape opened last.
func (w *Writer) Attr(name, value string) {
	w.printf(" %s", attr(name, value))
}

// CloseShape finishes the shape opened last.
func (w *Writer) CloseShape() {
	w.printf("/>\n")
	w.depth--
}

// WritePath writes nodes as a path of straight segments, closed with Z if asked.
func (w *Writer) WritePath(id string, style *Style, t *Transform, nodes []geom.Coord, closed bool) {
	if len(nodes) == 0 {
		return
	}
	var d strings.Builder
	for i, n := range nodes {
		if i == 0 {
			d.WriteString("M")
		} else {
			d.WriteString(" L")
		}
		d.WriteString(Pair(n))
	}
	if closed {
		d.WriteString(" Z")
	}
	w.WritePathData(id, style, t, d.String())
}

// WritePathData writes a path with ready made path data.
func (w *Writer) WritePathData(id string, style *Style, t *Transform, d string) {
	var attrs []string
	if id != "" {
		attrs = append(attrs, attr("id", id))
	}
	attrs = append(attrs, style.attrs()...)
	attrs = append(attrs, t.attrs()...)
	w.canvas.Path(d, attrs...)
}

// WriteRect writes r as a rect element with corner radius rx (0 for sharp corners).
func (w *Writer) WriteRect(id string, style *Style, t *Transform, r geom.Rect, rx float64) {
	w.OpenShape(KindRect, id, style, t)
	w.Attr("x", Num(r.Min.X))
	w.Attr("y", Num(r.Min.Y))
	w.Attr("width", Num(r.Width()))
	w.Attr("height", Num(r.Height()))
	if rx > 0 {
		w.Attr("rx", Num(rx))
	}
	w.CloseShape()
}

// WriteBackground writes the background rectangle of the document.
func (w *Writer) WriteBackground(style *Style, r geom.Rect, rx float64) {
	w.WriteRect("background", style, nil, r, rx)
}

// WriteLine writes the segment a-b.
func (w *Writer) WriteLine(id string, style *Style, a, b geom.Coord) {
	w.OpenShape(KindLine, id, style, nil)
	w.Attr("x1", Num(a.X))
	w.Attr("y1", Num(a.Y))
	w.Attr("x2", Num(b.X))
	w.Attr("y2", Num(b.Y))
	w.CloseShape()
}

// WritePolygon writes nodes as a polygon element.
func (w *Writer) WritePolygon(id string, style *Style, t *Transform, nodes []geom.Coord) {
	pairs := make([]string, len(nodes))
	for i, n := range nodes {
		pairs[i] = Pair(n)
	}
	w.OpenShape(KindPolygon, id, style, t)
	w.Attr("points", strings.Join(pairs, " "))
	w.CloseShape()
}

// WriteStar computes the star outline for p and writes it as a polygon.
// Nothing is written when the star cannot be constructed.
func (w *Writer) WriteStar(id string, style *Style, t *Transform, p geometry.StarParams) error {
	nodes, err := geometry.StarPolygon(p)
	if err != nil {
		return err
	}
	w.WritePolygon(id, style, t, nodes)
	return nil
}

// WriteUse places a copy of the element with id ref, moved by offset.
func (w *Writer) WriteUse(ref string, offset geom.Coord) {
	w.printf(`<use xlink:href="#%s"`, ref)
	if offset.X != 0 {
		w.Attr("x", Num(offset.X))
	}
	if offset.Y != 0 {
		w.Attr("y", Num(offset.Y))
	}
	w.printf("/>\n")
}
