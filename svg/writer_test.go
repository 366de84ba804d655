package svg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jbeda/geom"
	"github.com/moto-design/svggen/geometry"
	"github.com/moto-design/svggen/palette"
	"github.com/stretchr/testify/assert"
)

func TestWriter_Num(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0", Num(-0.00000001))
	assert.Equal("1.5", Num(1.5))
	assert.Equal("-38.1966", Num(-38.19660112))
	assert.Equal("19000", Num(19000))
}

func TestWriter_Style(t *testing.T) {
	assert := assert.New(t)

	assert.Empty((*Style)(nil).attrs())
	assert.Equal([]string{`fill="#ff0000"`}, Fill("#ff0000").attrs())

	s := &Style{Fill: "red", Stroke: palette.TrueBlue, StrokeWidth: 3}
	assert.Equal([]string{`stroke="#0000ff"`, `stroke-width="3"`}, s.attrs())

	// A width without a valid stroke color is dropped.
	s = &Style{Fill: palette.Yellow, Stroke: "#00", StrokeWidth: 3}
	assert.Equal([]string{`fill="#ffdd00"`}, s.attrs())
}

func TestWriter_Transform(t *testing.T) {
	assert := assert.New(t)

	assert.Empty((&Transform{Scale: 1}).attrs())
	assert.Equal([]string{`transform="translate(2 3)"`}, Translate(2, 3).attrs())

	tr := &Transform{Scale: 2, Rotate: 30, Center: geom.Coord{X: 1, Y: 1}}
	assert.Equal([]string{`transform="scale(2) rotate(30 1 1)"`}, tr.attrs())
}

func TestWriter_Document(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)

	vb := geom.Rect{Min: geom.Coord{X: -10, Y: -10}, Max: geom.Coord{X: 10, Y: 30}}
	w.OpenDocument(&vb)
	w.OpenLayer("shapes", nil)
	w.OpenGroup("layer", Fill(palette.Gray), nil)
	assert.Equal(3, w.Depth())
	w.WriteRect("box", nil, nil, vb, 5)
	w.WritePath("tri", Stroke("#000000", 1), nil, []geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, true)
	w.WriteLine("", nil, geom.Coord{}, geom.Coord{X: 4, Y: 4})
	w.WriteUse("tri", geom.Coord{X: 2})
	w.CloseGroup()
	w.CloseGroup()
	w.CloseDocument()

	assert.NoError(w.Err())
	assert.Equal(0, w.Depth())

	out := buf.String()
	assert.True(strings.HasPrefix(out, "<?xml"))
	assert.Contains(out, `viewBox="-10 -10 20 40"`)
	assert.Contains(out, `xmlns:xlink="http://www.w3.org/1999/xlink"`)
	assert.Contains(out, `<g id="shapes" inkscape:label="shapes" inkscape:groupmode="layer"`)
	assert.Contains(out, `<g id="layer" fill="#808080"`)
	assert.Contains(out, `<rect id="box" x="-10" y="-10" width="20" height="40" rx="5"/>`)
	assert.Contains(out, `<path d="M0,0 L1,0 L0,1 Z" id="tri" stroke="#000000" stroke-width="1"`)
	assert.Contains(out, `<line x1="0" y1="0" x2="4" y2="4"/>`)
	assert.Contains(out, `<use xlink:href="#tri" x="2"/>`)
	assert.Contains(out, "</g>")
	assert.True(strings.HasSuffix(out, "</svg>\n"))
}

func TestWriter_NoViewBox(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.OpenDocument(nil)
	w.CloseDocument()

	assert.NotContains(t, buf.String(), "viewBox")
}

func TestWriter_Star(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	err := w.WriteStar("star_5", Fill(palette.Yellow), nil, geometry.StarParams{Points: 5, Density: 2, Radius: 100, Rotation: -90})
	assert.NoError(err)
	assert.Contains(buf.String(), `<polygon id="star_5" fill="#ffdd00" points="0,-100 `)

	buf.Reset()
	err = w.WriteStar("bad", nil, nil, geometry.StarParams{Points: 2, Density: 1, Radius: 1})
	assert.Error(err)
	assert.Empty(buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_StickyError(t *testing.T) {
	w := NewWriter(failingWriter{})
	w.OpenDocument(nil)
	w.WriteRect("r", nil, nil, geom.Rect{}, 0)
	w.CloseDocument()

	assert.EqualError(t, w.Err(), "disk full")
}
