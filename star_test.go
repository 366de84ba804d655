package svggen

import (
	"bytes"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moto-design/svggen/geometry"
	"github.com/moto-design/svggen/palette"
)

var pointsRe = regexp.MustCompile(`points="([^"]*)"`)

func TestStar_Render(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := Render(&buf, &Star{
		Params: geometry.StarParams{Points: 5, Density: 2, Radius: 100, Rotation: -90},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(1, strings.Count(out, "<polygon"))
	assert.Contains(out, `id="star_5"`)
	assert.Contains(out, `fill="#ffdd00" stroke="#0000ff" stroke-width="3"`)
	assert.Contains(out, `viewBox="-150 -150 300 300"`)

	m := pointsRe.FindStringSubmatch(out)
	require.Len(t, m, 2)
	pairs := strings.Fields(m[1])
	assert.Len(pairs, 10)

	xy := strings.Split(pairs[0], ",")
	require.Len(t, xy, 2)
	x, err := strconv.ParseFloat(xy[0], 64)
	require.NoError(t, err)
	y, err := strconv.ParseFloat(xy[1], 64)
	require.NoError(t, err)
	assert.InDelta(0, x, 1e-3)
	assert.InDelta(-100, y, 1e-3)
}

func TestStar_DegenerateDensity(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, &Star{
		Params: geometry.StarParams{Points: 100, Density: 50, Radius: 100},
	})

	var geomErr *geometry.GeometryError
	assert.True(t, errors.As(err, &geomErr))
	assert.Empty(t, buf.String())
}

func TestStar_Options(t *testing.T) {
	assert := assert.New(t)

	var o StarOptions
	fs := pflag.NewFlagSet("star", pflag.ContinueOnError)
	o.Bind(fs)
	require.NoError(t, fs.Parse([]string{"--points=7", "--fill-color=#FF0000", "--rotation=-90"}))

	p, style, err := o.Resolve()
	require.NoError(t, err)
	assert.Equal(uint(7), p.Points)
	assert.Equal(DefaultStarParams.Density, p.Density)
	assert.Equal(-90.0, p.Rotation)
	assert.InDelta(10000.0*4/13/5/2, p.Radius, 1e-9)
	assert.Equal(palette.Color("#ff0000"), style.Fill)
	assert.Equal(palette.TrueBlue, style.Stroke)

	assert.Error(fs.Parse([]string{"--density=two"}))
}
