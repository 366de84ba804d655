/*
Package svggen generates decorative SVG figures: camouflage blobs, a flag
with a reused star motif, {p/q} star polygons and a chain of leaning
stripe blocks.

Every figure is produced by a Generator which streams its markup through
an svg.Writer. The command line programs under cmd/ resolve the generator
parameters from flags, an optional configuration file and the built-in
defaults, in that order of precedence.

A generator can also be used directly:

	package main

	import (
		"log"
		"os"

		"github.com/moto-design/svggen"
		"github.com/moto-design/svggen/geometry"
	)

	func main() {
		star := &svggen.Star{
			Params: geometry.StarParams{Points: 7, Density: 3, Radius: 100},
		}
		if err := svggen.Render(os.Stdout, star); err != nil {
			log.Fatal(err)
		}
	}
*/
package svggen
