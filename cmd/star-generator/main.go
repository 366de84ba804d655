// Command star-generator writes a {points/density} star polygon as SVG.
package main

import (
	"os"

	"github.com/moto-design/svggen/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.Star, os.Args[1:], os.Stdout, os.Stderr))
}
