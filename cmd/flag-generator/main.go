// Command flag-generator writes the 50 star flag as SVG.
package main

import (
	"os"

	"github.com/moto-design/svggen/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.Flag, os.Args[1:], os.Stdout, os.Stderr))
}
