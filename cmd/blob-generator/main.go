// Command blob-generator writes a camouflage pattern of random blobs as SVG.
package main

import (
	"os"

	"github.com/moto-design/svggen/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.Blob, os.Args[1:], os.Stdout, os.Stderr))
}
