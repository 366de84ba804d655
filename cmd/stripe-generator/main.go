// Command stripe-generator writes a chain of leaning stripe blocks as SVG.
package main

import (
	"os"

	"github.com/moto-design/svggen/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.Stripe, os.Args[1:], os.Stdout, os.Stderr))
}
