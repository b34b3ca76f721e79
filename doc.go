/*
Package lowpoly generates low-poly backgrounds: a jittered triangular mesh
covering a rectangular canvas, colored by a horizontal gradient and shaded
either by a directional light or by per channel noise.

The package provides a command line utility supporting various customization options.
Check the supported commands by typing:

	$ lowpoly --help

The mesh is streamed into a Renderer, so the same pipeline can produce
vector or raster output.

Example to generate a mesh and output the result as SVG:

	package main

	import (
		"log"
		"os"

		"github.com/esimov/lowpoly"
	)

	func main() {
		cfg := lowpoly.DefaultConfig()
		cfg.RandomColors = false
		cfg.Colors = []string{"#1d2b64", "#f8cdda"}

		p := lowpoly.NewProcessor(cfg)
		if _, err := p.Process(lowpoly.NewSVG(os.Stdout), nil); err != nil {
			log.Fatalf("Error generating the mesh: %v", err)
		}
	}

Example to output the result as a PNG image:

	f, err := os.Create("background.png")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	p := lowpoly.NewProcessor(lowpoly.DefaultConfig())
	_, err = p.Process(lowpoly.NewImage(f, lowpoly.FormatPNG), func(done, total int) {
		// Report the progress.
	})
*/
package lowpoly
