// Command octdemo demonstrates the octmap octahedral direction codec.
//
// It prints a round-trip table for a set of sample directions, then decodes
// a sweep of UV points and classifies each decoded direction onto a cubemap
// face with its debug color.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gogpu/octmap"
)

func main() {
	grid := flag.Int("grid", 0, "decode an NxN UV grid instead of the fixed samples")
	flag.Parse()

	printRoundTrips()

	if *grid > 0 {
		printUVGrid(*grid)
	} else {
		printUVSamples()
	}
}

func printRoundTrips() {
	dirs := []octmap.Vec3{
		octmap.V(1, 0, 0),
		octmap.V(-1, 0, 0),
		octmap.V(0, 1, 0),
		octmap.V(0, -1, 0),
		octmap.V(0, 0, 1),
		octmap.V(0, 0, -1),
		octmap.V(1, 1, 1),
		octmap.V(1, -1, 0.5),
	}

	fmt.Println("round trips:")
	for _, d := range dirs {
		uv, err := octmap.Encode(d)
		if err != nil {
			log.Fatalf("encode %+v: %v", d, err)
		}
		dec := octmap.Decode(uv)
		fmt.Printf("  %+v -> (%.4f, %.4f) -> %+v\n", d, uv.U, uv.V, dec)
	}
}

func printUVSamples() {
	samples := []octmap.UV{
		{U: 0.5, V: 0.5},
		{U: 0.1, V: 0.5},
		{U: 0.9, V: 0.5},
		{U: 0.5, V: 0.1},
		{U: 0.5, V: 0.9},
		{U: 0.1, V: 0.1},
		{U: 0.9, V: 0.9},
		{U: 0.1, V: 0.9},
		{U: 0.9, V: 0.1},
	}

	fmt.Println("uv samples:")
	for _, uv := range samples {
		printDecoded(uv)
	}
}

func printUVGrid(n int) {
	fmt.Printf("uv grid %dx%d:\n", n, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			uv := octmap.UV{
				U: (float64(i) + 0.5) / float64(n),
				V: (float64(j) + 0.5) / float64(n),
			}
			printDecoded(uv)
		}
	}
}

func printDecoded(uv octmap.UV) {
	d := octmap.Decode(uv)
	face := octmap.Classify(d)
	c := face.Color()
	fmt.Printf("  (%.2f, %.2f) -> dir (%+.4f, %+.4f, %+.4f) -> %s (%g, %g, %g)\n",
		uv.U, uv.V, d.X, d.Y, d.Z, face, c.R, c.G, c.B)
}
