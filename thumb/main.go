// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command thumb downscales an exported chart image to a thumbnail for
// a gallery index.
//
// Usage:
//
//	thumb [-w width] input output
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/draw"
)

func main() {
	log.SetPrefix("thumb: ")
	log.SetFlags(0)

	var flagWidth = flag.Int("w", 320, "thumbnail `width` in pixels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-w width] input output\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	// Read input file.
	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	// Scale to the requested width, preserving aspect ratio.
	sb := src.Bounds()
	w := *flagWidth
	if w <= 0 || w > sb.Dx() {
		log.Fatalf("width must be in 1..%d", sb.Dx())
	}
	h := sb.Dy() * w / sb.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Over, nil)

	// Write output file.
	out, err := os.Create(flag.Arg(1))
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	if err := png.Encode(out, dst); err != nil {
		log.Fatal(err)
	}
}
