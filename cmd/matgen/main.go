// seehuhn.de/go/wromat - randomized game mat schematics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Matgen writes a random game mat schematic to a file.
//
// Usage:
//
//	matgen [-challenge open|obstacle] [-dir cw|ccw] [-o file] [-format png|bmp|tiff] [-width n] [-seed n]
//
// If the output file is "-", the image is written to standard output.
// If no format is given, it is derived from the name of the output file.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"

	"seehuhn.de/go/wromat"
	"seehuhn.de/go/wromat/encode"
	"seehuhn.de/go/wromat/mat"
	"seehuhn.de/go/wromat/scheme"
)

func main() {
	challenge := flag.String("challenge", "obstacle", "challenge round: open or obstacle")
	dirName := flag.String("dir", "cw", "driving direction: cw or ccw")
	out := flag.String("o", "mat.png", "output file, or - for standard output")
	formatName := flag.String("format", "", "image format: png, bmp or tiff")
	width := flag.Int("width", 0, "scale the image to this width in pixels")
	seed := flag.Uint64("seed", 0, "random seed, 0 for a random mat")
	showScheme := flag.Bool("scheme", false, "print the scheme as JSON to standard error")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("matgen: ")

	if err := run(*challenge, *dirName, *out, *formatName, *width, *seed, *showScheme); err != nil {
		log.Fatal(err)
	}
}

func run(challenge, dirName, out, formatName string, width int, seed uint64, showScheme bool) error {
	kind, err := scheme.ParseKind(challenge)
	if err != nil {
		return err
	}
	dir, err := mat.ParseDirection(dirName)
	if err != nil {
		return err
	}
	if formatName == "" && out != "-" {
		formatName = filepath.Ext(out)
	}
	format, err := encode.ParseFormat(formatName)
	if err != nil {
		return err
	}

	opts := wromat.DefaultOptions()
	opts.Seed = seed
	gen, err := wromat.New(opts)
	if err != nil {
		return err
	}
	img, s, err := gen.Generate(kind, dir)
	if err != nil {
		return err
	}

	if showScheme {
		enc := json.NewEncoder(os.Stderr)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return err
		}
	}

	if out == "-" {
		return writeImage(os.Stdout, img, width, format)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := writeImage(f, img, width, format); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return f.Close()
}

func writeImage(w io.Writer, img image.Image, width int, format encode.Format) error {
	bw := bufio.NewWriter(w)
	if err := encode.Encode(bw, encode.Scale(img, width), format); err != nil {
		return err
	}
	return bw.Flush()
}
