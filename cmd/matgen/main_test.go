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

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()

	out := filepath.Join(dir, "final.tiff")
	if err := run("final", "ccw", out, "", 300, 17, false); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := tiff.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 300 {
		t.Errorf("image size %v", b)
	}

	out = filepath.Join(dir, "open.img")
	if err := run("open", "cw", out, "png", 100, 0, false); err != nil {
		t.Fatal(err)
	}
	g, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	if _, err := png.Decode(g); err != nil {
		t.Fatal(err)
	}
}

func TestRunErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "mat.png")
	cases := []struct {
		challenge, dir, out, format string
	}{
		{"semifinal", "cw", out, ""},
		{"open", "up", out, ""},
		{"open", "cw", out, "jpeg"},
		{"open", "cw", filepath.Join(out, "missing", "mat.png"), ""},
	}
	for _, c := range cases {
		if err := run(c.challenge, c.dir, c.out, c.format, 0, 1, false); err == nil {
			t.Errorf("%+v: expected an error", c)
		}
	}
}
