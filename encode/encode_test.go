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

package encode

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/wromat/canvas"
)

func testImage() *canvas.Image {
	img := canvas.New(16, 12)
	img.Fill(img.Bounds(), canvas.White)
	img.Fill(image.Rect(2, 3, 9, 7), canvas.RGB{R: 238, G: 39, B: 55})
	img.Set(15, 11, color.RGBA{0, 0, 255, 255})
	return img
}

func TestEncode(t *testing.T) {
	decoders := map[Format]func(io.Reader) (image.Image, error){
		PNG:  png.Decode,
		BMP:  bmp.Decode,
		TIFF: tiff.Decode,
	}
	img := testImage()
	for f, decode := range decoders {
		buf := &bytes.Buffer{}
		if err := Encode(buf, img, f); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		res, err := decode(buf)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if res.Bounds() != img.Bounds() {
			t.Fatalf("%s: bounds %v", f, res.Bounds())
		}
		for y := range img.Height {
			for x := range img.Width {
				r1, g1, b1, _ := img.At(x, y).RGBA()
				r2, g2, b2, _ := res.At(x, y).RGBA()
				if r1 != r2 || g1 != g2 || b1 != b2 {
					t.Fatalf("%s: pixel (%d,%d) differs", f, x, y)
				}
			}
		}
	}
}

func TestEncodeUnknown(t *testing.T) {
	if err := Encode(io.Discard, testImage(), Format(9)); err == nil {
		t.Error("expected an error")
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":     PNG,
		"PNG":  PNG,
		".bmp": BMP,
		"tif":  TIFF,
		"tiff": TIFF,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("jpeg"); err == nil {
		t.Error("expected an error")
	}
	if ct := TIFF.ContentType(); ct != "image/tiff" {
		t.Errorf("content type %q", ct)
	}
}

func TestScale(t *testing.T) {
	img := canvas.New(300, 300)
	img.Fill(img.Bounds(), canvas.White)
	img.Fill(image.Rect(0, 0, 150, 300), canvas.Black)

	res := Scale(img, 100)
	if res.Bounds() != image.Rect(0, 0, 100, 100) {
		t.Fatalf("bounds %v", res.Bounds())
	}
	if r, _, _, _ := res.At(10, 50).RGBA(); r != 0 {
		t.Errorf("left half is not black: %d", r)
	}
	if r, _, _, _ := res.At(90, 50).RGBA(); r != 0xffff {
		t.Errorf("right half is not white: %d", r)
	}

	if Scale(img, 0) != image.Image(img) || Scale(img, 300) != image.Image(img) {
		t.Error("image should be returned unchanged")
	}
}
