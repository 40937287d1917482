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

// Package canvas provides the 8-bit RGB pixel buffer which the mat
// schematics are drawn on.
package canvas

import (
	"image"
	"image/color"
)

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements [color.Color].
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Some frequently used colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Image is a rectangular grid of RGB pixels, stored in row-major order
// with three bytes per pixel. The origin is the top-left corner.
//
// An Image is not safe for concurrent modification.
type Image struct {
	Pix    []uint8
	Stride int
	Width  int
	Height int
}

// New allocates a black image of the given size.
func New(width, height int) *Image {
	return &Image{
		Pix:    make([]uint8, 3*width*height),
		Stride: 3 * width,
		Width:  width,
		Height: height,
	}
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	res := *img
	res.Pix = make([]uint8, len(img.Pix))
	copy(res.Pix, img.Pix)
	return &res
}

// ColorModel implements [image.Image].
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements [image.Image].
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements [image.Image].
func (img *Image) At(x, y int) color.Color {
	return img.RGBAt(x, y)
}

// RGBAt returns the color of the pixel in column x and row y.
// Pixels outside the image are black.
func (img *Image) RGBAt(x, y int) RGB {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return Black
	}
	i := y*img.Stride + 3*x
	return RGB{img.Pix[i], img.Pix[i+1], img.Pix[i+2]}
}

// Set implements [draw.Image].
func (img *Image) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return
	}
	r, g, b, _ := c.RGBA()
	i := y*img.Stride + 3*x
	img.Pix[i] = uint8(r >> 8)
	img.Pix[i+1] = uint8(g >> 8)
	img.Pix[i+2] = uint8(b >> 8)
}

// Fill paints the rectangle r, clipped to the image, with color c.
func (img *Image) Fill(r image.Rectangle, c RGB) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[y*img.Stride+3*r.Min.X : y*img.Stride+3*r.Max.X]
		for i := 0; i < len(row); i += 3 {
			row[i] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
		}
	}
}

// Blend composites color c onto row y, starting at column xMin, using the
// given coverage values in [0, 1] as opacity. The signature matches the
// emit callback of the rasterizer.
func (img *Image) Blend(c RGB, y, xMin int, coverage []float32) {
	if y < 0 || y >= img.Height {
		return
	}
	for i, cov := range coverage {
		x := xMin + i
		if x < 0 || x >= img.Width || cov <= 0 {
			continue
		}
		p := img.Pix[y*img.Stride+3*x:]
		if cov >= 1 {
			p[0], p[1], p[2] = c.R, c.G, c.B
			continue
		}
		p[0] = mix(p[0], c.R, cov)
		p[1] = mix(p[1], c.G, cov)
		p[2] = mix(p[2], c.B, cov)
	}
}

func mix(dst, src uint8, alpha float32) uint8 {
	v := float32(dst) + (float32(src)-float32(dst))*alpha
	return uint8(min(255, max(0, v+0.5)))
}

// ToRGBA converts img to an [image.RGBA].
func (img *Image) ToRGBA() *image.RGBA {
	res := image.NewRGBA(img.Bounds())
	for y := range img.Height {
		src := img.Pix[y*img.Stride : y*img.Stride+3*img.Width]
		dst := res.Pix[y*res.Stride : y*res.Stride+4*img.Width]
		for i, j := 0, 0; i < len(src); i, j = i+3, j+4 {
			dst[j] = src[i]
			dst[j+1] = src[i+1]
			dst[j+2] = src[i+2]
			dst[j+3] = 0xff
		}
	}
	return res
}

// Painter returns an emit callback which blends color c into img.
func (img *Image) Painter(c RGB) func(y, xMin int, coverage []float32) {
	return func(y, xMin int, coverage []float32) {
		img.Blend(c, y, xMin, coverage)
	}
}
