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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

const kappa = 0.5522847498

// BenchmarkFillRing fills an annulus, the outer circle counter-clockwise
// and the inner one clockwise.
func BenchmarkFillRing(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			p := addCircle(&path.Data{}, c, c, float64(size)*0.45, false)
			p = addCircle(p, c, c, float64(size)*0.30, true)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Fill(p, alphaPainter(dst))
			}
		})
	}
}

// BenchmarkStrokeCircle strokes a circle with round joins.
func BenchmarkStrokeCircle(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			p := addCircle(&path.Data{}, c, c, float64(size)*0.4, false)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Width = float64(size) / 50
				r.Join = graphics.LineJoinRound
				r.Stroke(p, alphaPainter(dst))
			}
		})
	}
}

// BenchmarkVectorRing draws the same annulus with x/image/vector.
func BenchmarkVectorRing(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			c := float32(size) / 2

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addVectorCircle(r, c, c, float32(size)*0.45, false)
				addVectorCircle(r, c, c, float32(size)*0.30, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func alphaPainter(dst *image.Alpha) EmitFunc {
	return func(y, xMin int, coverage []float32) {
		row := dst.Pix[y*dst.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(c * 255)
		}
	}
}

func addCircle(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	kr := kappa * r
	s := 1.0
	if clockwise {
		s = -1
	}
	pt := func(dx, dy float64) vec.Vec2 {
		return vec.Vec2{X: cx + s*dx, Y: cy + dy}
	}
	return p.MoveTo(pt(0, -r)).
		CubeTo(pt(kr, -r), pt(r, -kr), pt(r, 0)).
		CubeTo(pt(r, kr), pt(kr, r), pt(0, r)).
		CubeTo(pt(-kr, r), pt(-r, kr), pt(-r, 0)).
		CubeTo(pt(-r, -kr), pt(-kr, -r), pt(0, -r)).
		Close()
}

func addVectorCircle(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	kr := float32(kappa) * radius
	s := float32(1)
	if clockwise {
		s = -1
	}
	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+s*kr, cy-radius, cx+s*radius, cy-kr, cx+s*radius, cy)
	r.CubeTo(cx+s*radius, cy+kr, cx+s*kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-s*kr, cy+radius, cx-s*radius, cy+kr, cx-s*radius, cy)
	r.CubeTo(cx-s*radius, cy-kr, cx-s*kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}
