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

package render

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/wromat/canvas"
	"seehuhn.de/go/wromat/mat"
	"seehuhn.de/go/wromat/raster"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498

// Arrow head offsets, relative to the end point of the arc, for an
// indicator of radius 350.
var (
	cwArrow  = [2]vec.Vec2{{X: -30, Y: 80}, {X: 50, Y: 75}}
	ccwArrow = [2]vec.Vec2{{X: 80, Y: -30}, {X: 75, Y: 50}}
)

// indicatorPath returns the direction indicator: three quarters of a
// circle around the centre of the mat, starting at the top and running
// clockwise through the right and the bottom to the left, with an arrow
// head at the left end for clockwise driving and at the top end for
// counter-clockwise driving.
func indicatorPath(g *mat.Geometry, d mat.Direction) *path.Data {
	c := float64(g.Border) + float64(g.Width)/2
	r := float64(g.IndicatorRadius)
	k := kappa * r
	pt := func(dx, dy float64) vec.Vec2 {
		return vec.Vec2{X: c + dx, Y: c + dy}
	}

	p := (&path.Data{}).
		MoveTo(pt(0, -r)).
		CubeTo(pt(k, -r), pt(r, -k), pt(r, 0)).
		CubeTo(pt(r, k), pt(k, r), pt(0, r)).
		CubeTo(pt(-k, r), pt(-r, k), pt(-r, 0))

	tip, arrow := pt(-r, 0), cwArrow
	if d == mat.CCW {
		tip, arrow = pt(0, -r), ccwArrow
	}
	scale := r / 350
	return p.
		MoveTo(tip.Add(arrow[0].Mul(scale))).
		LineTo(tip).
		LineTo(tip.Add(arrow[1].Mul(scale)))
}

func (r *Renderer) drawIndicator(img *canvas.Image, d mat.Direction) {
	ras := r.rasterizers.Get().(*raster.Rasterizer)
	defer r.rasterizers.Put(ras)

	ras.Reset(r.clip)
	ras.Width = float64(r.g.IndicatorThickness)
	ras.Cap = graphics.LineCapRound
	ras.Join = graphics.LineJoinRound
	ras.Stroke(indicatorPath(r.g, d), img.Painter(IndicatorColor))
}
