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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke paints the outline of p using Width, Cap, Join and MiterLimit.
//
// The outline is built as a union of one rectangle per line segment, plus
// cap and join shapes. All pieces are filled together using the nonzero
// rule, so overlapping pieces are painted only once.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	if r.Width <= 0 {
		return
	}
	r.beginEdges()
	r.walk(p, r.strokeLine)
	r.fill(emit)
}

// strokeLine adds the outline pieces for one flattened subpath.
func (r *Rasterizer) strokeLine(points []vec.Vec2, closed bool) {
	points = dedup(points)
	d := r.Width / 2

	if len(points) == 1 {
		// a degenerate subpath has no direction; only round caps show
		if r.Cap == graphics.LineCapRound {
			r.addDisc(points[0], d)
		}
		return
	}
	if closed && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}

	n := len(points)
	segs := n - 1
	if closed && n > 2 {
		segs = n
	}
	for i := range segs {
		a, b := points[i], points[(i+1)%n]
		if !closed && r.Cap == graphics.LineCapSquare {
			t := unit(b.Sub(a)).Mul(d)
			if i == 0 {
				a = a.Sub(t)
			}
			if i == segs-1 {
				b = b.Add(t)
			}
		}
		r.addSegment(a, b, d)
	}

	// joins
	for i := range n {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		if closed && n == 2 {
			continue
		}
		prev := points[(i+n-1)%n]
		next := points[(i+1)%n]
		r.addJoin(points[i], unit(points[i].Sub(prev)), unit(next.Sub(points[i])), d)
	}

	if !closed && r.Cap == graphics.LineCapRound {
		r.addDisc(points[0], d)
		r.addDisc(points[n-1], d)
	}
}

// addSegment adds the rectangle covering the stroke of segment a-b.
func (r *Rasterizer) addSegment(a, b vec.Vec2, d float64) {
	t := unit(b.Sub(a))
	off := normal(t).Mul(d)
	r.scratch = append(r.scratch[:0], a.Add(off), b.Add(off), b.Sub(off), a.Sub(off))
	r.addPolygon(r.scratch, true)
}

// addJoin fills the wedge on the outer side of the corner at p, where the
// direction changes from t1 to t2.
func (r *Rasterizer) addJoin(p, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(cross) < 1e-9 && t1.Dot(t2) > 0 {
		return // straight continuation
	}
	if r.Join == graphics.LineJoinRound {
		r.addDisc(p, d)
		return
	}

	// the outer side is the one where the offset lines diverge
	side := -1.0
	if cross < 0 {
		side = 1
	}
	n1 := normal(t1).Mul(side * d)
	n2 := normal(t2).Mul(side * d)

	r.scratch = append(r.scratch[:0], p, p.Add(n1))
	if r.Join == graphics.LineJoinMiter {
		cosHalf := math.Sqrt((1 + t1.Dot(t2)) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit {
			bisector := unit(n1.Add(n2))
			r.scratch = append(r.scratch, p.Add(bisector.Mul(d/cosHalf)))
		}
	}
	r.scratch = append(r.scratch, p.Add(n2))
	r.addPolygon(r.scratch, true)
}

// addDisc adds a flattened circle of radius rad around c.
func (r *Rasterizer) addDisc(c vec.Vec2, rad float64) {
	devRad := max(r.deviceLength(vec.Vec2{X: rad}), r.deviceLength(vec.Vec2{Y: rad}))
	n := 8
	if devRad > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRad)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}
	r.scratch = r.scratch[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.scratch = append(r.scratch, c.Add(vec.Vec2{X: rad * math.Cos(phi), Y: rad * math.Sin(phi)}))
	}
	r.addPolygon(r.scratch, true)
}

// dedup removes consecutive duplicate points.
func dedup(points []vec.Vec2) []vec.Vec2 {
	out := points[:1]
	for _, p := range points[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// normal returns v rotated by 90 degrees.
func normal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}
