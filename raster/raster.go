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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// The rasterizer computes, for every pixel, the exact fraction of its area
// covered by a polygon. Curves are flattened to line segments first.
// Strokes are converted to a union of polygons which is then filled using
// the nonzero winding rule.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row, starting at column
// xMin. The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasterizer converts paths to pixel coverage values in [0, 1].
// Internal buffers are reused between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this device-space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its approximating polygon.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the shape of the end points of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape of stroke corners.
	Join graphics.LineJoinStyle

	// MiterLimit limits the length of miter joins, relative to the stroke
	// width. Longer miters are drawn as bevels.
	MiterLimit float64

	edges  []edge
	active []int
	cover  []float32 // per pixel: signed height of the edges crossing the pixel
	area   []float32 // per pixel: part of cover which lies inside the pixel

	bbox      rect.Rect // device-space bounding box of edges
	bboxEmpty bool

	// stroke state
	line    []vec.Vec2 // flattened points of the current subpath
	scratch []vec.Vec2
}

// edge is a polygon edge in device space, with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the original edge pointed downwards, -1 otherwise
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

// Default parameter values, matching the PDF defaults.
const (
	defaultFlatness   = 0.25
	defaultMiterLimit = 10.0

	// edges with a smaller vertical extent do not contribute to coverage
	horizontalThreshold = 1e-10
)

// NewRasterizer returns a Rasterizer for the given clip rectangle, with
// default values for all other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// Fill fills the path using the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) Fill(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.walk(p, func(points []vec.Vec2, _ bool) {
		r.addPolygon(points, false)
	})
	r.fill(emit)
}

// walk flattens all subpaths of p and calls fn with the points of each
// subpath in user space. The slice is reused between calls.
func (r *Rasterizer) walk(p *path.Data, fn func(points []vec.Vec2, closed bool)) {
	r.line = r.line[:0]
	flush := func(closed bool) {
		if len(r.line) > 0 {
			fn(r.line, closed)
		}
		r.line = r.line[:0]
	}
	add := func(_, to vec.Vec2) {
		r.line = append(r.line, to)
	}

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			current = p.Coords[k]
			start = current
			r.line = append(r.line, current)
			k++
		case path.CmdLineTo:
			if len(r.line) == 0 {
				r.line = append(r.line, current)
			}
			current = p.Coords[k]
			r.line = append(r.line, current)
			k++
		case path.CmdQuadTo:
			if len(r.line) == 0 {
				r.line = append(r.line, current)
			}
			r.flattenQuad(current, p.Coords[k], p.Coords[k+1], add)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			if len(r.line) == 0 {
				r.line = append(r.line, current)
			}
			r.flattenCube(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], add)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			flush(true)
			current = start
		}
	}
	flush(false)
}

// deviceLength returns the device-space length of the user-space vector v,
// ignoring translation.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}.Length()
}

func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) flattenCube(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	// Wang's formula
	dev := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if dev > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*dev/(4*r.Flatness)))))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addPolygon adds the closed polygon with the given user-space vertices.
// If normalize is set, the orientation is reversed where needed so that all
// polygons added this way wind in the same direction; overlapping parts
// then remain covered under the nonzero rule.
func (r *Rasterizer) addPolygon(points []vec.Vec2, normalize bool) {
	n := len(points)
	if n < 2 {
		return
	}
	reverse := false
	if normalize {
		var area float64
		for i, a := range points {
			b := points[(i+1)%n]
			area += a.X*b.Y - b.X*a.Y
		}
		reverse = area > 0
	}
	for i := range n {
		a, b := points[i], points[(i+1)%n]
		if reverse {
			a, b = b, a
		}
		r.addEdge(a, b)
	}
}

// addEdge transforms a user-space line segment to device space and adds
// it to the edge list.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	if math.Abs(y1-y0) < horizontalThreshold {
		return
	}
	var dir float32 = 1
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / (y1 - y0),
		dir:  dir,
	})

	lo := rect.Rect{LLx: min(x0, x1), LLy: y0, URx: max(x0, x1), URy: y1}
	if r.bboxEmpty {
		r.bbox = lo
		r.bboxEmpty = false
	} else {
		r.bbox.LLx = min(r.bbox.LLx, lo.LLx)
		r.bbox.LLy = min(r.bbox.LLy, lo.LLy)
		r.bbox.URx = max(r.bbox.URx, lo.URx)
		r.bbox.URy = max(r.bbox.URy, lo.URy)
	}
}

// fill scans the collected edges row by row and emits the coverage.
func (r *Rasterizer) fill(emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}
		// drop edges which end above this row
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].y1 <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bot, xMin, xMax)
		}
		integrateNonZero(r.cover, r.area)

		lo, hi := 0, width
		for lo < hi && r.cover[lo] == 0 {
			lo++
		}
		for hi > lo && r.cover[hi-1] == 0 {
			hi--
		}
		if lo < hi {
			emit(y, xMin+lo, r.cover[lo:hi])
		}
	}
}

// accumulate adds the contribution of edge e within the scanline
// [top, bot) to the cover and area buffers. The buffers represent the
// pixel columns [xMin, xMax); anything left of xMin is folded into the
// first column, anything right of xMax is dropped.
func (r *Rasterizer) accumulate(e *edge, top, bot float64, xMin, xMax int) {
	top = max(top, e.y0)
	bot = min(bot, e.y1)
	if bot <= top {
		return
	}

	xa, xb := e.xAt(top), e.xAt(bot)
	left, right := min(xa, xb), max(xa, xb)
	colL, colR := int(math.Floor(left)), int(math.Floor(right))

	if colR < xMin {
		h := e.dir * float32(bot-top)
		r.cover[0] += h
		r.area[0] += h
		return
	}
	if colL >= xMax {
		return
	}

	if colL == colR {
		r.addCell(colL, e.dir*float32(bot-top), (xa+xb)/2, xMin, xMax)
		return
	}

	// The edge crosses several columns: split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for col := colL; col <= colR; col++ {
		ya := e.y0 + (float64(col)-e.x0)*dydx
		yb := e.y0 + (float64(col+1)-e.x0)*dydx
		segTop := max(min(ya, yb), top)
		segBot := min(max(ya, yb), bot)
		if segBot <= segTop {
			continue
		}
		xMid := e.xAt((segTop + segBot) / 2)
		r.addCell(col, e.dir*float32(segBot-segTop), xMid, xMin, xMax)
	}
}

// addCell records an edge piece of signed height h which crosses pixel
// column col at mean position x.
func (r *Rasterizer) addCell(col int, h float32, x float64, xMin, xMax int) {
	switch {
	case col < xMin:
		r.cover[0] += h
		r.area[0] += h
	case col < xMax:
		i := col - xMin
		r.cover[i] += h
		r.area[i] += h * float32(1-(x-float64(col)))
	}
}

// integrateNonZero turns the accumulated cover and area values into
// coverage, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}
