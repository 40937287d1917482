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

// Package render turns mat schemes into images.
//
// All drawing is done in the local coordinates of one section and mapped
// to the four sides of the mat using [mat.Section.Place].  Only the
// direction indicator in the central square is drawn with anti-aliasing.
package render

import (
	"sync"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/wromat/canvas"
	"seehuhn.de/go/wromat/mat"
	"seehuhn.de/go/wromat/raster"
	"seehuhn.de/go/wromat/scheme"
)

// Colors used for the elements of a scheme.
var (
	StartZoneColor = canvas.RGB{R: 192, G: 192, B: 192}
	ParkingColor   = canvas.RGB{R: 255, G: 0, B: 255}
	IndicatorColor = canvas.RGB{R: 0, G: 0, B: 255}
	WallColor      = canvas.Black

	ObstacleColors = map[mat.Color]canvas.RGB{
		mat.Red:   {R: 238, G: 39, B: 55},
		mat.Green: {R: 68, G: 214, B: 44},
	}
)

// Renderer draws schemes on top of a prebuilt template.
// A Renderer is safe for concurrent use.
type Renderer struct {
	g        *mat.Geometry
	template *canvas.Image
	clip     rect.Rect

	rasterizers sync.Pool
}

// NewRenderer builds the template for geometry g.
func NewRenderer(g *mat.Geometry) (*Renderer, error) {
	template, err := BuildTemplate(g)
	if err != nil {
		return nil, err
	}
	size := float64(g.Size())
	r := &Renderer{
		g:        g,
		template: template,
		clip:     rect.Rect{URx: size, URy: size},
	}
	r.rasterizers.New = func() any {
		return raster.NewRasterizer(r.clip)
	}
	return r, nil
}

// Geometry returns the geometry the renderer was built for.
func (r *Renderer) Geometry() *mat.Geometry {
	return r.g
}

// Template returns a copy of the empty mat.
func (r *Renderer) Template() *canvas.Image {
	return r.template.Clone()
}

// Draw paints the scheme s onto a fresh copy of the template.
// For obstacle schemes, cat must be the catalog the scheme was drawn from;
// set indices outside the catalog are ignored.
func (r *Renderer) Draw(s *scheme.Scheme, cat *mat.Catalog) *canvas.Image {
	img := r.template.Clone()

	r.drawStartZone(img, s.StartSection, s.StartZone)

	walls := s.Walls
	if s.Kind == scheme.Obstacle {
		r.drawParking(img, s.ParkingSection)
		for _, sec := range mat.Sections {
			idx, ok := s.Obstacles[sec]
			if !ok || cat == nil || idx < 0 || idx >= len(cat.Sets) {
				continue
			}
			r.drawObstacles(img, sec, cat.Sets[idx], s.Direction)
		}
		walls = mat.InnerWalls{}
	}

	r.drawWalls(img, walls)
	r.drawIndicator(img, s.Direction)

	return img
}

func (r *Renderer) fill(img *canvas.Image, s mat.Section, a, b mat.Point, c canvas.RGB) {
	img.Fill(s.Place(r.g, a, b), c)
}

func (r *Renderer) drawStartZone(img *canvas.Image, s mat.Section, z mat.StartZone) {
	if z < mat.Z1 || z > mat.Z6 {
		return
	}
	a, b := z.Rect(r.g)
	r.fill(img, s, a, b, StartZoneColor)
}

// drawParking draws the two barriers of the parking lot, attached to the
// outer wall next to the left radius.
func (r *Renderer) drawParking(img *canvas.Image, s mat.Section) {
	g := r.g
	left := g.InnerBorder
	for range 2 {
		r.fill(img, s,
			mat.Point{Row: 0, Col: left},
			mat.Point{Row: g.ParkingLength, Col: left + g.ParkingThickness},
			ParkingColor)
		left += g.ParkingThickness + g.ParkingGap
	}
}

func (r *Renderer) drawObstacles(img *canvas.Image, s mat.Section, set mat.ObstacleSet, d mat.Direction) {
	for _, o := range set {
		c, ok := ObstacleColors[mat.ResolveColor(o.Position, o.Color, d)]
		if !ok {
			continue
		}
		a, b := mat.Around(r.g.Point(o.Position), r.g.ObstacleSize)
		r.fill(img, s, a, b, c)
	}
}

// drawWalls draws the walls around the central square.  Each wall is
// extended to the walls of the two neighbouring sections, so that the
// corners are closed.
func (r *Renderer) drawWalls(img *canvas.Image, w mat.InnerWalls) {
	g := r.g
	h := g.Border / 2
	for _, s := range mat.Sections {
		row := w.Offset(g, s)
		col0 := w.Offset(g, s.Left())
		col1 := g.Width - w.Offset(g, s.Right())
		r.fill(img, s,
			mat.Point{Row: row - h, Col: col0 - h},
			mat.Point{Row: row - h + g.Border, Col: col1 - h + g.Border},
			WallColor)
	}
}
