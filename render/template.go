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
	"seehuhn.de/go/wromat/canvas"
	"seehuhn.de/go/wromat/mat"
)

// BuildTemplate draws the static background of the mat: the outer wall,
// the white playing surface and the thin guide lines.  The result does not
// depend on anything but g.
func BuildTemplate(g *mat.Geometry) (*canvas.Image, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	size := g.Size()
	img := canvas.New(size, size)
	img.Fill(mat.North.Place(g, mat.Point{}, mat.Point{Row: g.Width, Col: g.Width}), canvas.White)

	h := g.ThinLine / 2
	line := func(s mat.Section, row0, col0, row1, col1 int) {
		img.Fill(s.Place(g, mat.Point{Row: row0, Col: col0}, mat.Point{Row: row1, Col: col1}), canvas.Black)
	}
	for _, s := range mat.Sections {
		// the two arcs
		for _, row := range []int{g.FirstArc, g.SecondArc} {
			line(s, row-h, g.InnerBorder, row-h+g.ThinLine, g.Width-g.InnerBorder)
		}
		// border to the central square, continued as the outer radii of
		// the two neighbours
		line(s, g.InnerBorder-h, 0, g.InnerBorder-h+g.ThinLine, g.Width)
		// middle radius
		mid := g.Width / 2
		line(s, 0, mid-h, g.InnerBorder, mid-h+g.ThinLine)
	}

	return img, nil
}
