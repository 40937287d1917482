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

package mat

import (
	"fmt"
	"image"
)

// Point is a pixel position in the local frame of Section N.
type Point struct {
	Row, Col int
}

// Section identifies one of the four straightforward sections.
type Section uint8

// The four straightforward sections, in the order used by the
// randomizers.
const (
	North Section = iota
	West
	South
	East
)

// Sections lists all straightforward sections.
var Sections = [4]Section{North, West, South, East}

func (s Section) String() string {
	switch s {
	case North:
		return "N"
	case West:
		return "W"
	case South:
		return "S"
	case East:
		return "E"
	default:
		return fmt.Sprintf("Section(%d)", uint8(s))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (s Section) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Left returns the neighbouring section on the left hand side, as seen
// from the centre of the mat.  In the local frame this is the side with
// small column indices.
func (s Section) Left() Section {
	return (s + 1) % 4
}

// Right returns the neighbouring section on the right hand side, as seen
// from the centre of the mat.
func (s Section) Right() Section {
	return (s + 3) % 4
}

// span is a half-open interval of pixel indices.
type span struct{ lo, hi int }

// transform maps the row and column spans of a local rectangle to the
// global row and column spans, before the outer wall offset is applied.
type transform func(size int, rows, cols span) (gRows, gCols span)

// flip mirrors a span at the far edge of the mat.
func flip(size int, s span) span {
	return span{size - s.hi, size - s.lo}
}

var transforms = [4]transform{
	North: func(size int, rows, cols span) (span, span) {
		return rows, cols
	},
	West: func(size int, rows, cols span) (span, span) {
		return flip(size, cols), rows
	},
	South: func(size int, rows, cols span) (span, span) {
		return flip(size, rows), flip(size, cols)
	},
	East: func(size int, rows, cols span) (span, span) {
		return cols, flip(size, rows)
	},
}

// Place maps the local rectangle with diagonal corners a and b into the
// image coordinates of section s. The corners may be given in any order.
// In the returned rectangle X is the image column and Y is the image row.
func (s Section) Place(g *Geometry, a, b Point) image.Rectangle {
	rows := span{min(a.Row, b.Row), max(a.Row, b.Row)}
	cols := span{min(a.Col, b.Col), max(a.Col, b.Col)}
	gRows, gCols := transforms[s](g.Width, rows, cols)
	return image.Rect(gCols.lo, gRows.lo, gCols.hi, gRows.hi).
		Add(image.Pt(g.Border, g.Border))
}

// Around returns the local square of side length size centred on p.
func Around(p Point, size int) (a, b Point) {
	h := size / 2
	return Point{p.Row - h, p.Col - h}, Point{p.Row + h, p.Col + h}
}
