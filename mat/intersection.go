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

import "fmt"

// Intersection names a point where the guide lines of a section meet.
//
//	TopLeft----TopMiddle----TopRight       outer wall
//	   |     Z6    |     Z5    |
//	  T4----------X2----------T3           first arc
//	   |     Z4    |     Z3    |
//	  T2----------X1----------T1           second arc
//	   |     Z2    |     Z1    |
//	BottomLeft-BottomMiddle-BottomRight    central square
type Intersection uint8

// The twelve intersections of a section.
const (
	TopLeft Intersection = iota
	TopMiddle
	TopRight
	T4
	X2
	T3
	T2
	X1
	T1
	BottomLeft
	BottomMiddle
	BottomRight
)

var intersectionNames = [...]string{
	TopLeft:      "TopLeft",
	TopMiddle:    "TopMiddle",
	TopRight:     "TopRight",
	T4:           "T4",
	X2:           "X2",
	T3:           "T3",
	T2:           "T2",
	X1:           "X1",
	T1:           "T1",
	BottomLeft:   "BottomLeft",
	BottomMiddle: "BottomMiddle",
	BottomRight:  "BottomRight",
}

func (i Intersection) String() string {
	if int(i) < len(intersectionNames) {
		return intersectionNames[i]
	}
	return fmt.Sprintf("Intersection(%d)", uint8(i))
}

// MarshalText implements [encoding.TextMarshaler].
func (i Intersection) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Point returns the position of intersection i.
func (g *Geometry) Point(i Intersection) Point {
	var row int
	switch i / 3 {
	case 0:
		row = 0
	case 1:
		row = g.FirstArc
	case 2:
		row = g.SecondArc
	default:
		row = g.InnerBorder
	}

	var col int
	switch i % 3 {
	case 0:
		col = g.leftRadius()
	case 1:
		col = g.middleRadius()
	default:
		col = g.rightRadius()
	}

	return Point{Row: row, Col: col}
}

// IsCloser reports whether i lies on the second arc, i.e. on the arc
// nearer to the central square.
func (i Intersection) IsCloser() bool {
	return i == T1 || i == T2 || i == X1
}
