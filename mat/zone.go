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

// StartZone is one of the six rectangular zones of a section in which the
// vehicle may start.
type StartZone uint8

// The start zones, numbered from the central square outwards, right
// column first.
const (
	Z1 StartZone = iota + 1
	Z2
	Z3
	Z4
	Z5
	Z6
)

var zoneCorners = [...][2]Intersection{
	Z1: {X1, BottomRight},
	Z2: {T2, BottomMiddle},
	Z3: {X2, T1},
	Z4: {T4, X1},
	Z5: {TopMiddle, T3},
	Z6: {TopLeft, X2},
}

// Corners returns two diagonally opposite intersections of z.
func (z StartZone) Corners() (Intersection, Intersection) {
	c := zoneCorners[z]
	return c[0], c[1]
}

// Rect returns the diagonal corners of z in the local frame.
func (z StartZone) Rect(g *Geometry) (Point, Point) {
	a, b := z.Corners()
	return g.Point(a), g.Point(b)
}

func (z StartZone) String() string {
	if z >= Z1 && z <= Z6 {
		return fmt.Sprintf("Z%d", uint8(z))
	}
	return fmt.Sprintf("StartZone(%d)", uint8(z))
}

// MarshalText implements [encoding.TextMarshaler].
func (z StartZone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

var (
	// OpenStartZones are the start zones of the open challenge when the
	// inner wall of the start section is in its default position.
	OpenStartZones = []StartZone{Z6, Z5, Z4, Z3, Z2, Z1}

	// ShortSectionStartZones are the start zones which remain available
	// when the inner wall is moved to the second arc.
	ShortSectionStartZones = []StartZone{Z6, Z5, Z4, Z3}

	// ObstacleStartZones are the start zones of the obstacle challenge.
	ObstacleStartZones = []StartZone{Z3, Z4}
)
