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
	"encoding/json"
	"strings"
)

// InnerWalls records, for each side of the central square, whether the
// inner wall is moved out to the second arc. The zero value places all
// inner walls on the border of the central square.
type InnerWalls [4]bool

// Outer reports whether the inner wall on side s is in the outer
// position.
func (w InnerWalls) Outer(s Section) bool {
	return w[s]
}

// Offset returns the distance of the inner wall on side s from the outer
// wall.
func (w InnerWalls) Offset(g *Geometry, s Section) int {
	if w[s] {
		return g.SecondArc
	}
	return g.InnerBorder
}

func (w InnerWalls) String() string {
	var b strings.Builder
	for _, s := range w.Sides() {
		b.WriteString(s.String())
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

// Sides returns the sides whose inner wall is in the outer position.
func (w InnerWalls) Sides() []Section {
	sides := []Section{}
	for _, s := range Sections {
		if w[s] {
			sides = append(sides, s)
		}
	}
	return sides
}

// MarshalJSON encodes the walls as the list of sides with a moved wall.
func (w InnerWalls) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Sides())
}
