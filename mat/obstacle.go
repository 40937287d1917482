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

import "slices"

// Obstacle is a traffic sign placed on an intersection.
type Obstacle struct {
	Position Intersection
	Color    Color
}

// ObstacleSet is the group of obstacles placed in one section.
// Sets in a [Catalog] hold at most two obstacles.
type ObstacleSet []Obstacle

// Colors counts the green and red obstacles of the set when driving in
// direction d.
func (s ObstacleSet) Colors(d Direction) (green, red int) {
	for _, o := range s {
		switch ResolveColor(o.Position, o.Color, d) {
		case Green:
			green++
		case Red:
			red++
		}
	}
	return green, red
}

// Occupies reports whether any obstacle of s is placed on one of the
// given intersections.
func (s ObstacleSet) Occupies(points []Intersection) bool {
	for _, o := range s {
		if slices.Contains(points, o.Position) {
			return true
		}
	}
	return false
}
