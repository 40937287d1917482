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

package scheme

import (
	"math/rand/v2"

	"seehuhn.de/go/wromat/mat"
)

// NewOpen draws a random configuration for the open challenge.
//
// The number of moved inner walls is uniform in 0, ..., 4 and, for a given
// number, every choice of sides is equally likely.  The start section is
// uniform.  If the inner wall of the start section is moved, the vehicle
// must start in one of the zones Z3 to Z6, otherwise all six zones are
// possible.
func NewOpen(rng *rand.Rand, dir mat.Direction) *Scheme {
	s := &Scheme{
		Kind:      Open,
		Direction: dir,
	}

	perm := rng.Perm(len(mat.Sections))
	for _, i := range perm[:rng.IntN(len(mat.Sections)+1)] {
		s.Walls[mat.Sections[i]] = true
	}

	s.StartSection = mat.Sections[rng.IntN(len(mat.Sections))]

	zones := mat.OpenStartZones
	if s.Walls.Outer(s.StartSection) {
		zones = mat.ShortSectionStartZones
	}
	s.StartZone = zones[rng.IntN(len(zones))]

	return s
}
