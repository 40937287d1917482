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
	"errors"
	"fmt"
)

// Catalog lists the obstacle sets which the randomizer combines.
type Catalog struct {
	Sets []ObstacleSet

	// Mandatory maps a color to the index of the set which must be
	// present on every mat. One of the two is chosen per mat.
	Mandatory map[Color]int

	// Required lists set indices of which at least one must be present.
	Required []int
}

func ob(p Intersection, c Color) Obstacle { return Obstacle{Position: p, Color: c} }

// DefaultCatalog returns the obstacle cards of the competition rules.
// Cards which only differ by their printed number are listed once.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Sets: []ObstacleSet{
			{ob(T1, Green)}, // 0
			{ob(T1, Red)},
			{ob(X1, Green)},
			{ob(X1, Red)},
			{ob(T2, Green)},
			{ob(T2, Red)}, // 5
			{ob(T3, Green)},
			{ob(T3, Red)},
			{ob(X2, Green)},
			{ob(X2, Red)},
			{ob(T4, Green)}, // 10
			{ob(T4, Red)},

			{ob(T3, Green), ob(T2, Green)},
			{ob(T3, Green), ob(T2, Red)},
			{ob(T3, Red), ob(T2, Green)},
			{ob(T3, Red), ob(T2, Red)}, // 15

			{ob(T1, Green), ob(T4, Green)},
			{ob(T1, Green), ob(T4, Red)},
			{ob(T1, Red), ob(T4, Green)},
			{ob(T1, Red), ob(T4, Red)},

			{ob(T1, Green), ob(T2, Green)}, // 20
			{ob(T1, Green), ob(T2, Red)},
			{ob(T1, Red), ob(T2, Green)},
			{ob(T1, Green), ob(T2, Red)},
			{ob(T1, Red), ob(T2, Green)},
			{ob(T1, Red), ob(T2, Red)}, // 25

			{ob(T3, Green), ob(T4, Green)},
			{ob(T3, Green), ob(T4, Red)},
			{ob(T3, Red), ob(T4, Green)},
			{ob(T3, Green), ob(T4, Red)},
			{ob(T3, Red), ob(T4, Green)}, // 30
			{ob(T3, Red), ob(T4, Red)},
		},
		Mandatory: map[Color]int{
			Green: 8,
			Red:   9,
		},
		Required: []int{21, 22, 27, 28},
	}
}

var errCatalog = errors.New("invalid obstacle catalog")

// Validate checks the internal consistency of the catalog. It does not
// check whether the randomizer can find a valid combination.
func (c *Catalog) Validate() error {
	n := len(c.Sets)
	for i, set := range c.Sets {
		if len(set) > 2 {
			return fmt.Errorf("%w: set %d has %d obstacles", errCatalog, i, len(set))
		}
		for _, o := range set {
			if o.Position > BottomRight || o.Color > Green {
				return fmt.Errorf("%w: set %d has malformed obstacle %v", errCatalog, i, o)
			}
		}
	}
	if len(c.Mandatory) == 0 {
		return fmt.Errorf("%w: no mandatory set", errCatalog)
	}
	for col, idx := range c.Mandatory {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: mandatory %s set %d out of range", errCatalog, col, idx)
		}
	}
	if len(c.Required) == 0 {
		return fmt.Errorf("%w: empty required pool", errCatalog)
	}
	for _, idx := range c.Required {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: required set %d out of range", errCatalog, idx)
		}
		for col, m := range c.Mandatory {
			if idx == m {
				return fmt.Errorf("%w: set %d is both required and mandatory (%s)", errCatalog, idx, col)
			}
		}
	}
	// two more sets must be drawable besides the reserved ones
	reserved := make(map[int]bool)
	for _, idx := range c.Mandatory {
		reserved[idx] = true
	}
	for _, idx := range c.Required {
		reserved[idx] = true
	}
	if free := n - len(reserved); free < 2 {
		return fmt.Errorf("%w: need at least 2 unreserved sets, have %d", errCatalog, free)
	}
	return nil
}

// forbiddenInStartZone lists the intersections which would be in front of
// the vehicle, for each driving direction and obstacle challenge start
// zone.
var forbiddenInStartZone = [2]map[StartZone][]Intersection{
	CW: {
		Z3: {T1, T3},
		Z4: {X1, X2},
	},
	CCW: {
		Z3: {X1, X2},
		Z4: {T2, T4},
	},
}

// ForbiddenInStartZone returns the intersections which must be free of
// obstacles when the vehicle starts in zone z, driving in direction d.
func ForbiddenInStartZone(d Direction, z StartZone) []Intersection {
	return forbiddenInStartZone[d][z]
}

// ParkingForbidden lists the intersections which must not hold obstacles
// in the section with the parking lot.
var ParkingForbidden = []Intersection{T3, T4, X2}
