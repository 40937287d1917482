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
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"

	"seehuhn.de/go/wromat/mat"
)

// DefaultMaxAttempts is the number of draws [NewObstacle] makes before it
// gives up, if no other limit is given.
const DefaultMaxAttempts = 10000

// ExhaustedError is returned by [NewObstacle] if no draw satisfied all
// acceptance conditions.  The counters give the number of draws for which
// each individual condition held.
type ExhaustedError struct {
	Attempts int

	Balanced  int // green and red counts differ by at most one
	Enough    int // more than four obstacles
	StartZone int // some set leaves a start zone free
	Parking   int // some set leaves the parking lot free
}

func (e *ExhaustedError) Error() string {
	var never []string
	if e.Balanced == 0 {
		never = append(never, "balanced colors")
	}
	if e.Enough == 0 {
		never = append(never, "obstacle count")
	}
	if e.StartZone == 0 {
		never = append(never, "start zone")
	}
	if e.Parking == 0 {
		never = append(never, "parking lot")
	}
	if len(never) > 0 {
		return fmt.Sprintf("no obstacle scheme after %d attempts: never satisfied: %s",
			e.Attempts, strings.Join(never, ", "))
	}
	return fmt.Sprintf("no obstacle scheme after %d attempts: conditions never jointly satisfied (balanced %d, count %d, start zone %d, parking %d)",
		e.Attempts, e.Balanced, e.Enough, e.StartZone, e.Parking)
}

// NewObstacle draws a random configuration for the obstacle challenge.
//
// Each draw combines one of the mandatory sets, one set from the required
// pool and two further distinct sets which are neither mandatory nor
// required.  A draw is accepted if the numbers of green and red obstacles
// differ by at most one, there are more than four obstacles, at least one
// set allows a start zone which is not blocked, and at least one set
// leaves room for the parking lot.  The sets are then assigned to the
// sections in random order.
//
// The catalog must be valid, see [mat.Catalog.Validate].  If maxAttempts
// is not positive, [DefaultMaxAttempts] is used.  If no draw is accepted,
// an [*ExhaustedError] is returned.
func NewObstacle(rng *rand.Rand, cat *mat.Catalog, dir mat.Direction, maxAttempts int) (*Scheme, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	mandatory := slices.Sorted(maps.Keys(cat.Mandatory))
	var free []int
	for i := range cat.Sets {
		if !isReserved(cat, i) {
			free = append(free, i)
		}
	}
	if len(free) < 2 {
		return nil, fmt.Errorf("obstacle catalog has only %d unreserved sets", len(free))
	}

	stats := &ExhaustedError{}
	for range maxAttempts {
		stats.Attempts++

		var chosen [4]int
		chosen[0] = cat.Mandatory[mandatory[rng.IntN(len(mandatory))]]
		chosen[1] = cat.Required[rng.IntN(len(cat.Required))]
		chosen[2] = free[rng.IntN(len(free))]
		chosen[3] = chosen[2]
		for chosen[3] == chosen[2] {
			chosen[3] = free[rng.IntN(len(free))]
		}

		total, green, red := 0, 0, 0
		var startSets, parkingSets []int
		for i, idx := range chosen {
			set := cat.Sets[idx]
			total += len(set)
			g, r := set.Colors(dir)
			green += g
			red += r
			if len(startZones(set, dir)) > 0 {
				startSets = append(startSets, i)
			}
			if !set.Occupies(mat.ParkingForbidden) {
				parkingSets = append(parkingSets, i)
			}
		}

		balanced := green-red <= 1 && red-green <= 1
		enough := total > 4
		if balanced {
			stats.Balanced++
		}
		if enough {
			stats.Enough++
		}
		if len(startSets) > 0 {
			stats.StartZone++
		}
		if len(parkingSets) > 0 {
			stats.Parking++
		}
		if !balanced || !enough || len(startSets) == 0 || len(parkingSets) == 0 {
			continue
		}

		s := &Scheme{
			Kind:      Obstacle,
			Direction: dir,
			Obstacles: make(map[mat.Section]int, len(chosen)),
		}
		sections := rng.Perm(len(mat.Sections))
		for i, idx := range chosen {
			s.Obstacles[mat.Sections[sections[i]]] = idx
		}

		start := startSets[rng.IntN(len(startSets))]
		s.StartSection = mat.Sections[sections[start]]
		zones := startZones(cat.Sets[chosen[start]], dir)
		s.StartZone = zones[rng.IntN(len(zones))]

		parking := parkingSets[rng.IntN(len(parkingSets))]
		s.ParkingSection = mat.Sections[sections[parking]]

		return s, nil
	}
	return nil, stats
}

// startZones returns the obstacle challenge start zones which are not
// blocked by the obstacles of set.
func startZones(set mat.ObstacleSet, dir mat.Direction) []mat.StartZone {
	var zones []mat.StartZone
	for _, z := range mat.ObstacleStartZones {
		if !set.Occupies(mat.ForbiddenInStartZone(dir, z)) {
			zones = append(zones, z)
		}
	}
	return zones
}

func isReserved(cat *mat.Catalog, idx int) bool {
	for _, m := range cat.Mandatory {
		if m == idx {
			return true
		}
	}
	return slices.Contains(cat.Required, idx)
}
