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

// Package scheme draws random mat configurations for the two challenge
// rounds.
//
// A [Scheme] only names catalog entries and sections; turning it into an
// image is the job of the render package.
package scheme

import (
	"encoding/json"
	"fmt"
	"strings"

	"seehuhn.de/go/wromat/mat"
)

// Kind selects the challenge round.
type Kind uint8

// These are the two challenge rounds.
const (
	// Open is the qualification round: no obstacles, movable inner walls.
	Open Kind = iota

	// Obstacle is the final round: obstacle sets, parking lot, fixed
	// inner walls.
	Obstacle
)

func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Obstacle:
		return "obstacle"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind converts "open" or "obstacle" to a Kind.  The round names
// "qualification" and "final" are accepted as well.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "open", "qualification":
		return Open, nil
	case "obstacle", "final":
		return Obstacle, nil
	}
	return 0, fmt.Errorf("unknown challenge %q", s)
}

// Scheme is one randomized mat configuration.
type Scheme struct {
	Kind      Kind
	Direction mat.Direction

	// StartSection and StartZone give the location of the vehicle.
	StartSection mat.Section
	StartZone    mat.StartZone

	// ParkingSection holds the parking lot.  Only used for [Obstacle]
	// schemes.
	ParkingSection mat.Section

	// Obstacles maps each section to an index into the obstacle catalog.
	// The map is empty for [Open] schemes.
	Obstacles map[mat.Section]int

	// Walls lists the inner walls which are moved to the outer position.
	// This is always zero for [Obstacle] schemes.
	Walls mat.InnerWalls
}

// MarshalJSON implements [json.Marshaler].  Fields which are meaningless
// for the challenge kind are omitted.
func (s *Scheme) MarshalJSON() ([]byte, error) {
	out := struct {
		Kind           Kind                `json:"kind"`
		Direction      mat.Direction       `json:"direction"`
		StartSection   mat.Section         `json:"startSection"`
		StartZone      mat.StartZone       `json:"startZone"`
		ParkingSection *mat.Section        `json:"parkingSection,omitempty"`
		Obstacles      map[mat.Section]int `json:"obstacles,omitempty"`
		Walls          *mat.InnerWalls     `json:"walls,omitempty"`
	}{
		Kind:         s.Kind,
		Direction:    s.Direction,
		StartSection: s.StartSection,
		StartZone:    s.StartZone,
	}
	switch s.Kind {
	case Open:
		out.Walls = &s.Walls
	case Obstacle:
		out.ParkingSection = &s.ParkingSection
		out.Obstacles = s.Obstacles
	}
	return json.Marshal(out)
}
