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
	"strings"
)

// Color is the color of a traffic sign obstacle.
type Color uint8

// Undefined marks an obstacle whose color depends on the driving
// direction. It is resolved by [ResolveColor].
const (
	Undefined Color = iota
	Red
	Green
)

func (c Color) String() string {
	switch c {
	case Undefined:
		return "undefined"
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Direction is the driving direction of a round.
type Direction uint8

// The two driving directions.
const (
	CW Direction = iota
	CCW
)

func (d Direction) String() string {
	switch d {
	case CW:
		return "cw"
	case CCW:
		return "ccw"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirection converts "cw" or "ccw" (case insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "cw":
		return CW, nil
	case "ccw":
		return CCW, nil
	}
	return 0, fmt.Errorf("unknown driving direction %q", s)
}

// ResolveColor returns the concrete color of an obstacle at position p.
// Defined colors are returned unchanged. An undefined obstacle on the arc
// nearer to the central square is green when driving clockwise and red
// otherwise; obstacles further out get the opposite color.
func ResolveColor(p Intersection, c Color, d Direction) Color {
	if c != Undefined {
		return c
	}
	if p.IsCloser() == (d == CW) {
		return Green
	}
	return Red
}
