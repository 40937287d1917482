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

// Package mat describes the layout of the game mat: the pixel geometry of
// one straightforward section, the four symmetry transforms which place it
// on the mat, and the static catalog of obstacle sets and placement rules.
//
// All coordinates are given in the local frame of Section N: the row axis
// runs from the outer wall (row 0) towards the central square, the column
// axis runs from left to right.
package mat

import (
	"errors"
	"fmt"
)

// Geometry holds all pixel dimensions of the mat.
// A Geometry is immutable once validated; all components receive a pointer
// to the same value.
type Geometry struct {
	// Width is the side length of the mat without the outer walls.
	Width int

	// FirstArc and SecondArc are the distances of the two arcs from the
	// outer wall.
	FirstArc  int
	SecondArc int

	// InnerBorder is the distance of the central square from the outer
	// wall. It is also the column of the left radius.
	InnerBorder int

	// Border is the thickness of the outer and inner walls.
	Border int

	// ThinLine is the thickness of the arcs and radii.
	ThinLine int

	// ObstacleSize is the side length of an obstacle square.
	ObstacleSize int

	// Parking lot barriers.
	ParkingThickness int
	ParkingLength    int
	ParkingGap       int

	// Direction indicator in the central square.
	IndicatorRadius    int
	IndicatorThickness int
}

// DefaultGeometry returns the geometry of the 3m×3m competition mat at one
// pixel per millimetre.
func DefaultGeometry() *Geometry {
	return &Geometry{
		Width:              3000,
		FirstArc:           400,
		SecondArc:          600,
		InnerBorder:        1000,
		Border:             10,
		ThinLine:           2,
		ObstacleSize:       100,
		ParkingThickness:   20,
		ParkingLength:      200,
		ParkingGap:         300,
		IndicatorRadius:    350,
		IndicatorThickness: 20,
	}
}

var errGeometry = errors.New("invalid mat geometry")

// Validate checks that the dimensions describe a drawable mat.
func (g *Geometry) Validate() error {
	switch {
	case g.Width <= 0 || g.Border <= 0 || g.ThinLine <= 0:
		return fmt.Errorf("%w: width, border and line thickness must be positive", errGeometry)
	case !(0 < g.FirstArc && g.FirstArc < g.SecondArc && g.SecondArc < g.InnerBorder):
		return fmt.Errorf("%w: need 0 < FirstArc < SecondArc < InnerBorder", errGeometry)
	case 2*g.InnerBorder >= g.Width:
		return fmt.Errorf("%w: central square has no room (InnerBorder=%d, Width=%d)",
			errGeometry, g.InnerBorder, g.Width)
	case g.ObstacleSize <= 0 || g.ObstacleSize/2 > g.FirstArc:
		return fmt.Errorf("%w: obstacle size %d does not fit", errGeometry, g.ObstacleSize)
	case g.ParkingThickness <= 0 || g.ParkingLength <= 0 || g.ParkingGap < 0:
		return fmt.Errorf("%w: bad parking lot dimensions", errGeometry)
	case 2*g.ParkingThickness+g.ParkingGap > g.Width-2*g.InnerBorder:
		return fmt.Errorf("%w: parking lot wider than a section", errGeometry)
	case g.IndicatorRadius <= 0 || g.IndicatorThickness <= 0:
		return fmt.Errorf("%w: bad direction indicator", errGeometry)
	case g.IndicatorRadius+g.IndicatorThickness > g.Width/2-g.InnerBorder:
		return fmt.Errorf("%w: direction indicator larger than the central square", errGeometry)
	}
	return nil
}

// Size returns the side length of the rendered image, including the outer
// walls.
func (g *Geometry) Size() int {
	return g.Width + 2*g.Border
}

// Column positions of the three radii in Section N.
func (g *Geometry) leftRadius() int   { return g.InnerBorder }
func (g *Geometry) middleRadius() int { return g.Width / 2 }
func (g *Geometry) rightRadius() int  { return g.Width - g.InnerBorder }
