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
	"image"
	"testing"
)

// toLocal undoes the placement of section s. It is the inverse of
// [Section.Place] and only needed for testing.
func toLocal(g *Geometry, s Section, r image.Rectangle) (Point, Point) {
	r = r.Sub(image.Pt(g.Border, g.Border))
	rows := span{r.Min.Y, r.Max.Y}
	cols := span{r.Min.X, r.Max.X}
	var lRows, lCols span
	switch s {
	case North:
		lRows, lCols = rows, cols
	case South:
		lRows, lCols = flip(g.Width, rows), flip(g.Width, cols)
	case West:
		lRows, lCols = cols, flip(g.Width, rows)
	case East:
		lRows, lCols = flip(g.Width, cols), rows
	}
	return Point{lRows.lo, lCols.lo}, Point{lRows.hi, lCols.hi}
}

func TestPlaceRoundTrip(t *testing.T) {
	g := DefaultGeometry()
	rects := [][2]Point{
		{{0, 0}, {10, 20}},
		{{400, 1000}, {600, 1500}},
		{{1000, 2000}, {600, 1500}}, // corners in reverse order
		{{-50, 950}, {50, 1050}},
	}
	for _, s := range Sections {
		for _, r := range rects {
			placed := s.Place(g, r[0], r[1])
			a, b := toLocal(g, s, placed)
			wantA := Point{min(r[0].Row, r[1].Row), min(r[0].Col, r[1].Col)}
			wantB := Point{max(r[0].Row, r[1].Row), max(r[0].Col, r[1].Col)}
			if a != wantA || b != wantB {
				t.Errorf("%s: %v-%v placed at %v maps back to %v-%v", s, r[0], r[1], placed, a, b)
			}
		}
	}
}

func TestPlaceCongruent(t *testing.T) {
	g := DefaultGeometry()
	a, b := Point{100, 1100}, Point{250, 1400} // 150 rows × 300 columns
	for _, s := range Sections {
		r := s.Place(g, a, b)
		w, h := r.Dx(), r.Dy()
		switch s {
		case North, South:
			if w != 300 || h != 150 {
				t.Errorf("%s: got %dx%d, want 300x150", s, w, h)
			}
		case West, East:
			if w != 150 || h != 300 {
				t.Errorf("%s: got %dx%d, want 150x300", s, w, h)
			}
		}
		full := image.Rect(0, 0, g.Size(), g.Size())
		if !r.In(full) {
			t.Errorf("%s: %v outside of the image", s, r)
		}
	}
}

func TestPlaceSections(t *testing.T) {
	g := DefaultGeometry()
	// the outer half of zone Z6 touches the outer wall of each section
	a, b := Z6.Rect(g)
	want := map[Section]image.Rectangle{
		North: image.Rect(1010, 10, 1510, 410),
		South: image.Rect(1510, 2610, 2010, 3010),
		West:  image.Rect(10, 1510, 410, 2010),
		East:  image.Rect(2610, 1010, 3010, 1510),
	}
	for s, w := range want {
		if got := s.Place(g, a, b); got != w {
			t.Errorf("%s: got %v, want %v", s, got, w)
		}
	}
}

func TestSectionsDisjoint(t *testing.T) {
	g := DefaultGeometry()
	a, b := Point{0, g.InnerBorder}, Point{g.InnerBorder, g.Width - g.InnerBorder}
	for i, s1 := range Sections {
		for _, s2 := range Sections[i+1:] {
			r1, r2 := s1.Place(g, a, b), s2.Place(g, a, b)
			if r1.Overlaps(r2) {
				t.Errorf("sections %s and %s overlap: %v, %v", s1, s2, r1, r2)
			}
		}
	}
}

func TestSectionString(t *testing.T) {
	names := map[Section]string{North: "N", West: "W", South: "S", East: "E", 7: "Section(7)"}
	for s, want := range names {
		if got := s.String(); got != want {
			t.Errorf("%d: got %q, want %q", s, got, want)
		}
	}
}

func TestNeighbours(t *testing.T) {
	// the corner square on the left of a section is the corner square
	// on the right of its left neighbour
	g := DefaultGeometry()
	n := g.InnerBorder
	leftCorner := func(s Section) image.Rectangle {
		return s.Place(g, Point{0, 0}, Point{n, n})
	}
	rightCorner := func(s Section) image.Rectangle {
		return s.Place(g, Point{0, g.Width - n}, Point{n, g.Width})
	}
	for _, s := range Sections {
		if got, want := rightCorner(s.Left()), leftCorner(s); got != want {
			t.Errorf("%s.Left(): got %v, want %v", s, got, want)
		}
		if got, want := leftCorner(s.Right()), rightCorner(s); got != want {
			t.Errorf("%s.Right(): got %v, want %v", s, got, want)
		}
		if s.Left().Right() != s {
			t.Errorf("%s: Left and Right are not inverse", s)
		}
	}
}
