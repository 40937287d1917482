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

// Package wromat generates randomized schematics of the game mat of the
// WRO Future Engineers competition.
//
// A [Generator] draws a random configuration for one of the two challenge
// rounds and renders it into an image:
//
//	gen, err := wromat.New(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	img, err := gen.GenerateObstacle(mat.CW)
//
// The geometry and the obstacle catalog can be replaced using [Options].
package wromat

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"seehuhn.de/go/wromat/canvas"
	"seehuhn.de/go/wromat/mat"
	"seehuhn.de/go/wromat/render"
	"seehuhn.de/go/wromat/scheme"
)

// Options configures a [Generator].
type Options struct {
	Geometry *mat.Geometry // nil means mat.DefaultGeometry()
	Catalog  *mat.Catalog  // nil means mat.DefaultCatalog()

	// Seed makes the generated schemes reproducible.  If Seed is zero,
	// every call uses a fresh random source.
	Seed uint64

	// MaxAttempts limits the number of draws of the obstacle challenge
	// randomizer.  Zero means scheme.DefaultMaxAttempts.
	MaxAttempts int
}

// DefaultOptions returns the options for the competition mat.
func DefaultOptions() *Options {
	return &Options{
		Geometry:    mat.DefaultGeometry(),
		Catalog:     mat.DefaultCatalog(),
		MaxAttempts: scheme.DefaultMaxAttempts,
	}
}

// Generator produces random mat images.
// A Generator is safe for concurrent use.
type Generator struct {
	renderer    *render.Renderer
	catalog     *mat.Catalog
	maxAttempts int

	mu  sync.Mutex
	rng *rand.Rand // nil unless seeded
}

// New validates the options and builds the background image of the mat.
// If opts is nil, [DefaultOptions] is used.
func New(opts *Options) (*Generator, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	geom := opts.Geometry
	if geom == nil {
		geom = mat.DefaultGeometry()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = mat.DefaultCatalog()
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	r, err := render.NewRenderer(geom)
	if err != nil {
		return nil, fmt.Errorf("building template: %w", err)
	}

	g := &Generator{
		renderer:    r,
		catalog:     cat,
		maxAttempts: opts.MaxAttempts,
	}
	if opts.Seed != 0 {
		g.rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	}
	return g, nil
}

// Geometry returns the dimensions of the generated images.
func (g *Generator) Geometry() *mat.Geometry {
	return g.renderer.Geometry()
}

// Catalog returns the obstacle catalog used by the generator.
func (g *Generator) Catalog() *mat.Catalog {
	return g.catalog
}

// Template returns a copy of the empty mat.
func (g *Generator) Template() *canvas.Image {
	return g.renderer.Template()
}

// NewScheme draws a random configuration for the given challenge round.
func (g *Generator) NewScheme(kind scheme.Kind, dir mat.Direction) (*scheme.Scheme, error) {
	var s *scheme.Scheme
	var err error
	g.withRand(func(rng *rand.Rand) {
		switch kind {
		case scheme.Open:
			s = scheme.NewOpen(rng, dir)
		case scheme.Obstacle:
			s, err = scheme.NewObstacle(rng, g.catalog, dir, g.maxAttempts)
		default:
			err = fmt.Errorf("unknown challenge %s", kind)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%s challenge: %w", kind, err)
	}
	return s, nil
}

// Render draws the scheme s.
func (g *Generator) Render(s *scheme.Scheme) *canvas.Image {
	return g.renderer.Draw(s, g.catalog)
}

// Generate draws a random configuration and renders it.
func (g *Generator) Generate(kind scheme.Kind, dir mat.Direction) (*canvas.Image, *scheme.Scheme, error) {
	s, err := g.NewScheme(kind, dir)
	if err != nil {
		return nil, nil, err
	}
	return g.Render(s), s, nil
}

// GenerateOpen returns a random mat for the open challenge.
func (g *Generator) GenerateOpen(dir mat.Direction) *canvas.Image {
	var s *scheme.Scheme
	g.withRand(func(rng *rand.Rand) {
		s = scheme.NewOpen(rng, dir)
	})
	return g.Render(s)
}

// GenerateObstacle returns a random mat for the obstacle challenge.
func (g *Generator) GenerateObstacle(dir mat.Direction) (*canvas.Image, error) {
	img, _, err := g.Generate(scheme.Obstacle, dir)
	return img, err
}

// withRand calls fn with the random source of the generator.
func (g *Generator) withRand(fn func(rng *rand.Rand)) {
	if g.rng == nil {
		fn(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.rng)
}
