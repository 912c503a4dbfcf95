package orrery

import (
	"fmt"

	"github.com/litescript/ls-orrery/internal/catalog"
	"github.com/litescript/ls-orrery/internal/polar"
	"github.com/litescript/ls-orrery/internal/units"
)

// System owns one star and its planets and is their sole mutator. The
// display scale (pixels per AU) lives here rather than in process-wide
// state; every conversion goes through it explicitly.
type System struct {
	star    *Star
	planets []*Planet
	scale   float64 // pixels per AU

	elapsed float64 // simulated seconds since construction
}

// NewSystem builds a system from catalog records: the star at center, one
// planet per record, all sharing the star's pole. A record that fails
// validation aborts construction; no partial system is returned.
func NewSystem(center polar.Point, star catalog.StarRecord, planets []catalog.PlanetRecord, scale float64) (*System, error) {
	if err := units.CheckScale(scale); err != nil {
		return nil, err
	}

	s, err := NewStar(center, star, scale)
	if err != nil {
		return nil, fmt.Errorf("construct star: %w", err)
	}

	sys := &System{star: s, scale: scale}
	for _, rec := range planets {
		p, err := NewPlanet(s, rec, scale)
		if err != nil {
			return nil, fmt.Errorf("construct planet %q: %w", rec.Name, err)
		}
		sys.planets = append(sys.planets, p)
	}

	return sys, nil
}

// Star returns the host star.
func (s *System) Star() *Star { return s.star }

// Planets returns the planets in catalog order.
func (s *System) Planets() []*Planet { return s.planets }

// Bodies returns the star followed by the planets.
func (s *System) Bodies() []Body {
	bodies := make([]Body, 0, len(s.planets)+1)
	bodies = append(bodies, s.star)
	for _, p := range s.planets {
		bodies = append(bodies, p)
	}
	return bodies
}

// Scale returns the current display scale in pixels per AU.
func (s *System) Scale() float64 { return s.scale }

// Elapsed returns the simulated seconds advanced so far.
func (s *System) Elapsed() float64 { return s.elapsed }

// Advance steps every planet's angle forward by dt seconds of simulated
// time. Positions are derived on read, so this is the whole tick.
func (s *System) Advance(dt float64) {
	for _, p := range s.planets {
		p.Advance(dt)
	}
	s.elapsed += dt
}

// Rescale changes the display scale and recomputes every body's display
// geometry: display radii from physical radii at the new scale, polar radii
// by the old-to-new ratio. The scale is validated before anything mutates,
// so a rejected rescale leaves the system untouched.
func (s *System) Rescale(newScale float64) error {
	if err := units.CheckScale(newScale); err != nil {
		return err
	}

	ratio := newScale / s.scale
	s.star.rescale(newScale)
	for _, p := range s.planets {
		p.rescale(ratio, newScale)
	}
	s.scale = newScale
	return nil
}

// RescalePercent zooms by a relative step: new = old * (1 + pct).
// pct = 0.10 zooms in ten percent, pct = -0.10 zooms out.
func (s *System) RescalePercent(pct float64) error {
	return s.Rescale(s.scale * (1 + pct))
}

// GravityOn returns the gravitational force in Newtons between the host
// star and the planet at its current orbital radius.
func (s *System) GravityOn(p *Planet) float64 {
	d := units.PixelToMeter(p.r, s.scale)
	return G * s.star.Mass() * p.Mass() / (d * d)
}

// BodyView is the render-facing projection of one body: everything the
// drawing collaborator needs and nothing it can mutate.
type BodyView struct {
	Name string
	Kind Kind

	// Display geometry at the system's current scale.
	X, Y          float64
	DisplayRadius float64

	// Orbit drawing: the host pole and the polar radius in pixels.
	// Zero-valued for the star.
	PoleX, PoleY float64
	OrbitRadius  float64

	// Physical attributes for HUD display.
	MassKg     float64
	RadiusM    float64
	PeriodSec  float64 // planets only
	OrbitAU    float64 // planets only
	TeffK      float64 // star only
	ThetaRad   float64 // planets only
	DensityKgM float64
}

// Views returns one BodyView per body, star first.
func (s *System) Views() []BodyView {
	views := make([]BodyView, 0, len(s.planets)+1)

	pos := s.star.Position()
	views = append(views, BodyView{
		Name:          s.star.Name(),
		Kind:          KindStar,
		X:             pos.X,
		Y:             pos.Y,
		DisplayRadius: s.star.DisplayRadius(),
		MassKg:        s.star.Mass(),
		RadiusM:       s.star.PhysicalRadius(),
		TeffK:         s.star.Teff(),
		DensityKgM:    Density(s.star),
	})

	for _, p := range s.planets {
		pos := p.Position()
		pole := p.Pole()
		r, theta := p.Polar()
		views = append(views, BodyView{
			Name:          p.Name(),
			Kind:          KindPlanet,
			X:             pos.X,
			Y:             pos.Y,
			DisplayRadius: p.DisplayRadius(),
			PoleX:         pole.X,
			PoleY:         pole.Y,
			OrbitRadius:   r,
			MassKg:        p.Mass(),
			RadiusM:       p.PhysicalRadius(),
			PeriodSec:     p.Period(),
			OrbitAU:       units.PixelToMeter(r, s.scale) / units.AUMeters,
			ThetaRad:      theta,
			DensityKgM:    Density(p),
		})
	}

	return views
}
