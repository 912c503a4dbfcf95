// Package orrery models a star system whose geometry is derived from
// catalog parameters: Kepler-third-law orbital radii, polar positions
// around the host star, and a shared pixels-per-AU display scale.
package orrery

import (
	"math"
	"math/rand"

	"github.com/litescript/ls-orrery/internal/catalog"
	"github.com/litescript/ls-orrery/internal/polar"
	"github.com/litescript/ls-orrery/internal/units"
)

// Kind categorizes bodies for rendering.
type Kind int

const (
	KindStar Kind = iota
	KindPlanet
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindPlanet:
		return "planet"
	default:
		return "unknown"
	}
}

// Body is the capability set shared by stars and planets. The variant set
// is closed: {*Star, *Planet}.
type Body interface {
	Name() string
	Kind() Kind

	// Mass in kg and physical radius in meters are fixed at construction.
	Mass() float64
	PhysicalRadius() float64

	// DisplayRadius is the body's drawn radius in pixels at the system's
	// current scale.
	DisplayRadius() float64

	// Position is the body's display position, derived from its polar
	// coordinates around the pole. Never stored independently.
	Position() polar.Point

	// Pole is the reference point of the body's polar frame. A planet
	// shares its host star's pole structurally, not by value.
	Pole() *polar.Pole

	// Polar returns the body's (radius, angle) around the pole, in
	// display units and radians. A star is its own reference point and
	// reports (0, 0).
	Polar() (r, theta float64)
}

// Star is the host body of a system. Its pole is its own display position.
type Star struct {
	name  string
	teffK float64

	massKg     float64
	physRadius float64 // meters

	displayRadius float64 // pixels
	pole          *polar.Pole
}

// NewStar constructs a star at the given display position from catalog
// stellar units, converting to SI and validating the physical attributes.
func NewStar(pos polar.Point, rec catalog.StarRecord, scale float64) (*Star, error) {
	if err := units.CheckScale(scale); err != nil {
		return nil, err
	}

	massKg := units.SolarMassToKg(rec.MassSolar)
	radiusM := units.SolarRadiusToM(rec.RadiusSolar)

	if !positiveFinite(massKg) {
		return nil, &ValidationError{Body: rec.HostName, Field: "stellar mass", Value: rec.MassSolar}
	}
	if !positiveFinite(radiusM) {
		return nil, &ValidationError{Body: rec.HostName, Field: "stellar radius", Value: rec.RadiusSolar}
	}

	return &Star{
		name:          rec.HostName,
		teffK:         rec.TeffK,
		massKg:        massKg,
		physRadius:    radiusM,
		displayRadius: units.MeterToPixel(radiusM, scale),
		pole:          &polar.Pole{X: pos.X, Y: pos.Y},
	}, nil
}

func (s *Star) Name() string            { return s.name }
func (s *Star) Kind() Kind              { return KindStar }
func (s *Star) Mass() float64           { return s.massKg }
func (s *Star) PhysicalRadius() float64 { return s.physRadius }
func (s *Star) DisplayRadius() float64  { return s.displayRadius }
func (s *Star) Pole() *polar.Pole       { return s.pole }

// Teff returns the star's effective temperature in Kelvin.
func (s *Star) Teff() float64 { return s.teffK }

// Polar returns (0, 0): the star is the origin of its own frame.
func (s *Star) Polar() (r, theta float64) { return 0, 0 }

// Position returns the pole itself.
func (s *Star) Position() polar.Point {
	return polar.Point{X: s.pole.X, Y: s.pole.Y}
}

// rescale recomputes the star's display radius at the new scale. The pole
// stays pinned so the system does not drift across the screen.
func (s *Star) rescale(newScale float64) {
	s.displayRadius = units.MeterToPixel(s.physRadius, newScale)
}

// Planet orbits a host star. The host reference is non-owning: the System
// owns both.
type Planet struct {
	name string
	host *Star

	massKg     float64
	physRadius float64 // meters
	periodSec  float64

	r     float64 // polar radius around the host's pole, pixels
	theta float64 // radians, unbounded
	omega float64 // 2*pi*r/periodSec, see orbitalRate

	displayRadius float64 // pixels
}

// NewPlanet constructs a planet around host from catalog earth units.
// The orbital radius is derived from the host mass and the period via
// Kepler's third law; the initial angle is pseudo-random.
func NewPlanet(host *Star, rec catalog.PlanetRecord, scale float64) (*Planet, error) {
	if err := units.CheckScale(scale); err != nil {
		return nil, err
	}

	massKg := units.EarthMassToKg(rec.MassEarth)
	radiusM := units.EarthRadiusToM(rec.RadiusEarth)
	periodSec := units.DaysToSeconds(rec.PeriodDays)

	if !positiveFinite(massKg) {
		return nil, &ValidationError{Body: rec.Name, Field: "planet mass", Value: rec.MassEarth}
	}
	if !positiveFinite(radiusM) {
		return nil, &ValidationError{Body: rec.Name, Field: "planet radius", Value: rec.RadiusEarth}
	}
	if !positiveFinite(periodSec) {
		return nil, &ValidationError{Body: rec.Name, Field: "orbital period", Value: rec.PeriodDays}
	}

	keplerM := KeplerRadius(host.Mass(), periodSec)
	if !positiveFinite(keplerM) {
		return nil, &DivergentOrbitError{Planet: rec.Name, Radius: keplerM}
	}

	r := units.MeterToPixel(keplerM, scale)
	return &Planet{
		name:          rec.Name,
		host:          host,
		massKg:        massKg,
		physRadius:    radiusM,
		periodSec:     periodSec,
		r:             r,
		theta:         2 * math.Pi * rand.Float64(),
		omega:         orbitalRate(r, periodSec),
		displayRadius: units.MeterToPixel(radiusM, scale),
	}, nil
}

func (p *Planet) Name() string            { return p.name }
func (p *Planet) Kind() Kind              { return KindPlanet }
func (p *Planet) Mass() float64           { return p.massKg }
func (p *Planet) PhysicalRadius() float64 { return p.physRadius }
func (p *Planet) DisplayRadius() float64  { return p.displayRadius }

// Host returns the planet's host star.
func (p *Planet) Host() *Star { return p.host }

// Period returns the orbital period in seconds.
func (p *Planet) Period() float64 { return p.periodSec }

// Pole returns the host star's pole. Identity is structural: every planet
// of a star holds the same pointer.
func (p *Planet) Pole() *polar.Pole { return p.host.pole }

// Polar returns the planet's polar radius (pixels) and angle (radians).
func (p *Planet) Polar() (r, theta float64) { return p.r, p.theta }

// Position derives the display position from (pole, r, theta).
func (p *Planet) Position() polar.Point {
	return polar.ToCartesian(p.Pole(), p.r, p.theta)
}

// DistanceTo returns the display-space distance to another body sharing the
// same pole, using the law of cosines on the polar coordinates.
func (p *Planet) DistanceTo(other Body) float64 {
	r2, t2 := other.Polar()
	return polar.Distance(p.r, p.theta, r2, t2)
}

// rescale moves the planet's display geometry to the new scale. The polar
// radius is multiplied by ratio rather than re-derived from Kepler's law so
// repeated zooms cannot drift away from the physical configuration; the
// stored rate follows it so the on-screen angular rate stays 2*pi/T.
func (p *Planet) rescale(ratio, newScale float64) {
	p.r *= ratio
	p.omega = orbitalRate(p.r, p.periodSec)
	p.displayRadius = units.MeterToPixel(p.physRadius, newScale)
}

// Volume returns the body volume in m^3 assuming a sphere.
func Volume(b Body) float64 {
	r := b.PhysicalRadius()
	return 4.0 / 3.0 * math.Pi * r * r * r
}

// Density returns the mean density in kg/m^3.
func Density(b Body) float64 {
	return b.Mass() / Volume(b)
}
