package orrery

import "math"

// G is the gravitational constant in m^3 kg^-1 s^-2.
const G = 6.67408e-11

// KeplerRadius derives a circular orbital radius in meters from the host
// mass (kg) and the orbital period (s) via Kepler's third law:
//
//	r = (G * M * T^2 / (4 pi^2))^(1/3)
//
// The result depends only on physical attributes and is independent of the
// display scale.
func KeplerRadius(hostMassKg, periodSec float64) float64 {
	return math.Cbrt(G * hostMassKg * periodSec * periodSec / (4 * math.Pi * math.Pi))
}

// orbitalRate returns the circumference-per-period rate 2*pi*r/T for a
// polar radius in display units. The planet stores this linear speed as its
// rate; the angle integration divides it back by the current radius, so the
// net angular rate is 2*pi/T. The division happens at every step rather than
// once up front because r changes under rescale.
func orbitalRate(radiusPx, periodSec float64) float64 {
	return 2 * math.Pi * radiusPx / periodSec
}

// Advance integrates the planet's angle forward by dt seconds of simulated
// time: theta += (omega * dt) / r, converting the stored linear rate into an
// angle increment at the planet's current radius.
func (p *Planet) Advance(dt float64) {
	p.theta += p.omega * dt / p.r
}

// positiveFinite reports whether v is a usable physical attribute.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
