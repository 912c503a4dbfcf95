package orrery

import "fmt"

// ValidationError reports a catalog attribute that cannot construct a body:
// non-positive, non-finite, or missing. Construction of the offending body
// fails outright; nothing is silently defaulted.
type ValidationError struct {
	Body  string  // body name from the catalog
	Field string  // offending attribute
	Value float64 // the rejected value
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("orrery: %s: invalid %s %v (must be finite and positive)", e.Body, e.Field, e.Value)
}

// DivergentOrbitError reports a derived orbital radius that resolved to zero
// or a non-finite value, so the planet has no usable orbit.
type DivergentOrbitError struct {
	Planet string
	Radius float64 // derived Kepler radius, meters
}

func (e *DivergentOrbitError) Error() string {
	return fmt.Sprintf("orrery: %s: divergent orbit, derived radius %v m", e.Planet, e.Radius)
}
