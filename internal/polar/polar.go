// Package polar implements the polar coordinate frame used to position
// bodies around a movable reference point (the pole).
package polar

import "math"

// Pole is the reference point of a polar frame, in display coordinates.
// One pole exists per star; every planet orbiting that star shares the
// same *Pole so that moving the star moves its whole system.
type Pole struct {
	X, Y float64
}

// Point is a cartesian point in display coordinates.
type Point struct {
	X, Y float64
}

// ToPolar converts a cartesian display point to (r, theta) relative to the
// pole. The angle branch uses a two-quadrant arctangent: theta = atan(dy/dx),
// with explicit handling of the vertical axis and the degenerate
// pole-coincident case. It does not distinguish the left half-plane from the
// right.
func ToPolar(pole *Pole, p Point) (r, theta float64) {
	dx := p.X - pole.X
	dy := p.Y - pole.Y

	r = math.Sqrt(dx*dx + dy*dy)

	if dx == 0 && dy != 0 {
		if dy < 0 {
			return r, -math.Pi / 2
		}
		return r, math.Pi / 2
	}
	if dx == 0 && dy == 0 {
		return 0, 0
	}
	return r, math.Atan(dy / dx)
}

// ToCartesian converts (r, theta) relative to the pole back to a cartesian
// display point: pole + (r cos theta, r sin theta).
func ToCartesian(pole *Pole, r, theta float64) Point {
	return Point{
		X: pole.X + r*math.Cos(theta),
		Y: pole.Y + r*math.Sin(theta),
	}
}

// Distance returns the law-of-cosines distance between two points given in
// polar form relative to the same pole. Wrap-invariant in theta: only the
// cosine of the angle difference enters.
func Distance(r1, theta1, r2, theta2 float64) float64 {
	return math.Sqrt(r1*r1 + r2*r2 - 2*r1*r2*math.Cos(theta2-theta1))
}

// RadialDistance returns the absolute difference of the two radii.
func RadialDistance(r1, r2 float64) float64 {
	return math.Abs(r1 - r2)
}
