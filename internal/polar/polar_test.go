package polar

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestToPolarEdgeCases(t *testing.T) {
	pole := &Pole{X: 0, Y: 0}

	tests := []struct {
		name      string
		p         Point
		wantR     float64
		wantTheta float64
	}{
		{"coincident with pole", Point{0, 0}, 0, 0},
		{"straight up", Point{0, 5}, 5, math.Pi / 2},
		{"straight down", Point{0, -5}, 5, -math.Pi / 2},
		{"unit x axis", Point{1, 0}, 1, 0},
		{"45 degrees", Point{3, 3}, 3 * math.Sqrt2, math.Pi / 4},
		{"-45 degrees", Point{3, -3}, 3 * math.Sqrt2, -math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, theta := ToPolar(pole, tt.p)
			if !scalar.EqualWithinAbs(r, tt.wantR, 1e-12) {
				t.Errorf("r = %v, want %v", r, tt.wantR)
			}
			if !scalar.EqualWithinAbs(theta, tt.wantTheta, 1e-12) {
				t.Errorf("theta = %v, want %v", theta, tt.wantTheta)
			}
		})
	}
}

func TestToPolarTwoQuadrantBranch(t *testing.T) {
	// The forward transform uses atan(dy/dx), so a point in the left
	// half-plane maps to the same angle as its mirror on the right.
	pole := &Pole{}
	_, left := ToPolar(pole, Point{-1, -1})
	_, right := ToPolar(pole, Point{1, 1})
	if !scalar.EqualWithinAbs(left, right, 1e-12) {
		t.Errorf("left/right mirror angles differ: %v vs %v", left, right)
	}
}

func TestToPolarOffsetPole(t *testing.T) {
	pole := &Pole{X: 640, Y: 360}

	r, theta := ToPolar(pole, Point{X: 640 + 40, Y: 360})
	if !scalar.EqualWithinAbs(r, 40, 1e-12) || theta != 0 {
		t.Errorf("got (%v, %v), want (40, 0)", r, theta)
	}

	r, theta = ToPolar(pole, Point{X: 640, Y: 360 + 40})
	if !scalar.EqualWithinAbs(r, 40, 1e-12) || !scalar.EqualWithinAbs(theta, math.Pi/2, 1e-12) {
		t.Errorf("got (%v, %v), want (40, pi/2)", r, theta)
	}
}

func TestRoundTrip(t *testing.T) {
	// Round trip holds wherever the two-quadrant branch is unambiguous,
	// i.e. for points in the right half-plane off the vertical axis.
	pole := &Pole{X: 12.5, Y: -3}

	points := []Point{
		{13.5, -3},
		{20, 4},
		{14, -30},
		{12.5 + 1e-3, -3 + 200},
	}

	for _, p := range points {
		r, theta := ToPolar(pole, p)
		got := ToCartesian(pole, r, theta)
		if !scalar.EqualWithinAbs(got.X, p.X, 1e-9) || !scalar.EqualWithinAbs(got.Y, p.Y, 1e-9) {
			t.Errorf("round trip of %+v = %+v", p, got)
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name           string
		r1, t1, r2, t2 float64
		want           float64
	}{
		{"coincident", 5, 1.2, 5, 1.2, 0},
		{"opposite on a line", 3, 0, 4, math.Pi, 7},
		{"right angle", 3, 0, 4, math.Pi / 2, 5},
		{"one at pole", 0, 0, 7, 2.3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.r1, tt.t1, tt.r2, tt.t2)
			if !scalar.EqualWithinAbs(got, tt.want, 1e-12) {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistanceWrapInvariant(t *testing.T) {
	// Shifting both angles by 2*pi*n must not change the distance.
	base := Distance(3, 0.4, 4, 1.9)
	for n := 1; n <= 3; n++ {
		shift := 2 * math.Pi * float64(n)
		got := Distance(3, 0.4+shift, 4, 1.9+shift)
		if !scalar.EqualWithinAbs(got, base, 1e-9) {
			t.Errorf("distance after +%d wraps = %v, want %v", n, got, base)
		}
		// Wrapping only one angle by a full turn is also invariant.
		got = Distance(3, 0.4, 4, 1.9+shift)
		if !scalar.EqualWithinAbs(got, base, 1e-9) {
			t.Errorf("distance with one angle +%d wraps = %v, want %v", n, got, base)
		}
	}
}

func TestRadialDistance(t *testing.T) {
	if got := RadialDistance(10, 4); got != 6 {
		t.Errorf("RadialDistance(10, 4) = %v, want 6", got)
	}
	if got := RadialDistance(4, 10); got != 6 {
		t.Errorf("RadialDistance(4, 10) = %v, want 6", got)
	}
}
