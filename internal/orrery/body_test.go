package orrery

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/litescript/ls-orrery/internal/catalog"
	"github.com/litescript/ls-orrery/internal/polar"
	"github.com/litescript/ls-orrery/internal/units"
)

func testStar(t *testing.T, scale float64) *Star {
	t.Helper()
	s, err := NewStar(polar.Point{X: 640, Y: 360}, catalog.StarRecord{
		HostName: "Sol", MassSolar: 1, RadiusSolar: 1, TeffK: 5772,
	}, scale)
	if err != nil {
		t.Fatalf("NewStar: %v", err)
	}
	return s
}

func TestNewStar(t *testing.T) {
	s := testStar(t, 100)

	if s.Name() != "Sol" || s.Kind() != KindStar {
		t.Errorf("name/kind = %q/%v", s.Name(), s.Kind())
	}
	if !scalar.EqualWithinRel(s.Mass(), 1.989e30, 1e-12) {
		t.Errorf("Mass = %v", s.Mass())
	}
	if !scalar.EqualWithinRel(s.PhysicalRadius(), 6.957e8, 1e-12) {
		t.Errorf("PhysicalRadius = %v", s.PhysicalRadius())
	}

	wantPx := units.MeterToPixel(6.957e8, 100)
	if !scalar.EqualWithinRel(s.DisplayRadius(), wantPx, 1e-12) {
		t.Errorf("DisplayRadius = %v, want %v", s.DisplayRadius(), wantPx)
	}

	// A star is its own reference point.
	if r, theta := s.Polar(); r != 0 || theta != 0 {
		t.Errorf("star Polar() = (%v, %v), want (0, 0)", r, theta)
	}
	if pos := s.Position(); pos.X != 640 || pos.Y != 360 {
		t.Errorf("star Position() = %+v", pos)
	}
}

func TestNewStarValidation(t *testing.T) {
	tests := []struct {
		name string
		rec  catalog.StarRecord
	}{
		{"zero mass", catalog.StarRecord{HostName: "X", MassSolar: 0, RadiusSolar: 1}},
		{"negative mass", catalog.StarRecord{HostName: "X", MassSolar: -1, RadiusSolar: 1}},
		{"NaN mass", catalog.StarRecord{HostName: "X", MassSolar: math.NaN(), RadiusSolar: 1}},
		{"zero radius", catalog.StarRecord{HostName: "X", MassSolar: 1, RadiusSolar: 0}},
		{"infinite radius", catalog.StarRecord{HostName: "X", MassSolar: 1, RadiusSolar: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStar(polar.Point{}, tt.rec, 100)
			if err == nil {
				t.Fatal("NewStar should fail")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("got %T (%v), want *ValidationError", err, err)
			}
		})
	}
}

func TestNewPlanet(t *testing.T) {
	host := testStar(t, 100)
	p, err := NewPlanet(host, catalog.PlanetRecord{
		Name: "Earth", PeriodDays: 365.25, RadiusEarth: 1, MassEarth: 1,
	}, 100)
	if err != nil {
		t.Fatalf("NewPlanet: %v", err)
	}

	// Pole identity, not just equal value.
	if p.Pole() != host.Pole() {
		t.Error("planet must share the host star's pole pointer")
	}

	// 1 AU orbit at 100 px/AU is ~100 px.
	r, theta := p.Polar()
	if math.Abs(r-100)/100 > 0.01 {
		t.Errorf("polar radius = %v px, want ~100 px", r)
	}
	if theta < 0 || theta >= 2*math.Pi {
		t.Errorf("initial angle %v outside [0, 2*pi)", theta)
	}

	// Display position is derived from the polar frame.
	pos := p.Position()
	want := polar.ToCartesian(p.Pole(), r, theta)
	if pos != want {
		t.Errorf("Position() = %+v, want %+v", pos, want)
	}
}

func TestNewPlanetValidation(t *testing.T) {
	host := testStar(t, 100)

	tests := []struct {
		name string
		rec  catalog.PlanetRecord
	}{
		{"zero period", catalog.PlanetRecord{Name: "p", PeriodDays: 0, RadiusEarth: 1, MassEarth: 1}},
		{"negative period", catalog.PlanetRecord{Name: "p", PeriodDays: -3, RadiusEarth: 1, MassEarth: 1}},
		{"zero mass", catalog.PlanetRecord{Name: "p", PeriodDays: 10, RadiusEarth: 1, MassEarth: 0}},
		{"zero radius", catalog.PlanetRecord{Name: "p", PeriodDays: 10, RadiusEarth: 0, MassEarth: 1}},
		{"NaN period", catalog.PlanetRecord{Name: "p", PeriodDays: math.NaN(), RadiusEarth: 1, MassEarth: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlanet(host, tt.rec, 100)
			if err == nil {
				t.Fatal("NewPlanet should fail")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("got %T (%v), want *ValidationError", err, err)
			}
		})
	}
}

func TestPlanetDistanceTo(t *testing.T) {
	host := testStar(t, 100)
	p, err := NewPlanet(host, catalog.PlanetRecord{
		Name: "Earth", PeriodDays: 365.25, RadiusEarth: 1, MassEarth: 1,
	}, 100)
	if err != nil {
		t.Fatalf("NewPlanet: %v", err)
	}

	// Distance to the host equals the polar radius: the star sits at
	// (0, 0) in its own frame.
	r, _ := p.Polar()
	if got := p.DistanceTo(host); !scalar.EqualWithinAbs(got, r, 1e-9) {
		t.Errorf("DistanceTo(host) = %v, want %v", got, r)
	}
}

func TestVolumeDensity(t *testing.T) {
	host := testStar(t, 100)
	p, err := NewPlanet(host, catalog.PlanetRecord{
		Name: "Earth", PeriodDays: 365.25, RadiusEarth: 1, MassEarth: 1,
	}, 100)
	if err != nil {
		t.Fatalf("NewPlanet: %v", err)
	}

	// Earth: V ~ 1.083e21 m^3, mean density ~ 5514 kg/m^3.
	if v := Volume(p); math.Abs(v-1.083e21)/1.083e21 > 0.01 {
		t.Errorf("Volume = %v m^3", v)
	}
	if d := Density(p); math.Abs(d-5514)/5514 > 0.01 {
		t.Errorf("Density = %v kg/m^3", d)
	}
}
