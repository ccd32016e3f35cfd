package kepler

import (
	"testing"

	"github.com/gonum/floats"

	"github.com/signalsfoundry/orbital-geometry/unit"
)

func TestSumOfFocalRadii(t *testing.T) {
	// The constant-sum property: r + r' = 2a.
	got := SumOfFocalRadii(unit.Meters(1500), unit.Meters(500))
	if got != unit.Meters(2000) {
		t.Errorf("SumOfFocalRadii = %v, want 2000 m", got)
	}
}

func TestDifferenceOfFocalRadii(t *testing.T) {
	// |r - r'| = 2c, regardless of argument order.
	if got := DifferenceOfFocalRadii(unit.Meters(1500), unit.Meters(500)); got != unit.Meters(1000) {
		t.Errorf("DifferenceOfFocalRadii(1500, 500) = %v, want 1000 m", got)
	}
	if got := DifferenceOfFocalRadii(unit.Meters(500), unit.Meters(1500)); got != unit.Meters(1000) {
		t.Errorf("DifferenceOfFocalRadii(500, 1500) = %v, want 1000 m", got)
	}
	if got := DifferenceOfFocalRadii(unit.Meters(700), unit.Meters(700)); got != unit.ZeroMeters {
		t.Errorf("DifferenceOfFocalRadii(700, 700) = %v, want 0 m", got)
	}
}

func TestEccentricityFromFocalRadii(t *testing.T) {
	// r = 1500, r' = 500: a = 1000, c = 500, e = 0.5.
	e, err := EccentricityFromFocalRadii(unit.Meters(1500), unit.Meters(500))
	if err != nil {
		t.Fatalf("EccentricityFromFocalRadii: %v", err)
	}
	if !floats.EqualWithinAbs(e.Value(), 0.5, 1e-10) {
		t.Errorf("eccentricity = %v, want 0.5", e.Value())
	}

	// Swapping the radii describes the same orbit point.
	swapped, err := EccentricityFromFocalRadii(unit.Meters(500), unit.Meters(1500))
	if err != nil {
		t.Fatalf("EccentricityFromFocalRadii swapped: %v", err)
	}
	if swapped.Value() != e.Value() {
		t.Errorf("swapped eccentricity = %v, want %v", swapped.Value(), e.Value())
	}
}

func TestEccentricityFromFocalRadiiCircle(t *testing.T) {
	// Equal radii mean coincident foci: a circle.
	e, err := EccentricityFromFocalRadii(unit.Meters(1000), unit.Meters(1000))
	if err != nil {
		t.Fatalf("EccentricityFromFocalRadii: %v", err)
	}
	if e.Value() != 0 {
		t.Errorf("eccentricity = %v, want 0", e.Value())
	}
}

func TestEccentricityFromFocalRadiiMatchesEllipse(t *testing.T) {
	// Measure the focal radii at periapsis of a known ellipse and
	// recover its eccentricity.
	el := New(unit.MustEccentricity(0.3), Point{}, unit.Meters(7000))

	// At periapsis: distance to primary focus is r_p, distance to the
	// secondary focus is r_p + 2c.
	r := el.Periapsis()
	rPrime := el.Periapsis().Add(el.FocalDistance().Mul(2))

	if got := SumOfFocalRadii(r, rPrime); !floats.EqualWithinRel(float64(got), 2*float64(el.SemiMajorAxis()), 1e-12) {
		t.Errorf("SumOfFocalRadii = %v, want 2a = %v", got, el.SemiMajorAxis().Mul(2))
	}
	e, err := EccentricityFromFocalRadii(r, rPrime)
	if err != nil {
		t.Fatalf("EccentricityFromFocalRadii: %v", err)
	}
	if !floats.EqualWithinAbs(e.Value(), 0.3, 1e-12) {
		t.Errorf("eccentricity = %v, want 0.3", e.Value())
	}
}
