// Package kepler models the static geometry of Keplerian conic-section
// orbits. An orbit's shape is fully determined by its eccentricity, its
// primary focus, and its periapsis distance; every other parameter is
// derived from those three on demand.
//
// The package computes geometry only. Orbital dynamics (propagation over
// time, anomaly solving) and three-dimensional elements (inclination,
// node, argument of periapsis) are out of scope.
package kepler

import (
	"math"

	"github.com/signalsfoundry/orbital-geometry/internal/observability"
	"github.com/signalsfoundry/orbital-geometry/unit"
)

// Point is a two-coordinate position in metres, used to mark the
// location of a focus.
type Point struct {
	X, Y unit.Meters
}

// Ellipse is a conic-section orbit defined by eccentricity, primary
// focus, and periapsis. It is immutable once constructed; derived shape
// parameters are recomputed on each query.
type Ellipse struct {
	e  unit.Eccentricity
	f  Point
	rp unit.Meters
}

// New constructs an ellipse directly from its three defining values.
// The eccentricity carries its own validation; no further checks apply.
func New(e unit.Eccentricity, focus Point, periapsis unit.Meters) Ellipse {
	observability.Default().RecordEllipseConstruction(observability.ConstructorDirect)
	return Ellipse{e: e, f: focus, rp: periapsis}
}

// FromPeriapsisApoapsis constructs an ellipse from periapsis and
// apoapsis distances. The eccentricity is (ra − rp) / (ra + rp); if the
// apoapsis is smaller than the periapsis the computed value is negative
// and construction fails exactly as direct eccentricity construction
// would.
func FromPeriapsisApoapsis(periapsis, apoapsis unit.Meters, focus Point) (Ellipse, error) {
	e, err := unit.NewEccentricity(apoapsis.Sub(periapsis).Ratio(apoapsis.Add(periapsis)))
	if err != nil {
		return Ellipse{}, err
	}
	observability.Default().RecordEllipseConstruction(observability.ConstructorPeriapsisApoapsis)
	return Ellipse{e: e, f: focus, rp: periapsis}, nil
}

// Eccentricity returns the orbit's eccentricity.
func (el Ellipse) Eccentricity() unit.Eccentricity {
	return el.e
}

// PrimaryFocus returns the gravitational center of attraction.
func (el Ellipse) PrimaryFocus() Point {
	return el.f
}

// Periapsis returns the distance from the primary focus to the nearest
// edge of the ellipse, along the semi-major axis.
func (el Ellipse) Periapsis() unit.Meters {
	return el.rp
}

// SemiMajorAxis returns half of the long axis of the ellipse, denoted
// in formula by a. At eccentricity 1 the division is by zero and the
// parabolic case comes back as positive infinity.
func (el Ellipse) SemiMajorAxis() unit.Meters {
	return el.rp.Div(1 - el.e.Value())
}

// SemiMinorAxis returns half of the short axis of the ellipse, denoted
// in formula by b.
func (el Ellipse) SemiMinorAxis() unit.Meters {
	// b = a * sqrt(1 - e^2)
	e := el.e.Value()
	return el.SemiMajorAxis().Mul(math.Sqrt(1 - e*e))
}

// Flattening describes the shape of the ellipse as the normalized
// difference between the axes; an alternative to the eccentricity.
func (el Ellipse) Flattening() float64 {
	a := el.SemiMajorAxis()
	return a.Sub(el.SemiMinorAxis()).Ratio(a)
}

// Apoapsis returns the distance from the primary focus to the far edge
// of the ellipse, along the major axis.
func (el Ellipse) Apoapsis() unit.Meters {
	return el.SemiMajorAxis().Mul(1 + el.e.Value())
}

// FocalDistance returns the distance from the ellipse center to either
// focus, denoted in formula by c.
func (el Ellipse) FocalDistance() unit.Meters {
	return el.SemiMajorAxis().Mul(el.e.Value())
}
