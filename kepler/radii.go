package kepler

import (
	"github.com/signalsfoundry/orbital-geometry/internal/observability"
	"github.com/signalsfoundry/orbital-geometry/unit"
)

// SumOfFocalRadii returns double the semi-major axis, from the distances
// of a single orbit point to the primary and secondary foci. The sum of
// those distances is constant over the whole orbit; that constant is 2a.
func SumOfFocalRadii(r, rPrime unit.Meters) unit.Meters {
	return r.Add(rPrime)
}

// DifferenceOfFocalRadii returns the distance between the two foci (2c),
// from the distances of a single orbit point to each focus.
func DifferenceOfFocalRadii(r, rPrime unit.Meters) unit.Meters {
	if r > rPrime {
		return r.Sub(rPrime)
	}
	return rPrime.Sub(r)
}

// EccentricityFromFocalRadii derives the orbit's eccentricity from the
// distances of a single orbit point to each focus, with no angle or time
// information. The ratio c/a is computed from half the focal-radius
// difference and half the focal-radius sum, and goes through the
// validated eccentricity constructor.
func EccentricityFromFocalRadii(r, rPrime unit.Meters) (unit.Eccentricity, error) {
	a := SumOfFocalRadii(r, rPrime).Div(2)
	c := DifferenceOfFocalRadii(r, rPrime).Div(2)
	e, err := unit.NewEccentricity(c.Ratio(a))
	if err != nil {
		return unit.Eccentricity{}, err
	}
	observability.Default().RecordEllipseConstruction(observability.ConstructorFocalRadii)
	return e, nil
}
