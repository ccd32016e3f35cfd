package unit

import (
	"errors"
	"fmt"

	"github.com/signalsfoundry/orbital-geometry/internal/observability"
)

// ErrNegativeEccentricity is returned when constructing an eccentricity
// from a negative value.
var ErrNegativeEccentricity = errors.New("eccentricity cannot be negative")

// Eccentricity is the dimensionless shape parameter of a conic section:
// 0 is a circle, values in (0, 1) are ellipses, 1 is a parabola. It is
// validated to be non-negative at construction; no upper bound is
// enforced, so parabolic and hyperbolic values are representable even
// though ellipse geometry degenerates there.
type Eccentricity struct {
	value float64
}

// NewEccentricity validates and wraps an eccentricity value. It is the
// only fallible constructor in the quantity system: negative input
// fails, everything else (including NaN and +Inf) is accepted.
func NewEccentricity(value float64) (Eccentricity, error) {
	if value < 0 {
		observability.Default().RecordEccentricityValidation(false)
		return Eccentricity{}, fmt.Errorf("%w: %g", ErrNegativeEccentricity, value)
	}
	observability.Default().RecordEccentricityValidation(true)
	return Eccentricity{value: value}, nil
}

// MustEccentricity is like NewEccentricity but panics on invalid input.
// Intended for fixed, known-good values.
func MustEccentricity(value float64) Eccentricity {
	e, err := NewEccentricity(value)
	if err != nil {
		panic(err)
	}
	return e
}

// Value returns the underlying dimensionless value.
func (e Eccentricity) Value() float64 {
	return e.value
}

func (e Eccentricity) String() string {
	return fmt.Sprintf("e=%g", e.value)
}
