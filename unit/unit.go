// Package unit provides typed scalar quantities for length, area, and
// volume, plus a validated orbital eccentricity. Dimensional closure is
// expressed through named methods: the only cross-type operations are
// length × length → area, length × area → volume, and area ÷ length →
// length. Any other mixed-type expression is a compile error.
//
// All arithmetic follows ordinary IEEE float semantics. Division by zero
// yields signed infinity and NaN propagates; neither is treated as an
// error, which keeps every operation except eccentricity construction
// total.
package unit

import "fmt"

// Meters is the base length unit.
type Meters float64

// ZeroMeters is the zero length, reusable as an additive identity.
const ZeroMeters Meters = 0

// Add returns m + o.
func (m Meters) Add(o Meters) Meters {
	return m + o
}

// Sub returns m - o.
func (m Meters) Sub(o Meters) Meters {
	return m - o
}

// Mul scales the length by a dimensionless factor.
func (m Meters) Mul(f float64) Meters {
	return Meters(float64(m) * f)
}

// Div divides the length by a dimensionless factor. Dividing by zero
// yields signed infinity.
func (m Meters) Div(f float64) Meters {
	return Meters(float64(m) / f)
}

// Ratio returns the dimensionless quotient m / o.
func (m Meters) Ratio(o Meters) float64 {
	return float64(m) / float64(o)
}

// MulMeters multiplies two lengths, producing an area.
func (m Meters) MulMeters(o Meters) SquareMeters {
	return SquareMeters(float64(m) * float64(o))
}

// MulSquareMeters multiplies a length by an area, producing a volume.
func (m Meters) MulSquareMeters(a SquareMeters) CubicMeters {
	return CubicMeters(float64(m) * float64(a))
}

// Kilometers converts the length to kilometres. The scale factor is
// exact; only ordinary floating rounding applies.
func (m Meters) Kilometers() Kilometers {
	return Kilometers(float64(m) / 1000.0)
}

func (m Meters) String() string {
	return fmt.Sprintf("%g m", float64(m))
}

// Kilometers is the larger length unit, equal to 1000 metres.
type Kilometers float64

// Meters converts the length back to the base unit.
func (k Kilometers) Meters() Meters {
	return Meters(float64(k) * 1000.0)
}

func (k Kilometers) String() string {
	return fmt.Sprintf("%g km", float64(k))
}

// SquareMeters is an area. Areas are only produced by multiplying two
// lengths; no unit other than squared base length exists.
type SquareMeters float64

// Add returns a + o.
func (a SquareMeters) Add(o SquareMeters) SquareMeters {
	return a + o
}

// Sub returns a - o.
func (a SquareMeters) Sub(o SquareMeters) SquareMeters {
	return a - o
}

// Mul scales the area by a dimensionless factor.
func (a SquareMeters) Mul(f float64) SquareMeters {
	return SquareMeters(float64(a) * f)
}

// Div divides the area by a dimensionless factor.
func (a SquareMeters) Div(f float64) SquareMeters {
	return SquareMeters(float64(a) / f)
}

// DivMeters divides the area by a length, recovering a length.
func (a SquareMeters) DivMeters(m Meters) Meters {
	return Meters(float64(a) / float64(m))
}

func (a SquareMeters) String() string {
	return fmt.Sprintf("%g m²", float64(a))
}

// CubicMeters is a volume, produced by multiplying a length by an area.
type CubicMeters float64

// Add returns v + o.
func (v CubicMeters) Add(o CubicMeters) CubicMeters {
	return v + o
}

// Sub returns v - o.
func (v CubicMeters) Sub(o CubicMeters) CubicMeters {
	return v - o
}

// Mul scales the volume by a dimensionless factor.
func (v CubicMeters) Mul(f float64) CubicMeters {
	return CubicMeters(float64(v) * f)
}

// Div divides the volume by a dimensionless factor.
func (v CubicMeters) Div(f float64) CubicMeters {
	return CubicMeters(float64(v) / f)
}

func (v CubicMeters) String() string {
	return fmt.Sprintf("%g m³", float64(v))
}
