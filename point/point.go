package point

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Coords is the read-only accessor surface of a point-like value.
// Implementations guarantee the coordinates are finite numbers.
type Coords interface {
	X() float64
	Y() float64
	Z() float64
}

// Point is a coordinate triple with an opaque instance identifier.
// The zero value is not useful; construct points with New.
type Point struct {
	x, y, z float64
	id      uuid.UUID
}

// New returns a Point at (x, y, z) with a fresh instance identifier.
func New(x, y, z float64) *Point {
	return &Point{x: x, y: y, z: z, id: uuid.New()}
}

// X returns the x coordinate.
func (p *Point) X() float64 { return p.x }

// Y returns the y coordinate.
func (p *Point) Y() float64 { return p.y }

// Z returns the z coordinate.
func (p *Point) Z() float64 { return p.z }

// ID returns the instance identifier as a hex token. Two points carry
// distinct tokens even when their coordinates are equal.
func (p *Point) ID() string {
	return "0x" + hex.EncodeToString(p.id[:])
}

// String returns the display form, e.g. "(1.00, 2.00, 3.00)".
func (p *Point) String() string {
	return Display(p)
}

// GoString returns the debug form: type name, two-decimal coordinates,
// and the instance identifier, e.g.
// <point.Point coords="(1.00, 2.00, 3.00)" at 0x9f2c...>.
func (p *Point) GoString() string {
	return fmt.Sprintf("<point.Point coords=%q at %s>", Display(p), p.ID())
}

// Display formats any point-like value with two-decimal coordinates.
// Example: Display of (1, 2, 3) is "(1.00, 2.00, 3.00)".
func Display(c Coords) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", c.X(), c.Y(), c.Z())
}

// Dict returns the coordinates as a mapping of names to integers,
// rounded half away from zero (2.5 rounds to 3, -2.5 to -3). When twoD
// is true only "x" and "y" are included; otherwise "z" is included too.
func Dict(c Coords, twoD bool) map[string]int {
	d := map[string]int{
		"x": roundCoord(c.X()),
		"y": roundCoord(c.Y()),
	}
	if !twoD {
		d["z"] = roundCoord(c.Z())
	}
	return d
}

// roundCoord rounds half away from zero via decimal arithmetic, avoiding
// float drift on values like 2.675 that have no exact binary form.
func roundCoord(v float64) int {
	return int(decimal.NewFromFloat(v).Round(0).IntPart())
}
