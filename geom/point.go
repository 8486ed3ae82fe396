// Package geom provides the small rigid-body math the planners in package
// planner consume: 2D points, distance, and an approximate-equality
// predicate shared by every tolerance-sensitive comparison in this module.
package geom

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AbsTol and RelTol are the absolute and relative tolerances used by Equal
// and, transitively, by every Key comparison in package planner. They are
// deliberately coarser than machine epsilon: LPA*'s consistency predicate
// (g ≈ rhs) must tolerate the rounding that accumulates across repeated
// replans, not just a single floating point operation.
const (
	AbsTol = 1e-9
	RelTol = 1e-9
)

// Point is a 2D world coordinate.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Hypot(dx, dy)
}

// Add returns p+other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p-other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Equal reports whether p and other are the same point within AbsTol/RelTol
// on each axis.
func (p Point) Equal(other Point) bool {
	return EqualFloat(p.X, other.X) && EqualFloat(p.Y, other.Y)
}

// EqualFloat reports whether a and b are equal within the shared
// absolute-plus-relative tolerance. Every consistency check and key
// comparison in package planner routes through this, rather than a bare
// ==.
func EqualFloat(a, b float64) bool {
	return floats.EqualWithinAbsOrRel(a, b, AbsTol, RelTol)
}
