package planner

import "github.com/Forrest-Z/motion-planning-in-ROS/geom"

// Key is the lexicographic priority (k1, k2) driving every open queue in
// this package. For A*/Theta*, k1 = g+h and k2 = g (km is always zero).
// For LPA*/D* Lite, k1 = min(g,rhs)+h+km and k2 = min(g,rhs).
type Key struct {
	K1, K2 float64
}

// less reports a < b: a < b iff k1(a) ≈ k1(b) implies k2(a) < k2(b);
// otherwise k1(a) < k1(b). k1 ties use the shared tolerance,
// not ==, so accumulated floating-point drift across replans never makes
// the open queue's heap property inconsistent with this order.
func (a Key) less(b Key) bool {
	if geom.EqualFloat(a.K1, b.K1) {
		return a.K2 < b.K2
	}
	return a.K1 < b.K1
}

// greater reports a > b, the mirror of less with equal keys excluded from
// both.
func (a Key) greater(b Key) bool {
	return b.less(a)
}

// equal reports neither a < b nor a > b.
func (a Key) equal(b Key) bool {
	return !a.less(b) && !b.less(a)
}
