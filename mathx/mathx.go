package mathx

import (
	"golang.org/x/exp/constraints"
)

// FloorMod returns x mod m with the sign of m (floor division semantics).
// FloorMod(-1, 4) == 3.
func FloorMod[X constraints.Integer](x, m X) X {
	r := x % m
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

func Prod[X constraints.Integer](xs ...X) X {
	var y X = 1
	for _, x := range xs {
		y *= x
	}
	return y
}
