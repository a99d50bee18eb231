package tensor

import (
	"fmt"
)

// Range is the half-open interval [Start, Stop) on one axis.
type Range struct {
	Start int
	Stop  int
}

func (r Range) Len() int {
	return r.Stop - r.Start
}

// Region selects one Range per axis.
type Region []Range

// NewTrailing2DRegion returns the region whose leading axes have extent 1 at
// corner and whose last two axes span rows x cols starting at corner.
func NewTrailing2DRegion(corner []int, rows, cols int) Region {
	n := len(corner)
	r := make(Region, n)
	for i, c := range corner {
		r[i] = Range{Start: c, Stop: c + 1}
	}
	r[n-2].Stop = corner[n-2] + rows
	r[n-1].Stop = corner[n-1] + cols
	return r
}

func (r Region) Shape() []int {
	shape := make([]int, len(r))
	for i, rng := range r {
		shape[i] = rng.Len()
	}
	return shape
}

func (r Region) Start() []int {
	start := make([]int, len(r))
	for i, rng := range r {
		start[i] = rng.Start
	}
	return start
}

// Within reports whether every range is non-empty and lies inside shape.
func (r Region) Within(shape []int) bool {
	if len(r) != len(shape) {
		return false
	}
	for i, rng := range r {
		if rng.Start < 0 || rng.Stop > shape[i] || rng.Start >= rng.Stop {
			return false
		}
	}
	return true
}

func (r Region) String() string {
	s := "["
	for i, rng := range r {
		if i != 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d:%d", rng.Start, rng.Stop)
	}
	return s + "]"
}
