package locate

import (
	"github.com/sw965/blockrot/tensor"
)

// Placement is one position where a 2-D pattern matches the trailing two
// axes of an array. Coord is the top-left corner, one index per axis.
type Placement struct {
	Coord  []int
	Region tensor.Region
}

func validate[E tensor.Numeric](array, pattern *tensor.Dense[E]) bool {
	if array == nil || pattern == nil {
		return false
	}
	if pattern.NDim() != 2 || pattern.NDim() > array.NDim() {
		return false
	}
	return true
}

// candidates yields every flat offset of array whose value equals the
// pattern's top-left element, in row-major order. yield returning false stops
// the scan.
func candidates[E tensor.Numeric](array, pattern *tensor.Dense[E], yield func(Placement) bool) {
	corner := pattern.At(0, 0)
	rows, cols := pattern.Shape[0], pattern.Shape[1]

	for flat, v := range array.Data {
		if v != corner {
			continue
		}

		coord := array.Unravel(flat)
		region := tensor.NewTrailing2DRegion(coord, rows, cols)
		// 末尾の2軸からはみ出す候補は不一致扱い
		if !region.Within(array.Shape) {
			continue
		}

		view, err := array.View(region)
		if err != nil {
			continue
		}
		if !view.EqualData(pattern.Data) {
			continue
		}

		if !yield(Placement{Coord: coord, Region: region}) {
			return
		}
	}
}

// Locate returns every placement of pattern inside the trailing two axes of
// array, in the order their corners appear in array's row-major traversal.
// Overlapping placements are all reported. A pattern that is not 2-D, or has
// more dimensions than array, yields nil.
func Locate[E tensor.Numeric](array, pattern *tensor.Dense[E]) []Placement {
	if !validate(array, pattern) {
		return nil
	}

	var ps []Placement
	candidates(array, pattern, func(p Placement) bool {
		ps = append(ps, p)
		return true
	})
	return ps
}

// First returns the first placement Locate would report.
func First[E tensor.Numeric](array, pattern *tensor.Dense[E]) (Placement, bool) {
	if !validate(array, pattern) {
		return Placement{}, false
	}

	var first Placement
	found := false
	candidates(array, pattern, func(p Placement) bool {
		first = p
		found = true
		return false
	})
	return first, found
}

func Count[E tensor.Numeric](array, pattern *tensor.Dense[E]) int {
	return len(Locate(array, pattern))
}
