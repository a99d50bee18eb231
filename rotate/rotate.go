package rotate

import (
	"fmt"

	"github.com/sw965/blockrot/locate"
	"github.com/sw965/blockrot/mathx"
	"github.com/sw965/blockrot/matrix/2d"
	"github.com/sw965/blockrot/tensor"
)

type Status int

const (
	StatusInvalidPattern Status = iota
	StatusNoMatch
	StatusRotated
)

func (s Status) String() string {
	switch s {
	case StatusInvalidPattern:
		return "InvalidPattern"
	case StatusNoMatch:
		return "NoMatch"
	case StatusRotated:
		return "Rotated"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result reports what FirstMatch did.
//
// StatusInvalidPattern: Array is nil and nothing was touched.
// StatusNoMatch: Array is the input, unmodified.
// StatusRotated: Array is the input with the block at Placement rewritten.
// Quarter is the normalised clockwise quarter-turn count; when it is 0 the
// array was left as is.
type Result[E tensor.Numeric] struct {
	Status    Status
	Quarter   int
	Placement locate.Placement
	Array     *tensor.Dense[E]
}

func (r Result[E]) OK() bool {
	return r.Status == StatusRotated
}

// Quarter reduces a signed quarter-turn count to [0, 4) with floor modulo:
// 1 is clockwise, 3 is counter-clockwise, so -1 means counter-clockwise.
func Quarter(turns int) int {
	return mathx.FloorMod(turns, 4)
}

func validatePattern[E tensor.Numeric](pattern *tensor.Dense[E]) error {
	if pattern == nil {
		return fmt.Errorf("pattern is nil")
	}
	if pattern.NDim() != 2 {
		return fmt.Errorf("pattern has %d dimensions, want 2", pattern.NDim())
	}
	if !pattern.IsSquare() {
		return fmt.Errorf("pattern shape %v is not square", pattern.Shape)
	}
	return nil
}

// Rotated returns a copy of a square 2-D block turned by turns quarter-turns.
func Rotated[E tensor.Numeric](pattern *tensor.Dense[E], turns int) (*tensor.Dense[E], error) {
	if err := validatePattern(pattern); err != nil {
		return nil, err
	}

	xss, err := pattern.ToD2()
	if err != nil {
		return nil, err
	}
	yss, err := matrix2d.RotateQuarter(xss, Quarter(turns))
	if err != nil {
		return nil, err
	}
	return tensor.NewD2(yss)
}

// FirstMatch locates pattern in array and overwrites the first placement
// with pattern rotated by turns quarter-turns. array is modified in place.
// Later placements are never touched.
func FirstMatch[E tensor.Numeric](array, pattern *tensor.Dense[E], turns int) Result[E] {
	if validatePattern(pattern) != nil || array == nil {
		return Result[E]{Status: StatusInvalidPattern}
	}

	p, ok := locate.First(array, pattern)
	if !ok {
		return Result[E]{Status: StatusNoMatch, Array: array}
	}

	q := Quarter(turns)
	result := Result[E]{Status: StatusRotated, Quarter: q, Placement: p, Array: array}
	if q == 0 {
		return result
	}

	rotated, err := Rotated(pattern, q)
	if err != nil {
		return Result[E]{Status: StatusInvalidPattern}
	}

	view, err := array.View(p.Region)
	if err != nil {
		return Result[E]{Status: StatusInvalidPattern}
	}
	if err := view.Assign(rotated.Data); err != nil {
		return Result[E]{Status: StatusInvalidPattern}
	}
	return result
}
