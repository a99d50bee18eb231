package tensor

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

type Numeric interface {
	constraints.Integer | constraints.Float
}

// Dense is a row-major, contiguous N-dimensional array.
// Shape and Strides have one entry per axis and are fixed at construction.
type Dense[E Numeric] struct {
	Shape   []int
	Strides []int
	Data    []E
}

func stridesOf(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return strides
}

func validateShape(shape []int) error {
	if len(shape) == 0 {
		return fmt.Errorf("tensor shape must have at least one axis")
	}
	for i, n := range shape {
		if n < 1 {
			return fmt.Errorf("tensor shape %v: axis %d has extent %d, must be >= 1", shape, i, n)
		}
	}
	return nil
}

func (d *Dense[E]) NDim() int {
	return len(d.Shape)
}

func (d *Dense[E]) Size() int {
	return len(d.Data)
}

// Rows returns the extent of the second-to-last axis.
func (d *Dense[E]) Rows() int {
	if d.NDim() < 2 {
		return 1
	}
	return d.Shape[d.NDim()-2]
}

// Cols returns the extent of the last axis.
func (d *Dense[E]) Cols() int {
	return d.Shape[d.NDim()-1]
}

func (d *Dense[E]) Offset(idx ...int) int {
	if len(idx) != d.NDim() {
		panic(fmt.Sprintf("tensor.Dense.Offset: got %d indices for a %d-dimensional tensor", len(idx), d.NDim()))
	}

	offset := 0
	for i, v := range idx {
		if v < 0 || v >= d.Shape[i] {
			panic(fmt.Sprintf("tensor.Dense.Offset: index %d out of range [0, %d) on axis %d", v, d.Shape[i], i))
		}
		offset += v * d.Strides[i]
	}
	return offset
}

func (d *Dense[E]) At(idx ...int) E {
	return d.Data[d.Offset(idx...)]
}

func (d *Dense[E]) Set(v E, idx ...int) {
	d.Data[d.Offset(idx...)] = v
}

// Unravel converts a flat row-major offset into per-axis indices.
func (d *Dense[E]) Unravel(flat int) []int {
	if flat < 0 || flat >= d.Size() {
		panic(fmt.Sprintf("tensor.Dense.Unravel: offset %d out of range [0, %d)", flat, d.Size()))
	}

	idx := make([]int, d.NDim())
	for i, stride := range d.Strides {
		idx[i] = flat / stride
		flat %= stride
	}
	return idx
}

func (d *Dense[E]) Clone() *Dense[E] {
	return &Dense[E]{
		Shape:   slices.Clone(d.Shape),
		Strides: slices.Clone(d.Strides),
		Data:    slices.Clone(d.Data),
	}
}

func (d *Dense[E]) Equal(other *Dense[E]) bool {
	if d == nil || other == nil {
		return d == other
	}
	return slices.Equal(d.Shape, other.Shape) && slices.Equal(d.Data, other.Data)
}

func (d *Dense[E]) IsSquare() bool {
	return d.NDim() == 2 && d.Shape[0] == d.Shape[1]
}

// ToD2 copies a rank-2 tensor into nested rows.
func (d *Dense[E]) ToD2() ([][]E, error) {
	if d.NDim() != 2 {
		return nil, fmt.Errorf("tensor.Dense.ToD2: tensor has %d dimensions, want 2", d.NDim())
	}

	cols := d.Shape[1]
	y := make([][]E, d.Shape[0])
	for i := range y {
		y[i] = slices.Clone(d.Data[i*cols : (i+1)*cols])
	}
	return y, nil
}

func (d *Dense[E]) String() string {
	return fmt.Sprintf("tensor.Dense%v%v", d.Shape, d.Data)
}
