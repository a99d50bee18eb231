package tensor

import (
	"fmt"
	"slices"

	"github.com/sw965/blockrot/mathx"
	"github.com/sw965/blockrot/matrix/2d"
)

func New[E Numeric](shape []int, data []E) (*Dense[E], error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}

	n := mathx.Prod(shape...)
	if len(data) != n {
		return nil, fmt.Errorf("tensor shape %v holds %d elements, but len(data) = %d", shape, n, len(data))
	}

	return &Dense[E]{
		Shape:   slices.Clone(shape),
		Strides: stridesOf(shape),
		Data:    data,
	}, nil
}

func NewZeros[E Numeric](shape ...int) (*Dense[E], error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}
	return New(shape, make([]E, mathx.Prod(shape...)))
}

func NewZerosLike[E Numeric](d *Dense[E]) *Dense[E] {
	return &Dense[E]{
		Shape:   slices.Clone(d.Shape),
		Strides: slices.Clone(d.Strides),
		Data:    make([]E, d.Size()),
	}
}

func NewD2[E Numeric](xss [][]E) (*Dense[E], error) {
	if err := matrix2d.ValidateRectangular(xss); err != nil {
		return nil, err
	}

	return New([]int{len(xss), len(xss[0])}, matrix2d.Flatten(xss))
}

func NewD3[E Numeric](xsss [][][]E) (*Dense[E], error) {
	if len(xsss) == 0 {
		return nil, fmt.Errorf("tensor.NewD3: outer axis must not be empty")
	}

	var rows, cols int
	data := make([]E, 0)
	for i, xss := range xsss {
		if err := matrix2d.ValidateRectangular(xss); err != nil {
			return nil, fmt.Errorf("tensor.NewD3: block %d: %w", i, err)
		}
		if i == 0 {
			rows, cols = len(xss), len(xss[0])
		} else if len(xss) != rows || len(xss[0]) != cols {
			return nil, fmt.Errorf(
				"tensor.NewD3: block %d has shape [%d %d], block 0 has shape [%d %d]",
				i, len(xss), len(xss[0]), rows, cols,
			)
		}
		data = append(data, matrix2d.Flatten(xss)...)
	}
	return New([]int{len(xsss), rows, cols}, data)
}

func NewD4[E Numeric](xssss [][][][]E) (*Dense[E], error) {
	if len(xssss) == 0 {
		return nil, fmt.Errorf("tensor.NewD4: outer axis must not be empty")
	}

	var inner []int
	data := make([]E, 0)
	for i, xsss := range xssss {
		d3, err := NewD3(xsss)
		if err != nil {
			return nil, fmt.Errorf("tensor.NewD4: block %d: %w", i, err)
		}
		if i == 0 {
			inner = d3.Shape
		} else if !slices.Equal(d3.Shape, inner) {
			return nil, fmt.Errorf("tensor.NewD4: block %d has shape %v, block 0 has shape %v", i, d3.Shape, inner)
		}
		data = append(data, d3.Data...)
	}
	return New(append([]int{len(xssss)}, inner...), data)
}
