package tensor

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// FromMatrix copies any gonum matrix into a rank-2 Dense.
func FromMatrix(m mat.Matrix) (*Dense[float64], error) {
	rows, cols := m.Dims()
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, m.At(i, j))
		}
	}
	return New([]int{rows, cols}, data)
}

func ToMatDense(d *Dense[float64]) (*mat.Dense, error) {
	if d.NDim() != 2 {
		return nil, fmt.Errorf("tensor.ToMatDense: tensor has %d dimensions, want 2", d.NDim())
	}
	return mat.NewDense(d.Shape[0], d.Shape[1], slices.Clone(d.Data)), nil
}
