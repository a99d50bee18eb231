package tensor2d

import (
	"fmt"
	"slices"

	"github.com/sw965/blockrot/tensor"
	"gonum.org/v1/gonum/blas/blas32"
)

func NewZeros(rows, cols int) blas32.General {
	return blas32.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float32, rows*cols),
	}
}

func Clone(gen blas32.General) blas32.General {
	return blas32.General{
		Rows:   gen.Rows,
		Cols:   gen.Cols,
		Stride: gen.Stride,
		Data:   slices.Clone(gen.Data),
	}
}

func At(gen blas32.General, row, col int) int {
	return row*gen.Stride + col
}

// FromGeneral copies gen into a rank-2 Dense, dropping any stride padding.
func FromGeneral(gen blas32.General) (*tensor.Dense[float32], error) {
	if gen.Rows < 1 || gen.Cols < 1 {
		return nil, fmt.Errorf("blas32.General must be at least 1x1, got %dx%d", gen.Rows, gen.Cols)
	}
	if gen.Stride < gen.Cols {
		return nil, fmt.Errorf("blas32.General stride %d is smaller than cols %d", gen.Stride, gen.Cols)
	}
	if len(gen.Data) < (gen.Rows-1)*gen.Stride+gen.Cols {
		return nil, fmt.Errorf("blas32.General data is too short for %dx%d with stride %d", gen.Rows, gen.Cols, gen.Stride)
	}

	data := make([]float32, 0, gen.Rows*gen.Cols)
	for r := 0; r < gen.Rows; r++ {
		offset := At(gen, r, 0)
		data = append(data, gen.Data[offset:offset+gen.Cols]...)
	}
	return tensor.New([]int{gen.Rows, gen.Cols}, data)
}

func ToGeneral(d *tensor.Dense[float32]) (blas32.General, error) {
	if d.NDim() != 2 {
		return blas32.General{}, fmt.Errorf("tensor has %d dimensions, blas32.General needs 2", d.NDim())
	}
	return blas32.General{
		Rows:   d.Shape[0],
		Cols:   d.Shape[1],
		Stride: d.Shape[1],
		Data:   slices.Clone(d.Data),
	}, nil
}

func Transpose(gen blas32.General) blas32.General {
	t := NewZeros(gen.Cols, gen.Rows)
	for i := range t.Rows {
		for j := range t.Cols {
			newIdx := At(t, i, j)
			oldIdx := At(gen, j, i)
			t.Data[newIdx] = gen.Data[oldIdx]
		}
	}
	return t
}

// Rotate returns gen rotated by q clockwise quarter-turns, q in [0, 4).
func Rotate(gen blas32.General, q int) (blas32.General, error) {
	switch q {
	case 0:
		return Clone(gen), nil
	case 1:
		// 上下反転してから転置
		return Transpose(flipRows(gen)), nil
	case 2:
		return flipCols(flipRows(gen)), nil
	case 3:
		return Transpose(flipCols(gen)), nil
	}
	return blas32.General{}, fmt.Errorf("quarter-turn count must be in [0, 4), got %d", q)
}

func flipRows(gen blas32.General) blas32.General {
	y := NewZeros(gen.Rows, gen.Cols)
	for r := 0; r < gen.Rows; r++ {
		src := At(gen, gen.Rows-1-r, 0)
		dst := At(y, r, 0)
		copy(y.Data[dst:dst+gen.Cols], gen.Data[src:src+gen.Cols])
	}
	return y
}

func flipCols(gen blas32.General) blas32.General {
	y := NewZeros(gen.Rows, gen.Cols)
	for r := 0; r < gen.Rows; r++ {
		for c := 0; c < gen.Cols; c++ {
			y.Data[At(y, r, c)] = gen.Data[At(gen, r, gen.Cols-1-c)]
		}
	}
	return y
}
