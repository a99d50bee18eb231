package tensor3d

import (
	"fmt"
	"slices"

	"github.com/sw965/blockrot/tensor"
)

// General is a channel-major float32 image, laid out like blas32.General
// with one extra stride for the channel axis.
type General struct {
	Channels      int
	Rows          int
	Cols          int
	ChannelStride int
	RowStride     int
	Data          []float32
}

func NewZeros(chs, rows, cols int) General {
	rowStride := cols
	chStride := rows * rowStride
	n := chs * chStride
	return General{
		Channels:      chs,
		Rows:          rows,
		Cols:          cols,
		ChannelStride: chStride,
		RowStride:     rowStride,
		Data:          make([]float32, n),
	}
}

func (g General) N() int {
	return g.Channels * g.Rows * g.Cols
}

func (g General) At(ch, row, col int) int {
	return ch*g.ChannelStride + row*g.RowStride + col
}

// ToDense copies g into a [Channels, Rows, Cols] Dense, honouring strides.
func (g General) ToDense() (*tensor.Dense[float32], error) {
	if g.Channels < 1 || g.Rows < 1 || g.Cols < 1 {
		return nil, fmt.Errorf("tensor3d.General must be at least 1x1x1, got %dx%dx%d", g.Channels, g.Rows, g.Cols)
	}
	if g.RowStride < g.Cols || g.ChannelStride < (g.Rows-1)*g.RowStride+g.Cols {
		return nil, fmt.Errorf("tensor3d.General strides (%d, %d) do not fit %dx%dx%d",
			g.ChannelStride, g.RowStride, g.Channels, g.Rows, g.Cols)
	}
	if len(g.Data) <= g.At(g.Channels-1, g.Rows-1, g.Cols-1) {
		return nil, fmt.Errorf("tensor3d.General data is too short: len = %d", len(g.Data))
	}

	data := make([]float32, 0, g.N())
	for ch := 0; ch < g.Channels; ch++ {
		for row := 0; row < g.Rows; row++ {
			offset := g.At(ch, row, 0)
			data = append(data, g.Data[offset:offset+g.Cols]...)
		}
	}
	return tensor.New([]int{g.Channels, g.Rows, g.Cols}, data)
}

func FromDense(d *tensor.Dense[float32]) (General, error) {
	if d.NDim() != 3 {
		return General{}, fmt.Errorf("tensor has %d dimensions, tensor3d.General needs 3", d.NDim())
	}
	g := NewZeros(d.Shape[0], d.Shape[1], d.Shape[2])
	g.Data = slices.Clone(d.Data)
	return g, nil
}
