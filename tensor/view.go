package tensor

import (
	"fmt"
	"slices"

	"github.com/sw965/blockrot/mathx"
)

// View is a checked window into a Dense. It shares storage with its parent,
// so Set and Assign write through.
type View[E Numeric] struct {
	Shape   []int
	Strides []int
	Offset  int
	Data    []E
}

func (d *Dense[E]) View(r Region) (View[E], error) {
	if len(r) != d.NDim() {
		return View[E]{}, fmt.Errorf("region %v has %d axes, tensor has %d", r, len(r), d.NDim())
	}
	if !r.Within(d.Shape) {
		return View[E]{}, fmt.Errorf("region %v is outside tensor shape %v", r, d.Shape)
	}

	return View[E]{
		Shape:   r.Shape(),
		Strides: slices.Clone(d.Strides),
		Offset:  d.Offset(r.Start()...),
		Data:    d.Data,
	}, nil
}

func (v View[E]) Size() int {
	return mathx.Prod(v.Shape...)
}

func (v View[E]) offset(idx []int) int {
	if len(idx) != len(v.Shape) {
		panic(fmt.Sprintf("tensor.View: got %d indices for a %d-dimensional view", len(idx), len(v.Shape)))
	}
	offset := v.Offset
	for i, x := range idx {
		if x < 0 || x >= v.Shape[i] {
			panic(fmt.Sprintf("tensor.View: index %d out of range [0, %d) on axis %d", x, v.Shape[i], i))
		}
		offset += x * v.Strides[i]
	}
	return offset
}

func (v View[E]) At(idx ...int) E {
	return v.Data[v.offset(idx)]
}

func (v View[E]) Set(x E, idx ...int) {
	v.Data[v.offset(idx)] = x
}

// each calls f with the storage offset of every element in row-major order.
func (v View[E]) each(f func(int)) {
	idx := make([]int, len(v.Shape))
	n := v.Size()
	for k := 0; k < n; k++ {
		offset := v.Offset
		for i, x := range idx {
			offset += x * v.Strides[i]
		}
		f(offset)

		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < v.Shape[i] {
				break
			}
			idx[i] = 0
		}
	}
}

// Flatten copies the view's elements in row-major order.
func (v View[E]) Flatten() []E {
	y := make([]E, 0, v.Size())
	v.each(func(offset int) {
		y = append(y, v.Data[offset])
	})
	return y
}

// EqualData reports whether the view's row-major elements equal xs exactly.
func (v View[E]) EqualData(xs []E) bool {
	if len(xs) != v.Size() {
		return false
	}
	i := 0
	ok := true
	v.each(func(offset int) {
		if ok && v.Data[offset] != xs[i] {
			ok = false
		}
		i++
	})
	return ok
}

// Assign overwrites the view with src, read in row-major order.
func (v View[E]) Assign(src []E) error {
	if len(src) != v.Size() {
		return fmt.Errorf("tensor.View.Assign: view shape %v holds %d elements, len(src) = %d", v.Shape, v.Size(), len(src))
	}
	i := 0
	v.each(func(offset int) {
		v.Data[offset] = src[i]
		i++
	})
	return nil
}

func (v View[E]) Clone() *Dense[E] {
	return &Dense[E]{
		Shape:   slices.Clone(v.Shape),
		Strides: stridesOf(v.Shape),
		Data:    v.Flatten(),
	}
}
