package bfield

import "fmt"

// Tensor is a dense row-major float array with an explicit shape. The
// evaluation result uses the canonical shape (L0, m, K, pixel..., 3)
// before any sumup or squeeze.
type Tensor struct {
	Shape []int
	Data  []float64
}

// Size returns the element count implied by the shape.
func (t *Tensor) Size() int {
	n := 1
	for _, s := range t.Shape {
		n *= s
	}
	return n
}

// At returns the element at the given multi-index.
func (t *Tensor) At(ix ...int) float64 {
	if len(ix) != len(t.Shape) {
		panic(fmt.Sprintf("bfield: index rank %d against tensor rank %d", len(ix), len(t.Shape)))
	}
	flat := 0
	for d, i := range ix {
		if i < 0 || i >= t.Shape[d] {
			panic(fmt.Sprintf("bfield: index %d out of range for axis %d (size %d)", i, d, t.Shape[d]))
		}
		flat = flat*t.Shape[d] + i
	}
	return t.Data[flat]
}

// Squeeze returns a tensor with every length-1 axis removed. Data is
// shared, not copied; the flat layout is identical.
func (t *Tensor) Squeeze() *Tensor {
	shape := make([]int, 0, len(t.Shape))
	for _, s := range t.Shape {
		if s != 1 {
			shape = append(shape, s)
		}
	}
	return &Tensor{Shape: shape, Data: t.Data}
}

// sumLeading collapses axis 0 by summation.
func sumLeading(t *Tensor) *Tensor {
	if len(t.Shape) == 0 {
		return t
	}
	rows := t.Shape[0]
	rest := t.Size() / rows
	data := make([]float64, rest)
	for i := 0; i < rows; i++ {
		base := i * rest
		for j := 0; j < rest; j++ {
			data[j] += t.Data[base+j]
		}
	}
	shape := make([]int, len(t.Shape)-1)
	copy(shape, t.Shape[1:])
	return &Tensor{Shape: shape, Data: data}
}
