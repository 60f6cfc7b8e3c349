package tecplot

import (
	"fmt"
)

// Kind identifies the element type of an Array.
type Kind int

const (
	// Float64 represents 64-bit floating point elements.
	Float64 Kind = iota
	// Float32 represents 32-bit floating point elements.
	Float32
	// Int32 represents 32-bit signed integer elements.
	Int32
	// Int64 represents 64-bit signed integer elements.
	Int64
)

func (k Kind) String() string {
	switch k {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Element constrains the element types an Array can hold. These are the
// types the HDF5 layer writes and reads without loss.
type Element interface {
	float64 | float32 | int32 | int64
}

// Array is a dense numeric n-dimensional array in row-major order.
// It is the value type of a VariableSet and the unit the exporter
// writes as one HDF5 dataset.
type Array struct {
	kind  Kind
	shape []int
	data  any // []float64, []float32, []int32 or []int64, matching kind
}

// NewArray creates an Array from a flat row-major slice and its shape.
//
// The product of the shape dimensions must equal len(data), every
// dimension must be positive, and at least one dimension is required.
//
// Example:
//
//	// 2x3 matrix
//	a, err := tecplot.NewArray([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
func NewArray[T Element](data []T, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("array shape cannot be empty")
	}
	total := 1
	for i, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("array dimension %d must be positive (got %d)", i, dim)
		}
		total *= dim
	}
	if total != len(data) {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)", len(data), shape, total)
	}

	a := &Array{
		shape: append([]int(nil), shape...),
	}
	switch d := any(data).(type) {
	case []float64:
		a.kind, a.data = Float64, d
	case []float32:
		a.kind, a.data = Float32, d
	case []int32:
		a.kind, a.data = Int32, d
	case []int64:
		a.kind, a.data = Int64, d
	}
	return a, nil
}

// MustArray is like NewArray but panics on error. Intended for
// literals in examples and tests.
func MustArray[T Element](data []T, shape ...int) *Array {
	a, err := NewArray(data, shape...)
	if err != nil {
		panic(err)
	}
	return a
}

// Kind returns the element kind.
func (a *Array) Kind() Kind { return a.kind }

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the dimensions.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Len returns the total number of elements.
func (a *Array) Len() int {
	total := 1
	for _, dim := range a.shape {
		total *= dim
	}
	return total
}

// Take returns the sub-array at the given index along the given axis.
// The axis is removed, so the result has rank one less than a.
// A rank-1 input yields a rank-1 array holding the single element.
func (a *Array) Take(axis, index int) (*Array, error) {
	if axis < 0 || axis >= len(a.shape) {
		return nil, fmt.Errorf("axis %d out of range for rank %d", axis, len(a.shape))
	}
	if index < 0 || index >= a.shape[axis] {
		return nil, fmt.Errorf("index %d out of range for axis %d (size %d)", index, axis, a.shape[axis])
	}

	outShape := make([]int, 0, len(a.shape)-1)
	outShape = append(outShape, a.shape[:axis]...)
	outShape = append(outShape, a.shape[axis+1:]...)
	if len(outShape) == 0 {
		outShape = []int{1}
	}

	out := &Array{kind: a.kind, shape: outShape}
	switch d := a.data.(type) {
	case []float64:
		out.data = takeSlice(d, a.shape, axis, index)
	case []float32:
		out.data = takeSlice(d, a.shape, axis, index)
	case []int32:
		out.data = takeSlice(d, a.shape, axis, index)
	case []int64:
		out.data = takeSlice(d, a.shape, axis, index)
	}
	return out, nil
}

// Float64s returns the elements converted to float64, in row-major
// order. Useful for comparing against values read back from a container.
func (a *Array) Float64s() []float64 {
	switch d := a.data.(type) {
	case []float64:
		return append([]float64(nil), d...)
	case []float32:
		return toFloat64(d)
	case []int32:
		return toFloat64(d)
	case []int64:
		return toFloat64(d)
	}
	return nil
}

// takeSlice extracts the row-major elements at the given index along
// axis. shape is the source shape; the source is data with
// len(data) == prod(shape).
func takeSlice[T any](data []T, shape []int, axis, index int) []T {
	inner := 1
	for _, dim := range shape[axis+1:] {
		inner *= dim
	}
	block := shape[axis] * inner

	out := make([]T, 0, len(data)/shape[axis])
	for start := index * inner; start < len(data); start += block {
		out = append(out, data[start:start+inner]...)
	}
	return out
}

func toFloat64[T float32 | int32 | int64](data []T) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}
