package tecplot

import "fmt"

// Linspace returns a rank-1 float64 array of n evenly spaced values
// from start to stop, both endpoints included. n must be at least 2.
func Linspace(start, stop float64, n int) (*Array, error) {
	if n < 2 {
		return nil, fmt.Errorf("linspace needs at least 2 points (got %d)", n)
	}
	step := (stop - start) / float64(n-1)
	data := make([]float64, n)
	for i := range data {
		data[i] = start + float64(i)*step
	}
	data[n-1] = stop // avoid rounding drift on the endpoint
	return NewArray(data, n)
}

// Meshgrid expands rank-1 coordinate axes into dense coordinate arrays
// with matrix ("ij") indexing: the result shape is the axis lengths in
// the given order, and result k carries the values of axis k along its
// own dimension. Passing (z, y, x) yields the (nz, ny, nx) coordinate
// fields the exporter expects for 3D data.
func Meshgrid(axes ...*Array) ([]*Array, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("meshgrid needs at least one axis")
	}
	shape := make([]int, len(axes))
	total := 1
	for i, ax := range axes {
		if ax.Rank() != 1 {
			return nil, fmt.Errorf("meshgrid axis %d must have rank 1 (got %d)", i, ax.Rank())
		}
		shape[i] = ax.Len()
		total *= ax.Len()
	}

	out := make([]*Array, len(axes))
	for k, ax := range axes {
		vals := ax.Float64s()

		// Along axis k the value index advances every `inner` elements
		// and wraps after shape[k] steps.
		inner := 1
		for _, dim := range shape[k+1:] {
			inner *= dim
		}

		data := make([]float64, total)
		for i := range data {
			data[i] = vals[(i/inner)%shape[k]]
		}

		a, err := NewArray(data, shape...)
		if err != nil {
			return nil, err
		}
		out[k] = a
	}
	return out, nil
}
