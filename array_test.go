package tecplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArray_Validation(t *testing.T) {
	_, err := NewArray([]float64{1, 2, 3})
	require.Error(t, err, "shape is required")

	_, err = NewArray([]float64{1, 2, 3}, 2, 2)
	require.Error(t, err, "shape/data mismatch must be rejected")

	_, err = NewArray([]float64{}, 0)
	require.Error(t, err, "zero dimension must be rejected")

	a, err := NewArray([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, a.Rank())
	require.Equal(t, []int{2, 3}, a.Shape())
	require.Equal(t, 6, a.Len())
	require.Equal(t, Float64, a.Kind())
}

func TestNewArray_Kinds(t *testing.T) {
	require.Equal(t, Float32, MustArray([]float32{1, 2}, 2).Kind())
	require.Equal(t, Int32, MustArray([]int32{1, 2}, 2).Kind())
	require.Equal(t, Int64, MustArray([]int64{1, 2}, 2).Kind())
}

func TestTake_Rank2(t *testing.T) {
	// 4x3 matrix, rows 0..3.
	a := MustArray([]float64{
		0, 1, 2,
		10, 11, 12,
		20, 21, 22,
		30, 31, 32,
	}, 4, 3)

	row, err := a.Take(0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{3}, row.Shape())
	require.Equal(t, []float64{20, 21, 22}, row.Float64s())

	col, err := a.Take(1, 1)
	require.NoError(t, err)
	require.Equal(t, []int{4}, col.Shape())
	require.Equal(t, []float64{1, 11, 21, 31}, col.Float64s())
}

func TestTake_Rank3(t *testing.T) {
	// Shape (2, 2, 3); element value encodes its indices as 100i+10j+k.
	data := make([]float64, 2*2*3)
	idx := 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 3; k++ {
				data[idx] = float64(100*i + 10*j + k)
				idx++
			}
		}
	}
	a := MustArray(data, 2, 2, 3)

	// Middle axis.
	s, err := a.Take(1, 1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, s.Shape())
	require.Equal(t, []float64{10, 11, 12, 110, 111, 112}, s.Float64s())
}

func TestTake_Rank4(t *testing.T) {
	// Shape (2, 1, 2, 2): two time steps of a (1,2,2) field.
	a := MustArray([]float64{
		1, 2, 3, 4, // t=0
		5, 6, 7, 8, // t=1
	}, 2, 1, 2, 2)

	s, err := a.Take(0, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 2}, s.Shape())
	require.Equal(t, []float64{5, 6, 7, 8}, s.Float64s())
}

func TestTake_Rank1(t *testing.T) {
	a := MustArray([]float64{7, 8, 9}, 3)

	s, err := a.Take(0, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, s.Shape(), "rank-1 take keeps a single-element dimension")
	require.Equal(t, []float64{8}, s.Float64s())
}

func TestTake_IntKind(t *testing.T) {
	a := MustArray([]int32{1, 2, 3, 4}, 2, 2)

	s, err := a.Take(0, 0)
	require.NoError(t, err)
	require.Equal(t, Int32, s.Kind())
	require.Equal(t, []float64{1, 2}, s.Float64s())
}

func TestTake_OutOfRange(t *testing.T) {
	a := MustArray([]float64{1, 2, 3, 4}, 2, 2)

	_, err := a.Take(2, 0)
	assert.Error(t, err)

	_, err = a.Take(-1, 0)
	assert.Error(t, err)

	_, err = a.Take(0, 2)
	assert.Error(t, err)
}
