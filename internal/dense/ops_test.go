package dense

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFloat64(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2}, RowMajor)
	b, _ := FromSlice([]float64{10, 20, 30, 40}, Shape{2, 2}, RowMajor)

	c, err := a.Add(b)
	require.NoError(t, err)
	want, _ := FromSlice([]float64{11, 22, 33, 44}, Shape{2, 2}, RowMajor)
	assert.True(t, c.EqualApprox(want, 1e-15))

	// Operands untouched.
	assert.Equal(t, 1.0, a.At(0, 0))
	assert.Equal(t, 10.0, b.At(0, 0))
}

func TestArithmeticFloat32(t *testing.T) {
	a, _ := FromSlice([]float32{6, 8, 10, 12}, Shape{2, 2}, RowMajor)
	b, _ := FromSlice([]float32{2, 4, 5, 3}, Shape{2, 2}, RowMajor)

	sub, err := a.Sub(b)
	require.NoError(t, err)
	mul, err := a.Mul(b)
	require.NoError(t, err)
	div, err := a.Div(b)
	require.NoError(t, err)

	assert.Equal(t, float32(4), sub.At(0, 0))
	assert.Equal(t, float32(32), mul.At(0, 1))
	assert.Equal(t, float32(2), div.At(1, 0))
	assert.Equal(t, float32(4), div.At(1, 1))
}

func TestArithmeticIntAndComplex(t *testing.T) {
	ai, _ := FromSlice([]int32{9, 8, 7, 6}, Shape{2, 2}, RowMajor)
	bi, _ := FromSlice([]int32{2, 2, 2, 2}, Shape{2, 2}, RowMajor)

	div, err := ai.Div(bi)
	require.NoError(t, err)
	// Integer division truncates.
	assert.Equal(t, int32(4), div.At(0, 0))
	assert.Equal(t, int32(3), div.At(1, 0))

	ac, _ := FromSlice([]complex128{1 + 1i, 2, 3, 4 - 2i}, Shape{2, 2}, RowMajor)
	bc, _ := FromSlice([]complex128{1i, 1, 1, 2}, Shape{2, 2}, RowMajor)
	mul, err := ac.Mul(bc)
	require.NoError(t, err)
	assert.Equal(t, complex(-1, 1), mul.At(0, 0))
	assert.Equal(t, complex(8, -4), mul.At(1, 1))
}

func TestBinaryDimensionMismatch(t *testing.T) {
	a, _ := Zeros[float64](Shape{2, 2}, RowMajor)
	b, _ := Zeros[float64](Shape{2, 3}, RowMajor)
	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestBinaryMixedOrders(t *testing.T) {
	// Row-major plus column-major takes the strided path; the result
	// must still be element-wise correct.
	a, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2}, RowMajor)
	b, _ := FromSlice([]float64{1, 3, 2, 4}, Shape{2, 2}, ColMajor) // same logical values

	c, err := a.Add(b)
	require.NoError(t, err)
	want, _ := FromSlice([]float64{2, 4, 6, 8}, Shape{2, 2}, RowMajor)
	assert.True(t, c.EqualApprox(want, 1e-15))
}

func TestBinaryOnSubviews(t *testing.T) {
	m, _ := FromSlice([]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, Shape{3, 3}, RowMajor)
	sub, err := m.Submatrix(0, 1, 2, 2) // [[2,3],[5,6]]
	require.NoError(t, err)

	other, _ := FromSlice([]float64{1, 1, 1, 1}, Shape{2, 2}, RowMajor)
	c, err := sub.Add(other)
	require.NoError(t, err)

	want, _ := FromSlice([]float64{3, 4, 6, 7}, Shape{2, 2}, RowMajor)
	assert.True(t, c.EqualApprox(want, 1e-15))
	// The source view is not mutated.
	assert.Equal(t, 2.0, m.At(0, 1))
}

func TestDivByZeroFloats(t *testing.T) {
	a, _ := FromSlice([]float64{1, -1, 0, 2}, Shape{2, 2}, RowMajor)
	b, _ := FromSlice([]float64{0, 0, 0, 1}, Shape{2, 2}, RowMajor)

	c, err := a.Div(b)
	require.NoError(t, err)
	assert.True(t, math.IsInf(c.At(0, 0), 1))
	assert.True(t, math.IsInf(c.At(0, 1), -1))
	assert.True(t, math.IsNaN(c.At(1, 0)))
}

func TestNegAndScalars(t *testing.T) {
	a, _ := FromSlice([]float64{1, -2, 3, -4}, Shape{2, 2}, RowMajor)

	n := a.Neg()
	assert.Equal(t, -1.0, n.At(0, 0))
	assert.Equal(t, 2.0, n.At(0, 1))

	s := a.AddScalar(10)
	assert.Equal(t, 11.0, s.At(0, 0))
	assert.Equal(t, 8.0, s.At(0, 1))

	m := a.MulScalar(3)
	assert.Equal(t, 9.0, m.At(1, 0))

	ci, _ := FromSlice([]complex64{1 + 1i, 2}, Shape{2}, RowMajor)
	cs := ci.MulScalar(2i)
	assert.Equal(t, complex64(-2+2i), cs.At(0))
}
