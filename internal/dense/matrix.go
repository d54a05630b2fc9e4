package dense

import (
	"fmt"

	"github.com/ratik21/nmatrix/internal/kernel"
)

// Matrix is a generic, type-safe wrapper over a RawMatrix. T is the
// element type; the wrapper guarantees at compile time that typed
// accessors and arithmetic agree with the runtime dtype tag.
type Matrix[T kernel.Numeric] struct {
	raw *RawMatrix
}

// New wraps a RawMatrix in a typed Matrix. The raw dtype must match T.
func New[T kernel.Numeric](raw *RawMatrix) (*Matrix[T], error) {
	if want := kernel.Of[T](); raw.DType() != want {
		return nil, fmt.Errorf("%w: raw dtype %s, want %s", ErrUnsupportedDType, raw.DType(), want)
	}
	return &Matrix[T]{raw: raw}, nil
}

// Raw returns the underlying RawMatrix.
func (m *Matrix[T]) Raw() *RawMatrix { return m.raw }

// Shape returns the matrix's shape.
func (m *Matrix[T]) Shape() Shape { return m.raw.Shape() }

// DType returns the matrix's data type.
func (m *Matrix[T]) DType() kernel.DataType { return m.raw.DType() }

// Order returns the matrix's storage order.
func (m *Matrix[T]) Order() StorageOrder { return m.raw.Order() }

// Rows returns the first dimension.
func (m *Matrix[T]) Rows() int { return m.raw.Rows() }

// Cols returns the second dimension. Panics for rank-1 views.
func (m *Matrix[T]) Cols() int { return m.raw.Cols() }

// Data returns a typed slice over the matrix's storage, from the view's
// origin to the end of the buffer (zero-copy). Modifications through
// the slice modify the matrix and every view sharing its buffer.
func (m *Matrix[T]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case int8:
		return any(m.raw.AsInt8()).([]T)
	case int16:
		return any(m.raw.AsInt16()).([]T)
	case int32:
		return any(m.raw.AsInt32()).([]T)
	case int64:
		return any(m.raw.AsInt64()).([]T)
	case uint8:
		return any(m.raw.AsByte()).([]T)
	case float32:
		return any(m.raw.AsFloat32()).([]T)
	case float64:
		return any(m.raw.AsFloat64()).([]T)
	case complex64:
		return any(m.raw.AsComplex64()).([]T)
	case complex128:
		return any(m.raw.AsComplex128()).([]T)
	default:
		panic("unsupported element type")
	}
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (m *Matrix[T]) At(indices ...int) T {
	return m.Data()[m.raw.Offset(indices...)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (m *Matrix[T]) Set(value T, indices ...int) {
	m.Data()[m.raw.Offset(indices...)] = value
}

// Clone creates a deep copy with a fresh exclusively-owned buffer.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{raw: m.raw.Clone()}
}

// Transpose returns a transposed view sharing this matrix's buffer.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	return &Matrix[T]{raw: m.raw.TransposeView()}
}

// Submatrix returns a sub-view sharing this matrix's buffer.
func (m *Matrix[T]) Submatrix(i, j, rows, cols int) (*Matrix[T], error) {
	raw, err := m.raw.Submatrix(i, j, rows, cols)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{raw: raw}, nil
}

// EqualApprox reports whether both matrices have the same shape and
// every pair of elements is equal within eps. Integer dtypes compare
// exactly; complex dtypes compare real and imaginary parts
// independently. No default epsilon is assumed: callers supply a
// dtype-appropriate value.
func (m *Matrix[T]) EqualApprox(other *Matrix[T], eps float64) bool {
	if !m.Shape().Equal(other.Shape()) {
		return false
	}
	k := kernel.For[T]()
	ad, bd := m.Data(), other.Data()
	idx := make([]int, len(m.Shape()))
	for {
		if !k.Eq(ad[offsetOf(m.raw, idx)], bd[offsetOf(other.raw, idx)], eps) {
			return false
		}
		if !nextIndex(idx, m.Shape()) {
			return true
		}
	}
}

func offsetOf(r *RawMatrix, idx []int) int {
	off := 0
	for d, ix := range idx {
		off += ix * r.stride[d]
	}
	return off
}

// nextIndex advances idx through shape in odometer order; false at end.
func nextIndex(idx []int, shape Shape) bool {
	for d := len(idx) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < shape[d] {
			return true
		}
		idx[d] = 0
	}
	return false
}

// String returns a human-readable description of the matrix.
func (m *Matrix[T]) String() string {
	return m.raw.String()
}
