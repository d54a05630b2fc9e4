package dense

import (
	"fmt"

	"github.com/ratik21/nmatrix/internal/kernel"
)

// Zeros creates a matrix filled with zeros.
func Zeros[T kernel.Numeric](shape Shape, order StorageOrder) (*Matrix[T], error) {
	raw, err := NewRaw(shape, kernel.Of[T](), order)
	if err != nil {
		return nil, err
	}
	// Storage is already zero-initialized.
	return &Matrix[T]{raw: raw}, nil
}

// Ones creates a matrix filled with ones.
func Ones[T kernel.Numeric](shape Shape, order StorageOrder) (*Matrix[T], error) {
	return Full[T](shape, 1, order)
}

// Full creates a matrix filled with a specific value.
func Full[T kernel.Numeric](shape Shape, value T, order StorageOrder) (*Matrix[T], error) {
	m, err := Zeros[T](shape, order)
	if err != nil {
		return nil, err
	}
	data := m.Data()
	for i := 0; i < m.raw.NumElements(); i++ {
		data[i] = value
	}
	return m, nil
}

// Eye creates an n×n identity matrix.
func Eye[T kernel.Numeric](n int, order StorageOrder) (*Matrix[T], error) {
	m, err := Zeros[T](Shape{n, n}, order)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.Set(1, i, i)
	}
	return m, nil
}

// FromSlice creates a matrix from a flat ordered value slice. The slice
// is copied into the matrix's buffer in the given storage order, so
// data[0] is element (0,0), and for row-major layout data[1] is element
// (0,1). The slice length must match the shape's element count.
func FromSlice[T kernel.Numeric](data []T, shape Shape, order StorageOrder) (*Matrix[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d",
			ErrShape, shape, shape.NumElements(), len(data))
	}
	m, err := Zeros[T](shape, order)
	if err != nil {
		return nil, err
	}
	copy(m.Data(), data)
	return m, nil
}
