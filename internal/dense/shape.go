// Package dense provides dense, typed matrix storage with explicit
// shape, stride and storage-order semantics, and the LU-family
// operations built on top of it.
package dense

import "fmt"

// StorageOrder selects the memory layout of a matrix.
type StorageOrder int

// Supported storage orders.
const (
	RowMajor StorageOrder = iota
	ColMajor
)

// String returns a human-readable name for the storage order.
func (o StorageOrder) String() string {
	if o == ColMajor {
		return "col-major"
	}
	return "row-major"
}

// Shape represents the dimensions of a matrix.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has rank >= 1 and positive dimensions.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: rank 0", ErrShape)
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d", ErrShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides calculates contiguous strides for the shape in the given
// storage order. Row-major: stride[i] = product of dimensions after i.
// Column-major: stride[i] = product of dimensions before i.
func (s Shape) Strides(order StorageOrder) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	if order == RowMajor {
		strides[len(s)-1] = 1
		for i := len(s) - 2; i >= 0; i-- {
			strides[i] = strides[i+1] * s[i+1]
		}
	} else {
		strides[0] = 1
		for i := 1; i < len(s); i++ {
			strides[i] = strides[i-1] * s[i-1]
		}
	}
	return strides
}
