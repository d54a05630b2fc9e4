// Package dense provides the public API for dense, typed matrix
// storage and the internal LU-decomposition family.
//
// The package re-exports the core types and operations:
//   - Matrix[T]: type-safe dense matrix over the supported dtypes
//   - RawMatrix: low-level shape/stride/buffer view
//   - Shape, DataType, StorageOrder, Axis: core definitions
//
// Example:
//
//	a, _ := dense.FromSlice([]float64{4, 9, 2, 3, 5, 7, 8, 1, 6}, dense.Shape{3, 3}, dense.RowMajor)
//	f, ipiv, _ := a.Getrf()
//	x, _ := f.Getrs(false, ipiv, b) // solve a·x = b
package dense

import (
	"github.com/ratik21/nmatrix/internal/dense"
	"github.com/ratik21/nmatrix/internal/kernel"
)

// Numeric is the closed constraint over supported element types:
// int8, int16, int32, int64, uint8, float32, float64, complex64,
// complex128.
type Numeric = kernel.Numeric

// DataType represents the runtime dtype tag of a matrix.
type DataType = kernel.DataType

// Data type constants.
const (
	Int8       DataType = kernel.Int8
	Int16      DataType = kernel.Int16
	Int32      DataType = kernel.Int32
	Int64      DataType = kernel.Int64
	Byte       DataType = kernel.Byte
	Float32    DataType = kernel.Float32
	Float64    DataType = kernel.Float64
	Complex64  DataType = kernel.Complex64
	Complex128 DataType = kernel.Complex128
)

// Shape represents the dimensions of a matrix.
type Shape = dense.Shape

// StorageOrder selects row-major or column-major memory layout.
type StorageOrder = dense.StorageOrder

// Storage order constants.
const (
	RowMajor StorageOrder = dense.RowMajor
	ColMajor StorageOrder = dense.ColMajor
)

// Axis selects rows or columns for permutation operations.
type Axis = dense.Axis

// Axis constants.
const (
	AxisRows Axis = dense.AxisRows
	AxisCols Axis = dense.AxisCols
)

// RawMatrix is the low-level matrix representation.
type RawMatrix = dense.RawMatrix

// Matrix is a generic type-safe dense matrix.
type Matrix[T Numeric] = dense.Matrix[T]

// Sentinel errors, matched with errors.Is.
var (
	ErrShape             = dense.ErrShape
	ErrDimensionMismatch = dense.ErrDimensionMismatch
	ErrIndexOutOfRange   = dense.ErrIndexOutOfRange
	ErrUnsupportedDType  = dense.ErrUnsupportedDType
	ErrNotImplemented    = dense.ErrNotImplemented
	ErrSingular          = dense.ErrSingular
)

// New wraps a RawMatrix in a typed Matrix. The raw dtype must match T.
func New[T Numeric](raw *RawMatrix) (*Matrix[T], error) {
	return dense.New[T](raw)
}

// NewRaw allocates a zeroed RawMatrix.
func NewRaw(shape Shape, dtype DataType, order StorageOrder) (*RawMatrix, error) {
	return dense.NewRaw(shape, dtype, order)
}

// Zeros creates a matrix filled with zeros.
func Zeros[T Numeric](shape Shape, order StorageOrder) (*Matrix[T], error) {
	return dense.Zeros[T](shape, order)
}

// Ones creates a matrix filled with ones.
func Ones[T Numeric](shape Shape, order StorageOrder) (*Matrix[T], error) {
	return dense.Ones[T](shape, order)
}

// Full creates a matrix filled with a specific value.
func Full[T Numeric](shape Shape, value T, order StorageOrder) (*Matrix[T], error) {
	return dense.Full[T](shape, value, order)
}

// Eye creates an n×n identity matrix.
func Eye[T Numeric](n int, order StorageOrder) (*Matrix[T], error) {
	return dense.Eye[T](n, order)
}

// FromSlice creates a matrix from a flat ordered value slice whose
// length matches the shape's element count.
func FromSlice[T Numeric](data []T, shape Shape, order StorageOrder) (*Matrix[T], error) {
	return dense.FromSlice(data, shape, order)
}

// Solve returns x with a·x = b. Neither operand is mutated.
func Solve[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return dense.Solve(a, b)
}

// Invert returns the inverse of a without mutating it.
func Invert[T Numeric](a *Matrix[T]) (*Matrix[T], error) {
	return dense.Invert(a)
}

// Det returns the determinant of a via its LU factorization.
func Det[T Numeric](a *Matrix[T]) (T, error) {
	return dense.Det(a)
}
