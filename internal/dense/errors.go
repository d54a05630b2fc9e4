package dense

import "errors"

// Package-level sentinel errors. All operations return these sentinels
// (possibly wrapped with fmt.Errorf("...: %w", ...) for context) and
// callers match them with errors.Is. Validation happens before any
// in-place mutation: an operation that returns an error has not touched
// its operands.
var (
	// ErrShape is returned when a requested shape is invalid (empty, or
	// a dimension <= 0) or when a flat value slice does not match the
	// shape's element count.
	ErrShape = errors.New("dense: invalid shape")

	// ErrDimensionMismatch indicates incompatible shapes, strides or
	// leading dimensions between operands.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrIndexOutOfRange indicates a pivot or index argument outside
	// valid bounds.
	ErrIndexOutOfRange = errors.New("dense: index out of range")

	// ErrUnsupportedDType indicates the requested operation has no
	// definition for the matrix's data type.
	ErrUnsupportedDType = errors.New("dense: unsupported dtype")

	// ErrNotImplemented indicates a dtype/storage combination the
	// internal (non-external-library) path does not support. It is a
	// distinct condition so callers can fall back to an external
	// library binding.
	ErrNotImplemented = errors.New("dense: not implemented")

	// ErrSingular is returned by inversion when the factorized matrix
	// has a zero on the packed diagonal. Factorization itself never
	// reports singularity (see Getrf).
	ErrSingular = errors.New("dense: matrix is singular")
)
