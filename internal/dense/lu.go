package dense

import (
	"fmt"

	"github.com/ratik21/nmatrix/internal/kernel"
	"github.com/ratik21/nmatrix/internal/lapack"
)

// The LU family. The internal routines run the textbook column-major
// algorithm; a row-major matrix is handed to them through the same
// buffer, which the routines see as the column-major transpose. That
// reproduces the legacy convention exactly: for row-major storage the
// factorization pivots COLUMNS (the pivot vector names column
// interchanges, applied with ApplySwaps on AxisCols) and the packed
// row-major view holds a non-unit lower factor and a UNIT-diagonal
// upper factor, the inverse of the textbook unit-lower convention.
// For column-major storage the textbook convention applies unchanged
// (row pivots, unit-lower factor).
//
// Pivot vectors are zero-indexed sequential swaps throughout, which
// differs from 1-indexed textbook LAPACK; callers crossing to external
// bindings must account for the offset.

// GetrfBang factorizes the matrix in place using Gaussian elimination
// with partial pivoting and returns the pivot vector, length
// min(rows, cols).
//
// A zero pivot is NOT an error: the elimination step is skipped,
// leaving a singular packed structure with a zero on the diagonal.
// Callers needing singularity detection inspect the packed diagonal.
func (m *Matrix[T]) GetrfBang() ([]int, error) {
	ld, err := m.luLayout()
	if err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	ipiv := make([]int, min(rows, cols))
	var info int
	if m.Order() == ColMajor {
		info = lapack.Getrf(rows, cols, m.Data(), ld, ipiv)
	} else {
		info = lapack.Getrf(cols, rows, m.Data(), ld, ipiv)
	}
	if info < 0 {
		return nil, fmt.Errorf("%w: getrf argument %d", ErrDimensionMismatch, -info)
	}
	return ipiv, nil
}

// Getrf is the non-mutating variant of GetrfBang: it returns the packed
// factorization and pivot vector, leaving the receiver untouched.
func (m *Matrix[T]) Getrf() (*Matrix[T], []int, error) {
	out := m.Clone()
	ipiv, err := out.GetrfBang()
	if err != nil {
		return nil, nil, err
	}
	return out, ipiv, nil
}

// GetrsBang solves A·X = B (or Aᵀ·X = B when trans is true) in place,
// overwriting b with the solution. The receiver must hold a GetrfBang
// factorization and piv its pivot vector. b may be a vector (rank 1,
// length n) or a matrix (rank 2, n rows); with multiple columns each
// right-hand side is solved independently against the same
// factorization.
func (m *Matrix[T]) GetrsBang(trans bool, piv []int, b *Matrix[T]) error {
	ld, err := m.luLayout()
	if err != nil {
		return err
	}
	n := m.Rows()
	if m.Cols() != n {
		return fmt.Errorf("%w: getrs requires a square factorization, have %v", ErrDimensionMismatch, m.Shape())
	}
	if err := checkLUPivots(piv, n); err != nil {
		return err
	}
	if b.raw.Rank() > 2 || b.raw.Shape()[0] != n {
		return fmt.Errorf("%w: rhs shape %v does not match coefficient order %d", ErrDimensionMismatch, b.Shape(), n)
	}

	aTrans := trans
	if m.Order() == RowMajor {
		// The buffer is the column-major transpose; solving for the
		// row-major matrix means solving the transposed system.
		aTrans = !aTrans
	}
	a := m.Data()

	// Vector, or single-column matrix: solve directly when the n-axis
	// is contiguous, through a bounce buffer otherwise.
	if b.raw.Rank() == 1 || b.Cols() == 1 {
		bd := b.Data()
		if rs := b.raw.stride[0]; rs == 1 {
			lapack.Getrs(aTrans, n, 1, a, ld, piv, bd, n)
			return nil
		}
		solveStrided(aTrans, n, a, ld, piv, bd, b.raw.stride[0], 0)
		return nil
	}

	nrhs := b.Cols()
	bd := b.Data()
	if b.Order() == ColMajor && b.raw.stride[0] == 1 {
		lapack.Getrs(aTrans, n, nrhs, a, ld, piv, bd, b.raw.stride[1])
		return nil
	}
	for j := 0; j < nrhs; j++ {
		solveStrided(aTrans, n, a, ld, piv, bd, b.raw.stride[0], j*b.raw.stride[1])
	}
	return nil
}

// Getrs is the non-mutating variant of GetrsBang: it returns the
// solution as a new matrix and leaves b untouched.
func (m *Matrix[T]) Getrs(trans bool, piv []int, b *Matrix[T]) (*Matrix[T], error) {
	x := b.Clone()
	if err := m.GetrsBang(trans, piv, x); err != nil {
		return nil, err
	}
	return x, nil
}

// solveStrided gathers one right-hand-side column into a contiguous
// bounce buffer, solves, and scatters the solution back.
func solveStrided[T kernel.Numeric](trans bool, n int, a []T, lda int, piv []int, b []T, stride, off int) {
	tmp := make([]T, n)
	for i := 0; i < n; i++ {
		tmp[i] = b[off+i*stride]
	}
	lapack.Getrs(trans, n, 1, a, lda, piv, tmp, n)
	for i := 0; i < n; i++ {
		b[off+i*stride] = tmp[i]
	}
}

// GetriBang computes the inverse in place from a GetrfBang
// factorization and its pivot vector, by inverting the triangular
// factors and un-permuting. Integer dtypes have no internal inverse
// path and return ErrNotImplemented so callers can fall back to an
// external library. A singular factorization returns ErrSingular.
func (m *Matrix[T]) GetriBang(piv []int) error {
	if m.DType().Integer() {
		return fmt.Errorf("%w: getri over %s", ErrNotImplemented, m.DType())
	}
	ld, err := m.luLayout()
	if err != nil {
		return err
	}
	n := m.Rows()
	if m.Cols() != n {
		return fmt.Errorf("%w: getri requires a square factorization, have %v", ErrDimensionMismatch, m.Shape())
	}
	if err := checkLUPivots(piv, n); err != nil {
		return err
	}
	// Inverting commutes with the transpose reinterpretation, so the
	// same call serves both storage orders.
	work := make([]T, n)
	info := lapack.Getri(n, m.Data(), ld, piv, work)
	if info > 0 {
		return fmt.Errorf("%w: zero pivot at position %d", ErrSingular, info-1)
	}
	if info < 0 {
		return fmt.Errorf("%w: getri argument %d", ErrDimensionMismatch, -info)
	}
	return nil
}

// Getri is the non-mutating variant of GetriBang.
func (m *Matrix[T]) Getri(piv []int) (*Matrix[T], error) {
	out := m.Clone()
	if err := out.GetriBang(piv); err != nil {
		return nil, err
	}
	return out, nil
}

// Solve returns x with a·x = b, factorizing a copy of a. Neither
// operand is mutated.
func Solve[T kernel.Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	f, ipiv, err := a.Getrf()
	if err != nil {
		return nil, err
	}
	return f.Getrs(false, ipiv, b)
}

// Invert returns the inverse of a without mutating it. Integer dtypes
// return ErrNotImplemented.
func Invert[T kernel.Numeric](a *Matrix[T]) (*Matrix[T], error) {
	f, ipiv, err := a.Getrf()
	if err != nil {
		return nil, err
	}
	if err := f.GetriBang(ipiv); err != nil {
		return nil, err
	}
	return f, nil
}

// Det returns the determinant via the LU factorization: the product of
// the packed non-unit diagonal, negated once per pivot interchange.
// Integer dtypes return ErrNotImplemented: elimination truncates, so
// an exact integer determinant cannot come from this path.
func Det[T kernel.Numeric](a *Matrix[T]) (T, error) {
	var det T
	if a.DType().Integer() {
		return det, fmt.Errorf("%w: det over %s", ErrNotImplemented, a.DType())
	}
	if a.raw.Rank() != 2 || a.Rows() != a.Cols() {
		return det, fmt.Errorf("%w: det requires a square matrix, have %v", ErrDimensionMismatch, a.Shape())
	}
	f, ipiv, err := a.Getrf()
	if err != nil {
		return det, err
	}
	det = 1
	data := f.Data()
	rs, cs := f.raw.stride[0], f.raw.stride[1]
	for i := 0; i < f.Rows(); i++ {
		det *= data[i*rs+i*cs]
	}
	for i, p := range ipiv {
		if p != i {
			det = -det
		}
	}
	return det, nil
}

// luLayout validates that the matrix is rank 2 with a contiguous minor
// axis and returns the leading dimension for the lapack routines.
func (m *Matrix[T]) luLayout() (int, error) {
	if m.raw.Rank() != 2 {
		return 0, fmt.Errorf("%w: LU routines require rank 2, have %d", ErrDimensionMismatch, m.raw.Rank())
	}
	minor := m.raw.stride[1]
	if m.Order() == ColMajor {
		minor = m.raw.stride[0]
	}
	if minor != 1 {
		return 0, fmt.Errorf("%w: non-unit minor stride %d", ErrDimensionMismatch, minor)
	}
	return m.raw.LeadingDim(), nil
}

// checkLUPivots validates a getrf pivot vector before any mutation.
func checkLUPivots(piv []int, n int) error {
	if len(piv) != n {
		return fmt.Errorf("%w: pivot vector length %d, want %d", ErrDimensionMismatch, len(piv), n)
	}
	for i, p := range piv {
		if p < 0 || p >= n {
			return fmt.Errorf("%w: pivot[%d] = %d outside [0,%d)", ErrIndexOutOfRange, i, p, n)
		}
	}
	return nil
}
