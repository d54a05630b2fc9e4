// Package lapack exposes the internal LAPACK-compatible LU kernels over
// flat column-major slices: Getrf, Getrs, Getri and Laswp.
//
// These are reimplementations, not bindings: they exist for when no
// external optimized BLAS/LAPACK library is available. Argument order
// follows CLAPACK, with one deliberate difference at every boundary:
// all indices, including the pivot vectors, are ZERO-based, unlike
// 1-indexed textbook LAPACK. Callers bridging to external bindings must
// account for the offset.
//
// Most users want the dense package instead, which maps row-major
// matrices onto these column-major kernels and validates arguments up
// front.
package lapack

import (
	"github.com/ratik21/nmatrix/internal/kernel"
	"github.com/ratik21/nmatrix/internal/lapack"
)

// Numeric is the closed constraint over supported element types.
type Numeric = kernel.Numeric

// Getrf computes an LU factorization with partial pivoting of the m×n
// column-major matrix a, in place. ipiv (length min(m, n)) receives
// zero-indexed sequential-swap pivots. A zero pivot skips the step and
// is reported through info (one-based position of the first zero
// pivot), never as a failure. info < 0 flags argument -info.
func Getrf[T Numeric](m, n int, a []T, lda int, ipiv []int) (info int) {
	return lapack.Getrf(m, n, a, lda, ipiv)
}

// Getrs solves A·X = B (Aᵀ·X = B when trans is true) from a Getrf
// factorization, overwriting the column-major n×nrhs right-hand side b
// with the solution.
func Getrs[T Numeric](trans bool, n, nrhs int, a []T, lda int, ipiv []int, b []T, ldb int) (info int) {
	return lapack.Getrs(trans, n, nrhs, a, lda, ipiv, b, ldb)
}

// Getri computes the inverse from a Getrf factorization, in place.
// work must have length at least n. info > 0 reports a zero diagonal
// entry (singular factorization, no inverse).
func Getri[T Numeric](n int, a []T, lda int, ipiv []int, work []T) (info int) {
	return lapack.Getri(n, a, lda, ipiv, work)
}

// Laswp applies the sequential row interchanges ipiv[k1:k2] to the
// n-column matrix a, forward for incx = 1 and in reverse for incx = -1.
func Laswp[T Numeric](n int, a []T, lda int, k1, k2 int, ipiv []int, incx int) {
	lapack.Laswp(n, a, lda, k1, k2, ipiv, incx)
}
