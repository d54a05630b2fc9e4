// Package lapack reimplements the LU-decomposition family of routines
// (Getrf, Getrs, Getri, Laswp) from scratch, generically over every
// supported element type, for use when no external optimized
// BLAS/LAPACK library is available.
//
// All routines operate on flat slices in column-major layout with an
// explicit leading dimension, following the CLAPACK argument order.
// Unlike textbook LAPACK, every index is zero-based, including the
// pivot vectors.
//
// Argument errors are reported through a CLAPACK-style info code:
// info == 0 means success and info == -i means the i-th argument was
// invalid. Getrf and Getri additionally use info > 0 (see their docs).
package lapack

import "github.com/ratik21/nmatrix/internal/kernel"

// Laswp performs a series of row interchanges on the matrix a: rows k1
// through k2-1 are each swapped with the row named by the corresponding
// ipiv entry. Pivot values below the current step are valid and produce
// a composed permutation.
//
// a holds an n-column matrix in column-major order with leading
// dimension lda. incx must be 1 to apply the interchanges in forward
// order or -1 to apply them in reverse (undoing a forward application).
func Laswp[T kernel.Numeric](n int, a []T, lda int, k1, k2 int, ipiv []int, incx int) {
	if n == 0 || k1 >= k2 {
		return
	}
	switch incx {
	case 1:
		for i := k1; i < k2; i++ {
			swapRows(n, a, lda, i, ipiv[i])
		}
	case -1:
		for i := k2 - 1; i >= k1; i-- {
			swapRows(n, a, lda, i, ipiv[i])
		}
	}
}

func swapRows[T kernel.Numeric](n int, a []T, lda, i, ip int) {
	if i == ip {
		return
	}
	for c := 0; c < n; c++ {
		a[i+c*lda], a[ip+c*lda] = a[ip+c*lda], a[i+c*lda]
	}
}
