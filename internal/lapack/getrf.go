package lapack

import "github.com/ratik21/nmatrix/internal/kernel"

// Getrf computes the LU factorization of the m×n column-major matrix a
// using Gaussian elimination with partial pivoting. On return a is
// overwritten with the packed factors: a unit-diagonal lower factor L
// below the diagonal (the unit diagonal is not stored) and the upper
// factor U on and above it.
//
// ipiv must have length min(m, n) and receives the row interchanges in
// zero-indexed sequential-swap convention: at step i, row i was swapped
// with row ipiv[i]. Apply the same swaps with Laswp to reproduce the
// permutation.
//
// A zero pivot does not abort the factorization: the elimination step
// is skipped, the zero stays on the diagonal of U, and info reports the
// position (one-based) of the first such pivot. info == 0 therefore
// guarantees a nonsingular factorization; callers that need singularity
// detection inspect info or the packed diagonal, no error is raised.
//
// Integer element types use truncating division; exact factors are only
// produced when every elimination step divides evenly, which is the
// caller's responsibility to arrange.
func Getrf[T kernel.Numeric](m, n int, a []T, lda int, ipiv []int) (info int) {
	switch {
	case m < 0:
		return -1
	case n < 0:
		return -2
	case lda < max(1, m):
		return -4
	case len(ipiv) < min(m, n):
		return -5
	}

	k := kernel.For[T]()
	var zero T
	for j := 0; j < min(m, n); j++ {
		// Select the remaining row with the largest magnitude in the
		// active column.
		p := j
		pmax := k.Abs(a[j+j*lda])
		for i := j + 1; i < m; i++ {
			if v := k.Abs(a[i+j*lda]); v > pmax {
				pmax, p = v, i
			}
		}
		ipiv[j] = p

		if pmax == 0 {
			// Singular column: record and move on (best-effort policy).
			if info == 0 {
				info = j + 1
			}
			continue
		}

		if p != j {
			swapRows(n, a, lda, j, p)
		}

		piv := a[j+j*lda]
		for i := j + 1; i < m; i++ {
			a[i+j*lda] /= piv
			lij := a[i+j*lda]
			if lij == zero {
				continue
			}
			for c := j + 1; c < n; c++ {
				a[i+c*lda] -= lij * a[j+c*lda]
			}
		}
	}
	return info
}
