package lapack

import "github.com/ratik21/nmatrix/internal/kernel"

// Getri computes the inverse of an n×n matrix from its Getrf
// factorization, in place: it inverts the upper factor, solves for the
// full inverse against the unit-lower factor, then applies the recorded
// interchanges to the columns in reverse order.
//
// work must have length at least n. A zero on the packed diagonal means
// the factorized matrix is singular and no inverse exists; info reports
// its one-based position and a is left partially overwritten.
func Getri[T kernel.Numeric](n int, a []T, lda int, ipiv []int, work []T) (info int) {
	switch {
	case n < 0:
		return -1
	case lda < max(1, n):
		return -3
	case len(ipiv) < n:
		return -4
	case len(work) < n:
		return -5
	}

	var zero T
	var one T = 1

	// Invert the upper factor in place.
	for j := 0; j < n; j++ {
		if a[j+j*lda] == zero {
			return j + 1
		}
		a[j+j*lda] = one / a[j+j*lda]
		ajj := -a[j+j*lda]
		// Column above the diagonal: x := U11⁻¹ · x, then scale.
		for i := 0; i < j; i++ {
			s := a[i+i*lda] * a[i+j*lda]
			for c := i + 1; c < j; c++ {
				s += a[i+c*lda] * a[c+j*lda]
			}
			a[i+j*lda] = s
		}
		for i := 0; i < j; i++ {
			a[i+j*lda] *= ajj
		}
	}

	// Solve inv(A)·L = inv(U), right to left, buffering each column's
	// multipliers so they can be zeroed before the update.
	for j := n - 1; j >= 0; j-- {
		for i := j + 1; i < n; i++ {
			work[i] = a[i+j*lda]
			a[i+j*lda] = zero
		}
		for c := j + 1; c < n; c++ {
			w := work[c]
			if w == zero {
				continue
			}
			for i := 0; i < n; i++ {
				a[i+j*lda] -= a[i+c*lda] * w
			}
		}
	}

	// Un-permute the columns.
	for j := n - 1; j >= 0; j-- {
		if jp := ipiv[j]; jp != j {
			for i := 0; i < n; i++ {
				a[i+j*lda], a[i+jp*lda] = a[i+jp*lda], a[i+j*lda]
			}
		}
	}
	return 0
}
