package lapack

import "github.com/ratik21/nmatrix/internal/kernel"

// Getrs solves A·X = B (or Aᵀ·X = B when trans is true) for an n×n
// matrix previously factorized by Getrf. a and ipiv are the packed
// factors and pivot vector from Getrf; b holds the n×nrhs right-hand
// side in column-major order with leading dimension ldb and is
// overwritten with the solution. Every right-hand-side column is solved
// against the same factorization.
//
// The forward path applies the recorded row interchanges to b, then
// forward-substitutes against the unit-lower factor and
// back-substitutes against the upper factor. The transposed path runs
// the mirror image: Uᵀ then Lᵀ, with the interchanges undone last.
func Getrs[T kernel.Numeric](trans bool, n, nrhs int, a []T, lda int, ipiv []int, b []T, ldb int) (info int) {
	switch {
	case n < 0:
		return -2
	case nrhs < 0:
		return -3
	case lda < max(1, n):
		return -5
	case len(ipiv) < n:
		return -6
	case ldb < max(1, n):
		return -8
	}
	if n == 0 || nrhs == 0 {
		return 0
	}

	if !trans {
		Laswp(nrhs, b, ldb, 0, n, ipiv, 1)
		for j := 0; j < nrhs; j++ {
			col := b[j*ldb:]
			// L·y = P·b, unit diagonal.
			for i := 0; i < n; i++ {
				s := col[i]
				for c := 0; c < i; c++ {
					s -= a[i+c*lda] * col[c]
				}
				col[i] = s
			}
			// U·x = y.
			for i := n - 1; i >= 0; i-- {
				s := col[i]
				for c := i + 1; c < n; c++ {
					s -= a[i+c*lda] * col[c]
				}
				col[i] = s / a[i+i*lda]
			}
		}
		return 0
	}

	for j := 0; j < nrhs; j++ {
		col := b[j*ldb:]
		// Uᵀ·y = b, lower triangular with division.
		for i := 0; i < n; i++ {
			s := col[i]
			for c := 0; c < i; c++ {
				s -= a[c+i*lda] * col[c]
			}
			col[i] = s / a[i+i*lda]
		}
		// Lᵀ·z = y, unit diagonal.
		for i := n - 1; i >= 0; i-- {
			s := col[i]
			for c := i + 1; c < n; c++ {
				s -= a[c+i*lda] * col[c]
			}
			col[i] = s
		}
	}
	// Undo the row interchanges on the solution.
	Laswp(nrhs, b, ldb, 0, n, ipiv, -1)
	return 0
}
