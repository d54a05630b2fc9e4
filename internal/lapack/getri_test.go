package lapack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetriGolden2x2(t *testing.T) {
	// Column-major [[1,3],[2,4]], inverse [[-2,1.5],[1,-0.5]].
	a := []float64{1, 2, 3, 4}
	ipiv := factorize(t, 2, a)

	require.Equal(t, 0, Getri(2, a, 2, ipiv, make([]float64, 2)))
	assert.InDelta(t, -2.0, at(a, 2, 0, 0), 1e-14)
	assert.InDelta(t, 1.5, at(a, 2, 0, 1), 1e-14)
	assert.InDelta(t, 1.0, at(a, 2, 1, 0), 1e-14)
	assert.InDelta(t, -0.5, at(a, 2, 1, 1), 1e-14)
}

func TestGetriTimesOriginalIsIdentity(t *testing.T) {
	orig := []float64{4, 3, 8, 9, 5, 1, 2, 7, 6}
	a := append([]float64(nil), orig...)
	ipiv := factorize(t, 3, a)
	require.Equal(t, 0, Getri(3, a, 3, ipiv, make([]float64, 3)))

	// inv(A)·A = I.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += at(a, 3, i, k) * at(orig, 3, k, j)
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, s, 1e-13, "(inv(A)·A)[%d,%d]", i, j)
		}
	}
}

func TestGetriSingular(t *testing.T) {
	a := []float64{1, 2, 2, 4}
	ipiv := make([]int, 2)
	Getrf(2, 2, a, 2, ipiv)

	info := Getri(2, a, 2, ipiv, make([]float64, 2))
	assert.Equal(t, 2, info, "one-based position of the zero diagonal entry")
}

func TestGetriBadArgs(t *testing.T) {
	a := make([]float64, 4)
	ipiv := make([]int, 2)
	assert.Equal(t, -1, Getri(-1, a, 2, ipiv, make([]float64, 2)))
	assert.Equal(t, -3, Getri(2, a, 1, ipiv, make([]float64, 2)))
	assert.Equal(t, -4, Getri(2, a, 2, make([]int, 1), make([]float64, 2)))
	assert.Equal(t, -5, Getri(2, a, 2, ipiv, make([]float64, 1)))
}
