package lapack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Column-major helper: element (i, j) of an m×n matrix lives at
// a[i + j*lda].
func at(a []float64, lda, i, j int) float64 { return a[i+j*lda] }

func TestGetrfGolden3x3(t *testing.T) {
	// Column-major [[4,9,2],[3,5,7],[8,1,6]].
	a := []float64{4, 3, 8, 9, 5, 1, 2, 7, 6}
	ipiv := make([]int, 3)

	info := Getrf(3, 3, a, 3, ipiv)
	require.Equal(t, 0, info)
	assert.Equal(t, []int{2, 2, 2}, ipiv)

	// Packed factors: non-unit upper U on and above the diagonal,
	// unit-lower multipliers below it.
	want := []struct {
		i, j int
		v    float64
	}{
		{0, 0, 8}, {0, 1, 1}, {0, 2, 6},
		{1, 0, 0.5}, {1, 1, 8.5}, {1, 2, -1},
		{2, 0, 0.375}, {2, 1, 37.0 / 68.0}, {2, 2, 90.0 / 17.0},
	}
	for _, w := range want {
		assert.InDelta(t, w.v, at(a, 3, w.i, w.j), 1e-14, "element (%d,%d)", w.i, w.j)
	}
}

func TestGetrfReconstruction(t *testing.T) {
	orig := []float64{4, 3, 8, 9, 5, 1, 2, 7, 6}
	a := append([]float64(nil), orig...)
	ipiv := make([]int, 3)
	require.Equal(t, 0, Getrf(3, 3, a, 3, ipiv))

	// P·A must equal L·U.
	pa := append([]float64(nil), orig...)
	Laswp(3, pa, 3, 0, 3, ipiv, 1)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var lu float64
			for k := 0; k <= min(i, j); k++ {
				l := at(a, 3, i, k)
				if k == i {
					l = 1
				}
				lu += l * at(a, 3, k, j)
			}
			assert.InDelta(t, at(pa, 3, i, j), lu, 1e-14, "(L·U)[%d,%d]", i, j)
		}
	}
}

func TestGetrfRectangular(t *testing.T) {
	// 3×2 column-major [[2,4],[6,8],[4,2]]: pivot length is min(m,n).
	a := []float64{2, 6, 4, 4, 8, 2}
	ipiv := make([]int, 2)
	require.Equal(t, 0, Getrf(3, 2, a, 3, ipiv))
	assert.Equal(t, []int{1, 2}, ipiv)

	// Step 0 swaps rows 0/1 (pivot 6, multipliers 1/3 and 2/3); the
	// step-1 interchange then swaps the stored multipliers too.
	assert.InDelta(t, 6.0, at(a, 3, 0, 0), 1e-14)
	assert.InDelta(t, 2.0/3.0, at(a, 3, 1, 0), 1e-14)
	assert.InDelta(t, 1.0/3.0, at(a, 3, 2, 0), 1e-14)
}

func TestGetrfSingularIsSilent(t *testing.T) {
	// Rank-1 matrix: second pivot is exactly zero. The step is skipped
	// and reported only through info, never as a failure.
	a := []float64{1, 2, 2, 4} // column-major [[1,2],[2,4]]
	ipiv := make([]int, 2)

	info := Getrf(2, 2, a, 2, ipiv)
	assert.Equal(t, 2, info, "one-based position of the zero pivot")
	assert.Equal(t, 2.0, at(a, 2, 0, 0))
	assert.Equal(t, 0.0, at(a, 2, 1, 1), "zero stays on the diagonal for inspection")
}

func TestGetrfIntegerExact(t *testing.T) {
	// Every elimination step divides evenly, so integer factors are
	// exact: column-major [[4,2],[-4,3]], multiplier -4/4 = -1.
	a := []int32{4, -4, 2, 3}
	ipiv := make([]int, 2)
	require.Equal(t, 0, Getrf(2, 2, a, 2, ipiv))
	assert.Equal(t, []int{0, 1}, ipiv)
	assert.Equal(t, []int32{4, -1, 2, 5}, a)
}

func TestGetrfBadArgs(t *testing.T) {
	a := make([]float64, 4)
	assert.Equal(t, -1, Getrf(-1, 2, a, 2, make([]int, 2)))
	assert.Equal(t, -2, Getrf(2, -1, a, 2, make([]int, 2)))
	assert.Equal(t, -4, Getrf(2, 2, a, 1, make([]int, 2)))
	assert.Equal(t, -5, Getrf(2, 2, a, 2, make([]int, 1)))
}
