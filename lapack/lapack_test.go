package lapack_test

import (
	"math"
	"testing"

	"github.com/ratik21/nmatrix/lapack"
)

func TestFactorizeAndSolve(t *testing.T) {
	// Column-major [[-2,4,-3],[3,-2,1],[0,-4,3]].
	a := []float64{-2, 3, 0, 4, -2, -4, -3, 1, 3}
	ipiv := make([]int, 3)
	if info := lapack.Getrf(3, 3, a, 3, ipiv); info != 0 {
		t.Fatalf("Getrf info = %d", info)
	}

	b := []float64{-1, 17, -9}
	if info := lapack.Getrs(false, 3, 1, a, 3, ipiv, b, 3); info != 0 {
		t.Fatalf("Getrs info = %d", info)
	}
	for i, want := range []float64{5, -7.5, -13} {
		if math.Abs(b[i]-want) > 1e-12 {
			t.Errorf("x[%d] = %v, want %v", i, b[i], want)
		}
	}
}

func TestInvertRoundTrip(t *testing.T) {
	orig := []float64{1, 2, 3, 4} // column-major [[1,3],[2,4]]
	a := append([]float64(nil), orig...)
	ipiv := make([]int, 2)
	if info := lapack.Getrf(2, 2, a, 2, ipiv); info != 0 {
		t.Fatalf("Getrf info = %d", info)
	}
	if info := lapack.Getri(2, a, 2, ipiv, make([]float64, 2)); info != 0 {
		t.Fatalf("Getri info = %d", info)
	}

	// inv([[1,3],[2,4]]) = [[-2,1.5],[1,-0.5]], column-major.
	want := []float64{-2, 1, 1.5, -0.5}
	for i := range want {
		if math.Abs(a[i]-want[i]) > 1e-14 {
			t.Errorf("inv[%d] = %v, want %v", i, a[i], want[i])
		}
	}
}

func TestLaswpForwarder(t *testing.T) {
	a := []float64{1, 2, 3}
	lapack.Laswp(1, a, 3, 0, 2, []int{2, 1}, 1)
	if a[0] != 3 || a[1] != 2 || a[2] != 1 {
		t.Errorf("Laswp result = %v, want [3 2 1]", a)
	}
}
