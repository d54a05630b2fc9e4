package dense

import "fmt"

// Axis selects rows or columns for permutation operations.
type Axis int

// Permutable axes.
const (
	AxisRows Axis = iota
	AxisCols
)

// String returns a human-readable axis name.
func (a Axis) String() string {
	if a == AxisCols {
		return "cols"
	}
	return "rows"
}

// Two pivot conventions coexist and must not be conflated:
//
//   - ApplySwaps follows the legacy laswp sequential-swap convention:
//     step i exchanges index i with piv[i]. Entries below i are valid
//     and compose with earlier swaps.
//   - Permute follows the intuitive final-position convention: entry i
//     directly names the source index for destination i. It is a pure
//     relabeling, NOT a sequence of exchanges; for most pivot vectors
//     the two produce different results.
//
// Getrf emits sequential-swap pivots, so reconstructing a factorized
// matrix requires ApplySwaps, never Permute.

// ApplySwapsBang applies sequential swaps along axis, in place. The
// number of applied steps is clamped to min(len(piv), rows, cols);
// trailing pivot entries beyond that are ignored, a leniency inherited
// from legacy laswp callers. piv is not mutated.
//
// Every pivot entry that would be used must lie in [0, axis size);
// otherwise ErrIndexOutOfRange is returned before any element moves.
func (m *Matrix[T]) ApplySwapsBang(axis Axis, piv []int) error {
	steps, err := m.checkPivots(axis, piv, true)
	if err != nil {
		return err
	}
	data := m.Data()
	rs, cs := m.raw.stride[0], m.raw.stride[1]
	for i := 0; i < steps; i++ {
		p := piv[i]
		if p == i {
			continue
		}
		if axis == AxisCols {
			for r := 0; r < m.Rows(); r++ {
				data[r*rs+i*cs], data[r*rs+p*cs] = data[r*rs+p*cs], data[r*rs+i*cs]
			}
		} else {
			for c := 0; c < m.Cols(); c++ {
				data[i*rs+c*cs], data[p*rs+c*cs] = data[p*rs+c*cs], data[i*rs+c*cs]
			}
		}
	}
	return nil
}

// ApplySwaps is the non-mutating variant of ApplySwapsBang.
func (m *Matrix[T]) ApplySwaps(axis Axis, piv []int) (*Matrix[T], error) {
	out := m.Clone()
	if err := out.ApplySwapsBang(axis, piv); err != nil {
		return nil, err
	}
	return out, nil
}

// PermuteBang relabels indices along axis, in place: destination i
// takes the source index positions[i]. Positions beyond len(positions)
// are left untouched. Duplicate sources are permitted (gather
// semantics). positions is not mutated.
func (m *Matrix[T]) PermuteBang(axis Axis, positions []int) error {
	steps, err := m.checkPivots(axis, positions, false)
	if err != nil {
		return err
	}
	data := m.Data()
	rs, cs := m.raw.stride[0], m.raw.stride[1]
	if axis == AxisCols {
		tmp := make([]T, m.Cols())
		for r := 0; r < m.Rows(); r++ {
			for c := 0; c < m.Cols(); c++ {
				tmp[c] = data[r*rs+c*cs]
			}
			for i := 0; i < steps; i++ {
				data[r*rs+i*cs] = tmp[positions[i]]
			}
		}
		return nil
	}
	tmp := make([]T, m.Rows())
	for c := 0; c < m.Cols(); c++ {
		for r := 0; r < m.Rows(); r++ {
			tmp[r] = data[r*rs+c*cs]
		}
		for i := 0; i < steps; i++ {
			data[i*rs+c*cs] = tmp[positions[i]]
		}
	}
	return nil
}

// Permute is the non-mutating variant of PermuteBang.
func (m *Matrix[T]) Permute(axis Axis, positions []int) (*Matrix[T], error) {
	out := m.Clone()
	if err := out.PermuteBang(axis, positions); err != nil {
		return nil, err
	}
	return out, nil
}

// PermuteColumnsBang relabels columns by final position, in place.
func (m *Matrix[T]) PermuteColumnsBang(positions []int) error {
	return m.PermuteBang(AxisCols, positions)
}

// PermuteColumns is the non-mutating variant of PermuteColumnsBang.
func (m *Matrix[T]) PermuteColumns(positions []int) (*Matrix[T], error) {
	return m.Permute(AxisCols, positions)
}

// PermuteRowsBang relabels rows by final position, in place.
func (m *Matrix[T]) PermuteRowsBang(positions []int) error {
	return m.PermuteBang(AxisRows, positions)
}

// PermuteRows is the non-mutating variant of PermuteRowsBang.
func (m *Matrix[T]) PermuteRows(positions []int) (*Matrix[T], error) {
	return m.Permute(AxisRows, positions)
}

// checkPivots validates a pivot vector against the matrix before any
// mutation and returns the number of entries that will be applied.
func (m *Matrix[T]) checkPivots(axis Axis, piv []int, clampOpposite bool) (int, error) {
	if m.raw.Rank() != 2 {
		return 0, fmt.Errorf("%w: permutation requires rank 2, have %d", ErrDimensionMismatch, m.raw.Rank())
	}
	size := m.Cols()
	if axis == AxisRows {
		size = m.Rows()
	}
	steps := min(len(piv), size)
	if clampOpposite {
		steps = min(len(piv), min(m.Rows(), m.Cols()))
	}
	for i := 0; i < steps; i++ {
		if piv[i] < 0 || piv[i] >= size {
			return 0, fmt.Errorf("%w: pivot[%d] = %d, %s size %d", ErrIndexOutOfRange, i, piv[i], axis, size)
		}
	}
	return steps, nil
}
