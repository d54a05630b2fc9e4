package dense

import (
	"fmt"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/ratik21/nmatrix/internal/kernel"
)

// Element-wise arithmetic. Operands must share shape; the result is a
// fresh matrix in the receiver's storage order. Contiguous float32 and
// float64 matrices go through vek's accelerated slice routines; every
// other dtype or layout takes the generic strided loop.
//
// Division follows Go semantics per dtype: floats produce ±Inf/NaN on a
// zero divisor, integer division truncates and panics on zero.

type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
)

// Add returns m + other element-wise.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	return m.binary(other, opAdd)
}

// Sub returns m - other element-wise.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	return m.binary(other, opSub)
}

// Mul returns the element-wise (Hadamard) product of m and other.
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	return m.binary(other, opMul)
}

// Div returns m / other element-wise.
func (m *Matrix[T]) Div(other *Matrix[T]) (*Matrix[T], error) {
	return m.binary(other, opDiv)
}

func (m *Matrix[T]) binary(other *Matrix[T], op binOp) (*Matrix[T], error) {
	if !m.Shape().Equal(other.Shape()) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrDimensionMismatch, m.Shape(), other.Shape())
	}
	out, err := Zeros[T](m.Shape(), m.Order())
	if err != nil {
		return nil, err
	}
	n := m.raw.NumElements()

	if m.raw.IsContiguous() && other.raw.IsContiguous() && m.Order() == other.Order() {
		var dummy T
		switch any(dummy).(type) {
		case float64:
			a := any(m.Data()).([]float64)[:n]
			b := any(other.Data()).([]float64)[:n]
			dst := any(out.Data()).([]float64)[:n]
			switch op {
			case opAdd:
				vek.Add_Into(dst, a, b)
			case opSub:
				vek.Sub_Into(dst, a, b)
			case opMul:
				vek.Mul_Into(dst, a, b)
			case opDiv:
				vek.Div_Into(dst, a, b)
			}
			return out, nil
		case float32:
			a := any(m.Data()).([]float32)[:n]
			b := any(other.Data()).([]float32)[:n]
			dst := any(out.Data()).([]float32)[:n]
			switch op {
			case opAdd:
				vek32.Add_Into(dst, a, b)
			case opSub:
				vek32.Sub_Into(dst, a, b)
			case opMul:
				vek32.Mul_Into(dst, a, b)
			case opDiv:
				vek32.Div_Into(dst, a, b)
			}
			return out, nil
		}
	}

	f := opFunc[T](op)
	ad, bd, od := m.Data(), other.Data(), out.Data()
	idx := make([]int, len(m.Shape()))
	for {
		od[offsetOf(out.raw, idx)] = f(ad[offsetOf(m.raw, idx)], bd[offsetOf(other.raw, idx)])
		if !nextIndex(idx, m.Shape()) {
			return out, nil
		}
	}
}

func opFunc[T kernel.Numeric](op binOp) func(a, b T) T {
	switch op {
	case opAdd:
		return func(a, b T) T { return a + b }
	case opSub:
		return func(a, b T) T { return a - b }
	case opMul:
		return func(a, b T) T { return a * b }
	default:
		return func(a, b T) T { return a / b }
	}
}

// Neg returns -m element-wise.
func (m *Matrix[T]) Neg() *Matrix[T] {
	out, _ := Zeros[T](m.Shape(), m.Order())
	od, ad := out.Data(), m.Data()
	idx := make([]int, len(m.Shape()))
	for {
		od[offsetOf(out.raw, idx)] = -ad[offsetOf(m.raw, idx)]
		if !nextIndex(idx, m.Shape()) {
			return out
		}
	}
}

// AddScalar returns m with s added to every element.
func (m *Matrix[T]) AddScalar(s T) *Matrix[T] {
	return m.scalar(s, opAdd)
}

// MulScalar returns m with every element multiplied by s.
func (m *Matrix[T]) MulScalar(s T) *Matrix[T] {
	return m.scalar(s, opMul)
}

func (m *Matrix[T]) scalar(s T, op binOp) *Matrix[T] {
	out, _ := Zeros[T](m.Shape(), m.Order())
	n := m.raw.NumElements()

	if m.raw.IsContiguous() {
		var dummy T
		switch any(dummy).(type) {
		case float64:
			a := any(m.Data()).([]float64)[:n]
			dst := any(out.Data()).([]float64)[:n]
			if op == opAdd {
				vek.AddNumber_Into(dst, a, any(s).(float64))
			} else {
				vek.MulNumber_Into(dst, a, any(s).(float64))
			}
			return out
		case float32:
			a := any(m.Data()).([]float32)[:n]
			dst := any(out.Data()).([]float32)[:n]
			if op == opAdd {
				vek32.AddNumber_Into(dst, a, any(s).(float32))
			} else {
				vek32.MulNumber_Into(dst, a, any(s).(float32))
			}
			return out
		}
	}

	f := opFunc[T](op)
	od, ad := out.Data(), m.Data()
	idx := make([]int, len(m.Shape()))
	for {
		od[offsetOf(out.raw, idx)] = f(ad[offsetOf(m.raw, idx)], s)
		if !nextIndex(idx, m.Shape()) {
			return out
		}
	}
}
