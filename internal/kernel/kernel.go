package kernel

import (
	"math"
	"math/cmplx"

	"github.com/chewxy/math32"
)

// Kernel is the per-dtype arithmetic capability used by generic numeric
// code. Addition, subtraction, multiplication, division and negation are
// Go's builtin operators for every type in the Numeric set; the kernel
// supplies the pieces that differ per representation: identity values,
// magnitude, and tolerance-aware equality.
//
// Equality semantics: integer dtypes compare exactly (eps is ignored);
// float dtypes compare |a-b| <= eps; complex dtypes compare the real and
// imaginary components independently against eps.
type Kernel[T Numeric] struct {
	Zero T
	One  T

	// Abs returns the magnitude of x as a float64 (modulus for complex
	// dtypes). Used for partial pivot selection.
	Abs func(x T) float64

	// Eq reports whether a and b are equal within eps.
	Eq func(a, b T, eps float64) bool
}

// For builds the kernel for element type T.
func For[T Numeric]() Kernel[T] {
	k := Kernel[T]{One: 1}
	var dummy T
	switch any(dummy).(type) {
	case float32:
		k.Abs = func(x T) float64 {
			return float64(math32.Abs(any(x).(float32)))
		}
		k.Eq = func(a, b T, eps float64) bool {
			return float64(math32.Abs(any(a).(float32)-any(b).(float32))) <= eps
		}
	case float64:
		k.Abs = func(x T) float64 {
			return math.Abs(any(x).(float64))
		}
		k.Eq = func(a, b T, eps float64) bool {
			return math.Abs(any(a).(float64)-any(b).(float64)) <= eps
		}
	case complex64:
		k.Abs = func(x T) float64 {
			c := any(x).(complex64)
			return float64(math32.Hypot(real(c), imag(c)))
		}
		k.Eq = func(a, b T, eps float64) bool {
			d := any(a).(complex64) - any(b).(complex64)
			return float64(math32.Abs(real(d))) <= eps && float64(math32.Abs(imag(d))) <= eps
		}
	case complex128:
		k.Abs = func(x T) float64 {
			return cmplx.Abs(any(x).(complex128))
		}
		k.Eq = func(a, b T, eps float64) bool {
			d := any(a).(complex128) - any(b).(complex128)
			return math.Abs(real(d)) <= eps && math.Abs(imag(d)) <= eps
		}
	case int8:
		k.Abs = func(x T) float64 { return math.Abs(float64(any(x).(int8))) }
		k.Eq = exactEq[T]
	case int16:
		k.Abs = func(x T) float64 { return math.Abs(float64(any(x).(int16))) }
		k.Eq = exactEq[T]
	case int32:
		k.Abs = func(x T) float64 { return math.Abs(float64(any(x).(int32))) }
		k.Eq = exactEq[T]
	case int64:
		k.Abs = func(x T) float64 { return math.Abs(float64(any(x).(int64))) }
		k.Eq = exactEq[T]
	case uint8:
		k.Abs = func(x T) float64 { return float64(any(x).(uint8)) }
		k.Eq = exactEq[T]
	default:
		panic("unsupported element type")
	}
	return k
}

func exactEq[T Numeric](a, b T, _ float64) bool {
	return a == b
}
