// Package kernel provides the dtype tags and per-dtype arithmetic
// primitives shared by the dense storage layer and the linear-algebra
// routines. It is the only place generic numeric code touches concrete
// element representations.
package kernel

// Numeric is the closed constraint over supported element types.
// It uses Go generics to ensure compile-time type safety.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// DataType represents runtime type information for matrix elements.
type DataType int

// Supported element types.
const (
	Int8 DataType = iota
	Int16
	Int32
	Int64
	Byte
	Float32
	Float64
	Complex64
	Complex128
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Byte:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Byte:
		return "byte"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// Valid reports whether dt is one of the supported data types. Tags
// arrive from callers at runtime, so they are checked, not trusted.
func (dt DataType) Valid() bool {
	return dt >= Int8 && dt <= Complex128
}

// Integer reports whether the data type stores integers. Integer dtypes
// use exact comparison and truncating division.
func (dt DataType) Integer() bool {
	switch dt {
	case Int8, Int16, Int32, Int64, Byte:
		return true
	default:
		return false
	}
}

// Complex reports whether the data type stores complex values.
func (dt DataType) Complex() bool {
	return dt == Complex64 || dt == Complex128
}

// Of infers the DataType for a generic element type T.
func Of[T Numeric]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Byte
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		panic("unsupported element type")
	}
}
