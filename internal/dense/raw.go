package dense

import (
	"fmt"
	"unsafe"

	"github.com/ratik21/nmatrix/internal/kernel"
)

// RawMatrix is the low-level matrix representation: a shape, a set of
// strides, a storage-order flag and a reference to a numericBuffer. The
// strides are independent of the logical shape, so padded and
// transposed views are expressible without copying. Every valid index
// tuple maps to exactly one buffer offset via
// offset + Σ index[i]*stride[i].
//
// Sub-views share the owning buffer: mutation through any view is
// visible through all other views of the same buffer. Buffers are not
// safe for concurrent mutation; callers serialize access.
type RawMatrix struct {
	buffer *numericBuffer
	shape  Shape
	stride []int
	dtype  kernel.DataType
	order  StorageOrder
	offset int // element offset of this view's origin
}

// NewRaw allocates a zeroed RawMatrix with contiguous strides in the
// given storage order.
func NewRaw(shape Shape, dtype kernel.DataType, order StorageOrder) (*RawMatrix, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if !dtype.Valid() {
		return nil, fmt.Errorf("%w: dtype tag %d", ErrUnsupportedDType, int(dtype))
	}
	return &RawMatrix{
		buffer: newNumericBuffer(shape.NumElements() * dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.Strides(order),
		dtype:  dtype,
		order:  order,
	}, nil
}

// Shape returns the matrix's shape.
func (r *RawMatrix) Shape() Shape { return r.shape }

// Strides returns the matrix's element strides.
func (r *RawMatrix) Strides() []int { return r.stride }

// DType returns the matrix's data type.
func (r *RawMatrix) DType() kernel.DataType { return r.dtype }

// Order returns the matrix's storage order.
func (r *RawMatrix) Order() StorageOrder { return r.order }

// NumElements returns the number of logical elements.
func (r *RawMatrix) NumElements() int { return r.shape.NumElements() }

// Rank returns the number of dimensions.
func (r *RawMatrix) Rank() int { return len(r.shape) }

// Rows returns the first dimension (row count for rank-2 matrices,
// length for vectors).
func (r *RawMatrix) Rows() int { return r.shape[0] }

// Cols returns the second dimension. Panics for rank-1 views.
func (r *RawMatrix) Cols() int { return r.shape[1] }

// LeadingDim returns the stride of the major axis: the distance in
// elements between consecutive rows (row-major) or columns (col-major).
func (r *RawMatrix) LeadingDim() int {
	if len(r.shape) < 2 {
		return 1
	}
	if r.order == RowMajor {
		return r.stride[0]
	}
	return r.stride[1]
}

// IsContiguous reports whether the view's strides match the packed
// strides for its shape and order.
func (r *RawMatrix) IsContiguous() bool {
	packed := r.shape.Strides(r.order)
	for i := range packed {
		if packed[i] != r.stride[i] {
			return false
		}
	}
	return true
}

// IsUnique returns true if no other view shares this matrix's buffer.
func (r *RawMatrix) IsUnique() bool { return r.buffer.isUnique() }

// Release drops this view's reference to the buffer.
func (r *RawMatrix) Release() { r.buffer.release() }

// Offset maps an index tuple to a flat element offset relative to the
// view's origin. Panics on out-of-bounds indices (programmer error).
func (r *RawMatrix) Offset(indices ...int) int {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, r.shape[i]))
		}
		off += idx * r.stride[i]
	}
	return off
}

// Submatrix returns a rank-2 sub-view starting at (i, j) with the given
// dimensions. The view holds a non-owning reference to the same buffer;
// no elements are copied.
func (r *RawMatrix) Submatrix(i, j, rows, cols int) (*RawMatrix, error) {
	if len(r.shape) != 2 {
		return nil, fmt.Errorf("%w: submatrix requires rank 2, have %d", ErrDimensionMismatch, len(r.shape))
	}
	if i < 0 || j < 0 || rows <= 0 || cols <= 0 || i+rows > r.shape[0] || j+cols > r.shape[1] {
		return nil, fmt.Errorf("%w: submatrix [%d:%d, %d:%d] of %v", ErrIndexOutOfRange, i, i+rows, j, j+cols, r.shape)
	}
	r.buffer.addRef()
	return &RawMatrix{
		buffer: r.buffer,
		shape:  Shape{rows, cols},
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		order:  r.order,
		offset: r.offset + i*r.stride[0] + j*r.stride[1],
	}, nil
}

// TransposeView returns a view with the axes reversed and the storage
// order flipped. No elements are copied.
func (r *RawMatrix) TransposeView() *RawMatrix {
	r.buffer.addRef()
	shape := make(Shape, len(r.shape))
	stride := make([]int, len(r.stride))
	for i := range r.shape {
		shape[i] = r.shape[len(r.shape)-1-i]
		stride[i] = r.stride[len(r.stride)-1-i]
	}
	order := RowMajor
	if r.order == RowMajor {
		order = ColMajor
	}
	return &RawMatrix{
		buffer: r.buffer,
		shape:  shape,
		stride: stride,
		dtype:  r.dtype,
		order:  order,
		offset: r.offset,
	}
}

// Clone creates a deep copy: a fresh exclusively-owned buffer holding
// the view's elements with packed strides.
func (r *RawMatrix) Clone() *RawMatrix {
	out := &RawMatrix{
		buffer: newNumericBuffer(r.NumElements() * r.dtype.Size()),
		shape:  r.shape.Clone(),
		stride: r.shape.Strides(r.order),
		dtype:  r.dtype,
		order:  r.order,
	}
	if r.IsContiguous() {
		size := r.dtype.Size()
		copy(out.buffer.data, r.buffer.data[r.offset*size:(r.offset+r.NumElements())*size])
		return out
	}
	copyStrided(out, r)
	return out
}

// copyStrided copies element bytes one index tuple at a time. dst must
// be contiguous and share dtype, shape and order with src.
func copyStrided(dst, src *RawMatrix) {
	size := src.dtype.Size()
	idx := make([]int, len(src.shape))
	for {
		so, do := src.offset, dst.offset
		for d, ix := range idx {
			so += ix * src.stride[d]
			do += ix * dst.stride[d]
		}
		copy(dst.buffer.data[do*size:(do+1)*size], src.buffer.data[so*size:(so+1)*size])
		d := len(idx) - 1
		for ; d >= 0; d-- {
			idx[d]++
			if idx[d] < src.shape[d] {
				break
			}
			idx[d] = 0
		}
		if d < 0 {
			return
		}
	}
}

// Typed slice accessors. Each interprets the buffer from the view's
// origin to the end of the buffer; index through Offset/Strides. They
// panic on a dtype mismatch: asking a float64 matrix for its int32 data
// is a programmer error, not a runtime condition.

func (r *RawMatrix) tail() ([]byte, int) {
	size := r.dtype.Size()
	data := r.buffer.data[r.offset*size:]
	return data, len(data) / size
}

// AsInt8 interprets the data as []int8.
func (r *RawMatrix) AsInt8() []int8 {
	r.mustBe(kernel.Int8)
	data, n := r.tail()
	return unsafe.Slice((*int8)(unsafe.Pointer(&data[0])), n)
}

// AsInt16 interprets the data as []int16.
func (r *RawMatrix) AsInt16() []int16 {
	r.mustBe(kernel.Int16)
	data, n := r.tail()
	return unsafe.Slice((*int16)(unsafe.Pointer(&data[0])), n)
}

// AsInt32 interprets the data as []int32.
func (r *RawMatrix) AsInt32() []int32 {
	r.mustBe(kernel.Int32)
	data, n := r.tail()
	return unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), n)
}

// AsInt64 interprets the data as []int64.
func (r *RawMatrix) AsInt64() []int64 {
	r.mustBe(kernel.Int64)
	data, n := r.tail()
	return unsafe.Slice((*int64)(unsafe.Pointer(&data[0])), n)
}

// AsByte interprets the data as []uint8.
func (r *RawMatrix) AsByte() []uint8 {
	r.mustBe(kernel.Byte)
	data, _ := r.tail()
	return data
}

// AsFloat32 interprets the data as []float32.
func (r *RawMatrix) AsFloat32() []float32 {
	r.mustBe(kernel.Float32)
	data, n := r.tail()
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), n)
}

// AsFloat64 interprets the data as []float64.
func (r *RawMatrix) AsFloat64() []float64 {
	r.mustBe(kernel.Float64)
	data, n := r.tail()
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), n)
}

// AsComplex64 interprets the data as []complex64.
func (r *RawMatrix) AsComplex64() []complex64 {
	r.mustBe(kernel.Complex64)
	data, n := r.tail()
	return unsafe.Slice((*complex64)(unsafe.Pointer(&data[0])), n)
}

// AsComplex128 interprets the data as []complex128.
func (r *RawMatrix) AsComplex128() []complex128 {
	r.mustBe(kernel.Complex128)
	data, n := r.tail()
	return unsafe.Slice((*complex128)(unsafe.Pointer(&data[0])), n)
}

func (r *RawMatrix) mustBe(dt kernel.DataType) {
	if r.dtype != dt {
		panic(fmt.Sprintf("matrix dtype is %s, not %s", r.dtype, dt))
	}
}

// String returns a human-readable description of the view.
func (r *RawMatrix) String() string {
	return fmt.Sprintf("Matrix[%s]%v %s", r.dtype, r.shape, r.order)
}
