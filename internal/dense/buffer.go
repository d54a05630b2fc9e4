package dense

import "sync/atomic"

// numericBuffer is the unit of ownership for matrix contents: a flat,
// contiguous, homogeneously-typed block of storage. It is
// reference-counted so sub-views can hold non-owning references; the
// buffer is owned by exactly one root matrix plus whatever views it has
// explicitly handed out.
type numericBuffer struct {
	data     []byte
	refCount atomic.Int32
}

// newNumericBuffer creates a zeroed buffer with refCount = 1.
func newNumericBuffer(size int) *numericBuffer {
	buf := &numericBuffer{data: make([]byte, size)}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for sub-view creation).
func (nb *numericBuffer) addRef() {
	nb.refCount.Add(1)
}

// release decrements the reference count and drops the storage when it
// reaches zero.
func (nb *numericBuffer) release() {
	if nb.refCount.Add(-1) == 0 {
		nb.data = nil
	}
}

// isUnique returns true if no sub-views share this buffer.
func (nb *numericBuffer) isUnique() bool {
	return nb.refCount.Load() == 1
}
