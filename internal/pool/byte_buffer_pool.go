// Package pool backs the heap-enabled convenience writer (buf.GrowableWriter)
// with a sync.Pool of reusable byte buffers using an amortized-growth
// strategy.
package pool

import "sync"

// Default and max-retained sizes for pooled encode buffers. Most
// MessagePack values encoded through the convenience Marshal path are
// small records; DefaultSize covers that case in one allocation, and
// MaxThreshold keeps one outlier from bloating the pool afterward.
const (
	DefaultSize  = 1024      // 1KiB
	MaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is a growable byte slice with an amortized growth strategy.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Reset empties the buffer but retains its allocated memory for reuse.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Grow ensures the buffer can hold at least n more bytes without a
// further reallocation.
//
// Growth strategy:
//   - small buffers (<4x DefaultSize) grow by DefaultSize to minimize
//     the number of reallocations for typical small records
//   - larger buffers grow by 25% of current capacity, to balance memory
//     use against reallocation cost for large records
func (bb *ByteBuffer) Grow(n int) {
	available := cap(bb.B) - len(bb.B)
	if available >= n {
		return
	}

	growBy := DefaultSize
	if cap(bb.B) > 4*DefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Append appends data to the buffer, growing it first if necessary.
func (bb *ByteBuffer) Append(data []byte) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)
}

// AppendString appends s to the buffer, growing it first if necessary.
// Go's append(b []byte, s...) form copies directly from the string's
// backing storage, so this never allocates beyond the Grow itself.
func (bb *ByteBuffer) AppendString(s string) {
	bb.Grow(len(s))
	bb.B = append(bb.B, s...)
}

// bufferPool pools ByteBuffers to minimize allocations across repeated
// Marshal calls.
type bufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

func newBufferPool(defaultSize, maxThreshold int) *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

func (p *bufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

func (p *bufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return // discard overly large buffers rather than retaining them
	}
	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = newBufferPool(DefaultSize, MaxThreshold)

// Get retrieves a ByteBuffer from the default pool.
func Get() *ByteBuffer { return defaultPool.Get() }

// Put returns a ByteBuffer to the default pool.
func Put(bb *ByteBuffer) { defaultPool.Put(bb) }
