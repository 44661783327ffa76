package pool

import "sync"

// BufferPool recycles byte slices used when a View is encoded for its
// commitment, the same way the teacher's ObjectPool recycles big.Int
// slices and curve-point slices: a sync.Pool with a New func that allocates
// a small-capacity slice, and Get/Put helpers that reset length but keep
// capacity.
type BufferPool struct {
	bytes sync.Pool
}

// NewBufferPool creates a BufferPool whose fresh buffers start at the given
// capacity.
func NewBufferPool(defaultCapacity int) *BufferPool {
	return &BufferPool{
		bytes: sync.Pool{
			New: func() interface{} {
				return make([]byte, 0, defaultCapacity)
			},
		},
	}
}

// Get returns a zero-length byte slice with at least the requested capacity.
func (p *BufferPool) Get(capacity int) []byte {
	buf := p.bytes.Get().([]byte)
	if cap(buf) < capacity {
		return make([]byte, 0, capacity)
	}
	return buf[:0]
}

// Put returns a buffer to the pool for reuse.
func (p *BufferPool) Put(buf []byte) {
	if buf != nil {
		p.bytes.Put(buf) //nolint:staticcheck // intentional: pool value is a slice, not a pointer
	}
}

// Default is the package-level buffer pool used by commitment and view
// encoding when no caller-specific pool is threaded through.
var Default = NewBufferPool(256)
