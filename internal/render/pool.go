package render

import "sync"

// BufferPool recycles pixel buffers of one size across repeated renders.
type BufferPool struct {
	pool sync.Pool
	size int
}

func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() interface{} {
				b := make([]byte, size)
				return &b
			},
		},
	}
}

func (p *BufferPool) Size() int { return p.size }

// Get returns a buffer of Size bytes. Its content is left from the previous
// user; renders overwrite every byte.
func (p *BufferPool) Get() []byte {
	return *p.pool.Get().(*[]byte)
}

func (p *BufferPool) Put(b []byte) {
	if len(b) == p.size {
		p.pool.Put(&b)
	}
}
