package model

import "sync"

// GridPool recycles cell buffers between generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]Cell)
			},
		},
	}
}

// Get retrieves a buffer of exactly size cells, contents unspecified
func (p *GridPool) Get(size int) []Cell {
	buf := p.pool.Get().(*[]Cell)
	if cap(*buf) < size {
		return make([]Cell, size)
	}
	return (*buf)[:size]
}

// Put returns a buffer to the pool for reuse
func (p *GridPool) Put(buf []Cell) {
	if buf == nil {
		return
	}
	p.pool.Put(&buf)
}

// scratchBuffer takes a buffer from the pool, or allocates one when pool is nil
func scratchBuffer(pool *GridPool, size int) []Cell {
	if pool == nil {
		return make([]Cell, size)
	}
	return pool.Get(size)
}

// bufferToPool returns a buffer to the pool if one is in use
func bufferToPool(buf []Cell, pool *GridPool) {
	if pool == nil {
		return
	}
	pool.Put(buf)
}
