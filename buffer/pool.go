package buffer

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/vstr"
)

// Pool recycles backing stores for buffers of element type E.
//
// Backing stores are created with a minimum capacity. Released buffers are
// cleared and made available to following calls of Buffer. A Pool is
// unbounded; Buffer never blocks.
type Pool[E vstr.Element] struct {
	opool  *pool.ObjectPool
	ctx    context.Context
	minCap int
}

type store[E vstr.Element] struct {
	elems []E
}

// NewPool creates a pool of backing stores with capacity of at least minCap
// elements. If minCap is not positive, the configured default
// (see vstr.Config.PoolMinCap) is used.
func NewPool[E vstr.Element](minCap int) *Pool[E] {
	if minCap <= 0 {
		minCap = vstr.CurrentConfig().PoolMinCap
	}
	p := &Pool[E]{ctx: context.Background(), minCap: minCap}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &store[E]{elems: make([]E, 0, minCap)}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	p.opool = pool.NewObjectPool(p.ctx, factory, config)
	return p
}

// MinCap is the capacity of fresh backing stores.
func (p *Pool[E]) MinCap() int {
	return p.minCap
}

// Buffer borrows an empty buffer from the pool. Releasing the buffer puts
// its backing store back into the pool.
func (p *Pool[E]) Buffer() Buffer[E] {
	o, err := p.opool.BorrowObject(p.ctx)
	if err != nil {
		T().Errorf("buffer pool exhausted: %v", err)
		return NewSlice[E](p.minCap)
	}
	return &pooled[E]{store: o.(*store[E]), pool: p}
}

// Active is the number of borrowed, unreleased backing stores.
func (p *Pool[E]) Active() int {
	return p.opool.GetNumActive()
}

// Idle is the number of backing stores ready to be borrowed.
func (p *Pool[E]) Idle() int {
	return p.opool.GetNumIdle()
}

// Close drops all idle backing stores. Buffers still borrowed stay usable,
// but are not recycled on release.
func (p *Pool[E]) Close() {
	p.opool.Close(p.ctx)
}

// pooled is a Buffer on top of a borrowed store. The store's slice may be
// replaced when growing; the grown slice is what goes back into the pool.
type pooled[E vstr.Element] struct {
	store *store[E]
	pool  *Pool[E]
}

func (b *pooled[E]) Len() int {
	if b.store == nil {
		return 0
	}
	return len(b.store.elems)
}

func (b *pooled[E]) Cap() int {
	if b.store == nil {
		return 0
	}
	return cap(b.store.elems)
}

func (b *pooled[E]) Elems() []E {
	if b.store == nil {
		return nil
	}
	return b.store.elems
}

func (b *pooled[E]) Grow(n int) {
	b.reacquire()
	b.store.elems = grow(b.store.elems, n)
}

func (b *pooled[E]) Resize(n int, fill E) {
	b.reacquire()
	b.store.elems = resize(b.store.elems, n, fill)
}

func (b *pooled[E]) Append(elems ...E) {
	b.reacquire()
	b.store.elems = append(b.store.elems, elems...)
}

func (b *pooled[E]) Release() {
	if b.store == nil {
		return
	}
	s := b.store
	b.store = nil
	s.elems = s.elems[:0]
	if err := b.pool.opool.ReturnObject(b.pool.ctx, s); err != nil {
		T().Debugf("backing store not returned to pool: %v", err)
	}
}

// reacquire makes a released buffer usable again, with a fresh store.
func (b *pooled[E]) reacquire() {
	if b.store != nil {
		return
	}
	o, err := b.pool.opool.BorrowObject(b.pool.ctx)
	if err != nil {
		b.store = &store[E]{elems: make([]E, 0, b.pool.minCap)}
		return
	}
	b.store = o.(*store[E])
}
