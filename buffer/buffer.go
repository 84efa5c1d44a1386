package buffer

import "github.com/npillmayer/vstr"

// Buffer is a growable sequence of elements.
//
// Elems returns the current content. The returned slice is valid until the
// next call of a mutating method; clients must not retain it across Grow,
// Resize or Append.
type Buffer[E vstr.Element] interface {
	Len() int
	Cap() int
	Elems() []E
	// Grow makes room for at least n more elements without changing Len.
	Grow(n int)
	// Resize sets the length to n. New elements are set to fill.
	Resize(n int, fill E)
	Append(elems ...E)
	// Release hands the backing store back to its allocator. The buffer is
	// empty afterwards.
	Release()
}

// Slice is a Buffer backed by a Go slice.
type Slice[E vstr.Element] struct {
	elems []E
}

var _ Buffer[byte] = (*Slice[byte])(nil)

// NewSlice creates an empty slice buffer with the given capacity.
func NewSlice[E vstr.Element](capacity int) *Slice[E] {
	if capacity < 0 {
		capacity = 0
	}
	return &Slice[E]{elems: make([]E, 0, capacity)}
}

// Wrap creates a slice buffer taking ownership of elems.
func Wrap[E vstr.Element](elems []E) *Slice[E] {
	return &Slice[E]{elems: elems}
}

func (s *Slice[E]) Len() int   { return len(s.elems) }
func (s *Slice[E]) Cap() int   { return cap(s.elems) }
func (s *Slice[E]) Elems() []E { return s.elems }

func (s *Slice[E]) Grow(n int) {
	s.elems = grow(s.elems, n)
}

func (s *Slice[E]) Resize(n int, fill E) {
	s.elems = resize(s.elems, n, fill)
}

func (s *Slice[E]) Append(elems ...E) {
	s.elems = append(s.elems, elems...)
}

func (s *Slice[E]) Release() {
	s.elems = nil
}

func grow[E vstr.Element](elems []E, n int) []E {
	if n <= cap(elems)-len(elems) {
		return elems
	}
	c := 2 * cap(elems)
	if c < len(elems)+n {
		c = len(elems) + n
	}
	grown := make([]E, len(elems), c)
	copy(grown, elems)
	return grown
}

func resize[E vstr.Element](elems []E, n int, fill E) []E {
	if n <= len(elems) {
		return elems[:n]
	}
	l := len(elems)
	elems = grow(elems, n-l)[:n]
	for i := l; i < n; i++ {
		elems[i] = fill
	}
	return elems
}
