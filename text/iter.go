package text

import (
	"iter"
	"slices"

	"github.com/npillmayer/vstr"
)

// Elements iterates over the elements of s.
func (s Str[E, P]) Elements() iter.Seq[E] {
	return slices.Values(s.elems)
}

// Runes iterates over the scalars of s. It panics if P has no codec.
func (s Str[E, P]) Runes() iter.Seq[rune] {
	c := codecOf[E, P]()
	return func(yield func(rune) bool) {
		for buf := s.elems; len(buf) > 0; {
			r, n := c.DecodeUnchecked(buf)
			if !yield(r) {
				return
			}
			buf = buf[n:]
		}
	}
}

// RuneIndices iterates over the scalars of s together with their element
// offsets. It panics if P has no codec.
func (s Str[E, P]) RuneIndices() iter.Seq2[int, rune] {
	c := codecOf[E, P]()
	return func(yield func(int, rune) bool) {
		for i := 0; i < len(s.elems); {
			r, n := c.DecodeUnchecked(s.elems[i:])
			if !yield(i, r) {
				return
			}
			i += n
		}
	}
}

// Backward iterates over the scalars of s from the end, together with their
// element offsets. It panics if P has no codec.
func (s Str[E, P]) Backward() iter.Seq2[int, rune] {
	c := codecOf[E, P]()
	return func(yield func(int, rune) bool) {
		for j := len(s.elems); j > 0; {
			r, n := c.DecodeLastUnchecked(s.elems[:j])
			j -= n
			if !yield(j, r) {
				return
			}
		}
	}
}

// RuneCount is the number of scalars in s. It panics if P has no codec.
func (s Str[E, P]) RuneCount() int {
	n := 0
	for range s.Runes() {
		n++
	}
	return n
}

// MinRuneCount is a lower bound for the number of scalars in s, computed
// without decoding. For policies without codec it is the number of elements.
func (s Str[E, P]) MinRuneCount() int {
	c, ok := vstr.CodecOf[E, P]()
	if !ok {
		return len(s.elems)
	}
	m := c.MaxEncodingLen()
	return (len(s.elems) + m - 1) / m
}
