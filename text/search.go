package text

import (
	"fmt"
	"iter"

	"github.com/npillmayer/vstr"
	"github.com/npillmayer/vstr/pattern"
)

// Find returns the first match of p in s.
func (s Str[E, P]) Find(p pattern.Pattern[E]) (pattern.Match, bool) {
	return p.FirstMatch(s.elems, decoderOf[E, P]())
}

// RFind returns the last match of p in s.
func (s Str[E, P]) RFind(p pattern.RevPattern[E]) (pattern.Match, bool) {
	return p.LastMatch(s.elems, decoderOf[E, P]())
}

// Contains is true if p matches somewhere in s.
func (s Str[E, P]) Contains(p pattern.Pattern[E]) bool {
	_, ok := s.Find(p)
	return ok
}

// Matched returns the sub-string spanned by m, which has to be a match
// found in s.
func (s Str[E, P]) Matched(m pattern.Match) Str[E, P] {
	return s.cut(m.Start, m.End)
}

// SplitOnce splits s around the first match of p.
func (s Str[E, P]) SplitOnce(p pattern.Pattern[E]) (before, after Str[E, P], ok bool) {
	m, ok := s.Find(p)
	if !ok {
		return Str[E, P]{}, Str[E, P]{}, false
	}
	return s.cut(0, m.Start), s.cut(m.End, len(s.elems)), true
}

// RSplitOnce splits s around the last match of p.
func (s Str[E, P]) RSplitOnce(p pattern.RevPattern[E]) (before, after Str[E, P], ok bool) {
	m, ok := s.RFind(p)
	if !ok {
		return Str[E, P]{}, Str[E, P]{}, false
	}
	return s.cut(0, m.Start), s.cut(m.End, len(s.elems)), true
}

// cut slices s at boundaries reported by a matcher. Matchers report
// scalar boundaries, so no check is needed, unless sub-range checking is on.
func (s Str[E, P]) cut(from, to int) Str[E, P] {
	if vstr.CheckSubranges() {
		return s.Slice(from, to)
	}
	return s.GetUnchecked(from, to)
}

// Split returns an iterator over the sub-strings of s separated by matches
// of p. If p is a pattern.RevPattern as well, the iterator is double-ended.
func (s Str[E, P]) Split(p pattern.Pattern[E]) *Split[E, P] {
	it := &Split[E, P]{src: s, fwd: p}
	it.back, _ = p.(pattern.RevPattern[E])
	it.reset()
	return it
}

// RSplit is Split, starting from the end of s.
func (s Str[E, P]) RSplit(p pattern.RevPattern[E]) *RSplit[E, P] {
	it := &RSplit[E, P]{}
	it.split = Split[E, P]{src: s, back: p}
	it.split.fwd, _ = p.(pattern.Pattern[E])
	it.split.reset()
	return it
}

// Split iterates over the sub-strings of a string separated by matches of
// a pattern. Each step finds the match next to the current end, yields the
// part between the end and the match, and keeps the rest. When there is no
// further match, the rest is yielded once and iteration ends.
//
// Next and NextBack may be mixed; they consume the same underlying string
// from opposite ends.
type Split[E vstr.Element, P vstr.Policy[E]] struct {
	src  Str[E, P]
	rest Str[E, P]
	fwd  pattern.Pattern[E]
	back pattern.RevPattern[E]
	dec  vstr.Decoder[E]
	done bool
}

func (it *Split[E, P]) reset() {
	it.rest = it.src
	it.dec = decoderOf[E, P]()
	it.done = false
}

// Next returns the next sub-string from the front. It panics if the pattern
// cannot search forward.
func (it *Split[E, P]) Next() (Str[E, P], bool) {
	if it.done {
		return Str[E, P]{}, false
	}
	if it.fwd == nil {
		panic(fmt.Sprintf("text: pattern %T does not search forward", it.back))
	}
	m, ok := it.fwd.FirstMatch(it.rest.elems, it.dec)
	if !ok {
		it.done = true
		return it.rest, true
	}
	part := it.rest.cut(0, m.Start)
	it.rest = it.rest.cut(m.End, it.rest.Len())
	return part, true
}

// NextBack returns the next sub-string from the back. It panics if the
// pattern cannot search backward.
func (it *Split[E, P]) NextBack() (Str[E, P], bool) {
	if it.done {
		return Str[E, P]{}, false
	}
	if it.back == nil {
		panic(fmt.Sprintf("text: pattern %T does not search backward", it.fwd))
	}
	m, ok := it.back.LastMatch(it.rest.elems, it.dec)
	if !ok {
		it.done = true
		return it.rest, true
	}
	part := it.rest.cut(m.End, it.rest.Len())
	it.rest = it.rest.cut(0, m.Start)
	return part, true
}

// Remainder is the part of the string not yet consumed.
func (it *Split[E, P]) Remainder() (Str[E, P], bool) {
	return it.rest, !it.done
}

// All iterates over all sub-strings from the front. Every call starts from
// scratch, independent of the state of it.
func (it *Split[E, P]) All() iter.Seq[Str[E, P]] {
	return func(yield func(Str[E, P]) bool) {
		fresh := Split[E, P]{src: it.src, fwd: it.fwd, back: it.back}
		fresh.reset()
		for part, ok := fresh.Next(); ok; part, ok = fresh.Next() {
			if !yield(part) {
				return
			}
		}
	}
}

// Backward iterates over all sub-strings from the back. Every call starts
// from scratch.
func (it *Split[E, P]) Backward() iter.Seq[Str[E, P]] {
	return func(yield func(Str[E, P]) bool) {
		fresh := Split[E, P]{src: it.src, fwd: it.fwd, back: it.back}
		fresh.reset()
		for part, ok := fresh.NextBack(); ok; part, ok = fresh.NextBack() {
			if !yield(part) {
				return
			}
		}
	}
}

// RSplit is a Split running from the back. Next yields sub-strings from the
// end of the string, NextBack from its start.
type RSplit[E vstr.Element, P vstr.Policy[E]] struct {
	split Split[E, P]
}

func (it *RSplit[E, P]) Next() (Str[E, P], bool)     { return it.split.NextBack() }
func (it *RSplit[E, P]) NextBack() (Str[E, P], bool) { return it.split.Next() }

// All iterates over all sub-strings, starting at the end of the string.
func (it *RSplit[E, P]) All() iter.Seq[Str[E, P]] {
	return it.split.Backward()
}
