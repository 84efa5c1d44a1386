package text

import (
	"fmt"
	"unsafe"

	"github.com/npillmayer/vstr"
)

// Str is a borrowed, validated slice of elements.
//
// The zero value is the empty string. Str values are small and are passed
// by value; copies share the underlying buffer.
type Str[E vstr.Element, P vstr.Policy[E]] struct {
	elems []E
}

// StrFromChars validates buf and wraps it. buf must not be modified while
// the Str is in use.
func StrFromChars[E vstr.Element, P vstr.Policy[E]](buf []E) (Str[E, P], error) {
	var p P
	if err := p.ValidateRange(buf); err != nil {
		tracer().Debugf("text: rejecting %s input: %v", p.Name(), err)
		return Str[E, P]{}, err
	}
	return Str[E, P]{elems: buf}, nil
}

// StrFromCharsUnchecked wraps buf without validation.
//
// Precondition: buf is valid for P. Violating it breaks the invariant of Str.
func StrFromCharsUnchecked[E vstr.Element, P vstr.Policy[E]](buf []E) Str[E, P] {
	return Str[E, P]{elems: buf}
}

// Elems returns the underlying elements. Clients must not modify them in
// ways which break validity.
func (s Str[E, P]) Elems() []E {
	return s.elems
}

// Ptr returns a pointer to the first element, or nil for an empty string
// without backing store.
func (s Str[E, P]) Ptr() *E {
	return unsafe.SliceData(s.elems)
}

// Len is the number of elements (not scalars).
func (s Str[E, P]) Len() int {
	return len(s.elems)
}

// IsEmpty is true for strings of length 0.
func (s Str[E, P]) IsEmpty() bool {
	return len(s.elems) == 0
}

// Get returns the sub-string [from, to), if the indices are in range and
// are scalar boundaries.
func (s Str[E, P]) Get(from, to int) (Str[E, P], bool) {
	if from < 0 || to < from || to > len(s.elems) {
		return Str[E, P]{}, false
	}
	var p P
	sub := s.elems[from:to]
	if err := vstr.ValidateSubrange(p, sub); err != nil {
		return Str[E, P]{}, false
	}
	return Str[E, P]{elems: sub}, true
}

// Slice returns the sub-string [from, to). It panics if the indices are
// out of range or if they cut a scalar.
func (s Str[E, P]) Slice(from, to int) Str[E, P] {
	sub, ok := s.Get(from, to)
	if !ok {
		panic(fmt.Sprintf("text: [%d:%d] is not a valid sub-range of %s string of length %d",
			from, to, policyName[E, P](), len(s.elems)))
	}
	return sub
}

// GetUnchecked returns the sub-string [from, to) without any checks.
//
// Precondition: 0 <= from <= to <= s.Len() and both indices are scalar boundaries.
func (s Str[E, P]) GetUnchecked(from, to int) Str[E, P] {
	return Str[E, P]{elems: s.elems[from:to:to]}
}

// SplitAt splits s at mid. It panics if mid is out of range or cuts a scalar.
func (s Str[E, P]) SplitAt(mid int) (Str[E, P], Str[E, P]) {
	l, r, ok := s.TrySplitAt(mid)
	if !ok {
		panic(fmt.Sprintf("text: cannot split %s string of length %d at %d",
			policyName[E, P](), len(s.elems), mid))
	}
	return l, r
}

// TrySplitAt splits s at mid, if mid is a scalar boundary.
func (s Str[E, P]) TrySplitAt(mid int) (Str[E, P], Str[E, P], bool) {
	if mid < 0 || mid > len(s.elems) {
		return Str[E, P]{}, Str[E, P]{}, false
	}
	var p P
	l, r := s.elems[:mid:mid], s.elems[mid:]
	if vstr.ValidateSubrange(p, l) != nil || vstr.ValidateSubrange(p, r) != nil {
		return Str[E, P]{}, Str[E, P]{}, false
	}
	return Str[E, P]{elems: l}, Str[E, P]{elems: r}, true
}

// Compare compares s with other according to the ordering of P.
// Result is -1, 0 or +1.
func (s Str[E, P]) Compare(other Str[E, P]) int {
	var p P
	c, err := p.Compare(s.elems, other.elems)
	if err != nil {
		panic(err) // no policy of this module fails comparison
	}
	return c
}

// Equal is true if s and other consist of the same elements.
func (s Str[E, P]) Equal(other Str[E, P]) bool {
	return s.Compare(other) == 0
}

// HasPrefix is true if s starts with prefix.
func (s Str[E, P]) HasPrefix(prefix Str[E, P]) bool {
	return len(prefix.elems) <= len(s.elems) &&
		Str[E, P]{elems: s.elems[:len(prefix.elems)]}.Equal(prefix)
}

// HasSuffix is true if s ends with suffix.
func (s Str[E, P]) HasSuffix(suffix Str[E, P]) bool {
	n, m := len(s.elems), len(suffix.elems)
	return m <= n && Str[E, P]{elems: s.elems[n-m:]}.Equal(suffix)
}

// Clone copies s into a new owned string.
func (s Str[E, P]) Clone() *String[E, P] {
	return StringFromStr(s)
}

func policyName[E vstr.Element, P vstr.Policy[E]]() string {
	var p P
	return p.Name()
}
