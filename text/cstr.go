package text

import (
	"fmt"
	"unsafe"

	"github.com/npillmayer/vstr"
)

// CStr is a borrowed, validated slice terminated by exactly one zero
// terminator element, which is its last element.
type CStr[E vstr.Element, P vstr.Policy[E]] struct {
	elems []E // including the terminator, never empty for valid instances
}

// CStrFromChars wraps buf, which has to end in the zero terminator and
// must not contain it anywhere else. The whole of buf, terminator included,
// is validated.
func CStrFromChars[E vstr.Element, P vstr.Policy[E]](buf []E) (CStr[E, P], error) {
	var p P
	n := len(buf)
	if n == 0 || !p.IsZeroTerm(buf[n-1]) {
		return CStr[E, P]{}, vstr.ErrNotTerminated
	}
	if i := indexZero[E, P](buf[:n-1]); i >= 0 {
		return CStr[E, P]{}, fmt.Errorf("%w: at position %d", vstr.ErrInteriorZero, i)
	}
	if err := p.ValidateRange(buf); err != nil {
		tracer().Debugf("text: rejecting %s C string: %v", p.Name(), err)
		return CStr[E, P]{}, err
	}
	return CStr[E, P]{elems: buf}, nil
}

// CStrFromCharsUnchecked wraps buf without any checks.
//
// Precondition: buf is valid for P, ends in the zero terminator and has no
// other zero terminator.
func CStrFromCharsUnchecked[E vstr.Element, P vstr.Policy[E]](buf []E) CStr[E, P] {
	return CStr[E, P]{elems: buf}
}

// SplitCStr splits off a C string from the start of buf, up to and
// including the first zero terminator. It returns the C string and the
// elements following it.
func SplitCStr[E vstr.Element, P vstr.Policy[E]](buf []E) (CStr[E, P], []E, error) {
	i := indexZero[E, P](buf)
	if i < 0 {
		return CStr[E, P]{}, buf, vstr.ErrNotTerminated
	}
	var p P
	if err := p.ValidateRange(buf[:i+1]); err != nil {
		return CStr[E, P]{}, buf, err
	}
	return CStr[E, P]{elems: buf[: i+1 : i+1]}, buf[i+1:], nil
}

// CStrFromRaw wraps a zero terminated buffer given by a pointer to its first
// element, as received from foreign code. No validation takes place.
//
// This is an escape hatch for interoperability, not a general purpose
// constructor. Preconditions: a zero terminator exists in memory starting
// at ptr; the memory up to and including it is valid for P; and it stays
// alive and unmodified for as long as the CStr or anything derived from it
// is in use. Violating any of these is undefined behavior.
func CStrFromRaw[E vstr.Element, P vstr.Policy[E]](ptr *E) CStr[E, P] {
	if ptr == nil {
		panic("text: C string from nil pointer")
	}
	var p P
	n := 0
	for e := ptr; !p.IsZeroTerm(*e); n++ {
		e = (*E)(unsafe.Add(unsafe.Pointer(e), unsafe.Sizeof(*e)))
	}
	tracer().Debugf("text: scanned raw %s C string of length %d", p.Name(), n)
	return CStr[E, P]{elems: unsafe.Slice(ptr, n+1)}
}

// ValidateCStrFromRaw is CStrFromRaw, additionally validating the buffer.
// The preconditions of CStrFromRaw apply, except for validity.
func ValidateCStrFromRaw[E vstr.Element, P vstr.Policy[E]](ptr *E) (CStr[E, P], error) {
	cs := CStrFromRaw[E, P](ptr)
	var p P
	if err := p.ValidateRange(cs.elems); err != nil {
		return CStr[E, P]{}, err
	}
	return cs, nil
}

func indexZero[E vstr.Element, P vstr.Policy[E]](buf []E) int {
	var p P
	for i, e := range buf {
		if p.IsZeroTerm(e) {
			return i
		}
	}
	return -1
}

// Len is the number of elements, not counting the terminator.
func (cs CStr[E, P]) Len() int {
	if len(cs.elems) == 0 {
		return 0
	}
	return len(cs.elems) - 1
}

// IsEmpty is true if cs consists of the terminator only.
func (cs CStr[E, P]) IsEmpty() bool {
	return cs.Len() == 0
}

// Elems returns the elements without the terminator.
func (cs CStr[E, P]) Elems() []E {
	return cs.elems[:cs.Len()]
}

// ElemsWithZero returns the elements including the terminator.
func (cs CStr[E, P]) ElemsWithZero() []E {
	return cs.elems
}

// Ptr returns a pointer to the first element, suitable to be handed to
// foreign code expecting a zero terminated string.
func (cs CStr[E, P]) Ptr() *E {
	return unsafe.SliceData(cs.elems)
}

// AsStr returns the content without the terminator. Cutting off the
// terminator always yields a valid string.
func (cs CStr[E, P]) AsStr() Str[E, P] {
	return Str[E, P]{elems: cs.Elems()}
}

// AsStrWithZero returns the content including the terminator.
func (cs CStr[E, P]) AsStrWithZero() Str[E, P] {
	return Str[E, P]{elems: cs.elems}
}

// Compare compares cs and other, terminators excluded.
func (cs CStr[E, P]) Compare(other CStr[E, P]) int {
	return cs.AsStr().Compare(other.AsStr())
}

func (cs CStr[E, P]) Equal(other CStr[E, P]) bool {
	return cs.Compare(other) == 0
}

// String converts cs to a Go string, without the terminator.
func (cs CStr[E, P]) String() string {
	return cs.AsStr().String()
}

func (cs CStr[E, P]) Format(f fmt.State, verb rune) {
	cs.AsStr().Format(f, verb)
}
