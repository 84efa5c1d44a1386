package text

import (
	"fmt"

	"github.com/npillmayer/vstr"
	"github.com/npillmayer/vstr/buffer"
)

// CString is an owned, growable, validated buffer which is always zero
// terminated.
type CString[E vstr.Element, P vstr.Policy[E]] struct {
	s String[E, P] // content including terminator
}

// NewCString copies s and appends a zero terminator. It fails if s contains
// a zero terminator.
func NewCString[E vstr.Element, P vstr.Policy[E]](s Str[E, P]) (*CString[E, P], error) {
	if i := indexZero[E, P](s.elems); i >= 0 {
		return nil, fmt.Errorf("%w: at position %d", vstr.ErrInteriorZero, i)
	}
	var p P
	cs := &CString[E, P]{}
	cs.s.buf = buffer.NewSlice[E](s.Len() + 1)
	cs.s.PushStr(s)
	cs.s.store().Append(p.ZeroTerm())
	return cs, nil
}

// CStr borrows the content of cs.
func (cs *CString[E, P]) CStr() CStr[E, P] {
	if cs.s.Len() == 0 {
		var p P
		cs.s.store().Append(p.ZeroTerm())
	}
	return CStr[E, P]{elems: cs.s.elems()}
}

// AsStr borrows the content of cs without the terminator.
func (cs *CString[E, P]) AsStr() Str[E, P] {
	return cs.CStr().AsStr()
}

// Len is the number of elements, not counting the terminator.
func (cs *CString[E, P]) Len() int {
	return cs.CStr().Len()
}

// PushStr appends s. It fails if s contains a zero terminator.
func (cs *CString[E, P]) PushStr(s Str[E, P]) error {
	if i := indexZero[E, P](s.elems); i >= 0 {
		return fmt.Errorf("%w: at position %d", vstr.ErrInteriorZero, i)
	}
	n := cs.CStr().Len()
	var p P
	cs.s.buf.Resize(n, p.ZeroTerm()) // drop terminator
	cs.s.PushStr(s)
	cs.s.buf.Append(p.ZeroTerm())
	return nil
}

// Push appends scalar r. Pushing the zero scalar fails. Push panics if P
// has no codec.
func (cs *CString[E, P]) Push(r rune) error {
	if r == 0 {
		return vstr.ErrInteriorZero
	}
	n := cs.CStr().Len()
	var p P
	cs.s.buf.Resize(n, p.ZeroTerm())
	cs.s.Push(r)
	cs.s.buf.Append(p.ZeroTerm())
	return nil
}

// IntoChars hands the content, terminator included, over to the caller.
func (cs *CString[E, P]) IntoChars() []E {
	cs.CStr()
	return cs.s.IntoChars()
}

// Release gives the backing store back to its allocator.
func (cs *CString[E, P]) Release() {
	cs.s.Release()
}

func (cs *CString[E, P]) String() string {
	return cs.CStr().String()
}

func (cs *CString[E, P]) Format(f fmt.State, verb rune) {
	cs.CStr().Format(f, verb)
}
