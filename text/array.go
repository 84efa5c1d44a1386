package text

import (
	"fmt"
	"slices"

	"github.com/npillmayer/vstr"
)

// Array is a validated buffer of fixed size. The size is set on
// construction and never changes.
type Array[E vstr.Element, P vstr.Policy[E]] struct {
	elems []E
}

// ArrayFromChars copies buf into an array of size n. It fails with a
// *vstr.LengthError if buf does not have exactly n elements.
func ArrayFromChars[E vstr.Element, P vstr.Policy[E]](n int, buf []E) (Array[E, P], error) {
	if len(buf) != n {
		return Array[E, P]{}, &vstr.LengthError{Got: len(buf), Want: n}
	}
	var p P
	if err := p.ValidateRange(buf); err != nil {
		return Array[E, P]{}, err
	}
	return Array[E, P]{elems: slices.Clone(buf)}, nil
}

// ArrayFromStr copies s into an array of size n. It fails with a
// *vstr.LengthError if s does not have exactly n elements.
func ArrayFromStr[E vstr.Element, P vstr.Policy[E]](n int, s Str[E, P]) (Array[E, P], error) {
	if s.Len() != n {
		return Array[E, P]{}, &vstr.LengthError{Got: s.Len(), Want: n}
	}
	return Array[E, P]{elems: slices.Clone(s.elems)}, nil
}

// Len is the fixed size of a.
func (a Array[E, P]) Len() int {
	return len(a.elems)
}

// Str borrows the content of a.
func (a Array[E, P]) Str() Str[E, P] {
	return Str[E, P]{elems: a.elems}
}

// Elems returns the elements of a. Clients must not modify them in ways
// which break validity.
func (a Array[E, P]) Elems() []E {
	return a.elems
}

func (a Array[E, P]) Compare(other Array[E, P]) int {
	return a.Str().Compare(other.Str())
}

func (a Array[E, P]) Equal(other Array[E, P]) bool {
	return a.Str().Equal(other.Str())
}

func (a Array[E, P]) String() string {
	return a.Str().String()
}

func (a Array[E, P]) Format(f fmt.State, verb rune) {
	a.Str().Format(f, verb)
}
