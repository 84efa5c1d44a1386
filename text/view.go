package text

import (
	"unsafe"

	"github.com/npillmayer/vstr"
)

// View denotes a validated range by a pointer to its first element and a
// length. Its lifetime is not tracked: the memory it refers to may be
// foreign memory, and keeping it alive and unmodified is the caller's
// responsibility. Views are useful to store references to strings in
// structures which do not want to hold slices, e.g. when interacting with
// foreign code.
type View[E vstr.Element, P vstr.Policy[E]] struct {
	begin *E
	n     int
}

// ViewOf creates a view of s.
func ViewOf[E vstr.Element, P vstr.Policy[E]](s Str[E, P]) View[E, P] {
	return View[E, P]{begin: unsafe.SliceData(s.elems), n: len(s.elems)}
}

// ViewFromRawParts creates a view of n elements starting at begin.
//
// Preconditions: the n elements starting at begin are valid memory, are
// valid for P, and stay alive and unmodified while the view is in use.
func ViewFromRawParts[E vstr.Element, P vstr.Policy[E]](begin *E, n int) View[E, P] {
	if n < 0 || begin == nil && n > 0 {
		panic("text: invalid raw parts for view")
	}
	return View[E, P]{begin: begin, n: n}
}

// Len is the number of elements in the view.
func (v View[E, P]) Len() int {
	return v.n
}

// IsEmpty is true for views of length 0.
func (v View[E, P]) IsEmpty() bool {
	return v.n == 0
}

// Ptr returns the pointer to the first element.
func (v View[E, P]) Ptr() *E {
	return v.begin
}

// Str makes the view a Str again. The preconditions of
// ViewFromRawParts have to hold.
func (v View[E, P]) Str() Str[E, P] {
	if v.begin == nil {
		return Str[E, P]{}
	}
	return Str[E, P]{elems: unsafe.Slice(v.begin, v.n)}
}

func (v View[E, P]) String() string {
	return v.Str().String()
}
