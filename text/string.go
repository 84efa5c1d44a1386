package text

import (
	"fmt"

	"github.com/npillmayer/vstr"
	"github.com/npillmayer/vstr/buffer"
)

// String is an owned, growable, validated buffer.
//
// The zero value is an empty string ready to use. A String must not be
// copied after first use. It is not safe for concurrent mutation.
type String[E vstr.Element, P vstr.Policy[E]] struct {
	buf buffer.Buffer[E]
}

// NewString creates an empty string.
func NewString[E vstr.Element, P vstr.Policy[E]]() *String[E, P] {
	return &String[E, P]{}
}

// StringWithCapacity creates an empty string with room for n elements.
func StringWithCapacity[E vstr.Element, P vstr.Policy[E]](n int) *String[E, P] {
	return &String[E, P]{buf: buffer.NewSlice[E](n)}
}

// StringIn creates a string on top of a buffer, e.g. one borrowed from a
// buffer.Pool. Existing content of buf is discarded.
func StringIn[E vstr.Element, P vstr.Policy[E]](buf buffer.Buffer[E]) *String[E, P] {
	var p P
	buf.Resize(0, p.ZeroTerm())
	return &String[E, P]{buf: buf}
}

// StringFromChars validates buf and takes ownership of it. In case of an
// error, a *vstr.FromCharsError hands buf back.
func StringFromChars[E vstr.Element, P vstr.Policy[E]](buf []E) (*String[E, P], error) {
	var p P
	if err := p.ValidateRange(buf); err != nil {
		tracer().Debugf("text: rejecting %s input: %v", p.Name(), err)
		return nil, &vstr.FromCharsError[E]{Err: err, Chars: buf}
	}
	return &String[E, P]{buf: buffer.Wrap(buf)}, nil
}

// StringFromCharsUnchecked takes ownership of buf without validation.
//
// Precondition: buf is valid for P.
func StringFromCharsUnchecked[E vstr.Element, P vstr.Policy[E]](buf []E) *String[E, P] {
	return &String[E, P]{buf: buffer.Wrap(buf)}
}

// StringFromStr copies s into a new owned string.
func StringFromStr[E vstr.Element, P vstr.Policy[E]](s Str[E, P]) *String[E, P] {
	str := StringWithCapacity[E, P](s.Len())
	str.PushStr(s)
	return str
}

func (s *String[E, P]) store() buffer.Buffer[E] {
	if s.buf == nil {
		s.buf = buffer.NewSlice[E](0)
	}
	return s.buf
}

func (s *String[E, P]) elems() []E {
	if s.buf == nil {
		return nil
	}
	return s.buf.Elems()
}

// Str borrows the content of s. The result is invalidated by the next
// mutation of s.
func (s *String[E, P]) Str() Str[E, P] {
	return Str[E, P]{elems: s.elems()}
}

// Len is the number of elements.
func (s *String[E, P]) Len() int {
	return len(s.elems())
}

// Cap is the number of elements s can hold without growing.
func (s *String[E, P]) Cap() int {
	if s.buf == nil {
		return 0
	}
	return s.buf.Cap()
}

// IsEmpty is true if s holds no elements.
func (s *String[E, P]) IsEmpty() bool {
	return s.Len() == 0
}

// Reserve makes room for at least n more elements.
func (s *String[E, P]) Reserve(n int) {
	s.store().Grow(n)
}

// Push appends scalar r. Invalid scalars are appended as U+FFFD.
// Push panics if P has no codec.
func (s *String[E, P]) Push(r rune) {
	c := codecOf[E, P]()
	buf := s.store()
	n := buf.Len()
	// Reserve space, encode, then shrink to the encoded length. The
	// placeholders keep the reserved tail defined until it is overwritten.
	buf.Resize(n+c.MaxEncodingLen(), c.ZeroTerm())
	w := c.Encode(buf.Elems()[n:], r)
	buf.Resize(n+w, c.ZeroTerm())
}

// PushStr appends other. Concatenation of valid strings of one encoding is
// valid, so other is not re-validated.
func (s *String[E, P]) PushStr(other Str[E, P]) {
	if other.IsEmpty() {
		return
	}
	s.store().Append(other.elems...)
}

// Pop removes the last scalar and returns it. It panics if P has no codec.
func (s *String[E, P]) Pop() (rune, bool) {
	c := codecOf[E, P]()
	elems := s.elems()
	if len(elems) == 0 {
		return 0, false
	}
	r, n := c.DecodeLastUnchecked(elems)
	s.buf.Resize(len(elems)-n, c.ZeroTerm())
	return r, true
}

// Truncate shortens s to n elements. It panics if n is out of range or if
// it cuts a scalar.
func (s *String[E, P]) Truncate(n int) {
	if n == s.Len() {
		return
	}
	head, _ := s.Str().SplitAt(n)
	var p P
	s.buf.Resize(head.Len(), p.ZeroTerm())
}

// Clear removes all content, keeping the capacity.
func (s *String[E, P]) Clear() {
	if s.buf != nil {
		var p P
		s.buf.Resize(0, p.ZeroTerm())
	}
}

// IntoChars hands the content of s over to the caller. s is empty
// afterwards. Content of pooled buffers is copied and the buffer released.
func (s *String[E, P]) IntoChars() []E {
	if s.buf == nil {
		return nil
	}
	var chars []E
	if sl, ok := s.buf.(*buffer.Slice[E]); ok {
		chars = sl.Elems()
	} else {
		chars = append([]E(nil), s.buf.Elems()...)
		s.buf.Release()
	}
	s.buf = nil
	return chars
}

// Release gives the backing store back to its allocator. s is empty
// afterwards and may be re-used.
func (s *String[E, P]) Release() {
	if s.buf != nil {
		s.buf.Release()
	}
}

// Compare compares the contents of s and other, see Str.Compare.
func (s *String[E, P]) Compare(other *String[E, P]) int {
	return s.Str().Compare(other.Str())
}

// Equal is true if s and other hold the same elements.
func (s *String[E, P]) Equal(other *String[E, P]) bool {
	return s.Str().Equal(other.Str())
}

// String converts s to a Go string, see Str.String.
func (s *String[E, P]) String() string {
	return s.Str().String()
}

// Format implements fmt.Formatter, see Str.Format.
func (s *String[E, P]) Format(f fmt.State, verb rune) {
	s.Str().Format(f, verb)
}
