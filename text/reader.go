package text

import (
	"errors"
	"io"

	"github.com/npillmayer/vstr"
	"github.com/npillmayer/vstr/utf"
)

var errUnread = errors.New("text: UnreadRune not preceded by ReadRune")

// RuneReader reads the scalars of a validated string. It implements
// io.RuneScanner. The size returned by ReadRune is in elements of the
// string's encoding, not in bytes.
type RuneReader[E vstr.Element, P vstr.Policy[E]] struct {
	s    Str[E, P]
	pos  int
	last int // size of last rune read, or -1
	dec  vstr.Codec[E]
}

var _ io.RuneScanner = (*RuneReader[byte, utf.UTF8])(nil)

// NewRuneReader creates a reader for s. It panics if P has no codec.
func NewRuneReader[E vstr.Element, P vstr.Policy[E]](s Str[E, P]) *RuneReader[E, P] {
	return &RuneReader[E, P]{s: s, last: -1, dec: codecOf[E, P]()}
}

func (rr *RuneReader[E, P]) ReadRune() (r rune, size int, err error) {
	if rr.pos >= rr.s.Len() {
		rr.last = -1
		return 0, 0, io.EOF
	}
	r, size = rr.dec.DecodeUnchecked(rr.s.elems[rr.pos:])
	rr.pos += size
	rr.last = size
	return r, size, nil
}

func (rr *RuneReader[E, P]) UnreadRune() error {
	if rr.last < 0 {
		return errUnread
	}
	rr.pos -= rr.last
	rr.last = -1
	return nil
}

// Offset is the element offset of the next scalar to read.
func (rr *RuneReader[E, P]) Offset() int {
	return rr.pos
}

// Rest is the unread part of the string.
func (rr *RuneReader[E, P]) Rest() Str[E, P] {
	return Str[E, P]{elems: rr.s.elems[rr.pos:]}
}
