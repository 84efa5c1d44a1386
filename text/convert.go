package text

import (
	"unsafe"

	"github.com/npillmayer/vstr"
	"github.com/npillmayer/vstr/utf"
)

// FromString validates a Go string as UTF-8 and wraps it without copying.
// The elements of the result share memory with s and must never be
// modified.
func FromString(s string) (UTF8Str, error) {
	if len(s) == 0 {
		return UTF8Str{}, nil
	}
	return StrFromChars[byte, utf.UTF8](unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Lit is FromString for string literals and other strings known to be
// valid. It panics if s is not valid UTF-8.
func Lit(s string) UTF8Str {
	str, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return str
}

// FromBytes validates b as UTF-8 and wraps it.
func FromBytes(b []byte) (UTF8Str, error) {
	return StrFromChars[byte, utf.UTF8](b)
}

// U32FromRunes wraps rs as a UTF-32 string, after checking that every rune
// is a valid scalar value.
func U32FromRunes(rs []rune) (U32Str, error) {
	if err := utf.CheckScalars(rs); err != nil {
		return U32Str{}, err
	}
	return StrFromCharsUnchecked[rune, utf.UTF32](rs), nil
}

// NewUTF8String copies a Go string into an owned UTF-8 string, after
// validating it.
func NewUTF8String(s string) (*UTF8String, error) {
	str, err := FromString(s)
	if err != nil {
		return nil, err
	}
	return StringFromStr(str), nil
}

// EncodeString transcodes a Go string into an owned string of encoding P.
// s has to be valid UTF-8. EncodeString panics if P has no codec.
func EncodeString[E vstr.Element, P vstr.Policy[E]](s string) (*String[E, P], error) {
	src, err := FromString(s)
	if err != nil {
		return nil, err
	}
	return Transcode[E, P](src), nil
}

// Transcode converts s into an owned string of encoding P. It panics if
// either of the encodings has no codec.
//
//	u16 := text.Transcode[uint16, utf.UTF16](text.Lit("grüßen"))
func Transcode[E vstr.Element, P vstr.Policy[E], F vstr.Element, Q vstr.Policy[F]](s Str[F, Q]) *String[E, P] {
	c := codecOf[E, P]()
	dst := StringWithCapacity[E, P](s.MinRuneCount() * c.MaxEncodingLen())
	for r := range s.Runes() {
		dst.Push(r)
	}
	return dst
}

// ArrayFromRunes checks rs for valid scalars and copies it into a UTF-32
// array of size n.
func ArrayFromRunes(n int, rs []rune) (Array[rune, utf.UTF32], error) {
	if err := utf.CheckScalars(rs); err != nil {
		return Array[rune, utf.UTF32]{}, err
	}
	return ArrayFromChars[rune, utf.UTF32](n, rs)
}
