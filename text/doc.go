/*
Package text provides validated string types over arbitrary encodings.

Every type is parameterized by an element type E and an encoding policy P
(see package vstr). An instance always holds a buffer which is well-formed
for P. This is checked once, on construction; slicing afterwards only
checks the boundaries of the new sub-range.

	Str       borrowed slice of a buffer
	CStr      borrowed slice ending in exactly one zero terminator
	String    owned, growable buffer
	CString   owned, growable, zero terminated buffer
	Array     owned buffer of fixed size
	View      pointer and length, without lifetime tracking

Type aliases exist for common instantiations, e.g. UTF8Str, which is
Str[byte, utf.UTF8], or U16String, which is String[uint16, utf.UTF16].

Construction

Validating constructors return an error wrapping vstr.ErrInvalid. Owning
constructors return a *vstr.FromCharsError, which gives the rejected
buffer back to the caller. Constructors with suffix Unchecked skip
validation. Handing them invalid input breaks the invariant of the type,
with undefined results for every operation on it.

Search

Str offers Find, RFind, SplitOnce, RSplitOnce, Split and RSplit, all taking
matchers from package pattern:

	key, value, ok := line.SplitOnce(pattern.Rune[byte]('='))

Split iterators may be advanced from both ends and iterated repeatedly
with range-over-func.

Aliasing

Go slices alias. Str values handed out by a String share its buffer and
are invalidated by mutations of the String, the same way sub-slices of a Go
slice are. There are no separate mutable variants of slicing operations.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–22 Norbert Pillmayer <norbert@pillmayer.com>

*/
package text

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vstr"
	"github.com/npillmayer/vstr/pattern"
	"github.com/npillmayer/vstr/raw"
	"github.com/npillmayer/vstr/utf"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Common instantiations.
type (
	UTF8Str  = Str[byte, utf.UTF8]
	U16Str   = Str[uint16, utf.UTF16]
	U32Str   = Str[rune, utf.UTF32]
	RawStr   = Str[byte, raw.Raw]
	UTF8CStr = CStr[byte, utf.UTF8]
	U16CStr  = CStr[uint16, utf.UTF16]
	U32CStr  = CStr[rune, utf.UTF32]
	RawCStr  = CStr[byte, raw.Raw]

	UTF8String  = String[byte, utf.UTF8]
	U16String   = String[uint16, utf.UTF16]
	U32String   = String[rune, utf.UTF32]
	RawString   = String[byte, raw.Raw]
	UTF8CString = CString[byte, utf.UTF8]
	U16CString  = CString[uint16, utf.UTF16]
	RawCString  = CString[byte, raw.Raw]
)

// codecOf returns the codec of P, panicking if there is none.
func codecOf[E vstr.Element, P vstr.Policy[E]]() vstr.Codec[E] {
	c, ok := vstr.CodecOf[E, P]()
	if !ok {
		panic(fmt.Sprintf("text: %s: %v", vstr.PolicyOf[E, P]().Name(), vstr.ErrNoCodec))
	}
	return c
}

// decoderOf returns a trusting decoder for P, or nil if P has no codec.
// Instances of the types of this package are valid, so decoding them
// needs no checks.
func decoderOf[E vstr.Element, P vstr.Policy[E]]() vstr.Decoder[E] {
	c, ok := vstr.CodecOf[E, P]()
	if !ok {
		return nil
	}
	return pattern.Trusted[E](c)
}
