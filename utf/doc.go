/*
Package utf provides the Unicode encoding policies UTF-8, UTF-16 and UTF-32.

Each policy validates buffers of its element type, checks sub-ranges of
validated buffers at their boundaries only, and decodes and encodes scalar
values in both directions. All three implement vstr.Codec.

	UTF8    []byte     1–4 bytes per scalar
	UTF16   []uint16   1–2 code units per scalar (surrogate pairs)
	UTF32   []rune     1 rune per scalar

UTF-32 validation never fails. Buffers of runes are expected to contain
valid scalar values only; this is checked at the point where runes enter
the system (see CheckScalars), not by the policy.

Orderings

All policies compare buffers unit by unit. For UTF-8 and UTF-32 this is
identical to ordering by scalar values. For UTF-16 it is not: surrogates
(0xD800–0xDFFF) sort below BMP characters from U+E000 upward, even though
they encode scalars above U+FFFF. This is kept for bit-compatibility with
code unit comparison as performed by C and Java. Clients in need of scalar
ordering will find it in package text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–22 Norbert Pillmayer <norbert@pillmayer.com>

*/
package utf

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
