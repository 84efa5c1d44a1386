package utf

import (
	"github.com/npillmayer/vstr"
	"github.com/npillmayer/vstr/internal/seal"
)

// UTF32 is the encoding policy for buffers of scalar values. Every element
// is one scalar, so validation never fails and sub-ranges are always valid.
//
// Runes entering a UTF-32 string from the outside must be checked with
// CheckScalars. Decoding trusts that this has happened.
type UTF32 struct{}

var _ vstr.Codec[rune] = UTF32{}

func (UTF32) ValidateRange([]rune) error    { return nil }
func (UTF32) ValidateSubrange([]rune) error { return nil }

// Compare compares rune by rune, which is scalar value order.
func (UTF32) Compare(a, b []rune) (int, error) {
	return vstr.CompareUnits(a, b), nil
}

func (UTF32) ZeroTerm() rune         { return 0 }
func (UTF32) IsZeroTerm(c rune) bool { return c == 0 }
func (UTF32) EOF() int               { return vstr.EOF }
func (UTF32) IntoInt(c rune) int     { return int(c) }
func (UTF32) Infallible() bool       { return true }
func (UTF32) Name() string           { return "UTF-32" }
func (UTF32) Sealed(seal.Token)      {}
func (UTF32) MaxEncodingLen() int    { return 1 }
func (UTF32) EncodingLen(rune) int   { return 1 }

func (UTF32) Decode(buf []rune) (rune, int, bool) {
	if len(buf) == 0 {
		return RuneError, 0, false
	}
	return buf[0], 1, true
}

func (UTF32) DecodeUnchecked(buf []rune) (rune, int) {
	return buf[0], 1
}

func (UTF32) DecodeLast(buf []rune) (rune, int, bool) {
	if len(buf) == 0 {
		return RuneError, 0, false
	}
	return buf[len(buf)-1], 1, true
}

func (UTF32) DecodeLastUnchecked(buf []rune) (rune, int) {
	return buf[len(buf)-1], 1
}

// Encode stores r, replacing invalid scalars by RuneError.
func (UTF32) Encode(buf []rune, r rune) int {
	if !ValidScalar(r) {
		r = RuneError
	}
	buf[0] = r
	return 1
}
