package utf

import (
	"github.com/npillmayer/vstr"
	"github.com/npillmayer/vstr/internal/seal"
)

// UTF16 is the encoding policy for UTF-16 code unit buffers in native
// byte order. Scalars above U+FFFF are encoded as a surrogate pair: a high
// surrogate 0xD800–0xDBFF immediately followed by a low surrogate
// 0xDC00–0xDFFF. Unpaired surrogates are invalid.
type UTF16 struct{}

var _ vstr.Codec[uint16] = UTF16{}

// UTF16Max is the maximum number of code units of an encoded scalar.
const UTF16Max = 2

func isHigh(u uint16) bool { return surrogateMin <= u && u <= highSurrMax }
func isLow(u uint16) bool  { return lowSurrMin <= u && u <= surrogateMax }
func isSurr(u uint16) bool { return surrogateMin <= u && u <= surrogateMax }

func combine(hi, lo uint16) rune {
	return (rune(hi)-surrogateMin)<<10 | (rune(lo) - lowSurrMin) + supplBase
}

func invalid16(pos, length int) error {
	return vstr.NewValidationError("UTF-16", pos, length)
}

// ValidateRange checks surrogate pairing. An unpaired surrogate is reported
// with length 1. A high surrogate as the last unit is reported as incomplete.
func (UTF16) ValidateRange(buf []uint16) error {
	n := len(buf)
	for i := 0; i < n; {
		u := buf[i]
		switch {
		case !isSurr(u):
			i++
		case isLow(u):
			return invalid16(i, 1)
		case i+1 >= n:
			return invalid16(i, vstr.Incomplete)
		case isLow(buf[i+1]):
			i += 2
		default:
			return invalid16(i, 1)
		}
	}
	return nil
}

// ValidateSubrange checks that buf neither starts with a low surrogate nor
// ends with a high surrogate, either of which means a pair has been cut.
//
// Precondition: buf is a sub-range of a valid UTF-16 buffer.
func (UTF16) ValidateSubrange(buf []uint16) error {
	n := len(buf)
	if n == 0 {
		return nil
	}
	if isLow(buf[0]) {
		return invalid16(0, 1)
	}
	if isHigh(buf[n-1]) {
		return invalid16(n-1, vstr.Incomplete)
	}
	return nil
}

// Compare compares code unit by code unit. Note that this is not scalar
// value order for scalars above U+FFFF.
func (UTF16) Compare(a, b []uint16) (int, error) {
	return vstr.CompareUnits(a, b), nil
}

func (UTF16) ZeroTerm() uint16         { return 0 }
func (UTF16) IsZeroTerm(c uint16) bool { return c == 0 }
func (UTF16) EOF() int                 { return vstr.EOF }
func (UTF16) IntoInt(c uint16) int     { return int(c) }
func (UTF16) Infallible() bool         { return false }
func (UTF16) Name() string             { return "UTF-16" }
func (UTF16) Sealed(seal.Token)        {}
func (UTF16) MaxEncodingLen() int      { return UTF16Max }

// Decode decodes the first scalar of buf.
func (UTF16) Decode(buf []uint16) (rune, int, bool) {
	if len(buf) == 0 {
		return RuneError, 0, false
	}
	u := buf[0]
	if !isSurr(u) {
		return rune(u), 1, true
	}
	if isHigh(u) && len(buf) > 1 && isLow(buf[1]) {
		return combine(u, buf[1]), 2, true
	}
	return RuneError, 0, false
}

func (UTF16) DecodeUnchecked(buf []uint16) (rune, int) {
	if u := buf[0]; isHigh(u) {
		return combine(u, buf[1]), 2
	}
	return rune(buf[0]), 1
}

// DecodeLast decodes the last scalar of buf.
func (UTF16) DecodeLast(buf []uint16) (rune, int, bool) {
	n := len(buf)
	if n == 0 {
		return RuneError, 0, false
	}
	u := buf[n-1]
	if !isSurr(u) {
		return rune(u), 1, true
	}
	if isLow(u) && n > 1 && isHigh(buf[n-2]) {
		return combine(buf[n-2], u), 2, true
	}
	return RuneError, 0, false
}

func (UTF16) DecodeLastUnchecked(buf []uint16) (rune, int) {
	n := len(buf)
	if u := buf[n-1]; isLow(u) {
		return combine(buf[n-2], u), 2
	}
	return rune(buf[n-1]), 1
}

// Encode writes r as one code unit or as a surrogate pair. Invalid scalars
// are encoded as RuneError.
func (UTF16) Encode(buf []uint16, r rune) int {
	if !ValidScalar(r) {
		r = RuneError
	}
	if r < supplBase {
		buf[0] = uint16(r)
		return 1
	}
	_ = buf[1]
	r -= supplBase
	buf[0] = surrogateMin + uint16(r>>10)&0x3FF
	buf[1] = lowSurrMin + uint16(r)&0x3FF
	return 2
}

// EncodingLen is 1 for scalars of the Basic Multilingual Plane and for
// invalid scalars, 2 otherwise.
func (UTF16) EncodingLen(r rune) int {
	if r >= supplBase && r <= MaxRune {
		return 2
	}
	return 1
}
