package utf

import (
	"github.com/npillmayer/vstr"
	"github.com/npillmayer/vstr/internal/seal"
)

// UTF8 is the encoding policy for UTF-8 encoded byte buffers.
//
// A scalar is encoded by 1 to 4 bytes. Lead bytes have the bit patterns
// 0xxxxxxx, 110xxxxx, 1110xxxx or 11110xxx, the latter three followed by
// the appropriate number of continuation bytes 10xxxxxx. Overlong
// encodings, surrogates and values above U+10FFFF are rejected.
type UTF8 struct{}

var _ vstr.Codec[byte] = UTF8{}

// UTF8Max is the maximum number of bytes of a UTF-8 encoded scalar.
const UTF8Max = 4

const (
	tx    = 0x80 // 1000 0000
	t2    = 0xC0 // 1100 0000
	t3    = 0xE0 // 1110 0000
	t4    = 0xF0 // 1111 0000
	maskx = 0x3F // 0011 1111
	mask2 = 0x1F // 0001 1111
	mask3 = 0x0F // 0000 1111
	mask4 = 0x07 // 0000 0111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1
)

func isCont(b byte) bool {
	return b&0xC0 == tx
}

// seqLen is the length of a sequence starting with lead byte b, or 0 if b
// cannot start a sequence. C0 and C1 would only start overlong encodings,
// F5 and above would start sequences beyond U+10FFFF.
func seqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xC2:
		return 0
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF5:
		return 4
	}
	return 0
}

// secondRange is the range valid for the byte following lead byte b0.
// Narrower ranges exclude overlong forms, surrogates and scalars above U+10FFFF.
func secondRange(b0 byte) (lo, hi byte) {
	switch b0 {
	case 0xE0:
		return 0xA0, 0xBF
	case 0xED:
		return 0x80, 0x9F
	case 0xF0:
		return 0x90, 0xBF
	case 0xF4:
		return 0x80, 0x8F
	}
	return 0x80, 0xBF
}

func invalid8(pos, length int) error {
	return vstr.NewValidationError("UTF-8", pos, length)
}

// ValidateRange checks that buf is well-formed UTF-8. In case of an error,
// the position is the length of the longest valid prefix. The length of
// the defective unit is the length of the maximal ill-formed subpart
// starting there, or vstr.Incomplete if buf ends in the middle of an
// otherwise legal sequence.
func (UTF8) ValidateRange(buf []byte) error {
	n := len(buf)
	for i := 0; i < n; {
		b := buf[i]
		if b < 0x80 {
			i++
			continue
		}
		l := seqLen(b)
		if l == 0 {
			return invalid8(i, 1)
		}
		if i+1 >= n {
			return invalid8(i, vstr.Incomplete)
		}
		lo, hi := secondRange(b)
		if c := buf[i+1]; c < lo || c > hi {
			return invalid8(i, 1)
		}
		for k := 2; k < l; k++ {
			if i+k >= n {
				return invalid8(i, vstr.Incomplete)
			}
			if !isCont(buf[i+k]) {
				return invalid8(i, k)
			}
		}
		i += l
	}
	return nil
}

// ValidateSubrange checks that buf does not start with a continuation byte
// and that its last sequence is complete. At most 4 bytes at the end
// of buf are inspected.
//
// Precondition: buf is a sub-range of a valid UTF-8 buffer.
func (UTF8) ValidateSubrange(buf []byte) error {
	n := len(buf)
	if n == 0 {
		return nil
	}
	if isCont(buf[0]) {
		return invalid8(0, 1)
	}
	for k := 1; k <= UTF8Max && k <= n; k++ {
		b := buf[n-k]
		if isCont(b) {
			continue
		}
		l := seqLen(b)
		if l == k {
			return nil
		} else if l > k {
			return invalid8(n-k, vstr.Incomplete)
		}
		return invalid8(n-k+1, 1) // stray continuation bytes
	}
	return invalid8(n-UTF8Max, 1)
}

// Compare compares byte-wise, which for UTF-8 equals scalar value order.
func (UTF8) Compare(a, b []byte) (int, error) {
	return vstr.CompareUnits(a, b), nil
}

func (UTF8) ZeroTerm() byte         { return 0 }
func (UTF8) IsZeroTerm(c byte) bool { return c == 0 }
func (UTF8) EOF() int               { return vstr.EOF }
func (UTF8) IntoInt(c byte) int     { return int(c) }
func (UTF8) Infallible() bool       { return false }
func (UTF8) Name() string           { return "UTF-8" }
func (UTF8) Sealed(seal.Token)      {}
func (UTF8) MaxEncodingLen() int    { return UTF8Max }

// Decode decodes the first scalar of buf. It fails for an empty buffer and
// for any malformed or truncated sequence.
func (UTF8) Decode(buf []byte) (rune, int, bool) {
	n := len(buf)
	if n == 0 {
		return RuneError, 0, false
	}
	b0 := buf[0]
	if b0 < 0x80 {
		return rune(b0), 1, true
	}
	l := seqLen(b0)
	if l == 0 || n < l {
		return RuneError, 0, false
	}
	lo, hi := secondRange(b0)
	b1 := buf[1]
	if b1 < lo || b1 > hi {
		return RuneError, 0, false
	}
	if l == 2 {
		return rune(b0&mask2)<<6 | rune(b1&maskx), 2, true
	}
	b2 := buf[2]
	if !isCont(b2) {
		return RuneError, 0, false
	}
	if l == 3 {
		return rune(b0&mask3)<<12 | rune(b1&maskx)<<6 | rune(b2&maskx), 3, true
	}
	b3 := buf[3]
	if !isCont(b3) {
		return RuneError, 0, false
	}
	return rune(b0&mask4)<<18 | rune(b1&maskx)<<12 | rune(b2&maskx)<<6 | rune(b3&maskx), 4, true
}

// DecodeUnchecked decodes the first scalar of a non-empty, valid buffer.
func (UTF8) DecodeUnchecked(buf []byte) (rune, int) {
	b0 := buf[0]
	switch {
	case b0 < t2:
		return rune(b0), 1
	case b0 < t3:
		return rune(b0&mask2)<<6 | rune(buf[1]&maskx), 2
	case b0 < t4:
		return rune(b0&mask3)<<12 | rune(buf[1]&maskx)<<6 | rune(buf[2]&maskx), 3
	}
	return rune(b0&mask4)<<18 | rune(buf[1]&maskx)<<12 | rune(buf[2]&maskx)<<6 | rune(buf[3]&maskx), 4
}

// DecodeLast decodes the last scalar of buf. It walks backwards over at most
// 3 continuation bytes to find a lead byte, then checks that the length
// implied by the lead byte matches the number of bytes consumed.
func (u UTF8) DecodeLast(buf []byte) (rune, int, bool) {
	n := len(buf)
	if n == 0 {
		return RuneError, 0, false
	}
	if b := buf[n-1]; b < 0x80 {
		return rune(b), 1, true
	}
	lim := n - UTF8Max
	if lim < 0 {
		lim = 0
	}
	start := n - 1
	for start > lim && isCont(buf[start]) {
		start--
	}
	r, size, ok := u.Decode(buf[start:])
	if !ok || start+size != n {
		return RuneError, 0, false
	}
	return r, size, true
}

// DecodeLastUnchecked decodes the last scalar of a non-empty, valid buffer.
func (u UTF8) DecodeLastUnchecked(buf []byte) (rune, int) {
	start := len(buf) - 1
	for start > 0 && isCont(buf[start]) {
		start--
	}
	r, _ := u.DecodeUnchecked(buf[start:])
	return r, len(buf) - start
}

// Encode writes the UTF-8 encoding of r into buf, which must be large
// enough. Invalid scalars are encoded as RuneError.
func (UTF8) Encode(buf []byte, r rune) int {
	switch i := uint32(r); {
	case i <= rune1Max:
		buf[0] = byte(r)
		return 1
	case i <= rune2Max:
		_ = buf[1] // eliminate bounds checks
		buf[0] = t2 | byte(r>>6)
		buf[1] = tx | byte(r)&maskx
		return 2
	case i > MaxRune, surrogateMin <= i && i <= surrogateMax:
		r = RuneError
		fallthrough
	case i <= rune3Max:
		_ = buf[2]
		buf[0] = t3 | byte(r>>12)
		buf[1] = tx | byte(r>>6)&maskx
		buf[2] = tx | byte(r)&maskx
		return 3
	default:
		_ = buf[3]
		buf[0] = t4 | byte(r>>18)
		buf[1] = tx | byte(r>>12)&maskx
		buf[2] = tx | byte(r>>6)&maskx
		buf[3] = tx | byte(r)&maskx
		return 4
	}
}

// EncodingLen is the number of bytes Encode writes for r.
func (UTF8) EncodingLen(r rune) int {
	switch i := uint32(r); {
	case i <= rune1Max:
		return 1
	case i <= rune2Max:
		return 2
	case i > MaxRune, surrogateMin <= i && i <= surrogateMax:
		return 3 // RuneError
	case i <= rune3Max:
		return 3
	}
	return 4
}
