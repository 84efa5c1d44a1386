package utf

import (
	"encoding/binary"
	"errors"
	"slices"
	"testing"
	"testing/quick"
	"unicode/utf16"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vstr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xunicode "golang.org/x/text/encoding/unicode"
)

// surrogateHeavy maps random units so that roughly half of them are surrogates.
func surrogateHeavy(in []uint16) []uint16 {
	out := make([]uint16, len(in))
	for i, u := range in {
		if u&1 == 0 {
			out[i] = surrogateMin + u%0x800
		} else {
			out[i] = u
		}
	}
	return out
}

func TestUTF16Validate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var u UTF16
	for i, x := range []struct {
		in       []uint16
		pos, len int
	}{
		{[]uint16{0xD800}, 0, vstr.Incomplete},
		{[]uint16{'a', 0xDBFF}, 1, vstr.Incomplete},
		{[]uint16{0xDC00}, 0, 1},
		{[]uint16{'a', 0xD800, 'b'}, 1, 1},
		{[]uint16{0xD800, 0xDC00, 0xDC00}, 2, 1},
	} {
		err := u.ValidateRange(x.in)
		var verr *vstr.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%d: expected validation error for %x, is %v", i, x.in, err)
			continue
		}
		if verr.Pos != x.pos || verr.Len != x.len {
			t.Errorf("%d: expected error at %d/%d for %x, is %d/%d", i, x.pos, x.len, x.in, verr.Pos, verr.Len)
		}
	}
	if _, ok := u.ValidateRange([]uint16{0xD800}).(*vstr.ValidationError).ErrorLen(); ok {
		t.Errorf("expected lone high surrogate at end to be incomplete")
	}
	require.NoError(t, u.ValidateRange([]uint16{'a', 0xD83D, 0xDE00, 0xFFFD}))
}

func TestUTF16ValidateReference(t *testing.T) {
	var u UTF16
	f := func(in []uint16) bool {
		buf := surrogateHeavy(in)
		valid := slices.Equal(utf16.Encode(utf16.Decode(buf)), buf)
		return valid == (u.ValidateRange(buf) == nil)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestUTF16Decode(t *testing.T) {
	var u UTF16
	f := func(in []uint16) bool {
		buf := surrogateHeavy(in)
		if len(buf) == 0 {
			return true
		}
		r, size, ok := u.Decode(buf)
		if ok {
			ref := utf16.Decode(buf[:size])
			if len(ref) != 1 || ref[0] != r {
				return false
			}
		} else if !utf16.IsSurrogate(rune(buf[0])) {
			return false
		}
		r, size, ok = u.DecodeLast(buf)
		if ok {
			ref := utf16.Decode(buf[len(buf)-size:])
			return len(ref) == 1 && ref[0] == r
		}
		return utf16.IsSurrogate(rune(buf[len(buf)-1]))
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestUTF16EncodeRoundTrip(t *testing.T) {
	var u UTF16
	buf := make([]uint16, UTF16Max)
	for r := rune(-1); r <= MaxRune+1; r++ {
		n := u.Encode(buf, r)
		if n != u.EncodingLen(r) {
			t.Fatalf("expected encoding length of %#x to be %d, is %d", r, n, u.EncodingLen(r))
		}
		if !ValidScalar(r) {
			if n != 1 || buf[0] != RuneError {
				t.Fatalf("expected invalid scalar %#x to be encoded as U+FFFD", r)
			}
			continue
		}
		if r1, r2 := utf16.EncodeRune(r); r1 != RuneError && (buf[0] != uint16(r1) || buf[1] != uint16(r2)) {
			t.Fatalf("expected %#x to be encoded as surrogates %x %x, is %x", r, r1, r2, buf[:n])
		}
		d, size := u.DecodeUnchecked(buf[:n])
		if d != r || size != n {
			t.Fatalf("expected %#x to decode to itself, is %#x", r, d)
		}
		d, size = u.DecodeLastUnchecked(buf[:n])
		if d != r || size != n {
			t.Fatalf("expected %#x to decode backwards to itself, is %#x", r, d)
		}
	}
}

// TestUTF16Transcoder compares our encoding with the one of x/text.
func TestUTF16Transcoder(t *testing.T) {
	var u UTF16
	enc := xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM).NewEncoder()
	f := func(s string) bool {
		ref, err := enc.Bytes([]byte(s))
		if err != nil {
			return false
		}
		var units []uint16
		buf := make([]uint16, UTF16Max)
		for _, r := range s {
			n := u.Encode(buf, r)
			units = append(units, buf[:n]...)
		}
		le := make([]byte, 2*len(units))
		for i, x := range units {
			binary.LittleEndian.PutUint16(le[2*i:], x)
		}
		return slices.Equal(le, ref)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestUTF16Subrange(t *testing.T) {
	var u UTF16
	f := func(s string) bool {
		buf := utf16.Encode([]rune(s))
		for i := 0; i <= len(buf); i++ {
			left, right := u.ValidateSubrange(buf[:i]), u.ValidateSubrange(buf[i:])
			inPair := i > 0 && i < len(buf) && isLow(buf[i])
			if inPair != (left != nil) || inPair != (right != nil) {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(f, nil))
	err := u.ValidateSubrange([]uint16{'a', 0xD83D})
	assert.Equal(t, 1, err.(*vstr.ValidationError).Pos)
}
