package utf

import (
	"errors"
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vstr"
	"github.com/stretchr/testify/require"
)

func TestUTF8Validate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var u UTF8
	if err := u.ValidateRange([]byte("café")); err != nil {
		t.Errorf("expected 'café' to be valid, is %v", err)
	}
	for i, x := range []struct {
		in       []byte
		pos, len int
	}{
		{[]byte{0xC3, 0x28}, 0, 1},
		{[]byte("ab\xC3"), 2, vstr.Incomplete},
		{[]byte("a\xE2\x82"), 1, vstr.Incomplete},
		{[]byte("a\xE2\x82b"), 1, 2},
		{[]byte("\xF0\x9F\x98"), 0, vstr.Incomplete},
		{[]byte("\xF0\x9F\x98x"), 0, 3},
		{[]byte("x\x80"), 1, 1},
		{[]byte("\xC0\x80"), 0, 1},         // overlong NUL
		{[]byte("\xE0\x80\x80"), 0, 1},     // overlong
		{[]byte("\xED\xA0\x80"), 0, 1},     // surrogate U+D800
		{[]byte("\xF4\x90\x80\x80"), 0, 1}, // above U+10FFFF
		{[]byte("\xF5"), 0, 1},
		{[]byte("\xFF"), 0, 1},
	} {
		err := u.ValidateRange(x.in)
		var verr *vstr.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%d: expected validation error for % x, is %v", i, x.in, err)
			continue
		}
		if verr.FirstErrorPos() != x.pos || verr.Len != x.len {
			t.Errorf("%d: expected error at %d/%d for % x, is %d/%d", i, x.pos, x.len, x.in, verr.Pos, verr.Len)
		}
		if !errors.Is(err, vstr.ErrInvalid) {
			t.Errorf("%d: expected error to match ErrInvalid", i)
		}
	}
}

func TestUTF8ValidateReference(t *testing.T) {
	var u UTF8
	f := func(buf []byte) bool {
		err := u.ValidateRange(buf)
		if utf8.Valid(buf) != (err == nil) {
			return false
		}
		if err != nil {
			pos := err.(*vstr.ValidationError).Pos
			return utf8.Valid(buf[:pos]) && !utf8.Valid(buf[:pos+1])
		}
		return true
	}
	require.NoError(t, quick.Check(f, nil))
	g := func(s string) bool {
		return u.ValidateRange([]byte(s)) == nil
	}
	require.NoError(t, quick.Check(g, nil))
}

func TestUTF8Decode(t *testing.T) {
	var u UTF8
	f := func(buf []byte) bool {
		r, size, ok := u.Decode(buf)
		rr, rsize := utf8.DecodeRune(buf)
		refOK := !(rr == utf8.RuneError && rsize <= 1)
		if ok != refOK {
			return false
		}
		if ok && (r != rr || size != rsize) {
			return false
		}
		r, size, ok = u.DecodeLast(buf)
		rr, rsize = utf8.DecodeLastRune(buf)
		refOK = !(rr == utf8.RuneError && rsize <= 1)
		return ok == refOK && (!ok || r == rr && size == rsize)
	}
	require.NoError(t, quick.Check(f, nil))
	if _, _, ok := u.Decode(nil); ok {
		t.Errorf("expected decoding of empty buffer to fail")
	}
	if _, _, ok := u.DecodeLast(nil); ok {
		t.Errorf("expected backward decoding of empty buffer to fail")
	}
}

func TestUTF8EncodeRoundTrip(t *testing.T) {
	var u UTF8
	buf := make([]byte, UTF8Max)
	ref := make([]byte, utf8.UTFMax)
	for r := rune(-1); r <= MaxRune+1; r++ {
		n := u.Encode(buf, r)
		m := utf8.EncodeRune(ref, r)
		if n != m || string(buf[:n]) != string(ref[:m]) {
			t.Fatalf("expected encoding of %#x to be % x, is % x", r, ref[:m], buf[:n])
		}
		if n != u.EncodingLen(r) {
			t.Fatalf("expected encoding length of %#x to be %d, is %d", r, n, u.EncodingLen(r))
		}
		if !ValidScalar(r) {
			continue
		}
		d, size, ok := u.Decode(buf[:n])
		if !ok || d != r || size != n {
			t.Fatalf("expected %#x to decode to itself, is %#x", r, d)
		}
		d, size = u.DecodeLastUnchecked(buf[:n])
		if d != r || size != n {
			t.Fatalf("expected %#x to decode backwards to itself, is %#x", r, d)
		}
	}
}

func TestUTF8Euro(t *testing.T) {
	var u UTF8
	buf := make([]byte, u.MaxEncodingLen())
	n := u.Encode(buf, '€')
	require.Equal(t, []byte{0xE2, 0x82, 0xAC}, buf[:n])
}

func TestUTF8Subrange(t *testing.T) {
	var u UTF8
	f := func(s string) bool {
		buf := []byte(s)
		for i := 0; i <= len(buf); i++ {
			left, right := u.ValidateSubrange(buf[:i]), u.ValidateSubrange(buf[i:])
			if utf8.RuneStart(safeAt(buf, i)) {
				if left != nil || right != nil {
					return false
				}
			} else if left == nil || right == nil {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestUTF8SubrangeErrors(t *testing.T) {
	var u UTF8
	euro := []byte("€")
	err := u.ValidateSubrange(euro[:2])
	require.Error(t, err)
	require.Equal(t, vstr.Incomplete, err.(*vstr.ValidationError).Len)
	err = u.ValidateSubrange(euro[1:])
	require.Error(t, err)
	require.Equal(t, 0, err.(*vstr.ValidationError).Pos)
	require.NoError(t, u.ValidateSubrange(nil))
}

// safeAt returns buf[i], or an ASCII byte if i is at the end of buf.
func safeAt(buf []byte, i int) byte {
	if i >= len(buf) {
		return 'x'
	}
	return buf[i]
}
