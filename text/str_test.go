package text

import (
	"errors"
	"fmt"
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vstr"
	"github.com/npillmayer/vstr/raw"
	"github.com/npillmayer/vstr/utf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrFromChars(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s, err := StrFromChars[byte, utf.UTF8]([]byte("café"))
	if err != nil {
		t.Fatalf("expected 'café' to be valid UTF-8, is %v", err)
	}
	if s.Len() != 5 {
		t.Errorf("expected length of 'café' to be 5, is %d", s.Len())
	}
	_, err = StrFromChars[byte, utf.UTF8]([]byte{0xC3, 0x28})
	var verr *vstr.ValidationError
	if !errors.As(err, &verr) || verr.Pos != 0 || verr.Len != 1 {
		t.Errorf("expected validation error at 0 with length 1, is %v", err)
	}
	_, err = StrFromChars[uint16, utf.UTF16]([]uint16{'a', 0xD800})
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, is %v", err)
	}
	if _, ok := verr.ErrorLen(); ok || verr.Pos != 1 {
		t.Errorf("expected incomplete sequence at 1, is %v", verr)
	}
}

func TestSlicing(t *testing.T) {
	defer vstr.SetCheckSubranges(vstr.SetCheckSubranges(true))
	s := Lit("añb€")
	if _, ok := s.Get(1, 2); ok {
		t.Errorf("expected [1:2] to cut 'ñ'")
	}
	sub, ok := s.Get(1, 3)
	require.True(t, ok)
	assert.Equal(t, "ñ", sub.String())
	_, ok = s.Get(3, 99)
	assert.False(t, ok)
	l, r := s.SplitAt(4)
	assert.Equal(t, "añb", l.String())
	assert.Equal(t, "€", r.String())
	_, _, ok = s.TrySplitAt(5)
	assert.False(t, ok)
	assert.Panics(t, func() { s.Slice(0, 5) })
	assert.Equal(t, "b€", s.GetUnchecked(3, s.Len()).String())
}

// Splitting a valid string at any scalar boundary yields valid halves,
// splitting anywhere else is rejected.
func TestSplitAtProperty(t *testing.T) {
	defer vstr.SetCheckSubranges(vstr.SetCheckSubranges(true))
	f := func(x string) bool {
		s := Lit(x)
		for i := 0; i <= s.Len(); i++ {
			_, _, ok := s.TrySplitAt(i)
			boundary := i == s.Len() || utf8.RuneStart(x[i])
			if ok != boundary {
				return false
			}
		}
		u := Transcode[uint16, utf.UTF16](s).Str()
		for i := 0; i <= u.Len(); i++ {
			l, r, ok := u.TrySplitAt(i)
			if ok && (l.Len()+r.Len() != u.Len()) {
				return false
			}
			boundary := i == u.Len() || u.Elems()[i] < 0xDC00 || u.Elems()[i] > 0xDFFF
			if ok != boundary {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestCompare(t *testing.T) {
	a, b := Lit("abc"), Lit("abd")
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, -1, Lit("ab").Compare(a))
	assert.True(t, a.Equal(Lit("abc")))
	assert.True(t, a.HasPrefix(Lit("ab")))
	assert.True(t, a.HasSuffix(Lit("bc")))
	assert.False(t, a.HasSuffix(Lit("abcd")))
}

// UTF-16 strings compare by code units; CompareScalars by scalar values.
func TestCompareUTF16Ordering(t *testing.T) {
	hi := Transcode[uint16, utf.UTF16](Lit("😀")).Str() // D83D DE00
	bmp := Transcode[uint16, utf.UTF16](Lit("！")).Str()
	assert.Equal(t, -1, hi.Compare(bmp))
	assert.Equal(t, 1, CompareScalars(hi, bmp))
	assert.Equal(t, 1, CompareScalars(Lit("😀"), Lit("！")))
}

func TestRunes(t *testing.T) {
	s := Lit("a€😀")
	var rs []rune
	for r := range s.Runes() {
		rs = append(rs, r)
	}
	assert.Equal(t, []rune("a€😀"), rs)
	var idx []int
	for i, r := range s.Backward() {
		idx = append(idx, i)
		_ = r
	}
	assert.Equal(t, []int{4, 1, 0}, idx)
	assert.Equal(t, 3, s.RuneCount())
	assert.Equal(t, 2, s.MinRuneCount())
	for i, r := range s.RuneIndices() {
		if i == 1 {
			assert.Equal(t, '€', r)
		}
	}
	n := 0
	for range s.Elements() {
		n++
	}
	assert.Equal(t, s.Len(), n)
}

func TestFormat(t *testing.T) {
	s := Transcode[uint16, utf.UTF16](Lit("tab\there"))
	assert.Equal(t, "tab\there", fmt.Sprintf("%s", s))
	assert.Equal(t, `"tab\there"`, fmt.Sprintf("%q", s))
	assert.Equal(t, "[tab\there]", fmt.Sprintf("[%v]", s.Str()))
	assert.Equal(t, "  ab", fmt.Sprintf("%4s", Lit("ab")))
	r, err := StrFromChars[byte, raw.Raw]([]byte{'a', 0xFF})
	require.NoError(t, err)
	assert.Equal(t, `"a\xff"`, fmt.Sprintf("%q", r))
}

func TestView(t *testing.T) {
	s := Lit("hello")
	v := ViewOf(s)
	assert.Equal(t, 5, v.Len())
	assert.True(t, v.Str().Equal(s))
	w := ViewFromRawParts[byte, utf.UTF8](s.Ptr(), 4)
	assert.Equal(t, "hell", w.String())
	assert.True(t, ViewOf(UTF8Str{}).Str().IsEmpty())
}

func TestArray(t *testing.T) {
	_, err := ArrayFromChars[byte, utf.UTF8](3, []byte("abcd"))
	var lerr *vstr.LengthError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 4, lerr.Got)
	assert.True(t, errors.Is(err, vstr.ErrLength))
	a, err := ArrayFromStr(3, Lit("abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", a.String())
	_, err = ArrayFromChars[byte, utf.UTF8](2, []byte{0xC3, 0x28})
	assert.True(t, errors.Is(err, vstr.ErrInvalid))
	r, err := ArrayFromRunes(2, []rune("ok"))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
	_, err = ArrayFromRunes(1, []rune{0xDFFF})
	assert.True(t, errors.Is(err, vstr.ErrInvalidScalar))
}

func TestConversions(t *testing.T) {
	_, err := FromString("ok\xff")
	assert.Error(t, err)
	_, err = U32FromRunes([]rune{'a', 0x110000})
	assert.True(t, errors.Is(err, vstr.ErrInvalidScalar))
	u, err := U32FromRunes([]rune("grüßen"))
	require.NoError(t, err)
	s := Transcode[byte, utf.UTF8](u)
	assert.Equal(t, "grüßen", s.String())
	e, err := EncodeString[uint16, utf.UTF16]("😀!")
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xD83D, 0xDE00, '!'}, e.Str().Elems())
	str, err := NewUTF8String("copy")
	require.NoError(t, err)
	assert.Equal(t, "copy", str.String())
}
