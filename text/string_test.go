package text

import (
	"errors"
	"testing"
	"testing/quick"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vstr"
	"github.com/npillmayer/vstr/buffer"
	"github.com/npillmayer/vstr/raw"
	"github.com/npillmayer/vstr/utf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPushEuro(t *testing.T) {
	s := NewString[byte, utf.UTF8]()
	s.Push('€')
	if string(s.Str().Elems()) != "\xE2\x82\xAC" {
		t.Errorf("expected bytes E2 82 AC, are % x", s.Str().Elems())
	}
	var u U16String // zero value is ready to use
	u.Push('€')
	u.Push(0x1F600)
	u.Push(0xD800) // invalid scalar
	assert.Equal(t, []uint16{0x20AC, 0xD83D, 0xDE00, 0xFFFD}, u.Str().Elems())
}

func TestPushKeepsValidity(t *testing.T) {
	f := func(rs []rune) bool {
		s8 := NewString[byte, utf.UTF8]()
		s16 := NewString[uint16, utf.UTF16]()
		s32 := NewString[rune, utf.UTF32]()
		for _, r := range rs {
			s8.Push(r)
			s16.Push(r)
			s32.Push(r)
			if (utf.UTF8{}).ValidateRange(s8.Str().Elems()) != nil ||
				(utf.UTF16{}).ValidateRange(s16.Str().Elems()) != nil ||
				utf.CheckScalars(s32.Str().Elems()) != nil {
				return false
			}
		}
		return s8.String() == s16.String() && s16.String() == s32.String()
	}
	require.NoError(t, quick.Check(f, nil))
}

// Concatenation of valid strings is valid.
func TestPushStrClosure(t *testing.T) {
	f := func(a, b string) bool {
		x := Transcode[uint16, utf.UTF16](Lit(a))
		y := Transcode[uint16, utf.UTF16](Lit(b))
		x.PushStr(y.Str())
		return (utf.UTF16{}).ValidateRange(x.Str().Elems()) == nil && x.String() == a+b
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestStringFromChars(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	junk := []byte{'a', 0xFF}
	_, err := StringFromChars[byte, utf.UTF8](junk)
	var ferr *vstr.FromCharsError[byte]
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, junk, ferr.IntoChars(), "rejected buffer should be handed back")
	assert.True(t, errors.Is(err, vstr.ErrInvalid))
	s, err := StringFromChars[byte, utf.UTF8]([]byte("ok"))
	require.NoError(t, err)
	s.PushStr(Lit("!"))
	assert.Equal(t, "ok!", string(s.IntoChars()))
	assert.True(t, s.IsEmpty())
}

func TestPopTruncate(t *testing.T) {
	s := Lit("añ€").Clone()
	r, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, '€', r)
	assert.Equal(t, "añ", s.String())
	assert.Panics(t, func() { s.Truncate(2) })
	s.Truncate(1)
	assert.Equal(t, "a", s.String())
	s.Clear()
	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestPushWithoutCodec(t *testing.T) {
	s := NewString[byte, raw.Raw]()
	s.PushStr(StrFromCharsUnchecked[byte, raw.Raw]([]byte{0xFF}))
	assert.Equal(t, 1, s.Len())
	assert.Panics(t, func() { s.Push('x') })
}

func TestPooledString(t *testing.T) {
	pool := buffer.NewPool[uint16](8)
	defer pool.Close()
	s := StringIn[uint16, utf.UTF16](pool.Buffer())
	for _, r := range "pooled" {
		s.Push(r)
	}
	assert.Equal(t, "pooled", s.String())
	assert.Equal(t, 1, pool.Active())
	chars := s.IntoChars()
	assert.Equal(t, 6, len(chars))
	assert.Equal(t, 0, pool.Active())
	//
	s = StringIn[uint16, utf.UTF16](pool.Buffer())
	s.PushStr(Transcode[uint16, utf.UTF16](Lit("again")).Str())
	s.Release()
	assert.Equal(t, 0, pool.Active())
	assert.True(t, s.IsEmpty())
}

type record struct {
	Name  *U16String  `yaml:"name"`
	Title *UTF8String `yaml:"title"`
}

func TestYAML(t *testing.T) {
	name, err := EncodeString[uint16, utf.UTF16]("Zoë 😀")
	require.NoError(t, err)
	title, err := NewUTF8String("Grüße")
	require.NoError(t, err)
	out, err := yaml.Marshal(record{Name: name, Title: title})
	require.NoError(t, err)
	var in record
	require.NoError(t, yaml.Unmarshal(out, &in))
	require.NotNil(t, in.Name)
	assert.True(t, name.Equal(in.Name))
	assert.Equal(t, "Grüße", in.Title.String())
}

func TestUnmarshalText(t *testing.T) {
	var s U32String
	assert.Error(t, s.UnmarshalText([]byte{'a', 0xFF}))
	require.NoError(t, s.UnmarshalText([]byte("år")))
	assert.Equal(t, []rune("år"), s.Str().Elems())
	var r RawString
	require.NoError(t, r.UnmarshalText([]byte{0xFF}))
	b, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF}, b)
}
