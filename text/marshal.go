package text

import (
	"github.com/npillmayer/vstr"
	"github.com/npillmayer/vstr/utf"
)

// MarshalText implements encoding.TextMarshaler. The text is the content
// of s, transcoded to UTF-8.
func (s *String[E, P]) MarshalText() ([]byte, error) {
	if b, ok := any(s.elems()).([]byte); ok {
		return append([]byte(nil), b...), nil
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. For strings with a
// codec text has to be valid UTF-8 and is transcoded to encoding P. Raw
// strings take text as it is.
func (s *String[E, P]) UnmarshalText(text []byte) error {
	s.Clear()
	var p P
	if _, ok := vstr.CodecOf[E, P](); !ok {
		if b, ok := any(text).([]E); ok {
			if err := p.ValidateRange(b); err != nil {
				return err
			}
			s.store().Append(b...)
			return nil
		}
		return vstr.ErrNoCodec
	}
	src, err := StrFromChars[byte, utf.UTF8](text)
	if err != nil {
		return err
	}
	if _, isUTF8 := any(p).(utf.UTF8); isUTF8 {
		s.store().Append(any(text).([]E)...)
		return nil
	}
	s.Reserve(len(text))
	for r := range src.Runes() {
		s.Push(r)
	}
	return nil
}
