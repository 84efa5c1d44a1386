package text

import (
	"fmt"
	"strings"

	"github.com/npillmayer/vstr"
)

// String converts s to a Go string, transcoding it to UTF-8 if necessary.
// Byte strings are copied as they are, which for raw strings may produce
// a Go string which is not UTF-8.
func (s Str[E, P]) String() string {
	if b, ok := any(s.elems).([]byte); ok {
		return string(b)
	}
	return decodeToString[E, P](s.elems)
}

// Format implements fmt.Formatter. Verbs and flags apply as for Go
// strings: %s and %v print the text, %q prints it quoted with escapes.
func (s Str[E, P]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), s.String())
}

func decodeToString[E vstr.Element, P vstr.Policy[E]](elems []E) string {
	dec := decoderOf[E, P]()
	if dec == nil {
		return fmt.Sprint(elems)
	}
	var sb strings.Builder
	sb.Grow(len(elems))
	for len(elems) > 0 {
		r, n, _ := dec.Decode(elems)
		sb.WriteRune(r)
		elems = elems[n:]
	}
	return sb.String()
}
