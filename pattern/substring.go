package pattern

import (
	"slices"

	"github.com/npillmayer/vstr"
)

// Substring matches a sequence of units. The needle has to be valid for
// the haystack's encoding, then every match spans complete scalars.
// Matching needs no decoder.
func Substring[E vstr.Element](needle []E) Bidirectional[E] {
	return substring[E]{needle}
}

type substring[E vstr.Element] struct {
	needle []E
}

func (s substring[E]) FirstMatch(hay []E, _ vstr.Decoder[E]) (Match, bool) {
	m := len(s.needle)
	if m == 0 || m > len(hay) {
		return Match{}, false
	}
	for i := 0; i <= len(hay)-m; i++ {
		if hay[i] == s.needle[0] && slices.Equal(hay[i:i+m], s.needle) {
			return Match{Start: i, End: i + m}, true
		}
	}
	return Match{}, false
}

func (s substring[E]) LastMatch(hay []E, _ vstr.Decoder[E]) (Match, bool) {
	m := len(s.needle)
	if m == 0 || m > len(hay) {
		return Match{}, false
	}
	for i := len(hay) - m; i >= 0; i-- {
		if hay[i] == s.needle[0] && slices.Equal(hay[i:i+m], s.needle) {
			return Match{Start: i, End: i + m}, true
		}
	}
	return Match{}, false
}
