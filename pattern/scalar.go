package pattern

import (
	"unicode"

	"github.com/npillmayer/vstr"
	"golang.org/x/text/unicode/rangetable"
)

// scalar matches a single scalar satisfying a predicate.
type scalar[E vstr.Element] struct {
	accept func(rune) bool
}

// Rune matches the scalar r.
func Rune[E vstr.Element](r rune) Bidirectional[E] {
	return scalar[E]{func(c rune) bool { return c == r }}
}

// Predicate matches any scalar for which f returns true.
func Predicate[E vstr.Element](f func(rune) bool) Bidirectional[E] {
	return scalar[E]{f}
}

// AnyOf matches any of the given scalars.
func AnyOf[E vstr.Element](runes ...rune) Bidirectional[E] {
	if len(runes) == 0 {
		return scalar[E]{func(rune) bool { return false }}
	}
	return InTables[E](rangetable.New(runes...))
}

// InTables matches any scalar contained in one of the tables, e.g.
// unicode.White_Space.
func InTables[E vstr.Element](tables ...*unicode.RangeTable) Bidirectional[E] {
	rt := rangetable.Merge(tables...)
	return scalar[E]{func(c rune) bool { return unicode.Is(rt, c) }}
}

func (s scalar[E]) FirstMatch(hay []E, dec vstr.Decoder[E]) (Match, bool) {
	if dec == nil {
		return Match{}, false
	}
	for i := 0; i < len(hay); {
		r, n, ok := dec.Decode(hay[i:])
		if !ok {
			i++
			continue
		}
		if s.accept(r) {
			return Match{Start: i, End: i + n}, true
		}
		i += n
	}
	return Match{}, false
}

func (s scalar[E]) LastMatch(hay []E, dec vstr.Decoder[E]) (Match, bool) {
	if dec == nil {
		return Match{}, false
	}
	for j := len(hay); j > 0; {
		r, n, ok := dec.DecodeLast(hay[:j])
		if !ok {
			j--
			continue
		}
		if s.accept(r) {
			return Match{Start: j - n, End: j}, true
		}
		j -= n
	}
	return Match{}, false
}
