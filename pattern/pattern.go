package pattern

import "github.com/npillmayer/vstr"

// Match is the span [Start, End) of a match, in units of the haystack.
type Match struct {
	Start, End int
}

// Len is the number of units matched.
func (m Match) Len() int {
	return m.End - m.Start
}

// Pattern searches forward.
type Pattern[E vstr.Element] interface {
	// FirstMatch returns the first match in hay. dec is the decoder of the
	// haystack's encoding and may be nil.
	FirstMatch(hay []E, dec vstr.Decoder[E]) (Match, bool)
}

// RevPattern searches backward.
type RevPattern[E vstr.Element] interface {
	LastMatch(hay []E, dec vstr.Decoder[E]) (Match, bool)
}

// Bidirectional is a pattern searching in both directions. It is needed
// for double-ended splitting.
type Bidirectional[E vstr.Element] interface {
	Pattern[E]
	RevPattern[E]
}

// Both composes a forward and a backward pattern.
func Both[E vstr.Element](fwd Pattern[E], back RevPattern[E]) Bidirectional[E] {
	return both[E]{fwd, back}
}

type both[E vstr.Element] struct {
	Pattern[E]
	RevPattern[E]
}

// Trusted wraps a decoder for haystacks known to be valid. Decoding skips
// all checks. Decoding an invalid buffer with it has undefined results.
func Trusted[E vstr.Element](dec vstr.Decoder[E]) vstr.Decoder[E] {
	if dec == nil {
		return nil
	}
	if _, ok := dec.(trusted[E]); ok {
		return dec
	}
	return trusted[E]{dec}
}

type trusted[E vstr.Element] struct {
	vstr.Decoder[E]
}

func (t trusted[E]) Decode(buf []E) (rune, int, bool) {
	if len(buf) == 0 {
		return 0, 0, false
	}
	r, n := t.Decoder.DecodeUnchecked(buf)
	return r, n, true
}

func (t trusted[E]) DecodeLast(buf []E) (rune, int, bool) {
	if len(buf) == 0 {
		return 0, 0, false
	}
	r, n := t.Decoder.DecodeLastUnchecked(buf)
	return r, n, true
}
