package vstr

import "github.com/npillmayer/vstr/internal/seal"

// Element is the type of the units a string buffer consists of:
// bytes, 16-bit code units or scalar values (runes).
type Element interface {
	~uint8 | ~uint16 | ~int32
}

// EOF is the end-of-stream sentinel returned by Policy.EOF for every encoding
// of this module. IntoInt never yields EOF for any element.
const EOF = -1

// Policy is the contract an encoding has to fulfill for strings of element
// type E. Policies are stateless; string types use the zero value of a
// policy type, so all policy types of this module are empty structs.
//
// The set of policies is closed, see Sealed.
type Policy[E Element] interface {
	// ValidateRange performs a full scan of buf. If buf is not well-formed,
	// a *ValidationError is returned.
	ValidateRange(buf []E) error

	// ValidateSubrange checks a sub-range of a buffer which has already
	// passed ValidateRange. Only the boundaries of buf are inspected.
	//
	// Precondition: buf is a contiguous sub-range of a buffer which is
	// well-formed. If this does not hold, ValidateSubrange may succeed
	// spuriously. It will never fail spuriously for a sub-range of a valid
	// buffer which starts and ends at scalar boundaries.
	ValidateSubrange(buf []E) error

	// Compare compares two buffers lexicographically by element, with the
	// shorter one being less if it is a prefix of the longer one.
	// Result is -1, 0 or +1.
	Compare(a, b []E) (int, error)

	// ZeroTerm is the element terminating C-style strings.
	ZeroTerm() E
	// IsZeroTerm is true if c equals ZeroTerm().
	IsZeroTerm(c E) bool
	// EOF is a sentinel integer not reachable by IntoInt.
	EOF() int
	// IntoInt converts an element to a wider integer.
	IntoInt(c E) int

	// Infallible is true for policies for which ValidateRange never fails.
	Infallible() bool
	// Name is a short identifier of the encoding, e.g. "UTF-8".
	Name() string

	// Sealed prevents implementations outside of this module.
	Sealed(seal.Token)
}

// Decoder decodes single scalar values from a buffer.
//
// Decode and DecodeLast report ok=false for an empty or malformed buffer.
// The Unchecked variants require buf to be non-empty and valid for the
// policy; their results are undefined otherwise.
type Decoder[E Element] interface {
	// Decode decodes the first scalar of buf and returns it together with
	// the number of units it occupies.
	Decode(buf []E) (r rune, size int, ok bool)
	DecodeUnchecked(buf []E) (r rune, size int)
	// DecodeLast decodes the last scalar of buf.
	DecodeLast(buf []E) (r rune, size int, ok bool)
	DecodeLastUnchecked(buf []E) (r rune, size int)
}

// Encoder encodes scalar values into a buffer.
type Encoder[E Element] interface {
	// Encode writes the encoding of r to the start of buf and returns the
	// number of units written. Invalid scalars are encoded as U+FFFD.
	// Encode panics if buf is too small; MaxEncodingLen units always suffice.
	Encode(buf []E, r rune) int
	// EncodingLen is the number of units Encode writes for r.
	EncodingLen(r rune) int
	// MaxEncodingLen is the maximum number of units per scalar.
	MaxEncodingLen() int
}

// Codec is a Policy which is able to convert between buffers and scalar values.
type Codec[E Element] interface {
	Policy[E]
	Decoder[E]
	Encoder[E]
}

// PolicyOf returns the (zero value) instance of policy type P.
func PolicyOf[E Element, P Policy[E]]() P {
	var p P
	return p
}

// CodecOf returns the codec for policy type P, if P is able to decode and
// encode scalars. Opaque policies like raw.Raw are not.
func CodecOf[E Element, P Policy[E]]() (Codec[E], bool) {
	var p P
	c, ok := any(p).(Codec[E])
	return c, ok
}

// CompareUnits is the plain lexicographic comparison of two buffers, with
// length as a tie-breaker. Policies of this module use it for Compare.
func CompareUnits[E Element](a, b []E) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
