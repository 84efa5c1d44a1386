/*
Package raw provides an opaque byte encoding policy.

Raw strings carry no text semantics. They exist for interoperability with
null-terminated byte strings of foreign origin, where the only property of
interest is the position of the zero terminator. Validation never fails and
there is no scalar decoding, so Raw is a vstr.Policy but not a vstr.Codec.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–22 Norbert Pillmayer <norbert@pillmayer.com>

*/
package raw

import (
	"github.com/npillmayer/vstr"
	"github.com/npillmayer/vstr/internal/seal"
)

// Raw is the policy for opaque bytes.
type Raw struct{}

var _ vstr.Policy[byte] = Raw{}

func (Raw) ValidateRange([]byte) error    { return nil }
func (Raw) ValidateSubrange([]byte) error { return nil }

// Compare is byte-wise lexicographic with length as tie-breaker.
func (Raw) Compare(a, b []byte) (int, error) {
	return vstr.CompareUnits(a, b), nil
}

func (Raw) ZeroTerm() byte         { return 0 }
func (Raw) IsZeroTerm(c byte) bool { return c == 0 }
func (Raw) EOF() int               { return vstr.EOF }
func (Raw) IntoInt(c byte) int     { return int(c) }
func (Raw) Infallible() bool       { return true }
func (Raw) Name() string           { return "raw" }
func (Raw) Sealed(seal.Token)      {}
