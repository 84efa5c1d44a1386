package utf

import (
	"fmt"

	"github.com/npillmayer/vstr"
)

const (
	// RuneError is written by encoders in place of invalid scalars.
	RuneError = '\uFFFD'
	// MaxRune is the maximum valid Unicode scalar value.
	MaxRune = '\U0010FFFF'
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	highSurrMax  = 0xDBFF
	lowSurrMin   = 0xDC00
	supplBase    = 0x10000
)

// ValidScalar is true if r is a Unicode scalar value, i.e. in range
// 0..U+10FFFF and not a surrogate.
func ValidScalar(r rune) bool {
	switch {
	case 0 <= r && r < surrogateMin:
		return true
	case surrogateMax < r && r <= MaxRune:
		return true
	}
	return false
}

// CheckScalars checks that every rune of rs is a valid scalar value. This is
// the check applied where runes enter UTF-32 strings; UTF32.ValidateRange
// does not repeat it.
//
// The error wraps vstr.ErrInvalidScalar and reports the first offending index.
func CheckScalars(rs []rune) error {
	for i, r := range rs {
		if !ValidScalar(r) {
			tracer().Debugf("invalid scalar %#x at index %d", r, i)
			return fmt.Errorf("%w: %#x at index %d", vstr.ErrInvalidScalar, r, i)
		}
	}
	return nil
}
