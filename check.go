package vstr

import "fmt"

// ValidateSubrange runs the fast sub-range check of policy p on buf. All string
// types of this module call it instead of calling p.ValidateSubrange directly.
//
// If CheckSubranges is switched on, the result is compared to a full
// validation of buf. A mismatch means either that the precondition of
// Policy.ValidateSubrange has been violated, or that the fast check failed
// for a valid sub-range. Both are bugs, and ValidateSubrange panics.
func ValidateSubrange[E Element, P Policy[E]](p P, buf []E) error {
	err := p.ValidateSubrange(buf)
	if !checkRanges.Load() {
		return err
	}
	full := p.ValidateRange(buf)
	if (err == nil) != (full == nil) {
		CT().Errorf("%s: sub-range check says %v, full validation says %v", p.Name(), err, full)
		panic(fmt.Sprintf("%s: sub-range check disagrees with full validation: fast=%v, full=%v",
			p.Name(), err, full))
	}
	return err
}
