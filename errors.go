package vstr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Errors returned by this module wrap one of these, so
// clients may test with errors.Is.
var (
	ErrInvalid       = errors.New("vstr: invalid encoding")
	ErrNotTerminated = errors.New("vstr: missing zero terminator")
	ErrInteriorZero  = errors.New("vstr: zero terminator before end of string")
	ErrNoCodec       = errors.New("vstr: encoding is not able to convert scalars")
	ErrInvalidScalar = errors.New("vstr: invalid scalar value")
	ErrLength        = errors.New("vstr: unexpected length")
)

// ValidationError reports a malformed sequence of elements.
//
// Pos is the index of the first element not belonging to a valid prefix.
// Len is the number of elements of the defective unit, or -1 if the input
// ended before the length could be determined ("incomplete").
type ValidationError struct {
	Encoding string
	Pos      int
	Len      int
}

// Incomplete is the value of ValidationError.Len if the unit is truncated.
const Incomplete = -1

// NewValidationError creates a validation error for encoding enc.
func NewValidationError(enc string, pos, length int) *ValidationError {
	return &ValidationError{Encoding: enc, Pos: pos, Len: length}
}

func (e *ValidationError) Error() string {
	if e.Len == Incomplete {
		return fmt.Sprintf("%s: incomplete sequence at position %d", e.Encoding, e.Pos)
	}
	return fmt.Sprintf("%s: invalid sequence of length %d at position %d", e.Encoding, e.Len, e.Pos)
}

// FirstErrorPos returns the position of the first invalid element.
func (e *ValidationError) FirstErrorPos() int {
	return e.Pos
}

// ErrorLen returns the length of the defective unit. ok is false if the
// sequence was incomplete and no length could be determined.
func (e *ValidationError) ErrorLen() (length int, ok bool) {
	if e.Len == Incomplete {
		return 0, false
	}
	return e.Len, true
}

// Is makes ValidationError match ErrInvalid.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// LengthError is returned if a fixed-capacity type is constructed from
// input of the wrong size.
type LengthError struct {
	Got  int
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("unexpected length of array %d, required length is %d", e.Got, e.Want)
}

// Is makes LengthError match ErrLength.
func (e *LengthError) Is(target error) bool {
	return target == ErrLength
}

// FromCharsError is returned by constructors which take ownership of a
// buffer. If validation fails, the buffer is handed back to the caller
// together with the cause.
type FromCharsError[E Element] struct {
	Err   error
	Chars []E
}

func (e *FromCharsError[E]) Error() string {
	return e.Err.Error()
}

func (e *FromCharsError[E]) Unwrap() error {
	return e.Err
}

// IntoChars returns the rejected buffer.
func (e *FromCharsError[E]) IntoChars() []E {
	return e.Chars
}
