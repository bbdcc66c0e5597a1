package nationalid

import "errors"

// Kind classifies a decoding failure. All kinds are terminal validation
// failures; none is worth retrying.
type Kind string

const (
	InvalidFormat      Kind = "invalid_format"
	InvalidCentury     Kind = "invalid_century"
	InvalidDate        Kind = "invalid_date"
	InvalidGovernorate Kind = "invalid_governorate"
)

// Error is a decoding failure. Value holds the offending input fragment
// (century digit, date, governorate code) when one applies.
type Error struct {
	Kind  Kind
	Value string
	msg   string
}

func newError(kind Kind, value, msg string) *Error {
	return &Error{Kind: kind, Value: value, msg: msg}
}

// Error returns a message suitable for showing to the person who typed the ID.
func (e *Error) Error() string {
	return e.msg
}

// Is matches any *Error of the same kind, so callers can compare against the
// exported sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidFormat      = &Error{Kind: InvalidFormat, msg: "invalid national ID format"}
	ErrInvalidCentury     = &Error{Kind: InvalidCentury, msg: "invalid century digit"}
	ErrInvalidDate        = &Error{Kind: InvalidDate, msg: "invalid birth date"}
	ErrInvalidGovernorate = &Error{Kind: InvalidGovernorate, msg: "invalid governorate code"}
)

// KindOf returns the decoding failure kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
