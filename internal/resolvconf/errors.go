package resolvconf

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every way a parse can fail. Use
// errors.Is(err, resolvconf.ErrInvalidDirective) etc. to detect a specific
// failure class, and errors.As with *ParseError to recover the line number.
var (
	// ErrInvalidUTF8 is returned when a non-comment line is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("line is not valid UTF-8")

	// ErrInvalidValue is returned when a required token is missing or does
	// not have the shape the directive expects.
	ErrInvalidValue = errors.New("directive is improperly formatted or contains invalid value")

	// ErrInvalidOptionValue is returned when an options value is missing or
	// fails to parse (e.g. a non-numeric ndots).
	ErrInvalidOptionValue = errors.New("options directive contains invalid value")

	// ErrInvalidOption is returned for an unrecognized options key.
	ErrInvalidOption = errors.New("option is not recognized")

	// ErrInvalidDirective is returned for an unrecognized top-level keyword.
	ErrInvalidDirective = errors.New("directive is not recognized")

	// ErrInvalidIP is returned when an address or network literal fails to
	// parse. The underlying parse failure is attached as the cause.
	ErrInvalidIP = errors.New("invalid IP")

	// ErrExtraData is returned when tokens remain after a fixed-arity
	// directive has consumed what it expects.
	ErrExtraData = errors.New("extra data at the end of the line")
)

// ParseError is the error type returned by Parse. Line is the 0-based index
// of the offending line; Err is one of the sentinel errors above; Cause, when
// non-nil, is the underlying failure (an address parse error for
// ErrInvalidIP).
type ParseError struct {
	Line  int
	Err   error
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("line %d: %v: %v", e.Line, e.Err, e.Cause)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes both the sentinel and the cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func errAt(line int, sentinel error) *ParseError {
	return &ParseError{Line: line, Err: sentinel}
}

func errIP(line int, cause error) *ParseError {
	return &ParseError{Line: line, Err: ErrInvalidIP, Cause: cause}
}
