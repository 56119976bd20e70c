package format

import (
	"errors"
	"fmt"
)

// Compile-time failures. A compile error means the format pattern itself is
// wrong; a ParseError means the input text does not match a valid pattern.
var (
	// ErrEmptyFormat is returned when compiling an empty pattern.
	ErrEmptyFormat = errors.New("empty format")
	// ErrInvalidSpecifier is returned when an unescaped letter outside the
	// specifier set appears in a pattern.
	ErrInvalidSpecifier = errors.New("invalid specifier")
	// ErrUnknownSpecifier is returned by registry lookups for characters
	// that are not specifier codes.
	ErrUnknownSpecifier = errors.New("unknown specifier")
)

// Parse- and format-time failure categories, carried inside ParseError or
// wrapped with context. All are terminal; malformed input cannot
// self-correct.
var (
	ErrDelimiterMismatch = errors.New("delimiter mismatch")
	ErrWidthMismatch     = errors.New("width mismatch")
	ErrNoDigits          = errors.New("no digits")
	ErrTrailingInput     = errors.New("trailing input")
	ErrMissingYear       = errors.New("missing year")
	ErrMissingField      = errors.New("missing field")
)

// ParseError describes a failure to parse input text against a compiled
// Format. Offset is the byte position in the input where parsing stopped;
// Expected names the pattern element (literal or specifier run) wanted
// there.
type ParseError struct {
	Pattern  string
	Input    string
	Offset   int
	Expected string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("parsing %q as %q: %v at offset %d, expected %q",
			e.Input, e.Pattern, e.Err, e.Offset, e.Expected)
	}
	return fmt.Sprintf("parsing %q as %q: %v at offset %d",
		e.Input, e.Pattern, e.Err, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Err }
