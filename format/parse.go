package format

import (
	"errors"

	"github.com/coarsedate/period"
)

// Parse consumes text through the token program and resolves the collected
// fields into a composite of the finest kind the pattern mentions
// ("yyyy-Qq" parses to quarter granularity). All failures are *ParseError
// values carrying the offset and the expected element.
func (f *Format) Parse(text string) (period.Date, error) {
	return f.ParseAs(text, f.finestKind())
}

// ParseAs is like Parse but resolves into the requested kind. Required
// fields absent from the input are filled from their defaults (semester,
// quarter, month and day default to 1, week to 0); an absent year is
// ErrMissingYear. Fields parsed beyond the requested kind's chain are
// retained on the composite. No calendar-validity check is applied, so
// month 13 parses successfully at this layer.
func (f *Format) ParseAs(text string, kind period.Kind) (period.Date, error) {
	var acc accumulator
	at := 0
	for _, t := range f.tokens {
		next, err := t.tryParseNext(text, at, &acc, f.months)
		if err != nil {
			return period.Date{}, f.decorate(err, text)
		}
		at = next
	}
	if at != len(text) {
		return period.Date{}, &ParseError{
			Pattern:  f.pattern,
			Input:    text,
			Offset:   at,
			Expected: "end of input",
			Err:      ErrTrailingInput,
		}
	}
	return f.resolve(&acc, kind, text)
}

// resolve turns the accumulated fields into a composite of the requested
// kind, defaulting required fields that were not parsed.
func (f *Format) resolve(acc *accumulator, kind period.Kind, text string) (period.Date, error) {
	fields := make(map[period.Kind]int64)
	for _, k := range RequiredFields(kind) {
		if n, ok := acc.get(k); ok {
			fields[k] = n
			continue
		}
		def, ok := fieldDefault(k)
		if !ok {
			return period.Date{}, &ParseError{
				Pattern:  f.pattern,
				Input:    text,
				Offset:   len(text),
				Expected: "a year field",
				Err:      ErrMissingYear,
			}
		}
		fields[k] = def
	}
	for k := period.Year; k <= period.Day; k++ {
		if n, ok := acc.get(k); ok {
			fields[k] = n
		}
	}
	return period.Compose(kind, fields), nil
}

// finestKind returns the finest granularity among the pattern's fields, or
// Undated for a pattern of pure literals.
func (f *Format) finestKind() period.Kind {
	finest := period.Undated
	for _, t := range f.tokens {
		if ft, ok := t.(fieldToken); ok && (finest == period.Undated || ft.kind.Finer(finest)) {
			finest = ft.kind
		}
	}
	return finest
}

// decorate fills the pattern and input into a token-level parse error.
func (f *Format) decorate(err error, text string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Pattern = f.pattern
		pe.Input = text
	}
	return err
}
