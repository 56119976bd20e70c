// Package format compiles period format patterns into token programs and
// drives them to render period values as text or to parse text back into
// composite period values.
//
// A pattern mixes specifier runs with literal text: "yyyy-Qq" is a
// four-digit year, a literal "-Q", and a quarter number. The specifier
// codes are y (year), s (semester), q (quarter), m (month), u and U
// (abbreviated and full month name), w (week) and d (day). A backslash
// escapes the following character, so "\q" is a literal q, never the
// quarter field.
//
// A maximal run of one repeated specifier becomes a single field whose
// width is the run length. A field followed by literal text is fixed-width:
// zero-padded when rendering, exactly that many digits when parsing. A
// field with nothing between it and the next field, or at the end of the
// pattern, is minimum-width: rendered without truncation and parsed by
// greedy digit consumption.
package format

import (
	"fmt"

	"github.com/coarsedate/period/locale"
)

// Escape marks the next pattern character as literal.
const Escape = '\\'

// Option configures a compiled Format.
type Option func(*Format)

// WithMonths selects the month-name table used by the u and U specifiers
// and by month-name parsing. The default is locale.English.
func WithMonths(m *locale.Months) Option {
	return func(f *Format) { f.months = m }
}

// Compile parses a pattern into a Format. It fails with ErrEmptyFormat for
// the empty pattern and with ErrInvalidSpecifier when an unescaped
// lowercase letter outside the specifier set appears. Uppercase letters
// other than U, digits and punctuation are literals.
func Compile(pattern string, opts ...Option) (*Format, error) {
	if pattern == "" {
		return nil, ErrEmptyFormat
	}
	f := &Format{pattern: pattern, months: locale.English}
	for _, opt := range opts {
		opt(f)
	}

	var (
		lit       []byte // literal run since the pending field, unescaped
		pendSpec  byte   // 0 when no field is pending
		pendWidth int
	)
	flushLiteral := func() {
		if len(lit) > 0 {
			f.tokens = append(f.tokens, delimToken{text: string(lit)})
			lit = lit[:0]
		}
	}
	flushField := func(fixed bool) {
		sp := specs[pendSpec]
		f.tokens = append(f.tokens, fieldToken{
			spec:  pendSpec,
			kind:  sp.kind,
			name:  sp.name,
			width: pendWidth,
			fixed: fixed,
		})
		pendSpec = 0
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == Escape:
			if i+1 < len(pattern) {
				i++
				lit = append(lit, pattern[i])
			} else {
				lit = append(lit, c)
			}
		case isSpecifier(c):
			if pendSpec == c && len(lit) == 0 {
				pendWidth++
				continue
			}
			// A new run starts: a pending field is fixed-width only when
			// literal text anchors its end.
			if pendSpec != 0 {
				flushField(len(lit) > 0)
			}
			flushLiteral()
			pendSpec, pendWidth = c, 1
		case 'a' <= c && c <= 'z':
			return nil, fmt.Errorf("pattern %q: %w %q at offset %d", pattern, ErrInvalidSpecifier, string(c), i)
		default:
			lit = append(lit, c)
		}
	}
	// A trailing field has no anchor and stays minimum-width, even when
	// the whole pattern is a single run like "yyyy".
	if pendSpec != 0 {
		flushField(false)
	}
	flushLiteral()
	return f, nil
}

// MustCompile is like Compile but panics on error. It is intended for
// package-level patterns known to be valid.
func MustCompile(pattern string, opts ...Option) *Format {
	f, err := Compile(pattern, opts...)
	if err != nil {
		panic(fmt.Errorf("format: MustCompile(%q): %w", pattern, err))
	}
	return f
}
