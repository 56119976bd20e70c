package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coarsedate/period"
	"github.com/coarsedate/period/locale"
)

// Fields is the accessor capability the formatter reads through: a period
// value or composite date that can report its components as integers.
// period.Value and period.Date both implement it.
type Fields interface {
	Field(k period.Kind) (int64, bool)
}

// token is one step of a compiled format program. Parse errors returned by
// tryParseNext carry offset and expected element; the driving loop fills in
// pattern and input.
type token interface {
	render(dst []byte, src Fields, months *locale.Months) ([]byte, error)
	tryParseNext(in string, at int, acc *accumulator, months *locale.Months) (int, error)
}

// accumulator collects field values during a parse. Later tokens of the
// same kind overwrite earlier ones.
type accumulator struct {
	set    uint8
	fields [period.Day + 1]int64
}

func (a *accumulator) record(k period.Kind, n int64) {
	a.fields[k] = n
	a.set |= 1 << uint(k)
}

func (a *accumulator) get(k period.Kind) (int64, bool) {
	if a.set&(1<<uint(k)) == 0 {
		return 0, false
	}
	return a.fields[k], true
}

// fieldToken renders or consumes one field. fixed means exact-width:
// zero-padded on render, exactly width digits on parse. A non-fixed field
// renders at least width characters without truncation and consumes a
// greedy digit run on parse.
type fieldToken struct {
	spec  byte
	kind  period.Kind
	name  nameStyle
	width int
	fixed bool
}

// element is the pattern element this token stands for, used in errors.
func (t fieldToken) element() string {
	return strings.Repeat(string(t.spec), t.width)
}

func (t fieldToken) render(dst []byte, src Fields, months *locale.Months) ([]byte, error) {
	n, ok := src.Field(t.kind)
	if !ok {
		return dst, fmt.Errorf("%w: specifier %q needs a %s component", ErrMissingField, string(t.spec), t.kind)
	}
	switch t.name {
	case abbrevName:
		s, err := months.Abbrev(int(n))
		if err != nil {
			return dst, err
		}
		return append(dst, s...), nil
	case fullName:
		s, err := months.Name(int(n))
		if err != nil {
			return dst, err
		}
		return append(dst, s...), nil
	}
	return appendPadded(dst, n, t.width), nil
}

func (t fieldToken) tryParseNext(in string, at int, acc *accumulator, months *locale.Months) (int, error) {
	if t.name != numeric {
		return t.parseName(in, at, acc, months)
	}
	if t.fixed {
		end := at + t.width
		if end > len(in) {
			return at, &ParseError{Offset: at, Expected: t.element(), Err: ErrWidthMismatch}
		}
		for i := at; i < end; i++ {
			if !isDigit(in[i]) {
				return at, &ParseError{Offset: at, Expected: t.element(), Err: ErrWidthMismatch}
			}
		}
		n, err := strconv.ParseInt(in[at:end], 10, 64)
		if err != nil {
			return at, &ParseError{Offset: at, Expected: t.element(), Err: err}
		}
		acc.record(t.kind, n)
		return end, nil
	}
	// Greedy variable-width consumption, with an optional leading sign so
	// negative years survive a round trip.
	i := at
	if i < len(in) && in[i] == '-' {
		i++
	}
	j := i
	for j < len(in) && isDigit(in[j]) {
		j++
	}
	if j == i {
		return at, &ParseError{Offset: at, Expected: t.element(), Err: ErrNoDigits}
	}
	n, err := strconv.ParseInt(in[at:j], 10, 64)
	if err != nil {
		return at, &ParseError{Offset: at, Expected: t.element(), Err: err}
	}
	acc.record(t.kind, n)
	return j, nil
}

// parseName consumes the maximal run of letters at the cursor and resolves
// it against the month-name table. Name fields ignore width and fixedness
// in both directions; month names are bounded by the next non-letter. Both
// variants record under Month.
func (t fieldToken) parseName(in string, at int, acc *accumulator, months *locale.Months) (int, error) {
	j := at
	for j < len(in) {
		r, size := utf8.DecodeRuneInString(in[j:])
		if !unicode.IsLetter(r) {
			break
		}
		j += size
	}
	if j == at {
		return at, &ParseError{Offset: at, Expected: t.element(), Err: locale.ErrUnknownMonthName}
	}
	word := in[at:j]
	var (
		n   int
		err error
	)
	if t.name == abbrevName {
		n, err = months.FromAbbrev(word)
	} else {
		n, err = months.FromName(word)
	}
	if err != nil {
		return at, &ParseError{Offset: at, Expected: t.element(), Err: err}
	}
	acc.record(period.Month, int64(n))
	return j, nil
}

// delimToken is a literal text run, rendered verbatim and matched exactly
// on parse. Specifier letters can only end up here through escaping.
type delimToken struct {
	text string
}

func (t delimToken) render(dst []byte, _ Fields, _ *locale.Months) ([]byte, error) {
	return append(dst, t.text...), nil
}

func (t delimToken) tryParseNext(in string, at int, _ *accumulator, _ *locale.Months) (int, error) {
	if !strings.HasPrefix(in[at:], t.text) {
		return at, &ParseError{Offset: at, Expected: t.text, Err: ErrDelimiterMismatch}
	}
	return at + len(t.text), nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// appendPadded appends n with its digits zero-padded to at least width.
// Larger values are never truncated; the sign does not count against the
// width.
func appendPadded(dst []byte, n int64, width int) []byte {
	u := uint64(n)
	if n < 0 {
		dst = append(dst, '-')
		u = uint64(-n)
	}
	s := strconv.FormatUint(u, 10)
	for pad := width - len(s); pad > 0; pad-- {
		dst = append(dst, '0')
	}
	return append(dst, s...)
}
