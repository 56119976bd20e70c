package format

import (
	"github.com/coarsedate/period"
	"github.com/coarsedate/period/locale"
)

// Format is a compiled pattern: an ordered token program plus the pattern
// it was compiled from. A Format is immutable after compilation and safe
// for unlimited concurrent use; one instance can serve many values.
type Format struct {
	pattern string
	tokens  []token
	months  *locale.Months
}

// Pattern returns the source pattern the Format was compiled from.
func (f *Format) Pattern() string { return f.pattern }

func (f *Format) String() string { return f.pattern }

// Months returns the month-name table the Format renders and parses with.
func (f *Format) Months() *locale.Months { return f.months }

// TokenInfo describes one compiled token for inspection. Specifier is 0
// for delimiter tokens, whose text is in Literal.
type TokenInfo struct {
	Specifier byte
	Kind      period.Kind
	Width     int
	Fixed     bool
	Literal   string
}

// Tokens returns a description of the compiled token program, in order.
func (f *Format) Tokens() []TokenInfo {
	out := make([]TokenInfo, 0, len(f.tokens))
	for _, t := range f.tokens {
		switch t := t.(type) {
		case fieldToken:
			out = append(out, TokenInfo{Specifier: t.spec, Kind: t.kind, Width: t.width, Fixed: t.fixed})
		case delimToken:
			out = append(out, TokenInfo{Literal: t.text})
		}
	}
	return out
}

// Format renders src through the token program, strictly left to right.
// It fails with ErrMissingField when src cannot answer a field the pattern
// demands. Output order is determined solely by token order, so a pattern
// may print the month before the year.
func (f *Format) Format(src Fields) (string, error) {
	dst, err := f.AppendFormat(make([]byte, 0, len(f.pattern)+8), src)
	if err != nil {
		return "", err
	}
	return string(dst), nil
}

// AppendFormat is like Format but appends to dst and returns the extended
// buffer.
func (f *Format) AppendFormat(dst []byte, src Fields) ([]byte, error) {
	for _, t := range f.tokens {
		var err error
		dst, err = t.render(dst, src, f.months)
		if err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// Predefined formats, one per calendar kind, compiled once at startup.
var (
	YearFormat     = MustCompile("yyyy")
	SemesterFormat = MustCompile("yyyy-Ss")
	QuarterFormat  = MustCompile("yyyy-Qq")
	MonthFormat    = MustCompile("yyyy-mm")
	WeekFormat     = MustCompile("yyyy-Www")
	DayFormat      = MustCompile("yyyy-mm-dd")
)

// Predefined returns the predefined format for a calendar kind. Undated
// has none.
func Predefined(k period.Kind) (*Format, bool) {
	switch k {
	case period.Year:
		return YearFormat, true
	case period.Semester:
		return SemesterFormat, true
	case period.Quarter:
		return QuarterFormat, true
	case period.Month:
		return MonthFormat, true
	case period.Week:
		return WeekFormat, true
	case period.Day:
		return DayFormat, true
	default:
		return nil, false
	}
}
