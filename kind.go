// Package period defines coarse calendar period values: years, semesters,
// quarters, months, weeks and days, plus a dimensionless undated counter.
// The format and locale subpackages turn these values into text and back.
package period

import (
	"fmt"
	"strings"
)

// Kind identifies the granularity of a period, ordered coarse to fine.
type Kind int

const (
	Undated Kind = iota
	Year
	Semester
	Quarter
	Month
	Week
	Day
)

func (k Kind) String() string {
	switch k {
	case Undated:
		return "undated"
	case Year:
		return "year"
	case Semester:
		return "semester"
	case Quarter:
		return "quarter"
	case Month:
		return "month"
	case Week:
		return "week"
	case Day:
		return "day"
	default:
		return "period"
	}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= Undated && k <= Day
}

// ParseKind parses a kind name such as "quarter" or "quarterly".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "undated":
		return Undated, nil
	case "year", "yearly":
		return Year, nil
	case "semester", "semesterly":
		return Semester, nil
	case "quarter", "quarterly":
		return Quarter, nil
	case "month", "monthly":
		return Month, nil
	case "week", "weekly":
		return Week, nil
	case "day", "daily":
		return Day, nil
	default:
		return Undated, fmt.Errorf("unknown period kind %q", s)
	}
}

// PerYear returns the approximate number of units of k in one year.
// Undated has no calendar footprint and returns 0.
func (k Kind) PerYear() int64 {
	switch k {
	case Year:
		return 1
	case Semester:
		return 2
	case Quarter:
		return 4
	case Month:
		return 12
	case Week:
		return 52
	case Day:
		return 365
	default:
		return 0
	}
}

// Finer reports whether k is a finer granularity than other.
// Undated is neither finer nor coarser than any calendar kind.
func (k Kind) Finer(other Kind) bool {
	if k == Undated || other == Undated {
		return false
	}
	return k > other
}

// Per returns the approximate number of units of k in one unit of the
// coarser kind, truncated to an integer (e.g. 4 weeks per month).
func (k Kind) Per(coarser Kind) (int64, error) {
	if k.PerYear() == 0 || coarser.PerYear() == 0 {
		return 0, fmt.Errorf("no unit ratio between %s and %s", k, coarser)
	}
	if coarser.Finer(k) {
		return 0, fmt.Errorf("%s is finer than %s", coarser, k)
	}
	return k.PerYear() / coarser.PerYear(), nil
}
