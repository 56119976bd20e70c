package period

import (
	"fmt"
	"time"
)

// Date is a composite date-like value: a calendar date truncated to a
// period granularity, carrying the individual field components that
// granularity needs. Fields beyond the granularity's own chain may also be
// present (a parser can record a quarter on a month-granularity date); no
// calendar-validity check is applied beyond integer range.
// Dates are immutable and comparable.
type Date struct {
	kind   Kind
	set    uint8
	fields [Day + 1]int64
}

func bit(k Kind) uint8 { return 1 << uint(k) }

// Compose builds a date of the given kind from explicitly set fields.
// Field values are recorded as given; Undated keys are ignored.
func Compose(k Kind, fields map[Kind]int64) Date {
	d := Date{kind: k}
	for fk, n := range fields {
		if fk <= Undated || fk > Day {
			continue
		}
		d.fields[fk] = n
		d.set |= bit(fk)
	}
	return d
}

// OfYear returns the year-granularity date for the given year.
func OfYear(year int64) Date {
	return Compose(Year, map[Kind]int64{Year: year})
}

// OfSemester returns the semester-granularity date for year and semester.
func OfSemester(year, semester int64) Date {
	return Compose(Semester, map[Kind]int64{Year: year, Semester: semester})
}

// OfQuarter returns the quarter-granularity date for year and quarter.
func OfQuarter(year, quarter int64) Date {
	return Compose(Quarter, map[Kind]int64{Year: year, Quarter: quarter})
}

// OfMonth returns the month-granularity date for year and month.
func OfMonth(year, month int64) Date {
	return Compose(Month, map[Kind]int64{Year: year, Month: month})
}

// OfWeek returns the week-granularity date for year and week number.
func OfWeek(year, week int64) Date {
	return Compose(Week, map[Kind]int64{Year: year, Week: week})
}

// OfDay returns the day-granularity date for year, month and day.
func OfDay(year, month, day int64) Date {
	return Compose(Day, map[Kind]int64{Year: year, Month: month, Day: day})
}

// OfTime truncates a wall-clock time to the given granularity. Week uses
// the ISO week number together with the ISO week-based year.
func OfTime(t time.Time, k Kind) Date {
	year, month, day := t.Date()
	switch k {
	case Year:
		return OfYear(int64(year))
	case Semester:
		return OfSemester(int64(year), int64(month-1)/6+1)
	case Quarter:
		return OfQuarter(int64(year), int64(month-1)/3+1)
	case Month:
		return OfMonth(int64(year), int64(month))
	case Week:
		isoYear, isoWeek := t.ISOWeek()
		return OfWeek(int64(isoYear), int64(isoWeek))
	case Day:
		return OfDay(int64(year), int64(month), int64(day))
	default:
		return Date{kind: Undated}
	}
}

// Kind returns the granularity of the date.
func (d Date) Kind() Kind { return d.kind }

// Field implements the accessor capability used by the format engine.
// Explicitly set fields win; semester and quarter are derived from a set
// month (or semester from a set quarter) when not set themselves.
func (d Date) Field(k Kind) (int64, bool) {
	if k > Undated && k <= Day && d.set&bit(k) != 0 {
		return d.fields[k], true
	}
	switch k {
	case Quarter:
		if m, ok := d.Field(Month); ok {
			return (m-1)/3 + 1, true
		}
	case Semester:
		if m, ok := d.Field(Month); ok {
			return (m-1)/6 + 1, true
		}
		if q, ok := d.Field(Quarter); ok {
			return (q-1)/2 + 1, true
		}
	}
	return 0, false
}

// Value returns the date's own-granularity count (the quarter number of a
// quarter date, the year of a year date).
func (d Date) Value() (Value, bool) {
	n, ok := d.Field(d.kind)
	if !ok {
		return Value{}, false
	}
	return New(d.kind, n), true
}

// String renders the date in its kind's predefined pattern shape.
func (d Date) String() string {
	year, _ := d.Field(Year)
	switch d.kind {
	case Year:
		return padInt(year, 4)
	case Semester:
		n, _ := d.Field(Semester)
		return fmt.Sprintf("%s-S%d", padInt(year, 4), n)
	case Quarter:
		n, _ := d.Field(Quarter)
		return fmt.Sprintf("%s-Q%d", padInt(year, 4), n)
	case Month:
		n, _ := d.Field(Month)
		return fmt.Sprintf("%s-%s", padInt(year, 4), padInt(n, 2))
	case Week:
		n, _ := d.Field(Week)
		return fmt.Sprintf("%s-W%s", padInt(year, 4), padInt(n, 2))
	case Day:
		m, _ := d.Field(Month)
		n, _ := d.Field(Day)
		return fmt.Sprintf("%s-%s-%s", padInt(year, 4), padInt(m, 2), padInt(n, 2))
	default:
		return "undated"
	}
}
