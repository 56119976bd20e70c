package period

import (
	"testing"
	"time"
)

func TestDateFields(t *testing.T) {
	d := OfDay(2018, 4, 3)
	tests := []struct {
		field Kind
		want  int64
	}{
		{Year, 2018},
		{Month, 4},
		{Day, 3},
		{Quarter, 2},  // derived from month
		{Semester, 1}, // derived from month
	}
	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			got, ok := d.Field(tt.field)
			if !ok {
				t.Fatalf("Field(%v) not answered", tt.field)
			}
			if got != tt.want {
				t.Errorf("Field(%v) = %d, want %d", tt.field, got, tt.want)
			}
		})
	}

	if _, ok := d.Field(Week); ok {
		t.Error("a day date has no week component")
	}
}

func TestDateSemesterFromQuarter(t *testing.T) {
	d := OfQuarter(2018, 4)
	if got, ok := d.Field(Semester); !ok || got != 2 {
		t.Errorf("Field(Semester) = %d, %t, want 2, true", got, ok)
	}
}

func TestComposeRetainsExtraFields(t *testing.T) {
	d := Compose(Month, map[Kind]int64{Year: 2018, Month: 1, Quarter: 2})
	if d.Kind() != Month {
		t.Errorf("Kind() = %v, want %v", d.Kind(), Month)
	}
	// An explicitly set quarter wins over derivation from the month.
	if got, _ := d.Field(Quarter); got != 2 {
		t.Errorf("Field(Quarter) = %d, want 2", got)
	}
}

func TestOfTime(t *testing.T) {
	// 2018-04-03 was a Tuesday in ISO week 14.
	ts := time.Date(2018, time.April, 3, 15, 4, 5, 0, time.UTC)
	tests := []struct {
		kind Kind
		want Date
	}{
		{Year, OfYear(2018)},
		{Semester, OfSemester(2018, 1)},
		{Quarter, OfQuarter(2018, 2)},
		{Month, OfMonth(2018, 4)},
		{Week, OfWeek(2018, 14)},
		{Day, OfDay(2018, 4, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := OfTime(ts, tt.kind); got != tt.want {
				t.Errorf("OfTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOfTimeISOWeekYear(t *testing.T) {
	// January 1st 2016 belongs to ISO week 53 of 2015.
	d := OfTime(time.Date(2016, time.January, 1, 0, 0, 0, 0, time.UTC), Week)
	if got := OfWeek(2015, 53); d != got {
		t.Errorf("OfTime() = %v, want %v", d, got)
	}
}

func TestDateValue(t *testing.T) {
	v, ok := OfQuarter(2018, 2).Value()
	if !ok {
		t.Fatal("Value() not answered")
	}
	if v != New(Quarter, 2) {
		t.Errorf("Value() = %v, want %v", v, New(Quarter, 2))
	}
}

func TestDateString(t *testing.T) {
	tests := []struct {
		date Date
		want string
	}{
		{OfYear(2018), "2018"},
		{OfSemester(2018, 1), "2018-S1"},
		{OfQuarter(2018, 2), "2018-Q2"},
		{OfMonth(2018, 4), "2018-04"},
		{OfWeek(2018, 7), "2018-W07"},
		{OfDay(2018, 4, 3), "2018-04-03"},
		{Date{}, "undated"},
	}
	for _, tt := range tests {
		if got := tt.date.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
