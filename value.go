package period

import (
	"fmt"
	"strconv"
)

// Value is a single period magnitude: one kind and one signed count.
// The count is the raw unit number of that kind (quarter 3, week 12, ...);
// its meaning is fixed per kind and only reinterpreted by Convert.
// Values are immutable and comparable.
type Value struct {
	kind Kind
	n    int64
}

// New returns a value of the given kind and count.
func New(k Kind, n int64) Value {
	return Value{kind: k, n: n}
}

// Kind returns the granularity of the value.
func (v Value) Kind() Kind { return v.kind }

// Count returns the raw unit count.
func (v Value) Count() int64 { return v.n }

// Field implements the accessor capability used by the format engine.
// A bare value can only answer for its own kind.
func (v Value) Field(k Kind) (int64, bool) {
	if k == v.kind {
		return v.n, true
	}
	return 0, false
}

// Convert scales the count into another kind using approximate per-year
// ratios (52 weeks per year, 365 days per year). The result truncates
// toward zero. Undated values cannot be converted.
func (v Value) Convert(to Kind) (Value, error) {
	if v.kind.PerYear() == 0 || to.PerYear() == 0 {
		return Value{}, fmt.Errorf("cannot convert %s to %s", v.kind, to)
	}
	return Value{kind: to, n: v.n * to.PerYear() / v.kind.PerYear()}, nil
}

// String renders year values in their four-digit form and undated values
// as a bare count. Other kinds cannot fill their predefined pattern from a
// single magnitude (a quarter count has no year), so they render in
// kind(count) notation. Use the format package for full control.
func (v Value) String() string {
	switch v.kind {
	case Year:
		return padInt(v.n, 4)
	case Undated:
		return strconv.FormatInt(v.n, 10)
	default:
		return fmt.Sprintf("%s(%d)", v.kind, v.n)
	}
}

// padInt renders n with its digits zero-padded to at least width, never
// truncating. The sign is not counted against the width.
func padInt(n int64, width int) string {
	u := uint64(n)
	neg := n < 0
	if neg {
		u = uint64(-n)
	}
	s := strconv.FormatUint(u, 10)
	if pad := width - len(s); pad > 0 {
		s = "0000000000000000000"[:pad] + s
	}
	if neg {
		s = "-" + s
	}
	return s
}
