package format

import (
	"fmt"

	"github.com/coarsedate/period"
)

// nameStyle distinguishes numeric fields from the month-name variants.
type nameStyle int

const (
	numeric nameStyle = iota
	abbrevName
	fullName
)

// fieldSpec describes one specifier code of the pattern language.
type fieldSpec struct {
	kind period.Kind
	name nameStyle
}

// The specifier registry. u and U are month-name variants of the month
// field; they do not introduce a new kind. Parse defaults are per kind,
// see fieldDefault.
var specs = map[byte]fieldSpec{
	'y': {kind: period.Year},
	's': {kind: period.Semester},
	'q': {kind: period.Quarter},
	'm': {kind: period.Month},
	'u': {kind: period.Month, name: abbrevName},
	'U': {kind: period.Month, name: fullName},
	'w': {kind: period.Week},
	'd': {kind: period.Day},
}

func isSpecifier(c byte) bool {
	_, ok := specs[c]
	return ok
}

// SpecifierKind returns the period kind a specifier code denotes.
func SpecifierKind(c byte) (period.Kind, error) {
	sp, ok := specs[c]
	if !ok {
		return period.Undated, fmt.Errorf("%w %q", ErrUnknownSpecifier, string(c))
	}
	return sp.kind, nil
}

// requiredChains is the hand-curated table of coarser fields that must be
// known to resolve a composite of each kind.
var requiredChains = map[period.Kind][]period.Kind{
	period.Undated:  {},
	period.Year:     {period.Year},
	period.Semester: {period.Year, period.Semester},
	period.Quarter:  {period.Year, period.Quarter},
	period.Month:    {period.Year, period.Month},
	period.Week:     {period.Year, period.Week},
	period.Day:      {period.Year, period.Month, period.Day},
}

// RequiredFields returns the ordered chain of fields needed to resolve a
// composite value of kind k.
func RequiredFields(k period.Kind) []period.Kind {
	chain := requiredChains[k]
	out := make([]period.Kind, len(chain))
	copy(out, chain)
	return out
}

// fieldDefault returns the parse default for a field kind. Year has none:
// its absence is an error, not a defaultable gap.
func fieldDefault(k period.Kind) (int64, bool) {
	switch k {
	case period.Semester, period.Quarter, period.Month, period.Day:
		return 1, true
	case period.Week:
		return 0, true
	default:
		return 0, false
	}
}
