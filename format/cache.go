package format

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/coarsedate/period"
)

// Compilation is pure and idempotent, so the cache is an optimization,
// not a correctness requirement. singleflight keeps it to at most one
// compile per pattern under concurrent load.
var (
	cache     sync.Map // pattern -> *Format
	compiling singleflight.Group
)

// Cached returns the compiled Format for a pattern, compiling it at most
// once per process. Cached formats use the default month-name table; use
// Compile with WithMonths for other locales.
func Cached(pattern string) (*Format, error) {
	if f, ok := cache.Load(pattern); ok {
		return f.(*Format), nil
	}
	v, err, _ := compiling.Do(pattern, func() (any, error) {
		f, err := Compile(pattern)
		if err != nil {
			return nil, err
		}
		cache.Store(pattern, f)
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Format), nil
}

// Render formats src with a raw pattern, compiling through the cache.
// Callers formatting many values should hold a compiled *Format instead.
func Render(src Fields, pattern string) (string, error) {
	f, err := Cached(pattern)
	if err != nil {
		return "", err
	}
	return f.Format(src)
}

// Parse parses text against a raw pattern, compiling through the cache.
// Callers parsing many inputs should hold a compiled *Format instead.
func Parse(text, pattern string) (period.Date, error) {
	f, err := Cached(pattern)
	if err != nil {
		return period.Date{}, err
	}
	return f.Parse(text)
}
