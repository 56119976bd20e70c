// Package locale provides month-name tables for period formatting: for each
// supported language, the twelve full month names and their abbreviations,
// with case-insensitive reverse lookup.
//
// Tables are loaded from embedded YAML catalogs, one file per language,
// named by its BCP-47 tag (en.yaml, es.yaml, ...). Custom tables can be
// built with New and passed to the format engine directly.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tablesFS embed.FS

var (
	// ErrUnknownMonthName is returned when a word matches no month name or
	// abbreviation in the table.
	ErrUnknownMonthName = errors.New("unknown month name")
	// ErrUnknownLocale is returned when no embedded table matches a tag.
	ErrUnknownLocale = errors.New("unknown locale")
)

// Months is one language's month-name table. Immutable after construction
// and safe for concurrent use.
type Months struct {
	tag      language.Tag
	names    [12]string
	abbrevs  [12]string
	byName   map[string]int
	byAbbrev map[string]int
}

// New builds a month table for a language. Reverse lookups are
// case-insensitive.
func New(tag language.Tag, names, abbrevs [12]string) *Months {
	m := &Months{
		tag:      tag,
		names:    names,
		abbrevs:  abbrevs,
		byName:   make(map[string]int, 12),
		byAbbrev: make(map[string]int, 12),
	}
	for i := 0; i < 12; i++ {
		m.byName[strings.ToLower(names[i])] = i + 1
		m.byAbbrev[strings.ToLower(abbrevs[i])] = i + 1
	}
	return m
}

// Tag returns the language this table belongs to.
func (m *Months) Tag() language.Tag { return m.tag }

// Name returns the full name of month n (1..12).
func (m *Months) Name(n int) (string, error) {
	if n < 1 || n > 12 {
		return "", fmt.Errorf("month %d out of range", n)
	}
	return m.names[n-1], nil
}

// Abbrev returns the abbreviated name of month n (1..12).
func (m *Months) Abbrev(n int) (string, error) {
	if n < 1 || n > 12 {
		return "", fmt.Errorf("month %d out of range", n)
	}
	return m.abbrevs[n-1], nil
}

// FromName resolves a full month name to its number.
func (m *Months) FromName(word string) (int, error) {
	if n, ok := m.byName[strings.ToLower(word)]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q (%s)", ErrUnknownMonthName, word, m.tag)
}

// FromAbbrev resolves an abbreviated month name to its number.
func (m *Months) FromAbbrev(word string) (int, error) {
	if n, ok := m.byAbbrev[strings.ToLower(word)]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q (%s)", ErrUnknownMonthName, word, m.tag)
}

// table is the YAML shape of one catalog file.
type table struct {
	Months []string `yaml:"months"`
	Abbrev []string `yaml:"abbrev"`
}

var (
	tables  []*Months
	tags    []language.Tag
	matcher language.Matcher

	// English is the default table used by the format engine.
	English *Months
)

func init() {
	entries, err := fs.ReadDir(tablesFS, "tables")
	if err != nil {
		panic(fmt.Errorf("locale: read embedded tables: %w", err))
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	// English first so the matcher falls back to it.
	sort.Slice(names, func(i, j int) bool {
		if (names[i] == "en.yaml") != (names[j] == "en.yaml") {
			return names[i] == "en.yaml"
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		data, err := fs.ReadFile(tablesFS, "tables/"+name)
		if err != nil {
			panic(fmt.Errorf("locale: read %s: %w", name, err))
		}
		m, err := parseTable(strings.TrimSuffix(name, filepath.Ext(name)), data)
		if err != nil {
			panic(fmt.Errorf("locale: %s: %w", name, err))
		}
		tables = append(tables, m)
		tags = append(tags, m.tag)
	}
	matcher = language.NewMatcher(tags)
	English = tables[0]
}

func parseTable(lang string, data []byte) (*Months, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse tag %q: %w", lang, err)
	}
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if len(t.Months) != 12 || len(t.Abbrev) != 12 {
		return nil, fmt.Errorf("want 12 months and 12 abbreviations, got %d and %d", len(t.Months), len(t.Abbrev))
	}
	var names, abbrevs [12]string
	copy(names[:], t.Months)
	copy(abbrevs[:], t.Abbrev)
	return New(tag, names, abbrevs), nil
}

// Tags lists the languages with an embedded table, English first.
func Tags() []language.Tag {
	out := make([]language.Tag, len(tags))
	copy(out, tags)
	return out
}

// Lookup returns the embedded table best matching the given tag, falling
// back to English for related or unknown languages.
func Lookup(tag language.Tag) (*Months, error) {
	if tag == language.Und {
		return nil, fmt.Errorf("%w: undefined tag", ErrUnknownLocale)
	}
	_, idx, _ := matcher.Match(tag)
	return tables[idx], nil
}
