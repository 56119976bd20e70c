package locale

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestEnglishNames(t *testing.T) {
	tests := []struct {
		month  int
		name   string
		abbrev string
	}{
		{1, "January", "Jan"},
		{4, "April", "Apr"},
		{9, "September", "Sep"},
		{12, "December", "Dec"},
	}
	for _, tt := range tests {
		name, err := English.Name(tt.month)
		if err != nil {
			t.Fatalf("Name(%d) = %v", tt.month, err)
		}
		if name != tt.name {
			t.Errorf("Name(%d) = %q, want %q", tt.month, name, tt.name)
		}
		abbrev, err := English.Abbrev(tt.month)
		if err != nil {
			t.Fatalf("Abbrev(%d) = %v", tt.month, err)
		}
		if abbrev != tt.abbrev {
			t.Errorf("Abbrev(%d) = %q, want %q", tt.month, abbrev, tt.abbrev)
		}
	}
}

func TestMonthOutOfRange(t *testing.T) {
	for _, n := range []int{0, 13, -1} {
		if _, err := English.Name(n); err == nil {
			t.Errorf("Name(%d) should fail", n)
		}
		if _, err := English.Abbrev(n); err == nil {
			t.Errorf("Abbrev(%d) should fail", n)
		}
	}
}

func TestInverseLookups(t *testing.T) {
	tests := []struct {
		word string
		via  func(string) (int, error)
		want int
	}{
		{"April", English.FromName, 4},
		{"april", English.FromName, 4},
		{"APRIL", English.FromName, 4},
		{"Apr", English.FromAbbrev, 4},
		{"apr", English.FromAbbrev, 4},
		{"Dec", English.FromAbbrev, 12},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := tt.via(tt.word)
			if err != nil {
				t.Fatalf("lookup %q = %v", tt.word, err)
			}
			if got != tt.want {
				t.Errorf("lookup %q = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

func TestUnknownMonthName(t *testing.T) {
	if _, err := English.FromName("Brumaire"); !errors.Is(err, ErrUnknownMonthName) {
		t.Errorf("FromName = %v, want ErrUnknownMonthName", err)
	}
	// Full names do not resolve as abbreviations.
	if _, err := English.FromAbbrev("January"); !errors.Is(err, ErrUnknownMonthName) {
		t.Errorf("FromAbbrev = %v, want ErrUnknownMonthName", err)
	}
}

func TestLookupMatching(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		want language.Tag
	}{
		{language.English, language.English},
		{language.AmericanEnglish, language.English},
		{language.Spanish, language.Spanish},
		{language.French, language.French},
		{language.German, language.German},
		{language.Japanese, language.English}, // no table, falls back
	}
	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			m, err := Lookup(tt.tag)
			if err != nil {
				t.Fatalf("Lookup(%v) = %v", tt.tag, err)
			}
			if m.Tag() != tt.want {
				t.Errorf("Lookup(%v) = %v, want %v", tt.tag, m.Tag(), tt.want)
			}
		})
	}

	if _, err := Lookup(language.Und); !errors.Is(err, ErrUnknownLocale) {
		t.Errorf("Lookup(Und) = %v, want ErrUnknownLocale", err)
	}
}

func TestLocalizedTables(t *testing.T) {
	es, err := Lookup(language.Spanish)
	if err != nil {
		t.Fatalf("Lookup(es) = %v", err)
	}
	if name, _ := es.Name(1); name != "enero" {
		t.Errorf("es Name(1) = %q, want %q", name, "enero")
	}
	if n, err := es.FromAbbrev("dic"); err != nil || n != 12 {
		t.Errorf("es FromAbbrev(dic) = %d, %v, want 12", n, err)
	}

	fr, err := Lookup(language.French)
	if err != nil {
		t.Fatalf("Lookup(fr) = %v", err)
	}
	if n, err := fr.FromName("août"); err != nil || n != 8 {
		t.Errorf("fr FromName(août) = %d, %v, want 8", n, err)
	}
}

func TestTags(t *testing.T) {
	tags := Tags()
	if len(tags) < 4 {
		t.Fatalf("Tags() = %v, want at least en, es, fr, de", tags)
	}
	if tags[0] != language.English {
		t.Errorf("Tags()[0] = %v, want English (default)", tags[0])
	}
}

func TestNewCustomTable(t *testing.T) {
	var names, abbrevs [12]string
	for i := range names {
		names[i] = English.names[i]
		abbrevs[i] = English.abbrevs[i]
	}
	names[0], abbrevs[0] = "Frostmoon", "Fro"
	m := New(language.Make("x-test"), names, abbrevs)
	if n, err := m.FromName("frostmoon"); err != nil || n != 1 {
		t.Errorf("FromName(frostmoon) = %d, %v, want 1", n, err)
	}
}
