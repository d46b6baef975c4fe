package numfmt

import (
	"sort"
	"strings"
	"testing"
)

func TestPresetTable(t *testing.T) {
	tests := []struct {
		id        string
		thousands string
		decimal   string
		decimals  int
		show      bool
		abbr      bool
	}{
		{"pt-ao", ".", ",", 0, false, false},
		{"currency-ao", ".", ",", 2, true, false},
		{"en-us", ",", ".", 0, false, false},
		{"currency-us", ",", ".", 2, true, false},
		{"pt-br", ".", ",", 0, false, false},
		{"currency-br", ".", ",", 2, true, false},
		{"eu", " ", ",", 0, false, false},
		{"abbreviated", ".", ",", 0, false, true},
		{"percentage", "", ",", 1, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			f, ok := Preset(tc.id)
			if !ok {
				t.Fatalf("Preset(%q) missing", tc.id)
			}
			if err := f.Validate(); err != nil {
				t.Fatalf("Preset(%q) invalid: %v", tc.id, err)
			}
			if f.ThousandsSep != tc.thousands || f.DecimalSep != tc.decimal {
				t.Errorf("Preset(%q) separators = %q/%q, want %q/%q",
					tc.id, f.ThousandsSep, f.DecimalSep, tc.thousands, tc.decimal)
			}
			if f.Decimals != tc.decimals || f.ShowDecimals != tc.show {
				t.Errorf("Preset(%q) decimals = %d/%v, want %d/%v",
					tc.id, f.Decimals, f.ShowDecimals, tc.decimals, tc.show)
			}
			if f.Abbreviate != tc.abbr {
				t.Errorf("Preset(%q) abbreviate = %v, want %v", tc.id, f.Abbreviate, tc.abbr)
			}
			if f.Suffixes != DefaultSuffixes() {
				t.Errorf("Preset(%q) suffixes = %+v, want defaults", tc.id, f.Suffixes)
			}
		})
	}

	if _, ok := Preset("nope"); ok {
		t.Error("Preset(\"nope\") unexpectedly present")
	}
}

func TestPresetIDs(t *testing.T) {
	ids := PresetIDs()
	if len(ids) != 9 {
		t.Fatalf("PresetIDs() returned %d ids, want 9: %v", len(ids), ids)
	}
	if !sort.StringsAreSorted(ids) {
		t.Errorf("PresetIDs() not sorted: %v", ids)
	}
	for _, id := range ids {
		if _, ok := Preset(id); !ok {
			t.Errorf("PresetIDs() lists %q but Preset misses it", id)
		}
	}
}

func TestPresetIsolation(t *testing.T) {
	f, _ := Preset("pt-ao")
	f.ThousandsSep = "X"
	f.Abbreviate = true

	again, _ := Preset("pt-ao")
	if again.ThousandsSep != "." || again.Abbreviate {
		t.Errorf("mutating a returned preset leaked into the table: %+v", again)
	}
}

func TestDefaultFormat(t *testing.T) {
	want, _ := Preset("pt-ao")
	if got := DefaultFormat(); got != want {
		t.Errorf("DefaultFormat() = %+v, want pt-ao preset %+v", got, want)
	}
}

func TestMatchPreset(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"pt-AO", "pt-ao"},
		{"en-US", "en-us"},
		{"en", "en-us"},
		{"en-GB", "en-us"},
		{"pt-BR", "pt-br"},
		{"fr", "eu"},
		{"fr-BE", "eu"},
		{"de-AT", "eu"},
		{"es-MX", "eu"},
		{"it", "eu"},
		{"zh", "pt-ao"},
		{"not a locale !!", "pt-ao"},
		{"", "pt-ao"},
	}
	for _, tc := range tests {
		t.Run(tc.locale, func(t *testing.T) {
			id, f := MatchPreset(tc.locale)
			if id != tc.want {
				t.Errorf("MatchPreset(%q) = %q, want %q", tc.locale, id, tc.want)
			}
			if err := f.Validate(); err != nil {
				t.Errorf("MatchPreset(%q) format invalid: %v", tc.locale, err)
			}
		})
	}
}

// TestMatchPresetBarePortuguese pins only the language: whether bare "pt"
// resolves to the Angolan or Brazilian preset depends on the matcher's
// likely-region data, and both are acceptable.
func TestMatchPresetBarePortuguese(t *testing.T) {
	id, _ := MatchPreset("pt")
	if !strings.HasPrefix(id, "pt-") {
		t.Errorf("MatchPreset(\"pt\") = %q, want a Portuguese preset", id)
	}
}

func TestMatchCurrencyPreset(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"pt-AO", "currency-ao"},
		{"en", "currency-us"},
		{"pt-BR", "currency-br"},
		{"fr", "currency-br"},
		{"zh", "currency-ao"},
	}
	for _, tc := range tests {
		t.Run(tc.locale, func(t *testing.T) {
			id, f := MatchCurrencyPreset(tc.locale)
			if id != tc.want {
				t.Errorf("MatchCurrencyPreset(%q) = %q, want %q", tc.locale, id, tc.want)
			}
			if f.Decimals != 2 || !f.ShowDecimals {
				t.Errorf("MatchCurrencyPreset(%q) = %+v, want two forced decimals", tc.locale, f)
			}
		})
	}
}
