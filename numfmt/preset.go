package numfmt

import (
	"sort"

	"golang.org/x/text/language"
)

// presets is the built-in [Format] table, keyed by identifier.  The
// separator choices mirror the display conventions counters ship with in
// the wild; pt-ao is the house default (see [DefaultFormat]).  Every entry
// carries the stock tier suffixes so flipping Abbreviate on a copy needs no
// further setup.
var presets = map[string]Format{
	"pt-ao":       {ThousandsSep: ".", DecimalSep: ",", Suffixes: DefaultSuffixes()},
	"currency-ao": {ThousandsSep: ".", DecimalSep: ",", Decimals: 2, ShowDecimals: true, Suffixes: DefaultSuffixes()},
	"en-us":       {ThousandsSep: ",", DecimalSep: ".", Suffixes: DefaultSuffixes()},
	"currency-us": {ThousandsSep: ",", DecimalSep: ".", Decimals: 2, ShowDecimals: true, Suffixes: DefaultSuffixes()},
	"pt-br":       {ThousandsSep: ".", DecimalSep: ",", Suffixes: DefaultSuffixes()},
	"currency-br": {ThousandsSep: ".", DecimalSep: ",", Decimals: 2, ShowDecimals: true, Suffixes: DefaultSuffixes()},
	"eu":          {ThousandsSep: " ", DecimalSep: ",", Suffixes: DefaultSuffixes()},
	"abbreviated": {ThousandsSep: ".", DecimalSep: ",", Abbreviate: true, Suffixes: DefaultSuffixes()},
	"percentage":  {DecimalSep: ",", Decimals: 1, Suffixes: DefaultSuffixes()},
}

// Preset returns the Format registered under id.  The returned value is a
// copy; callers may tweak it freely without affecting the table.
func Preset(id string) (Format, bool) {
	f, ok := presets[id]
	return f, ok
}

// PresetIDs returns the sorted identifiers of every built-in Format.
func PresetIDs() []string {
	ids := make([]string, 0, len(presets))
	for id := range presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultFormat returns the pt-ao preset, the convention applied when a
// caller configures nothing at all.
func DefaultFormat() Format { return presets["pt-ao"] }

// ── locale matching ───────────────────────────────────────────────────────────

// localePresets binds BCP 47 tags to the preset serving them.  Order
// matters twice: the matcher prefers earlier entries on ties, and entry 0
// is what unmatched locales fall back to.
var localePresets = []struct {
	tag language.Tag
	id  string
}{
	{language.MustParse("pt-AO"), "pt-ao"},
	{language.AmericanEnglish, "en-us"},
	{language.BrazilianPortuguese, "pt-br"},
	{language.French, "eu"},
	{language.German, "eu"},
	{language.Spanish, "eu"},
	{language.Italian, "eu"},
}

var presetMatcher = language.NewMatcher(presetTags())

func presetTags() []language.Tag {
	tags := make([]language.Tag, len(localePresets))
	for i, lp := range localePresets {
		tags[i] = lp.tag
	}
	return tags
}

// currencySibling maps each locale preset to its two-decimal currency
// variant.  The eu preset has no currency sibling of its own; currency-br
// shares its comma decimal, which is the part that matters for money.
var currencySibling = map[string]string{
	"pt-ao": "currency-ao",
	"en-us": "currency-us",
	"pt-br": "currency-br",
	"eu":    "currency-br",
}

// MatchPreset picks the preset best serving a BCP 47 locale string such as
// "pt-AO", "en-GB" or "fr".  Unparsable or unmatched locales fall back to
// pt-ao, the matcher's default candidate.
func MatchPreset(locale string) (string, Format) {
	id := matchLocale(locale)
	return id, presets[id]
}

// MatchCurrencyPreset is [MatchPreset] resolved to the locale's currency
// variant: two forced decimals under the same separator convention.
func MatchCurrencyPreset(locale string) (string, Format) {
	id := currencySibling[matchLocale(locale)]
	return id, presets[id]
}

func matchLocale(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return localePresets[0].id
	}
	_, idx, _ := presetMatcher.Match(tag)
	return localePresets[idx].id
}
