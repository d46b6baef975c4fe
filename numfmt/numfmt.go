// Package numfmt infers numeric values from text of unknown formatting
// convention and renders float64 values back into display strings under an
// explicit [Format].  It is the formatting engine behind the anim package's
// frames and the root countup facade.
//
// The two directions are deliberately asymmetric: [Parse] is a best-effort
// heuristic over an ambiguous grammar (see the decision table in parse.go),
// while [Render] is fully deterministic.  A [Format] comes from one of three
// places: the preset table ([Preset]), an Excel-style format code
// ([ParsePattern], tokenized by [github.com/xuri/nfp]), or literal
// construction ([NewFormat]).
package numfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ── format definition ─────────────────────────────────────────────────────────

// Format describes one rendering convention.  It is a plain value: copy it
// freely, compare it with ==.  The zero Format is not valid (a decimal
// separator is always required); start from [DefaultFormat], a [Preset], or
// [NewFormat] instead.
type Format struct {
	// ThousandsSep is the grouping mark inserted every three digits of the
	// integer part.  Empty disables grouping; otherwise it must be exactly
	// one character and must differ from DecimalSep.
	ThousandsSep string
	// DecimalSep separates the integer and fractional parts.  Exactly one
	// character.
	DecimalSep string
	// Decimals is the number of decimal places rendered, non-negative.
	// The fractional part is zero-padded to this width when shown.
	Decimals int
	// ShowDecimals forces the fractional part even when rounding left it
	// all zeros.  Without it a zero fraction is omitted entirely.
	ShowDecimals bool
	// Abbreviate folds values of magnitude >= 1000 into the suffix tiers
	// below, rendering "1,5K" instead of "1.500".
	Abbreviate bool
	// Suffixes holds the tier suffixes used when Abbreviate is set.
	Suffixes Suffixes
}

// Suffixes maps each abbreviation magnitude tier to its display suffix.
type Suffixes struct {
	Thousand string // 10^3
	Million  string // 10^6
	Billion  string // 10^9
	Trillion string // 10^12
}

// DefaultSuffixes returns the stock short-scale tier suffixes.
func DefaultSuffixes() Suffixes {
	return Suffixes{Thousand: "K", Million: "M", Billion: "B", Trillion: "T"}
}

// ErrMalformedFormat is returned by [NewFormat] and [Format.Validate] when a
// Format's separators or decimal count are unusable.  The classic case is a
// thousands separator equal to the decimal separator, which would make every
// rendered string ambiguous.
var ErrMalformedFormat = errors.New("numfmt: malformed format")

// NewFormat builds a validated Format carrying the default abbreviation
// suffixes.  Abbreviation starts off; set Abbreviate on the returned value
// to enable it.
func NewFormat(thousandsSep, decimalSep string, decimals int, showDecimals bool) (Format, error) {
	f := Format{
		ThousandsSep: thousandsSep,
		DecimalSep:   decimalSep,
		Decimals:     decimals,
		ShowDecimals: showDecimals,
		Suffixes:     DefaultSuffixes(),
	}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// Validate reports whether f is internally consistent: non-negative decimal
// count, single-character separators, and disjoint grouping and decimal
// marks.  All errors wrap [ErrMalformedFormat].
func (f Format) Validate() error {
	if f.Decimals < 0 {
		return fmt.Errorf("%w: negative decimals %d", ErrMalformedFormat, f.Decimals)
	}
	if utf8.RuneCountInString(f.DecimalSep) != 1 {
		return fmt.Errorf("%w: decimal separator %q must be a single character", ErrMalformedFormat, f.DecimalSep)
	}
	if f.ThousandsSep != "" {
		if utf8.RuneCountInString(f.ThousandsSep) != 1 {
			return fmt.Errorf("%w: thousands separator %q must be empty or a single character", ErrMalformedFormat, f.ThousandsSep)
		}
		if f.ThousandsSep == f.DecimalSep {
			return fmt.Errorf("%w: thousands and decimal separator are both %q", ErrMalformedFormat, f.DecimalSep)
		}
	}
	return nil
}

// WithSeparators returns a copy of f using the given separators, revalidated.
// The original is left untouched.
func (f Format) WithSeparators(thousandsSep, decimalSep string) (Format, error) {
	g := f
	g.ThousandsSep = thousandsSep
	g.DecimalSep = decimalSep
	if err := g.Validate(); err != nil {
		return Format{}, err
	}
	return g, nil
}

// ── rendering ─────────────────────────────────────────────────────────────────

// Render formats v under f.  It never fails: NaN, infinities and negative
// zero all render as zero under f's conventions.  Render does not validate
// f; callers holding a hand-built Format should run [Format.Validate] once
// at construction, after which rendering can never collide separators.
func Render(v float64, f Format) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		v = 0 // non-finite values and -0 both render as plain zero
	}
	if f.Abbreviate && math.Abs(v) >= 1000 {
		return renderAbbreviated(v, f)
	}
	return renderPlain(v, f)
}

// renderAbbreviated folds v into the largest tier it reaches and renders the
// scaled remainder with a single forced decimal place, so 1500 becomes
// "1,5K" under a comma-decimal Format.  The sign never participates in the
// scaling; it is reattached at the end.  Only called for |v| >= 1000.
func renderAbbreviated(v float64, f Format) string {
	abs := math.Abs(v)
	div, suffix := f.Suffixes.tier(abs)

	scaled := f
	scaled.Decimals = 1
	scaled.ShowDecimals = true

	out := renderPlain(abs/div, scaled) + suffix
	if v < 0 {
		out = "-" + out
	}
	return out
}

// tier selects the largest magnitude bucket abs reaches.  abs must be
// >= 1000, so the thousand tier is the floor.
func (s Suffixes) tier(abs float64) (float64, string) {
	switch {
	case abs >= 1e12:
		return 1e12, s.Trillion
	case abs >= 1e9:
		return 1e9, s.Billion
	case abs >= 1e6:
		return 1e6, s.Million
	default:
		return 1e3, s.Thousand
	}
}

// renderPlain rounds v to f.Decimals places and assembles
// sign + grouped integer digits + optional fraction.
func renderPlain(v float64, f Format) string {
	formatted := strconv.FormatFloat(math.Abs(v), 'f', f.Decimals, 64)

	intStr := formatted
	fracStr := ""
	if dotIdx := strings.IndexByte(formatted, '.'); dotIdx >= 0 {
		intStr = formatted[:dotIdx]
		fracStr = formatted[dotIdx+1:]
	}

	if f.ThousandsSep != "" && len(intStr) > 3 {
		intStr = groupDigits(intStr, f.ThousandsSep)
	}

	var sb strings.Builder
	sb.Grow(len(formatted) + 4)
	// The sign is dropped when rounding left only zeros, so -0.4 at zero
	// decimals renders "0", not "-0".
	if v < 0 && hasNonZeroDigit(formatted) {
		sb.WriteByte('-')
	}
	sb.WriteString(intStr)
	if f.Decimals > 0 && (f.ShowDecimals || hasNonZeroDigit(fracStr)) {
		sb.WriteString(f.DecimalSep)
		sb.WriteString(fracStr)
	}
	return sb.String()
}

// groupDigits inserts sep every three digits from the right.  s must be
// digits only, no sign — [strconv.FormatFloat] in 'f' mode guarantees that
// for the absolute value.
func groupDigits(s, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	b.Grow(n + (n/3)*len(sep))
	rem := n % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < n; i += 3 {
		b.WriteString(sep)
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// hasNonZeroDigit reports whether s contains a digit other than '0'.
func hasNonZeroDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '1' && s[i] <= '9' {
			return true
		}
	}
	return false
}
