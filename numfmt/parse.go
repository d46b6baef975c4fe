package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// ── parse result ──────────────────────────────────────────────────────────────

// ParseResult carries the numeric value extracted from a piece of text plus
// the non-numeric framing around it.
type ParseResult struct {
	// Value is the parsed number, or NaN when the text contained no digit
	// sequence.  Prefer [ParseResult.Found] and [ParseResult.ValueOrZero]
	// over comparing with NaN directly.
	Value float64
	// Prefix is the maximal leading run of characters that are neither
	// digits nor '-'.
	Prefix string
	// Suffix is the maximal trailing run of non-digit characters.
	Suffix string
}

// Found reports whether the text contained a digit sequence at all.
func (r ParseResult) Found() bool { return !math.IsNaN(r.Value) }

// ValueOrZero returns the parsed value, defaulting to 0 when no digits were
// found.  This is the fallback policy for counters: an element holding no
// number counts to zero rather than failing.
func (r ParseResult) ValueOrZero() float64 {
	if r.Found() {
		return r.Value
	}
	return 0
}

// ── entry points ──────────────────────────────────────────────────────────────

// Parse extracts a numeric value from text whose separator convention is
// unknown, inferring which of '.' and ',' are grouping marks and which is
// the decimal point.  The inference is a best-effort heuristic tuned for
// real-world counter text ("1,234", "1.234,56", "3,5"), not a general
// locale-aware number parser; genuinely ambiguous shapes such as "12,345"
// resolve to the grouping reading.  See the decision table in disambiguate.
//
// Text with no digits at all yields a result whose Value is NaN and whose
// Prefix and Suffix both cover the whole input.
func Parse(text string) ParseResult {
	return parseWith(text, 0)
}

// ParseDecimal is [Parse] with the guesswork removed: decimalSep names the
// decimal separator explicitly, every other separator character is treated
// as grouping and dropped, and the skeleton splits on the last occurrence
// of decimalSep.  No occurrence means the number is integral.  A zero
// decimalSep falls back to [Parse].
func ParseDecimal(text string, decimalSep rune) ParseResult {
	return parseWith(text, decimalSep)
}

func parseWith(text string, decimalSep rune) ParseResult {
	r := ParseResult{
		Value:  math.NaN(),
		Prefix: leadingAffix(text),
		Suffix: trailingAffix(text),
	}

	// With an explicit separator the complementary marks never make it
	// into the skeleton, which is exactly the "strip then split" contract.
	seps := ".,"
	if decimalSep != 0 {
		seps = string(decimalSep)
	}
	skeleton, negative := cleanNumeric(text, seps)
	if !strings.ContainsAny(skeleton, "0123456789") {
		return r
	}

	var canonical string
	if decimalSep != 0 {
		canonical = splitOnLast(skeleton, decimalSep)
	} else {
		canonical = disambiguate(skeleton)
	}

	v, err := strconv.ParseFloat(canonical, 64)
	if err != nil {
		// canonical is digit/dot-only by construction; keep the NaN
		// sentinel rather than guessing if that ever stops holding.
		return r
	}
	if negative {
		v = -v
	}
	r.Value = v
	return r
}

// ── cleaning ──────────────────────────────────────────────────────────────────

// cleanNumeric reduces text to its numeric skeleton: digits plus any
// characters of seps, with at most one minus folded into the negative flag.
// A minus only counts while no digit has been seen; later ones belong to
// the suffix text.
func cleanNumeric(text, seps string) (skeleton string, negative bool) {
	var b strings.Builder
	b.Grow(len(text))
	seenDigit := false
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
			b.WriteRune(r)
		case strings.ContainsRune(seps, r):
			b.WriteRune(r)
		case r == '-' && !seenDigit && !negative:
			negative = true
		}
	}
	return b.String(), negative
}

// ── separator disambiguation ──────────────────────────────────────────────────

// disambiguate converts a separator-bearing digit skeleton into canonical
// "1234.56" form.  It is a decision table over which separator characters
// survived cleaning; each branch documents its own tie-break rule and each
// is independently reachable from tests.
func disambiguate(s string) string {
	commas := strings.Count(s, ",")
	dots := strings.Count(s, ".")
	switch {
	case commas == 0 && dots == 0:
		return s
	case dots == 0:
		return resolveCommas(s, commas)
	case commas == 0:
		return resolveDots(s, dots)
	default:
		return resolveMixed(s)
	}
}

// resolveCommas handles skeletons whose only separator is the comma.
//
// Tie-break: a single comma is a decimal point only when followed by 1–2
// digits and preceded by at most 3, the shape of "3,5" and "12,75".
// Exactly three digits after it ("1,234") read as grouping, as does every
// other single-comma shape.  Two or more commas are always grouping.
func resolveCommas(s string, commas int) string {
	if commas == 1 {
		i := strings.IndexByte(s, ',')
		before, after := i, len(s)-i-1
		if after >= 1 && after <= 2 && before <= 3 {
			return s[:i] + "." + s[i+1:]
		}
	}
	return stripSeparators(s)
}

// resolveDots handles skeletons whose only separator is the dot.
//
// Tie-break: asymmetric with the comma rule because the dot doubles as the
// canonical decimal mark.  A single dot followed by exactly 3 digits reads
// as grouping ("1.234"); any other trailing length keeps it decimal with no
// limit on the integer side ("3.14159", "1234.5").  With several dots the
// final segment is decimal only when it has 1–2 digits ("1.234.5");
// otherwise every dot is grouping ("1.234.567").
func resolveDots(s string, dots int) string {
	i := strings.LastIndexByte(s, '.')
	after := len(s) - i - 1
	if dots == 1 {
		if after == 3 || after == 0 {
			return stripSeparators(s)
		}
		return s
	}
	if after >= 1 && after <= 2 {
		return stripSeparators(s[:i]) + "." + s[i+1:]
	}
	return stripSeparators(s)
}

// resolveMixed handles skeletons containing both comma and dot.
//
// Tie-break: whichever separator occurs last marks the decimal; every
// occurrence of the other, and any earlier occurrence of the winner, is
// grouping.  "1.234,56" therefore parses as 1234.56 and "12,345.67" as
// 12345.67.
func resolveMixed(s string) string {
	dec := '.'
	if strings.LastIndexByte(s, ',') > strings.LastIndexByte(s, '.') {
		dec = ','
	}
	return splitOnLast(s, dec)
}

// splitOnLast treats the final occurrence of sep as the decimal point and
// collapses everything else to digits: "1.234,56" with sep ',' becomes
// "1234.56".  Without any occurrence the skeleton is already integral.
func splitOnLast(s string, sep rune) string {
	i := strings.LastIndex(s, string(sep))
	if i < 0 {
		return stripSeparators(s)
	}
	intPart := stripSeparators(s[:i])
	fracPart := stripSeparators(s[i+len(string(sep)):])
	if fracPart == "" {
		return intPart
	}
	return intPart + "." + fracPart
}

// stripSeparators drops every non-digit character, collapsing grouped digit
// runs into one.
func stripSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ── affix extraction ──────────────────────────────────────────────────────────

// leadingAffix returns the maximal leading run of characters that are
// neither digits nor '-'.  The minus is excluded so a sign stays with the
// number rather than the prefix: "Kz -12" has prefix "Kz ".
func leadingAffix(text string) string {
	for i, r := range text {
		if r == '-' || (r >= '0' && r <= '9') {
			return text[:i]
		}
	}
	return text
}

// trailingAffix returns the maximal trailing run of non-digit characters.
// Unlike [leadingAffix] a minus counts as ordinary text here, so "12-" has
// suffix "-".  Digits are ASCII, so the scan is byte-wise.
func trailingAffix(text string) string {
	for i := len(text) - 1; i >= 0; i-- {
		if isDigit(text[i]) {
			return text[i+1:]
		}
	}
	return text
}

// isDigit reports whether b is an ASCII digit.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
