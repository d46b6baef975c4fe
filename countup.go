// Package countup animates numeric counters.  It parses display text whose
// thousands and decimal separators are ambiguous, renders intermediate
// values in the same style, and steps a value from start to target along an
// easing curve.  The core is clock-agnostic: callers feed elapsed time and
// receive ready-to-print frames.
//
// # Quick start
//
//	s, err := countup.StartFromText("Kz 1.234,56", anim.Config{
//		Duration: 1500 * time.Millisecond,
//		Easing:   "bounce",
//	})
//	if err != nil { ... }
//
//	began := time.Now()
//	for {
//	    frame := s.Tick(time.Since(began))
//	    fmt.Print("\r" + frame.Display)
//	    if frame.Phase == anim.Completed {
//	        break
//	    }
//	    time.Sleep(33 * time.Millisecond)
//	}
//
// # Parsing display text
//
// [Parse] extracts the first number from free text, inferring which
// separator is the decimal mark from heuristics on the digit layout, and
// returns the surrounding prefix and suffix untouched.  "1.234,56" counts
// as European grouping, "1,234.56" as US grouping, "1.234" as one thousand
// two hundred thirty-four.  When the inference would guess wrong,
// [ParseDecimal] pins the decimal separator explicitly.
//
// # Formats and presets
//
// A [numfmt.Format] describes how values are rendered: separator
// characters, decimal places, and optional K/M/B/T abbreviation.
// [numfmt.Preset] returns ready-made locale presets, [numfmt.ParsePattern]
// derives a Format from an Excel-style format code such as "#,##0.00", and
// [numfmt.NewFormat] builds one directly.
//
// # Animation
//
// [anim.NewSession] turns an [anim.Config] into a session; each
// [anim.Session.Tick] maps elapsed wall time through an easing curve to an
// interpolated value and its rendered display.  The terminal frame always
// renders the exact target value, so a counter never ends on a
// rounding artifact.  [anim.Session.Frames] yields the same frames at a
// fixed cadence for callers that prefer ranging to managing a clock.
//
// # Configuration
//
// Package config loads counter definitions from YAML with COUNTUP_*
// environment overrides; cmd/countup is a terminal demo driving them.
package countup

import (
	"time"

	"github.com/seriatim/go-countup/anim"
	"github.com/seriatim/go-countup/numfmt"
)

// Version is the current version of the go-countup library.
const Version = "0.1.0"

// DefaultDuration is the animation length [StartFromText] applies when the
// base config leaves Duration unset.
const DefaultDuration = 2 * time.Second

// Parse extracts the first number from free text, inferring the decimal
// separator.  See [numfmt.Parse].
func Parse(text string) numfmt.ParseResult {
	return numfmt.Parse(text)
}

// ParseDecimal extracts the first number from free text with the decimal
// separator pinned to decimalSep.  See [numfmt.ParseDecimal].
func ParseDecimal(text string, decimalSep rune) numfmt.ParseResult {
	return numfmt.ParseDecimal(text, decimalSep)
}

// Render formats a value under f.  See [numfmt.Render].
func Render(v float64, f numfmt.Format) string {
	return numfmt.Render(v, f)
}

// Reformat parses the number in text and renders it again under f, keeping
// the surrounding prefix and suffix.  Text without digits comes back
// unchanged.
func Reformat(text string, f numfmt.Format) string {
	r := numfmt.Parse(text)
	if !r.Found() {
		return text
	}
	return r.Prefix + numfmt.Render(r.Value, f) + r.Suffix
}

// StartFromText parses text for the target value and affixes, fills the
// gaps in base, and starts a session.  Fields already set in base win:
// only a zero Duration falls back to [DefaultDuration], and only empty
// Prefix/Suffix take the affixes parsed from text.  base.TargetValue is
// always replaced by the parsed value; text without digits counts to zero.
func StartFromText(text string, base anim.Config) (*anim.Session, error) {
	parsed := numfmt.Parse(text)
	base.TargetValue = parsed.ValueOrZero()
	if base.Prefix == "" {
		base.Prefix = parsed.Prefix
	}
	if base.Suffix == "" {
		base.Suffix = parsed.Suffix
	}
	if base.Duration == 0 {
		base.Duration = DefaultDuration
	}
	return anim.NewSession(base)
}
