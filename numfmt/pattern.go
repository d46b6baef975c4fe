package numfmt

import (
	"errors"
	"fmt"

	"github.com/xuri/nfp"
)

// Pattern is a [Format] derived from an Excel-style number format code,
// together with the literal text the code placed around the digits.
type Pattern struct {
	Format Format
	// Prefix is the literal text before the first numeric placeholder,
	// Suffix the literal text after the last one.  Literal runs between
	// placeholders are dropped.
	Prefix string
	Suffix string
}

// ErrEmptyPattern is returned by [ParsePattern] when a format code contains
// no numeric placeholders to anchor a Format on.
var ErrEmptyPattern = errors.New("numfmt: pattern has no numeric placeholders")

// ParsePattern derives a [Format] plus literal affixes from an Excel-style
// number format code.  All code tokenization is delegated to
// [github.com/xuri/nfp]; this function only interprets the token stream.
//
//	p, err := numfmt.ParsePattern(`"$"#,##0.00`)
//	// p.Prefix == "$", grouping on, Decimals == 2, ShowDecimals == true
//
// Zero placeholders after the decimal point force the fraction
// (ShowDecimals); hash placeholders widen Decimals but leave the fraction
// optional.  A percent token becomes a literal "%" in the affix text with
// no value scaling, since counter values are already display-scale.
// Separators default to the en convention ("," grouping, "." decimal);
// use [Format.WithSeparators] to move the result to another locale.
//
// Only the first section of the code is read.  Counters render a single
// live value, so negative/zero/text sections would never be selected
// consistently anyway.
func ParsePattern(code string) (Pattern, error) {
	ps := nfp.NumberFormatParser()
	sections := ps.Parse(code)
	if len(sections) == 0 {
		return Pattern{}, fmt.Errorf("%w: %q", ErrEmptyPattern, code)
	}
	sec := sections[0]

	var (
		prefix, suffix []byte
		decZeros       int
		decHashes      int
		hasThousands   bool
		afterDecimal   bool
		seenCore       bool
	)

	for _, tok := range sec.Items {
		switch tok.TType {
		case nfp.TokenTypeZeroPlaceHolder:
			seenCore = true
			suffix = suffix[:0]
			if afterDecimal {
				decZeros += len(tok.TValue)
			}
		case nfp.TokenTypeHashPlaceHolder:
			seenCore = true
			suffix = suffix[:0]
			if afterDecimal {
				decHashes += len(tok.TValue)
			}
		case nfp.TokenTypeDecimalPoint:
			seenCore = true
			suffix = suffix[:0]
			afterDecimal = true
		case nfp.TokenTypeThousandsSeparator:
			seenCore = true
			suffix = suffix[:0]
			hasThousands = true
		case nfp.TokenTypeLiteral:
			if seenCore {
				suffix = append(suffix, tok.TValue...)
			} else {
				prefix = append(prefix, tok.TValue...)
			}
		case nfp.TokenTypePercent:
			if seenCore {
				suffix = append(suffix, '%')
			} else {
				prefix = append(prefix, '%')
			}
		default:
			// Colour, condition, alignment and date tokens have no
			// meaning for a counter format.
		}
	}
	if !seenCore {
		return Pattern{}, fmt.Errorf("%w: %q", ErrEmptyPattern, code)
	}

	f := Format{
		DecimalSep:   ".",
		Decimals:     decZeros + decHashes,
		ShowDecimals: decZeros > 0,
		Suffixes:     DefaultSuffixes(),
	}
	if hasThousands {
		f.ThousandsSep = ","
	}
	return Pattern{Format: f, Prefix: string(prefix), Suffix: string(suffix)}, nil
}
