// Package config loads declarative counter definitions: a YAML file names
// the counters and their animation settings, COUNTUP_* environment
// variables override the file's defaults, and [Counter.SessionConfig]
// resolves each entry into a ready [anim.Config].  The core packages never
// import this one; it exists for the surrounding program.
package config

import (
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/seriatim/go-countup/anim"
	"github.com/seriatim/go-countup/numfmt"
)

// ── resolved defaults ─────────────────────────────────────────────────────────

// Defaults are the animation settings applied when a counter leaves them
// unset.  The zero value of a field means "not specified" to [Overlay].
type Defaults struct {
	Duration time.Duration
	Easing   string
	Preset   string
	FPS      int
}

// StockDefaults returns the library's built-in fallback settings: a two
// second cubic ease-out under the pt-ao preset at 30 frames per second.
func StockDefaults() Defaults {
	return Defaults{
		Duration: 2 * time.Second,
		Easing:   anim.DefaultEasing,
		Preset:   "pt-ao",
		FPS:      30,
	}
}

// Overlay returns base with every specified (non-zero) field of over
// replacing the corresponding base field.  Chained overlays build the
// usual precedence: stock values, then the file, then the environment.
func Overlay(base, over Defaults) Defaults {
	if over.Duration > 0 {
		base.Duration = over.Duration
	}
	if over.Easing != "" {
		base.Easing = over.Easing
	}
	if over.Preset != "" {
		base.Preset = over.Preset
	}
	if over.FPS > 0 {
		base.FPS = over.FPS
	}
	return base
}

// Validate checks that d is complete and usable.  Unlike the anim package,
// which quietly falls back on unknown easing ids, configuration fails
// loudly: a typo in a file must not change motion unnoticed.
func (d Defaults) Validate() error {
	if d.Duration <= 0 {
		return fmt.Errorf("countup config: default duration must be positive, got %v", d.Duration)
	}
	if !anim.KnownCurve(d.Easing) {
		return fmt.Errorf("countup config: unknown default easing %q", d.Easing)
	}
	if _, ok := numfmt.Preset(d.Preset); !ok {
		return fmt.Errorf("countup config: unknown default preset %q", d.Preset)
	}
	if d.FPS <= 0 {
		return fmt.Errorf("countup config: fps must be positive, got %d", d.FPS)
	}
	return nil
}

// FrameInterval converts the FPS setting into the tick interval a driver
// loop should use.
func (d Defaults) FrameInterval() time.Duration {
	return time.Second / time.Duration(d.FPS)
}

// ── file shape ────────────────────────────────────────────────────────────────

// File is the top-level structure of a counters YAML file.
type File struct {
	Defaults FileDefaults `yaml:"defaults"`
	Counters []Counter    `yaml:"counters"`
}

// FileDefaults mirrors [Defaults] with YAML-friendly field types; zero
// fields inherit from the stock values.
type FileDefaults struct {
	DurationMs int    `yaml:"duration_ms"`
	Easing     string `yaml:"easing"`
	Preset     string `yaml:"preset"`
	FPS        int    `yaml:"fps"`
}

func (fd FileDefaults) toDefaults() Defaults {
	d := Defaults{Easing: fd.Easing, Preset: fd.Preset, FPS: fd.FPS}
	if fd.DurationMs > 0 {
		d.Duration = time.Duration(fd.DurationMs) * time.Millisecond
	}
	return d
}

// Counter declares one animated counter.
type Counter struct {
	// Name identifies the counter in logs and errors.  Required, unique.
	Name string `yaml:"name"`
	// Text is the raw display text holding the target number, parsed with
	// the package numfmt heuristics.  Required; text without digits
	// counts to zero.
	Text string `yaml:"text"`
	// Start is the value the animation counts from.
	Start float64 `yaml:"start"`
	// Preset names a numfmt preset supplying the separators.  Empty uses
	// the default preset.
	Preset string `yaml:"preset"`
	// Pattern optionally derives decimals, grouping and affixes from an
	// Excel-style format code; the preset still supplies the separator
	// characters.
	Pattern string `yaml:"pattern"`
	// Decimal optionally pins the decimal separator for parsing Text,
	// bypassing inference.  Exactly one character when set.
	Decimal string `yaml:"decimal"`
	// Easing and DurationMs override the defaults for this counter.
	Easing     string `yaml:"easing"`
	DurationMs int    `yaml:"duration_ms"`
	// Abbreviate folds large values into K/M/B/T tiers.
	Abbreviate bool `yaml:"abbreviate"`
	// Prefix and Suffix, when set, replace the affixes parsed from Text.
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
}

// Load reads and parses a counters YAML file, validating every entry.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read countup config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse countup config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the file's defaults block and every counter.  It is
// called by [Load]; hand-built Files should call it before use.
func (f *File) Validate() error {
	fd := f.Defaults
	if fd.DurationMs < 0 {
		return fmt.Errorf("countup config: defaults duration_ms %d is negative", fd.DurationMs)
	}
	if fd.FPS < 0 {
		return fmt.Errorf("countup config: defaults fps %d is negative", fd.FPS)
	}
	if fd.Easing != "" && !anim.KnownCurve(fd.Easing) {
		return fmt.Errorf("countup config: unknown defaults easing %q", fd.Easing)
	}
	if fd.Preset != "" {
		if _, ok := numfmt.Preset(fd.Preset); !ok {
			return fmt.Errorf("countup config: unknown defaults preset %q", fd.Preset)
		}
	}

	seen := make(map[string]bool, len(f.Counters))
	for i, c := range f.Counters {
		if c.Name == "" {
			return fmt.Errorf("countup config: counter %d: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("countup config: duplicate counter %q", c.Name)
		}
		seen[c.Name] = true
		if err := c.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c Counter) validate() error {
	if c.Text == "" {
		return fmt.Errorf("countup config: counter %q: text is required", c.Name)
	}
	if c.DurationMs < 0 {
		return fmt.Errorf("countup config: counter %q: duration_ms %d is negative", c.Name, c.DurationMs)
	}
	if c.Decimal != "" && utf8.RuneCountInString(c.Decimal) != 1 {
		return fmt.Errorf("countup config: counter %q: decimal %q must be a single character", c.Name, c.Decimal)
	}
	if c.Easing != "" && !anim.KnownCurve(c.Easing) {
		return fmt.Errorf("countup config: counter %q: unknown easing %q", c.Name, c.Easing)
	}
	if c.Preset != "" {
		if _, ok := numfmt.Preset(c.Preset); !ok {
			return fmt.Errorf("countup config: counter %q: unknown preset %q", c.Name, c.Preset)
		}
	}
	if c.Pattern != "" {
		if _, err := numfmt.ParsePattern(c.Pattern); err != nil {
			return fmt.Errorf("countup config: counter %q: %w", c.Name, err)
		}
	}
	return nil
}

// ResolvedDefaults applies the file's defaults block over the stock
// values, then any environment overrides on top: environment beats file
// beats stock.
func (f *File) ResolvedDefaults() (Defaults, error) {
	envOver, err := EnvOverrides()
	if err != nil {
		return Defaults{}, err
	}
	d := Overlay(StockDefaults(), f.Defaults.toDefaults())
	d = Overlay(d, envOver)
	if err := d.Validate(); err != nil {
		return Defaults{}, err
	}
	return d, nil
}

// ── counter resolution ────────────────────────────────────────────────────────

// SessionConfig resolves the counter into a ready [anim.Config] under the
// given defaults.
//
// Format resolution: the preset (the counter's own, else the default one)
// supplies the separator characters; an explicit pattern then wins the
// structural fields — decimals, whether grouping applies, and literal
// affixes.  The counter text supplies the target value, and its parsed
// affixes fill Prefix/Suffix unless the counter or pattern set them
// explicitly.
func (c Counter) SessionConfig(d Defaults) (anim.Config, error) {
	presetID := c.Preset
	if presetID == "" {
		presetID = d.Preset
	}
	format, ok := numfmt.Preset(presetID)
	if !ok {
		return anim.Config{}, fmt.Errorf("countup config: counter %q: unknown preset %q", c.Name, presetID)
	}

	prefix, suffix := c.Prefix, c.Suffix

	if c.Pattern != "" {
		p, err := numfmt.ParsePattern(c.Pattern)
		if err != nil {
			return anim.Config{}, fmt.Errorf("countup config: counter %q: %w", c.Name, err)
		}
		thousands := ""
		if p.Format.ThousandsSep != "" {
			thousands = format.ThousandsSep
		}
		structural, err := p.Format.WithSeparators(thousands, format.DecimalSep)
		if err != nil {
			return anim.Config{}, fmt.Errorf("countup config: counter %q: %w", c.Name, err)
		}
		structural.Abbreviate = format.Abbreviate
		format = structural
		if prefix == "" {
			prefix = p.Prefix
		}
		if suffix == "" {
			suffix = p.Suffix
		}
	}

	var parsed numfmt.ParseResult
	if c.Decimal != "" {
		parsed = numfmt.ParseDecimal(c.Text, []rune(c.Decimal)[0])
	} else {
		parsed = numfmt.Parse(c.Text)
	}
	if prefix == "" {
		prefix = parsed.Prefix
	}
	if suffix == "" {
		suffix = parsed.Suffix
	}

	duration := d.Duration
	if c.DurationMs > 0 {
		duration = time.Duration(c.DurationMs) * time.Millisecond
	}
	easing := c.Easing
	if easing == "" {
		easing = d.Easing
	}
	if !anim.KnownCurve(easing) {
		return anim.Config{}, fmt.Errorf("countup config: counter %q: unknown easing %q", c.Name, easing)
	}

	return anim.Config{
		StartValue:  c.Start,
		TargetValue: parsed.ValueOrZero(),
		Duration:    duration,
		Easing:      easing,
		Format:      format,
		Abbreviate:  c.Abbreviate,
		Prefix:      prefix,
		Suffix:      suffix,
	}, nil
}
