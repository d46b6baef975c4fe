// Package main provides a terminal demo for the countup library: it
// animates a single counter given on the command line, or a whole set
// loaded from a YAML config, rewriting each line in place as frames tick.
//
// Usage:
//
//	countup [flags] <text>
//	countup -config counters.yaml
//
// With a positional text argument the flags describe one ad-hoc counter:
//
//	countup -duration 1500ms -easing bounce -preset en-us '$1,234.56'
//	countup -abbreviate -start 100 "12.500.000 users"
//
// Precedence for the shared defaults is stock values, then the config
// file's defaults block, then COUNTUP_* environment variables, then flags.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/seriatim/go-countup/anim"
	"github.com/seriatim/go-countup/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a counters YAML file")
		duration   = flag.Duration("duration", 0, "animation duration, e.g. 1500ms")
		easing     = flag.String("easing", "", "easing curve id, e.g. bounce")
		preset     = flag.String("preset", "", "number format preset, e.g. en-us")
		fps        = flag.Int("fps", 0, "frames per second")
		start      = flag.Float64("start", 0, "value to count from")
		decimal    = flag.String("decimal", "", "decimal separator hint for parsing the text")
		abbreviate = flag.Bool("abbreviate", false, "fold large values into K/M/B/T tiers")
	)
	flag.Parse()

	var flagOver config.Defaults
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			flagOver.Duration = *duration
		case "easing":
			flagOver.Easing = *easing
		case "preset":
			flagOver.Preset = *preset
		case "fps":
			flagOver.FPS = *fps
		}
	})

	if *configPath != "" {
		runFile(*configPath, flagOver)
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: countup [flags] <text>")
		fmt.Fprintln(os.Stderr, "       countup -config counters.yaml")
		flag.PrintDefaults()
		os.Exit(1)
	}

	envOver, err := config.EnvOverrides()
	if err != nil {
		fatal(err)
	}
	d := config.Overlay(config.Overlay(config.StockDefaults(), envOver), flagOver)
	if err := d.Validate(); err != nil {
		fatal(err)
	}

	c := config.Counter{
		Name:       "counter",
		Text:       flag.Arg(0),
		Start:      *start,
		Decimal:    *decimal,
		Abbreviate: *abbreviate,
	}
	cfg, err := c.SessionConfig(d)
	if err != nil {
		fatal(err)
	}
	s, err := anim.NewSession(cfg)
	if err != nil {
		fatal(err)
	}
	animate("", s, d.FrameInterval())
}

// runFile animates every counter in the config file, one after another.
func runFile(path string, flagOver config.Defaults) {
	f, err := config.Load(path)
	if err != nil {
		fatal(err)
	}
	d, err := f.ResolvedDefaults()
	if err != nil {
		fatal(err)
	}
	d = config.Overlay(d, flagOver)
	if err := d.Validate(); err != nil {
		fatal(err)
	}

	for _, c := range f.Counters {
		cfg, err := c.SessionConfig(d)
		if err != nil {
			fatal(err)
		}
		s, err := anim.NewSession(cfg)
		if err != nil {
			fatal(err)
		}
		animate(c.Name+": ", s, d.FrameInterval())
	}
}

// animate drives the session off the wall clock, redrawing one line until
// the terminal frame lands.  The line is padded to the widest frame seen
// so a shrinking display leaves no residue.
func animate(label string, s *anim.Session, interval time.Duration) {
	began := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	width := 0
	for now := range ticker.C {
		frame := s.Tick(now.Sub(began))
		line := label + frame.Display
		if len(line) > width {
			width = len(line)
		}
		fmt.Printf("\r%-*s", width, line)
		if frame.Phase == anim.Completed {
			fmt.Println()
			return
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
