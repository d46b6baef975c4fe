package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envOverrides is the environment-variable surface.  Tags carry no
// envDefault on purpose: an unset variable must stay a zero field so
// [Overlay] can tell "not set" from "set to a value".
type envOverrides struct {
	Duration time.Duration `env:"COUNTUP_DURATION"`
	Easing   string        `env:"COUNTUP_EASING"`
	Preset   string        `env:"COUNTUP_PRESET"`
	FPS      int           `env:"COUNTUP_FPS"`
}

// EnvOverrides reads the COUNTUP_* environment variables into a partial
// [Defaults].  Fields for unset variables are zero; apply the result with
// [Overlay].  COUNTUP_DURATION takes Go duration syntax such as "1500ms".
func EnvOverrides() (Defaults, error) {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return Defaults{}, fmt.Errorf("parse countup env: %w", err)
	}
	return Defaults{
		Duration: o.Duration,
		Easing:   o.Easing,
		Preset:   o.Preset,
		FPS:      o.FPS,
	}, nil
}
