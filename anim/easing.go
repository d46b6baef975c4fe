// Package anim drives counting animations: a [Session] turns elapsed time
// into eased progress, an interpolated value and a rendered display string,
// using the numfmt package for formatting.  It owns no clock; callers feed
// [Session.Tick] elapsed durations from whatever timer they control, which
// keeps every session deterministic and unit-testable without sleeping.
package anim

import (
	"math"
	"sort"
)

// Func maps linear progress in [0, 1] to eased progress.  Outputs are not
// confined to [0, 1]: elastic overshoots on both sides, steps and dramatic
// are discontinuous.  Session interpolation is plain linear blending, which
// stays well-defined for any real eased value.
type Func func(t float64) float64

// DefaultEasing is the curve applied when a Config names no easing, or an
// unknown one.
const DefaultEasing = "easeOutCubic"

// curves is the registry behind [Curve].  The keys are the public easing
// vocabulary accepted by Config.Easing.
var curves = map[string]Func{
	"linear":       easeLinear,
	"slow":         easeSlow,
	"fast":         easeFast,
	"bounce":       easeBounce,
	"elastic":      easeElastic,
	"steps":        easeSteps,
	"smooth":       easeSmooth,
	"dramatic":     easeDramatic,
	"wave":         easeWave,
	"easeOutCubic": easeOutCubic,
}

// Curve returns the easing function registered under id.  Unknown ids
// resolve to the [DefaultEasing] curve, so a stray identifier still
// animates; the config package validates ids loudly before they get here.
func Curve(id string) Func {
	if f, ok := curves[id]; ok {
		return f
	}
	return curves[DefaultEasing]
}

// KnownCurve reports whether id names a registered curve.
func KnownCurve(id string) bool {
	_, ok := curves[id]
	return ok
}

// CurveIDs returns the sorted identifiers of every registered curve.
func CurveIDs() []string {
	ids := make([]string, 0, len(curves))
	for id := range curves {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// easeOutCubic is the default: fast start, gentle landing.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// easeLinear is the identity ramp.
func easeLinear(t float64) float64 { return t }

// easeSlow holds back early and sprints at the end.
func easeSlow(t float64) float64 { return t * t * t * t }

// easeFast covers most of the distance immediately.
func easeFast(t float64) float64 { return 1 - math.Pow(1-t, 0.3) }

// easeBounce is the standard four-segment quadratic bounce-out.
func easeBounce(t float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// easeElastic springs past the target and settles, leaving [0, 1] on both
// sides along the way.  The endpoints are pinned exactly.
func easeElastic(t float64) float64 {
	const c4 = 2 * math.Pi / 3
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*c4)) / 2
	default:
		return math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*c4)/2 + 1
	}
}

// easeSteps quantizes progress to five discrete levels.
func easeSteps(t float64) float64 { return math.Floor(t*5) / 5 }

// easeSmooth is a quadratic ease-in-out split at the midpoint.
func easeSmooth(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := 1 - t
	return 1 - 2*u*u
}

// easeDramatic holds at zero for the first 80% of the time, then rushes
// linearly to the target.
func easeDramatic(t float64) float64 {
	if t < 0.8 {
		return 0
	}
	return (t - 0.8) / 0.2
}

// easeWave oscillates around the linear ramp.  It never lands exactly on
// 1 in floating point, so the final frame relies on the session's terminal
// correction rather than the curve.
func easeWave(t float64) float64 { return math.Sin(t*2*math.Pi)*0.1 + t }
