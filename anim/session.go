package anim

import (
	"errors"
	"fmt"
	"time"

	"github.com/seriatim/go-countup/numfmt"
)

// ── lifecycle ─────────────────────────────────────────────────────────────────

// Phase tracks a session through its life.  It only ever moves forward.
type Phase int

const (
	// Idle means Tick has not been called yet.
	Idle Phase = iota
	// Running covers the span between the first tick and the duration
	// elapsing.
	Running
	// Completed is terminal: the final frame is cached and every further
	// Tick returns it unchanged.
	Completed
)

// String returns the phase name used in logs and test output.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ── configuration ─────────────────────────────────────────────────────────────

// Config describes one counting animation.  It is caller-owned: [NewSession]
// copies it and never writes back.
type Config struct {
	// StartValue and TargetValue bound the interpolation.  Counting down
	// is simply a target below the start.
	StartValue  float64
	TargetValue float64
	// Duration is the total animation time.  It must be positive.
	Duration time.Duration
	// Easing names a curve from this package's registry; see [CurveIDs].
	// Empty or unknown identifiers use [DefaultEasing].
	Easing string
	// Format drives the rendering of every frame.  The zero Format means
	// [numfmt.DefaultFormat].
	Format numfmt.Format
	// Abbreviate switches the format to tier abbreviation on top of
	// whatever the format itself says.  It never clears a format that
	// already abbreviates.
	Abbreviate bool
	// Prefix and Suffix are glued verbatim around every rendered value,
	// typically carried over from a [numfmt.ParseResult].
	Prefix string
	Suffix string
}

// ErrInvalidDuration is returned by [NewSession] when a Config carries a
// zero or negative duration.
var ErrInvalidDuration = errors.New("anim: duration must be positive")

// ── session ───────────────────────────────────────────────────────────────────

// Frame is the result of one [Session.Tick].
type Frame struct {
	// Value is the interpolated counter value, or exactly TargetValue on
	// and after the final tick.
	Value float64
	// Progress is linear elapsed/duration clamped to [0, 1], before
	// easing is applied.
	Progress float64
	// Display is Prefix + rendered Value + Suffix.
	Display string
	// Phase is the session phase as of this frame.
	Phase Phase
}

// Session is the state machine driving one animated counter.  It is
// clock-agnostic: the caller feeds [Session.Tick] elapsed time measured
// from the session's own start, from whatever timer it controls.
//
// A Session owns only its own phase and cached final frame.  Distinct
// sessions are fully independent and may be driven from different
// goroutines without coordination; a single session must be driven from
// one goroutine at a time.
type Session struct {
	cfg    Config
	curve  Func
	format numfmt.Format
	phase  Phase
	final  Frame // set once, when phase reaches Completed
}

// NewSession validates cfg and returns a new session in the Idle phase.
// The returned error wraps [ErrInvalidDuration] or
// [numfmt.ErrMalformedFormat].
func NewSession(cfg Config) (*Session, error) {
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidDuration, cfg.Duration)
	}
	format := cfg.Format
	if format == (numfmt.Format{}) {
		format = numfmt.DefaultFormat()
	}
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("anim: config format: %w", err)
	}
	if cfg.Abbreviate {
		format.Abbreviate = true
	}
	return &Session{
		cfg:    cfg,
		curve:  Curve(cfg.Easing),
		format: format,
		phase:  Idle,
	}, nil
}

// Phase reports the session's current phase.
func (s *Session) Phase() Phase { return s.phase }

// Config returns a copy of the configuration the session was built from.
func (s *Session) Config() Config { return s.cfg }

// Tick advances the session to the given elapsed time and returns its
// frame.  Negative elapsed clamps to zero; the first call still leaves
// Idle.  Once elapsed reaches the duration the frame carries TargetValue
// verbatim rather than the eased interpolation, which may miss the target
// by floating-point error even at full progress.  That corrective frame is
// cached, and every later Tick returns it unchanged regardless of the
// elapsed value passed in.
func (s *Session) Tick(elapsed time.Duration) Frame {
	if s.phase == Completed {
		return s.final
	}
	s.phase = Running

	if elapsed < 0 {
		elapsed = 0
	}
	progress := float64(elapsed) / float64(s.cfg.Duration)
	if progress >= 1 {
		s.phase = Completed
		s.final = Frame{
			Value:    s.cfg.TargetValue,
			Progress: 1,
			Display:  s.display(s.cfg.TargetValue),
			Phase:    Completed,
		}
		return s.final
	}

	eased := s.curve(progress)
	value := s.cfg.StartValue + (s.cfg.TargetValue-s.cfg.StartValue)*eased
	return Frame{
		Value:    value,
		Progress: progress,
		Display:  s.display(value),
		Phase:    Running,
	}
}

// Frames iterates the session at a fixed cadence: elapsed times 0, step,
// 2*step and so on, ending with the terminal frame.  A session that has
// already completed yields only its cached terminal frame.  A step of zero
// or less jumps straight to the target.
//
// Frames uses Go 1.22+ range-over-func semantics:
//
//	for frame := range s.Frames(33 * time.Millisecond) {
//	    fmt.Println(frame.Display)
//	}
func (s *Session) Frames(step time.Duration) func(yield func(Frame) bool) {
	return func(yield func(Frame) bool) {
		if step <= 0 {
			step = s.cfg.Duration
		}
		for elapsed := time.Duration(0); ; elapsed += step {
			frame := s.Tick(elapsed)
			if !yield(frame) {
				return
			}
			if frame.Phase == Completed {
				return
			}
		}
	}
}

// display renders v under the session's effective format with the affixes
// attached.
func (s *Session) display(v float64) string {
	return s.cfg.Prefix + numfmt.Render(v, s.format) + s.cfg.Suffix
}
