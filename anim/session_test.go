package anim

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/seriatim/go-countup/numfmt"
)

// newTestSession builds a session or fails the test immediately.
func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionValidation(t *testing.T) {
	t.Run("zero duration", func(t *testing.T) {
		_, err := NewSession(Config{TargetValue: 10})
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("err = %v, want ErrInvalidDuration", err)
		}
	})
	t.Run("negative duration", func(t *testing.T) {
		_, err := NewSession(Config{Duration: -time.Second})
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("err = %v, want ErrInvalidDuration", err)
		}
	})
	t.Run("colliding separators", func(t *testing.T) {
		_, err := NewSession(Config{
			Duration: time.Second,
			Format:   numfmt.Format{ThousandsSep: ",", DecimalSep: ","},
		})
		if !errors.Is(err, numfmt.ErrMalformedFormat) {
			t.Errorf("err = %v, want ErrMalformedFormat", err)
		}
	})
	t.Run("valid starts idle", func(t *testing.T) {
		s := newTestSession(t, Config{TargetValue: 10, Duration: time.Second})
		if got := s.Phase(); got != Idle {
			t.Errorf("Phase() = %v, want idle", got)
		}
	})
}

// TestSessionBounce walks the canonical case: a bounce to 100 over one
// second starts at exactly 0 and finishes at exactly 100.
func TestSessionBounce(t *testing.T) {
	s := newTestSession(t, Config{
		TargetValue: 100,
		Duration:    time.Second,
		Easing:      "bounce",
	})

	first := s.Tick(0)
	if first.Value != 0 || first.Progress != 0 {
		t.Errorf("Tick(0) = value %v progress %v, want 0 and 0", first.Value, first.Progress)
	}
	if first.Phase != Running {
		t.Errorf("Tick(0) phase = %v, want running", first.Phase)
	}
	if first.Display != "0" {
		t.Errorf("Tick(0) display = %q, want %q", first.Display, "0")
	}

	final := s.Tick(time.Second)
	if final.Value != 100 {
		t.Errorf("final value = %v, want exactly 100", final.Value)
	}
	if final.Progress != 1 || final.Phase != Completed {
		t.Errorf("final = progress %v phase %v, want 1 and completed", final.Progress, final.Phase)
	}
	if final.Display != "100" {
		t.Errorf("final display = %q, want %q", final.Display, "100")
	}
}

// TestSessionTerminalExactness drives every curve past its duration and
// demands the target value verbatim, overshooting curves included.
func TestSessionTerminalExactness(t *testing.T) {
	for _, id := range CurveIDs() {
		t.Run(id, func(t *testing.T) {
			s := newTestSession(t, Config{
				StartValue:  3,
				TargetValue: 97.3,
				Duration:    750 * time.Millisecond,
				Easing:      id,
			})
			got := s.Tick(900 * time.Millisecond)
			if got.Value != 97.3 {
				t.Errorf("%s final value = %v, want exactly 97.3", id, got.Value)
			}
			if got.Phase != Completed {
				t.Errorf("%s final phase = %v, want completed", id, got.Phase)
			}
		})
	}
}

func TestSessionCompletedCache(t *testing.T) {
	s := newTestSession(t, Config{
		TargetValue: 250.5,
		Duration:    time.Second,
		Easing:      "linear",
		Format:      mustPresetFormat(t, "currency-us"),
	})

	final := s.Tick(time.Second)
	if final.Display != "250.50" {
		t.Errorf("final display = %q, want %q", final.Display, "250.50")
	}

	again := s.Tick(2 * time.Second)
	if again != final {
		t.Errorf("tick after completion = %+v, want cached %+v", again, final)
	}
	// Even winding the clock backwards cannot reopen a completed session.
	back := s.Tick(0)
	if back != final {
		t.Errorf("backwards tick = %+v, want cached %+v", back, final)
	}
	if got := s.Phase(); got != Completed {
		t.Errorf("Phase() = %v, want completed", got)
	}
}

func TestSessionPhaseProgression(t *testing.T) {
	s := newTestSession(t, Config{TargetValue: 10, Duration: time.Second})
	if got := s.Phase(); got != Idle {
		t.Fatalf("fresh session phase = %v, want idle", got)
	}

	steps := []struct {
		elapsed time.Duration
		want    Phase
	}{
		{0, Running},
		{250 * time.Millisecond, Running},
		{900 * time.Millisecond, Running},
		{time.Second, Completed},
		{1200 * time.Millisecond, Completed},
	}
	for _, st := range steps {
		if got := s.Tick(st.elapsed).Phase; got != st.want {
			t.Errorf("Tick(%v) phase = %v, want %v", st.elapsed, got, st.want)
		}
	}
}

func TestSessionNegativeElapsed(t *testing.T) {
	s := newTestSession(t, Config{
		StartValue:  5,
		TargetValue: 10,
		Duration:    time.Second,
	})
	got := s.Tick(-500 * time.Millisecond)
	if got.Progress != 0 {
		t.Errorf("progress = %v, want 0", got.Progress)
	}
	if got.Value != 5 {
		t.Errorf("value = %v, want the start value 5", got.Value)
	}
	if got.Phase != Running {
		t.Errorf("phase = %v, want running", got.Phase)
	}
}

func TestSessionAffixes(t *testing.T) {
	s := newTestSession(t, Config{
		TargetValue: 1234,
		Duration:    time.Second,
		Format:      mustPresetFormat(t, "pt-ao"),
		Prefix:      "Kz ",
		Suffix:      " +",
	})
	mid := s.Tick(0)
	if mid.Display != "Kz 0 +" {
		t.Errorf("first display = %q, want %q", mid.Display, "Kz 0 +")
	}
	final := s.Tick(time.Second)
	if final.Display != "Kz 1.234 +" {
		t.Errorf("final display = %q, want %q", final.Display, "Kz 1.234 +")
	}
}

func TestSessionAbbreviateOverlay(t *testing.T) {
	t.Run("config flag on plain format", func(t *testing.T) {
		s := newTestSession(t, Config{
			TargetValue: 2400000,
			Duration:    time.Second,
			Format:      mustPresetFormat(t, "en-us"),
			Abbreviate:  true,
		})
		if got := s.Tick(time.Second).Display; got != "2.4M" {
			t.Errorf("display = %q, want %q", got, "2.4M")
		}
	})
	t.Run("format flag survives config off", func(t *testing.T) {
		s := newTestSession(t, Config{
			TargetValue: 1500,
			Duration:    time.Second,
			Format:      mustPresetFormat(t, "abbreviated"),
		})
		if got := s.Tick(time.Second).Display; got != "1,5K" {
			t.Errorf("display = %q, want %q", got, "1,5K")
		}
	})
}

func TestSessionCountdown(t *testing.T) {
	s := newTestSession(t, Config{
		StartValue:  100,
		TargetValue: 0,
		Duration:    time.Second,
		Easing:      "linear",
	})
	mid := s.Tick(500 * time.Millisecond)
	if mid.Value != 50 {
		t.Errorf("midpoint value = %v, want 50", mid.Value)
	}
	if mid.Display != "50" {
		t.Errorf("midpoint display = %q, want %q", mid.Display, "50")
	}
	final := s.Tick(time.Second)
	if final.Value != 0 || final.Display != "0" {
		t.Errorf("final = %v %q, want 0 and \"0\"", final.Value, final.Display)
	}
}

func TestSessionDramaticHold(t *testing.T) {
	s := newTestSession(t, Config{
		StartValue:  5,
		TargetValue: 10,
		Duration:    time.Second,
		Easing:      "dramatic",
	})
	got := s.Tick(790 * time.Millisecond)
	if got.Value != 5 {
		t.Errorf("value during hold = %v, want 5", got.Value)
	}
	if got.Display != "5" {
		t.Errorf("display during hold = %q, want %q", got.Display, "5")
	}
}

func TestSessionStepsQuantized(t *testing.T) {
	s := newTestSession(t, Config{
		TargetValue: 100,
		Duration:    time.Second,
		Easing:      "steps",
	})
	got := s.Tick(500 * time.Millisecond)
	if math.Abs(got.Value-40) > 1e-9 {
		t.Errorf("steps midpoint value = %v, want 40", got.Value)
	}
	if got.Display != "40" {
		t.Errorf("steps midpoint display = %q, want %q", got.Display, "40")
	}
}

// TestSessionZeroFormat checks the empty-format fallback: rendering uses
// the library default convention.
func TestSessionZeroFormat(t *testing.T) {
	s := newTestSession(t, Config{TargetValue: 1500, Duration: time.Second})
	if got := s.Tick(time.Second).Display; got != "1.500" {
		t.Errorf("display = %q, want %q", got, "1.500")
	}
}

// TestSessionConfigOwnership checks that the session holds its own copy:
// mutating the caller's Config after construction changes nothing.
func TestSessionConfigOwnership(t *testing.T) {
	cfg := Config{TargetValue: 100, Duration: time.Second}
	s := newTestSession(t, cfg)
	cfg.TargetValue = 999
	cfg.Prefix = "XXX"

	final := s.Tick(time.Second)
	if final.Value != 100 || final.Display != "100" {
		t.Errorf("final = %v %q, want 100 and \"100\"", final.Value, final.Display)
	}
	if got := s.Config().TargetValue; got != 100 {
		t.Errorf("Config().TargetValue = %v, want 100", got)
	}
}

// TestSessionsIndependent drives many sessions from separate goroutines.
// Sessions share nothing, so each must land on its own target.
func TestSessionsIndependent(t *testing.T) {
	const n = 8
	finals := make([]Frame, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		s := newTestSession(t, Config{
			TargetValue: float64((i + 1) * 1000),
			Duration:    time.Second,
			Easing:      "elastic",
		})
		wg.Add(1)
		go func(i int, s *Session) {
			defer wg.Done()
			for _, elapsed := range []time.Duration{0, 300 * time.Millisecond, 700 * time.Millisecond, time.Second} {
				finals[i] = s.Tick(elapsed)
			}
		}(i, s)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		want := float64((i + 1) * 1000)
		if finals[i].Value != want {
			t.Errorf("session %d final = %v, want %v", i, finals[i].Value, want)
		}
		if finals[i].Phase != Completed {
			t.Errorf("session %d phase = %v, want completed", i, finals[i].Phase)
		}
	}
}

func TestSessionFrames(t *testing.T) {
	s := newTestSession(t, Config{
		TargetValue: 100,
		Duration:    time.Second,
		Easing:      "linear",
	})

	var values []float64
	var last Frame
	// Frames is a range-over-func iterator; invoking it directly keeps the
	// file compilable before Go 1.23.
	s.Frames(250 * time.Millisecond)(func(frame Frame) bool {
		values = append(values, frame.Value)
		last = frame
		return true
	})

	want := []float64{0, 25, 50, 75, 100}
	if len(values) != len(want) {
		t.Fatalf("got %d frames, want %d: %v", len(values), len(want), values)
	}
	for i, v := range values {
		if v != want[i] {
			t.Errorf("frame %d value = %v, want %v", i, v, want[i])
		}
	}
	if last.Phase != Completed {
		t.Errorf("last frame phase = %v, want completed", last.Phase)
	}
}

func TestSessionFramesEarlyBreak(t *testing.T) {
	s := newTestSession(t, Config{
		TargetValue: 100,
		Duration:    time.Second,
	})

	n := 0
	s.Frames(100 * time.Millisecond)(func(Frame) bool {
		n++
		if n == 2 {
			return false // break
		}
		return true
	})
	if n != 2 {
		t.Fatalf("iterated %d frames, want 2", n)
	}
	if s.Phase() != Running {
		t.Errorf("phase after break = %v, want running", s.Phase())
	}

	if final := s.Tick(time.Second); final.Phase != Completed {
		t.Errorf("phase after terminal tick = %v, want completed", final.Phase)
	}
}

func TestSessionFramesAfterCompletion(t *testing.T) {
	s := newTestSession(t, Config{
		TargetValue: 42,
		Duration:    time.Second,
	})
	s.Tick(time.Second)

	n := 0
	s.Frames(100 * time.Millisecond)(func(frame Frame) bool {
		n++
		if frame.Value != 42 || frame.Phase != Completed {
			t.Errorf("completed session yielded %+v", frame)
		}
		return true
	})
	if n != 1 {
		t.Errorf("completed session yielded %d frames, want 1", n)
	}
}

func TestSessionFramesZeroStep(t *testing.T) {
	s := newTestSession(t, Config{
		StartValue:  10,
		TargetValue: 99,
		Duration:    time.Second,
	})

	var frames []Frame
	s.Frames(0)(func(frame Frame) bool {
		frames = append(frames, frame)
		return true
	})
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want start plus terminal: %v", len(frames), frames)
	}
	if frames[0].Value != 10 || frames[0].Phase != Running {
		t.Errorf("first frame = %+v, want the start value", frames[0])
	}
	if frames[1].Value != 99 || frames[1].Phase != Completed {
		t.Errorf("second frame = %+v, want the target", frames[1])
	}
}

// mustPresetFormat adapts numfmt.Preset to a fatal lookup for fixtures.
func mustPresetFormat(t *testing.T, id string) numfmt.Format {
	t.Helper()
	f, ok := numfmt.Preset(id)
	if !ok {
		t.Fatalf("preset %q missing", id)
	}
	return f
}
