package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/sol-defense/internal/core"
)

func drain(t *testing.T, s beep.Streamer, max int) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for total < max {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestEffectsAreFiniteAndAudible(t *testing.T) {
	limit := SampleRate.N(5 * time.Second)
	for _, c := range core.Cues {
		t.Run(c.String(), func(t *testing.T) {
			n, peak := drain(t, Effect(c, SampleRate), limit)
			if n == 0 || n >= limit {
				t.Errorf("Effect(%v) produced %d samples, expected a finite sound", c, n)
			}
			if peak == 0 {
				t.Errorf("Effect(%v) is silent", c)
			}
			if peak > 1.5 {
				t.Errorf("Effect(%v) peak = %.2f, expected a sane level", c, peak)
			}
		})
	}
}

func TestEffectLengths(t *testing.T) {
	tests := []struct {
		cue core.Cue
		dur time.Duration
	}{
		{core.CuePlayerShot, 120 * time.Millisecond},
		{core.CueEnemyShot, 100 * time.Millisecond},
		{core.CuePlayerExplosion, 800 * time.Millisecond},
		{core.CueGameMusic, 1200 * time.Millisecond},
	}
	for _, tt := range tests {
		n, _ := drain(t, Effect(tt.cue, SampleRate), SampleRate.N(10*time.Second))
		if n != SampleRate.N(tt.dur) {
			t.Errorf("Effect(%v) length = %d, expected %d", tt.cue, n, SampleRate.N(tt.dur))
		}
	}
}

func TestLoopedNeverEnds(t *testing.T) {
	for _, c := range []core.Cue{core.CueGameMusic, core.CueShieldNullified} {
		s := Looped(c, SampleRate)
		want := SampleRate.N(2 * time.Second)
		if n, _ := drain(t, s, want); n < want {
			t.Errorf("Looped(%v) ended after %d samples", c, n)
		}
	}
}

func TestGainSilent(t *testing.T) {
	_, peak := drain(t, gain(Effect(core.CueShieldUp, SampleRate), 0), SampleRate.N(time.Second))
	if peak != 0 {
		t.Errorf("gain(0) peak = %f, expected silence", peak)
	}
}

func TestPlayerPlayMixes(t *testing.T) {
	p := NewPlayer(1)
	p.Play(core.CuePlayerShot, 1)
	p.Play(core.CueEnemyShot, 0.5)

	if p.Active() != 2 {
		t.Fatalf("Active() = %d, expected 2", p.Active())
	}
	_, peak := drain(t, beep.StreamerFunc(p.Stream), 1024)
	if peak == 0 {
		t.Error("mixer output is silent after Play")
	}

	// Both one-shots are shorter than a second.
	drain(t, beep.StreamerFunc(p.Stream), SampleRate.N(time.Second))
	if p.Active() != 0 {
		t.Errorf("Active() = %d after drain, expected 0", p.Active())
	}
}

func TestPlayerLoopAndStop(t *testing.T) {
	p := NewPlayer(1)

	p.Loop(core.CueGameMusic, 0.8)
	p.Loop(core.CueGameMusic, 0.8)
	if p.Active() != 1 {
		t.Fatalf("Active() = %d, expected a single loop", p.Active())
	}
	if !p.Looping(core.CueGameMusic) {
		t.Error("Looping() = false after Loop")
	}

	p.Stop(core.CueGameMusic)
	if p.Looping(core.CueGameMusic) {
		t.Error("Looping() = true after Stop")
	}
	drain(t, beep.StreamerFunc(p.Stream), 512)
	if p.Active() != 0 {
		t.Errorf("Active() = %d after Stop, expected 0", p.Active())
	}

	// Stopping twice is harmless.
	p.Stop(core.CueGameMusic)
}

func TestPlayerMuted(t *testing.T) {
	p := NewPlayer(1)
	p.Loop(core.CueMenuMusic, 1)
	p.SetMuted(true)

	p.Play(core.CuePlayerShot, 1)
	p.Loop(core.CueGameMusic, 1)
	if p.Active() != 0 {
		t.Errorf("Active() = %d while muted, expected 0", p.Active())
	}
	if p.Looping(core.CueMenuMusic) {
		t.Error("muting should stop running loops")
	}

	p.SetMuted(false)
	p.Play(core.CuePlayerShot, 1)
	if p.Active() != 1 {
		t.Errorf("Active() = %d after unmute, expected 1", p.Active())
	}
}

func TestPlayerMasterVolume(t *testing.T) {
	loud := NewPlayer(1)
	quiet := NewPlayer(0.25)
	loud.Play(core.CueShieldUp, 1)
	quiet.Play(core.CueShieldUp, 1)

	_, lp := drain(t, beep.StreamerFunc(loud.Stream), 2048)
	_, qp := drain(t, beep.StreamerFunc(quiet.Stream), 2048)
	if qp >= lp {
		t.Errorf("quiet peak %.3f >= loud peak %.3f", qp, lp)
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.4, 0.4}, {1, 1}, {3, 1},
	}
	for _, tt := range tests {
		if got := clampVolume(tt.in); got != tt.want {
			t.Errorf("clampVolume(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestOpenDisabled(t *testing.T) {
	if _, ok := Open(false, 1).(core.NopSound); !ok {
		t.Error("Open(false) should return NopSound")
	}
}
