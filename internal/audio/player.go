// Package audio synthesizes game sounds with beep and plays them through the
// system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/sol-defense/internal/core"
)

// SampleRate is the output rate of every synthesized sound.
const SampleRate = beep.SampleRate(44100)

// Player is a core.SoundPlayer backed by a beep mixer. Until Open succeeds
// the mixer is not attached to a device and can be streamed directly.
type Player struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	loops    map[core.Cue]*beep.Ctrl
	master   float64
	muted    bool
	attached bool
}

// NewPlayer creates a detached player with the given master volume.
func NewPlayer(master float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		loops:  make(map[core.Cue]*beep.Ctrl),
		master: clampVolume(master),
	}
}

// Open initializes the speaker and starts streaming the mixer.
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.attached {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.attached = true
	return nil
}

// Close silences every sound.
func (p *Player) Close() {
	p.locked(func() {
		for c, ctrl := range p.loops {
			ctrl.Streamer = nil
			delete(p.loops, c)
		}
		p.mixer.Clear()
	})
}

// SetMaster changes the master volume for sounds started afterwards.
func (p *Player) SetMaster(v float64) {
	p.mu.Lock()
	p.master = clampVolume(v)
	p.mu.Unlock()
}

// SetMuted toggles output. Muting stops running loops.
func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	p.muted = m
	p.mu.Unlock()
	if m {
		p.Close()
	}
}

// Play starts a one-shot cue.
func (p *Player) Play(c core.Cue, volume float64) {
	p.locked(func() {
		if p.muted {
			return
		}
		p.mixer.Add(gain(Effect(c, SampleRate), clampVolume(volume)*p.master))
	})
}

// Loop starts a repeating cue. A cue that is already looping is left alone.
func (p *Player) Loop(c core.Cue, volume float64) {
	p.locked(func() {
		if p.muted {
			return
		}
		if ctrl, ok := p.loops[c]; ok && ctrl.Streamer != nil {
			return
		}
		ctrl := &beep.Ctrl{Streamer: gain(Looped(c, SampleRate), clampVolume(volume)*p.master)}
		p.loops[c] = ctrl
		p.mixer.Add(ctrl)
	})
}

// Stop ends a looping cue; the mixer drops it on its next pass.
func (p *Player) Stop(c core.Cue) {
	p.locked(func() {
		if ctrl, ok := p.loops[c]; ok {
			ctrl.Streamer = nil
			delete(p.loops, c)
		}
	})
}

// Looping reports whether c is currently looping.
func (p *Player) Looping(c core.Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.loops[c]
	return ok
}

// Stream pulls samples from the mixer. Used when the player is detached.
func (p *Player) Stream(samples [][2]float64) (int, bool) {
	var n int
	var ok bool
	p.locked(func() { n, ok = p.mixer.Stream(samples) })
	return n, ok
}

// Active returns the number of streamers in the mixer.
func (p *Player) Active() int {
	var n int
	p.locked(func() { n = p.mixer.Len() })
	return n
}

func (p *Player) locked(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.attached {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Open returns a speaker-backed player, or core.NopSound when sound is
// disabled or no device is available.
func Open(enabled bool, master float64) core.SoundPlayer {
	if !enabled {
		return core.NopSound{}
	}
	p := NewPlayer(master)
	if err := p.Open(); err != nil {
		log.Warn("audio unavailable, continuing without sound", "err", err)
		return core.NopSound{}
	}
	return p
}
