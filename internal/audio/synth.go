package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/sol-defense/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is an endless oscillator whose pitch glides from one frequency to
// another over period, then starts over.
type sweep struct {
	rate   beep.SampleRate
	wave   Wave
	from   float64
	to     float64
	period int
	pos    int
	phase  float64
	noise  *rand.Rand
}

func newSweep(rate beep.SampleRate, wave Wave, from, to float64, period time.Duration) *sweep {
	n := rate.N(period)
	if n < 1 {
		n = 1
	}
	return &sweep{
		rate:   rate,
		wave:   wave,
		from:   from,
		to:     to,
		period: n,
		noise:  rand.New(rand.NewSource(int64(from*1000 + to))), //#nosec G404 -- audio noise
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(s.pos%s.period) / float64(s.period)
		freq := s.from + (s.to-s.from)*t

		var v float64
		switch s.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2*s.phase - 1
		case WaveNoise:
			v = s.noise.Float64()*2 - 1
		}

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++

		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// decay fades a stream exponentially; rate is the e-folding count per second.
type decay struct {
	streamer beep.Streamer
	sr       beep.SampleRate
	rate     float64
	pos      int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := math.Exp(-d.rate * float64(d.pos) / float64(d.sr))
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// melody plays notes back to back forever. A zero note is a rest.
type melody struct {
	rate  beep.SampleRate
	notes []float64
	beat  int
	pos   int
	phase float64
}

func newMelody(rate beep.SampleRate, beat time.Duration, notes ...float64) *melody {
	return &melody{rate: rate, notes: notes, beat: rate.N(beat)}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := m.pos / m.beat
		within := float64(m.pos%m.beat) / float64(m.beat)
		freq := m.notes[step%len(m.notes)]

		var v float64
		if freq > 0 {
			// Plucked envelope per note, triangle-ish timbre.
			env := math.Exp(-4 * within)
			v = env * (0.7*math.Sin(2*math.Pi*m.phase) + 0.3*math.Sin(4*math.Pi*m.phase))
			m.phase += freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}
		m.pos++

		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// gain wraps s in a volume effect. Zero or negative volume is silent.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Note frequencies used by the music loops.
const (
	noteA2 = 110.00
	noteC3 = 130.81
	noteE3 = 164.81
	noteG3 = 196.00
	noteA3 = 220.00
	noteC4 = 261.63
	noteD4 = 293.66
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
)

// Effect builds the finite streamer for a one-shot cue. Music cues return
// one bar of their loop.
func Effect(c core.Cue, rate beep.SampleRate) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	take := func(d time.Duration, s beep.Streamer) beep.Streamer { return beep.Take(rate.N(d), s) }

	switch c {
	case core.CuePlayerShot:
		d := ms(120)
		return take(d, &decay{streamer: gain(newSweep(rate, WaveSquare, 1200, 400, d), 0.25), sr: rate, rate: 18})
	case core.CueShieldUp:
		d := ms(250)
		return take(d, gain(newSweep(rate, WaveSine, 300, 900, d), 0.5))
	case core.CueShieldNullified:
		d := ms(200)
		return take(d, gain(newSweep(rate, WaveSaw, 110, 90, d), 0.35))
	case core.CueEnemyShot:
		d := ms(100)
		return take(d, &decay{streamer: gain(newSweep(rate, WaveSquare, 330, 220, d), 0.2), sr: rate, rate: 20})
	case core.CueEnemyExplosion:
		d := ms(300)
		return take(d, &decay{streamer: gain(newSweep(rate, WaveNoise, 0, 0, d), 0.4), sr: rate, rate: 10})
	case core.CuePlayerExplosion:
		d := ms(800)
		rumble := newSweep(rate, WaveSine, 90, 40, d)
		noise := newSweep(rate, WaveNoise, 1, 1, d)
		return take(d, &decay{streamer: beep.Mix(gain(rumble, 0.5), gain(noise, 0.35)), sr: rate, rate: 4})
	case core.CueBossSpawn:
		d := ms(600)
		hum, err := generators.SineTone(rate, noteA2)
		if err != nil {
			hum = beep.Silence(-1)
		}
		return take(d, beep.Mix(gain(hum, 0.3), gain(newSweep(rate, WaveSaw, 220, 440, ms(150)), 0.15)))
	case core.CueBossNullify:
		beat := ms(90)
		return take(beat*4, gain(newMelody(rate, beat, noteA4, noteE4, noteC4, noteA3), 0.4))
	case core.CueBossEnhance:
		beat := ms(90)
		return take(beat*4, gain(newMelody(rate, beat, noteA3, noteC4, noteE4, noteA4), 0.4))
	case core.CueMenuMusic, core.CueGameMusic:
		s, bar := music(c, rate)
		return take(bar, s)
	default:
		return beep.Silence(0)
	}
}

// music returns the endless streamer for a music cue and the length of one bar.
func music(c core.Cue, rate beep.SampleRate) (beep.Streamer, time.Duration) {
	if c == core.CueMenuMusic {
		beat := 250 * time.Millisecond
		lead := newMelody(rate, beat, noteA3, noteC4, noteE4, noteA4, noteG4, noteE4, noteD4, noteC4)
		bass := newMelody(rate, beat*4, noteA2, noteC3)
		return beep.Mix(gain(lead, 0.25), gain(bass, 0.3)), beat * 8
	}
	beat := 150 * time.Millisecond
	lead := newMelody(rate, beat, noteE3, 0, noteE3, noteG3, noteA3, 0, noteG3, noteE3)
	bass := newMelody(rate, beat*2, noteA2, noteA2, noteC3, noteA2)
	return beep.Mix(gain(lead, 0.3), gain(bass, 0.35)), beat * 8
}

// Looped builds the endless streamer for a looping cue. Sound effects
// repeat with a short gap.
func Looped(c core.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case core.CueMenuMusic, core.CueGameMusic:
		s, _ := music(c, rate)
		return s
	}
	return &repeater{next: func() beep.Streamer {
		return beep.Seq(Effect(c, rate), beep.Silence(rate.N(100*time.Millisecond)))
	}}
}

// repeater restarts a finite streamer each time it drains.
type repeater struct {
	next func() beep.Streamer
	cur  beep.Streamer
}

func (r *repeater) Stream(samples [][2]float64) (n int, ok bool) {
	idle := 0
	for n < len(samples) && idle < 2 {
		if r.cur == nil {
			r.cur = r.next()
		}
		m, more := r.cur.Stream(samples[n:])
		n += m
		if m == 0 {
			idle++
		} else {
			idle = 0
		}
		if !more {
			r.cur = nil
		}
	}
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (r *repeater) Err() error { return nil }
