// Package audio synthesizes game cues with beep and plays them on the
// system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// SampleRate is the rate every cue is rendered at.
const SampleRate = beep.SampleRate(44100)

const (
	attackTime = 10 * time.Millisecond
	decayFloor = 0.001 // Gain reached at the end of a cue
)

// oscillator generates a raw periodic wave of a fixed length.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     core.Waveform
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of wave at freq.
func NewOscillator(freq float64, duration time.Duration, wave core.Waveform, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		val := sample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sample returns the value of wave at phase p in [0, 1).
func sample(wave core.Waveform, p float64) float64 {
	switch wave {
	case core.WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case core.WaveSawtooth:
		return 2 * (p - 0.5)
	case core.WaveTriangle:
		return 1 - 4*math.Abs(p-0.5)
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// envelope ramps linearly up to peak over the attack, then decays
// exponentially so the gain reaches decayFloor at the last sample.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
	peak     float64
}

// NewEnvelope shapes s with peak gain over duration.
func NewEnvelope(s beep.Streamer, duration time.Duration, peak float64, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		streamer: s,
		attack:   min(rate.N(attackTime), total),
		total:    total,
		peak:     peak,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func (e *envelope) gain(pos int) float64 {
	if e.peak <= 0 {
		return 0
	}
	if pos < e.attack {
		return e.peak * float64(pos) / float64(e.attack)
	}
	span := e.total - e.attack
	if span <= 0 {
		return e.peak
	}
	p := float64(pos-e.attack) / float64(span)
	floor := math.Min(decayFloor, e.peak)
	return e.peak * math.Pow(floor/e.peak, p)
}

// newVolume applies a master gain; math.Log2(0) is -Inf so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Streamer renders a cue at the given master volume.
func Streamer(cue core.Cue, master float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(cue.Frequency, cue.Duration, cue.Wave, rate)
	shaped := NewEnvelope(osc, cue.Duration, clampUnit(cue.Volume), rate)
	return newVolume(shaped, master)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
