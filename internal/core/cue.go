package core

import "time"

// Waveform selects the oscillator shape of an audio cue.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

// String returns the waveform name.
func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Cue is a fire-and-forget request to play a tone.
type Cue struct {
	Frequency float64       // Hz
	Duration  time.Duration // Total length including the decay
	Wave      Waveform
	Volume    float64 // Peak gain, 0..1
}

// EffectKind identifies a cosmetic notice emitted by a game.
type EffectKind int

const (
	EffectBurst      EffectKind = iota // Particle burst at X, Y
	EffectShake                        // Screen shake
	EffectDashFlash                    // Character flash after a dash
	EffectComboPulse                   // Combo readout pulse
)

// Effect is a cosmetic notice. X and Y are in the game's logical units;
// platforms map them to cells through the game's projection.
type Effect struct {
	Kind     EffectKind
	X, Y     float64
	Color    Color
	Duration time.Duration
}
