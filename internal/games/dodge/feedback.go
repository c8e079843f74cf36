package dodge

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Audio cues.
var (
	cueJump         = core.Cue{Frequency: 330, Duration: 150 * time.Millisecond, Wave: core.WaveSquare, Volume: 0.1}
	cueDash         = core.Cue{Frequency: 880, Duration: 200 * time.Millisecond, Wave: core.WaveSawtooth, Volume: 0.12}
	cueShield       = core.Cue{Frequency: 523, Duration: 300 * time.Millisecond, Wave: core.WaveTriangle, Volume: 0.1}
	cueHit          = core.Cue{Frequency: 200, Duration: 300 * time.Millisecond, Wave: core.WaveSawtooth, Volume: 0.15}
	cueDeflect      = core.Cue{Frequency: 660, Duration: 200 * time.Millisecond, Wave: core.WaveTriangle, Volume: 0.12}
	cueHealth       = core.Cue{Frequency: 523, Duration: 200 * time.Millisecond, Wave: core.WaveSine, Volume: 0.15}
	cueInvincible   = core.Cue{Frequency: 659, Duration: 300 * time.Millisecond, Wave: core.WaveSquare, Volume: 0.12}
	cueSpeed        = core.Cue{Frequency: 784, Duration: 250 * time.Millisecond, Wave: core.WaveSawtooth, Volume: 0.1}
	cueGameOver     = core.Cue{Frequency: 150, Duration: time.Second, Wave: core.WaveSawtooth, Volume: 0.2}
	comboCueBase    = 440.0
	comboCueStep    = 20.0
	comboCueLength  = 100 * time.Millisecond
	comboCueVolume  = 0.08
	burstLifetime   = 800 * time.Millisecond
	shakeDuration   = 300 * time.Millisecond
	dashFlashLength = 200 * time.Millisecond
	comboPulseLen   = 200 * time.Millisecond
)

// comboCue returns the rising tone for a combo count.
func comboCue(combo int) core.Cue {
	return core.Cue{
		Frequency: comboCueBase + float64(combo)*comboCueStep,
		Duration:  comboCueLength,
		Wave:      core.WaveSine,
		Volume:    comboCueVolume,
	}
}

// feedback collects the cues and effects produced during one tick.
type feedback struct {
	cues    []core.Cue
	effects []core.Effect
}

func (f *feedback) play(c core.Cue) {
	f.cues = append(f.cues, c)
}

func (f *feedback) burst(x, y float64, color core.Color) {
	f.effects = append(f.effects, core.Effect{Kind: core.EffectBurst, X: x, Y: y, Color: color, Duration: burstLifetime})
}

func (f *feedback) emit(kind core.EffectKind, d time.Duration) {
	f.effects = append(f.effects, core.Effect{Kind: kind, Duration: d})
}

// drain returns the collected notices and starts a fresh batch.
func (f *feedback) drain() ([]core.Cue, []core.Effect) {
	cues, effects := f.cues, f.effects
	f.cues, f.effects = nil, nil
	return cues, effects
}
