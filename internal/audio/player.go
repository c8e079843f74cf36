package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Player plays cues without blocking the caller.
type Player interface {
	Play(cues ...core.Cue)
	Close()
}

// Null is a Player that discards every cue.
type Null struct{}

func (Null) Play(...core.Cue) {}
func (Null) Close()           {}

// SpeakerPlayer mixes cues into the system speaker.
type SpeakerPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewSpeakerPlayer initializes the speaker and starts the mixer.
func NewSpeakerPlayer(volume float64) (*SpeakerPlayer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	p := &SpeakerPlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues cues on the mixer. Cues after Close are dropped.
func (p *SpeakerPlayer) Play(cues ...core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || len(cues) == 0 {
		return
	}

	speaker.Lock()
	for _, c := range cues {
		if c.Duration <= 0 {
			continue
		}
		p.mixer.Add(Streamer(c, p.volume, SampleRate))
	}
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Open returns a speaker-backed player, or Null when muted or when the
// audio device is unavailable.
func Open(muted bool, volume float64, logger *log.Logger) Player {
	if muted {
		return Null{}
	}
	p, err := NewSpeakerPlayer(volume)
	if err != nil {
		if logger != nil {
			logger.Warn("audio initialization failed, continuing without sound", "error", err)
		}
		return Null{}
	}
	return p
}
