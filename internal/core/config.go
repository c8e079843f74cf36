package core

import (
	"fmt"
	"time"
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Cues and Effects are fire-and-forget notices for the audio and cosmetic
// collaborators; they are only valid until the next Step.
type StepResult struct {
	State   GameState
	Cues    []Cue
	Effects []Effect
}

// RunStats summarizes a finished run.
type RunStats struct {
	Score    int
	Level    int
	MaxCombo int
	Survival time.Duration
	Reason   string
}

// SurvivalClock formats the survival time as minutes:seconds.
func (s RunStats) SurvivalClock() string {
	return FormatClock(s.Survival)
}

// FormatClock formats a duration as m:ss, truncating toward zero.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
