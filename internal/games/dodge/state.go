package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// SimulationState is the mutable core of a run. Exactly one exists per Game
// and components receive it by pointer. Timers are milliseconds.
type SimulationState struct {
	Health    int
	MaxHealth int

	Score int // Never decreases
	Level int // Always Score/pointsPerLevel + 1

	Combo      int
	MaxCombo   int
	ComboTimer int

	Invincibility StatusEffect
	SpeedBoost    StatusEffect

	GameOver     bool // One-way latch
	Paused       bool
	SurvivalTime int
}

// newSimulationState returns the state at the start of a run.
func newSimulationState(maxHealth int) SimulationState {
	return SimulationState{
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Level:     1,
	}
}

// AdjustHealth adds amount to health, clamped to [0, MaxHealth], and reports
// whether health is now depleted.
func (s *SimulationState) AdjustHealth(amount int) bool {
	s.Health = core.Clamp(s.Health+amount, 0, s.MaxHealth)
	return s.Health == 0
}

// HealthPercent returns health as a percentage of the maximum.
func (s *SimulationState) HealthPercent() float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	return float64(s.Health) / float64(s.MaxHealth) * 100
}
