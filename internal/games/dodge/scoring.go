package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Scoring applies score, level and combo rules to the simulation state.
type Scoring struct {
	cfg config.ScoringConfig
}

// NewScoring creates the scoring rules.
func NewScoring(cfg config.ScoringConfig) Scoring {
	return Scoring{cfg: cfg}
}

// AddScore adds points and recomputes the level. Negative points are
// ignored so the score never decreases.
func (sc Scoring) AddScore(s *SimulationState, points int) {
	if points > 0 {
		s.Score += points
	}
	s.Level = sc.LevelFor(s.Score)
}

// LevelFor returns the level for a score.
func (sc Scoring) LevelFor(score int) int {
	if sc.cfg.PointsPerLevel <= 0 {
		return 1
	}
	return score/sc.cfg.PointsPerLevel + 1
}

// Passive awards the survival bonus once per passive interval. It must run
// after survival time has advanced by step.
func (sc Scoring) Passive(s *SimulationState, step int) {
	if sc.cfg.PassiveIntervalMS <= 0 {
		return
	}
	if s.SurvivalTime%sc.cfg.PassiveIntervalMS < step {
		sc.AddScore(s, sc.cfg.PassivePoints)
	}
}

// Combo credits a dodge or deflect: the combo grows, its window restarts
// and a bonus of combo times the per-combo bonus is scored.
func (sc Scoring) Combo(s *SimulationState, fb *feedback) {
	if !sc.cfg.Combo.Enabled {
		return
	}
	s.Combo++
	s.MaxCombo = max(s.MaxCombo, s.Combo)
	s.ComboTimer = sc.cfg.Combo.WindowMS
	sc.AddScore(s, s.Combo*sc.cfg.Combo.BonusPerCombo)

	fb.emit(core.EffectComboPulse, comboPulseLen)
	fb.play(comboCue(s.Combo))
}

// BreakCombo resets the combo immediately.
func (sc Scoring) BreakCombo(s *SimulationState) {
	s.Combo = 0
}

// AdvanceCombo elapses dt ms on the combo window.
func (sc Scoring) AdvanceCombo(s *SimulationState, dt int) {
	s.ComboTimer = max(0, s.ComboTimer-dt)
}

// ExpireCombo resets the combo once its window has run out.
func (sc Scoring) ExpireCombo(s *SimulationState) {
	if s.ComboTimer <= 0 && s.Combo > 0 {
		s.Combo = 0
	}
}
