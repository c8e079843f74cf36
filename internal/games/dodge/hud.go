package dodge

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// AbilityReadout is the HUD view of one ability.
type AbilityReadout struct {
	State    AbilityState
	Ready    bool
	Active   bool
	Progress float64 // Percent, 100 when ready
}

func readAbility(a Ability) AbilityReadout {
	return AbilityReadout{
		State:    a.State(),
		Ready:    a.Ready(),
		Active:   a.Active(),
		Progress: a.Progress(),
	}
}

// HUD is a read-only view of everything the heads-up display shows.
type HUD struct {
	Score int
	Level int
	Combo int

	Health        int
	MaxHealth     int
	HealthPercent float64
	HealthColor   core.Color

	AbilitiesEnabled bool
	Dash             AbilityReadout
	Shield           AbilityReadout

	Invincible bool
	SpeedBoost bool

	Survival time.Duration
	GameOver bool
	Paused   bool
}

// HUD returns the current readouts.
func (g *Game) HUD() HUD {
	pct := g.state.HealthPercent()
	return HUD{
		Score:            g.state.Score,
		Level:            g.state.Level,
		Combo:            g.state.Combo,
		Health:           g.state.Health,
		MaxHealth:        g.state.MaxHealth,
		HealthPercent:    pct,
		HealthColor:      core.HealthColor(pct),
		AbilitiesEnabled: g.cfg.Abilities.Enabled,
		Dash:             readAbility(g.abilities.Dash),
		Shield:           readAbility(g.abilities.Shield),
		Invincible:       g.state.Invincibility.Active,
		SpeedBoost:       g.state.SpeedBoost.Active,
		Survival:         time.Duration(g.state.SurvivalTime) * time.Millisecond,
		GameOver:         g.state.GameOver,
		Paused:           g.state.Paused,
	}
}

// StatusLabels returns the active status markers in display order.
func (h HUD) StatusLabels() []string {
	var labels []string
	if h.Shield.Active {
		labels = append(labels, "SHIELD")
	}
	if h.Invincible {
		labels = append(labels, "INVINCIBLE")
	}
	if h.SpeedBoost {
		labels = append(labels, "SPEED")
	}
	return labels
}
