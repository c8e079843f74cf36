package dodge

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Game-over reasons.
const (
	ReasonHealth = "health depleted"
	ReasonFell   = "fell off the platform"
)

// endGame latches the game-over state. Only the first call has any effect:
// it clears all entities, plays the game-over cue and freezes the final
// statistics.
func (g *Game) endGame(reason string) {
	if g.state.GameOver {
		return
	}
	g.state.GameOver = true
	g.state.Paused = false

	g.bullets.Clear()
	g.powerUps.Clear()
	g.fb.play(cueGameOver)

	g.final = g.liveStats()
	g.final.Reason = reason
}

func (g *Game) liveStats() core.RunStats {
	return core.RunStats{
		Score:    g.state.Score,
		Level:    g.state.Level,
		MaxCombo: g.state.MaxCombo,
		Survival: time.Duration(g.state.SurvivalTime) * time.Millisecond,
	}
}

// Stats returns the final statistics after game over, or the statistics
// so far, with an empty reason, while the run is going.
func (g *Game) Stats() core.RunStats {
	if g.state.GameOver {
		return g.final
	}
	return g.liveStats()
}

// FinalStats returns the statistics frozen at game over. It is the zero
// value while the run is still going.
func (g *Game) FinalStats() core.RunStats {
	return g.final
}
