package dodge

import "math"

// Snapshot contains the complete simulation state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick uint64
	Now  int

	Health       int
	Score        int
	Level        int
	Combo        int
	MaxCombo     int
	ComboTimer   int
	Invincible   int // Remaining ms, -1 when inactive
	SpeedBoost   int // Remaining ms, -1 when inactive
	GameOver     bool
	SurvivalTime int

	CharX, CharY, CharVY float64
	Jumping              bool

	DashCooldown   int
	ShieldCooldown int
	ShieldActive   int

	// Each bullet is 5 values: Kind, X, Y, SpeedX, SpeedY
	BulletData []float64
	// Each power-up is 4 values: Type, X, Y, ExpiresAt
	PowerUpData []float64

	PendingTimers int
	NextTimerAt   int // -1 when no timer is pending
}

// Snapshot returns the current simulation state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:           g.clock.Tick(),
		Now:            g.clock.Now(),
		Health:         g.state.Health,
		Score:          g.state.Score,
		Level:          g.state.Level,
		Combo:          g.state.Combo,
		MaxCombo:       g.state.MaxCombo,
		ComboTimer:     g.state.ComboTimer,
		Invincible:     effectSnapshot(g.state.Invincibility),
		SpeedBoost:     effectSnapshot(g.state.SpeedBoost),
		GameOver:       g.state.GameOver,
		SurvivalTime:   g.state.SurvivalTime,
		CharX:          g.character.X,
		CharY:          g.character.Y,
		CharVY:         g.character.VelocityY,
		Jumping:        g.character.IsJumping,
		DashCooldown:   g.abilities.Dash.CooldownRemaining(),
		ShieldCooldown: g.abilities.Shield.CooldownRemaining(),
		ShieldActive:   g.abilities.Shield.ActiveRemaining(),
		PendingTimers:  g.sched.Len(),
		NextTimerAt:    -1,
	}
	if at, ok := g.sched.NextAt(); ok {
		snap.NextTimerAt = at
	}

	g.bullets.Each(func(_ Handle, b *Bullet) bool {
		snap.BulletData = append(snap.BulletData, float64(b.Kind), b.X, b.Y, b.SpeedX, b.SpeedY)
		return true
	})
	g.powerUps.Each(func(_ Handle, p *PowerUp) bool {
		snap.PowerUpData = append(snap.PowerUpData, float64(p.Type), p.X, p.Y, float64(p.ExpiresAt))
		return true
	})

	return snap
}

func effectSnapshot(e StatusEffect) int {
	if !e.Active {
		return -1
	}
	return e.Remaining
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Now, snap.Health, snap.Score, snap.Level, snap.Combo, snap.MaxCombo,
		snap.ComboTimer, snap.Invincible, snap.SpeedBoost, snap.SurvivalTime,
		snap.DashCooldown, snap.ShieldCooldown, snap.ShieldActive, snap.PendingTimers, snap.NextTimerAt,
		boolInt(snap.GameOver), boolInt(snap.Jumping),
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + math.Float64bits(snap.CharX)
	h = h*31 + math.Float64bits(snap.CharY)
	h = h*31 + math.Float64bits(snap.CharVY)

	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.PowerUpData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
