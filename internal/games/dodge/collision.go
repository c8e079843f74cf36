package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// collectPowerUps applies every power-up the character touches.
func (g *Game) collectPowerUps() {
	cbox := g.character.Box()

	for _, h := range g.powerUps.Handles() {
		p, ok := g.powerUps.Get(h)
		if !ok || p.Collected || !cbox.Overlaps(p.Box()) {
			continue
		}

		p.Collected = true
		kind := p.Type
		cx, cy := p.Box().Center()
		g.powerUps.Remove(h)

		g.applyPowerUp(kind, cx, cy)
		g.scoring.AddScore(&g.state, g.cfg.Scoring.PickupBonus)
	}
}

// applyPowerUp grants the effect of a collected power-up.
func (g *Game) applyPowerUp(kind PowerUpType, x, y float64) {
	switch kind {
	case PowerUpHealth:
		g.state.AdjustHealth(g.cfg.Health.PickupHeal)
		g.fb.play(cueHealth)
	case PowerUpInvincibility:
		g.state.Invincibility.Grant(g.cfg.Effects.InvincibilityMS)
		g.fb.play(cueInvincible)
	case PowerUpSpeed:
		g.state.SpeedBoost.Grant(g.cfg.Effects.SpeedBoostMS)
		g.fb.play(cueSpeed)
	}
	g.fb.burst(x, y, kind.Color())
}

// updateBullets moves bullets and resolves hits, deflections and exits.
// An invincible character without a shield lets bullets pass untouched.
func (g *Game) updateBullets() {
	cbox := g.character.Box()
	margin := g.cfg.Spawn.Bullets.CullMargin

	for _, h := range g.bullets.Handles() {
		b, ok := g.bullets.Get(h)
		if !ok {
			// Cleared by the game-over latch during this pass
			continue
		}

		b.Advance()
		touching := b.Box().Overlaps(cbox)
		shielded := g.abilities.Shield.Active()

		switch {
		case touching && !g.state.GameOver && !g.state.Invincibility.Active && !shielded:
			g.hitCharacter(h, *b)

		case touching && shielded:
			g.deflect(h, *b)

		case b.OutOfBounds(g.view, margin):
			g.bullets.Remove(h)
			if !g.state.GameOver {
				g.scoring.Combo(&g.state, &g.fb)
			}
		}
	}
}

// hitCharacter applies an unshielded bullet hit.
func (g *Game) hitCharacter(h Handle, b Bullet) {
	cx, cy := b.Box().Center()
	g.bullets.Remove(h)

	g.fb.play(cueHit)
	g.fb.emit(core.EffectShake, shakeDuration)
	g.fb.burst(cx, cy, core.ColorRed)
	g.scoring.BreakCombo(&g.state)

	if g.state.AdjustHealth(-g.cfg.Health.BulletDamage) {
		g.endGame(ReasonHealth)
	}
}

// deflect removes a bullet stopped by the shield and credits a combo.
func (g *Game) deflect(h Handle, b Bullet) {
	cx, cy := b.Box().Center()
	g.bullets.Remove(h)

	g.fb.play(cueDeflect)
	g.fb.burst(cx, cy, core.ColorCyan)
	g.scoring.Combo(&g.state, &g.fb)
}
