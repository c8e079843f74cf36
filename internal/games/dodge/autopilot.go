package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Autopilot is a simple scripted player used by headless runs. It keeps to
// the platform, shields against imminent hits and jumps over low bullets.
type Autopilot struct {
	// Lookahead is how many ticks ahead a bullet path is checked.
	Lookahead int
}

// NewAutopilot creates an autopilot with a short lookahead.
func NewAutopilot() *Autopilot {
	return &Autopilot{Lookahead: 12}
}

// Next returns the input for the next tick of g.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	if g.state.GameOver {
		return in
	}

	ch := g.character
	cbox := ch.Box()
	threat, lowThreat := false, false

	g.bullets.Each(func(_ Handle, b *Bullet) bool {
		probe := *b
		for i := 0; i < a.Lookahead; i++ {
			probe.Advance()
			if probe.Box().Overlaps(cbox) {
				threat = true
				if b.Kind == BulletHorizontal && probe.Y > cbox.Y+cbox.H/2 {
					lowThreat = true
				}
				return false
			}
		}
		return true
	})

	switch {
	case threat && g.abilities.Shield.Ready() && g.cfg.Abilities.Enabled:
		in.Set(core.ActionShield)
	case lowThreat && !ch.IsJumping:
		in.Set(core.ActionJump)
	case threat && g.abilities.Dash.Ready() && g.cfg.Abilities.Enabled:
		in.Set(core.ActionDash)
		in.Hold(a.safeSide(g))
	}

	// Drift back toward the middle of the platform
	cx, _ := ch.Center()
	pcx, _ := g.platform.Center()
	if !in.IsHeld(core.ActionLeft) && !in.IsHeld(core.ActionRight) {
		switch {
		case cx < pcx-g.cfg.Player.MoveSpeed*4:
			in.Hold(core.ActionRight)
		case cx > pcx+g.cfg.Player.MoveSpeed*4:
			in.Hold(core.ActionLeft)
		}
	}

	return in
}

// safeSide returns the direction with more platform room.
func (a *Autopilot) safeSide(g *Game) core.Action {
	left := g.character.X - g.platform.X
	right := g.platform.Right() - g.character.Box().Right()
	if right > left {
		return core.ActionRight
	}
	return core.ActionLeft
}
