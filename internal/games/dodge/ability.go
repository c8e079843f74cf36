package dodge

// AbilityState is the named state of an ability.
type AbilityState int

const (
	AbilityReady    AbilityState = iota // May be activated
	AbilityActive                       // Effect running (implies cooling down)
	AbilityCooldown                     // Waiting for the cooldown to elapse
)

// String returns the state name.
func (s AbilityState) String() string {
	switch s {
	case AbilityReady:
		return "ready"
	case AbilityActive:
		return "active"
	case AbilityCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Ability is a cooldown-gated action with an optional active window.
// Readiness is derived from the remaining cooldown and never stored.
type Ability struct {
	cooldownRemaining int
	maxCooldown       int
	activeRemaining   int
	activeDuration    int
}

// NewAbility creates a ready ability. An activeDuration of 0 makes the
// ability instantaneous.
func NewAbility(maxCooldown, activeDuration int) Ability {
	return Ability{maxCooldown: maxCooldown, activeDuration: activeDuration}
}

// Ready reports whether the ability may be activated.
func (a Ability) Ready() bool {
	return a.cooldownRemaining <= 0
}

// Active reports whether the ability's effect is running.
func (a Ability) Active() bool {
	return a.activeRemaining > 0
}

// State returns the named state.
func (a Ability) State() AbilityState {
	switch {
	case a.Active():
		return AbilityActive
	case !a.Ready():
		return AbilityCooldown
	default:
		return AbilityReady
	}
}

// Activate starts the cooldown and the active window. It does nothing and
// returns false when the ability is not ready.
func (a *Ability) Activate() bool {
	if !a.Ready() {
		return false
	}
	a.cooldownRemaining = a.maxCooldown
	a.activeRemaining = a.activeDuration
	return true
}

// Advance elapses dt ms. The active window and the cooldown run
// independently and both stop at zero.
func (a *Ability) Advance(dt int) {
	a.cooldownRemaining = max(0, a.cooldownRemaining-dt)
	a.activeRemaining = max(0, a.activeRemaining-dt)
}

// Progress returns cooldown progress as a percentage; 100 when ready.
func (a Ability) Progress() float64 {
	if a.Ready() || a.maxCooldown <= 0 {
		return 100
	}
	return float64(a.maxCooldown-a.cooldownRemaining) / float64(a.maxCooldown) * 100
}

// CooldownRemaining returns the remaining cooldown in ms.
func (a Ability) CooldownRemaining() int { return a.cooldownRemaining }

// ActiveRemaining returns the remaining active window in ms.
func (a Ability) ActiveRemaining() int { return a.activeRemaining }

// Abilities holds the character's dash and shield.
type Abilities struct {
	Dash   Ability
	Shield Ability
}

// Advance elapses dt ms on every ability.
func (ab *Abilities) Advance(dt int) {
	ab.Dash.Advance(dt)
	ab.Shield.Advance(dt)
}
