package dodge

// StatusEffect is a timed flag granted by a power-up.
type StatusEffect struct {
	Active    bool
	Remaining int // ms
}

// Grant switches the effect on for ms milliseconds, replacing any
// remaining time.
func (e *StatusEffect) Grant(ms int) {
	e.Active = true
	e.Remaining = max(0, ms)
}

// Advance elapses dt ms, stopping at zero.
func (e *StatusEffect) Advance(dt int) {
	e.Remaining = max(0, e.Remaining-dt)
}

// Expire clears the flag once its time has run out. It reports whether the
// flag was cleared by this call.
func (e *StatusEffect) Expire() bool {
	if e.Active && e.Remaining <= 0 {
		e.Active = false
		return true
	}
	return false
}

// advanceStatus elapses dt ms on both status effects.
func advanceStatus(s *SimulationState, dt int) {
	s.Invincibility.Advance(dt)
	s.SpeedBoost.Advance(dt)
}

// expireStatus clears status effects whose time has run out.
func expireStatus(s *SimulationState) {
	s.Invincibility.Expire()
	s.SpeedBoost.Expire()
}
