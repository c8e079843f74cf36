// Package dodge implements the platform avoidance game: a character dodges
// bullets on a platform, collects power-ups, chains combos and manages the
// dash and shield abilities.
package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// Variant selects the rule set a Game loads.
type Variant int

const (
	VariantStandard Variant = iota // Abilities, combos and power-ups
	VariantClassic                 // One touch ends the run
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the dodge game logic.
type Game struct {
	variant  Variant
	override *config.DodgeConfig

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.DodgeConfig
	difficulty *config.DifficultyManager
	scoring    Scoring
	spawner    *Spawner

	// Geometry in logical units
	view     core.Box
	platform core.Box

	// Simulation
	clock     Clock
	sched     Scheduler
	state     SimulationState
	character Character
	abilities Abilities
	bullets   Arena[Bullet]
	powerUps  Arena[PowerUp]

	fb    feedback
	final core.RunStats

	// Last render target size, used by Project
	cellsW, cellsH int
}

// New creates a new Dodge game instance.
func New() *Game {
	return &Game{variant: VariantStandard}
}

// NewClassic creates a new Dodge Classic game instance.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// NewWithConfig creates a game that always uses cfg instead of loading
// configuration files.
func NewWithConfig(cfg config.DodgeConfig) *Game {
	return &Game{variant: VariantStandard, override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return config.GameDodgeClassic
	}
	return config.GameDodge
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Dodge Classic"
	}
	return "Dodge"
}

// Description summarizes the variant's rules.
func (g *Game) Description() string {
	if g.variant == VariantClassic {
		return "Dodge bullets on a platform. One touch ends the run."
	}
	return "Dodge bullets, dash, shield and chain combos."
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.DodgeConfig {
	return g.cfg
}

func (g *Game) loadConfig() config.DodgeConfig {
	if g.override != nil {
		return *g.override
	}

	cfg, err := config.Load(g.ID(), configPath)
	if err != nil {
		if g.variant == VariantClassic {
			cfg = config.DefaultClassicConfig()
		} else {
			cfg = config.DefaultDodgeConfig()
		}
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset initializes or restarts the game. Nothing carries over from a
// previous run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cellsW, g.cellsH = runtime.ScreenW, runtime.ScreenH

	cfg := g.loadConfig()
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.scoring = NewScoring(cfg.Scoring)

	g.view = core.NewBox(0, 0, cfg.Viewport.Width, cfg.Viewport.Height)
	g.platform = core.NewBox(cfg.Platform.X, cfg.Platform.Y, cfg.Platform.Width, cfg.Platform.Height)
	g.spawner = NewSpawner(cfg.Spawn, g.view, g.difficulty, runtime.Seed)

	g.clock = NewClock(cfg.Clock.StepMS)
	g.sched.Reset()
	g.state = newSimulationState(cfg.Health.Max)
	g.character = NewCharacter(cfg.Player, g.platform)
	g.abilities = Abilities{
		Dash:   NewAbility(cfg.Abilities.Dash.CooldownMS, 0),
		Shield: NewAbility(cfg.Abilities.Shield.CooldownMS, cfg.Abilities.Shield.DurationMS),
	}
	g.bullets = Arena[Bullet]{}
	g.powerUps = Arena[PowerUp]{}
	g.fb = feedback{}
	g.final = core.RunStats{}

	// First bullet fires on the first tick
	g.sched.Schedule(0, timerBulletSpawn, Handle{})
	if cfg.Spawn.PowerUps.Enabled {
		g.sched.Schedule(g.spawner.PowerUpDelay(), timerPowerUpSpawn, Handle{})
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if g.state.GameOver && (in.Has(core.ActionRestart) || in.Has(core.ActionJump)) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.state.GameOver {
		g.state.Paused = !g.state.Paused
	}
	if g.state.Paused {
		return core.StepResult{State: g.State()}
	}

	step := g.clock.Step()

	if !g.state.GameOver {
		g.handleActions(in)
		g.updateCharacter(in)
	}

	if !g.state.GameOver {
		g.state.SurvivalTime += step
		g.scoring.AdvanceCombo(&g.state, step)
		advanceStatus(&g.state, step)
		g.abilities.Advance(step)

		g.scoring.ExpireCombo(&g.state)
		expireStatus(&g.state)

		g.scoring.Passive(&g.state, step)
		g.collectPowerUps()
	}

	g.updateBullets()
	g.runTimers()
	g.clock.Advance()

	cues, effects := g.fb.drain()
	return core.StepResult{State: g.State(), Cues: cues, Effects: effects}
}

// handleActions applies edge-triggered actions: jump, dash and shield.
func (g *Game) handleActions(in core.InputFrame) {
	if in.Has(core.ActionJump) && g.character.Jump(g.cfg.Player.JumpImpulse) {
		g.fb.play(cueJump)
	}

	if !g.cfg.Abilities.Enabled {
		return
	}

	if in.Has(core.ActionDash) && g.abilities.Dash.Activate() {
		g.character.Dash(in, g.cfg.Abilities.Dash.Distance)
		g.fb.play(cueDash)
		cx, cy := g.character.Center()
		g.fb.burst(cx, cy, core.ColorCyan)
		g.fb.emit(core.EffectDashFlash, dashFlashLength)
	}

	if in.Has(core.ActionShield) && g.abilities.Shield.Activate() {
		g.fb.play(cueShield)
	}
}

// updateCharacter moves the character, applies physics and checks for a
// fall below the viewport.
func (g *Game) updateCharacter(in core.InputFrame) {
	speed := g.cfg.Player.MoveSpeed
	if g.state.SpeedBoost.Active {
		speed = g.cfg.Player.BoostedMoveSpeed
	}
	g.character.Move(in, speed)
	g.character.ApplyPhysics(g.cfg.Player.Gravity, g.platform)

	if g.character.FellOff(g.view.Bottom()) {
		g.endGame(ReasonFell)
	}
}

// runTimers fires every scheduler timer due at the current time.
func (g *Game) runTimers() {
	now := g.clock.Now()
	for {
		t, ok := g.sched.PopDue(now)
		if !ok {
			return
		}

		switch t.kind {
		case timerBulletSpawn:
			if g.state.GameOver {
				continue
			}
			g.bullets.Insert(g.spawner.Bullet(g.state.Level, g.character.Box()))
			g.sched.Schedule(now+g.NextBulletInterval(), timerBulletSpawn, Handle{})

		case timerPowerUpSpawn:
			if g.state.GameOver {
				continue
			}
			if p, ok := g.spawner.PowerUp(); ok {
				p.ExpiresAt = now + g.cfg.Spawn.PowerUps.TTLMS
				h := g.powerUps.Insert(p)
				g.sched.Schedule(p.ExpiresAt, timerPowerUpTTL, h)
			}
			g.sched.Schedule(now+g.spawner.PowerUpDelay(), timerPowerUpSpawn, Handle{})

		case timerPowerUpTTL:
			// Collected or cleared power-ups leave a stale handle
			g.powerUps.Remove(t.handle)
		}
	}
}

// NextBulletInterval returns the bullet spawn interval for the current level.
func (g *Game) NextBulletInterval() int {
	return g.spawner.BulletInterval(g.state.Level)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Paused:   g.state.Paused,
	}
}

// DifficultyRamp reports whether bullets speed up and thicken with level.
func (g *Game) DifficultyRamp() bool {
	return g.difficulty.IsEnabled()
}

// Sim returns a copy of the simulation state.
func (g *Game) Sim() SimulationState {
	return g.state
}

// Register the games with the registry
func init() {
	registry.Register(config.GameDodge, func() registry.Game {
		return New()
	})
	registry.Register(config.GameDodgeClassic, func() registry.Game {
		return NewClassic()
	})
}
