package dodge

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newTestGame creates a game on the default config, optionally modified.
func newTestGame(t *testing.T, mutate func(*config.DodgeConfig)) *Game {
	t.Helper()
	cfg := config.DefaultDodgeConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg)
	g.Reset(testRuntime(1))
	return g
}

// quiet drops the spawn timers so a test controls every entity.
func quiet(g *Game) *Game {
	g.sched.Reset()
	return g
}

// bulletOnCharacter returns a stationary bullet overlapping the character.
func bulletOnCharacter(g *Game) Bullet {
	cx, cy := g.character.Center()
	return Bullet{X: cx - 20, Y: cy - 20, Size: 40, Kind: BulletHorizontal}
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hasCue(cues []core.Cue, want core.Cue) bool {
	for _, c := range cues {
		if c == want {
			return true
		}
	}
	return false
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t, nil)

	s := g.Sim()
	if s.Health != 100 || s.MaxHealth != 100 {
		t.Errorf("health = %d/%d, expected 100/100", s.Health, s.MaxHealth)
	}
	if s.Score != 0 || s.Level != 1 || s.Combo != 0 || s.GameOver {
		t.Errorf("unexpected initial state %+v", s)
	}

	// Centred on the platform, standing on it
	if g.character.X != 590 || g.character.Y != 460 {
		t.Errorf("character at (%v, %v), expected (590, 460)", g.character.X, g.character.Y)
	}
	if !g.abilities.Dash.Ready() || !g.abilities.Shield.Ready() {
		t.Error("abilities should start ready")
	}
}

func TestFirstBulletOnFirstTick(t *testing.T) {
	g := newTestGame(t, func(c *config.DodgeConfig) { c.Spawn.PowerUps.Enabled = false })

	g.Step(idle())
	if g.bullets.Len() != 1 {
		t.Fatalf("expected one bullet after the first tick, got %d", g.bullets.Len())
	}
	if at, ok := g.sched.NextAt(); !ok || at != 1200 {
		t.Errorf("next bullet at %d, expected 1200", at)
	}
}

// Scenario A
func TestUnshieldedHit(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	g.state.Combo = 3
	g.state.ComboTimer = 2000
	g.bullets.Insert(bulletOnCharacter(g))

	res := g.Step(idle())

	if g.state.Health != 75 {
		t.Errorf("health = %d, expected 75", g.state.Health)
	}
	if g.state.Combo != 0 {
		t.Errorf("combo = %d, expected reset to 0", g.state.Combo)
	}
	if g.bullets.Len() != 0 {
		t.Error("bullet should be removed after a hit")
	}
	if !hasCue(res.Cues, cueHit) {
		t.Error("hit should play the hit cue")
	}

	var shake bool
	for _, e := range res.Effects {
		if e.Kind == core.EffectShake {
			shake = true
		}
	}
	if !shake {
		t.Error("hit should shake the screen")
	}
}

// Scenario B
func TestDodgeIncrementsCombo(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	g.state.Combo = 3
	g.state.MaxCombo = 3
	g.state.ComboTimer = 1000
	before := g.state.Score

	g.bullets.Insert(Bullet{X: g.view.Right() + 101, Y: 100, Size: 40})
	res := g.Step(idle())

	if g.state.Combo != 4 {
		t.Errorf("combo = %d, expected 4", g.state.Combo)
	}
	if g.state.Score != before+20 {
		t.Errorf("score = %d, expected %d", g.state.Score, before+20)
	}
	if g.state.MaxCombo != 4 {
		t.Errorf("maxCombo = %d, expected 4", g.state.MaxCombo)
	}
	if g.state.ComboTimer != 3000 {
		t.Errorf("comboTimer = %d, expected 3000", g.state.ComboTimer)
	}
	if !hasCue(res.Cues, comboCue(4)) {
		t.Error("dodge should play the combo cue for combo 4")
	}
	if g.bullets.Len() != 0 {
		t.Error("bullet out of bounds should be removed")
	}
}

// Scenario C
func TestLevelUpShrinksSpawnInterval(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	g.state.Score = 499
	g.state.SurvivalTime = 984

	if got := g.NextBulletInterval(); got != 1200 {
		t.Fatalf("interval at level 1 = %d, expected 1200", got)
	}

	g.Step(idle())

	if g.state.Score != 500 {
		t.Fatalf("score = %d, expected 500 after passive tick", g.state.Score)
	}
	if g.state.Level != 2 {
		t.Errorf("level = %d, expected 2", g.state.Level)
	}
	if got := g.NextBulletInterval(); got != 1100 {
		t.Errorf("interval at level 2 = %d, expected 1100", got)
	}
}

// Scenario D
func TestShieldDeflects(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	g.bullets.Insert(bulletOnCharacter(g))

	res := g.Step(press(core.ActionShield))

	if !g.abilities.Shield.Active() {
		t.Fatal("shield should be active")
	}
	if g.bullets.Len() != 0 {
		t.Error("deflected bullet should be removed")
	}
	if g.state.Combo != 1 {
		t.Errorf("combo = %d, expected 1", g.state.Combo)
	}
	if g.state.Health != 100 {
		t.Errorf("health = %d, expected 100", g.state.Health)
	}
	if !hasCue(res.Cues, cueShield) || !hasCue(res.Cues, cueDeflect) {
		t.Error("expected shield and deflect cues")
	}
}

func TestShieldExpires(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	g.Step(press(core.ActionShield))

	// 2000 ms active window
	for i := 0; i < 124; i++ {
		g.Step(idle())
	}
	if g.abilities.Shield.Active() {
		t.Fatalf("shield still active after 2000 ms, remaining %d", g.abilities.Shield.ActiveRemaining())
	}
	if g.abilities.Shield.Ready() {
		t.Error("shield should still be cooling down after its active window")
	}

	g.bullets.Insert(bulletOnCharacter(g))
	g.Step(idle())
	if g.state.Health != 75 {
		t.Errorf("expired shield should not block, health = %d", g.state.Health)
	}
}

// Scenario E
func TestHealthPickupClamps(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	g.state.Health = 80
	cx, cy := g.character.Center()
	g.powerUps.Insert(PowerUp{X: cx - 20, Y: cy - 20, Size: 40, Type: PowerUpHealth})

	res := g.Step(idle())

	if g.state.Health != 100 {
		t.Errorf("health = %d, expected 100", g.state.Health)
	}
	if g.state.Score != 50 {
		t.Errorf("score = %d, expected 50", g.state.Score)
	}
	if g.powerUps.Len() != 0 {
		t.Error("collected power-up should be removed")
	}
	if !hasCue(res.Cues, cueHealth) {
		t.Error("expected the health cue")
	}
}

func TestStatusPickups(t *testing.T) {
	tests := []struct {
		kind   PowerUpType
		check  func(SimulationState) bool
		expect string
	}{
		{PowerUpInvincibility, func(s SimulationState) bool { return s.Invincibility.Active && s.Invincibility.Remaining == 3000 }, "invincible for 3000 ms"},
		{PowerUpSpeed, func(s SimulationState) bool { return s.SpeedBoost.Active && s.SpeedBoost.Remaining == 4000 }, "speed boost for 4000 ms"},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			g := quiet(newTestGame(t, nil))
			cx, cy := g.character.Center()
			g.powerUps.Insert(PowerUp{X: cx - 20, Y: cy - 20, Size: 40, Type: tc.kind})

			g.Step(idle())

			if !tc.check(g.state) {
				t.Errorf("expected %s, got %+v", tc.expect, g.state)
			}
			if g.state.Score != 50 {
				t.Errorf("score = %d, expected 50", g.state.Score)
			}
		})
	}
}

// Scenario F
func TestGameOverClearsAndStopsSpawns(t *testing.T) {
	g := newTestGame(t, func(c *config.DodgeConfig) {
		c.Spawn.PowerUps.Chance = 1
		c.Spawn.PowerUps.MinIntervalMS = 100
		c.Spawn.PowerUps.MaxIntervalMS = 200
	})
	g.state.Health = 25
	g.bullets.Insert(Bullet{X: 10, Y: 10, Size: 40, SpeedX: 1})
	g.powerUps.Insert(PowerUp{X: 10, Y: 200, Size: 40})
	g.bullets.Insert(bulletOnCharacter(g))
	g.bullets.Insert(Bullet{X: 50, Y: 10, Size: 40, SpeedX: 1})

	res := g.Step(idle())

	if !g.state.GameOver {
		t.Fatal("health 0 should end the game")
	}
	if g.state.Health != 0 {
		t.Errorf("health = %d, expected 0", g.state.Health)
	}
	if g.bullets.Len() != 0 || g.powerUps.Len() != 0 {
		t.Errorf("entities should be cleared, got %d bullets and %d power-ups", g.bullets.Len(), g.powerUps.Len())
	}
	if !hasCue(res.Cues, cueGameOver) {
		t.Error("expected the game-over cue")
	}
	if g.FinalStats().Reason != ReasonHealth {
		t.Errorf("reason = %q, expected %q", g.FinalStats().Reason, ReasonHealth)
	}

	for i := 0; i < 2000; i++ {
		g.Step(idle())
	}
	if g.bullets.Len() != 0 || g.powerUps.Len() != 0 {
		t.Errorf("no entities should spawn after game over, got %d bullets and %d power-ups", g.bullets.Len(), g.powerUps.Len())
	}
}

func TestGameOverIdempotent(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	g.state.Score = 120
	g.state.MaxCombo = 4
	g.bullets.Insert(bulletOnCharacter(g))

	g.endGame(ReasonHealth)
	snap1 := g.Snapshot()
	stats1 := g.FinalStats()
	cues1, _ := g.fb.drain()

	g.state.Score = 999 // must not leak into frozen stats
	g.endGame(ReasonFell)
	g.state.Score = 120
	snap2 := g.Snapshot()
	cues2, _ := g.fb.drain()

	if snap1.Hash() != snap2.Hash() {
		t.Error("second game-over transition changed the state")
	}
	if g.FinalStats() != stats1 {
		t.Errorf("final stats changed: %+v -> %+v", stats1, g.FinalStats())
	}
	if len(cues1) != 1 || len(cues2) != 0 {
		t.Errorf("game-over cue should play once, got %d then %d", len(cues1), len(cues2))
	}
	if stats1.Score != 120 || stats1.MaxCombo != 4 || stats1.Level != 1 {
		t.Errorf("unexpected final stats %+v", stats1)
	}
}

func TestInvinciblePassThrough(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	g.state.Invincibility.Grant(3000)
	g.state.Combo = 2
	g.state.ComboTimer = 2000
	g.bullets.Insert(bulletOnCharacter(g))

	g.Step(idle())

	if g.state.Health != 100 {
		t.Errorf("invincible character took damage, health = %d", g.state.Health)
	}
	if g.bullets.Len() != 1 {
		t.Error("bullet should pass through an invincible character")
	}
	if g.state.Combo != 2 {
		t.Errorf("pass-through should not change combo, got %d", g.state.Combo)
	}
}

func TestInvinciblePassThroughStillCountsDodge(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	g.state.Invincibility.Grant(3000)
	b := bulletOnCharacter(g)
	b.SpeedX = 20
	g.bullets.Insert(b)

	for i := 0; i < 60 && g.bullets.Len() > 0; i++ {
		g.Step(idle())
	}

	if g.bullets.Len() != 0 {
		t.Fatal("bullet should eventually leave the bounds")
	}
	if g.state.Combo != 1 {
		t.Errorf("exit should count as a dodge, combo = %d", g.state.Combo)
	}
}

func TestComboExpires(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	g.state.Combo = 2
	g.state.ComboTimer = 16

	g.Step(idle())

	if g.state.Combo != 0 {
		t.Errorf("combo = %d, expected 0 after its window ran out", g.state.Combo)
	}
}

func TestStatusEffectsExpire(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	g.state.Invincibility.Grant(32)
	g.state.SpeedBoost.Grant(16)

	g.Step(idle())
	if g.state.SpeedBoost.Active {
		t.Error("speed boost should end after 16 ms")
	}
	if !g.state.Invincibility.Active {
		t.Error("invincibility should still be active")
	}

	g.Step(idle())
	if g.state.Invincibility.Active {
		t.Error("invincibility should end after 32 ms")
	}
}

func TestPassiveScore(t *testing.T) {
	g := quiet(newTestGame(t, nil))

	for i := 0; i < 125; i++ {
		g.Step(idle())
	}

	if g.state.SurvivalTime != 2000 {
		t.Fatalf("survival = %d, expected 2000", g.state.SurvivalTime)
	}
	if g.state.Score != 2 {
		t.Errorf("score = %d, expected 2 after two seconds", g.state.Score)
	}
}

func TestJumpPhysics(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	groundY := g.character.Y

	res := g.Step(press(core.ActionJump))
	if !g.character.IsJumping {
		t.Fatal("character should be jumping")
	}
	if g.character.Y >= groundY {
		t.Errorf("jump should move up, y = %v", g.character.Y)
	}
	if !hasCue(res.Cues, cueJump) {
		t.Error("expected the jump cue")
	}

	// No double jump
	vy := g.character.VelocityY
	g.Step(press(core.ActionJump))
	if g.character.VelocityY < vy {
		t.Error("jumping mid-air should be ignored")
	}

	for i := 0; i < 100 && g.character.IsJumping; i++ {
		g.Step(idle())
	}
	if g.character.IsJumping || g.character.Y != groundY {
		t.Errorf("character should land at %v, got y = %v jumping = %v", groundY, g.character.Y, g.character.IsJumping)
	}
}

func TestRisingCharacterDoesNotLand(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	groundY := g.character.Y

	c := g.character
	c.Y = groundY + 60
	c.VelocityY = -15
	c.IsJumping = true
	c.ApplyPhysics(g.cfg.Player.Gravity, g.platform)

	if c.Y == groundY || c.VelocityY == 0 || !c.IsJumping {
		t.Errorf("a rising character should pass the ground line, got y = %v vy = %v", c.Y, c.VelocityY)
	}

	c.VelocityY = 1
	c.ApplyPhysics(g.cfg.Player.Gravity, g.platform)
	if c.Y != groundY || c.VelocityY != 0 || c.IsJumping {
		t.Errorf("a falling character below the ground line should land, got y = %v vy = %v", c.Y, c.VelocityY)
	}
}

func TestMovementAndSpeedBoost(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	x := g.character.X

	in := core.NewInputFrame()
	in.Hold(core.ActionRight)
	g.Step(in)
	if g.character.X != x+10 {
		t.Errorf("x = %v, expected %v", g.character.X, x+10)
	}

	g.state.SpeedBoost.Grant(1000)
	x = g.character.X
	g.Step(in)
	if g.character.X != x+15 {
		t.Errorf("boosted x = %v, expected %v", g.character.X, x+15)
	}

	both := core.NewInputFrame()
	both.Hold(core.ActionLeft)
	both.Hold(core.ActionRight)
	x = g.character.X
	g.Step(both)
	if g.character.X != x {
		t.Errorf("holding both directions should cancel, x moved %v", g.character.X-x)
	}
}

func TestDash(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	x := g.character.X

	in := press(core.ActionDash)
	in.Hold(core.ActionRight)
	res := g.Step(in)

	if g.character.X != x+150+10 {
		t.Errorf("x = %v, expected dash plus move %v", g.character.X, x+160)
	}
	if g.abilities.Dash.Ready() {
		t.Error("dash should be cooling down")
	}
	if !hasCue(res.Cues, cueDash) {
		t.Error("expected the dash cue")
	}

	// Dash while cooling down is ignored
	x = g.character.X
	g.Step(press(core.ActionDash))
	if g.character.X != x {
		t.Error("dash during cooldown should be ignored")
	}

	for i := 0; i < 62; i++ {
		g.Step(idle())
	}
	if !g.abilities.Dash.Ready() {
		t.Errorf("dash should be ready after 1000 ms, cooldown %d", g.abilities.Dash.CooldownRemaining())
	}
}

func TestDashWithoutDirection(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	x := g.character.X
	g.Step(press(core.ActionDash))

	if g.character.X != x {
		t.Errorf("dash without a direction should not move, x = %v", g.character.X)
	}
	if g.abilities.Dash.Ready() {
		t.Error("dash should still start its cooldown")
	}
}

func TestFallDeath(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	g.character.X = -500

	for i := 0; i < 200 && !g.state.GameOver; i++ {
		g.Step(idle())
	}

	if !g.state.GameOver {
		t.Fatal("falling below the viewport should end the game")
	}
	if g.FinalStats().Reason != ReasonFell {
		t.Errorf("reason = %q, expected %q", g.FinalStats().Reason, ReasonFell)
	}
}

func TestPauseFreezes(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(idle())

	res := g.Step(press(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	snap := g.Snapshot()
	for i := 0; i < 50; i++ {
		g.Step(idle())
	}
	after := g.Snapshot()
	if snap.Hash() != after.Hash() {
		t.Error("paused ticks should not change state")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	g.state.Score = 300
	g.endGame(ReasonHealth)

	// Other input is ignored while over
	g.Step(press(core.ActionDash))
	if !g.State().GameOver {
		t.Fatal("game should stay over until restart")
	}

	g.Step(press(core.ActionRestart))

	s := g.Sim()
	if s.GameOver || s.Score != 0 || s.Health != s.MaxHealth || s.SurvivalTime != 0 {
		t.Errorf("restart should reinitialize, got %+v", s)
	}
	if g.FinalStats() != (core.RunStats{}) {
		t.Error("restart should clear final stats")
	}
}

func TestPowerUpTTL(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	h := g.powerUps.Insert(PowerUp{X: 0, Y: 100, Size: 40, ExpiresAt: 32})
	g.sched.Schedule(32, timerPowerUpTTL, h)

	g.Step(idle())
	g.Step(idle())
	if g.powerUps.Len() != 1 {
		t.Fatal("power-up removed too early")
	}
	g.Step(idle())
	if g.powerUps.Len() != 0 {
		t.Error("power-up should expire at its TTL")
	}
}

func TestPowerUpSpawnCadence(t *testing.T) {
	g := newTestGame(t, func(c *config.DodgeConfig) {
		c.Spawn.PowerUps.Chance = 1
		c.Spawn.PowerUps.MinIntervalMS = 160
		c.Spawn.PowerUps.MaxIntervalMS = 160
	})
	g.sched.Reset()
	g.sched.Schedule(160, timerPowerUpSpawn, Handle{})

	// Ticks run at 0, 16, ..., 144 ms
	for i := 0; i < 10; i++ {
		g.Step(idle())
	}
	if g.powerUps.Len() != 0 {
		t.Fatal("power-up spawned before its delay")
	}
	g.Step(idle())
	if g.powerUps.Len() != 1 {
		t.Errorf("expected one power-up at 160 ms, got %d", g.powerUps.Len())
	}
	if at, ok := g.sched.NextAt(); !ok || at != 320 {
		t.Errorf("next attempt at %d, expected 320", at)
	}
}

func TestClassicOneHit(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	g := &Game{variant: VariantClassic, override: &cfg}
	g.Reset(testRuntime(3))
	quiet(g)

	g.bullets.Insert(bulletOnCharacter(g))
	g.Step(idle())

	if !g.state.GameOver {
		t.Error("any touch should end a classic run")
	}
	if g.ID() != config.GameDodgeClassic {
		t.Errorf("ID() = %q", g.ID())
	}

	// Abilities are disabled
	g2 := NewWithConfig(cfg)
	g2.Reset(testRuntime(3))
	quiet(g2)
	g2.Step(press(core.ActionShield))
	if g2.abilities.Shield.Active() {
		t.Error("classic variant should ignore the shield")
	}
}

func TestStepResultState(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	g.state.Score = 42
	res := g.Step(idle())
	if res.State != g.State() {
		t.Errorf("StepResult.State = %+v, expected %+v", res.State, g.State())
	}
}

func TestStatsLiveAndFinal(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	for i := 0; i < 10; i++ {
		g.Step(idle())
	}

	live := g.Stats()
	if live.Survival.Milliseconds() != 160 || live.Reason != "" {
		t.Errorf("live stats = %+v, expected 160ms survival and no reason", live)
	}

	g.endGame(ReasonFell)
	g.Step(idle())
	if g.Stats() != g.FinalStats() || g.Stats().Reason != ReasonFell {
		t.Errorf("after game over Stats() should be the final stats, got %+v", g.Stats())
	}
}

func TestDifficultyRampFollowsConfig(t *testing.T) {
	if !newTestGame(t, nil).DifficultyRamp() {
		t.Error("the default config should ramp with level")
	}
	fixed := newTestGame(t, func(c *config.DodgeConfig) { config.ApplyPreset(c, config.DifficultyFixed) })
	if fixed.DifficultyRamp() {
		t.Error("the fixed preset should not ramp")
	}
}

func TestSnapshotTracksNextTimer(t *testing.T) {
	g := quiet(newTestGame(t, nil))
	if snap := g.Snapshot(); snap.NextTimerAt != -1 || snap.PendingTimers != 0 {
		t.Errorf("empty scheduler should snapshot as -1, got %d", snap.NextTimerAt)
	}

	g.sched.Schedule(480, timerBulletSpawn, Handle{})
	before := g.Snapshot()
	if before.NextTimerAt != 480 {
		t.Errorf("NextTimerAt = %d, expected 480", before.NextTimerAt)
	}

	g.sched.Schedule(120, timerBulletSpawn, Handle{})
	after := g.Snapshot()
	if after.NextTimerAt != 120 || after.Hash() == before.Hash() {
		t.Error("an earlier timer should change the snapshot and its hash")
	}
}
