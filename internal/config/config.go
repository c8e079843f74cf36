// Package config provides YAML-based game configuration loading and
// difficulty management for the dodge games.
package config

import (
	"errors"
	"fmt"
)

// DodgeConfig contains all configuration for a dodge game variant.
// Distances are logical units, durations are milliseconds.
type DodgeConfig struct {
	Clock      ClockConfig      `yaml:"clock"`
	Viewport   ViewportConfig   `yaml:"viewport"`
	Platform   PlatformConfig   `yaml:"platform"`
	Player     PlayerConfig     `yaml:"player"`
	Health     HealthConfig     `yaml:"health"`
	Abilities  AbilitiesConfig  `yaml:"abilities"`
	Effects    EffectsConfig    `yaml:"effects"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ClockConfig defines the fixed simulation step.
type ClockConfig struct {
	StepMS int `yaml:"step_ms"`
}

// ViewportConfig defines the size of the logical play field.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformConfig defines the platform rectangle; its top edge is the ground.
type PlatformConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines character size and movement physics (per tick).
type PlayerConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	MoveSpeed        float64 `yaml:"move_speed"`
	BoostedMoveSpeed float64 `yaml:"boosted_move_speed"`
	Gravity          float64 `yaml:"gravity"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
}

// HealthConfig defines health pool, bullet damage and pickup healing.
type HealthConfig struct {
	Max          int `yaml:"max"`
	BulletDamage int `yaml:"bullet_damage"`
	PickupHeal   int `yaml:"pickup_heal"`
}

// AbilitiesConfig defines the dash and shield abilities.
type AbilitiesConfig struct {
	Enabled bool         `yaml:"enabled"`
	Dash    DashConfig   `yaml:"dash"`
	Shield  ShieldConfig `yaml:"shield"`
}

// DashConfig defines the dash ability.
type DashConfig struct {
	CooldownMS int     `yaml:"cooldown_ms"`
	Distance   float64 `yaml:"distance"`
}

// ShieldConfig defines the shield ability.
type ShieldConfig struct {
	CooldownMS int `yaml:"cooldown_ms"`
	DurationMS int `yaml:"duration_ms"`
}

// EffectsConfig defines power-up status effect durations.
type EffectsConfig struct {
	InvincibilityMS int `yaml:"invincibility_ms"`
	SpeedBoostMS    int `yaml:"speed_boost_ms"`
}

// ScoringConfig defines score, level and combo rules.
type ScoringConfig struct {
	PointsPerLevel    int         `yaml:"points_per_level"`
	PassiveIntervalMS int         `yaml:"passive_interval_ms"`
	PassivePoints     int         `yaml:"passive_points"`
	PickupBonus       int         `yaml:"pickup_bonus"`
	Combo             ComboConfig `yaml:"combo"`
}

// ComboConfig defines the combo counter.
type ComboConfig struct {
	Enabled       bool `yaml:"enabled"`
	WindowMS      int  `yaml:"window_ms"`
	BonusPerCombo int  `yaml:"bonus_per_combo"`
}

// SpawnConfig defines bullet and power-up spawning.
type SpawnConfig struct {
	Bullets  BulletSpawnConfig  `yaml:"bullets"`
	PowerUps PowerUpSpawnConfig `yaml:"powerups"`
}

// BulletSpawnConfig defines bullet size, speed and cadence.
type BulletSpawnConfig struct {
	Size           float64 `yaml:"size"`
	BaseSpeed      float64 `yaml:"base_speed"`
	BaseIntervalMS int     `yaml:"base_interval_ms"`
	EdgeOffset     float64 `yaml:"edge_offset"` // Distance outside the viewport where bullets appear
	CullMargin     float64 `yaml:"cull_margin"` // Distance outside the viewport where bullets are removed
	AimAtCharacter bool    `yaml:"aim_at_character"`
	AimSpread      float64 `yaml:"aim_spread"`
}

// PowerUpSpawnConfig defines power-up size, cadence and lifetime.
type PowerUpSpawnConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Size          float64 `yaml:"size"`
	MinIntervalMS int     `yaml:"min_interval_ms"`
	MaxIntervalMS int     `yaml:"max_interval_ms"`
	Chance        float64 `yaml:"chance"`
	TTLMS         int     `yaml:"ttl_ms"`
	TopMargin     float64 `yaml:"top_margin"`
	BottomMargin  float64 `yaml:"bottom_margin"`
}

// DifficultyConfig defines how bullets scale with level.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	SpeedStep      float64 `yaml:"speed_step"`       // Speed multiplier added per level
	IntervalStepMS int     `yaml:"interval_step_ms"` // Spawn interval removed per level
	MinIntervalMS  int     `yaml:"min_interval_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Spawn.Bullets.BaseSpeed = 5
		cfg.Spawn.Bullets.BaseIntervalMS = 1400
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Spawn.Bullets.BaseSpeed = 7.5
		cfg.Spawn.Bullets.BaseIntervalMS = 1000
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}

// Validate reports every setting that would break the simulation.
func (c DodgeConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Clock.StepMS > 0, "clock.step_ms must be positive, got %d", c.Clock.StepMS)
	check(c.Viewport.Width > 0 && c.Viewport.Height > 0, "viewport must have positive size, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	check(c.Platform.Width > 0, "platform.width must be positive, got %v", c.Platform.Width)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player must have positive size, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Health.Max > 0, "health.max must be positive, got %d", c.Health.Max)
	check(c.Health.BulletDamage >= 0, "health.bullet_damage must not be negative, got %d", c.Health.BulletDamage)
	check(c.Scoring.PointsPerLevel > 0, "scoring.points_per_level must be positive, got %d", c.Scoring.PointsPerLevel)
	check(c.Scoring.PassiveIntervalMS > 0, "scoring.passive_interval_ms must be positive, got %d", c.Scoring.PassiveIntervalMS)
	check(c.Spawn.Bullets.Size > 0, "spawn.bullets.size must be positive, got %v", c.Spawn.Bullets.Size)
	check(c.Spawn.Bullets.BaseIntervalMS > 0, "spawn.bullets.base_interval_ms must be positive, got %d", c.Spawn.Bullets.BaseIntervalMS)
	check(c.Difficulty.MinIntervalMS > 0, "difficulty.min_interval_ms must be positive, got %d", c.Difficulty.MinIntervalMS)

	if c.Abilities.Enabled {
		check(c.Abilities.Dash.CooldownMS > 0, "abilities.dash.cooldown_ms must be positive, got %d", c.Abilities.Dash.CooldownMS)
		check(c.Abilities.Shield.CooldownMS > 0, "abilities.shield.cooldown_ms must be positive, got %d", c.Abilities.Shield.CooldownMS)
	}
	if c.Spawn.PowerUps.Enabled {
		p := c.Spawn.PowerUps
		check(p.Size > 0, "spawn.powerups.size must be positive, got %v", p.Size)
		check(p.MinIntervalMS > 0 && p.MaxIntervalMS >= p.MinIntervalMS,
			"spawn.powerups interval must satisfy 0 < min <= max, got [%d, %d]", p.MinIntervalMS, p.MaxIntervalMS)
		check(p.Chance >= 0 && p.Chance <= 1, "spawn.powerups.chance must be within [0, 1], got %v", p.Chance)
		check(p.TTLMS > 0, "spawn.powerups.ttl_ms must be positive, got %d", p.TTLMS)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
