package config

import (
	_ "embed"
)

// Game IDs with an embedded default configuration.
const (
	GameDodge        = "dodge"
	GameDodgeClassic = "dodge_classic"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

// DefaultDodgeConfig returns the default Dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Clock:    ClockConfig{StepMS: 16},
		Viewport: ViewportConfig{Width: 1280, Height: 720},
		Platform: PlatformConfig{X: 240, Y: 560, Width: 800, Height: 40},
		Player: PlayerConfig{
			Width:            100,
			Height:           100,
			MoveSpeed:        10,
			BoostedMoveSpeed: 15,
			Gravity:          0.7,
			JumpImpulse:      -15,
		},
		Health: HealthConfig{
			Max:          100,
			BulletDamage: 25,
			PickupHeal:   25,
		},
		Abilities: AbilitiesConfig{
			Enabled: true,
			Dash:    DashConfig{CooldownMS: 1000, Distance: 150},
			Shield:  ShieldConfig{CooldownMS: 4000, DurationMS: 2000},
		},
		Effects: EffectsConfig{
			InvincibilityMS: 3000,
			SpeedBoostMS:    4000,
		},
		Scoring: ScoringConfig{
			PointsPerLevel:    500,
			PassiveIntervalMS: 1000,
			PassivePoints:     1,
			PickupBonus:       50,
			Combo: ComboConfig{
				Enabled:       true,
				WindowMS:      3000,
				BonusPerCombo: 5,
			},
		},
		Spawn: SpawnConfig{
			Bullets: BulletSpawnConfig{
				Size:           40,
				BaseSpeed:      6,
				BaseIntervalMS: 1200,
				EdgeOffset:     50,
				CullMargin:     100,
			},
			PowerUps: PowerUpSpawnConfig{
				Enabled:       true,
				Size:          40,
				MinIntervalMS: 8000,
				MaxIntervalMS: 15000,
				Chance:        0.3,
				TTLMS:         8000,
				TopMargin:     100,
				BottomMargin:  100,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			SpeedStep:      0.2,
			IntervalStepMS: 100,
			MinIntervalMS:  400,
		},
	}
}

// DefaultClassicConfig returns the one-hit variant: no abilities, combos or
// power-ups, and bullets aimed near the character.
func DefaultClassicConfig() DodgeConfig {
	cfg := DefaultDodgeConfig()
	cfg.Player.BoostedMoveSpeed = cfg.Player.MoveSpeed
	cfg.Health.BulletDamage = cfg.Health.Max
	cfg.Health.PickupHeal = 0
	cfg.Abilities.Enabled = false
	cfg.Effects = EffectsConfig{}
	cfg.Scoring.PickupBonus = 0
	cfg.Scoring.Combo.Enabled = false
	cfg.Spawn.Bullets.AimAtCharacter = true
	cfg.Spawn.Bullets.AimSpread = 150
	cfg.Spawn.PowerUps.Enabled = false
	cfg.Spawn.PowerUps.Chance = 0
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case GameDodge:
		return defaultDodgeYAML
	case GameDodgeClassic:
		return defaultClassicYAML
	default:
		return nil
	}
}

func defaultConfig(gameID string) DodgeConfig {
	if gameID == GameDodgeClassic {
		return DefaultClassicConfig()
	}
	return DefaultDodgeConfig()
}
