package config

// DifficultyManager derives bullet cadence and speed from the current level.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// steps returns how many levels above the first count toward scaling.
func (d *DifficultyManager) steps(level int) int {
	if !d.cfg.Enabled || level < 1 {
		return 0
	}
	return level - 1
}

// SpawnInterval returns the bullet spawn interval in milliseconds:
// max(minInterval, base - (level-1)*step).
func (d *DifficultyManager) SpawnInterval(baseMS, level int) int {
	interval := baseMS - d.steps(level)*d.cfg.IntervalStepMS
	floor := d.cfg.MinIntervalMS
	if floor > baseMS {
		floor = baseMS
	}
	if interval < floor {
		interval = floor
	}
	return interval
}

// SpeedMultiplier returns the bullet speed multiplier: 1 + (level-1)*step.
func (d *DifficultyManager) SpeedMultiplier(level int) float64 {
	return 1.0 + float64(d.steps(level))*d.cfg.SpeedStep
}

// Speed returns the bullet speed for a level.
func (d *DifficultyManager) Speed(baseSpeed float64, level int) float64 {
	return baseSpeed * d.SpeedMultiplier(level)
}
