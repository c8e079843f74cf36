package dodge

import (
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Spawner creates bullets and power-ups from a seeded random stream.
// Draw order is fixed, so identical seeds give identical spawns.
type Spawner struct {
	cfg        config.SpawnConfig
	view       core.Box
	rng        *rand.Rand
	difficulty *config.DifficultyManager
}

// NewSpawner creates a spawner for the given viewport.
func NewSpawner(cfg config.SpawnConfig, view core.Box, difficulty *config.DifficultyManager, seed int64) *Spawner {
	return &Spawner{
		cfg:        cfg,
		view:       view,
		rng:        rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness, not security
		difficulty: difficulty,
	}
}

// BulletInterval returns the delay before the next bullet at a level.
func (sp *Spawner) BulletInterval(level int) int {
	return sp.difficulty.SpawnInterval(sp.cfg.Bullets.BaseIntervalMS, level)
}

// Bullet creates a bullet for the current level. Horizontal and vertical
// bullets are equally likely; horizontal ones enter from either side.
func (sp *Spawner) Bullet(level int, target core.Box) Bullet {
	bc := sp.cfg.Bullets
	speed := sp.difficulty.Speed(bc.BaseSpeed, level)
	cx, cy := target.Center()

	if sp.rng.Float64() < 0.5 {
		fromLeft := sp.rng.Float64() < 0.5
		b := Bullet{
			Y:      sp.perpendicular(sp.view.Y, sp.view.H, cy),
			Size:   bc.Size,
			Kind:   BulletHorizontal,
			SpeedX: speed,
		}
		if fromLeft {
			b.X = sp.view.X - bc.EdgeOffset
		} else {
			b.X = sp.view.Right() + bc.EdgeOffset
			b.SpeedX = -speed
		}
		return b
	}

	return Bullet{
		X:      sp.perpendicular(sp.view.X, sp.view.W, cx),
		Y:      sp.view.Y - bc.EdgeOffset,
		Size:   bc.Size,
		Kind:   BulletVertical,
		SpeedY: speed,
	}
}

// perpendicular picks the coordinate across a bullet's travel axis: uniform
// over the extent, or near the target when aiming.
func (sp *Spawner) perpendicular(origin, extent, target float64) float64 {
	bc := sp.cfg.Bullets
	if !bc.AimAtCharacter {
		return origin + sp.rng.Float64()*extent
	}
	offset := (sp.rng.Float64()*2 - 1) * bc.AimSpread
	v := target - bc.Size/2 + offset
	return core.ClampF(v, origin, origin+extent-bc.Size)
}

// PowerUpDelay draws the delay before the next power-up attempt from
// [min, max).
func (sp *Spawner) PowerUpDelay() int {
	pc := sp.cfg.PowerUps
	span := pc.MaxIntervalMS - pc.MinIntervalMS
	if span <= 0 {
		return pc.MinIntervalMS
	}
	return pc.MinIntervalMS + sp.rng.Intn(span)
}

// PowerUp attempts a power-up spawn. The attempt fails with probability
// 1-chance.
func (sp *Spawner) PowerUp() (PowerUp, bool) {
	pc := sp.cfg.PowerUps
	if !pc.Enabled || sp.rng.Float64() > pc.Chance {
		return PowerUp{}, false
	}

	kind := PowerUpType(sp.rng.Intn(int(powerUpTypeCount)))
	x := sp.view.X + sp.rng.Float64()*(sp.view.W-pc.Size)
	y := sp.view.Y + pc.TopMargin + sp.rng.Float64()*(sp.view.H-pc.TopMargin-pc.BottomMargin)

	return PowerUp{X: x, Y: y, Size: pc.Size, Type: kind}, true
}
