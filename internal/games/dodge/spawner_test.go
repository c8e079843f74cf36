package dodge

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

func newTestSpawner(seed int64, mutate func(*config.SpawnConfig)) *Spawner {
	cfg := config.DefaultDodgeConfig()
	if mutate != nil {
		mutate(&cfg.Spawn)
	}
	return NewSpawner(cfg.Spawn, core.NewBox(0, 0, 1280, 720), config.NewDifficultyManager(cfg.Difficulty), seed)
}

func TestSpawnerBullets(t *testing.T) {
	sp := newTestSpawner(5, nil)
	target := core.NewBox(590, 460, 100, 100)
	horizontal, vertical := 0, 0

	for i := 0; i < 500; i++ {
		b := sp.Bullet(1, target)
		switch b.Kind {
		case BulletHorizontal:
			horizontal++
			if b.X != -50 && b.X != 1330 {
				t.Fatalf("horizontal bullet at x = %v", b.X)
			}
			if math.Abs(b.SpeedX) != 6 || b.SpeedY != 0 {
				t.Fatalf("horizontal speed = (%v, %v)", b.SpeedX, b.SpeedY)
			}
			if (b.X < 0) != (b.SpeedX > 0) {
				t.Fatal("horizontal bullet should travel into the viewport")
			}
			if b.Y < 0 || b.Y >= 720 {
				t.Fatalf("horizontal bullet y = %v", b.Y)
			}
		case BulletVertical:
			vertical++
			if b.Y != -50 || b.SpeedY != 6 || b.SpeedX != 0 {
				t.Fatalf("vertical bullet = %+v", b)
			}
			if b.X < 0 || b.X >= 1280 {
				t.Fatalf("vertical bullet x = %v", b.X)
			}
		}
		if b.Size != 40 {
			t.Fatalf("bullet size = %v", b.Size)
		}
	}

	if horizontal < 150 || vertical < 150 {
		t.Errorf("kinds should be roughly even, got %d horizontal and %d vertical", horizontal, vertical)
	}
}

func TestSpawnerLevelScaling(t *testing.T) {
	sp := newTestSpawner(5, nil)
	b := sp.Bullet(2, core.NewBox(0, 0, 1, 1))
	speed := math.Abs(b.SpeedX) + b.SpeedY
	if math.Abs(speed-7.2) > 1e-9 {
		t.Errorf("level 2 speed = %v, expected 7.2", speed)
	}
	if sp.BulletInterval(1) != 1200 || sp.BulletInterval(3) != 1000 || sp.BulletInterval(50) != 400 {
		t.Error("unexpected bullet intervals")
	}
}

func TestSpawnerAimed(t *testing.T) {
	sp := newTestSpawner(9, func(c *config.SpawnConfig) {
		c.Bullets.AimAtCharacter = true
		c.Bullets.AimSpread = 100
	})
	target := core.NewBox(590, 460, 100, 100)

	for i := 0; i < 200; i++ {
		b := sp.Bullet(1, target)
		if b.Kind == BulletHorizontal {
			if b.Y < 490-100 || b.Y > 490+100 {
				t.Fatalf("aimed horizontal bullet y = %v, expected near 490", b.Y)
			}
		} else if b.X < 620-100 || b.X > 620+100 {
			t.Fatalf("aimed vertical bullet x = %v, expected near 620", b.X)
		}
	}

	// Aim is clamped to the viewport
	corner := core.NewBox(-200, -200, 10, 10)
	for i := 0; i < 50; i++ {
		b := sp.Bullet(1, corner)
		if b.Kind == BulletHorizontal && b.Y < 0 {
			t.Fatalf("aimed y = %v escaped the viewport", b.Y)
		}
		if b.Kind == BulletVertical && b.X < 0 {
			t.Fatalf("aimed x = %v escaped the viewport", b.X)
		}
	}
}

func TestSpawnerPowerUps(t *testing.T) {
	sp := newTestSpawner(3, func(c *config.SpawnConfig) { c.PowerUps.Chance = 1 })

	for i := 0; i < 300; i++ {
		d := sp.PowerUpDelay()
		if d < 8000 || d >= 15000 {
			t.Fatalf("delay %d outside [8000, 15000)", d)
		}

		p, ok := sp.PowerUp()
		if !ok {
			t.Fatal("chance 1 should always spawn")
		}
		if p.X < 0 || p.X >= 1240 || p.Y < 100 || p.Y >= 620 {
			t.Fatalf("power-up at (%v, %v) out of range", p.X, p.Y)
		}
		if p.Type < PowerUpHealth || p.Type >= powerUpTypeCount {
			t.Fatalf("bad power-up type %v", p.Type)
		}
	}

	never := newTestSpawner(3, func(c *config.SpawnConfig) { c.PowerUps.Enabled = false })
	for i := 0; i < 100; i++ {
		if _, ok := never.PowerUp(); ok {
			t.Fatal("disabled power-ups should never spawn")
		}
	}
}

func TestSpawnerChance(t *testing.T) {
	sp := newTestSpawner(11, nil)
	hits := 0
	for i := 0; i < 2000; i++ {
		if _, ok := sp.PowerUp(); ok {
			hits++
		}
	}
	if hits < 450 || hits > 750 {
		t.Errorf("chance 0.3 gave %d hits out of 2000", hits)
	}
}

func TestBulletOutOfBounds(t *testing.T) {
	view := core.NewBox(0, 0, 1280, 720)
	tests := []struct {
		x, y     float64
		expected bool
	}{
		{-50, 100, false},
		{-100, 100, false},
		{-101, 100, true},
		{1381, 100, true},
		{100, 821, true},
		{100, -101, true},
		{640, 360, false},
	}

	for _, tc := range tests {
		b := Bullet{X: tc.x, Y: tc.y, Size: 40}
		if got := b.OutOfBounds(view, 100); got != tc.expected {
			t.Errorf("OutOfBounds(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}
