package tui

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Particle tuning, in the game's logical units per tick.
const (
	particlesPerBurst = 8
	particleGravity   = 0.2
	particleMinSpeed  = 2.0
	particleSpeedVar  = 3.0
	particleRune      = '•'
)

// Projector maps logical game coordinates to screen cells.
type Projector interface {
	Project(x, y float64) (int, int)
}

// CharacterLocator reports the cells covered by the player character.
type CharacterLocator interface {
	CharacterRect() core.Rect
}

type particle struct {
	x, y   float64
	vx, vy float64
	life   time.Duration
	color  core.Color
}

// FX animates the cosmetic effects a game emits: particle bursts, screen
// shake, the dash flash and the combo pulse.
type FX struct {
	rng       *rand.Rand
	particles []particle
	shake     time.Duration
	flash     time.Duration
	pulse     time.Duration
	frame     int
}

// NewFX creates an effect layer with a seeded particle source.
func NewFX(seed int64) *FX {
	return &FX{rng: rand.New(rand.NewSource(seed))}
}

// Add starts the given effects.
func (f *FX) Add(effects []core.Effect) {
	for _, e := range effects {
		switch e.Kind {
		case core.EffectBurst:
			f.burst(e)
		case core.EffectShake:
			f.shake = max(f.shake, e.Duration)
		case core.EffectDashFlash:
			f.flash = max(f.flash, e.Duration)
		case core.EffectComboPulse:
			f.pulse = max(f.pulse, e.Duration)
		}
	}
}

// burst spawns particles evenly around the origin with random speed.
func (f *FX) burst(e core.Effect) {
	for i := 0; i < particlesPerBurst; i++ {
		angle := float64(i) / particlesPerBurst * 2 * math.Pi
		speed := particleMinSpeed + f.rng.Float64()*particleSpeedVar
		f.particles = append(f.particles, particle{
			x:     e.X,
			y:     e.Y,
			vx:    math.Cos(angle) * speed,
			vy:    math.Sin(angle) * speed,
			life:  e.Duration,
			color: e.Color,
		})
	}
}

// Update advances every effect by one frame of length dt.
func (f *FX) Update(dt time.Duration) {
	f.frame++
	f.shake = max(0, f.shake-dt)
	f.flash = max(0, f.flash-dt)
	f.pulse = max(0, f.pulse-dt)

	alive := f.particles[:0]
	for _, p := range f.particles {
		p.life -= dt
		if p.life <= 0 {
			continue
		}
		p.x += p.vx
		p.y += p.vy
		p.vy += particleGravity
		alive = append(alive, p)
	}
	f.particles = alive
}

// Reset drops every running effect.
func (f *FX) Reset() {
	f.particles = f.particles[:0]
	f.shake, f.flash, f.pulse = 0, 0, 0
}

// Particles returns the number of live particles.
func (f *FX) Particles() int {
	return len(f.particles)
}

// Shaking reports whether a screen shake is running.
func (f *FX) Shaking() bool {
	return f.shake > 0
}

// ShakeOffset returns the horizontal screen offset for the current frame.
func (f *FX) ShakeOffset() int {
	if f.shake <= 0 {
		return 0
	}
	if f.frame%2 == 0 {
		return 1
	}
	return -1
}

// Decorate draws particles onto empty cells and applies the flash and
// pulse tints. The HUD rows above top are never touched by particles.
func (f *FX) Decorate(s *core.Screen, proj Projector, top int) {
	if proj != nil {
		for _, p := range f.particles {
			x, y := proj.Project(p.x, p.y)
			if y < top || s.Get(x, y) != ' ' {
				continue
			}
			s.SetCell(x, y, particleRune, p.color)
		}
	}

	if f.flash > 0 {
		if loc, ok := proj.(CharacterLocator); ok {
			r := loc.CharacterRect()
			for y := r.Y; y < r.Y+r.H; y++ {
				for x := r.X; x < r.X+r.W; x++ {
					s.Recolor(x, y, core.ColorBrightWhite)
				}
			}
		}
	}

	if f.pulse > 0 {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, 0).Color == core.ColorDefault {
				s.Recolor(x, 0, core.ColorBrightYellow)
			}
		}
	}
}

// Shift copies src into dst moved dx columns. Uncovered cells are blank.
func Shift(src, dst *core.Screen, dx int) {
	dst.Resize(src.Width(), src.Height())
	dst.Clear()
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			c := src.GetCell(x, y)
			if c.Rune == 0 {
				continue
			}
			dst.SetCell(x+dx, y, c.Rune, c.Color)
		}
	}
}
