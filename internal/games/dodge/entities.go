package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// BulletKind is the travel axis of a bullet.
type BulletKind int

const (
	BulletHorizontal BulletKind = iota // Enters from the left or right edge
	BulletVertical                     // Enters from the top edge
)

// Bullet is a projectile. X and Y are its top-left corner.
type Bullet struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Size           float64
	Kind           BulletKind
}

// Box returns the bullet's bounding box.
func (b Bullet) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Size, b.Size)
}

// Advance moves the bullet by one tick of its velocity.
func (b *Bullet) Advance() {
	b.X += b.SpeedX
	b.Y += b.SpeedY
}

// OutOfBounds reports whether the bullet is more than margin units outside
// the viewport.
func (b Bullet) OutOfBounds(view core.Box, margin float64) bool {
	return b.X < view.X-margin || b.X > view.Right()+margin ||
		b.Y < view.Y-margin || b.Y > view.Bottom()+margin
}

// PowerUpType is the effect a power-up grants.
type PowerUpType int

const (
	PowerUpHealth PowerUpType = iota
	PowerUpInvincibility
	PowerUpSpeed
	powerUpTypeCount
)

// String returns the power-up name.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpHealth:
		return "health"
	case PowerUpInvincibility:
		return "invincibility"
	case PowerUpSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// Glyph returns the display glyph for the power-up.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerUpHealth:
		return '♥'
	case PowerUpInvincibility:
		return '◆'
	case PowerUpSpeed:
		return '»'
	default:
		return '?'
	}
}

// Color returns the display color for the power-up.
func (t PowerUpType) Color() core.Color {
	switch t {
	case PowerUpHealth:
		return core.ColorPink
	case PowerUpInvincibility:
		return core.ColorTeal
	case PowerUpSpeed:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

// PowerUp is a stationary collectible. Collected is write-once.
type PowerUp struct {
	X, Y      float64
	Size      float64
	Type      PowerUpType
	Collected bool
	ExpiresAt int // Simulation time in ms
}

// Box returns the power-up's bounding box.
func (p PowerUp) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}
