package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Character is the player-controlled box. X and Y are its top-left corner.
type Character struct {
	X, Y      float64
	VelocityY float64
	IsJumping bool
	W, H      float64
}

// NewCharacter places a character centred on the platform, standing on it.
func NewCharacter(cfg config.PlayerConfig, platform core.Box) Character {
	return Character{
		X: platform.X + (platform.W-cfg.Width)/2,
		Y: platform.Y - cfg.Height,
		W: cfg.Width,
		H: cfg.Height,
	}
}

// Box returns the character's bounding box.
func (c Character) Box() core.Box {
	return core.NewBox(c.X, c.Y, c.W, c.H)
}

// Center returns the centre of the character.
func (c Character) Center() (float64, float64) {
	return c.Box().Center()
}

// Jump starts a jump unless one is already in progress.
func (c *Character) Jump(impulse float64) bool {
	if c.IsJumping {
		return false
	}
	c.VelocityY = impulse
	c.IsJumping = true
	return true
}

// Move applies held directions. Holding both cancels out.
func (c *Character) Move(in core.InputFrame, speed float64) {
	if in.IsHeld(core.ActionRight) {
		c.X += speed
	}
	if in.IsHeld(core.ActionLeft) {
		c.X -= speed
	}
}

// Dash displaces the character toward the held direction, right first.
func (c *Character) Dash(in core.InputFrame, distance float64) {
	switch {
	case in.IsHeld(core.ActionRight):
		c.X += distance
	case in.IsHeld(core.ActionLeft):
		c.X -= distance
	}
}

// ApplyPhysics integrates gravity and lands the character on the platform
// when it is falling, horizontally over it and at or below the ground line.
func (c *Character) ApplyPhysics(gravity float64, platform core.Box) {
	c.VelocityY += gravity
	c.Y += c.VelocityY

	groundY := platform.Y - c.H
	if c.X+c.W > platform.X && c.X < platform.Right() && c.Y >= groundY && c.VelocityY >= 0 {
		c.Y = groundY
		c.VelocityY = 0
		c.IsJumping = false
	}
}

// FellOff reports whether the character is below the viewport.
func (c Character) FellOff(viewH float64) bool {
	return c.Y > viewH
}
