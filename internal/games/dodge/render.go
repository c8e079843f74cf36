package dodge

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Visual characters for rendering
const (
	CharacterChar   = '█'
	PlatformChar    = '▀'
	BulletLeftChar  = '◀'
	BulletRightChar = '▶'
	BulletDownChar  = '▼'
	ShieldChar      = '░'
	hudRows         = 2
	minScreenW      = 40
	minScreenH      = 16
)

// Project maps a logical point to a screen cell of the last render target.
func (g *Game) Project(x, y float64) (int, int) {
	playH := g.cellsH - hudRows
	if g.view.W <= 0 || g.view.H <= 0 || g.cellsW <= 0 || playH <= 0 {
		return 0, 0
	}
	col := int(math.Floor(x / g.view.W * float64(g.cellsW)))
	row := hudRows + int(math.Floor(y/g.view.H*float64(playH)))
	return col, row
}

// projectBox maps a logical box to a cell rectangle at least one cell big.
func (g *Game) projectBox(b core.Box) core.Rect {
	x0, y0 := g.Project(b.X, b.Y)
	x1, y1 := g.Project(b.Right(), b.Bottom())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// CharacterRect returns the cells covered by the character.
func (g *Game) CharacterRect() core.Rect {
	return g.projectBox(g.character.Box())
}

// PlayfieldTop returns the first screen row below the HUD.
func (g *Game) PlayfieldTop() int {
	return hudRows
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.cellsW, g.cellsH = dst.Width(), dst.Height()

	// Check for screen too small
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	g.renderHUD(dst)
	g.renderPlatform(dst)
	g.renderPowerUps(dst)
	g.renderCharacter(dst)
	g.renderBullets(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, health and abilities on the top two rows.
func (g *Game) renderHUD(dst *core.Screen) {
	h := g.HUD()

	x := dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", h.Score), core.ColorBrightWhite)
	x = dst.DrawTextColor(x+2, 0, fmt.Sprintf("Level: %d", h.Level), core.ColorBrightCyan)
	if g.cfg.Scoring.Combo.Enabled {
		comboColor := core.ColorGray
		if h.Combo > 0 {
			comboColor = core.ColorBrightYellow
		}
		dst.DrawTextColor(x+2, 0, fmt.Sprintf("Combo: x%d", h.Combo), comboColor)
	}

	health := fmt.Sprintf(" %d/%d", h.Health, h.MaxHealth)
	barW := 12
	hx := dst.Width() - 1 - runewidth.StringWidth(health) - barW - 3
	hx = dst.DrawTextColor(hx, 0, "HP ", core.ColorWhite)
	dst.DrawBar(hx, 0, barW, h.HealthPercent/100, h.HealthColor)
	dst.DrawTextColor(hx+barW, 0, health, h.HealthColor)

	x = 1
	if h.AbilitiesEnabled {
		x = drawAbility(dst, x, "Dash[F]", h.Dash)
		x = drawAbility(dst, x+2, "Shield[E]", h.Shield)
		x += 2
	}
	for _, label := range h.StatusLabels() {
		x = dst.DrawTextColor(x, 1, label, statusColor(label)) + 1
	}

	clock := "Time " + core.FormatClock(h.Survival)
	dst.DrawTextColor(dst.Width()-1-runewidth.StringWidth(clock), 1, clock, core.ColorGray)
}

func drawAbility(dst *core.Screen, x int, name string, a AbilityReadout) int {
	color := core.ColorGray
	switch a.State {
	case AbilityReady:
		color = core.ColorBrightGreen
	case AbilityActive:
		color = core.ColorBrightCyan
	}
	x = dst.DrawTextColor(x, 1, name+" ", color)
	dst.DrawBar(x, 1, 6, a.Progress/100, color)
	return x + 6
}

func statusColor(label string) core.Color {
	switch label {
	case "SHIELD":
		return core.ColorBrightCyan
	case "INVINCIBLE":
		return core.ColorTeal
	case "SPEED":
		return core.ColorYellow
	default:
		return core.ColorWhite
	}
}

// renderPlatform draws the platform's top edge.
func (g *Game) renderPlatform(dst *core.Screen) {
	r := g.projectBox(g.platform)
	dst.DrawRect(r, PlatformChar, core.ColorGray)
}

// renderPowerUps draws power-up glyphs at their centres.
func (g *Game) renderPowerUps(dst *core.Screen) {
	g.powerUps.Each(func(_ Handle, p *PowerUp) bool {
		cx, cy := p.Box().Center()
		x, y := g.Project(cx, cy)
		dst.SetCell(x, y, p.Type.Glyph(), p.Type.Color())
		return true
	})
}

// renderCharacter draws the character, tinted by its status.
func (g *Game) renderCharacter(dst *core.Screen) {
	if g.state.GameOver {
		return
	}

	color := core.ColorBrightWhite
	switch {
	case g.state.Invincibility.Active:
		color = core.ColorTeal
	case g.state.SpeedBoost.Active:
		color = core.ColorYellow
	}

	r := g.projectBox(g.character.Box())
	if g.abilities.Shield.Active() {
		dst.DrawRect(core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2), ShieldChar, core.ColorBrightCyan)
	}
	dst.DrawRect(r, CharacterChar, color)
}

// renderBullets draws bullets as arrows pointing along their travel.
func (g *Game) renderBullets(dst *core.Screen) {
	g.bullets.Each(func(_ Handle, b *Bullet) bool {
		glyph := BulletDownChar
		if b.Kind == BulletHorizontal {
			glyph = BulletRightChar
			if b.SpeedX < 0 {
				glyph = BulletLeftChar
			}
		}
		cx, cy := b.Box().Center()
		x, y := g.Project(cx, cy)
		if y >= hudRows {
			dst.SetCell(x, y, glyph, core.ColorBrightRed)
		}
		return true
	})
}

// renderOverlay draws pause and game-over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.state.Paused:
		drawCenteredBox(dst, core.ColorBrightYellow, "PAUSED", "Press P to resume")

	case g.state.GameOver:
		s := g.final
		drawCenteredBox(dst, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d   Level: %d", s.Score, s.Level),
			fmt.Sprintf("Max Combo: %d   Survival: %s", s.MaxCombo, s.SurvivalClock()),
			capitalize(s.Reason),
			"SPACE/R restart  B menu  Q quit")
	}
}

// drawCenteredBox draws a centered message box with a title and lines.
func drawCenteredBox(dst *core.Screen, color core.Color, title string, lines ...string) {
	width := runewidth.StringWidth(title)
	for _, l := range lines {
		width = core.Max(width, runewidth.StringWidth(l))
	}

	boxW := width + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), color)

	dst.DrawTextCentered(boxY+1, title, color)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorWhite)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
