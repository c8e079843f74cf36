package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorTeal
)

// HealthColor returns the health bar color tier for a percentage:
// green above 60, amber above 30, red otherwise.
func HealthColor(percent float64) Color {
	switch {
	case percent > 60:
		return ColorGreen
	case percent > 30:
		return ColorOrange
	default:
		return ColorRed
	}
}
