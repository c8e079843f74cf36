package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// palette maps core colors to ANSI 256-color codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorPink:          "205",
	core.ColorTeal:          "37",
}

// Styles holds one lipgloss style per core color.
type Styles struct {
	byColor map[core.Color]lipgloss.Style
	plain   lipgloss.Style
}

// NewStyles builds the style set. Faint styles are used while the
// simulation is stopped so the overlay text stands out.
func NewStyles(faint bool) Styles {
	base := lipgloss.NewStyle().Faint(faint)
	st := Styles{
		byColor: make(map[core.Color]lipgloss.Style, len(palette)+1),
		plain:   base,
	}
	st.byColor[core.ColorDefault] = base
	for c, code := range palette {
		s := base.Foreground(lipgloss.Color(code))
		if c == core.ColorBrightWhite && !faint {
			s = s.Bold(true)
		}
		st.byColor[c] = s
	}
	return st
}

var (
	activeStyles  = NewStyles(false)
	stoppedStyles = NewStyles(true)
)

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return activeStyles.Render(s)
}

// RenderStopped renders a paused or finished game with faint colors.
func RenderStopped(s *core.Screen) string {
	return stoppedStyles.Render(s)
}

func (st Styles) style(c core.Color) lipgloss.Style {
	if s, ok := st.byColor[c]; ok {
		return s
	}
	return st.plain
}

// Render writes each row as runs of same-colored cells, one escape
// sequence per run. Continuation cells of wide glyphs are skipped.
func (st Styles) Render(s *core.Screen) string {
	var sb, run strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run.Reset()
		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				sb.WriteString(st.style(current).Render(run.String()))
				run.Reset()
				current = cell.Color
			}
			if cell.Rune != 0 {
				run.WriteRune(cell.Rune)
			}
		}
		if run.Len() > 0 {
			sb.WriteString(st.style(current).Render(run.String()))
		}
	}
	return sb.String()
}
