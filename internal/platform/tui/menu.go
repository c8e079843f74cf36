package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// MenuItem is one game variant in the picker with its session record.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int
	Runs        int
}

// MenuResult is what the user picked.
type MenuResult struct {
	GameID          string // Empty unless a game was chosen
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the game picker.
type MenuModel struct {
	items   []MenuItem
	cursor  int
	session int // Runs finished across all games
	keys    *KeyMapper
	result  MenuResult
	done    bool
}

// NewMenuModel lists the registered games. Session records are read from
// store when it is non-nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{keys: NewKeyMapper(), result: MenuResult{Config: cfg}}
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store != nil {
			item.Best, _ = store.BestScore(g.ID)
			item.Runs, _ = store.RunCount(g.ID)
		}
		m.session += item.Runs
		m.items = append(m.items, item)
	}
	return m
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.result.Config.ScreenW = msg.Width
		m.result.Config.ScreenH = msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		m.result.GameID = m.items[m.cursor].GameID
		return m.finish()
	case MenuActionScoreboard:
		m.result.WantsScoreboard = true
		return m.finish()
	case MenuActionQuit:
		m.result.Quit = true
		return m.finish()
	}
	return m, nil
}

func (m MenuModel) finish() (tea.Model, tea.Cmd) {
	m.done = true
	return m, tea.Quit
}

// Result returns the choice. A menu closed without a choice quits.
func (m MenuModel) Result() MenuResult {
	r := m.result
	if r.GameID == "" && !r.WantsScoreboard {
		r.Quit = true
	}
	return r
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}
	width := m.result.Config.ScreenW

	var b strings.Builder
	line := func(s string, style *lipgloss.Style) {
		s = centerText(s, width)
		if style != nil {
			s = style.Render(s)
		}
		b.WriteString(s)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	line("  D O D G E  ", &menuTitleStyle)
	b.WriteString("\n")
	line("Select a game", nil)
	b.WriteString("\n")

	for i, item := range m.items {
		text := item.Title
		if item.Runs > 0 {
			text += fmt.Sprintf("  (best %d, %d runs)", item.Best, item.Runs)
		}
		if i == m.cursor {
			line("> "+text, &menuCursorStyle)
		} else {
			line("  "+text, nil)
		}
	}

	b.WriteString("\n")
	if len(m.items) > 0 && m.items[m.cursor].Description != "" {
		line(m.items[m.cursor].Description, nil)
		b.WriteString("\n")
	}
	if m.session > 0 {
		line(fmt.Sprintf("%d runs this session", m.session), &menuDimStyle)
	}
	line("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", &menuDimStyle)
	return b.String()
}

// centerText pads text on the left to center it in width display cells.
func centerText(text string, width int) string {
	pad := (width - runewidth.StringWidth(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// RunMenu shows the picker until the user chooses.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
