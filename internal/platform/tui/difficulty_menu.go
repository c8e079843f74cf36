package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// difficultyOption is one row of the difficulty selector.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyEasy, "Easy (slower, sparser bullets)"},
	{config.DifficultyHard, "Hard (faster, denser bullets)"},
	{config.DifficultyFixed, "Fixed (no level ramp)"},
}

// DifficultyResult holds the outcome of the difficulty selector.
type DifficultyResult struct {
	Preset config.DifficultyPreset
	Back   bool
	Quit   bool
}

// DifficultyModel lets users choose a difficulty preset before a run.
type DifficultyModel struct {
	title     string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	result    DifficultyResult
	choosing  bool
}

// NewDifficultyModel creates a selector whose cursor starts on current.
func NewDifficultyModel(title string, current config.DifficultyPreset, width, height int) DifficultyModel {
	cursor := 0
	for i, opt := range difficultyOptions {
		if opt.preset == current {
			cursor = i
		}
	}
	return DifficultyModel{
		title:     title,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choosing = false
		m.result.Quit = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.result.Preset = difficultyOptions[m.cursor].preset
		return m, tea.Quit
	case MenuActionBack:
		m.choosing = false
		m.result.Back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty selection.
func (m DifficultyModel) View() string {
	if !m.choosing {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Result returns the selection once the user has chosen.
func (m DifficultyModel) Result() DifficultyResult {
	return m.result
}

// IsChoosing returns true if still in selection mode.
func (m DifficultyModel) IsChoosing() bool {
	return m.choosing
}

// RunDifficultySelector runs the difficulty selection for a game.
func RunDifficultySelector(title string, current config.DifficultyPreset, cfg core.RuntimeConfig) (DifficultyResult, error) {
	model := NewDifficultyModel(title, current, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return DifficultyResult{Back: true}, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return DifficultyResult{Back: true}, nil
	}
	return m.Result(), nil
}
