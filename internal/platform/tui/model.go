package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/audio"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Options carries the collaborators a game session may use. Every field
// is optional.
type Options struct {
	Store      *storage.Store
	Player     audio.Player
	Logger     *log.Logger
	HoldWindow time.Duration
}

// statsProvider is implemented by games that report final run statistics.
type statsProvider interface {
	FinalStats() core.RunStats
}

// playfield is implemented by games that reserve top rows for a HUD.
type playfield interface {
	PlayfieldTop() int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	shaken    *core.Screen
	store     *storage.Store
	player    audio.Player
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      *KeyMapper
	hold      *HoldTracker
	fx        *FX
	pending   core.InputFrame
	gameState core.GameState
	runSaved  bool // Whether the current run has been recorded
	back      bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Player == nil {
		opts.Player = audio.Null{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		shaken:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   opts.Store,
		player:  opts.Player,
		logger:  opts.Logger,
		config:  cfg,
		keys:    NewKeyMapper(),
		hold:    NewHoldTracker(opts.HoldWindow),
		fx:      NewFX(cfg.Seed),
		pending: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.back = true
			return m, tea.Quit
		}
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action, now)
	default:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The simulation works in
// logical units, so the run continues at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.hold.Apply(&frame, now)
	m.pending.Clear()

	// Restart with a fresh seed
	if m.gameState.GameOver && (frame.Has(core.ActionRestart) || frame.Has(core.ActionJump)) {
		m.config.Seed = now.UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.fx.Reset()
		m.hold.Release()
		m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	m.player.Play(result.Cues...)
	m.fx.Add(result.Effects)
	m.fx.Update(tickInterval(m.config.TickRate))

	if m.gameState.GameOver && !m.runSaved {
		m.finishRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// finishRun logs and records the run that just ended.
func (m *Model) finishRun() {
	m.runSaved = true

	stats := core.RunStats{Score: m.gameState.Score}
	if sp, ok := m.game.(statsProvider); ok {
		stats = sp.FinalStats()
	}
	m.logger.Info("game over",
		"game", m.game.ID(),
		"score", stats.Score,
		"level", stats.Level,
		"max_combo", stats.MaxCombo,
		"survival", stats.SurvivalClock(),
		"reason", stats.Reason,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(m.game.ID(), m.config.Seed, stats); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)

	proj, _ := m.game.(Projector)
	top := 0
	if pf, ok := m.game.(playfield); ok {
		top = pf.PlayfieldTop()
	}
	m.fx.Decorate(m.screen, proj, top)

	out := m.screen
	if dx := m.fx.ShakeOffset(); dx != 0 {
		Shift(m.screen, m.shaken, dx)
		out = m.shaken
	}
	if m.gameState.GameOver || m.gameState.Paused {
		return RenderStopped(out)
	}
	return RenderScreen(out)
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// WantsBack returns true if the player asked to return to the menu.
func (m Model) WantsBack() bool {
	return m.back
}

// IsQuitting returns true if the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for game. It returns true when the
// player asked to go back to the menu rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (goBack bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.WantsBack(), nil
}
