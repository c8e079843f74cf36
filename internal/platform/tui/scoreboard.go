package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

const (
	sidebarMinWidth = 90 // Narrower terminals show the game name above the table
	sidebarWidth    = 20
	runLimit        = 100
)

// allGames is the pseudo game ID that lists every run of the session.
const allGames = ""

// RankBy is the order runs are listed in.
type RankBy int

const (
	RankByScore RankBy = iota
	RankBySurvival
	RankByCombo
	rankByCount
)

func (r RankBy) String() string {
	switch r {
	case RankBySurvival:
		return "survival"
	case RankByCombo:
		return "combo"
	default:
		return "score"
	}
}

// rankRuns reorders runs in place. Runs arrive best score first, and the
// stable sort keeps that as the tie-breaker.
func rankRuns(runs []storage.Run, by RankBy) {
	switch by {
	case RankBySurvival:
		slices.SortStableFunc(runs, func(a, b storage.Run) int {
			return cmp.Compare(b.Survival, a.Survival)
		})
	case RankByCombo:
		slices.SortStableFunc(runs, func(a, b storage.Run) int {
			return cmp.Compare(b.MaxCombo, a.MaxCombo)
		})
	default:
		slices.SortStableFunc(runs, func(a, b storage.Run) int {
			return cmp.Compare(b.Score, a.Score)
		})
	}
}

// runSummary aggregates the listed runs.
type runSummary struct {
	Runs    int
	Best    int
	Longest time.Duration
	Average time.Duration
}

func summarize(runs []storage.Run) runSummary {
	var s runSummary
	var total time.Duration
	for _, r := range runs {
		s.Best = max(s.Best, r.Score)
		s.Longest = max(s.Longest, r.Survival)
		total += r.Survival
	}
	s.Runs = len(runs)
	if s.Runs > 0 {
		s.Average = total / time.Duration(s.Runs)
	}
	return s
}

func (s runSummary) String() string {
	return fmt.Sprintf("%d runs  |  best %d  |  longest %s  |  average %s",
		s.Runs, s.Best, core.FormatClock(s.Longest), core.FormatClock(s.Average))
}

type scoreboardKeys struct {
	Up, Down   key.Binding
	Next, Prev key.Binding
	Rank       key.Binding
	Back, Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Rank, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev, k.Rank}, {k.Back, k.Quit}}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Rank: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "rank by")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardModel lists the runs finished in this session.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo // Entry 0 is every game
	game   int
	rankBy RankBy
	runs   []storage.Run

	table  table.Model
	help   help.Model
	keys   scoreboardKeys
	width  int
	height int

	back     bool
	quitting bool
}

// NewScoreboardModel opens the scoreboard on all games ranked by score.
// A nil store shows an empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  append([]registry.GameInfo{{ID: allGames, Title: "All games"}}, registry.List()...),
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.table = newRunTable(height)
	m.reload()
	return m
}

func (m ScoreboardModel) currentGame() registry.GameInfo {
	return m.games[m.game]
}

func newRunTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Lvl", Width: 4},
			{Title: "Combo", Width: 6},
			{Title: "Time", Width: 6},
			{Title: "Game", Width: 14},
			{Title: "Ended by", Width: 20},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-11)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)
	return t
}

// reload queries the store for the current game and re-ranks.
func (m *ScoreboardModel) reload() {
	m.runs = nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(m.currentGame().ID, runLimit); err == nil {
			m.runs = runs
		}
	}
	m.rerank()
}

func (m *ScoreboardModel) rerank() {
	rankRuns(m.runs, m.rankBy)
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level),
			"x" + strconv.Itoa(r.MaxCombo),
			core.FormatClock(r.Survival),
			r.GameID,
			r.Reason,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.game = (m.game + 1) % len(m.games)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.game = (m.game + len(m.games) - 1) % len(m.games)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Rank):
			m.rankBy = (m.rankBy + 1) % rankByCount
			m.rerank()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newRunTable(msg.Height)
		m.rerank()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("SESSION SCORES", m.width)))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(centerText("ranked by "+m.rankBy.String(), m.width)))
	b.WriteString("\n\n")

	board := boardFrameStyle.Render(m.boardContent())
	if m.width >= sidebarMinWidth {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", board))
	} else {
		b.WriteString(centerText("< "+m.currentGame().Title+" >", m.width))
		b.WriteString("\n\n")
		b.WriteString(board)
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) sidebar() string {
	var sb strings.Builder
	sb.WriteString("Games\n")
	sb.WriteString(strings.Repeat("─", sidebarWidth-4))
	for i, g := range m.games {
		sb.WriteString("\n")
		if i == m.game {
			sb.WriteString(boardTitleStyle.Render("> " + g.Title))
		} else {
			sb.WriteString("  " + g.Title)
		}
	}
	return boardFrameStyle.Width(sidebarWidth).Render(sb.String())
}

// boardContent is the run table with its summary and the selected run's
// details, or a placeholder before the first run ends.
func (m ScoreboardModel) boardContent() string {
	if len(m.runs) == 0 {
		return boardDimStyle.Italic(true).Padding(2, 4).
			Render("No runs finished yet.\nScores last until you quit.")
	}

	parts := []string{summarize(m.runs).String(), "", m.table.View()}
	if i := m.table.Cursor(); i >= 0 && i < len(m.runs) {
		r := m.runs[i]
		parts = append(parts, "", boardDimStyle.Render(
			fmt.Sprintf("run %.8s  seed %d  ended by %s", r.ID, r.Seed, r.Reason)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard until the user leaves it.
// It returns true when the user wants the menu back.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
