package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

func seededStore(t *testing.T, stats ...core.RunStats) *storage.Store {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, s := range stats {
		if _, err := store.SaveRun(scriptedID, 1, s); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func TestScoreboardCyclesGames(t *testing.T) {
	store := seededStore(t,
		core.RunStats{Score: 10}, core.RunStats{Score: 30}, core.RunStats{Score: 20})

	m := NewScoreboardModel(store, 120, 40)
	if m.currentGame().ID != allGames || len(m.runs) != 3 {
		t.Fatalf("scoreboard should open on all games with 3 runs, got %q with %d", m.currentGame().ID, len(m.runs))
	}
	if m.runs[0].Score != 30 {
		t.Errorf("best run should rank first, got %d", m.runs[0].Score)
	}

	var model tea.Model = m
	for range m.games {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	if model.(ScoreboardModel).game != 0 {
		t.Error("tab should wrap around the game list")
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if model.(ScoreboardModel).game != len(m.games)-1 {
		t.Error("shift+tab should wrap to the last game")
	}

	view := m.View()
	if !strings.Contains(view, "SESSION SCORES") || !strings.Contains(view, "3 runs") {
		t.Errorf("scoreboard should show its title and summary\n%s", view)
	}
}

func TestScoreboardRankBy(t *testing.T) {
	store := seededStore(t,
		core.RunStats{Score: 300, MaxCombo: 1, Survival: 10 * time.Second},
		core.RunStats{Score: 100, MaxCombo: 9, Survival: 20 * time.Second},
		core.RunStats{Score: 200, MaxCombo: 4, Survival: 90 * time.Second},
	)

	var model tea.Model = NewScoreboardModel(store, 80, 30)
	expected := []struct {
		by    RankBy
		first int
	}{
		{RankBySurvival, 200},
		{RankByCombo, 100},
		{RankByScore, 300},
	}
	for _, tc := range expected {
		model, _ = model.Update(runeKey('s'))
		m := model.(ScoreboardModel)
		if m.rankBy != tc.by {
			t.Fatalf("s should cycle to %v, got %v", tc.by, m.rankBy)
		}
		if m.runs[0].Score != tc.first {
			t.Errorf("ranked by %v, first run scored %d, expected %d", tc.by, m.runs[0].Score, tc.first)
		}
		if !strings.Contains(m.View(), "ranked by "+tc.by.String()) {
			t.Errorf("view should name the ranking %v", tc.by)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := summarize([]storage.Run{
		{Score: 50, Survival: 30 * time.Second},
		{Score: 80, Survival: 90 * time.Second},
	})
	if s.Runs != 2 || s.Best != 80 || s.Longest != 90*time.Second || s.Average != time.Minute {
		t.Errorf("summarize() = %+v", s)
	}
	if got := summarize(nil); got != (runSummary{}) {
		t.Errorf("summarize(nil) = %+v, expected zero", got)
	}
}

func TestScoreboardShowsSelectedRun(t *testing.T) {
	store := seededStore(t, core.RunStats{Score: 5, Reason: "fell off the platform"})

	view := NewScoreboardModel(store, 80, 30).View()
	if !strings.Contains(view, "seed 1") || !strings.Contains(view, "ended by fell off the platform") {
		t.Errorf("selected run details missing\n%s", view)
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No runs finished yet") {
		t.Error("empty scoreboard should explain itself")
	}

	next, _ := m.Update(runeKey('b'))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back to the menu")
	}
}
