package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/beast-arcade/internal/core"
)

func sendSession(m SessionModel, msgs ...tea.Msg) SessionModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func TestMenuListsModes(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("beast", "alice", 42, 3); err != nil {
		t.Fatalf("save score: %v", err)
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	view := m.View()
	for _, want := range []string{"Beast", "Beast (Ranked)", "(best 42)"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu missing %q:\n%s", want, view)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel := next.(MenuModel).Selected()
	if sel == nil || sel.GameID != "beast_ranked" {
		t.Errorf("selected = %+v, want beast_ranked", sel)
	}
}

func TestScoreboardShowsScores(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("beast", "alice", 42, 3); err != nil {
		t.Fatalf("save score: %v", err)
	}
	if _, err := store.SaveScore("beast_ranked", "bob", 7, 1); err != nil {
		t.Fatalf("save score: %v", err)
	}

	sb := NewScoreboardModel(store, 120, 30)
	view := sb.View()
	if !strings.Contains(view, "alice") || strings.Contains(view, "bob") {
		t.Errorf("first mode should show alice only:\n%s", view)
	}
	if !strings.Contains(view, "furthest level 3") {
		t.Errorf("stats line missing:\n%s", view)
	}

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyTab})
	view = next.(ScoreboardModel).View()
	if !strings.Contains(view, "bob") {
		t.Errorf("second mode should show bob:\n%s", view)
	}

	empty := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(empty.View(), "No score database") {
		t.Error("missing store not reported")
	}
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 20}, Options{Store: store, User: "alice", Remote: true})

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("tab did not open the scoreboard")
	}
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("esc did not return to the menu")
	}

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("enter did not start a game")
	}
	m = sendSession(m, TickMsg{})
	if !strings.Contains(m.View(), "[SPACE] Play") {
		t.Error("game intro not shown")
	}

	m = sendSession(m, runeKey('b'))
	if m.screen != screenMenu {
		t.Fatalf("b on the intro did not return to the menu")
	}

	m = sendSession(m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q in the menu should end the session")
	}
}
