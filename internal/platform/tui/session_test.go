package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/registry"
	"github.com/vovakirdan/tilematch/internal/storage"
)

const sessionGameID = "stub-session"

var sessionGames []*stubGame

func init() {
	registry.Register(sessionGameID, func(config.TileMatchConfig) registry.Game {
		g := &stubGame{}
		sessionGames = append(sessionGames, g)
		return g
	})
}

func lastSessionGame(t *testing.T) *stubGame {
	t.Helper()
	if len(sessionGames) == 0 {
		t.Fatal("no game was created")
	}
	return sessionGames[len(sessionGames)-1]
}

func pressMenu(t *testing.T, m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func pressSession(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestMenuPresets(t *testing.T) {
	m := NewMenuModel(testConfig())

	m = pressMenu(t, m, keyEnter)
	sel := m.Selected()
	if sel == nil || sel.Kind != MenuPlay || sel.Level != 1 {
		t.Fatalf("easy selection = %+v", sel)
	}

	m = NewMenuModel(testConfig())
	m = pressMenu(t, m, keyDown, keyEnter)
	if sel := m.Selected(); sel == nil || sel.Level != 2 {
		t.Fatalf("hard selection = %+v", sel)
	}
}

func TestMenuCustomLevel(t *testing.T) {
	cfg := testConfig()
	cfg.Level = 4
	m := NewMenuModel(cfg)

	// Left/right only affect the level item.
	m = pressMenu(t, m, keyRight)
	m = pressMenu(t, m, keyDown, keyDown, keyRight, keyRight, keyLeft)
	if !strings.Contains(m.View(), "Level < 5 > (hard)") {
		t.Errorf("menu should show level 5:\n%s", m.View())
	}

	m = pressMenu(t, m, keyEnter)
	sel := m.Selected()
	if sel == nil || sel.Kind != MenuPlay || sel.Level != 5 {
		t.Errorf("custom selection = %+v", sel)
	}
}

func TestMenuCustomLevelBounds(t *testing.T) {
	m := NewMenuModel(testConfig())
	m = pressMenu(t, m, keyDown, keyDown, keyLeft, keyLeft)
	if m.custom != 1 {
		t.Errorf("custom level = %d, want 1", m.custom)
	}

	cfg := testConfig()
	cfg.Level = MaxMenuLevel
	m = NewMenuModel(cfg)
	m = pressMenu(t, m, keyDown, keyDown, keyRight)
	if m.custom != MaxMenuLevel {
		t.Errorf("custom level = %d, want %d", m.custom, MaxMenuLevel)
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(testConfig())
	m = pressMenu(t, m, keyUp)
	if m.cursor != 0 {
		t.Errorf("cursor = %d", m.cursor)
	}
	for range 10 {
		m = pressMenu(t, m, keyDown)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.items)-1)
	}

	m = pressMenu(t, m, keyEnter)
	if !m.IsQuitting() {
		t.Error("last item should quit")
	}
}

func TestSessionPlayAndBack(t *testing.T) {
	s := NewSessionModel(sessionGameID, config.DefaultTileMatchConfig(), nil, nil, testConfig(), "alice")

	s = pressSession(t, s, tea.WindowSizeMsg{Width: 90, Height: 30})
	s = pressSession(t, s, keyDown, keyEnter)
	if s.screen != screenGame || s.game == nil {
		t.Fatalf("session should be in a game, screen = %v", s.screen)
	}

	g := lastSessionGame(t)
	if len(g.resets) != 1 {
		t.Fatalf("resets = %d", len(g.resets))
	}
	if r := g.resets[0]; r.Level != 2 || r.ScreenW != 90 || r.ScreenH != 30 {
		t.Errorf("game reset with %+v", r)
	}

	g.state.GameOver = true
	s = pressSession(t, s, TickMsg(time.Now()), runeKey("b"))
	if s.screen != screenMenu {
		t.Errorf("back should return to the menu, screen = %v", s.screen)
	}
	if s.menu.custom != 2 {
		t.Errorf("menu should remember the last level, got %d", s.menu.custom)
	}
	if strings.Contains(s.View(), "stub board") {
		t.Error("menu view should not show the game")
	}
}

func TestSessionUnknownGame(t *testing.T) {
	s := NewSessionModel("missing", config.DefaultTileMatchConfig(), nil, nil, testConfig(), "alice")
	s = pressSession(t, s, keyEnter)

	if s.screen != screenMenu {
		t.Errorf("screen = %v, want menu", s.screen)
	}
	if !strings.Contains(s.View(), "Error:") {
		t.Error("menu should show the error")
	}
}

func TestSessionHistory(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.RunRecord{RunID: "a", Level: 1, Tier: "easy", Seed: "s", Status: "won", Score: 360}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	s := NewSessionModel(sessionGameID, config.DefaultTileMatchConfig(), store, nil, testConfig(), "alice")
	s = pressSession(t, s, keyTab)
	if s.screen != screenHistory || s.history == nil {
		t.Fatalf("tab should open the history, screen = %v", s.screen)
	}
	if len(s.history.Runs()) != 1 {
		t.Errorf("history runs = %d", len(s.history.Runs()))
	}

	s = pressSession(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Errorf("esc should return to the menu, screen = %v", s.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	s := NewSessionModel(sessionGameID, config.DefaultTileMatchConfig(), nil, nil, testConfig(), "alice")
	next, cmd := s.Update(runeKey("q"))
	s = next.(SessionModel)
	if !s.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
	if s.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestHistoryTabs(t *testing.T) {
	store := openStore(t)
	records := []storage.RunRecord{
		{RunID: "a", Level: 1, Tier: "easy", Seed: "s", Status: "won", Score: 360, Picks: 36},
		{RunID: "b", Level: 1, Tier: "easy", Seed: "s", Status: "lost", Picks: 7},
		{RunID: "c", Level: 2, Tier: "hard", Seed: "s", Status: "lost", Picks: 20},
	}
	for _, r := range records {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	h := NewHistoryModel(store, 120, 30)
	if len(h.levels) != 3 {
		t.Fatalf("levels = %v, want all, 1 and 2", h.levels)
	}
	if len(h.Runs()) != 3 {
		t.Errorf("all tab runs = %d, want 3", len(h.Runs()))
	}
	if !strings.Contains(h.View(), "Runs 3") {
		t.Errorf("view should show stats:\n%s", h.View())
	}

	next, _ := h.Update(keyTab)
	h = next.(HistoryModel)
	if len(h.Runs()) != 1 || h.Runs()[0].RunID != "a" {
		t.Errorf("level 1 tab should list won runs only, got %+v", h.Runs())
	}

	next, _ = h.Update(keyTab)
	h = next.(HistoryModel)
	if len(h.Runs()) != 0 {
		t.Errorf("level 2 has no won runs, got %d", len(h.Runs()))
	}
	if !strings.Contains(h.View(), "No won runs") {
		t.Error("empty level tab should say so")
	}

	next, _ = h.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	h = next.(HistoryModel)
	if h.tab != 1 {
		t.Errorf("tab = %d, want 1", h.tab)
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	h := NewHistoryModel(nil, 80, 24)
	if len(h.Runs()) != 0 {
		t.Error("expected no runs")
	}
	if !strings.Contains(h.View(), "No runs recorded yet") {
		t.Error("view should show the empty message")
	}

	next, _ := h.Update(runeKey("q"))
	if !next.(HistoryModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestSSHServerRequiresGameID(t *testing.T) {
	if _, err := NewSSHServer(SSHServerConfig{Address: ":0"}, nil); err == nil {
		t.Error("expected an error without a game id")
	}
}
