package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/logging"
	"github.com/vovakirdan/tilematch/internal/registry"
	"github.com/vovakirdan/tilematch/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenHistory
)

// SessionModel manages the full session flow: menu -> game or history ->
// menu. It is the top-level model for SSH sessions and the local menu.
type SessionModel struct {
	gameID   string
	gameCfg  config.TileMatchConfig
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	username string
	screen   sessionScreen
	menu     MenuModel
	game     *GameModel
	history  *HistoryModel
	err      error
	quitting bool
}

// NewSessionModel creates a session for the registered game gameID, built
// from gameCfg. store and logger may be nil.
func NewSessionModel(gameID string, gameCfg config.TileMatchConfig, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, username string) SessionModel {
	if logger == nil {
		logger = logging.Discard()
	}
	return SessionModel{
		gameID:   gameID,
		gameCfg:  gameCfg,
		store:    store,
		logger:   logger,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.screen == screenGame && m.game != nil:
		return m.updateGame(msg)
	case m.screen == screenHistory && m.history != nil:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Kind {
	case MenuHistory:
		history := NewHistoryModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.history = &history
		m.screen = screenHistory
		return m, history.Init()

	case MenuPlay:
		game, err := registry.Create(m.gameID, m.gameCfg)
		if err != nil {
			m.err = err
			m.logger.Error("cannot create game", "game", m.gameID, "err", err)
			m.menu = NewMenuModel(m.config)
			return m, nil
		}

		cfg := m.config
		cfg.Level = selected.Level
		m.config.Level = selected.Level

		gameModel := NewGameModel(game, m.store, m.logger, cfg, m.username)
		m.game = &gameModel
		m.screen = screenGame
		m.logger.Debug("game started", "user", m.username, "level", cfg.Level)
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateHistory handles updates when the run history is shown.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = &historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m *SessionModel) toMenu() {
	m.screen = screenMenu
	m.game = nil
	m.history = nil
	m.menu = NewMenuModel(m.config)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.screen == screenGame && m.game != nil:
		return m.game.View()
	case m.screen == screenHistory && m.history != nil:
		return m.history.View()
	}

	view := m.menu.View()
	if m.err != nil {
		view += "\n" + centerText("Error: "+m.err.Error(), m.config.ScreenW)
	}
	return view
}

// RunSession runs the menu driven session in the local terminal.
func RunSession(gameID string, gameCfg config.TileMatchConfig, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, username string) error {
	p := tea.NewProgram(
		NewSessionModel(gameID, gameCfg, store, logger, cfg, username),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
