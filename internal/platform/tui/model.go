package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/logging"
	"github.com/vovakirdan/tilematch/internal/registry"
	"github.com/vovakirdan/tilematch/internal/storage"
)

// GameModel is the Bubble Tea model that runs a game: it collects key
// presses into an input frame, steps the game on every tick and records
// finished runs in the run log.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	theme      Theme
	recorded   string // key of the last recorded outcome
	exitOnBack bool   // standalone play has no menu to return to
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) GameModel {
	if logger == nil {
		logger = logging.Discard()
	}
	theme, err := ThemeByName(cfg.Theme)
	if err != nil {
		logger.Warn("falling back to the default theme", "err", err)
		theme = DefaultTheme()
	}
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		player:     player,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		theme:      theme,
	}
}

// Init starts the run and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when nothing is in progress.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize keeps the run and only moves the board when the game
// supports it; other games start over at the new size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick steps the simulation and records finished runs.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recordOutcome()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordOutcome saves the run once per terminal state. A lost run that is
// undone and finished again is saved a second time with the new result.
func (m *GameModel) recordOutcome() {
	rep, ok := m.game.(registry.OutcomeReporter)
	if !ok {
		return
	}
	out, done := rep.Outcome()
	if !done {
		return
	}
	key := out.RunID + ":" + out.Status + ":" + strconv.Itoa(out.Picks)
	if key == m.recorded {
		return
	}
	m.recorded = key

	m.logger.Info("run finished",
		"run", out.RunID,
		"player", m.player,
		"level", out.Level,
		"status", out.Status,
		"picks", out.Picks,
		"score", out.Score,
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(RecordFromOutcome(out, m.player, m.config.TickRate)); err != nil {
		m.logger.Warn("could not save run", "run", out.RunID, "err", err)
	}
}

// RecordFromOutcome converts a game outcome into a run log record.
func RecordFromOutcome(out core.RunOutcome, player string, tickRate int) storage.RunRecord {
	secs := 0
	if tickRate > 0 {
		secs = out.Ticks / tickRate
	}
	return storage.RunRecord{
		RunID:        out.RunID,
		Player:       player,
		Level:        out.Level,
		Tier:         out.Tier,
		Seed:         out.Seed,
		Status:       out.Status,
		Picks:        out.Picks,
		Matches:      out.Matches,
		ToolsUsed:    out.ToolsUsed,
		Score:        out.Score,
		DurationSecs: secs,
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.theme.Render(m.screen)
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the player quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) error {
	model := NewGameModel(game, store, logger, cfg, player)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
