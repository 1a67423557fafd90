package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/core"
)

// MaxMenuLevel is the highest level selectable from the menu.
const MaxMenuLevel = 99

// MenuKind is what selecting a menu item does.
type MenuKind int

const (
	MenuPlay MenuKind = iota
	MenuCustomLevel
	MenuHistory
	MenuQuit
)

// MenuItem is one selectable menu line.
type MenuItem struct {
	Label string
	Kind  MenuKind
	Level int
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	custom    int // level of the custom level item
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a new menu model. The custom level item starts at
// cfg.Level.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(config.Presets)+3)
	for _, p := range config.Presets {
		level := config.LevelForPreset(p)
		items = append(items, MenuItem{
			Label: fmt.Sprintf("%s (level %d)", strings.ToUpper(string(p)[:1])+string(p)[1:], level),
			Kind:  MenuPlay,
			Level: level,
		})
	}
	items = append(items,
		MenuItem{Label: "Level", Kind: MenuCustomLevel},
		MenuItem{Label: "Run History", Kind: MenuHistory},
		MenuItem{Label: "Quit", Kind: MenuQuit},
	)

	return MenuModel{
		items:     items,
		custom:    core.Clamp(cfg.Level, 1, MaxMenuLevel),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.items[m.cursor].Kind == MenuCustomLevel && m.custom > 1 {
			m.custom--
		}

	case MenuActionRight:
		if m.items[m.cursor].Kind == MenuCustomLevel && m.custom < MaxMenuLevel {
			m.custom++
		}

	case MenuActionHistory:
		m.selected = &MenuItem{Label: "Run History", Kind: MenuHistory}

	case MenuActionSelect:
		item := m.items[m.cursor]
		switch item.Kind {
		case MenuQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuCustomLevel:
			item.Kind = MenuPlay
			item.Level = m.custom
		}
		m.selected = &item
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, "  T I L E   M A T C H  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick three of a kind before the tray fills up", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		label := item.Label
		if item.Kind == MenuCustomLevel {
			label = fmt.Sprintf("Level < %d > (%s)", m.custom, config.TierName(m.custom))
		}

		if i == m.cursor {
			b.WriteString(centerStyled(activeStyle, "> "+label+" ", m.width))
		} else {
			b.WriteString(centerText("  "+label+" ", m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Level  |  Enter: Select  |  Tab: History  |  Q: Quit"
	b.WriteString(centerStyled(dimStyle, controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
// A selected custom level is reported as MenuPlay with its level.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// by its printable width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

func centerStyled(style lipgloss.Style, text string, width int) string {
	return centerText(style.Render(text), width)
}
