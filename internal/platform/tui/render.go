package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilematch/internal/core"
)

// Theme decides how screen colors look in the terminal. Fixed colors are
// used for frames, HUD and overlays; Tiles holds one style per tile type.
type Theme struct {
	Name   string
	Colors map[core.Color]lipgloss.Style
	Tiles  [core.TileColorCount]lipgloss.Style
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

func baseColors() map[core.Color]lipgloss.Style {
	return map[core.Color]lipgloss.Style{
		core.ColorDefault:       lipgloss.NewStyle(),
		core.ColorRed:           fg("1"),
		core.ColorGreen:         fg("2"),
		core.ColorYellow:        fg("3"),
		core.ColorBlue:          fg("4"),
		core.ColorMagenta:       fg("5"),
		core.ColorCyan:          fg("6"),
		core.ColorWhite:         fg("7"),
		core.ColorBrightRed:     fg("9"),
		core.ColorBrightGreen:   fg("10"),
		core.ColorBrightYellow:  fg("11"),
		core.ColorBrightBlue:    fg("12"),
		core.ColorBrightMagenta: fg("13"),
		core.ColorBrightCyan:    fg("14"),
		core.ColorBrightWhite:   fg("15"),
		core.ColorOrange:        fg("208"),
		core.ColorGray:          fg("245"),
	}
}

func tileStyles(codes ...string) [core.TileColorCount]lipgloss.Style {
	var tiles [core.TileColorCount]lipgloss.Style
	for i := range tiles {
		tiles[i] = fg(codes[i%len(codes)]).Bold(true)
	}
	return tiles
}

// DefaultTheme gives every fruit a distinct vivid color, in palette order:
// apple, banana, cherry, grape, lemon, orange, peach, kiwi, mango, melon,
// plum, strawberry.
func DefaultTheme() Theme {
	return Theme{
		Name:   "default",
		Colors: baseColors(),
		Tiles:  tileStyles("196", "226", "161", "129", "227", "208", "216", "112", "214", "48", "99", "203"),
	}
}

// PastelTheme is a softer version of the default theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "pastel"
	theme.Tiles = tileStyles("217", "229", "211", "183", "230", "223", "224", "157", "222", "122", "147", "210")
	return theme
}

// MonochromeTheme tells tiles apart by glyph only.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "mono"
	theme.Tiles = tileStyles("255", "250")
	for c := range theme.Colors {
		if c != core.ColorDefault {
			theme.Colors[c] = fg("250")
		}
	}
	theme.Colors[core.ColorGray] = fg("242")
	return theme
}

// ThemeByName returns a theme by name. An empty name is the default.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return DefaultTheme(), nil
	case "pastel":
		return PastelTheme(), nil
	case "mono":
		return MonochromeTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// Style returns the style for a screen color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if i, ok := c.TileIndex(); ok {
		return t.Tiles[i]
	}
	if style, ok := t.Colors[c]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render converts a Screen buffer to a styled string.
// Adjacent cells sharing a color are rendered as one styled run.
func (t Theme) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(t.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders with the default theme.
func RenderScreen(s *core.Screen) string {
	return DefaultTheme().Render(s)
}
