package tilematch

import (
	"strconv"
	"strings"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/tilematch/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.run == nil {
		msg := "Could not create a board"
		if g.err != nil {
			msg = g.err.Error()
		}
		g.renderOverlay(dst, msg, "Press R to retry")
		return
	}

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	trayY := g.offsetY + g.boardH + 1
	g.renderTray(dst, trayY)
	g.renderTools(dst, trayY+3)

	if g.message != "" {
		dst.DrawTextCenteredWithColor(trayY+4, g.message, platformcore.ColorBrightYellow)
	}

	switch g.run.Status() {
	case core.StatusWon:
		g.renderOverlay(dst, "Board Cleared!", "Enter: next level | R: new board | B: menu")
	case core.StatusLost:
		hint := "R: retry | B: menu"
		if left := g.run.Remaining(core.ToolUndo); left > 0 {
			hint = "U: undo (" + strconv.Itoa(left) + " left) | " + hint
		}
		title := "Tray Full"
		if g.run.BoardCount() == 0 {
			title = "No Tiles Left"
		}
		g.renderOverlay(dst, title, hint)
	default:
		if g.paused {
			g.renderOverlay(dst, "Paused", "Press P to continue")
		}
	}
}

// renderHUD draws the top status bar and controls line.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " Tile Match"
	if g.run != nil {
		hud += " | Level " + strconv.Itoa(g.run.Level()) + " (" + g.run.Tier().Name + ")" +
			" | Score: " + strconv.Itoa(g.Score()) +
			" | Tiles: " + strconv.Itoa(g.run.BoardCount()) +
			" | Seed: " + shorten(g.run.Seed(), 12)
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorGray)

	controls := " Arrows: Move | Enter: Pick | U: Undo | X: Shuffle | H: Hint | R: Restart | P: Pause"
	dst.DrawTextWithColor(0, 2, controls, platformcore.ColorGray)
	dst.DrawHLine(0, 3, dst.Width(), '─', platformcore.ColorGray)
}

// renderBoard draws tiles bottom layer first so upper layers overwrite
// the tiles they cover.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	tiles := g.run.Tiles()
	area := platformcore.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)

	for _, t := range tiles {
		if !t.OnBoard() {
			continue
		}
		x, y := g.tileOffset(t)
		sx, sy := g.offsetX+x, g.offsetY+y
		if !area.Contains(sx, sy) {
			continue
		}

		left, right := '[', ']'
		frame := platformcore.ColorGray
		glyph := platformcore.ColorGray
		if t.Clickable {
			frame = platformcore.ColorWhite
			glyph = platformcore.TileColor(int(t.Type))
		}
		switch {
		case t.ID == g.cursor:
			left, right = '>', '<'
			frame = platformcore.ColorBrightWhite
		case t.ID == g.hintID:
			left, right = '*', '*'
			frame = platformcore.ColorBrightGreen
		}

		dst.SetWithColor(sx, sy, left, frame)
		dst.SetWithColor(sx+1, sy, t.Type.Glyph(), glyph)
		dst.SetWithColor(sx+2, sy, right, frame)
	}
}

func (g *Game) trayWidth() int {
	return g.params.TrayCapacity*tileW + 2
}

// renderTray draws the slot tray as a boxed row of slots.
func (g *Game) renderTray(dst *platformcore.Screen, y int) {
	w := g.trayWidth()
	x := (dst.Width() - w) / 2

	border := platformcore.ColorGray
	switch {
	case g.checkTicks > 0:
		border = platformcore.ColorBrightYellow
	case g.run.Status() == core.StatusLost:
		border = platformcore.ColorBrightRed
	}
	dst.DrawBox(platformcore.NewRect(x, y, w, 3), border)

	tray := g.run.Tray()
	for slot := 0; slot < g.run.Capacity(); slot++ {
		sx := x + 1 + slot*tileW
		if slot < len(tray) {
			t := tray[slot]
			dst.SetWithColor(sx, y+1, '[', platformcore.ColorWhite)
			dst.SetWithColor(sx+1, y+1, t.Type.Glyph(), platformcore.TileColor(int(t.Type)))
			dst.SetWithColor(sx+2, y+1, ']', platformcore.ColorWhite)
			continue
		}
		dst.DrawTextWithColor(sx, y+1, " · ", platformcore.ColorGray)
	}
}

// renderTools draws remaining uses for every tool.
func (g *Game) renderTools(dst *platformcore.Screen, y int) {
	parts := make([]string, 0, len(core.Tools))
	for _, t := range core.Tools {
		parts = append(parts, strings.ToUpper(t.String()[:1])+t.String()[1:]+": "+strconv.Itoa(g.run.Remaining(t)))
	}
	dst.DrawTextCenteredWithColor(y, strings.Join(parts, "  "), platformcore.ColorGray)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := platformcore.Max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	box := platformcore.NewRect((w-maxLen-4)/2, (h-5)/2, maxLen+4, 5)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		dst.DrawHLine(box.X+1, y, box.W-2, ' ', platformcore.ColorDefault)
	}
	dst.DrawBox(box, platformcore.ColorWhite)

	dst.DrawTextCenteredWithColor(box.Y+1, line1, platformcore.ColorBrightWhite)
	dst.DrawTextCenteredWithColor(box.Y+3, line2, platformcore.ColorGray)
}

func shorten(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
