package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ColorTile starts the tile color range after the fixed colors. The game
// draws tile type i with TileColor(i); the terminal theme decides what
// each one looks like.
const ColorTile Color = 32

// TileColorCount is the number of distinct tile colors.
const TileColorCount = 12

// TileColor returns the color for tile type i, wrapping past the range.
func TileColor(i int) Color {
	if i < 0 {
		return ColorDefault
	}
	return ColorTile + Color(i%TileColorCount)
}

// TileIndex reports which tile type a color stands for.
func (c Color) TileIndex() (int, bool) {
	if c < ColorTile || c >= ColorTile+TileColorCount {
		return 0, false
	}
	return int(c - ColorTile), true
}
