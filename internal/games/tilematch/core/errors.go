package core

import "errors"

// Rejections. None of them leave partial effects on the run.
var (
	ErrNotPlaying       = errors.New("run is not accepting moves")
	ErrUnknownTile      = errors.New("unknown tile")
	ErrNotClickable     = errors.New("tile is not clickable")
	ErrTrayFull         = errors.New("tray is full")
	ErrToolExhausted    = errors.New("tool limit reached")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrNothingToShuffle = errors.New("not enough tiles to shuffle")
	ErrNoHint           = errors.New("no clickable tile to hint")
	ErrDuplicateTile    = errors.New("duplicate tile id")
)

// Rejection returns a short reason for display, or "" for a nil error.
func Rejection(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotPlaying):
		return "not playing"
	case errors.Is(err, ErrUnknownTile), errors.Is(err, ErrNotClickable):
		return "not clickable"
	case errors.Is(err, ErrTrayFull):
		return "tray full"
	case errors.Is(err, ErrToolExhausted):
		return "already used"
	case errors.Is(err, ErrNothingToUndo):
		return "nothing to undo"
	case errors.Is(err, ErrNothingToShuffle):
		return "nothing to shuffle"
	case errors.Is(err, ErrNoHint):
		return "no moves"
	default:
		return err.Error()
	}
}
