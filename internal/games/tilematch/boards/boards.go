// Package boards reads and writes tile match boards as YAML files, so a
// generated board can be saved, shared and replayed exactly.
// This package depends on core but core does not depend on boards.
package boards

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilematch/internal/games/tilematch/core"
)

// Board is a saved board.
type Board struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name,omitempty"`
	Level     int     `yaml:"level"`
	Tier      string  `yaml:"tier,omitempty"`
	Seed      string  `yaml:"seed"`
	Draws     uint64  `yaml:"draws,omitempty"`
	Hash      string  `yaml:"hash,omitempty"`
	Clickable int     `yaml:"clickable,omitempty"`
	Tiles     []Entry `yaml:"tiles"`

	FilePath string `yaml:"-"`
}

// Entry is one tile of a saved board. Type is a palette name or glyph.
type Entry struct {
	ID        int     `yaml:"id"`
	Type      string  `yaml:"type"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Z         int     `yaml:"z"`
	Col       int     `yaml:"col"`
	Row       int     `yaml:"row"`
	Clickable bool    `yaml:"clickable"`
}

// FromRun captures the current board of a run and its RNG position. Tiles
// no longer on the board are left out, so a board taken before the first
// pick replays the run exactly.
func FromRun(id string, run *core.Run) Board {
	tiles := run.Tiles()
	b := Board{
		ID:        id,
		Level:     run.Level(),
		Tier:      run.Tier().Name,
		Seed:      run.Seed(),
		Draws:     run.Draws(),
		Hash:      fmt.Sprintf("%016x", run.Hash()),
		Clickable: len(run.ClickableIDs()),
		Tiles:     make([]Entry, 0, len(tiles)),
	}
	for _, t := range tiles {
		if !t.OnBoard() {
			continue
		}
		b.Tiles = append(b.Tiles, Entry{
			ID:        t.ID,
			Type:      t.Type.String(),
			X:         t.Pos.X,
			Y:         t.Pos.Y,
			Z:         t.Pos.Z,
			Col:       t.Cell.Col,
			Row:       t.Cell.Row,
			Clickable: t.Clickable,
		})
	}
	return b
}

// CoreTiles converts the entries to engine tiles. Every type must appear
// a multiple of three times, or the board could never be cleared.
func (b Board) CoreTiles() ([]core.Tile, error) {
	if len(b.Tiles) == 0 {
		return nil, errors.New("board has no tiles")
	}
	tiles := make([]core.Tile, len(b.Tiles))
	counts := make(map[core.TileType]int)
	for i, e := range b.Tiles {
		tt, ok := core.ParseTileType(e.Type)
		if !ok {
			return nil, fmt.Errorf("tile %d: unknown type %q", e.ID, e.Type)
		}
		counts[tt]++
		tiles[i] = core.Tile{
			ID:        e.ID,
			Type:      tt,
			Pos:       core.Pos{X: e.X, Y: e.Y, Z: e.Z},
			Cell:      core.Cell{Col: e.Col, Row: e.Row},
			SlotIndex: core.NoSlot,
		}
	}
	for tt := range core.Palette {
		if n := counts[core.TileType(tt)]; n%3 != 0 {
			return nil, fmt.Errorf("type %s appears %d times, want a multiple of 3", core.TileType(tt), n)
		}
	}
	return tiles, nil
}

// NewRun starts a run on the saved board with the RNG at the saved position.
func (b Board) NewRun(p core.Params) (*core.Run, error) {
	tiles, err := b.CoreTiles()
	if err != nil {
		return nil, fmt.Errorf("board %s: %w", b.ID, err)
	}
	return core.ResumeRun(b.Level, b.Seed, tiles, b.Draws, p)
}

// Encode writes the board as YAML.
func Encode(w io.Writer, b Board) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return enc.Close()
}

// Parse reads a YAML board. A missing level means level 1 and a missing
// ID falls back to the seed.
func Parse(data []byte) (Board, error) {
	var b Board
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Board{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if b.Level < 1 {
		b.Level = 1
	}
	if b.ID == "" {
		b.ID = b.Seed
	}
	if _, err := b.CoreTiles(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Loader handles loading boards from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new board loader. A leading ~ is expanded.
func NewLoader(root string) *Loader {
	if strings.HasPrefix(root, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			root = filepath.Join(home, root[2:])
		}
	}
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all board files.
// Invalid files are skipped. Returns boards sorted by ID.
func (l *Loader) LoadAll() ([]Board, error) {
	var boards []Board

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		b, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		boards = append(boards, b)
		return nil
	})
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(boards, func(i, j int) bool {
		return boards[i].ID < boards[j].ID
	})
	return boards, nil
}

// LoadByID loads a specific board by ID.
func (l *Loader) LoadByID(id string) (Board, error) {
	boards, err := l.LoadAll()
	if err != nil {
		return Board{}, err
	}
	for _, b := range boards {
		if b.ID == id {
			return b, nil
		}
	}
	return Board{}, fmt.Errorf("board not found: %s", id)
}

// Resolve loads ref as a file path when it names an existing file, and
// as a board ID in the loader's directory otherwise.
func (l *Loader) Resolve(ref string) (Board, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return LoadFile(ref)
	}
	return l.LoadByID(ref)
}

// LoadFile loads a single board file.
func LoadFile(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	b, err := Parse(data)
	if err != nil {
		return Board{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	b.FilePath = path
	return b, nil
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
