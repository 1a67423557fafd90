package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/games/tilematch"
	"github.com/vovakirdan/tilematch/internal/games/tilematch/boards"
	"github.com/vovakirdan/tilematch/internal/games/tilematch/core"
	"github.com/vovakirdan/tilematch/internal/storage"
)

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name       string
		level      int
		difficulty string
		want       int
		wantErr    bool
	}{
		{"level only", 3, "", 3, false},
		{"easy preset", 5, "easy", 1, false},
		{"hard preset", 1, "Hard", 2, false},
		{"bad preset", 1, "insane", 0, true},
		{"bad level", 0, "", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveLevel(tc.level, tc.difficulty)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("level = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestWriteBoardText(t *testing.T) {
	run, err := core.NewRun(1, "gen-text", core.DefaultParams())
	if err != nil {
		t.Fatalf("NewRun failed: %v", err)
	}

	var buf bytes.Buffer
	if err := writeBoard(&buf, run, "text"); err != nil {
		t.Fatalf("writeBoard failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, `Level 1 (easy)  seed "gen-text"  36 tiles`) {
		t.Errorf("unexpected header:\n%s", out)
	}
	for _, layer := range []string{"Layer 2", "Layer 1", "Layer 0"} {
		if !strings.Contains(out, layer) {
			t.Errorf("missing %s", layer)
		}
	}
	if strings.Index(out, "Layer 2") > strings.Index(out, "Layer 0") {
		t.Error("top layer should be printed first")
	}

	// The same seed prints the same board.
	again, _ := core.NewRun(1, "gen-text", core.DefaultParams())
	var buf2 bytes.Buffer
	if err := writeBoard(&buf2, again, ""); err != nil {
		t.Fatalf("writeBoard failed: %v", err)
	}
	if buf2.String() != out {
		t.Error("same seed produced different output")
	}
}

func TestWriteBoardYAML(t *testing.T) {
	run, err := core.NewRun(2, "gen-yaml", core.DefaultParams())
	if err != nil {
		t.Fatalf("NewRun failed: %v", err)
	}

	var buf bytes.Buffer
	if err := writeBoard(&buf, run, "yaml"); err != nil {
		t.Fatalf("writeBoard failed: %v", err)
	}

	got, err := boards.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("output is not a valid board: %v", err)
	}
	if got.Level != 2 || got.Tier != "hard" || got.Seed != "gen-yaml" {
		t.Errorf("unexpected header %+v", got)
	}
	if len(got.Tiles) != 90 {
		t.Errorf("tiles = %d, want 90", len(got.Tiles))
	}
	clickable := 0
	for _, tile := range got.Tiles {
		if tile.Clickable {
			clickable++
		}
	}
	if clickable != got.Clickable || clickable != len(run.ClickableIDs()) {
		t.Errorf("clickable = %d, header says %d", clickable, got.Clickable)
	}
}

func TestSaveBoard(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "boards")
	run, err := core.NewRun(1, "saved", core.DefaultParams())
	if err != nil {
		t.Fatalf("NewRun failed: %v", err)
	}

	path, err := saveBoard(dir, "daily", run)
	if err != nil {
		t.Fatalf("saveBoard failed: %v", err)
	}
	if path != filepath.Join(dir, "daily.yaml") {
		t.Errorf("path = %s", path)
	}

	b, err := boards.NewLoader(dir).Resolve("daily")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if b.Seed != "saved" || len(b.Tiles) != 36 {
		t.Errorf("saved board seed=%q tiles=%d", b.Seed, len(b.Tiles))
	}

	if _, err := saveBoard(dir, "../escape", run); err == nil {
		t.Error("expected error for an id with a path separator")
	}
}

func TestWriteBoardUnknownFormat(t *testing.T) {
	run, _ := core.NewRun(1, "x", core.DefaultParams())
	if err := writeBoard(&bytes.Buffer{}, run, "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestPrintRuns(t *testing.T) {
	var buf bytes.Buffer
	printRuns(&buf, "Recent runs", nil)
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("unexpected empty output:\n%s", buf.String())
	}

	buf.Reset()
	printRuns(&buf, "Recent runs", []storage.RunRecord{{
		Level: 2, Status: "won", Score: 900, Picks: 90, ToolsUsed: 1,
		DurationSecs: 125, Seed: "daily-42",
		CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}})
	out := buf.String()
	for _, want := range []string{"2026-03-01 09:30", "won", "900", "2:05", "daily-42"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, []*storage.RunStats{{Level: 0}})
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("unexpected empty output:\n%s", buf.String())
	}

	buf.Reset()
	printStats(&buf, []*storage.RunStats{
		{Level: 1, Runs: 4, Wins: 3, Losses: 1, BestScore: 360, AvgPicks: 30},
		{Level: 0, Runs: 4, Wins: 3, Losses: 1, BestScore: 360, AvgPicks: 30,
			LastPlayed: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
	})
	out := buf.String()
	for _, want := range []string{"75%", "all", "360", "Last played: 2026-03-01 09:30"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := writeConfig(&buf, config.DefaultTileMatchConfig()); err != nil {
		t.Fatalf("writeConfig failed: %v", err)
	}

	var got config.TileMatchConfig
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if got != config.DefaultTileMatchConfig() {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"bogus":          "bogus",
	}
	for in, want := range tests {
		if got := portOf(in); got != want {
			t.Errorf("portOf(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCreateGameReplaysBoard(t *testing.T) {
	dir := t.TempDir()
	orig := flagBoardsDir
	flagBoardsDir = dir
	t.Cleanup(func() { flagBoardsDir = orig })

	game, level, err := createGame(tilematch.ID, 3, "")
	if err != nil || level != 3 || game.ID() != tilematch.ID {
		t.Fatalf("createGame() = %v, %d, %v", game, level, err)
	}

	run, err := core.NewRun(2, "replayed", core.DefaultParams())
	if err != nil {
		t.Fatalf("NewRun failed: %v", err)
	}
	if _, err := saveBoard(dir, "weekly", run); err != nil {
		t.Fatalf("saveBoard failed: %v", err)
	}

	game, level, err = createGame(tilematch.ID, 1, "weekly")
	if err != nil {
		t.Fatalf("createGame failed: %v", err)
	}
	if level != 2 {
		t.Errorf("level = %d, want the board's level 2", level)
	}
	game.Reset(runtimeConfig(level))
	if got := game.(*tilematch.Game).Run(); got == nil || got.Seed() != "replayed" {
		t.Errorf("game should start on the saved board, run = %v", got)
	}

	if _, _, err := createGame(tilematch.ID, 1, "missing"); err == nil {
		t.Error("expected error for an unknown board")
	}
}
