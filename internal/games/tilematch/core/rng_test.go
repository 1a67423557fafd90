package core_test

import (
	"testing"

	"github.com/vovakirdan/tilematch/internal/games/tilematch/core"
)

func TestRNGKnownSequence(t *testing.T) {
	tests := []struct {
		seed string
		want []float64
	}{
		{"tilematch", []float64{0.19426371692679822, 0.95022785034962, 0.25879511958919466, 0.6580167431384325}},
		{"seed-42", []float64{0.4811511777807027, 0.6235118396580219, 0.5341077893972397, 0.7381220329552889}},
	}

	for _, tc := range tests {
		t.Run(tc.seed, func(t *testing.T) {
			rng := core.NewRNG(tc.seed)
			for i, want := range tc.want {
				if got := rng.Next(); got != want {
					t.Errorf("draw %d = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestHashSeed(t *testing.T) {
	if got := core.HashSeed(""); got != 0x811c9dc5 {
		t.Errorf("HashSeed(\"\") = %#x, want FNV offset basis", got)
	}
	if got := core.HashSeed("tilematch"); got != 0x64b2e4f2 {
		t.Errorf("HashSeed(tilematch) = %#x, want 0x64b2e4f2", got)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := core.NewRNG("same seed")
	b := core.NewRNG("same seed")

	for i := 0; i < 1000; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d diverged: %v != %v", i, x, y)
		}
	}
	if a.Draws() != 1000 {
		t.Errorf("Draws() = %d, want 1000", a.Draws())
	}
}

func TestRNGSeedsDiffer(t *testing.T) {
	a := core.NewRNG("alpha")
	b := core.NewRNG("beta")

	same := 0
	for i := 0; i < 100; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same == 100 {
		t.Error("different seeds produced identical streams")
	}
}

func TestRNGRange(t *testing.T) {
	rng := core.NewRNG("range")
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := rng.Range(3, 9)
		if v < 3 || v >= 9 {
			t.Fatalf("Range(3, 9) = %d, out of bounds", v)
		}
		seen[v] = true
	}
	if len(seen) != 6 {
		t.Errorf("expected all 6 values to appear, saw %d", len(seen))
	}
}

func TestRNGEmptyRangeDoesNotDraw(t *testing.T) {
	rng := core.NewRNG("empty")
	if v := rng.Range(5, 5); v != 5 {
		t.Errorf("Range(5, 5) = %d, want 5", v)
	}
	if v := rng.Range(5, 2); v != 5 {
		t.Errorf("Range(5, 2) = %d, want 5", v)
	}
	if rng.Draws() != 0 {
		t.Errorf("empty ranges consumed %d draws", rng.Draws())
	}
}

func TestRNGNextInUnitInterval(t *testing.T) {
	rng := core.NewRNG("unit")
	for i := 0; i < 5000; i++ {
		v := rng.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Next() = %v, want [0, 1)", v)
		}
	}
}

func TestRNGClone(t *testing.T) {
	rng := core.NewRNG("clone")
	rng.Next()
	rng.Next()

	c := rng.Clone()
	for i := 0; i < 10; i++ {
		if x, y := rng.Next(), c.Next(); x != y {
			t.Fatalf("clone diverged at %d", i)
		}
	}
}

func TestNewSeedUnique(t *testing.T) {
	a, b := core.NewSeed(), core.NewSeed()
	if a == "" || a == b {
		t.Errorf("NewSeed() should produce distinct non-empty seeds, got %q and %q", a, b)
	}
}

func TestParseTileType(t *testing.T) {
	tests := []struct {
		in   string
		want core.TileType
		ok   bool
	}{
		{"apple", 0, true},
		{"Banana", 1, true},
		{"S", 11, true},
		{" w ", 9, true},
		{"durian", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, ok := core.ParseTileType(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseTileType(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRNGSkip(t *testing.T) {
	a := core.NewRNG("skip")
	b := core.NewRNG("skip")
	for range 5 {
		a.Next()
	}
	b.Skip(5)

	if a.Draws() != b.Draws() || a.Next() != b.Next() {
		t.Error("Skip should land on the same stream position as drawing")
	}
}
