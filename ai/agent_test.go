package ai

import (
	"errors"
	"math/rand"
	"testing"

	"reversi-local/board"
)

func TestPickMoveReturnsLegalMove(t *testing.T) {
	b := board.Reset(board.DefaultSize)
	for _, name := range Levels {
		cfg, _ := Preset(name)
		a := New(cfg, WithRandom(rand.New(rand.NewSource(5))))
		coord, lines := a.PickMove(b, board.Light)
		want := b.FlipLines(coord, board.Light)
		if len(want) == 0 {
			t.Fatalf("%s picked illegal move %s", name, coord)
		}
		if len(lines) != len(want) {
			t.Fatalf("%s returned %d lines for %s, want %d", name, len(lines), coord, len(want))
		}
		if _, err := b.Update(board.Light, coord, lines); err != nil {
			t.Fatalf("%s: applying picked move: %v", name, err)
		}
	}
}

func TestPickMoveWithoutChaosIsBestMove(t *testing.T) {
	b := board.Reset(6)
	cfg := Config{Pickyness: 0, Chaos: 0, Depth: 3, Weights: PeakWeights.Resize(6)}
	best := Rank(NewSearcher(cfg.Weights, cfg.Depth), b, board.Light)[0]

	for seed := int64(0); seed < 5; seed++ {
		a := New(cfg, WithRandom(rand.New(rand.NewSource(seed))))
		if coord, _ := a.PickMove(b, board.Light); coord != best.Move.Coord {
			t.Fatalf("seed %d: picked %s, best is %s", seed, coord, best.Move.Coord)
		}
	}
}

func TestPickMoveSeededIsReproducible(t *testing.T) {
	cfg, _ := Preset("goblin")
	play := func() []board.Coord {
		a := New(cfg, WithRandom(rand.New(rand.NewSource(99))))
		b := board.Reset(board.DefaultSize)
		turn := board.Light
		var coords []board.Coord
		for i := 0; i < 10 && !b.IsGameOver(); i++ {
			if b.HasAnyLegalMove(turn) {
				c, lines := a.PickMove(b, turn)
				b, _ = b.Update(turn, c, lines)
				coords = append(coords, c)
			}
			turn = turn.Invert()
		}
		return coords
	}
	first, second := play(), play()
	if len(first) != len(second) {
		t.Fatalf("games differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("move %d differs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestPickMovePanicsWithoutMoves(t *testing.T) {
	full := parseBoard(t,
		"OOOO",
		"OOOO",
		"XXXX",
		"XXXX",
	)
	defer func() {
		if r := recover(); r != ErrNoLegalMoves {
			t.Fatalf("expected ErrNoLegalMoves panic, got %v", r)
		}
	}()
	New(Level(1).ForSize(4)).PickMove(full, board.Dark)
}

func TestConfigValidate(t *testing.T) {
	good := Config{Pickyness: 0.5, Chaos: 0.5, Depth: 2, Weights: RadialWeights}
	if err := good.Validate(8); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name string
		cfg  Config
		size int
	}{
		{"pickyness high", Config{Pickyness: 1.5, Weights: RadialWeights}, 8},
		{"chaos negative", Config{Chaos: -0.1, Weights: RadialWeights}, 8},
		{"depth negative", Config{Depth: -1, Weights: RadialWeights}, 8},
		{"wrong size", good, 6},
		{"too heavy", Config{Weights: UniformWeights(8, 400)}, 8},
	}
	for _, tt := range tests {
		if err := tt.cfg.Validate(tt.size); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestPresetsFitEveryBoard(t *testing.T) {
	for _, size := range []int{4, 6, 8} {
		for _, name := range Levels {
			cfg, ok := Preset(name)
			if !ok {
				t.Fatalf("missing preset %s", name)
			}
			if err := cfg.ForSize(size).Validate(size); err != nil {
				t.Errorf("%s on %dx%d: %v", name, size, size, err)
			}
		}
	}
	if Level(0).Depth != Presets["goblin"].Depth || Level(99).Depth != Presets["master"].Depth {
		t.Fatal("Level should clamp to the preset range")
	}
}

func TestResizeKeepsCorners(t *testing.T) {
	w := PeakWeights.Resize(4)
	for _, c := range [][2]int{{0, 0}, {0, 3}, {3, 0}, {3, 3}} {
		if w[c[0]][c[1]] != 1000 {
			t.Fatalf("corner %v = %v, want 1000", c, w[c[0]][c[1]])
		}
	}
	if len(PeakWeights.Resize(8)) != 8 {
		t.Fatal("same size resize should keep the table")
	}
}

func TestPickMovePanicsOnWeightsMismatch(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrWeightsMismatch) {
			t.Fatalf("expected ErrWeightsMismatch panic, got %v", err)
		}
	}()
	New(Level(3)).PickMove(board.Reset(10), board.Light)
}
