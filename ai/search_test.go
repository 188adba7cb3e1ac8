package ai

import (
	"math"
	"math/rand"
	"testing"

	"reversi-local/board"
)

func parseBoard(t *testing.T, rows ...string) board.Board {
	t.Helper()
	tiles := make([][]board.Tile, len(rows))
	for y, line := range rows {
		tiles[y] = make([]board.Tile, len(line))
		for x, ch := range line {
			switch ch {
			case 'O':
				tiles[y][x] = board.Light
			case 'X':
				tiles[y][x] = board.Dark
			}
		}
	}
	b, err := board.FromTiles(tiles)
	if err != nil {
		t.Fatalf("FromTiles: %v", err)
	}
	return b
}

// minimax is an unpruned negamax over the same tree as Searcher.Search.
func minimax(b board.Board, turn board.Tile, w WeightTable, depth, maxDepth int) float64 {
	if depth >= maxDepth {
		return Evaluate(b, turn, w)
	}
	moves := b.LegalMoves(turn)
	if len(moves) == 0 {
		return terminalScore(b, turn)
	}
	best := math.Inf(-1)
	for _, m := range moves {
		next, _ := b.Update(turn, m.Coord, m.Lines)
		best = math.Max(best, -minimax(next, turn.Invert(), w, depth+1, maxDepth))
	}
	return best
}

// randomPositions plays random moves from the start and collects every position reached.
func randomPositions(rnd *rand.Rand, size, games int) []board.Board {
	var positions []board.Board
	for g := 0; g < games; g++ {
		b := board.Reset(size)
		turn := board.Light
		for !b.IsGameOver() {
			positions = append(positions, b)
			moves := b.LegalMoves(turn)
			if len(moves) > 0 {
				m := moves[rnd.Intn(len(moves))]
				b, _ = b.Update(turn, m.Coord, m.Lines)
			}
			turn = turn.Invert()
		}
		positions = append(positions, b)
	}
	return positions
}

func randomWeights(rnd *rand.Rand, size int) WeightTable {
	w := make(WeightTable, size)
	for row := range w {
		w[row] = make([]float64, size)
		for col := range w[row] {
			w[row][col] = float64(rnd.Intn(201) - 100)
		}
	}
	return w
}

func TestEvaluate(t *testing.T) {
	b := parseBoard(t,
		"O..X",
		"....",
		".O..",
		"...X",
	)
	w := WeightTable{
		{10, 99, 99, 3},
		{99, 99, 99, 99},
		{99, 2, 99, 99},
		{99, 99, 99, 5},
	}
	if got := Evaluate(b, board.Light, w); got != 4 {
		t.Fatalf("Evaluate(Light) = %v, want 4", got)
	}
	if got := Evaluate(b, board.Dark, w); got != -4 {
		t.Fatalf("Evaluate(Dark) = %v, want -4", got)
	}
	if got := Evaluate(board.Reset(4), board.Light, UniformWeights(4, 7)); got != 0 {
		t.Fatalf("symmetric start should evaluate to 0, got %v", got)
	}
}

func TestSearchMatchesMinimax(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	positions := randomPositions(rnd, 4, 8)
	tables := []WeightTable{
		RadialWeights.Resize(4),
		PeakWeights.Resize(4),
		randomWeights(rnd, 4),
	}

	for _, w := range tables {
		for depth := 0; depth <= 3; depth++ {
			s := NewSearcher(w, depth)
			for _, b := range positions {
				for _, turn := range []board.Tile{board.Light, board.Dark} {
					got := s.Search(b, turn, -Infinity, Infinity, 0)
					want := minimax(b, turn, w, 0, depth)
					if got != want {
						t.Fatalf("depth %d, %s to move: pruned search %v, minimax %v on\n%s", depth, turn, got, want, b)
					}
				}
			}
		}
	}
}

func TestSearchDeterministic(t *testing.T) {
	b := board.Reset(6)
	s := NewSearcher(RadialWeights.Resize(6), 3)
	first := s.Search(b, board.Light, -Infinity, Infinity, 0)
	for i := 0; i < 5; i++ {
		if got := s.Search(b, board.Light, -Infinity, Infinity, 0); got != first {
			t.Fatalf("run %d returned %v, first run %v", i, got, first)
		}
	}
	if s.Nodes() == 0 {
		t.Fatal("node counter should advance")
	}
}

func TestSearchTerminalScores(t *testing.T) {
	lightAhead := parseBoard(t,
		"OOOO",
		"OOOO",
		"OOOO",
		"OOXX",
	)
	even := parseBoard(t,
		"OOOO",
		"OOOO",
		"XXXX",
		"XXXX",
	)
	// Dark has no move here but Light still does.
	darkStuck := parseBoard(t,
		"OX..",
		"O...",
		"....",
		"....",
	)

	tests := []struct {
		name string
		b    board.Board
		turn board.Tile
		want float64
	}{
		{"own count higher", lightAhead, board.Light, WinScore},
		{"own count lower", lightAhead, board.Dark, LossScore},
		{"equal counts light", even, board.Light, DrawScore},
		{"equal counts dark", even, board.Dark, DrawScore},
		{"stuck with empty cells", darkStuck, board.Dark, LossScore},
	}
	s := NewSearcher(PlainWeights.Resize(4), 3)
	for _, tt := range tests {
		if got := s.Search(tt.b, tt.turn, -Infinity, Infinity, 0); got != tt.want {
			t.Errorf("%s: Search = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSearchDepthLimitEvaluates(t *testing.T) {
	b := board.Reset(4)
	w := randomWeights(rand.New(rand.NewSource(1)), 4)
	s := NewSearcher(w, 2)
	if got, want := s.Search(b, board.Dark, -Infinity, Infinity, 2), Evaluate(b, board.Dark, w); got != want {
		t.Fatalf("search at max depth = %v, want static %v", got, want)
	}
}

func TestSearchFailHardCutoff(t *testing.T) {
	b := board.Reset(4)
	s := NewSearcher(PlainWeights.Resize(4), 1)
	// Every reply scores above this narrow window, so the search returns beta itself.
	if got := s.Search(b, board.Light, -10, -5, 0); got != -5 {
		t.Fatalf("expected cutoff at beta -5, got %v", got)
	}
}
