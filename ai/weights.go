package ai

import (
	"fmt"
	"math"

	"reversi-local/board"
)

// WeightTable assigns a positional value to every cell, indexed as [row][col].
type WeightTable [][]float64

// Validate checks that w covers a size x size board and that no position can
// score as much as a decided game.
func (w WeightTable) Validate(size int) error {
	if len(w) != size {
		return fmt.Errorf("weight table has %d rows, want %d", len(w), size)
	}
	total := 0.0
	for row, line := range w {
		if len(line) != size {
			return fmt.Errorf("weight table row %d has %d cells, want %d", row, len(line), size)
		}
		for col, v := range line {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("weight at %s is not a finite number", board.Coord{Col: col, Row: row})
			}
			total += math.Abs(v)
		}
	}
	if total >= WinScore {
		return fmt.Errorf("weight table magnitude %.0f reaches the win score %.0f", total, WinScore)
	}
	return nil
}

// Resize maps the table onto a board of a different size by sampling the
// nearest source cell, so corners stay corners and edges stay edges.
func (w WeightTable) Resize(size int) WeightTable {
	if len(w) == size {
		return w
	}
	src := len(w)
	out := make(WeightTable, size)
	pick := func(i int) int {
		if size == 1 {
			return 0
		}
		return int(math.Round(float64(i*(src-1)) / float64(size-1)))
	}
	for row := range out {
		out[row] = make([]float64, size)
		for col := range out[row] {
			out[row][col] = w[pick(row)][pick(col)]
		}
	}
	return out
}

// UniformWeights returns a size x size table where every cell is worth v.
func UniformWeights(size int, v float64) WeightTable {
	w := make(WeightTable, size)
	for row := range w {
		w[row] = make([]float64, size)
		for col := range w[row] {
			w[row][col] = v
		}
	}
	return w
}

// PeakWeights strongly favours corners and punishes the cells next to them.
var PeakWeights = WeightTable{
	{1000, -300, 100, 80, 80, 100, -300, 1000},
	{-300, -500, -45, -50, -50, -45, -500, -300},
	{100, -45, 3, 1, 1, 3, -45, 100},
	{80, -50, 1, 5, 5, 1, -50, 80},
	{80, -50, 1, 5, 5, 1, -50, 80},
	{100, -45, 3, 1, 1, 3, -45, 100},
	{-300, -500, -45, -50, -50, -45, -500, -300},
	{1000, -300, 100, 80, 80, 100, -300, 1000},
}

// RadialWeights values cells by their distance from the center.
var RadialWeights = WeightTable{
	{10, 5, 5, 5, 5, 5, 5, 10},
	{5, 3, 3, 3, 3, 3, 3, 5},
	{5, 3, 1, 1, 1, 1, 3, 5},
	{5, 3, 1, 0, 0, 1, 3, 5},
	{5, 3, 1, 0, 0, 1, 3, 5},
	{5, 3, 1, 1, 1, 1, 3, 5},
	{5, 3, 3, 3, 3, 3, 3, 5},
	{10, 5, 5, 5, 5, 5, 5, 10},
}

// PlainWeights counts discs.
var PlainWeights = UniformWeights(board.DefaultSize, 1)

// ZeroWeights makes every position look equal.
var ZeroWeights = UniformWeights(board.DefaultSize, 0)
