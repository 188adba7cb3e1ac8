// Package ai implements the computer player: a static positional evaluator,
// a depth-bounded negamax search with alpha-beta pruning, and a move selector
// that trades strength for variety.
package ai

import (
	"sync/atomic"

	"reversi-local/board"
)

// Scores for positions where the side to move has no legal move. They must
// dominate any static evaluation, see WeightTable.Validate.
const (
	WinScore  = 20000.0
	LossScore = -20000.0
	DrawScore = 0.0

	// Infinity bounds the initial search window.
	Infinity = 100000.0
)

// Searcher runs a fixed-depth negamax search. It is safe for concurrent use;
// the only shared state is the node counter.
type Searcher struct {
	Weights  WeightTable
	MaxDepth int

	nodes atomic.Uint64
}

// NewSearcher returns a searcher that stops at maxDepth plies.
func NewSearcher(w WeightTable, maxDepth int) *Searcher {
	return &Searcher{Weights: w, MaxDepth: maxDepth}
}

// Nodes returns how many positions have been visited so far.
func (s *Searcher) Nodes() uint64 {
	return s.nodes.Load()
}

// Search returns the value of b for turn within the window [alpha, beta].
// A result >= beta means the position was cut off and is at least beta.
func (s *Searcher) Search(b board.Board, turn board.Tile, alpha, beta float64, depth int) float64 {
	s.nodes.Add(1)

	if depth >= s.MaxDepth {
		return Evaluate(b, turn, s.Weights)
	}

	moves := b.LegalMoves(turn)
	if len(moves) == 0 {
		return terminalScore(b, turn)
	}

	for _, m := range moves {
		// LegalMoves never yields a move without lines, so Update cannot fail.
		next, _ := b.Update(turn, m.Coord, m.Lines)
		v := -s.Search(next, turn.Invert(), -beta, -alpha, depth+1)
		if v >= beta {
			return beta
		}
		if v > alpha {
			alpha = v
		}
	}
	return alpha
}

// terminalScore settles a position where turn cannot move by comparing disc counts.
func terminalScore(b board.Board, turn board.Tile) float64 {
	own, opp := b.DiscCounts()
	if turn == board.Dark {
		own, opp = opp, own
	}
	switch {
	case own < opp:
		return LossScore
	case own > opp:
		return WinScore
	default:
		return DrawScore
	}
}
