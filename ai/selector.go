package ai

import (
	"cmp"
	"math"
	"runtime"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"reversi-local/board"
)

// RandomSource supplies the draws used by Select.
// *math/rand.Rand and *frand.RNG both satisfy it.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// Candidate is a legal move with its search score for the side playing it.
type Candidate struct {
	Move  board.Move
	Score float64
}

// Rank scores every legal move for turn and returns them best first.
// Equal scores keep row-major order. Moves are searched in parallel; each
// subtree only reads its own copy of the board.
func Rank(s *Searcher, b board.Board, turn board.Tile) []Candidate {
	moves := b.LegalMoves(turn)
	ranked := make([]Candidate, len(moves))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			next, _ := b.Update(turn, m.Coord, m.Lines)
			ranked[i] = Candidate{
				Move:  m,
				Score: -s.Search(next, turn.Invert(), -Infinity, Infinity, 1),
			}
			return nil
		})
	}
	g.Wait()

	slices.SortStableFunc(ranked, func(x, y Candidate) int {
		return cmp.Compare(y.Score, x.Score)
	})
	return ranked
}

// Select picks one of the ranked candidates.
//
// With probability 1-chaos the best candidate is returned. Otherwise the
// worst pickyness fraction is dropped and the rest are drawn with weights
// proportional to how far each score sits above the pool minimum, plus one.
func Select(ranked []Candidate, pickyness, chaos float64, rnd RandomSource) Candidate {
	if len(ranked) == 0 {
		panic(ErrNoLegalMoves)
	}
	if chaos < rnd.Float64() {
		return ranked[0]
	}

	size := int(math.Floor((1 - pickyness) * float64(len(ranked))))
	if size < 1 {
		size = 1
	}
	pool := ranked[:size]

	low := pool[0].Score
	for _, c := range pool[1:] {
		low = math.Min(low, c.Score)
	}
	weights := make([]float64, len(pool))
	total := 0.0
	for i, c := range pool {
		weights[i] = c.Score - low + 1
		total += weights[i]
	}
	if total <= 0 {
		return pool[rnd.Intn(len(pool))]
	}

	r := rnd.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return pool[i]
		}
	}
	return pool[len(pool)-1]
}
