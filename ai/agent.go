package ai

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"reversi-local/board"
)

// ErrNoLegalMoves is the panic value when the agent is asked to move in a
// position where it has no legal move. Callers must check
// board.HasAnyLegalMove first.
var ErrNoLegalMoves = errors.New("ai: no legal moves")

// ErrWeightsMismatch is wrapped by the panic value when the agent's weight
// table does not fit the board it is asked to play on.
var ErrWeightsMismatch = errors.New("ai: weight table does not fit the board")

// Config tunes an agent.
type Config struct {
	// Pickyness is the fraction of worst-ranked moves excluded from a random pick.
	Pickyness float64 `json:"pickyness"`
	// Chaos is the probability of picking at random instead of the best move.
	Chaos   float64     `json:"chaos"`
	Depth   int         `json:"depth"`
	Weights WeightTable `json:"weights"`
}

// Validate checks the config against a board size.
func (c Config) Validate(size int) error {
	if c.Pickyness < 0 || c.Pickyness > 1 {
		return fmt.Errorf("pickyness %v out of range [0,1]", c.Pickyness)
	}
	if c.Chaos < 0 || c.Chaos > 1 {
		return fmt.Errorf("chaos %v out of range [0,1]", c.Chaos)
	}
	if c.Depth < 0 {
		return fmt.Errorf("depth %d must not be negative", c.Depth)
	}
	return c.Weights.Validate(size)
}

// ForSize returns a copy of the config with weights fitted to the board size.
func (c Config) ForSize(size int) Config {
	c.Weights = c.Weights.Resize(size)
	return c
}

// Agent picks moves for one side. It holds no game state between calls.
type Agent struct {
	cfg Config
	log zerolog.Logger

	mu  sync.Mutex // guards rnd
	rnd RandomSource
}

// Option customizes an Agent.
type Option func(*Agent)

// WithRandom replaces the default random source, e.g. with a seeded *rand.Rand.
func WithRandom(rnd RandomSource) Option {
	return func(a *Agent) {
		a.rnd = rnd
	}
}

// WithLogger sets the logger used for per-move debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Agent) {
		a.log = l
	}
}

// New creates an agent.
func New(cfg Config, opts ...Option) *Agent {
	a := &Agent{
		cfg: cfg,
		log: zerolog.Nop(),
		rnd: frand.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Config returns the agent's configuration.
func (a *Agent) Config() Config {
	return a.cfg
}

// PickMove chooses a move for turn and returns it with the lines it flips.
// The weight table must match the board size (see Config.ForSize).
// It panics with ErrNoLegalMoves if turn cannot move, and with an error
// wrapping ErrWeightsMismatch if the weights do not fit the board.
func (a *Agent) PickMove(b board.Board, turn board.Tile) (board.Coord, []board.FlipLine) {
	if err := a.cfg.Weights.Validate(b.Size()); err != nil {
		panic(fmt.Errorf("%w: %v", ErrWeightsMismatch, err))
	}
	if !b.HasAnyLegalMove(turn) {
		panic(ErrNoLegalMoves)
	}

	start := time.Now()
	s := NewSearcher(a.cfg.Weights, a.cfg.Depth)
	ranked := Rank(s, b, turn)

	a.mu.Lock()
	pick := Select(ranked, a.cfg.Pickyness, a.cfg.Chaos, a.rnd)
	a.mu.Unlock()

	a.log.Debug().
		Stringer("turn", turn).
		Int("candidates", len(ranked)).
		Stringer("best", ranked[0].Move.Coord).
		Float64("best_score", ranked[0].Score).
		Stringer("move", pick.Move.Coord).
		Int("flips", pick.Move.Flips()).
		Float64("score", pick.Score).
		Uint64("nodes", s.Nodes()).
		Dur("elapsed", time.Since(start)).
		Msg("picked-move")

	return pick.Move.Coord, pick.Move.Lines
}
