// Package local implements the GameEngine interface with the built-in AI,
// running entirely in process.
package local

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"reversi-local/ai"
	"reversi-local/board"
	"reversi-local/engine"
	"reversi-local/logging"
	"reversi-local/record"
	"reversi-local/types"
)

var (
	// ErrNothingToUndo is returned by Undo at the starting position.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo is returned by Redo when no undone move is recorded.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// LocalEngine plays the human against an ai.Agent.
type LocalEngine struct {
	config    engine.GameConfig
	agentOpts []ai.Option
	agent     *ai.Agent
	log       zerolog.Logger

	tree       *record.GameTree
	boardState *types.BoardState
	human      board.Tile
	gameOver   bool
	thinking   bool
	closed     bool

	moveCallback func(x, y, color int, boardState *types.BoardState)
	endCallback  func(outcome string)

	pending sync.WaitGroup // AI moves in flight
	mu      sync.Mutex
}

// Option customizes a LocalEngine.
type Option func(*LocalEngine)

// WithLogger sets the logger. Every event carries the game's id.
func WithLogger(l zerolog.Logger) Option {
	return func(g *LocalEngine) {
		g.log = l
	}
}

// WithAgentOptions passes options through to the AI agent, e.g. a seeded random source.
func WithAgentOptions(opts ...ai.Option) Option {
	return func(g *LocalEngine) {
		g.agentOpts = append(g.agentOpts, opts...)
	}
}

// NewLocalEngine creates an engine with the given configuration.
func NewLocalEngine(cfg engine.GameConfig, opts ...Option) *LocalEngine {
	g := &LocalEngine{
		config: cfg,
		log:    zerolog.Nop(),
		human:  types.Tile(cfg.PlayerColor),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log, _ = logging.WithGame(g.log)
	return g
}

// Connect sets up the board and lets the AI open if it plays Light.
func (g *LocalEngine) Connect() error {
	size := g.config.BoardSize
	if size < 4 || size > board.MaxNotationSize || size%2 != 0 {
		return errors.Errorf("unsupported board size %d", size)
	}
	if g.human != board.Light && g.human != board.Dark {
		return errors.Errorf("unsupported player color %d", g.config.PlayerColor)
	}
	agentCfg := g.config.AgentConfig()
	if err := agentCfg.Validate(size); err != nil {
		return errors.Wrap(err, "invalid AI config")
	}
	g.agent = ai.New(agentCfg, append([]ai.Option{ai.WithLogger(g.log)}, g.agentOpts...)...)

	g.mu.Lock()
	g.tree = record.NewGameTree(board.Reset(size), board.Light)
	g.gameOver = false
	g.refresh()
	var aiNode *record.GameNode
	if g.human != board.Light {
		aiNode = g.reserveAI()
	}
	g.mu.Unlock()

	if aiNode != nil {
		go g.triggerAIMove(aiNode)
	}

	g.log.Info().
		Int("size", size).
		Stringer("human", g.human).
		Int("depth", agentCfg.Depth).
		Float64("pickyness", agentCfg.Pickyness).
		Float64("chaos", agentCfg.Chaos).
		Msg("new-game")
	return nil
}

// GetBoardState returns the current board state.
func (g *LocalEngine) GetBoardState() *types.BoardState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.boardState
}

// PlayMove plays the human's disc at x, y. Illegal moves return a
// *board.IllegalMoveError and leave the game unchanged.
func (g *LocalEngine) PlayMove(x, y int) error {
	g.mu.Lock()
	if err := g.checkHumanTurn(); err != nil {
		g.mu.Unlock()
		return err
	}

	c := board.Coord{Col: x, Row: y}
	cur := g.tree.Current
	next, _, err := cur.Board.Play(g.human, c)
	if err != nil {
		g.mu.Unlock()
		g.log.Debug().Stringer("move", c).Msg("illegal-move")
		return err
	}
	g.log.Debug().Stringer("move", c).Msg("human-move")
	g.apply(record.Move{Tile: g.human, Coord: c}, next)
	return nil
}

// PlayNotation plays a move given as a text token such as "d3".
func (g *LocalEngine) PlayNotation(token string) error {
	c, err := board.ParseCoord(token, g.config.BoardSize)
	if err != nil {
		return err
	}
	return g.PlayMove(c.Col, c.Row)
}

// Pass passes the human's turn. It is only allowed when no legal move exists.
func (g *LocalEngine) Pass() error {
	g.mu.Lock()
	if err := g.checkHumanTurn(); err != nil {
		g.mu.Unlock()
		return err
	}
	cur := g.tree.Current
	if cur.Board.HasAnyLegalMove(g.human) {
		g.mu.Unlock()
		return engine.ErrPassNotAllowed
	}
	g.log.Debug().Stringer("tile", g.human).Msg("pass")
	g.apply(record.Move{Tile: g.human, Pass: true}, cur.Board)
	return nil
}

func (g *LocalEngine) checkHumanTurn() error {
	if g.tree == nil {
		return errors.New("engine not connected")
	}
	if g.gameOver {
		return engine.ErrGameOver
	}
	if g.tree.Current.Turn != g.human || g.thinking {
		return engine.ErrNotYourTurn
	}
	return nil
}

// apply records a move, releases the lock and notifies the callbacks.
// Must be called while holding the lock.
func (g *LocalEngine) apply(m record.Move, next board.Board) {
	g.tree.AddMove(m, next, m.Tile.Invert())
	if next.IsGameOver() {
		g.gameOver = true
	}
	g.refresh()
	snapshot := g.boardState
	outcome := snapshot.Outcome
	var aiNode *record.GameNode
	if !g.gameOver && g.tree.Current.Turn != g.human {
		aiNode = g.reserveAI()
	}
	moveCb, endCb := g.moveCallback, g.endCallback
	g.mu.Unlock()

	// Notify callbacks outside the lock to prevent deadlock
	x, y := -1, -1
	if !m.Pass {
		x, y = m.Coord.Col, m.Coord.Row
	}
	if moveCb != nil {
		moveCb(x, y, types.Color(m.Tile), snapshot)
	}
	if outcome != "" {
		light, dark := next.DiscCounts()
		g.log.Info().Int("light", light).Int("dark", dark).Str("outcome", outcome).Msg("game-over")
		if endCb != nil {
			endCb(outcome)
		}
	}

	if aiNode != nil {
		go g.triggerAIMove(aiNode)
	}
}

// reserveAI marks the AI as thinking about the current node, which blocks
// human moves until triggerAIMove runs for it.
// Must be called while holding the lock.
func (g *LocalEngine) reserveAI() *record.GameNode {
	g.thinking = true
	g.pending.Add(1)
	return g.tree.Current
}

// triggerAIMove searches from node without holding the lock, then plays the
// result if the game is still at node.
func (g *LocalEngine) triggerAIMove(node *record.GameNode) {
	defer g.pending.Done()
	turn := node.Turn

	m := record.Move{Tile: turn, Pass: true}
	next := node.Board
	var err error
	if node.Board.HasAnyLegalMove(turn) {
		c, lines := g.agent.PickMove(node.Board, turn)
		m = record.Move{Tile: turn, Coord: c}
		next, err = node.Board.Update(turn, c, lines)
	}

	g.mu.Lock()
	g.thinking = false
	if err != nil {
		g.mu.Unlock()
		g.log.Error().Err(err).Stringer("move", m).Msg("ai-move")
		return
	}
	if g.closed || g.gameOver || g.tree.Current != node {
		g.mu.Unlock()
		return
	}
	g.log.Debug().Stringer("move", m).Msg("ai-move")
	g.apply(m, next)
}

// refresh rebuilds the board state from the current tree node.
// Must be called while holding the lock.
func (g *LocalEngine) refresh() {
	node := g.tree.Current
	bs := types.NewBoardState(node.Board, node.Turn)
	bs.MoveNumber = g.tree.Ply()
	// After a pass the last disc placed stays highlighted.
	if last, ok := g.tree.LastPlaced(); ok {
		bs.LastMove = types.PosOf(last.Coord)
	}
	if node.Parent != nil && !node.Move.Pass {
		for _, c := range node.Parent.Board.Diff(node.Board) {
			if c != node.Move.Coord {
				bs.Flipped = append(bs.Flipped, types.PosOf(c))
			}
		}
	}
	if g.gameOver {
		bs.Phase = types.PhaseFinished
		bs.Outcome = Outcome(node.Board)
		bs.Legal = nil
	}
	g.boardState = bs
}

// Outcome describes a finished game, e.g. "Light wins 36-28" or "Draw 32-32".
func Outcome(b board.Board) string {
	light, dark := b.DiscCounts()
	switch b.Winner() {
	case board.Light:
		return fmt.Sprintf("Light wins %d-%d", light, dark)
	case board.Dark:
		return fmt.Sprintf("Dark wins %d-%d", dark, light)
	default:
		return fmt.Sprintf("Draw %d-%d", light, dark)
	}
}

// IsMyTurn returns true if it's the human player's turn.
func (g *LocalEngine) IsMyTurn() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree != nil && g.checkHumanTurn() == nil
}

// GetPlayerColor returns the human player's color (1=dark, 2=light).
func (g *LocalEngine) GetPlayerColor() int {
	return types.Color(g.human)
}

// OnMove registers a callback for when a move is played.
func (g *LocalEngine) OnMove(callback func(x, y, color int, boardState *types.BoardState)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.moveCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (g *LocalEngine) OnGameEnd(callback func(outcome string)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.endCallback = callback
}

// Undo takes back one ply. Undoing back to a position where the AI is to
// move only restarts the AI at the starting position; otherwise the caller
// keeps undoing until it is the human's turn again.
func (g *LocalEngine) Undo() error {
	g.mu.Lock()
	if g.tree == nil || g.thinking {
		g.mu.Unlock()
		return engine.ErrNotYourTurn
	}
	if !g.tree.Back() {
		g.mu.Unlock()
		return ErrNothingToUndo
	}
	g.gameOver = false
	g.refresh()
	snapshot := g.boardState
	var aiNode *record.GameNode
	if g.tree.Current == g.tree.Root && g.tree.Current.Turn != g.human {
		aiNode = g.reserveAI()
	}
	moveCb := g.moveCallback
	g.mu.Unlock()

	if aiNode != nil {
		go g.triggerAIMove(aiNode)
	}

	g.log.Debug().Int("ply", snapshot.MoveNumber).Msg("undo")
	if moveCb != nil {
		moveCb(snapshot.LastMove.X, snapshot.LastMove.Y, 0, snapshot)
	}
	return nil
}

// Redo replays one undone ply along the line last undone. If that lands on
// the AI's turn at the end of the recorded line, the AI moves.
func (g *LocalEngine) Redo() error {
	g.mu.Lock()
	if g.tree == nil || g.thinking {
		g.mu.Unlock()
		return engine.ErrNotYourTurn
	}
	if !g.tree.HasChildren() {
		g.mu.Unlock()
		return ErrNothingToRedo
	}
	g.tree.Redo()
	node := g.tree.Current
	g.gameOver = node.Board.IsGameOver()
	g.refresh()
	snapshot := g.boardState
	var aiNode *record.GameNode
	if !g.gameOver && node.Turn != g.human && !g.tree.HasChildren() {
		aiNode = g.reserveAI()
	}
	moveCb, endCb := g.moveCallback, g.endCallback
	g.mu.Unlock()

	if aiNode != nil {
		go g.triggerAIMove(aiNode)
	}

	g.log.Debug().Int("ply", snapshot.MoveNumber).Msg("redo")
	if moveCb != nil {
		moveCb(snapshot.LastMove.X, snapshot.LastMove.Y, 0, snapshot)
	}
	if snapshot.Outcome != "" && endCb != nil {
		endCb(snapshot.Outcome)
	}
	return nil
}

// Transcript returns the moves played so far, e.g. "E3 F5 pass".
func (g *LocalEngine) Transcript() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.tree == nil {
		return ""
	}
	return g.tree.Transcript()
}

// History returns the moves from the start to the current position.
func (g *LocalEngine) History() []record.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.tree == nil {
		return nil
	}
	return g.tree.PathFromRoot()
}

// Wait blocks until no AI move is in flight.
func (g *LocalEngine) Wait() {
	g.pending.Wait()
}

// Close stops the game and waits for a running search to finish.
func (g *LocalEngine) Close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
	g.pending.Wait()
	g.log.Debug().Msg("closed")
}
