// Package engine defines the interface for game engines.
package engine

import (
	"errors"

	"reversi-local/ai"
	"reversi-local/board"
	"reversi-local/types"
)

var (
	// ErrGameOver is returned for any move attempted after the game ended.
	ErrGameOver = errors.New("game is over")
	// ErrNotYourTurn is returned when the human tries to move during the AI's turn.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrPassNotAllowed is returned when the human passes while holding a legal move.
	ErrPassNotAllowed = errors.New("pass is only allowed without a legal move")
)

// GameEngine defines the interface for playing Reversi against an engine.
type GameEngine interface {
	// Connect initializes the game and lets the engine move if it goes first.
	Connect() error

	// GetBoardState returns the current board state.
	GetBoardState() *types.BoardState

	// PlayMove plays a move at the given coordinates.
	// Returns an error if the move is illegal.
	PlayMove(x, y int) error

	// PlayNotation plays a move given as text, e.g. "d3".
	PlayNotation(token string) error

	// Pass passes the current turn. Only allowed without a legal move.
	Pass() error

	// IsMyTurn returns true if it's the human player's turn.
	IsMyTurn() bool

	// GetPlayerColor returns the human player's color (1=dark, 2=light).
	GetPlayerColor() int

	// OnMove registers a callback for when a move is played (by either player).
	// x, y are -1, -1 for a pass. boardState is passed directly to avoid lock contention.
	OnMove(func(x, y, color int, boardState *types.BoardState))

	// Undo undoes the last move (one ply). Call twice to undo a player+engine move pair.
	Undo() error

	// Redo replays the last undone ply.
	Redo() error

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome string))

	// Close shuts down the engine.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	BoardSize   int // 4, 6, or 8
	PlayerColor int // 1=dark, 2=light
	AILevel     int // 1-5, see ai.Levels
	// Agent overrides the preset picked by AILevel when Weights is set.
	Agent ai.Config
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize:   board.DefaultSize,
		PlayerColor: 1, // Human plays dark
		AILevel:     3,
	}
}

// AgentConfig resolves the AI settings for the configured board size.
func (c GameConfig) AgentConfig() ai.Config {
	cfg := c.Agent
	if cfg.Weights == nil {
		cfg = ai.Level(c.AILevel)
	}
	return cfg.ForSize(c.BoardSize)
}
