// Package types contains shared data structures for reversi-local.
package types

import (
	"fmt"

	"reversi-local/board"
)

// Phases of a game.
const (
	PhasePlaying  = "playing"
	PhaseFinished = "finished"
)

// BoardState is a snapshot of a game for the UI.
// Board is indexed as Board[y][x] where 0=empty, 1=dark, 2=light.
type BoardState struct {
	MoveNumber   int        `json:"move_number"`
	PlayerToMove int        `json:"player_to_move"` // 1=dark, 2=light
	Phase        string     `json:"phase"`
	Board        [][]int    `json:"board"`
	Outcome      string     `json:"outcome"`
	LastMove     BoardPos   `json:"last_move"`
	Flipped      []BoardPos `json:"flipped"`
	Legal        []BoardPos `json:"legal"` // moves open to PlayerToMove
	LightCount   int        `json:"light_count"`
	DarkCount    int        `json:"dark_count"`
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == PhaseFinished
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// IsFlipped reports whether the disc at x, y changed color on the last move.
func (b *BoardState) IsFlipped(x, y int) bool {
	for _, p := range b.Flipped {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// IsLegal reports whether the side to move may play at x, y.
func (b *BoardState) IsLegal(x, y int) bool {
	for _, p := range b.Legal {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// BoardPos represents a position on the board. {-1, -1} means none.
type BoardPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NoPos marks a missing position, e.g. before the first move or after a pass.
var NoPos = BoardPos{X: -1, Y: -1}

// PosOf converts a board coordinate.
func PosOf(c board.Coord) BoardPos {
	return BoardPos{X: c.Col, Y: c.Row}
}

// Coord converts back to a board coordinate.
func (p BoardPos) Coord() board.Coord {
	return board.Coord{Col: p.X, Row: p.Y}
}

func (p BoardPos) String() string {
	if p == NoPos {
		return "pass"
	}
	return p.Coord().String()
}

// Color maps a tile to the 0/1/2 encoding used by BoardState.
func Color(t board.Tile) int {
	switch t {
	case board.Dark:
		return 1
	case board.Light:
		return 2
	}
	return 0
}

// Tile maps a 0/1/2 color back to a tile.
func Tile(color int) board.Tile {
	switch color {
	case 1:
		return board.Dark
	case 2:
		return board.Light
	}
	return board.Empty
}

// NewBoardState snapshots b with turn to move.
func NewBoardState(b board.Board, turn board.Tile) *BoardState {
	rows := b.Rows()
	grid := make([][]int, len(rows))
	for y, row := range rows {
		grid[y] = make([]int, len(row))
		for x, t := range row {
			grid[y][x] = Color(t)
		}
	}
	moves := b.LegalMoves(turn)
	legal := make([]BoardPos, len(moves))
	for i, m := range moves {
		legal[i] = PosOf(m.Coord)
	}
	light, dark := b.DiscCounts()
	return &BoardState{
		PlayerToMove: Color(turn),
		Phase:        PhasePlaying,
		Board:        grid,
		LastMove:     NoPos,
		Legal:        legal,
		LightCount:   light,
		DarkCount:    dark,
	}
}

// Score renders the disc counts, e.g. "Light 36 / Dark 28".
func (b *BoardState) Score() string {
	return fmt.Sprintf("Light %d / Dark %d", b.LightCount, b.DarkCount)
}
