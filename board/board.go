package board

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSize is the standard Othello board width.
const DefaultSize = 8

// ErrIllegalMove is matched by every IllegalMoveError.
var ErrIllegalMove = errors.New("illegal move")

// IllegalMoveError is returned when a move would flip no discs.
type IllegalMoveError struct {
	Coord Coord
	Tile  Tile
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("%s cannot play %s: no discs to flip", e.Tile, e.Coord)
}

func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

// FlipLine is a run of opponent discs in one direction from a played cell,
// ordered outward and bookended by a disc of the player's color.
type FlipLine []Coord

// Move is a cell together with every line that playing it would flip.
type Move struct {
	Coord Coord
	Lines []FlipLine
}

// Flips returns the total number of discs the move turns over.
func (m Move) Flips() int {
	n := 0
	for _, line := range m.Lines {
		n += len(line)
	}
	return n
}

// Board is an immutable square grid of tiles. The zero value is an empty 0x0 board.
type Board struct {
	size  int
	tiles []Tile // row-major
}

// directions holds the 8 compass steps as (dCol, dRow).
var directions = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Reset returns the starting position for a board of the given size.
// The size must be even and at least 4.
func Reset(size int) Board {
	if size < 4 || size%2 != 0 {
		panic(fmt.Sprintf("board: invalid size %d", size))
	}
	b := Board{size: size, tiles: make([]Tile, size*size)}
	h := size / 2
	b.tiles[b.index(Coord{h - 1, h - 1})] = Light
	b.tiles[b.index(Coord{h, h})] = Light
	b.tiles[b.index(Coord{h - 1, h})] = Dark
	b.tiles[b.index(Coord{h, h - 1})] = Dark
	return b
}

// FromTiles builds a board from a grid indexed as tiles[row][col].
func FromTiles(tiles [][]Tile) (Board, error) {
	size := len(tiles)
	b := Board{size: size, tiles: make([]Tile, 0, size*size)}
	for row, line := range tiles {
		if len(line) != size {
			return Board{}, fmt.Errorf("row %d has %d cells, want %d", row, len(line), size)
		}
		for col, t := range line {
			if !t.Valid() {
				return Board{}, fmt.Errorf("invalid tile %d at %s", t, Coord{col, row})
			}
			b.tiles = append(b.tiles, t)
		}
	}
	return b, nil
}

// Size returns the board width.
func (b Board) Size() int {
	return b.size
}

// InBounds reports whether c lies on the board.
func (b Board) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < b.size && c.Row >= 0 && c.Row < b.size
}

// At returns the tile at c. Out of bounds cells read as Empty.
func (b Board) At(c Coord) Tile {
	if !b.InBounds(c) {
		return Empty
	}
	return b.tiles[b.index(c)]
}

// Rows returns a copy of the grid indexed as [row][col].
func (b Board) Rows() [][]Tile {
	rows := make([][]Tile, b.size)
	for row := range rows {
		rows[row] = make([]Tile, b.size)
		copy(rows[row], b.tiles[row*b.size:(row+1)*b.size])
	}
	return rows
}

func (b Board) index(c Coord) int {
	return c.Row*b.size + c.Col
}

// FlipLines returns the lines that playing t at c would flip. A cell that is
// occupied or off the board has no lines.
func (b Board) FlipLines(c Coord, t Tile) []FlipLine {
	if !b.InBounds(c) || b.At(c) != Empty || t == Empty {
		return nil
	}
	opp := t.Invert()

	var lines []FlipLine
	for _, d := range directions {
		var line FlipLine
		next := Coord{c.Col + d[0], c.Row + d[1]}
		for b.InBounds(next) && b.At(next) == opp {
			line = append(line, next)
			next = Coord{next.Col + d[0], next.Row + d[1]}
		}
		// Only a run closed by our own disc is a bookend
		if len(line) > 0 && b.InBounds(next) && b.At(next) == t {
			lines = append(lines, line)
		}
	}
	return lines
}

// LegalMoves returns every legal move for t in row-major order.
func (b Board) LegalMoves(t Tile) []Move {
	var moves []Move
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			c := Coord{col, row}
			if lines := b.FlipLines(c, t); len(lines) > 0 {
				moves = append(moves, Move{Coord: c, Lines: lines})
			}
		}
	}
	return moves
}

// HasAnyLegalMove reports whether t can play anywhere.
func (b Board) HasAnyLegalMove(t Tile) bool {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if len(b.FlipLines(Coord{col, row}, t)) > 0 {
				return true
			}
		}
	}
	return false
}

// Update returns a copy of the board with c and every cell in lines set to t.
// The lines must come from FlipLines on this board; they are not re-validated.
func (b Board) Update(t Tile, c Coord, lines []FlipLine) (Board, error) {
	if len(lines) == 0 {
		return Board{}, &IllegalMoveError{Coord: c, Tile: t}
	}
	next := Board{size: b.size, tiles: make([]Tile, len(b.tiles))}
	copy(next.tiles, b.tiles)
	next.tiles[next.index(c)] = t
	for _, line := range lines {
		for _, flip := range line {
			next.tiles[next.index(flip)] = t
		}
	}
	return next, nil
}

// Play computes the flip lines for t at c and applies them.
func (b Board) Play(t Tile, c Coord) (Board, []FlipLine, error) {
	lines := b.FlipLines(c, t)
	next, err := b.Update(t, c, lines)
	if err != nil {
		return Board{}, nil, err
	}
	return next, lines, nil
}

// DiscCounts returns the number of Light and Dark discs.
func (b Board) DiscCounts() (light, dark int) {
	for _, t := range b.tiles {
		switch t {
		case Light:
			light++
		case Dark:
			dark++
		}
	}
	return light, dark
}

// IsGameOver reports whether neither color has a legal move.
func (b Board) IsGameOver() bool {
	return !b.HasAnyLegalMove(Light) && !b.HasAnyLegalMove(Dark)
}

// Winner returns the color with more discs, or Empty on a tie.
func (b Board) Winner() Tile {
	light, dark := b.DiscCounts()
	switch {
	case light > dark:
		return Light
	case dark > light:
		return Dark
	default:
		return Empty
	}
}

// Diff returns the cells, in row-major order, whose tiles differ between b and other.
// Both boards must have the same size.
func (b Board) Diff(other Board) []Coord {
	var changed []Coord
	for i := range b.tiles {
		if b.tiles[i] != other.tiles[i] {
			changed = append(changed, Coord{i % b.size, i / b.size})
		}
	}
	return changed
}

// MoveAt finds the move played at c, if any.
func MoveAt(moves []Move, c Coord) (Move, bool) {
	for _, m := range moves {
		if m.Coord == c {
			return m, true
		}
	}
	return Move{}, false
}

// String renders the board with O for Light, X for Dark and _ for Empty.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < b.size && col < MaxNotationSize; col++ {
		sb.WriteByte(columnLetters[col])
	}
	sb.WriteByte('\n')
	for row := 0; row < b.size; row++ {
		fmt.Fprintf(&sb, "%-2d", row+1)
		for col := 0; col < b.size; col++ {
			switch b.At(Coord{col, row}) {
			case Light:
				sb.WriteByte('O')
			case Dark:
				sb.WriteByte('X')
			default:
				sb.WriteByte('_')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
