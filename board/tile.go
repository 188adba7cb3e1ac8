// Package board implements the Reversi board: tiles, coordinates, flip-line
// computation and move application.
//
// A Board is a value. Play and Update always return a new Board and never
// modify the receiver, so any number of hypothetical futures can be explored
// from a shared position without undo bookkeeping.
package board

// Tile is the content of a single board cell.
type Tile uint8

const (
	Empty Tile = iota
	Light
	Dark
)

// Invert returns the opposing color. Empty stays Empty.
func (t Tile) Invert() Tile {
	switch t {
	case Light:
		return Dark
	case Dark:
		return Light
	default:
		return Empty
	}
}

// Valid reports whether t is one of the three defined tiles.
func (t Tile) Valid() bool {
	return t <= Dark
}

func (t Tile) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	default:
		return "Invalid"
	}
}
