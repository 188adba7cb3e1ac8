// Package record keeps the in-memory history of a game as a tree of moves,
// so undone lines survive as variations.
package record

import (
	"strings"

	"reversi-local/board"
)

// Move is one ply: a disc placed by Tile at Coord, or a pass.
type Move struct {
	Tile  board.Tile
	Coord board.Coord
	Pass  bool
}

// String renders the move as "Dark D3" or "Light pass".
func (m Move) String() string {
	if m.Pass {
		return m.Tile.String() + " pass"
	}
	return m.Tile.String() + " " + m.Coord.String()
}

// GameNode is a position in the game tree.
type GameNode struct {
	Move     Move        // zero for root
	Board    board.Board // position after Move
	Turn     board.Tile  // side to move in Board
	Parent   *GameNode
	Children []*GameNode // First child = main line

	last *GameNode // child most recently entered, for Redo
}

// GameTree tracks the moves played and every variation left by undo.
type GameTree struct {
	Root    *GameNode
	Current *GameNode
}

// NewGameTree creates a tree rooted at the starting position.
func NewGameTree(start board.Board, turn board.Tile) *GameTree {
	root := &GameNode{Board: start, Turn: turn}
	return &GameTree{Root: root, Current: root}
}

// AddMove adds a child move to the current node and advances to it.
// Replaying a move that already exists navigates to it instead.
func (t *GameTree) AddMove(move Move, after board.Board, turn board.Tile) *GameNode {
	for _, child := range t.Current.Children {
		if child.Move == move {
			t.Current.last = child
			t.Current = child
			return child
		}
	}
	node := &GameNode{
		Move:   move,
		Board:  after,
		Turn:   turn,
		Parent: t.Current,
	}
	t.Current.Children = append(t.Current.Children, node)
	t.Current.last = node
	t.Current = node
	return node
}

// Back moves current to its parent. Returns false if already at root.
func (t *GameTree) Back() bool {
	if t.Current == t.Root {
		return false
	}
	t.Current = t.Current.Parent
	return true
}

// Forward moves current to children[idx]. Returns false if no such child.
func (t *GameTree) Forward(idx int) bool {
	if idx < 0 || idx >= len(t.Current.Children) {
		return false
	}
	t.Current.last = t.Current.Children[idx]
	t.Current = t.Current.Children[idx]
	return true
}

// Redo steps back into the child that Back last left, or the main line if
// none was entered yet. Returns false at a leaf.
func (t *GameTree) Redo() bool {
	if next := t.Current.last; next != nil {
		t.Current = next
		return true
	}
	return t.Forward(0)
}

// PathFromRoot returns the moves from root to current.
func (t *GameTree) PathFromRoot() []Move {
	var path []Move
	for node := t.Current; node != t.Root; node = node.Parent {
		path = append(path, node.Move)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Ply returns the number of moves, passes included, from root to current.
func (t *GameTree) Ply() int {
	n := 0
	for node := t.Current; node != t.Root; node = node.Parent {
		n++
	}
	return n
}

// LastPlaced returns the most recent non-pass move on the current line.
func (t *GameTree) LastPlaced() (Move, bool) {
	for node := t.Current; node != t.Root; node = node.Parent {
		if !node.Move.Pass {
			return node.Move, true
		}
	}
	return Move{}, false
}

// HasChildren returns true if the current node has any children.
func (t *GameTree) HasChildren() bool {
	return len(t.Current.Children) > 0
}

// Transcript joins the coordinates of the current line, e.g. "F5 D6 pass C3".
func (t *GameTree) Transcript() string {
	path := t.PathFromRoot()
	tokens := make([]string, len(path))
	for i, m := range path {
		if m.Pass {
			tokens[i] = "pass"
		} else {
			tokens[i] = m.Coord.String()
		}
	}
	return strings.Join(tokens, " ")
}
