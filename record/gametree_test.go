package record

import (
	"testing"

	"reversi-local/board"
)

var (
	e3 = board.Coord{Col: 4, Row: 2}
	f4 = board.Coord{Col: 5, Row: 3}
	c5 = board.Coord{Col: 2, Row: 4}
)

// play applies a move for the side to move at the current node.
func play(t *testing.T, tree *GameTree, c board.Coord) *GameNode {
	t.Helper()
	cur := tree.Current
	next, _, err := cur.Board.Play(cur.Turn, c)
	if err != nil {
		t.Fatalf("playing %s: %v", c, err)
	}
	return tree.AddMove(Move{Tile: cur.Turn, Coord: c}, next, cur.Turn.Invert())
}

func newTree() *GameTree {
	return NewGameTree(board.Reset(board.DefaultSize), board.Light)
}

func TestNewGameTree(t *testing.T) {
	tree := newTree()
	if tree.Root == nil {
		t.Fatal("root should not be nil")
	}
	if tree.Current != tree.Root {
		t.Fatal("current should be root")
	}
	if tree.Root.Turn != board.Light {
		t.Fatalf("root turn should be Light, got %s", tree.Root.Turn)
	}
	if tree.Ply() != 0 {
		t.Fatalf("root ply should be 0, got %d", tree.Ply())
	}
}

func TestGameTreeAddMove(t *testing.T) {
	tree := newTree()
	node := play(t, tree, e3)
	if node.Move.String() != "Light E3" {
		t.Fatalf("expected Light E3, got %q", node.Move)
	}
	if tree.Current != node {
		t.Fatal("current should advance to new node")
	}
	if node.Parent != tree.Root {
		t.Fatal("parent should be root")
	}
	if node.Turn != board.Dark {
		t.Fatalf("dark should be next, got %s", node.Turn)
	}
	if light, dark := node.Board.DiscCounts(); light != 4 || dark != 1 {
		t.Fatalf("expected 4/1 discs after the move, got %d/%d", light, dark)
	}
}

func TestAddMoveDedup(t *testing.T) {
	tree := newTree()
	node1 := play(t, tree, e3)
	tree.Back()
	node2 := play(t, tree, e3)
	if node1 != node2 {
		t.Fatal("duplicate move should navigate to existing node, not create new one")
	}
	if len(tree.Root.Children) != 1 {
		t.Fatalf("root should still have 1 child, got %d", len(tree.Root.Children))
	}
}

func TestAddMoveBranching(t *testing.T) {
	tree := newTree()
	play(t, tree, e3)
	tree.Back()
	play(t, tree, c5)
	if len(tree.Root.Children) != 2 {
		t.Fatalf("root should have 2 children, got %d", len(tree.Root.Children))
	}
	if tree.Root.Children[0].Move.Coord != e3 || tree.Root.Children[1].Move.Coord != c5 {
		t.Fatalf("unexpected children order: %s, %s", tree.Root.Children[0].Move, tree.Root.Children[1].Move)
	}
}

func TestBackRestoresBoard(t *testing.T) {
	tree := newTree()
	if tree.Back() {
		t.Fatal("back at root should return false")
	}
	play(t, tree, e3)
	if !tree.Back() {
		t.Fatal("back should return true")
	}
	if diff := tree.Current.Board.Diff(board.Reset(board.DefaultSize)); len(diff) != 0 {
		t.Fatalf("back should restore the start position, got\n%s", tree.Current.Board)
	}
}

func TestForward(t *testing.T) {
	tree := newTree()
	if tree.Forward(0) {
		t.Fatal("forward with no children should return false")
	}
	first := play(t, tree, f4)
	second := play(t, tree, board.Coord{Col: 5, Row: 4}) // F5 for Dark
	tree.Back()
	tree.Back()

	if !tree.Forward(0) || tree.Current != first {
		t.Fatal("forward should reach the first move")
	}
	if !tree.Forward(0) || tree.Current != second {
		t.Fatal("forward should reach the second move")
	}
	if tree.Forward(1) {
		t.Fatal("forward with invalid index should return false")
	}
}

func TestRedoFollowsLastVariation(t *testing.T) {
	tree := newTree()
	if tree.Redo() {
		t.Fatal("redo with no children should return false")
	}
	first := play(t, tree, e3)
	tree.Back()
	second := play(t, tree, c5)
	reply := play(t, tree, board.Coord{Col: 2, Row: 5}) // C6 for Dark
	tree.Back()
	tree.Back()

	if !tree.Redo() || tree.Current != second {
		t.Fatalf("redo should re-enter the last line, got %s", tree.Current.Move)
	}
	if !tree.Redo() || tree.Current != reply {
		t.Fatalf("redo should continue down the line, got %s", tree.Current.Move)
	}
	if tree.Redo() {
		t.Fatal("redo at a leaf should return false")
	}

	tree.Back()
	tree.Back()
	tree.Forward(0)
	tree.Back()
	if !tree.Redo() || tree.Current != first {
		t.Fatalf("redo should follow the line entered by Forward, got %s", tree.Current.Move)
	}
}

func TestPathAndTranscript(t *testing.T) {
	tree := newTree()
	if len(tree.PathFromRoot()) != 0 {
		t.Fatal("path at root should be empty")
	}
	if _, ok := tree.LastPlaced(); ok {
		t.Fatal("no move placed yet")
	}

	play(t, tree, e3)
	node := tree.Current
	tree.AddMove(Move{Tile: board.Dark, Pass: true}, node.Board, board.Light)

	path := tree.PathFromRoot()
	if len(path) != 2 || path[0].Coord != e3 || !path[1].Pass {
		t.Fatalf("unexpected path %v", path)
	}
	if path[1].String() != "Dark pass" {
		t.Fatalf("expected Dark pass, got %q", path[1])
	}
	if got := tree.Transcript(); got != "E3 pass" {
		t.Fatalf("expected transcript %q, got %q", "E3 pass", got)
	}
	if last, ok := tree.LastPlaced(); !ok || last.Coord != e3 {
		t.Fatalf("last placed should skip the pass, got %v", last)
	}
	if tree.Ply() != 2 {
		t.Fatalf("expected ply 2, got %d", tree.Ply())
	}
}

func TestHasChildren(t *testing.T) {
	tree := newTree()
	if tree.HasChildren() {
		t.Fatal("root should have no children initially")
	}
	play(t, tree, e3)
	tree.Back()
	if !tree.HasChildren() {
		t.Fatal("root should have children after AddMove")
	}
}

func TestDeepTree(t *testing.T) {
	tree := newTree()
	for i := 0; i < 10; i++ {
		moves := tree.Current.Board.LegalMoves(tree.Current.Turn)
		if len(moves) == 0 {
			t.Fatalf("no moves at ply %d", i)
		}
		play(t, tree, moves[0].Coord)
	}
	if len(tree.PathFromRoot()) != 10 {
		t.Fatalf("expected path length 10, got %d", len(tree.PathFromRoot()))
	}
	for i := 0; i < 10; i++ {
		if !tree.Back() {
			t.Fatalf("back should succeed at step %d", i)
		}
	}
	if tree.Current != tree.Root || tree.Back() {
		t.Fatal("should be back at root")
	}
}
