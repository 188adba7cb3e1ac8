package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"reversi-local/board"
	"reversi-local/record"
	"reversi-local/types"
)

// maxVisibleMoves is how many history lines fit beside an 8x8 board.
const maxVisibleMoves = 12

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
	moves      []record.Move
	opponent   string
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state and move history.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState, moves []record.Move) {
	p.boardState = state
	p.moves = moves
	p.refresh()
}

// SetOpponent sets the AI level name for display.
func (p *GameInfoPanel) SetOpponent(name string) {
	p.opponent = name
	p.refresh()
}

// Text returns the rendered panel contents.
func (p *GameInfoPanel) Text() string {
	return p.box.GetText(true)
}

func (p *GameInfoPanel) refresh() {
	if p.boardState == nil {
		p.box.SetText("")
		return
	}
	bs := p.boardState

	var text strings.Builder
	text.WriteString("[white::b]Game Info[-:-:-]\n")
	text.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	if p.opponent != "" {
		fmt.Fprintf(&text, "[white]Opponent:[-:-:-] %s\n", p.opponent)
	}
	fmt.Fprintf(&text, "[white]Move:[-:-:-] %d\n", bs.MoveNumber)
	fmt.Fprintf(&text, "[white]Dark:[-:-:-]  %2d\n", bs.DarkCount)
	fmt.Fprintf(&text, "[white]Light:[-:-:-] %2d\n", bs.LightCount)
	if bs.Finished() {
		fmt.Fprintf(&text, "[yellow]%s[-]\n", bs.Outcome)
	}

	if len(p.moves) > 0 {
		text.WriteString("\n[white::b]Moves[-:-:-]\n")
		text.WriteString("[dimgray]──────────────────────[-:-:-]\n")

		start := 0
		if len(p.moves) > maxVisibleMoves {
			start = len(p.moves) - maxVisibleMoves
		}
		for i := start; i < len(p.moves); i++ {
			m := p.moves[i]

			colorStr := "[white]L[-]"
			if m.Tile == board.Dark {
				colorStr = "[dimgray]D[-]"
			}
			coord := "pass"
			if !m.Pass {
				coord = m.Coord.String()
			}
			marker := " "
			if i == len(p.moves)-1 {
				marker = "[white]>[-]"
			}
			fmt.Fprintf(&text, "%s[dimgray]%3d.[-] %s %s\n", marker, i+1, colorStr, coord)
		}
		if start > 0 {
			fmt.Fprintf(&text, "[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text.String())
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(b *BoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, b, hint)
	return gameFrame
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, b *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	opponent := ""
	if b.infoPanel != nil {
		opponent = b.infoPanel.opponent
	}
	infoPanel := NewGameInfoPanel()
	infoPanel.opponent = opponent
	b.infoPanel = infoPanel
	b.refreshHint()

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(b.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	// Board area on top, status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, b *BoardUI) {
	gameFrame.Clear()

	boardWidth := board.DefaultSize*2 + 4
	boardHeight := board.DefaultSize + 4
	if b.BoardState != nil && b.BoardState.Width() > 0 {
		boardWidth = b.BoardState.Width()*2 + 4  // 2 chars per cell + coordinates
		boardHeight = b.BoardState.Height() + 4 // coordinates + move input
	}

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(b.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
