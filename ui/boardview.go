// Package ui specifies custom controls for tview to play Reversi in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/config"
	"reversi-local/engine"
	"reversi-local/record"
	"reversi-local/types"
)

// style slots
const (
	styleBoard = iota
	styleDark
	styleLight
	styleBoardAlt
	styleCursorFG
	styleLastPlayed
	styleCursorBG
	styleLine
	styleHint
)

// historian is implemented by engines that keep a move record.
type historian interface {
	History() []record.Move
}

type BoardUI struct {
	Box          *tview.Box
	BoardState   *types.BoardState
	hint         *tview.TextView
	cfg          *config.Config
	finished     bool
	selX         int
	selY         int
	lastTurnPass bool
	lastError    string
	app          *tview.Application
	eng          engine.GameEngine
	styles       []tcell.Color
	infoPanel    *GameInfoPanel
	moveInput    *MoveInput
	focusMode    bool
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

func (g *BoardUI) SelectedTile() *types.BoardPos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.BoardPos{X: g.selX, Y: g.selY}
}

func (g *BoardUI) MoveSelection(h, v int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		switch {
		case g.BoardState.LastMove != types.NoPos:
			g.selX, g.selY = g.BoardState.LastMove.X, g.BoardState.LastMove.Y
		case len(g.BoardState.Legal) > 0:
			g.selX, g.selY = g.BoardState.Legal[0].X, g.BoardState.Legal[0].Y
		default:
			g.selX, g.selY = g.BoardState.Width()/2, g.BoardState.Height()/2
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= g.BoardState.Width() {
		return
	}
	if g.selY+v < 0 || g.selY+v >= g.BoardState.Height() {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *BoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

func NewBoardUI(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	b := &BoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		app:        app,
		selX:       -1,
		selY:       -1,
	}
	b.moveInput = NewMoveInput("Move", b.PlayNotation)
	b.SetConfig(c)
	b.Box.SetDrawFunc(b.draw)
	return b
}

func (g *BoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	bs := g.BoardState
	if bs == nil || bs.Width() == 0 {
		return x, y, 1, 1
	}
	theme := g.cfg.Theme
	showHints := theme.ShowHints && g.eng != nil && g.eng.IsMyTurn()
	// 2 characters per cell for square appearance
	boardW, boardH := bs.Width()*2, bs.Height()
	left := x + 4

	for row := 0; row < bs.Height(); row++ {
		for col := 0; col < bs.Width(); col++ {
			tile := bs.Board[row][col]
			bg := g.styles[styleBoard]
			if (col+row)%2 == 1 {
				bg = g.styles[styleBoardAlt]
			}
			fg := g.styles[styleLine]
			r := theme.Symbols.BoardSquare

			switch tile {
			case 1:
				r, fg = theme.Symbols.DarkDisc, g.styles[styleDark]
			case 2:
				r, fg = theme.Symbols.LightDisc, g.styles[styleLight]
			default:
				if showHints && bs.IsLegal(col, row) {
					r, fg = theme.Symbols.Hint, g.styles[styleHint]
				}
			}
			if tile > 0 && theme.DrawDiscBackground {
				// Disc fills the cell, rune takes the other color.
				bg, fg = g.styles[tile], g.styles[3-tile]
			}

			if col == g.selX && row == g.selY {
				if theme.DrawCursorBackground {
					bg = g.styles[styleCursorBG]
				} else if tile == 0 {
					r, fg = theme.Symbols.Cursor, g.styles[styleCursorFG]
				}
			} else if col == bs.LastMove.X && row == bs.LastMove.Y && theme.DrawLastPlayedBackground {
				bg = g.styles[styleLastPlayed]
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			if bs.IsFlipped(col, row) {
				style = style.Bold(true)
			}
			drawCell(screen, style, r, col, row, left, y)
		}
	}
	drawCoordinates(screen, x, y, g)

	rows := boardH + 2
	if g.moveInput.Focused() {
		g.moveInput.Draw(screen, x, y+rows, width)
		rows += 2
	}
	return x, y, boardW + 4, rows
}

// ConnectEngine connects the board to a game engine.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) error {
	g.finished = false
	g.lastTurnPass = false
	g.lastError = ""
	g.ResetSelection()
	g.eng = e

	e.OnMove(func(x, y, color int, boardState *types.BoardState) {
		g.lastTurnPass = x == -1 && y == -1 && color != 0 && color != e.GetPlayerColor()
		g.BoardState = boardState
		g.refreshHint()
		// Spawn goroutine to avoid deadlock when called from main thread
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	e.OnGameEnd(func(outcome string) {
		g.finished = true
		g.BoardState = e.GetBoardState()
		g.ResetSelection()
		g.refreshHint()
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	if err := e.Connect(); err != nil {
		return err
	}

	g.BoardState = e.GetBoardState()
	g.refreshHint()
	return nil
}

// PlayMove plays a move at the given coordinates.
func (g *BoardUI) PlayMove(x, y int) {
	if g.finished || g.eng == nil {
		return
	}
	g.report(g.eng.PlayMove(x, y))
}

// PlayNotation plays a move typed as text. The error is also shown in the hint.
func (g *BoardUI) PlayNotation(token string) error {
	if g.finished || g.eng == nil {
		return engine.ErrGameOver
	}
	err := g.eng.PlayNotation(token)
	g.report(err)
	return err
}

// Pass passes the current turn.
func (g *BoardUI) Pass() {
	if g.finished || g.eng == nil {
		return
	}
	g.report(g.eng.Pass())
}

// Undo takes back moves until it is the human's turn again.
func (g *BoardUI) Undo() {
	if g.eng == nil {
		return
	}
	if err := g.eng.Undo(); err != nil {
		g.report(err)
		return
	}
	if !g.eng.IsMyTurn() {
		// Take back the AI's reply too.
		g.eng.Undo()
	}
	g.finished = false
	g.lastTurnPass = false
	g.BoardState = g.eng.GetBoardState()
	g.report(nil)
}

// Redo replays undone moves until it is the human's turn again.
func (g *BoardUI) Redo() {
	if g.eng == nil {
		return
	}
	if err := g.eng.Redo(); err != nil {
		g.report(err)
		return
	}
	if !g.eng.IsMyTurn() {
		// Replay the AI's reply too. At the end of the line the AI is
		// already thinking and this is refused.
		g.eng.Redo()
	}
	g.lastTurnPass = false
	g.BoardState = g.eng.GetBoardState()
	g.finished = g.BoardState.Finished()
	g.report(nil)
}

func (g *BoardUI) report(err error) {
	if err != nil {
		g.lastError = err.Error()
	} else {
		g.lastError = ""
	}
	g.refreshHint()
}

// SetOpponent shows the AI level name on the info panel.
func (g *BoardUI) SetOpponent(name string) {
	if g.infoPanel != nil {
		g.infoPanel.SetOpponent(name)
	}
}

// MoveInput returns the text entry for typed moves.
func (g *BoardUI) MoveInput() *MoveInput {
	return g.moveInput
}

// Close disconnects the engine.
func (g *BoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
	g.eng = nil
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // styleBoard
		tcell.PaletteColor(c.Theme.Colors.DarkColor),         // styleDark
		tcell.PaletteColor(c.Theme.Colors.LightColor),        // styleLight
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // styleBoardAlt
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // styleCursorFG
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // styleLastPlayed
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // styleCursorBG
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // styleLine
		tcell.PaletteColor(c.Theme.Colors.HintColor),         // styleHint
	}
	g.cfg = c
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil {
		var moves []record.Move
		if h, ok := g.eng.(historian); ok {
			moves = h.History()
		}
		g.infoPanel.SetBoardState(g.BoardState, moves)
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if g.finished {
		statusLine = fmt.Sprintf("  Game over · %s\n", g.BoardState.Outcome)
		controlsLine = "  u undo  r redo  q return to menu"
	} else {
		if g.lastError != "" {
			statusLine = fmt.Sprintf("  ! %s\n", g.lastError)
		} else if g.lastTurnPass {
			statusLine = "  ○ Opponent had no move and passed\n"
		}

		switch {
		case g.eng == nil:
		case !g.eng.IsMyTurn():
			turnLine = "  ◌ Thinking..."
		case len(g.BoardState.Legal) == 0:
			turnLine = "  No legal move, press p to pass"
		default:
			color := "Dark"
			if g.eng.GetPlayerColor() == 2 {
				color = "Light"
			}
			turnLine = fmt.Sprintf("  ● Your move (%s)", color)
		}

		controlsLine = "   hjkl/↑↓←→ move  ⏎ play  : type  p pass  u undo  r redo  f focus  q quit"
	}

	g.hint.SetText(statusLine + turnLine + controlsLine)
}

// drawCell draws one 2 character wide cell.
func drawCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	hCoord := int('A')
	w, h := ui.BoardState.Width(), ui.BoardState.Height()
	if ui.cfg.Theme.FullWidthLetters {
		hCoord = int('Ａ')
	}

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursorBG])
	lpHighlight := tcell.StyleDefault.Background(ui.styles[styleLastPlayed])

	for ix := 0; ix < w; ix++ {
		_style := style
		if ix == ui.selX {
			_style = highlight
		} else if ix == ui.BoardState.LastMove.X {
			_style = lpHighlight
		}
		s.SetContent(x+4+(ix*2), y+h+1, rune(hCoord+ix), nil, _style)
		s.SetContent(x+4+(ix*2)+1, y+h+1, ' ', nil, _style)
	}

	// Row 1 is the top row, matching the move notation.
	for iy := 0; iy < h; iy++ {
		_style := style
		if iy == ui.selY {
			_style = highlight
		} else if iy == ui.BoardState.LastMove.Y {
			_style = lpHighlight
		}
		s.SetContent(x+1, y+iy, ' ', nil, _style)
		s.SetContent(x+2, y+iy, rune('0'+(iy+1)%10), nil, _style)
	}
}
