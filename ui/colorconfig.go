package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/board"
	"reversi-local/config"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()
	saveErr   error

	selectedBoardColor int
	selectedAltColor   int
	editingAlt         bool // true = editing the checker color, false = editing the main felt color
}

type paletteEntry struct {
	code int
	name string
}

// Felt colors to choose from
var boardColors = []paletteEntry{
	{22, "Dark Green"},
	{28, "Green"},
	{29, "Sea Green"},
	{34, "Bright Green"},
	{64, "Olive"},
	{65, "Moss"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{94, "Saddle Brown"},
	{136, "Dark Brown"},
	{180, "Tan"},
	{236, "Dark Gray"},
	{240, "Gray"},
}

// Checker colors, a shade off the felt
var altColors = []paletteEntry{
	{22, "Dark Green"},
	{28, "Green"},
	{29, "Sea Green"},
	{35, "Jade"},
	{58, "Dark Olive"},
	{23, "Teal"},
	{18, "Dark Blue"},
	{130, "Dark Orange"},
	{137, "Light Brown"},
	{235, "Charcoal"},
	{238, "Slate"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                cfg,
		onDone:             onDone,
		selectedBoardColor: cfg.Theme.Colors.BoardColor,
		selectedAltColor:   cfg.Theme.Colors.BoardColorAlt,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	// Preview on highlight
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		entries := cc.entries()
		if index < 0 || index >= len(entries) {
			return
		}
		if cc.editingAlt {
			cc.selectedAltColor = entries[index].code
		} else {
			cc.selectedBoardColor = entries[index].code
		}
	})

	// Apply on enter
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingAlt {
			cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedAltColor
			cc.saveErr = cc.cfg.Save()
			cc.editingAlt = false
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
		cc.saveErr = cc.cfg.Save()
		onDone()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) entries() []paletteEntry {
	if cc.editingAlt {
		return altColors
	}
	return boardColors
}

func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedBoardColor
	cc.colorList.SetTitle(" Select Board Color (Tab: checker) ")
	if cc.editingAlt {
		current = cc.selectedAltColor
		cc.colorList.SetTitle(" Select Checker Color (Tab: board) ")
	}
	for i, c := range cc.entries() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.entries() {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const size = 6
	if width < 20 || height < size+4 {
		return x, y, width, height
	}

	felt := tcell.PaletteColor(cc.selectedBoardColor)
	feltAlt := tcell.PaletteColor(cc.selectedAltColor)
	lineColor := tcell.PaletteColor(cc.cfg.Theme.Colors.LineColor)
	discColors := map[board.Tile]tcell.Color{
		board.Dark:  tcell.PaletteColor(cc.cfg.Theme.Colors.DarkColor),
		board.Light: tcell.PaletteColor(cc.cfg.Theme.Colors.LightColor),
	}
	symbols := cc.cfg.Theme.Symbols

	// A few plies into a game, so both disc colors and some empties show.
	b := board.Reset(size)
	turn := board.Light
	for i := 0; i < 3; i++ {
		moves := b.LegalMoves(turn)
		if len(moves) == 0 {
			break
		}
		b, _ = b.Update(turn, moves[0].Coord, moves[0].Lines)
		turn = turn.Invert()
	}

	startX := x + 2
	startY := y + 1
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			bg := felt
			if (row+col)%2 == 1 {
				bg = feltAlt
			}
			style := tcell.StyleDefault.Background(bg).Foreground(lineColor)
			r := symbols.BoardSquare
			switch t := b.At(board.Coord{Col: col, Row: row}); t {
			case board.Dark:
				r = symbols.DarkDisc
				style = style.Foreground(discColors[t])
			case board.Light:
				r = symbols.LightDisc
				style = style.Foreground(discColors[t])
			}
			drawCell(screen, style, r, col, row, startX, startY)
		}
	}

	info := fmt.Sprintf("Board: %d  Checker: %d", cc.selectedBoardColor, cc.selectedAltColor)
	if cc.saveErr != nil {
		info = "Not saved: " + cc.saveErr.Error()
	}
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and checker color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingAlt = !cc.editingAlt
	cc.populateColorList()
}
