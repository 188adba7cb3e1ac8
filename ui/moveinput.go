package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// maxMoveText fits the longest coordinate token plus room for a typo.
const maxMoveText = 4

// MoveInput is a small text field for typing a move such as "d3".
type MoveInput struct {
	label    string
	text     string
	focused  bool
	cursor   int
	onSubmit func(string) error
}

// NewMoveInput creates a move input field. onSubmit receives the trimmed text;
// the field clears itself when it returns nil.
func NewMoveInput(label string, onSubmit func(string) error) *MoveInput {
	return &MoveInput{
		label:    label,
		onSubmit: onSubmit,
	}
}

// SetFocused sets the focus state.
func (k *MoveInput) SetFocused(focused bool) {
	k.focused = focused
}

// Focused reports whether the field takes key input.
func (k *MoveInput) Focused() bool {
	return k.focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (k *MoveInput) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyEscape:
		k.Clear()
		k.focused = false
		return true
	case tcell.KeyEnter:
		if k.onSubmit != nil && k.onSubmit(strings.TrimSpace(k.text)) == nil {
			k.Clear()
			k.focused = false
		}
		return true
	case tcell.KeyLeft:
		if k.cursor > 0 {
			k.cursor--
		}
		return true
	case tcell.KeyRight:
		if k.cursor < len(k.text) {
			k.cursor++
		}
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if k.cursor > 0 {
			k.text = k.text[:k.cursor-1] + k.text[k.cursor:]
			k.cursor--
		}
		return true
	case tcell.KeyDelete:
		if k.cursor < len(k.text) {
			k.text = k.text[:k.cursor] + k.text[k.cursor+1:]
		}
		return true
	case tcell.KeyRune:
		ch := event.Rune()
		isLetter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		if (isLetter || (ch >= '0' && ch <= '9')) && len(k.text) < maxMoveText {
			k.text = k.text[:k.cursor] + string(ch) + k.text[k.cursor:]
			k.cursor++
		}
		return true
	}
	return false
}

// Text returns the current contents.
func (k *MoveInput) Text() string {
	return k.text
}

// Clear empties the field.
func (k *MoveInput) Clear() {
	k.text = ""
	k.cursor = 0
}

// Draw renders the move input component.
// Returns the number of rows used.
func (k *MoveInput) Draw(screen tcell.Screen, x, y, width int) int {
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected).Background(MenuColors.CardBG)
	inputStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(tcell.PaletteColor(238))
	cursorStyle := tcell.StyleDefault.Foreground(MenuColors.CardBG).Background(MenuColors.Selected)

	col := x
	if k.focused {
		screen.SetContent(col, y, '▸', nil, selectedStyle)
	} else {
		screen.SetContent(col, y, ' ', nil, bgStyle)
	}
	col += 2

	// ◈ Move [ d3 ]
	screen.SetContent(col, y, '◈', nil, accentStyle)
	col += 2
	for _, ch := range k.label {
		screen.SetContent(col, y, ch, nil, labelStyle)
		col++
	}
	col += 2

	screen.SetContent(col, y, '[', nil, labelStyle)
	col++
	screen.SetContent(col, y, ' ', nil, inputStyle)
	col++

	inputStart := col
	for i, ch := range k.text {
		style := inputStyle
		if k.focused && i == k.cursor {
			style = cursorStyle
		}
		screen.SetContent(col, y, ch, nil, style)
		col++
	}
	if k.focused && k.cursor >= len(k.text) {
		screen.SetContent(col, y, ' ', nil, cursorStyle)
		col++
	}
	for col < inputStart+maxMoveText+1 && col < x+width-2 {
		screen.SetContent(col, y, ' ', nil, inputStyle)
		col++
	}
	screen.SetContent(col, y, ']', nil, labelStyle)

	return 1
}
