package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette for the setup form and the move input, in the
// greens of the default board felt.
var MenuColors = struct {
	Border      tcell.Color
	CardBG      tcell.Color
	TitleAccent tcell.Color // the ◈ before a field label
	Label       tcell.Color
	Hint        tcell.Color
	Selected    tcell.Color // focus marker and text cursor
	ButtonBG    tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(29),  // sea green
	CardBG:      tcell.PaletteColor(234), // near black, like a dark disc
	TitleAccent: tcell.PaletteColor(114), // legal-move hint green
	Label:       tcell.PaletteColor(252),
	Hint:        tcell.PaletteColor(245),
	Selected:    tcell.PaletteColor(120), // bright green
	ButtonBG:    tcell.PaletteColor(22),  // felt checker
	ButtonText:  tcell.PaletteColor(255), // light disc
}
