package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/ai"
	"reversi-local/config"
	"reversi-local/engine"
)

var boardSizes = []int{4, 6, 8}

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	boardSize   int
	playerColor int
	level       int
}

// NewGameSetup creates a new game setup form pre-filled from defaults.
func NewGameSetup(defaults config.GameDefaults, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:     onStart,
		onCancel:    onCancel,
		onColors:    onColors,
		boardSize:   defaults.BoardSize,
		playerColor: defaults.PlayerColor,
		level:       defaults.AILevel,
	}

	sizeOptions := make([]string, len(boardSizes))
	sizeIndex := len(boardSizes) - 1
	for i, n := range boardSizes {
		sizeOptions[i] = fmt.Sprintf("%dx%d", n, n)
		if n == setup.boardSize {
			sizeIndex = i
		}
	}
	colors := []string{"Dark (play second)", "Light (play first)"}
	levels := make([]string, len(ai.Levels))
	for i, name := range ai.Levels {
		levels[i] = fmt.Sprintf("%d %s", i+1, name)
	}

	form := tview.NewForm()

	form.AddDropDown("Board Size", sizeOptions, sizeIndex, func(option string, index int) {
		setup.boardSize = boardSizes[index]
	})

	form.AddDropDown("Your Color", colors, setup.playerColor-1, func(option string, index int) {
		setup.playerColor = index + 1 // 1=dark, 2=light
	})

	form.AddDropDown("Opponent", levels, setup.level-1, func(option string, index int) {
		setup.level = index + 1
	})

	form.AddButton("Start Game", func() {
		onStart(setup.Config())
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetLabelColor(MenuColors.Label)
	form.SetFieldBackgroundColor(MenuColors.CardBG)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Config returns the game configuration currently selected in the form.
func (s *GameSetupUI) Config() engine.GameConfig {
	return engine.GameConfig{
		BoardSize:   s.boardSize,
		PlayerColor: s.playerColor,
		AILevel:     s.level,
	}
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
