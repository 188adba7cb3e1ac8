package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawDiscBackground:       false,
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		ShowHints:                true,
		FullWidthLetters:         false,
		Colors: ConfigColors{
			BoardColor:        28,
			BoardColorAlt:     22,
			DarkColor:         232,
			LightColor:        255,
			LineColor:         22,
			HintColor:         114,
			CursorColorFG:     2,
			CursorColorBG:     4,
			LastPlayedColorBG: 130,
		},
		Symbols: ConfigSymbols{
			DarkDisc:    '●',
			LightDisc:   '●',
			BoardSquare: '·',
			Cursor:      '·',
			Hint:        '∙',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			BoardSize:   8,
			PlayerColor: 1,
			AILevel:     3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
