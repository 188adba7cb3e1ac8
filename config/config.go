package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"reversi-local/ai"
)

var (
	cfgFile = "reversi-local/config.json"
	logFile = "reversi-local/debug.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	DarkColor         int `json:"dark"`
	LightColor        int `json:"light"`
	LineColor         int `json:"line"`
	HintColor         int `json:"hint"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	DarkDisc    rune `json:"dark"`
	LightDisc   rune `json:"light"`
	BoardSquare rune `json:"board"`
	Cursor      rune `json:"cursor"`
	Hint        rune `json:"hint"`
}

type Theme struct {
	DrawDiscBackground       bool          `json:"draw_disc_bg"`
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	ShowHints                bool          `json:"show_hints"`
	FullWidthLetters         bool          `json:"fullwidth_letters"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameDefaults pre-fill the new game form.
type GameDefaults struct {
	BoardSize   int `json:"board_size"`
	PlayerColor int `json:"player_color"` // 1=dark, 2=light
	AILevel     int `json:"ai_level"`
}

// LogConfig controls the debug log. An empty File disables logging.
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameDefaults `json:"game"`
	Log   LogConfig    `json:"log"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if config.Log.File == "" && config.Log.Level != "disabled" {
		if path, err := xdg.StateFile(logFile); err == nil {
			config.Log.File = path
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.DarkDisc, c.Theme.Symbols.LightDisc, c.Theme.Symbols.BoardSquare, c.Theme.Symbols.Hint} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	switch c.Game.BoardSize {
	case 4, 6, 8:
	default:
		return &InvalidConfig{fmt.Sprintf("board size %d is not one of 4, 6, 8", c.Game.BoardSize)}
	}
	if c.Game.PlayerColor != 1 && c.Game.PlayerColor != 2 {
		return &InvalidConfig{fmt.Sprintf("player color %d must be 1 (dark) or 2 (light)", c.Game.PlayerColor)}
	}
	if c.Game.AILevel < 1 || c.Game.AILevel > len(ai.Levels) {
		return &InvalidConfig{fmt.Sprintf("AI level %d out of range 1-%d", c.Game.AILevel, len(ai.Levels))}
	}
	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
			return &InvalidConfig{fmt.Sprintf("log level %q is unknown", c.Log.Level)}
		}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return errors.Wrap(err, "locating config file")
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	if err = os.WriteFile(filePath, jsonData, perm); err != nil {
		return errors.Wrapf(err, "writing %s", filePath)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", filePath)
	}
	if err = json.Unmarshal(data, a); err != nil {
		return errors.Wrapf(err, "parsing %s", filePath)
	}
	return nil
}
