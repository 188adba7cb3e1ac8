package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"

	"reversi-local/ai"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "etc"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"control rune", func(c *Config) { c.Theme.Symbols.DarkDisc = '\t' }},
		{"c1 rune", func(c *Config) { c.Theme.Symbols.Hint = 0x85 }},
		{"odd board", func(c *Config) { c.Game.BoardSize = 7 }},
		{"huge board", func(c *Config) { c.Game.BoardSize = 19 }},
		{"bad color", func(c *Config) { c.Game.PlayerColor = 3 }},
		{"bad level", func(c *Config) { c.Game.AILevel = 0 }},
		{"level past presets", func(c *Config) { c.Game.AILevel = len(ai.Levels) + 1 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig
		tt.mutate(&cfg)
		err := cfg.Validate()
		var invalid *InvalidConfig
		if !errors.As(err, &invalid) {
			t.Errorf("%s: expected InvalidConfig, got %v", tt.name, err)
		}
	}
}

func TestValidateAcceptsEveryLevel(t *testing.T) {
	for level := 1; level <= len(ai.Levels); level++ {
		cfg := DefaultConfig
		cfg.Game.AILevel = level
		if err := cfg.Validate(); err != nil {
			t.Errorf("level %d (%s): %v", level, ai.Levels[level-1], err)
		}
	}
}

func TestInitConfigWithoutFile(t *testing.T) {
	dir := isolate(t)
	cfg, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Game != DefaultConfig.Game {
		t.Fatalf("expected default game settings, got %+v", cfg.Game)
	}
	if !strings.HasPrefix(cfg.Log.File, filepath.Join(dir, "state")) {
		t.Fatalf("log file %q should live under the state dir", cfg.Log.File)
	}
}

func TestInitConfigReadsFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config", "reversi-local", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	data := `{"game": {"board_size": 6, "player_color": 2, "ai_level": 5}, "log": {"level": "debug", "file": "/tmp/x.log"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	want := GameDefaults{BoardSize: 6, PlayerColor: 2, AILevel: 5}
	if cfg.Game != want {
		t.Fatalf("expected %+v, got %+v", want, cfg.Game)
	}
	if cfg.Log.File != "/tmp/x.log" {
		t.Fatalf("expected configured log file, got %q", cfg.Log.File)
	}
	if cfg.Theme.Symbols != DefaultTheme.Symbols {
		t.Fatal("fields missing from the file should keep their defaults")
	}
}

func TestInitConfigBadFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config", "reversi-local", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"game": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := InitConfig(); err == nil || !strings.Contains(err.Error(), "parsing") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	cfg := DefaultConfig
	cfg.Game.AILevel = 4
	cfg.Theme.ShowHints = false
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if loaded.Game.AILevel != 4 || loaded.Theme.ShowHints {
		t.Fatalf("saved settings not reloaded: %+v", loaded)
	}
}
