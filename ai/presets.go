package ai

// Presets are the named opponents offered by the game, weakest first in Levels.
var Presets map[string]Config

// Levels lists preset names by strength. Level n (1-based) is Levels[n-1].
var Levels = []string{"goblin", "novice", "adept", "expert", "master"}

func init() {
	Presets = map[string]Config{
		// Plays uniformly at random.
		"goblin": {Pickyness: 0, Chaos: 1, Depth: 0, Weights: ZeroWeights},
		"novice": {Pickyness: 0.3, Chaos: 0.6, Depth: 1, Weights: PlainWeights},
		"adept":  {Pickyness: 0.6, Chaos: 0.4, Depth: 2, Weights: RadialWeights},
		"expert": {Pickyness: 0.8, Chaos: 0.2, Depth: 3, Weights: PeakWeights},
		"master": {Pickyness: 1, Chaos: 0, Depth: 4, Weights: PeakWeights},
	}
}

// Preset returns the named config.
func Preset(name string) (Config, bool) {
	cfg, ok := Presets[name]
	return cfg, ok
}

// Level returns the preset for a 1-based strength level, clamped to the valid range.
func Level(n int) Config {
	if n < 1 {
		n = 1
	}
	if n > len(Levels) {
		n = len(Levels)
	}
	return Presets[Levels[n-1]]
}
