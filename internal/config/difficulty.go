package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// spawnScaleForPreset returns the multiplier applied to the base spawn
// interval. Larger means slower spawning.
func spawnScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.6
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// "fixed" pins the spawn interval so it no longer shrinks with level;
// the other presets scale the base cadence.
func ApplyPreset(cfg *TenpairConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Spawn.Fixed = true
		return
	}
	cfg.Spawn.BaseSeconds *= spawnScaleForPreset(preset)
	if cfg.Spawn.MinSeconds > cfg.Spawn.BaseSeconds {
		cfg.Spawn.MinSeconds = cfg.Spawn.BaseSeconds
	}
}

// ValidPreset reports whether the preset name is recognized.
// The empty string is valid and means "no preset".
func ValidPreset(preset string) bool {
	switch DifficultyPreset(preset) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
