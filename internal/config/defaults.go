package config

import (
	_ "embed"
)

//go:embed defaults/tenpair.yaml
var defaultTenpairYAML []byte

// DefaultTenpairConfig returns the default ten-pair configuration.
// Used as a last-resort fallback if the embedded YAML cannot be parsed.
func DefaultTenpairConfig() TenpairConfig {
	return TenpairConfig{
		Board: BoardConfig{
			Rows:    5,
			Cols:    5,
			MinRows: 3,
			MaxRows: 20,
			MinCols: 3,
			MaxCols: 14,
		},
		Levels: LevelsConfig{
			Start:         1,
			Max:           10,
			PairsPerLevel: 3,
		},
		Spawn: SpawnConfig{
			BaseSeconds: 12,
			MinSeconds:  2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTenpairYAML
}
