// Package config provides YAML-based game configuration loading and
// difficulty management for the tenpair platform.
package config

// TenpairConfig contains all tunable parameters for the ten-pair game.
type TenpairConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Levels LevelsConfig `yaml:"levels"`
	Spawn  SpawnConfig  `yaml:"spawn"`
}

// BoardConfig defines default dimensions and the accepted bounds for
// player-supplied dimensions.
type BoardConfig struct {
	Rows    int `yaml:"rows"`
	Cols    int `yaml:"cols"`
	MinRows int `yaml:"min_rows"`
	MaxRows int `yaml:"max_rows"`
	MinCols int `yaml:"min_cols"`
	MaxCols int `yaml:"max_cols"`
}

// LevelsConfig defines level progression parameters.
type LevelsConfig struct {
	Start         int `yaml:"start"`           // Initial level
	Max           int `yaml:"max"`             // Highest reachable level
	PairsPerLevel int `yaml:"pairs_per_level"` // Initial pairs = PairsPerLevel * level
}

// SpawnConfig defines the periodic pair-spawn cadence. The effective
// interval is BaseSeconds divided by the current level, floored at
// MinSeconds, so higher levels spawn faster.
type SpawnConfig struct {
	BaseSeconds float64 `yaml:"base_seconds"`
	MinSeconds  float64 `yaml:"min_seconds"`

	// Fixed pins the interval at BaseSeconds regardless of level.
	Fixed bool `yaml:"fixed"`
}

// IntervalSeconds returns the spawn interval for the given level.
func (s SpawnConfig) IntervalSeconds(level int) float64 {
	if s.Fixed || level <= 1 {
		return s.BaseSeconds
	}
	interval := s.BaseSeconds / float64(level)
	if interval < s.MinSeconds {
		return s.MinSeconds
	}
	return interval
}

// ClampDimensions restricts requested board dimensions to the configured
// bounds. Zero values fall back to the defaults.
func (b BoardConfig) ClampDimensions(rows, cols int) (int, int) {
	if rows == 0 {
		rows = b.Rows
	}
	if cols == 0 {
		cols = b.Cols
	}
	rows = clamp(rows, b.MinRows, b.MaxRows)
	cols = clamp(cols, b.MinCols, b.MaxCols)
	return rows, cols
}

// ClampLevel restricts a requested level to [1, Max]. Zero falls back to
// the configured start level.
func (l LevelsConfig) ClampLevel(level int) int {
	if level == 0 {
		level = l.Start
	}
	return clamp(level, 1, l.Max)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
