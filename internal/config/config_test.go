package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := DefaultTenpairConfig()
	if cfg.Board != want.Board {
		t.Errorf("Board config = %+v, want %+v", cfg.Board, want.Board)
	}
	if cfg.Levels != want.Levels {
		t.Errorf("Levels config = %+v, want %+v", cfg.Levels, want.Levels)
	}
	if cfg.Spawn != want.Spawn {
		t.Errorf("Spawn config = %+v, want %+v", cfg.Spawn, want.Spawn)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("board:\n  rows: 8\n  cols: 6\n  min_rows: 3\n  max_rows: 20\n  min_cols: 3\n  max_cols: 14\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error = %v", path, err)
	}
	if cfg.Board.Rows != 8 || cfg.Board.Cols != 6 {
		t.Errorf("Board = %dx%d, want 8x6", cfg.Board.Rows, cfg.Board.Cols)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestSpawnInterval(t *testing.T) {
	s := SpawnConfig{BaseSeconds: 12, MinSeconds: 2}

	tests := []struct {
		level int
		want  float64
	}{
		{1, 12},
		{2, 6},
		{3, 4},
		{6, 2},
		{10, 2}, // floored at MinSeconds
	}

	for _, tc := range tests {
		if got := s.IntervalSeconds(tc.level); got != tc.want {
			t.Errorf("IntervalSeconds(%d) = %v, want %v", tc.level, got, tc.want)
		}
	}

	fixed := SpawnConfig{BaseSeconds: 12, MinSeconds: 2, Fixed: true}
	if got := fixed.IntervalSeconds(7); got != 12 {
		t.Errorf("fixed IntervalSeconds(7) = %v, want 12", got)
	}
}

func TestClampDimensions(t *testing.T) {
	b := DefaultTenpairConfig().Board

	tests := []struct {
		name               string
		rows, cols         int
		wantRows, wantCols int
	}{
		{"zero uses defaults", 0, 0, 5, 5},
		{"in range", 10, 8, 10, 8},
		{"below minimum", 1, 2, 3, 3},
		{"above maximum", 50, 50, 20, 14},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows, cols := b.ClampDimensions(tc.rows, tc.cols)
			if rows != tc.wantRows || cols != tc.wantCols {
				t.Errorf("ClampDimensions(%d, %d) = (%d, %d), want (%d, %d)",
					tc.rows, tc.cols, rows, cols, tc.wantRows, tc.wantCols)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultTenpairConfig()

	easy := base
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Spawn.BaseSeconds <= base.Spawn.BaseSeconds {
		t.Error("easy preset should slow down spawning")
	}

	hard := base
	ApplyPreset(&hard, DifficultyHard)
	if hard.Spawn.BaseSeconds >= base.Spawn.BaseSeconds {
		t.Error("hard preset should speed up spawning")
	}

	fixed := base
	ApplyPreset(&fixed, DifficultyFixed)
	if !fixed.Spawn.Fixed {
		t.Error("fixed preset should pin the spawn interval")
	}
	if fixed.Spawn.BaseSeconds != base.Spawn.BaseSeconds {
		t.Error("fixed preset should not rescale the base interval")
	}
}

func TestValidPreset(t *testing.T) {
	for _, ok := range []string{"", "easy", "normal", "hard", "fixed"} {
		if !ValidPreset(ok) {
			t.Errorf("ValidPreset(%q) = false, want true", ok)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("ValidPreset(\"nightmare\") = true, want false")
	}
}
