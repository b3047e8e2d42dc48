package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg ArkanoidConfig
	if err := yaml.Unmarshal(defaultArkanoidYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultArkanoidConfig() {
		t.Errorf("embedded default = %+v\nhardcoded default = %+v", cfg, DefaultArkanoidConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arkanoid.yaml")
	body := []byte("gameplay:\n  lives: 7\npaddle:\n  width: 12\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, want 7", cfg.Gameplay.Lives)
	}
	if cfg.Paddle.Width != 12 {
		t.Errorf("Paddle.Width = %v, want 12", cfg.Paddle.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load("/nonexistent/arkanoid.yaml"); err == nil {
		t.Error("Load() with missing explicit path should fail")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with unparsable explicit config should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantLives int
	}{
		{DifficultyEasy, 5},
		{DifficultyNormal, 3},
		{DifficultyHard, 2},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultArkanoidConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Gameplay.Lives != tt.wantLives {
				t.Errorf("Lives = %d, want %d", cfg.Gameplay.Lives, tt.wantLives)
			}
		})
	}

	// Hard must never shrink the paddle below playable width.
	cfg := DefaultArkanoidConfig()
	cfg.Paddle.Width = 4
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Paddle.Width < 3 {
		t.Errorf("Paddle.Width = %v, want >= 3", cfg.Paddle.Width)
	}
}
