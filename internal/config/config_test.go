package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.Quality != "high" {
		t.Errorf("expected quality 'high', got %s", cfg.Graphics.Quality)
	}

	if cfg.Vehicle.Accel != 0.008 {
		t.Errorf("expected accel 0.008, got %f", cfg.Vehicle.Accel)
	}
	if cfg.Vehicle.MaxForwardSpeed != 0.3 {
		t.Errorf("expected max forward speed 0.3, got %f", cfg.Vehicle.MaxForwardSpeed)
	}
	if cfg.Vehicle.MaxReverseSpeed != 0.15 {
		t.Errorf("expected max reverse speed 0.15, got %f", cfg.Vehicle.MaxReverseSpeed)
	}
	if cfg.Vehicle.TurnDeadzone != 0.01 {
		t.Errorf("expected turn deadzone 0.01, got %f", cfg.Vehicle.TurnDeadzone)
	}

	if cfg.Track.File != "" {
		t.Errorf("expected empty track file, got %s", cfg.Track.File)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  quality: low

game:
  show_fps: true

vehicle:
  accel: 0.01
  max_forward_speed: 0.5

track:
  file: tracks/oval.yaml

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true")
	}
	if cfg.Graphics.Quality != "low" {
		t.Errorf("expected quality 'low', got %s", cfg.Graphics.Quality)
	}
	if !cfg.Game.ShowFPS {
		t.Error("expected show_fps true")
	}
	if cfg.Vehicle.Accel != 0.01 {
		t.Errorf("expected accel 0.01, got %f", cfg.Vehicle.Accel)
	}
	if cfg.Vehicle.MaxForwardSpeed != 0.5 {
		t.Errorf("expected max forward speed 0.5, got %f", cfg.Vehicle.MaxForwardSpeed)
	}
	// Values not in the file keep their defaults
	if cfg.Vehicle.TurnGain != 0.18 {
		t.Errorf("expected default turn gain 0.18, got %f", cfg.Vehicle.TurnGain)
	}
	if cfg.Track.File != "tracks/oval.yaml" {
		t.Errorf("expected track file 'tracks/oval.yaml', got %s", cfg.Track.File)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	cfg.Vehicle.TurnRate = 0.05

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if loaded.Graphics.Width != 800 {
		t.Errorf("expected width 800 after reload, got %d", loaded.Graphics.Width)
	}
	if loaded.Vehicle.TurnRate != 0.05 {
		t.Errorf("expected turn rate 0.05 after reload, got %f", loaded.Vehicle.TurnRate)
	}
}
