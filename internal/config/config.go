// Package config handles game configuration loading and management.
package config

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Game     GameConfig     `yaml:"game"`
	Vehicle  VehicleConfig  `yaml:"vehicle"`
	Track    TrackConfig    `yaml:"track"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Quality    string `yaml:"quality"` // "low" or "high"
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	ShowFPS   bool    `yaml:"show_fps"`
	MouseLook bool    `yaml:"mouse_look"`
	LookSens  float32 `yaml:"look_sensitivity"`
}

// VehicleConfig holds vehicle handling tuning.
// Units are world units per simulation tick; the simulation runs at a
// fixed 60 ticks per second.
type VehicleConfig struct {
	Accel           float32 `yaml:"accel"`
	Decel           float32 `yaml:"decel"`
	MaxForwardSpeed float32 `yaml:"max_forward_speed"`
	MaxReverseSpeed float32 `yaml:"max_reverse_speed"`
	TurnRate        float32 `yaml:"turn_rate"`
	TurnGain        float32 `yaml:"turn_gain"`
	TurnDeadzone    float32 `yaml:"turn_deadzone"`
}

// TrackConfig holds track selection settings.
type TrackConfig struct {
	// File is a path to a YAML track definition. Empty uses the
	// built-in default track.
	File string `yaml:"file"`
}

// AudioConfig holds sound settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Quality:    "high",
		},
		Game: GameConfig{
			ShowFPS:   false,
			MouseLook: true,
			LookSens:  0.005,
		},
		Vehicle: VehicleConfig{
			Accel:           0.008,
			Decel:           0.004,
			MaxForwardSpeed: 0.3,
			MaxReverseSpeed: 0.15,
			TurnRate:        0.08,
			TurnGain:        0.18,
			TurnDeadzone:    0.01,
		},
		Track: TrackConfig{
			File: "",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
