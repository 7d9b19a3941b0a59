package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/curvekit/pathfollow"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the viewer settings. It describes how followers move and how
// the scene is shown, never the paths themselves.
type Config struct {
	FPS               int          `toml:"fps"`
	Duration          float64      `toml:"duration"`
	SamplesPerSegment int          `toml:"samples_per_segment"`
	Loop              bool         `toml:"loop"`
	Reverse           bool         `toml:"reverse"`
	Uniform           bool         `toml:"uniform"`
	SpeedKeys         []SpeedKey   `toml:"speed_keys"`
	Camera            CameraConfig `toml:"camera"`
}

// SpeedKey is a key of the followers' speed curve. Tangents are smoothed.
type SpeedKey struct {
	Time  float64 `toml:"time"`
	Value float64 `toml:"value"`
}

type CameraConfig struct {
	Distance float64 `toml:"distance"`
	Height   float64 `toml:"height"`
	// Spin is the camera's orbit speed in radians per second.
	Spin float64 `toml:"spin"`
}

func DefaultConfig() Config {
	return Config{
		FPS:               30,
		Duration:          pathfollow.DefaultDuration,
		SamplesPerSegment: pathfollow.DefaultSamplesPerSegment,
		Loop:              true,
		Uniform:           true,
		Camera: CameraConfig{
			Distance: 9,
			Height:   4,
			Spin:     0.2,
		},
	}
}

// LoadConfig reads a TOML file on top of the defaults. Unknown keys are an
// error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			keys := make([]string, len(strict.Errors))
			for i, e := range strict.Errors {
				keys[i] = strings.Join(e.Key(), ".")
			}
			return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot run with. Values the library
// clamps on its own, like the duration, are left alone.
func (cfg Config) Validate() error {
	if cfg.FPS <= 0 || cfg.FPS > 240 {
		return fmt.Errorf("fps must be in (0, 240], got %d", cfg.FPS)
	}
	if cfg.Camera.Distance <= 0 {
		return fmt.Errorf("camera distance must be positive, got %g", cfg.Camera.Distance)
	}
	return nil
}

// SpeedProfile returns the configured speed curve, or a constant 1 if no
// keys are set.
func (cfg Config) SpeedProfile() pathfollow.SpeedProfile {
	if len(cfg.SpeedKeys) == 0 {
		return pathfollow.ConstantSpeedCurve(1)
	}
	keys := make([]pathfollow.Keyframe, len(cfg.SpeedKeys))
	for i, k := range cfg.SpeedKeys {
		keys[i] = pathfollow.Keyframe{Time: k.Time, Value: k.Value}
	}
	c := pathfollow.NewSpeedCurve(keys...)
	c.SmoothTangents()
	return c
}

// Apply configures a follower.
func (cfg Config) Apply(f *pathfollow.Follower) {
	f.SetDuration(cfg.Duration)
	f.Loop = cfg.Loop
	f.Reverse = cfg.Reverse
	f.Uniform = cfg.Uniform
	f.Speed = cfg.SpeedProfile()
}
