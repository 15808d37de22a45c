// Package config loads TOML settings for the presentation client.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/nacardin/rectshow/input"
	"github.com/nacardin/rectshow/parameter"
)

// Config holds the runtime settings. Missing keys keep their defaults.
type Config struct {
	// Width and Height set the pixel buffer geometry
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`

	// RefreshHz paces frame notifications
	RefreshHz int `toml:"refresh_hz"`

	// MoveStep is the keyboard relative-move distance in pixels
	MoveStep uint32 `toml:"move_step"`

	// Underflow selects "wrap" or "clamp" for moves past the origin
	Underflow string `toml:"underflow"`

	// Sound toggles the button-press click
	Sound bool `toml:"sound"`

	// LogFile receives diagnostics; empty discards them while the
	// screen is active
	LogFile string `toml:"log_file"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Width:     parameter.DefaultBufferWidth,
		Height:    parameter.DefaultBufferHeight,
		RefreshHz: parameter.DefaultRefreshHz,
		MoveStep:  parameter.DefaultMoveStep,
		Underflow: "wrap",
		Sound:     true,
	}
}

// Load reads the TOML file at path over the defaults. An empty path or
// a missing file yields the defaults; a malformed or invalid file is a
// setup fault.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the core cannot run with
func (c Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("buffer geometry must be non-zero, got %dx%d", c.Width, c.Height)
	}
	if c.RefreshHz < 1 || c.RefreshHz > 1000 {
		return fmt.Errorf("refresh_hz must be in [1,1000], got %d", c.RefreshHz)
	}
	if c.MoveStep == 0 {
		return fmt.Errorf("move_step must be non-zero")
	}
	if _, err := input.ParseUnderflowPolicy(c.Underflow); err != nil {
		return err
	}
	return nil
}

// Policy returns the parsed underflow policy. Call after Validate.
func (c Config) Policy() input.UnderflowPolicy {
	p, _ := input.ParseUnderflowPolicy(c.Underflow)
	return p
}
