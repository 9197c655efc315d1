// Package config loads dungeongen settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/samdwyer/dungeongen/internal/entity"
	"github.com/samdwyer/dungeongen/internal/world"
)

type Config struct {
	Map       MapConfig       `toml:"map"`
	Entities  EntitiesConfig  `toml:"entities"`
	Game      GameConfig      `toml:"game"`
	Logging   LoggingConfig   `toml:"logging"`
	Telemetry TelemetryConfig `toml:"telemetry"`
}

type MapConfig struct {
	Width    int `toml:"width"`
	Height   int `toml:"height"`
	MinRooms int `toml:"min_rooms"`
	MaxRooms int `toml:"max_rooms"`
}

type EntitiesConfig struct {
	Enemies int `toml:"enemies"`
	Swords  int `toml:"swords"`
	Potions int `toml:"potions"`
}

type GameConfig struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `toml:"seed"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type TelemetryConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
}

// Load reads the config at path over the defaults. When optional is set a
// missing file is not an error and the defaults are returned.
func Load(path string, optional bool) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the standard 30x18 level with ten enemies.
func Defaults() *Config {
	return &Config{
		Map: MapConfig{
			Width:    world.DefaultWidth,
			Height:   world.DefaultHeight,
			MinRooms: world.DefaultMinRooms,
			MaxRooms: world.DefaultMaxRooms,
		},
		Entities: EntitiesConfig{
			Enemies: 10,
			Swords:  2,
			Potions: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			ServiceName: "dungeongen",
		},
	}
}

// Validate checks the map and entity sections.
func (c *Config) Validate() error {
	if err := c.MapConfig().Validate(); err != nil {
		return err
	}
	return c.EntityConfig().Validate()
}

// MapConfig converts the [map] section for world generation.
func (c *Config) MapConfig() world.Config {
	return world.Config{
		Width:    c.Map.Width,
		Height:   c.Map.Height,
		MinRooms: c.Map.MinRooms,
		MaxRooms: c.Map.MaxRooms,
	}
}

// EntityConfig converts the [entities] section for scattering.
func (c *Config) EntityConfig() entity.Config {
	return entity.Config{
		Enemies: c.Entities.Enemies,
		Swords:  c.Entities.Swords,
		Potions: c.Entities.Potions,
	}
}
