package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/dungeongen/internal/world"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dungeongen.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[map]
width = 60
max_rooms = 9

[entities]
enemies = 3

[game]
seed = 42

[logging]
level = "debug"
format = "json"
`)

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Map.Width != 60 || cfg.Map.Height != world.DefaultHeight {
		t.Errorf("map size = %dx%d, want 60x%d", cfg.Map.Width, cfg.Map.Height, world.DefaultHeight)
	}
	if cfg.Map.MinRooms != world.DefaultMinRooms || cfg.Map.MaxRooms != 9 {
		t.Errorf("room range = %d..%d, want %d..9", cfg.Map.MinRooms, cfg.Map.MaxRooms, world.DefaultMinRooms)
	}
	if cfg.Entities.Enemies != 3 || cfg.Entities.Swords != 2 || cfg.Entities.Potions != 10 {
		t.Errorf("entities = %+v, want enemies 3 with default swords and potions", cfg.Entities)
	}
	if cfg.Game.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Game.Seed)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Telemetry.ServiceName != "dungeongen" {
		t.Errorf("service name = %q, want default", cfg.Telemetry.ServiceName)
	}
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := Load(missing, true)
	if err != nil {
		t.Fatalf("Load(optional) error: %v", err)
	}
	if cfg.MapConfig() != world.DefaultConfig() {
		t.Errorf("MapConfig() = %+v, want defaults", cfg.MapConfig())
	}

	if _, err := Load(missing, false); err == nil {
		t.Error("Load(required) on a missing file should fail")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"min above max", "[map]\nmin_rooms = 7\nmax_rooms = 3\n"},
		{"zero width", "[map]\nwidth = 0\n"},
		{"negative potions", "[entities]\npotions = -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), false)
			if !errors.Is(err, world.ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "[map\nwidth = "), false)
	if err == nil {
		t.Fatal("Load() on malformed TOML should fail")
	}
	if errors.Is(err, world.ErrInvalidConfig) {
		t.Error("parse failures should not be reported as invalid config")
	}
}
