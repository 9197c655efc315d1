package world

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/dungeongen/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 30
	DefaultHeight = 18

	DefaultMinRooms = 4
	DefaultMaxRooms = 5
)

// Config holds the map generation settings.
type Config struct {
	Width    int
	Height   int
	MinRooms int
	MaxRooms int
}

// DefaultConfig returns the standard 30x18 layout with 4-5 rooms.
func DefaultConfig() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		MinRooms: DefaultMinRooms,
		MaxRooms: DefaultMaxRooms,
	}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.MinRooms < 0 {
		return fmt.Errorf("%w: min rooms %d is negative", ErrInvalidConfig, c.MinRooms)
	}
	if c.MinRooms > c.MaxRooms {
		return fmt.Errorf("%w: min rooms %d exceeds max rooms %d", ErrInvalidConfig, c.MinRooms, c.MaxRooms)
	}
	return nil
}

// Dungeon is the result of one generation pass.
type Dungeon struct {
	Grid  *Grid
	Rooms []Room

	// Components is the number of disjoint floor regions before repair.
	Components int
}

// GenerateConnectedMap builds a grid of rooms and corridors whose floor cells
// form a single 4-connected region.
func GenerateConnectedMap(ctx context.Context, cfg Config, rng Rand, log *zap.Logger) (*Grid, error) {
	d, err := Generate(ctx, cfg, rng, log)
	if err != nil {
		return nil, err
	}
	return d.Grid, nil
}

// Generate runs the full pipeline: place rooms, connect them along a minimum
// spanning tree plus a few loops, then repair any leftover disconnection.
func Generate(ctx context.Context, cfg Config, rng Rand, log *zap.Logger) (*Dungeon, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	rooms, placeStats, err := PlaceRooms(grid, rng, cfg.MinRooms, cfg.MaxRooms)
	if err != nil {
		return nil, fmt.Errorf("place rooms: %w", err)
	}
	if len(rooms) < placeStats.Target {
		log.Warn("placed fewer rooms than requested",
			zap.Int("placed", len(rooms)),
			zap.Int("target", placeStats.Target),
			zap.Int("min_rooms", cfg.MinRooms),
			zap.Int("width", cfg.Width),
			zap.Int("height", cfg.Height))
	}

	stats, err := ConnectRooms(grid, rng, rooms)
	if err != nil {
		return nil, fmt.Errorf("connect rooms: %w", err)
	}

	components, err := RepairConnectivity(grid, rng)
	if err != nil {
		return nil, fmt.Errorf("repair connectivity: %w", err)
	}

	log.Debug("dungeon generated",
		zap.Int("rooms", len(rooms)),
		zap.Int("tree_edges", stats.TreeEdges),
		zap.Int("extra_edges", stats.ExtraEdges),
		zap.Int("components_repaired", max(components-1, 0)))

	span.SetAttributes(
		attribute.Int("dungeon.width", cfg.Width),
		attribute.Int("dungeon.height", cfg.Height),
		attribute.Int("dungeon.room_target", placeStats.Target),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int("dungeon.tree_edges", stats.TreeEdges),
		attribute.Int("dungeon.extra_edges", stats.ExtraEdges),
		attribute.Int("dungeon.components_before_repair", components),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return &Dungeon{
		Grid:       grid,
		Rooms:      rooms,
		Components: components,
	}, nil
}
