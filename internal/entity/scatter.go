// Package entity places the hero, enemies and pickups on a generated level.
package entity

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/world"
)

// HeroFallback is where the hero stands when the grid has no floor at all.
var HeroFallback = world.Point{X: 1, Y: 1}

// Config holds how many entities of each kind to scatter.
type Config struct {
	Enemies int
	Swords  int
	Potions int
}

// DefaultConfig returns ten enemies, two swords and ten potions.
func DefaultConfig() Config {
	return Config{Enemies: 10, Swords: 2, Potions: 10}
}

// Validate reports negative counts.
func (c Config) Validate() error {
	if c.Enemies < 0 || c.Swords < 0 || c.Potions < 0 {
		return fmt.Errorf("%w: entity counts enemies=%d swords=%d potions=%d",
			world.ErrInvalidConfig, c.Enemies, c.Swords, c.Potions)
	}
	return nil
}

// Placement holds the initial coordinates of every scattered entity.
// No two coordinates are equal, and all of them are floor cells unless
// HeroFallback is set.
type Placement struct {
	Hero         world.Point
	HeroFallback bool
	Enemies      []world.Point
	Swords       []world.Point
	Potions      []world.Point
}

// pool is a shuffled set of unclaimed floor cells.
type pool []world.Point

// newPool lists the grid's floor cells and shuffles them with Fisher-Yates.
func newPool(grid *world.Grid, rng world.Rand) pool {
	cells := grid.FloorCells()
	for i := len(cells) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// claim removes and returns the last cell.
func (p *pool) claim() (world.Point, bool) {
	n := len(*p)
	if n == 0 {
		return world.Point{}, false
	}
	cell := (*p)[n-1]
	*p = (*p)[:n-1]
	return cell, true
}

// claimN removes up to n cells.
func (p *pool) claimN(n int) []world.Point {
	cells := make([]world.Point, 0, min(n, len(*p)))
	for i := 0; i < n; i++ {
		cell, ok := p.claim()
		if !ok {
			break
		}
		cells = append(cells, cell)
	}
	return cells
}

// Scatter assigns distinct floor cells to the hero, then enemies, swords and
// potions, in that order. Kinds that run out of cells get fewer entities.
func Scatter(ctx context.Context, grid *world.Grid, cfg Config, rng world.Rand, log *zap.Logger) (Placement, error) {
	tracer := telemetry.Tracer("entity")
	_, span := tracer.Start(ctx, "entity.scatter")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		return Placement{}, err
	}

	cells := newPool(grid, rng)
	floor := len(cells)

	var p Placement
	hero, ok := cells.claim()
	if ok {
		p.Hero = hero
	} else {
		p.Hero = HeroFallback
		p.HeroFallback = true
		log.Warn("no floor cells, hero placed at fallback",
			zap.Int("x", HeroFallback.X),
			zap.Int("y", HeroFallback.Y))
	}

	p.Enemies = cells.claimN(cfg.Enemies)
	p.Swords = cells.claimN(cfg.Swords)
	p.Potions = cells.claimN(cfg.Potions)

	for _, kind := range []struct {
		name      string
		want, got int
	}{
		{"enemies", cfg.Enemies, len(p.Enemies)},
		{"swords", cfg.Swords, len(p.Swords)},
		{"potions", cfg.Potions, len(p.Potions)},
	} {
		if kind.got < kind.want {
			log.Warn("ran out of floor cells",
				zap.String("kind", kind.name),
				zap.Int("requested", kind.want),
				zap.Int("placed", kind.got))
		}
	}

	span.SetAttributes(
		attribute.Int("entity.floor_cells", floor),
		attribute.Bool("entity.hero_fallback", p.HeroFallback),
		attribute.Int("entity.enemies", len(p.Enemies)),
		attribute.Int("entity.swords", len(p.Swords)),
		attribute.Int("entity.potions", len(p.Potions)),
	)

	return p, nil
}

// All returns every placed coordinate, hero first.
func (p Placement) All() []world.Point {
	all := make([]world.Point, 0, 1+len(p.Enemies)+len(p.Swords)+len(p.Potions))
	all = append(all, p.Hero)
	all = append(all, p.Enemies...)
	all = append(all, p.Swords...)
	all = append(all, p.Potions...)
	return all
}
