// Package game runs the terminal level viewer.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/dungeongen/internal/config"
	"github.com/samdwyer/dungeongen/internal/entity"
	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/ui"
	"github.com/samdwyer/dungeongen/internal/world"
)

// ResolveSeed returns seed, or a time-based seed when it is 0.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// NewLevel generates a connected map and scatters entities on it. The same
// seed and config always produce the same level.
func NewLevel(ctx context.Context, cfg *config.Config, defs *gamedata.EntitiesFile, seed int64, log *zap.Logger) (*entity.Level, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.level")
	defer span.End()

	rng := rand.New(rand.NewSource(seed))

	grid, err := world.GenerateConnectedMap(ctx, cfg.MapConfig(), rng, log)
	if err != nil {
		return nil, fmt.Errorf("generate map: %w", err)
	}

	placement, err := entity.Scatter(ctx, grid, cfg.EntityConfig(), rng, log)
	if err != nil {
		return nil, fmt.Errorf("scatter entities: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("hero.start_x", placement.Hero.X),
		attribute.Int("hero.start_y", placement.Hero.Y),
	)

	return entity.Populate(grid, placement, defs, rng), nil
}

// Game holds the viewer state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      *config.Config
	defs     *gamedata.EntitiesFile
	log      *zap.Logger
	seed     int64
	level    *entity.Level
	running  bool
}

// New creates a new viewer on the terminal.
func New(cfg *config.Config, defs *gamedata.EntitiesFile, seed int64, log *zap.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		cfg:      cfg,
		defs:     defs,
		log:      log,
		seed:     seed,
		running:  true,
	}, nil
}

// Run executes the main loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.regenerate(ctx); err != nil {
		return err
	}

	for g.running {
		g.renderer.Render(g.level, g.status())

		// Handle input (blocking)
		if err := g.handleInput(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (g *Game) regenerate(ctx context.Context) error {
	level, err := NewLevel(ctx, g.cfg, g.defs, g.seed, g.log)
	if err != nil {
		return err
	}
	g.level = level
	g.log.Info("level ready",
		zap.Int64("seed", g.seed),
		zap.Int("enemies", len(level.Enemies)),
		zap.Int("pickups", len(level.Pickups)))
	return nil
}

func (g *Game) status() string {
	return fmt.Sprintf("seed %d  hp %d/%d  arrows: move  r: new level  q: quit",
		g.seed, g.level.Hero.HP, g.level.Hero.MaxHP)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(0, -1)
	case tcell.KeyDown:
		g.tryMove(0, 1)
	case tcell.KeyLeft:
		g.tryMove(-1, 0)
	case tcell.KeyRight:
		g.tryMove(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'r', 'R':
			g.seed++
			return g.regenerate(ctx)
		}
	}
	return nil
}

// tryMove moves the hero unless the target is a wall or an enemy.
func (g *Game) tryMove(dx, dy int) {
	x, y := g.level.Hero.X+dx, g.level.Hero.Y+dy
	if g.level.EnemyAt(x, y) != nil {
		return
	}
	g.level.TryMoveHero(dx, dy)
}
