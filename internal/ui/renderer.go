package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/entity"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Canvas is the drawing surface a Renderer paints on.
type Canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	Show()
}

// Renderer handles drawing a level to the screen.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Render draws the grid, pickups, enemies and hero, then a status line
// below the map.
func (r *Renderer) Render(level *entity.Level, status string) {
	r.canvas.Clear()

	grid := level.Grid
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			tile, err := grid.Get(x, y)
			if err != nil {
				continue
			}
			r.canvas.SetContent(x, y, tile.Rune(), tileStyle(tile))
		}
	}

	for _, p := range level.Pickups {
		r.canvas.SetContent(p.X, p.Y, p.Def.GlyphRune(), tcell.StyleDefault.Foreground(p.Def.TCellColor()))
	}
	for _, e := range level.Enemies {
		r.canvas.SetContent(e.X, e.Y, e.Symbol(), tcell.StyleDefault.Foreground(e.Color()))
	}

	heroStyle := tcell.StyleDefault.
		Foreground(level.Hero.Color).
		Bold(true)
	r.canvas.SetContent(level.Hero.X, level.Hero.Y, level.Hero.Symbol, heroStyle)

	r.renderMessage(status, grid.Height()+1)

	r.canvas.Show()
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

func (r *Renderer) renderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.canvas.SetContent(i, y, ch, style)
	}
}

// Glyphs renders the level as plain text, one row per line, with entity
// glyphs drawn over the tiles.
func Glyphs(level *entity.Level) string {
	grid := level.Grid
	rows := make([][]rune, grid.Height())
	for y := range rows {
		rows[y] = make([]rune, grid.Width())
		for x := range rows[y] {
			tile, _ := grid.Get(x, y)
			rows[y][x] = tile.Rune()
		}
	}

	put := func(x, y int, ch rune) {
		if grid.InBounds(x, y) {
			rows[y][x] = ch
		}
	}
	for _, p := range level.Pickups {
		put(p.X, p.Y, p.Def.GlyphRune())
	}
	for _, e := range level.Enemies {
		put(e.X, e.Y, e.Symbol())
	}
	put(level.Hero.X, level.Hero.Y, level.Hero.Symbol)

	out := make([]rune, 0, (grid.Width()+1)*grid.Height())
	for _, row := range rows {
		out = append(out, row...)
		out = append(out, '\n')
	}
	return string(out)
}
