package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/gamedata"
)

// Enemy represents a hostile creature in the dungeon.
type Enemy struct {
	Def    *gamedata.EnemyDef // Kind definition
	X, Y   int                // Position in the dungeon
	HP     int                // Current hit points
	Attack int                // Rolled attack power
}

// NewEnemy creates an enemy of the given kind at the specified position.
func NewEnemy(def *gamedata.EnemyDef, x, y, attack int) *Enemy {
	return &Enemy{
		Def:    def,
		X:      x,
		Y:      y,
		HP:     def.HP,
		Attack: attack,
	}
}

// Position returns the enemy's current x, y coordinates.
func (e *Enemy) Position() (int, int) {
	return e.X, e.Y
}

// Symbol returns the display glyph.
func (e *Enemy) Symbol() rune {
	return e.Def.GlyphRune()
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	return e.Def.TCellColor()
}
