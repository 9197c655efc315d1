package entity

import "github.com/gdamore/tcell/v2"

// Hero is the player's character.
type Hero struct {
	X, Y   int         // Current position in the dungeon
	HP     int         // Current hit points
	MaxHP  int         // Maximum hit points
	Attack int         // Attack power
	Symbol rune        // Display symbol
	Color  tcell.Color // Display color
}

// NewHero creates a hero at the given position.
func NewHero(x, y, maxHP, attack int, symbol rune, color tcell.Color) *Hero {
	return &Hero{
		X:      x,
		Y:      y,
		HP:     maxHP,
		MaxHP:  maxHP,
		Attack: attack,
		Symbol: symbol,
		Color:  color,
	}
}

// Move updates the hero position by the given delta.
func (h *Hero) Move(dx, dy int) {
	h.X += dx
	h.Y += dy
}

// Position returns the current x, y coordinates.
func (h *Hero) Position() (int, int) {
	return h.X, h.Y
}
