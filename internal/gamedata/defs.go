package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// EnemyDef defines an enemy kind loaded from entities.yaml.
type EnemyDef struct {
	ID          string `yaml:"id"`           // Unique identifier (e.g., "goblin")
	Name        string `yaml:"name"`         // Display name
	Glyph       string `yaml:"glyph"`        // Single character for rendering
	Color       string `yaml:"color"`        // Hex color code
	HP          int    `yaml:"hp"`           // Base hit points
	AttackMin   int    `yaml:"attack_min"`   // Lowest rolled attack power
	AttackMax   int    `yaml:"attack_max"`   // Highest rolled attack power
	SpawnWeight int    `yaml:"spawn_weight"` // Relative spawn frequency (higher = more common)
}

// PickupDef defines an item lying on the floor.
type PickupDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Glyph       string `yaml:"glyph"`
	Color       string `yaml:"color"`
	AttackBonus int    `yaml:"attack_bonus"`
	Heal        int    `yaml:"heal"`
}

// HeroDef holds the hero's display and starting stats.
type HeroDef struct {
	Glyph  string `yaml:"glyph"`
	Color  string `yaml:"color"`
	MaxHP  int    `yaml:"max_hp"`
	Attack int    `yaml:"attack"`
}

// EntitiesFile represents the structure of entities.yaml.
type EntitiesFile struct {
	Enemies []EnemyDef  `yaml:"enemies"`
	Pickups []PickupDef `yaml:"pickups"`
	Hero    HeroDef     `yaml:"hero"`
}

// LoadEntities loads the embedded entities.yaml file.
func LoadEntities() (*EntitiesFile, error) {
	file, err := Load[EntitiesFile]("entities.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Enemies) == 0 {
		return nil, errors.New("no enemies defined in entities.yaml")
	}
	return &file, nil
}

// Pickup returns the pickup definition with the given ID, or nil if not found.
func (f *EntitiesFile) Pickup(id string) *PickupDef {
	for i := range f.Pickups {
		if f.Pickups[i].ID == id {
			return &f.Pickups[i]
		}
	}
	return nil
}

// glyphRune returns the first byte of a glyph, or '?' when empty.
func glyphRune(glyph string) rune {
	if len(glyph) == 0 {
		return '?'
	}
	return rune(glyph[0])
}

// colorOr parses a hex color, falling back when it is malformed.
func colorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune { return glyphRune(e.Glyph) }

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color { return colorOr(e.Color, tcell.ColorRed) }

// GlyphRune returns the glyph as a rune for rendering.
func (p *PickupDef) GlyphRune() rune { return glyphRune(p.Glyph) }

// TCellColor returns the color as a tcell.Color.
func (p *PickupDef) TCellColor() tcell.Color { return colorOr(p.Color, tcell.ColorWhite) }

// GlyphRune returns the glyph as a rune for rendering.
func (h *HeroDef) GlyphRune() rune { return glyphRune(h.Glyph) }

// TCellColor returns the color as a tcell.Color.
func (h *HeroDef) TCellColor() tcell.Color { return colorOr(h.Color, tcell.ColorYellow) }
