package entity

import (
	"math/rand"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Pickup is an item lying on a floor cell.
type Pickup struct {
	Def  *gamedata.PickupDef
	X, Y int
}

// Level is a generated grid together with the entities standing on it.
type Level struct {
	Grid    *world.Grid
	Hero    *Hero
	Enemies []*Enemy
	Pickups []*Pickup
}

// Populate turns a placement into entities. Enemy kinds and attack powers are
// rolled after scattering, so they never disturb the layout for a seed.
func Populate(grid *world.Grid, p Placement, defs *gamedata.EntitiesFile, rng *rand.Rand) *Level {
	registry := gamedata.NewEnemyRegistry(defs.Enemies)

	level := &Level{
		Grid: grid,
		Hero: NewHero(p.Hero.X, p.Hero.Y, defs.Hero.MaxHP, defs.Hero.Attack,
			defs.Hero.GlyphRune(), defs.Hero.TCellColor()),
	}

	for _, pos := range p.Enemies {
		def := registry.SpawnRandom(rng)
		if def == nil {
			break
		}
		level.Enemies = append(level.Enemies, NewEnemy(def, pos.X, pos.Y, def.RollAttack(rng)))
	}

	level.Pickups = appendPickups(level.Pickups, defs.Pickup("sword"), p.Swords)
	level.Pickups = appendPickups(level.Pickups, defs.Pickup("potion"), p.Potions)

	return level
}

func appendPickups(pickups []*Pickup, def *gamedata.PickupDef, cells []world.Point) []*Pickup {
	if def == nil {
		return pickups
	}
	for _, pos := range cells {
		pickups = append(pickups, &Pickup{Def: def, X: pos.X, Y: pos.Y})
	}
	return pickups
}

// EnemyAt returns the enemy standing on (x, y), or nil.
func (l *Level) EnemyAt(x, y int) *Enemy {
	for _, e := range l.Enemies {
		if e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// TryMoveHero moves the hero by the delta when the target is floor.
func (l *Level) TryMoveHero(dx, dy int) bool {
	x, y := l.Hero.X+dx, l.Hero.Y+dy
	if !l.Grid.IsFloor(x, y) {
		return false
	}
	l.Hero.Move(dx, dy)
	return true
}
