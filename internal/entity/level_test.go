package entity

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/world"
)

func TestPopulate(t *testing.T) {
	defs, err := gamedata.LoadEntities()
	if err != nil {
		t.Fatal(err)
	}

	g := gridWithFloor(t, 6, 3,
		world.Point{X: 1, Y: 1}, world.Point{X: 2, Y: 1}, world.Point{X: 3, Y: 1},
		world.Point{X: 4, Y: 1},
	)
	p := Placement{
		Hero:    world.Point{X: 1, Y: 1},
		Enemies: []world.Point{{X: 2, Y: 1}},
		Swords:  []world.Point{{X: 3, Y: 1}},
		Potions: []world.Point{{X: 4, Y: 1}},
	}

	level := Populate(g, p, defs, rand.New(rand.NewSource(1)))

	if x, y := level.Hero.Position(); x != 1 || y != 1 {
		t.Errorf("Hero at (%d,%d), want (1,1)", x, y)
	}
	if level.Hero.HP != defs.Hero.MaxHP {
		t.Errorf("Hero HP = %d, want %d", level.Hero.HP, defs.Hero.MaxHP)
	}
	if level.Hero.Symbol != defs.Hero.GlyphRune() || level.Hero.Color != defs.Hero.TCellColor() {
		t.Errorf("Hero drawn as %q %v, want %q %v",
			level.Hero.Symbol, level.Hero.Color, defs.Hero.GlyphRune(), defs.Hero.TCellColor())
	}

	if len(level.Enemies) != 1 {
		t.Fatalf("got %d enemies, want 1", len(level.Enemies))
	}
	e := level.Enemies[0]
	if e.Def == nil || e.Attack < e.Def.AttackMin || e.Attack > e.Def.AttackMax {
		t.Errorf("enemy %+v has attack outside its range", e)
	}
	if level.EnemyAt(2, 1) != e || level.EnemyAt(3, 1) != nil {
		t.Error("EnemyAt() lookup mismatch")
	}

	if len(level.Pickups) != 2 {
		t.Fatalf("got %d pickups, want 2", len(level.Pickups))
	}
	if level.Pickups[0].Def.ID != "sword" || level.Pickups[1].Def.ID != "potion" {
		t.Errorf("pickups = %s, %s; want sword, potion", level.Pickups[0].Def.ID, level.Pickups[1].Def.ID)
	}
}

func TestLevelTryMoveHero(t *testing.T) {
	g := gridWithFloor(t, 4, 3, world.Point{X: 1, Y: 1}, world.Point{X: 2, Y: 1})
	level := &Level{Grid: g, Hero: NewHero(1, 1, 10, 1, '@', tcell.ColorYellow)}

	if level.TryMoveHero(0, -1) {
		t.Error("TryMoveHero() into a wall succeeded")
	}
	if !level.TryMoveHero(1, 0) {
		t.Error("TryMoveHero() onto floor failed")
	}
	if x, y := level.Hero.Position(); x != 2 || y != 1 {
		t.Errorf("Hero at (%d,%d), want (2,1)", x, y)
	}
	if level.TryMoveHero(5, 0) {
		t.Error("TryMoveHero() off the grid succeeded")
	}
}
