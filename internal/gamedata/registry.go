package gamedata

import "math/rand"

// EnemyRegistry holds enemy definitions and picks kinds by spawn weight.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	totalWeight := 0
	for _, e := range enemies {
		totalWeight += e.SpawnWeight
	}
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// SpawnRandom selects an enemy definition using weighted probability.
// Enemies with higher spawn_weight are more likely to be selected.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}

	return &r.enemies[len(r.enemies)-1]
}

// RollAttack draws an attack power within the definition's inclusive range.
func (e *EnemyDef) RollAttack(rng *rand.Rand) int {
	if e.AttackMax <= e.AttackMin {
		return e.AttackMin
	}
	return e.AttackMin + rng.Intn(e.AttackMax-e.AttackMin+1)
}

// Count returns the number of enemy kinds in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}
