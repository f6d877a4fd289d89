package combat

import (
	"github.com/KirkDiggler/battle-ammo/internal/domain/items"
)

// AmmoModifiers is the full modifier set one selected ammo contributes
// to a single action. Computed once at action start and held by the
// combatant's overlay until the action ends.
type AmmoModifiers struct {
	ItemID          int     // selected ammo item
	AttackBonus     int     // flat attack delta
	HitBonus        float64 // hit rate delta, fraction
	CritBonus       float64 // crit rate delta, fraction
	RangedHitBonus  float64 // weapon's ranged hit delta, fraction
	RangedCritBonus float64 // weapon's ranged crit delta, fraction
	ElementID       int     // element override, items.ElementNone when absent
	States          []items.StateChance
	Consume         int // units deducted on a successful hit
}

// NoModifiers returns the empty modifier set
func NoModifiers() AmmoModifiers {
	return AmmoModifiers{ElementID: items.ElementNone}
}
