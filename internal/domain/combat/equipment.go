package combat

import (
	"github.com/KirkDiggler/battle-ammo/internal/domain/items"
)

// BattleEquipment is a combatant's per-encounter working copy of their
// effective weapon, paired with a pristine copy restored at overlay
// reset. Both are owned value copies; the loaded definition is never
// mutated.
type BattleEquipment struct {
	working  items.WeaponDefinition
	pristine items.WeaponDefinition
}

// NewBattleEquipment snapshots the effective weapon definition
func NewBattleEquipment(def *items.WeaponDefinition) *BattleEquipment {
	if def == nil {
		return nil
	}
	return &BattleEquipment{
		working:  *def,
		pristine: *def,
	}
}

// Weapon returns the working weapon copy
func (e *BattleEquipment) Weapon() *items.WeaponDefinition {
	return &e.working
}

// SetAnimation overrides the working copy's attack animation for the
// current action
func (e *BattleEquipment) SetAnimation(animationID int) {
	e.working.AnimationID = animationID
}

// Restore resets the working copy back to the pristine snapshot.
// Safe to call repeatedly.
func (e *BattleEquipment) Restore() {
	e.working = e.pristine
}
