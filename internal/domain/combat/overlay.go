package combat

import (
	"github.com/KirkDiggler/battle-ammo/internal/domain/items"
)

// Inventory is the slice of the party inventory the overlay needs to
// commit its pending consumption.
type Inventory interface {
	Deduct(itemID, count int)
}

// AmmoOverlay is the per-combatant, per-action modifier state layered
// on top of base stats. Armed at action start, read during hit,
// element and apply checks, and cleared unconditionally at action end.
// Every query returns the base/zero value while unarmed.
//
// At most one overlay is armed per combatant at a time; Arm requires a
// prior Reset and the lifecycle coordinator guarantees that ordering.
type AmmoOverlay struct {
	armed     bool
	modifiers AmmoModifiers
}

// Arm stores the computed modifier set and marks the overlay active
func (o *AmmoOverlay) Arm(m AmmoModifiers) {
	o.armed = true
	o.modifiers = m
}

// Armed reports whether the overlay currently holds a modifier set
func (o *AmmoOverlay) Armed() bool {
	return o.armed
}

// ItemID returns the selected ammo item backing the overlay, 0 while unarmed
func (o *AmmoOverlay) ItemID() int {
	if !o.armed {
		return 0
	}
	return o.modifiers.ItemID
}

// AttackDelta returns the flat attack contribution
func (o *AmmoOverlay) AttackDelta() int {
	if !o.armed {
		return 0
	}
	return o.modifiers.AttackBonus
}

// HitDelta returns the combined ammo and ranged hit contribution as a fraction
func (o *AmmoOverlay) HitDelta() float64 {
	if !o.armed {
		return 0
	}
	return o.modifiers.HitBonus + o.modifiers.RangedHitBonus
}

// CritDelta returns the combined ammo and ranged crit contribution as a fraction
func (o *AmmoOverlay) CritDelta() float64 {
	if !o.armed {
		return 0
	}
	return o.modifiers.CritBonus + o.modifiers.RangedCritBonus
}

// ElementOverride returns the ammo's element, items.ElementNone while
// unarmed or when the ammo has none
func (o *AmmoOverlay) ElementOverride() int {
	if !o.armed {
		return items.ElementNone
	}
	return o.modifiers.ElementID
}

// States returns the state infliction pairs to roll on a hit, one
// entry per fired unit
func (o *AmmoOverlay) States() []items.StateChance {
	if !o.armed {
		return nil
	}
	return o.modifiers.States
}

// PendingConsumption returns the units awaiting deduction
func (o *AmmoOverlay) PendingConsumption() int {
	if !o.armed {
		return 0
	}
	return o.modifiers.Consume
}

// CommitConsumption deducts the pending units from the inventory and
// zeroes the count. Idempotent: a second call finds nothing pending.
func (o *AmmoOverlay) CommitConsumption(inv Inventory) {
	if !o.armed || o.modifiers.Consume <= 0 {
		return
	}

	inv.Deduct(o.modifiers.ItemID, o.modifiers.Consume)
	o.modifiers.Consume = 0
}

// VoidConsumption zeroes the pending count without deducting, used
// when the action misses
func (o *AmmoOverlay) VoidConsumption() {
	o.modifiers.Consume = 0
}

// Reset clears the modifier set and disarms the overlay. Idempotent.
func (o *AmmoOverlay) Reset() {
	o.armed = false
	o.modifiers = NoModifiers()
}
