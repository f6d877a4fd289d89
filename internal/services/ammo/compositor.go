package ammo

import (
	"math"

	"github.com/KirkDiggler/battle-ammo/internal/domain/combat"
	"github.com/KirkDiggler/battle-ammo/internal/domain/items"
)

// Per-shot hit probability bounds for the volley model
const (
	minShotChance = 0.01
	maxShotChance = 0.95
)

// Geometric accumulation modifiers: each additional shot contributes
// half the previous one's bonus; running low on stock halves (hit) or
// roughly thirds (crit) the ammo's sensitivity.
const (
	hitShotModifier      = 0.75
	hitLowStockModifier  = 0.5
	critShotModifier     = 0.5
	critLowStockModifier = 0.33
)

// Compose computes the full modifier set a selected ammo contributes
// to the given action. skill is nil for a basic attack; owned is the
// party's current stock of the ammo; baseHit is the combatant's base
// hit stat as a fraction.
func Compose(ammo *items.AmmoDefinition, weapon *items.WeaponDefinition, skill *items.SkillDefinition, owned int, baseHit float64) combat.AmmoModifiers {
	mods := combat.NoModifiers()
	mods.ItemID = ammo.ID
	mods.ElementID = ammo.ElementID
	mods.RangedHitBonus = float64(weapon.RangedHitPct) / 100
	mods.RangedCritBonus = float64(weapon.RangedCritPct) / 100

	if skill == nil || !skill.IsMultiShot() {
		mods.AttackBonus = ammo.AttackBonus
		mods.HitBonus = float64(ammo.HitBonusPct) / 100
		mods.CritBonus = float64(ammo.CritBonusPct) / 100
		mods.States = append([]items.StateChance(nil), ammo.States...)
		mods.Consume = 1
		return mods
	}

	shots := skill.MultiShot
	if owned < shots {
		shots = owned
	}
	if shots <= 0 {
		// A volley with no stock carries nothing
		return combat.NoModifiers()
	}

	// Chance the whole volley lands at least once: per-shot chance is
	// the clamped combined hit stat scaled by the skill's success rate
	p := clamp(baseHit+mods.RangedHitBonus+float64(ammo.HitBonusPct)/100, minShotChance, maxShotChance)
	p *= float64(skill.SuccessRate) / 100
	volley := 1 - math.Pow(1-p, float64(shots))

	// All-or-nothing volley damage, scaled by the landing chance
	mods.AttackBonus = int(math.Round(float64(shots*ammo.AttackBonus) * volley))

	// Each fired unit gets its own infliction roll at apply time
	if len(ammo.States) > 0 {
		mods.States = make([]items.StateChance, 0, len(ammo.States)*shots)
		for i := 0; i < shots; i++ {
			mods.States = append(mods.States, ammo.States...)
		}
	}

	lowStock := skill.LowStockThreshold > 0 && owned < skill.LowStockThreshold
	mods.HitBonus = geometricBonus(ammo.HitBonusPct, shots, hitShotModifier, hitLowStockModifier, lowStock)
	mods.CritBonus = geometricBonus(ammo.CritBonusPct, shots, critShotModifier, critLowStockModifier, lowStock)

	mods.Consume = shots
	return mods
}

// geometricBonus accumulates an ammo bonus over a volley: the first
// shot contributes a = bonus * modifier percent, every further shot
// half of the one before. The sum is a*(1-0.5^shots)/(1-0.5), strictly
// below the 2a limit for any finite volley.
func geometricBonus(bonusPct, shots int, normal, lowStock float64, isLowStock bool) float64 {
	if bonusPct <= 0 {
		return 0
	}

	modifier := normal
	if isLowStock {
		modifier = lowStock
	}

	a := float64(bonusPct) * modifier
	deltaPct := a * (1 - math.Pow(0.5, float64(shots))) / 0.5
	return deltaPct / 100
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
