package ammo_test

import (
	"testing"

	"github.com/KirkDiggler/battle-ammo/internal/domain/items"
	"github.com/KirkDiggler/battle-ammo/internal/services/ammo"
	"github.com/stretchr/testify/assert"
)

func testArrow() *items.AmmoDefinition {
	return &items.AmmoDefinition{
		ID:           5,
		Name:         "Iron Arrow",
		Category:     "Arrow",
		AttackBonus:  8,
		HitBonusPct:  20,
		CritBonusPct: 5,
		ElementID:    items.ElementNone,
		States:       []items.StateChance{{StateID: 4, Chance: 30}},
	}
}

func testBow() *items.WeaponDefinition {
	return &items.WeaponDefinition{
		ID:            1,
		Name:          "Longbow",
		AmmoCategory:  "Arrow",
		RangedHitPct:  10,
		RangedCritPct: 5,
	}
}

func volleySkill(multiShot, threshold int) *items.SkillDefinition {
	return &items.SkillDefinition{
		ID:                11,
		Name:              "Arrow Rain",
		ConsumesAmmo:      true,
		StrictRate:        items.StrictRateNone,
		SuccessRate:       90,
		MultiShot:         multiShot,
		LowStockThreshold: threshold,
		ElementID:         items.ElementNone,
	}
}

func TestCompose_SingleShot(t *testing.T) {
	mods := ammo.Compose(testArrow(), testBow(), nil, 3, 0.5)

	assert.Equal(t, 5, mods.ItemID)
	assert.Equal(t, 8, mods.AttackBonus)
	assert.InDelta(t, 0.20, mods.HitBonus, 1e-9)
	assert.InDelta(t, 0.05, mods.CritBonus, 1e-9)
	assert.InDelta(t, 0.10, mods.RangedHitBonus, 1e-9)
	assert.InDelta(t, 0.05, mods.RangedCritBonus, 1e-9)
	assert.Equal(t, items.ElementNone, mods.ElementID)
	assert.Equal(t, []items.StateChance{{StateID: 4, Chance: 30}}, mods.States)
	assert.Equal(t, 1, mods.Consume)
}

func TestCompose_SingleShotSkillWithoutMultiShot(t *testing.T) {
	skill := volleySkill(0, 0)

	mods := ammo.Compose(testArrow(), testBow(), skill, 3, 0.5)

	// No multi-shot unit count configured means plain single-shot math
	assert.Equal(t, 8, mods.AttackBonus)
	assert.InDelta(t, 0.20, mods.HitBonus, 1e-9)
	assert.Equal(t, 1, mods.Consume)
}

func TestCompose_MultiShotVolleyDamage(t *testing.T) {
	// 5 units configured but only 3 owned: shots = 3.
	// p = clamp(0.5+0.1+0.2, 0.01, 0.95) * 0.9 = 0.72
	// P = 1 - 0.28^3 ≈ 0.9780
	// attack = round(3 * 8 * 0.9780) = 23
	mods := ammo.Compose(testArrow(), testBow(), volleySkill(5, 0), 3, 0.5)

	assert.Equal(t, 23, mods.AttackBonus)
	assert.Equal(t, 3, mods.Consume)
	assert.Len(t, mods.States, 3)
}

func TestCompose_MultiShotHitBonusGeometric(t *testing.T) {
	// No low-stock threshold: a = 20 * 0.75 = 15
	// delta = 15 * (1 - 0.5^3) / 0.5 = 26.25 percent
	mods := ammo.Compose(testArrow(), testBow(), volleySkill(5, 0), 3, 0.5)

	assert.InDelta(t, 0.2625, mods.HitBonus, 1e-9)
}

func TestCompose_MultiShotLowStockHalvesHitSensitivity(t *testing.T) {
	// Threshold 10 and only 3 owned: a = 20 * 0.5 = 10
	// delta = 10 * 0.875 / 0.5 = 17.5 percent
	mods := ammo.Compose(testArrow(), testBow(), volleySkill(5, 10), 3, 0.5)

	assert.InDelta(t, 0.175, mods.HitBonus, 1e-9)
}

func TestCompose_MultiShotCritBonus(t *testing.T) {
	normal := ammo.Compose(testArrow(), testBow(), volleySkill(5, 0), 3, 0.5)
	lowStock := ammo.Compose(testArrow(), testBow(), volleySkill(5, 10), 3, 0.5)

	// normal: a = 5 * 0.5 = 2.5; delta = 2.5 * 0.875 / 0.5 = 4.375 percent
	assert.InDelta(t, 0.04375, normal.CritBonus, 1e-9)
	// low stock: a = 5 * 0.33 = 1.65; delta = 1.65 * 0.875 / 0.5 = 2.8875 percent
	assert.InDelta(t, 0.028875, lowStock.CritBonus, 1e-9)
}

func TestCompose_ZeroHitBonusGivesZeroDelta(t *testing.T) {
	arrow := testArrow()
	arrow.HitBonusPct = 0
	arrow.CritBonusPct = 0

	mods := ammo.Compose(arrow, testBow(), volleySkill(5, 0), 3, 0.5)

	assert.Zero(t, mods.HitBonus)
	assert.Zero(t, mods.CritBonus)
}

func TestCompose_MultiShotAttackMonotonicInShots(t *testing.T) {
	previous := -1
	for owned := 1; owned <= 5; owned++ {
		mods := ammo.Compose(testArrow(), testBow(), volleySkill(5, 0), owned, 0.5)
		assert.GreaterOrEqual(t, mods.AttackBonus, previous, "owned=%d", owned)
		previous = mods.AttackBonus
	}
}

func TestCompose_GeometricBonusApproachesTwiceBaseFromBelow(t *testing.T) {
	// a = 20 * 0.75 = 15 percent, series limit 2a = 30 percent
	limit := 0.30

	previous := 0.0
	for shots := 1; shots <= 20; shots++ {
		mods := ammo.Compose(testArrow(), testBow(), volleySkill(shots, 0), shots, 0.5)
		assert.Less(t, mods.HitBonus, limit, "shots=%d", shots)
		assert.Greater(t, mods.HitBonus, previous, "shots=%d", shots)
		previous = mods.HitBonus
	}

	assert.InDelta(t, limit, previous, 1e-4)
}

func TestCompose_MultiShotWithNoStockCarriesNothing(t *testing.T) {
	mods := ammo.Compose(testArrow(), testBow(), volleySkill(5, 0), 0, 0.5)

	assert.Zero(t, mods.AttackBonus)
	assert.Zero(t, mods.HitBonus)
	assert.Zero(t, mods.Consume)
	assert.Empty(t, mods.States)
}

func TestCompose_ElementOverridePassesThrough(t *testing.T) {
	arrow := testArrow()
	arrow.ElementID = 3

	single := ammo.Compose(arrow, testBow(), nil, 3, 0.5)
	volley := ammo.Compose(arrow, testBow(), volleySkill(5, 0), 3, 0.5)

	assert.Equal(t, 3, single.ElementID)
	assert.Equal(t, 3, volley.ElementID)
}

func TestCompose_PerShotChanceIsClamped(t *testing.T) {
	arrow := testArrow()
	arrow.HitBonusPct = 500 // way past the cap

	skill := volleySkill(2, 0)
	skill.SuccessRate = 100

	// p clamps to 0.95: P = 1 - 0.05^2 = 0.9975
	// attack = round(2 * 8 * 0.9975) = 16
	mods := ammo.Compose(arrow, testBow(), skill, 2, 0.5)
	assert.Equal(t, 16, mods.AttackBonus)
}
