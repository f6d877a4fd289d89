package testutils

import (
	"github.com/KirkDiggler/battle-ammo/internal/domain/combat"
	"github.com/KirkDiggler/battle-ammo/internal/domain/items"
)

// CreateTestLibrary builds the definition set most tests share:
// two arrow types, a bolt, a bow family with a shared stat profile,
// and the skills covering the multi-shot and strict-fallback paths.
func CreateTestLibrary() *items.Library {
	return items.NewLibrary(&items.LibraryConfig{
		Ammo: []*items.AmmoDefinition{
			{
				ID:           5,
				Name:         "Iron Arrow",
				Category:     "Arrow",
				AttackBonus:  8,
				HitBonusPct:  20,
				CritBonusPct: 5,
				ElementID:    items.ElementNone,
				AnimationID:  12,
				States:       []items.StateChance{{StateID: 4, Chance: 30}},
			},
			{
				ID:          6,
				Name:        "Flame Arrow",
				Category:    "Arrow",
				AttackBonus: 12,
				HitBonusPct: 10,
				ElementID:   3,
				AnimationID: 13,
			},
			{
				ID:          9,
				Name:        "Iron Bolt",
				Category:    "Bolt",
				AttackBonus: 10,
				ElementID:   items.ElementNone,
			},
		},
		Weapons: []*items.WeaponDefinition{
			{
				ID:            1,
				Name:          "Longbow",
				AmmoCategory:  "Arrow",
				RangedHitPct:  10,
				RangedCritPct: 5,
				AnimationID:   11,
			},
			{
				// Skin sharing the longbow's stat profile
				ID:              2,
				Name:            "Gilded Longbow",
				DefaultWeaponID: 1,
			},
			{
				ID:   3,
				Name: "Shortsword",
			},
		},
		Skills: []*items.SkillDefinition{
			{
				ID:           10,
				Name:         "Piercing Shot",
				ConsumesAmmo: true,
				StrictRate:   items.StrictRateNone,
				SuccessRate:  100,
				ElementID:    items.ElementNone,
			},
			{
				ID:                  11,
				Name:                "Arrow Rain",
				ConsumesAmmo:        true,
				StrictRate:          items.StrictRateNone,
				SuccessRate:         90,
				MultiShot:           5,
				LowStockThreshold:   10,
				LowStockAnimationID: 30,
				NoAmmoAnimationID:   31,
				ElementID:           items.ElementNone,
			},
			{
				ID:                12,
				Name:              "Snipe",
				StrictRate:        30,
				SuccessRate:       100,
				NoAmmoAnimationID: 31,
				ElementID:         items.ElementNone,
			},
		},
		Slots: map[string]int{
			"Arrow": 41,
			"Bolt":  42,
		},
	})
}

// CreateTestArcher creates a party combatant equipped with the longbow
func CreateTestArcher(id string) *combat.Combatant {
	return &combat.Combatant{
		ID:       id,
		Name:     "Archer",
		HitRate:  0.5,
		CritRate: 0.05,
		Attack:   20,
		MaxHP:    30,
		HP:       30,
		WeaponID: 1,
	}
}

// CreateTestMonster creates a hostile combatant
func CreateTestMonster(id string) *combat.Combatant {
	return &combat.Combatant{
		ID:      id,
		Name:    "Goblin",
		Hostile: true,
		HitRate: 0.4,
		Attack:  5,
		MaxHP:   12,
		HP:      12,
	}
}
