package ammo_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/battle-ammo/internal/dice"
	"github.com/KirkDiggler/battle-ammo/internal/domain/combat"
	"github.com/KirkDiggler/battle-ammo/internal/domain/items"
	"github.com/KirkDiggler/battle-ammo/internal/repositories/slots"
	"github.com/KirkDiggler/battle-ammo/internal/services/ammo"
	"github.com/KirkDiggler/battle-ammo/internal/services/party"
	"github.com/KirkDiggler/battle-ammo/internal/testutils"
	"github.com/stretchr/testify/suite"
)

type lifecycleSuite struct {
	suite.Suite
	ctx     context.Context
	library *items.Library
	party   party.Service
	roller  *dice.MockRoller
	svc     ammo.Service

	encounter *combat.Encounter
	archer    *combat.Combatant
	monster   *combat.Combatant
}

func (s *lifecycleSuite) SetupTest() {
	s.ctx = context.Background()
	s.library = testutils.CreateTestLibrary()
	s.roller = dice.NewMockRoller()

	s.party = party.NewService(&party.ServiceConfig{
		Library: s.library,
		Stacks:  map[int]int{5: 3},
	})

	s.svc = ammo.NewService(&ammo.ServiceConfig{
		SlotRepository: slots.NewInMemoryRepository(),
		Party:          s.party,
		Library:        s.library,
		DiceRoller:     s.roller,
	})

	s.archer = testutils.CreateTestArcher("archer-1")
	s.monster = testutils.CreateTestMonster("goblin-1")
	s.encounter = &combat.Encounter{
		ID:         "enc-1",
		Name:       "Forest Ambush",
		Combatants: []*combat.Combatant{s.archer, s.monster},
	}

	s.Require().NoError(s.svc.SetupEncounter(s.ctx, s.encounter))
}

func (s *lifecycleSuite) skill(id int) ammo.Action {
	def, ok := s.library.Skill(id)
	s.Require().True(ok, "fixture skill %d", id)
	return ammo.SkillAction(def)
}

func (s *lifecycleSuite) TestSetupEncounterSnapshotsPartyEquipment() {
	s.Require().NotNil(s.archer.Equipment)
	s.Equal(1, s.archer.Equipment.Weapon().ID)
	s.Equal("Arrow", s.archer.Equipment.Weapon().AmmoCategory)

	// Hostiles never get a snapshot
	s.Nil(s.monster.Equipment)
}

func (s *lifecycleSuite) TestSetupEncounterResolvesDefaultWeaponReference() {
	skin := testutils.CreateTestArcher("archer-2")
	skin.WeaponID = 2 // gilded longbow, stats come from the longbow
	enc := &combat.Encounter{ID: "enc-2", Combatants: []*combat.Combatant{skin}}

	s.Require().NoError(s.svc.SetupEncounter(s.ctx, enc))

	s.Require().NotNil(skin.Equipment)
	s.Equal("Arrow", skin.Equipment.Weapon().AmmoCategory)
	s.Equal(11, skin.Equipment.Weapon().AnimationID)
}

func (s *lifecycleSuite) TestBasicAttackArmsOverlay() {
	s.Require().NoError(s.svc.BeginAction(s.ctx, s.archer, ammo.BasicAttack()))

	s.True(s.archer.Overlay.Armed())
	s.Equal(5, s.archer.Overlay.ItemID())
	s.Equal(28, s.archer.AttackPower())
	s.InDelta(0.80, s.archer.HitChance(), 0.0001)
	s.InDelta(0.15, s.archer.CritChance(), 0.0001)
	s.Equal(1, s.archer.Overlay.PendingConsumption())

	// Ammo overrides the fire animation for the duration of the action
	s.Equal(12, s.svc.AnimationID(s.archer))
}

func (s *lifecycleSuite) TestBasicAttackHitConsumesAndInflicts() {
	s.Require().NoError(s.svc.BeginAction(s.ctx, s.archer, ammo.BasicAttack()))

	s.roller.SetRolls([]int{30}) // exactly the 30% poison chance

	inflicted, err := s.svc.ApplyResult(s.ctx, s.archer, ammo.BasicAttack(), s.monster, true)
	s.Require().NoError(err)
	s.Equal([]int{4}, inflicted)
	s.Contains(s.monster.States, 4)
	s.Equal(2, s.party.OwnedCount(5))

	s.svc.EndAction(s.archer)
	s.False(s.archer.Overlay.Armed())
	s.Equal(20, s.archer.AttackPower())
	s.Equal(11, s.svc.AnimationID(s.archer))
}

func (s *lifecycleSuite) TestConsumptionCommitsOncePerAction() {
	s.Require().NoError(s.svc.BeginAction(s.ctx, s.archer, ammo.BasicAttack()))

	second := testutils.CreateTestMonster("goblin-2")
	s.roller.SetRolls([]int{50, 50}) // both infliction rolls fail

	_, err := s.svc.ApplyResult(s.ctx, s.archer, ammo.BasicAttack(), s.monster, true)
	s.Require().NoError(err)
	_, err = s.svc.ApplyResult(s.ctx, s.archer, ammo.BasicAttack(), second, true)
	s.Require().NoError(err)

	// One unit spent across both delivered results
	s.Equal(2, s.party.OwnedCount(5))
}

func (s *lifecycleSuite) TestMissSpendsNothing() {
	s.Require().NoError(s.svc.BeginAction(s.ctx, s.archer, ammo.BasicAttack()))

	inflicted, err := s.svc.ApplyResult(s.ctx, s.archer, ammo.BasicAttack(), s.monster, false)
	s.Require().NoError(err)
	s.Empty(inflicted)
	s.Equal(3, s.party.OwnedCount(5))
	s.Equal(0, s.archer.Overlay.PendingConsumption())
}

func (s *lifecycleSuite) TestMultiShotVolley() {
	action := s.skill(11) // Arrow Rain, 5 shots, 3 arrows owned

	s.Require().NoError(s.svc.BeginAction(s.ctx, s.archer, action))

	s.True(s.archer.Overlay.Armed())
	s.Equal(23, s.archer.Overlay.AttackDelta())
	s.InDelta(0.275, s.archer.Overlay.HitDelta(), 0.0001) // 0.175 volley + 0.10 ranged
	s.InDelta(0.028875+0.05, s.archer.Overlay.CritDelta(), 0.0001)
	s.Len(s.archer.Overlay.States(), 3)
	s.Equal(3, s.archer.Overlay.PendingConsumption())

	// Under the low-stock threshold the skill plays its sparse animation
	s.Equal(30, s.svc.AnimationID(s.archer))

	s.roller.SetRolls([]int{30, 31, 100}) // one of three units inflicts

	inflicted, err := s.svc.ApplyResult(s.ctx, s.archer, action, s.monster, true)
	s.Require().NoError(err)
	s.Equal([]int{4}, inflicted)
	s.Equal(0, s.party.OwnedCount(5))
}

func (s *lifecycleSuite) TestSkillWithoutAmmoPlaysFallbackAnimation() {
	s.party.Deduct(5, 3)
	action := s.skill(11)

	s.Require().NoError(s.svc.BeginAction(s.ctx, s.archer, action))

	s.False(s.archer.Overlay.Armed())
	s.Equal(31, s.svc.AnimationID(s.archer))
}

func (s *lifecycleSuite) TestStrictSkillFallsBackWithoutAmmo() {
	s.party.Deduct(5, 3)
	action := s.skill(12) // Snipe, strict rate 30

	chance, err := s.svc.HitChance(s.ctx, s.archer, action, 0.9)
	s.Require().NoError(err)
	s.InDelta(0.30, chance, 0.0001)
}

func (s *lifecycleSuite) TestStrictSkillUsesBaseChanceWithAmmo() {
	action := s.skill(12)

	chance, err := s.svc.HitChance(s.ctx, s.archer, action, 0.9)
	s.Require().NoError(err)
	s.InDelta(0.9, chance, 0.0001)
}

func (s *lifecycleSuite) TestHitChancePassesThroughForBasicAttack() {
	chance, err := s.svc.HitChance(s.ctx, s.archer, ammo.BasicAttack(), 0.75)
	s.Require().NoError(err)
	s.InDelta(0.75, chance, 0.0001)
}

func (s *lifecycleSuite) TestElementOverrideFromAmmo() {
	s.party.Deduct(5, 3)
	s.party.Add(6, 2) // only flame arrows left

	s.Require().NoError(s.svc.BeginAction(s.ctx, s.archer, ammo.BasicAttack()))

	s.Equal(6, s.archer.Overlay.ItemID())
	s.Equal(3, s.svc.ElementID(s.archer, ammo.BasicAttack()))
}

func (s *lifecycleSuite) TestElementDefaultsWithoutOverride() {
	s.Require().NoError(s.svc.BeginAction(s.ctx, s.archer, ammo.BasicAttack()))

	s.Equal(items.ElementNone, s.svc.ElementID(s.archer, ammo.BasicAttack()))
}

func (s *lifecycleSuite) TestNonAmmoSkillStaysUnarmed() {
	guard := &items.SkillDefinition{
		ID:          99,
		Name:        "Guard",
		StrictRate:  items.StrictRateNone,
		SuccessRate: 100,
		ElementID:   items.ElementNone,
	}

	s.Require().NoError(s.svc.BeginAction(s.ctx, s.archer, ammo.SkillAction(guard)))

	s.False(s.archer.Overlay.Armed())
	s.Equal(20, s.archer.AttackPower())
}

func (s *lifecycleSuite) TestMeleeWeaponNeedsNoAmmo() {
	melee := testutils.CreateTestArcher("swordsman-1")
	melee.WeaponID = 3 // shortsword
	enc := &combat.Encounter{ID: "enc-3", Combatants: []*combat.Combatant{melee}}
	s.Require().NoError(s.svc.SetupEncounter(s.ctx, enc))

	s.Require().NoError(s.svc.BeginAction(s.ctx, melee, ammo.BasicAttack()))

	s.False(melee.Overlay.Armed())
	s.Equal(3, s.party.OwnedCount(5))
}

func (s *lifecycleSuite) TestAbortedActionLeavesNoResidue() {
	s.Require().NoError(s.svc.BeginAction(s.ctx, s.archer, ammo.BasicAttack()))
	s.Require().True(s.archer.Overlay.Armed())

	// Action cancelled before any result was applied
	s.svc.EndAction(s.archer)

	s.False(s.archer.Overlay.Armed())
	s.Equal(3, s.party.OwnedCount(5))
	s.Equal(20, s.archer.AttackPower())
	s.InDelta(0.5, s.archer.HitChance(), 0.0001)
	s.Equal(11, s.svc.AnimationID(s.archer))
}

func (s *lifecycleSuite) TestRepeatCountIsAlwaysOne() {
	s.Equal(1, s.svc.RepeatCount(ammo.BasicAttack()))
	s.Equal(1, s.svc.RepeatCount(s.skill(11)))
}

func (s *lifecycleSuite) TestEndEncounterDiscardsSnapshots() {
	s.Require().NoError(s.svc.BeginAction(s.ctx, s.archer, ammo.BasicAttack()))

	s.Require().NoError(s.svc.EndEncounter(s.ctx, s.encounter))

	s.Nil(s.archer.Equipment)
	s.False(s.archer.Overlay.Armed())
}

func TestLifecycleSuite(t *testing.T) {
	suite.Run(t, new(lifecycleSuite))
}
