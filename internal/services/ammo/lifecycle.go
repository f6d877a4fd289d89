package ammo

import (
	"context"
	"log"

	"github.com/KirkDiggler/battle-ammo/internal/domain/combat"
	"github.com/KirkDiggler/battle-ammo/internal/domain/items"
)

// SetupEncounter implements Service.SetupEncounter
func (s *service) SetupEncounter(ctx context.Context, enc *combat.Encounter) error {
	for _, c := range enc.PartyMembers() {
		if c.WeaponID <= 0 {
			continue
		}

		def, ok := s.library.EffectiveWeapon(c.WeaponID)
		if !ok {
			// Missing definition degrades to "no equipment": the ammo
			// feature stays off for this combatant
			log.Printf("combatant %s references unknown weapon %d", c.ID, c.WeaponID)
			continue
		}

		c.Equipment = combat.NewBattleEquipment(def)
	}

	return nil
}

// EndEncounter implements Service.EndEncounter
func (s *service) EndEncounter(ctx context.Context, enc *combat.Encounter) error {
	for _, c := range enc.Combatants {
		c.ResetAmmoState()
		c.Equipment = nil
		s.dropState(c.ID)
	}

	return nil
}

// BeginAction implements Service.BeginAction
func (s *service) BeginAction(ctx context.Context, c *combat.Combatant, action Action) error {
	st := s.stateFor(c.ID)
	st.clear()

	// The overlay must never leak from an earlier action
	c.ResetAmmoState()

	if !action.IsAttack() && !action.Skill.IsAmmoSkill() {
		return nil
	}

	category := s.ammoCategory(c)
	if category == "" {
		return nil
	}
	if _, ok := s.library.SlotForCategory(category); !ok {
		// No slot configured: the category needs no selection and
		// contributes nothing
		return nil
	}

	selected, err := s.EnsureSelection(ctx, category)
	if err != nil {
		return err
	}

	if selected == nil {
		if skill := action.Skill; skill != nil && skill.NoAmmoAnimationID > 0 {
			st.animation = skill.NoAmmoAnimationID
		}
		return nil
	}

	owned := s.party.OwnedCount(selected.ID)
	mods := Compose(selected, c.Equipment.Weapon(), action.Skill, owned, c.HitRate)
	c.Overlay.Arm(mods)
	st.phase = phaseArmed

	if action.IsAttack() {
		if selected.AnimationID > 0 {
			c.Equipment.SetAnimation(selected.AnimationID)
		}
		return nil
	}

	skill := action.Skill
	if skill.IsMultiShot() && skill.LowStockThreshold > 0 && owned < skill.LowStockThreshold && skill.LowStockAnimationID > 0 {
		st.animation = skill.LowStockAnimationID
	}

	return nil
}

// HitChance implements Service.HitChance
func (s *service) HitChance(ctx context.Context, c *combat.Combatant, action Action, base float64) (float64, error) {
	skill := action.Skill
	if skill == nil || !skill.HasStrictRate() {
		return base, nil
	}

	category := s.ammoCategory(c)
	if category == "" {
		return base, nil
	}

	valid, err := s.hasValidAmmo(ctx, category)
	if err != nil {
		return base, err
	}
	if valid {
		return base, nil
	}

	// Strict skills resolve at the fallback rate without ammo,
	// bypassing every other modifier
	return float64(skill.StrictRate) / 100, nil
}

// ElementID implements Service.ElementID
func (s *service) ElementID(c *combat.Combatant, action Action) int {
	if override := c.Overlay.ElementOverride(); override >= 0 {
		return override
	}
	if action.Skill != nil {
		return action.Skill.ElementID
	}
	return items.ElementNone
}

// ApplyResult implements Service.ApplyResult
func (s *service) ApplyResult(ctx context.Context, c *combat.Combatant, action Action, target *combat.Combatant, hit bool) ([]int, error) {
	st := s.stateFor(c.ID)
	if st.phase == phaseArmed {
		st.phase = phaseResolving
	}

	if !hit {
		// A miss spends nothing
		c.Overlay.VoidConsumption()
		return nil, nil
	}

	var inflicted []int
	if target != nil && target.IsAlive() && target.Hostile {
		for _, pair := range c.Overlay.States() {
			success, err := s.dice.RollChance(pair.Chance)
			if err != nil {
				return inflicted, err
			}
			if success {
				target.AddState(pair.StateID)
				inflicted = append(inflicted, pair.StateID)
			}
		}
	}

	if !st.committed {
		c.Overlay.CommitConsumption(s.party)
		st.committed = true
	}

	return inflicted, nil
}

// EndAction implements Service.EndAction
func (s *service) EndAction(c *combat.Combatant) {
	st := s.stateFor(c.ID)
	st.clear()
	c.ResetAmmoState()
}

// RepeatCount implements Service.RepeatCount. Multi-shot volleys
// resolve as one consolidated hit; the per-unit math already happened
// in the modifier set.
func (s *service) RepeatCount(action Action) int {
	return 1
}

// AnimationID implements Service.AnimationID
func (s *service) AnimationID(c *combat.Combatant) int {
	st := s.stateFor(c.ID)
	if st.animation > 0 {
		return st.animation
	}
	if c.Equipment != nil {
		return c.Equipment.Weapon().AnimationID
	}
	return 0
}
