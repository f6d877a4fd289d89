package combat

// Combatant is one participant in an encounter. Base stats are plain
// values; the ammo overlay layers per-action deltas on top of them
// while armed.
type Combatant struct {
	ID       string
	Name     string
	PartyID  string
	Hostile  bool
	Attack   int     // base flat attack
	HitRate  float64 // base hit stat, fraction
	CritRate float64 // base crit stat, fraction
	MaxHP    int
	HP       int
	WeaponID int // equipped weapon definition, 0 when unarmed

	States []int // inflicted state ids

	// Per-encounter equipment snapshot, nil outside an encounter
	Equipment *BattleEquipment

	Overlay AmmoOverlay
}

// IsAlive reports whether the combatant can still be targeted
func (c *Combatant) IsAlive() bool {
	return c.HP > 0
}

// AttackPower returns the base attack plus any armed ammo delta
func (c *Combatant) AttackPower() int {
	return c.Attack + c.Overlay.AttackDelta()
}

// HitChance returns the base hit stat plus any armed ammo delta
func (c *Combatant) HitChance() float64 {
	return c.HitRate + c.Overlay.HitDelta()
}

// CritChance returns the base crit stat plus any armed ammo delta
func (c *Combatant) CritChance() float64 {
	return c.CritRate + c.Overlay.CritDelta()
}

// AddState records an inflicted state, ignoring duplicates
func (c *Combatant) AddState(stateID int) {
	for _, id := range c.States {
		if id == stateID {
			return
		}
	}
	c.States = append(c.States, stateID)
}

// ResetAmmoState disarms the overlay and restores the working
// equipment copy from the pristine snapshot
func (c *Combatant) ResetAmmoState() {
	c.Overlay.Reset()
	if c.Equipment != nil {
		c.Equipment.Restore()
	}
}
