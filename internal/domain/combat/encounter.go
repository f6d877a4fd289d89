package combat

// Encounter groups the combatants of one battle. Equipment snapshots
// live for exactly this long; only slot selections survive it.
type Encounter struct {
	ID         string
	Name       string
	Combatants []*Combatant
}

// PartyMembers returns the non-hostile combatants
func (e *Encounter) PartyMembers() []*Combatant {
	var members []*Combatant
	for _, c := range e.Combatants {
		if !c.Hostile {
			members = append(members, c)
		}
	}
	return members
}

// Combatant returns a combatant by ID
func (e *Encounter) Combatant(id string) (*Combatant, bool) {
	for _, c := range e.Combatants {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}
