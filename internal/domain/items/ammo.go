package items

// ElementNone marks the absence of an element override.
const ElementNone = -1

// StateChance is one (state, infliction chance) pair carried by an
// ammo definition. Chance is a percent in [0, 100].
type StateChance struct {
	StateID int `yaml:"id"`
	Chance  int `yaml:"chance"`
}

// AmmoDefinition is the static attribute record of one consumable
// ammunition item. Immutable once loaded.
type AmmoDefinition struct {
	ID           int
	Name         string
	Category     string // consumable family, e.g. "Arrow"
	AttackBonus  int    // flat attack added per fired unit
	HitBonusPct  int    // hit rate bonus, percent
	CritBonusPct int    // crit rate bonus, percent
	ElementID    int    // element override, ElementNone when absent
	AnimationID  int    // attack animation override, 0 when absent
	States       []StateChance
}

// NewAmmoDefinition builds the typed record from a parsed tag set
func NewAmmoDefinition(id int, name string, tags Metadata) *AmmoDefinition {
	return &AmmoDefinition{
		ID:           id,
		Name:         name,
		Category:     tags.GetStringOrDefault("category", ""),
		AttackBonus:  tags.GetIntOrDefault("attack", 0),
		HitBonusPct:  tags.GetIntOrDefault("hit", 0),
		CritBonusPct: tags.GetIntOrDefault("crit", 0),
		ElementID:    tags.GetIntOrDefault("element", ElementNone),
		AnimationID:  tags.GetIntOrDefault("animation", 0),
		States:       tags.StatePairs("states"),
	}
}

// HasElement reports whether the ammo overrides the action's element
func (a *AmmoDefinition) HasElement() bool {
	return a.ElementID >= 0
}
