package items

// StrictRateNone marks the absence of a strict fallback rate.
const StrictRateNone = -1

// SkillDefinition is the static attribute record of one combat action.
// A skill becomes ammo-eligible when it consumes ammo, carries a strict
// fallback rate, or fires multiple units per resolution.
type SkillDefinition struct {
	ID                  int
	Name                string
	ConsumesAmmo        bool
	StrictRate          int // forced success rate without ammo, StrictRateNone when absent
	SuccessRate         int // base success rate, percent
	MultiShot           int // units fired per resolution, 0 when absent
	LowStockThreshold   int // owned count below which low-stock rules kick in, 0 when absent
	LowStockAnimationID int
	NoAmmoAnimationID   int
	ElementID           int // declared element, ElementNone when absent
}

// NewSkillDefinition builds the typed record from a parsed tag set.
// A non-positive multi-shot count or a threshold without an animation
// partner is kept as loaded; the zero values already mean "absent".
func NewSkillDefinition(id int, name string, tags Metadata) *SkillDefinition {
	def := &SkillDefinition{
		ID:                  id,
		Name:                name,
		ConsumesAmmo:        tags.GetBoolOrDefault("consumes_ammo", false),
		StrictRate:          tags.GetIntOrDefault("strict", StrictRateNone),
		SuccessRate:         tags.GetIntOrDefault("success_rate", 100),
		MultiShot:           tags.GetIntOrDefault("multishot", 0),
		LowStockThreshold:   tags.GetIntOrDefault("low_stock", 0),
		LowStockAnimationID: tags.GetIntOrDefault("low_stock_animation", 0),
		NoAmmoAnimationID:   tags.GetIntOrDefault("no_ammo_animation", 0),
		ElementID:           tags.GetIntOrDefault("element", ElementNone),
	}

	// Malformed inputs degrade to feature-absent
	if def.MultiShot < 0 {
		def.MultiShot = 0
	}
	if def.LowStockThreshold < 0 {
		def.LowStockThreshold = 0
	}
	if def.StrictRate > 100 {
		def.StrictRate = 100
	}

	return def
}

// IsMultiShot reports whether the skill fires multiple units in one resolution
func (s *SkillDefinition) IsMultiShot() bool {
	return s.MultiShot > 0
}

// HasStrictRate reports whether the skill carries a no-ammo fallback rate
func (s *SkillDefinition) HasStrictRate() bool {
	return s.StrictRate >= 0
}

// IsAmmoSkill reports whether the skill participates in ammo resolution
func (s *SkillDefinition) IsAmmoSkill() bool {
	return s.ConsumesAmmo || s.HasStrictRate() || s.IsMultiShot()
}
