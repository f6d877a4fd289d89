package items

// WeaponDefinition is the static attribute record of one weapon.
// Weapons that consume ammunition declare the category they fire.
type WeaponDefinition struct {
	ID              int
	Name            string
	AmmoCategory    string // empty when the weapon consumes no ammo
	RangedHitPct    int    // ranged hit bonus, percent
	RangedCritPct   int    // ranged crit bonus, percent
	DefaultWeaponID int    // stat-profile reference, 0 when absent
	AnimationID     int
}

// NewWeaponDefinition builds the typed record from a parsed tag set
func NewWeaponDefinition(id int, name string, tags Metadata) *WeaponDefinition {
	return &WeaponDefinition{
		ID:              id,
		Name:            name,
		AmmoCategory:    tags.GetStringOrDefault("ammo_category", ""),
		RangedHitPct:    tags.GetIntOrDefault("ranged_hit", 0),
		RangedCritPct:   tags.GetIntOrDefault("ranged_crit", 0),
		DefaultWeaponID: tags.GetIntOrDefault("default_weapon", 0),
		AnimationID:     tags.GetIntOrDefault("animation", 0),
	}
}

// UsesAmmo reports whether the weapon declares an ammo category
func (w *WeaponDefinition) UsesAmmo() bool {
	return w.AmmoCategory != ""
}
