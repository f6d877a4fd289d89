package items

// Library is the immutable set of loaded definitions, keyed by ID,
// plus the category-to-slot mapping for ammo selection persistence.
type Library struct {
	ammo    map[int]*AmmoDefinition
	weapons map[int]*WeaponDefinition
	skills  map[int]*SkillDefinition
	slots   map[string]int // ammo category -> selection slot id
}

// LibraryConfig holds the loaded definitions for a new library
type LibraryConfig struct {
	Ammo    []*AmmoDefinition
	Weapons []*WeaponDefinition
	Skills  []*SkillDefinition
	Slots   map[string]int
}

// NewLibrary indexes the loaded definitions
func NewLibrary(cfg *LibraryConfig) *Library {
	lib := &Library{
		ammo:    make(map[int]*AmmoDefinition),
		weapons: make(map[int]*WeaponDefinition),
		skills:  make(map[int]*SkillDefinition),
		slots:   make(map[string]int),
	}

	if cfg == nil {
		return lib
	}

	for _, a := range cfg.Ammo {
		lib.ammo[a.ID] = a
	}
	for _, w := range cfg.Weapons {
		lib.weapons[w.ID] = w
	}
	for _, s := range cfg.Skills {
		lib.skills[s.ID] = s
	}
	for category, slotID := range cfg.Slots {
		lib.slots[category] = slotID
	}

	return lib
}

// Ammo returns the ammo definition for an item ID
func (l *Library) Ammo(id int) (*AmmoDefinition, bool) {
	a, ok := l.ammo[id]
	return a, ok
}

// Weapon returns the weapon definition for a weapon ID
func (l *Library) Weapon(id int) (*WeaponDefinition, bool) {
	w, ok := l.weapons[id]
	return w, ok
}

// Skill returns the skill definition for a skill ID
func (l *Library) Skill(id int) (*SkillDefinition, bool) {
	s, ok := l.skills[id]
	return s, ok
}

// EffectiveWeapon resolves a weapon's stat profile, following the
// default-weapon reference chain so a family of weapon skins can share
// one profile. Cycles and dangling references stop at the last weapon
// found.
func (l *Library) EffectiveWeapon(id int) (*WeaponDefinition, bool) {
	w, ok := l.weapons[id]
	if !ok {
		return nil, false
	}

	visited := map[int]bool{w.ID: true}
	for w.DefaultWeaponID > 0 && !visited[w.DefaultWeaponID] {
		next, ok := l.weapons[w.DefaultWeaponID]
		if !ok {
			break
		}
		visited[next.ID] = true
		w = next
	}

	return w, true
}

// SlotForCategory returns the selection slot configured for an ammo
// category. Categories with no slot need no selection at all.
func (l *Library) SlotForCategory(category string) (int, bool) {
	slotID, ok := l.slots[category]
	return slotID, ok
}

// SlotIDs returns every configured selection slot id
func (l *Library) SlotIDs() []int {
	ids := make([]int, 0, len(l.slots))
	for _, id := range l.slots {
		ids = append(ids, id)
	}
	return ids
}

// AmmoCategory returns the category tag of an item, or "" when the
// item is unknown
func (l *Library) AmmoCategory(id int) string {
	a, ok := l.ammo[id]
	if !ok {
		return ""
	}
	return a.Category
}
