package ammo

//go:generate mockgen -destination=mock/mock_service.go -package=mockammo -source=service.go

import (
	"context"
	"sync"

	"github.com/KirkDiggler/battle-ammo/internal/dice"
	"github.com/KirkDiggler/battle-ammo/internal/domain/combat"
	"github.com/KirkDiggler/battle-ammo/internal/domain/items"
	"github.com/KirkDiggler/battle-ammo/internal/repositories/slots"
	"github.com/KirkDiggler/battle-ammo/internal/services/party"
)

// Action identifies what a combatant is performing: a basic attack or
// a skill from the definition library.
type Action struct {
	Skill *items.SkillDefinition // nil for a basic attack
}

// BasicAttack returns the basic attack action
func BasicAttack() Action {
	return Action{}
}

// SkillAction returns an action backed by a skill definition
func SkillAction(def *items.SkillDefinition) Action {
	return Action{Skill: def}
}

// IsAttack reports whether the action is a basic attack
func (a Action) IsAttack() bool {
	return a.Skill == nil
}

// Service is the ammo resolution engine. The host action pipeline
// calls the lifecycle hooks at its defined points: BeginAction before
// resolution, HitChance during hit computation, ElementID during
// element computation, ApplyResult per delivered target result, and
// EndAction unconditionally when the action finishes — aborted or not.
type Service interface {
	// SetupEncounter snapshots every party member's working equipment
	// copy, resolving default-weapon references
	SetupEncounter(ctx context.Context, enc *combat.Encounter) error

	// EndEncounter discards equipment snapshots and force-resets every
	// combatant's overlay
	EndEncounter(ctx context.Context, enc *combat.Encounter) error

	// BeginAction selects the backing ammo for the action and arms the
	// combatant's overlay with the computed modifier set. Not eligible
	// or nothing selectable means the overlay stays unarmed.
	BeginAction(ctx context.Context, combatant *combat.Combatant, action Action) error

	// HitChance forces the strict fallback rate for ammo-starved strict
	// skills, otherwise returns base unchanged
	HitChance(ctx context.Context, combatant *combat.Combatant, action Action, base float64) (float64, error)

	// ElementID returns the element the action resolves with: the armed
	// ammo's override when present, otherwise the skill's declared one
	ElementID(combatant *combat.Combatant, action Action) int

	// ApplyResult handles one delivered target result: rolls state
	// infliction on a hit and commits consumption at most once per
	// action. Returns the inflicted state ids.
	ApplyResult(ctx context.Context, combatant *combat.Combatant, action Action, target *combat.Combatant, hit bool) ([]int, error)

	// EndAction clears presentation overrides and resets the overlay.
	// Must run even when the action was aborted before ApplyResult.
	EndAction(combatant *combat.Combatant)

	// RepeatCount returns how many hits the renderer should play for
	// the action
	RepeatCount(action Action) int

	// AnimationID returns the animation the renderer should use for the
	// combatant's current action
	AnimationID(combatant *combat.Combatant) int

	// IsValidSelection reports whether the category's slotted ammo is
	// still usable. Categories with no configured slot are always valid.
	IsValidSelection(ctx context.Context, category string) (bool, error)

	// EnsureSelection returns the category's selected ammo, re-selecting
	// when the previous choice went stale. Nil when nothing matches.
	EnsureSelection(ctx context.Context, category string) (*items.AmmoDefinition, error)
}

type phase int

const (
	phaseIdle phase = iota
	phaseArmed
	phaseResolving
)

// actionState is the coordinator's per-combatant bookkeeping for the
// action currently resolving
type actionState struct {
	phase     phase
	animation int  // presentation override, 0 when none
	committed bool // consumption already committed this action
}

func (st *actionState) clear() {
	st.phase = phaseIdle
	st.animation = 0
	st.committed = false
}

type service struct {
	slots   slots.Repository
	party   party.Service
	library *items.Library
	dice    dice.Roller

	mu      sync.Mutex
	actions map[string]*actionState // combatant id -> action state
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	SlotRepository slots.Repository
	Party          party.Service
	Library        *items.Library
	DiceRoller     dice.Roller
}

// NewService creates a new ammo resolution service
func NewService(cfg *ServiceConfig) Service {
	if cfg.SlotRepository == nil {
		panic("slot repository is required")
	}
	if cfg.Party == nil {
		panic("party service is required")
	}
	if cfg.Library == nil {
		panic("library is required")
	}

	svc := &service{
		slots:   cfg.SlotRepository,
		party:   cfg.Party,
		library: cfg.Library,
		dice:    cfg.DiceRoller,
		actions: make(map[string]*actionState),
	}

	if svc.dice == nil {
		svc.dice = dice.NewRandomRoller()
	}

	return svc
}

func (s *service) stateFor(combatantID string) *actionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.actions[combatantID]
	if !ok {
		st = &actionState{}
		s.actions[combatantID] = st
	}
	return st
}

func (s *service) dropState(combatantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.actions, combatantID)
}

// ammoCategory returns the category the combatant's working weapon
// fires, "" when the combatant has no snapshot or a category-less weapon
func (s *service) ammoCategory(c *combat.Combatant) string {
	if c.Equipment == nil {
		return ""
	}
	return c.Equipment.Weapon().AmmoCategory
}
