package party

//go:generate mockgen -destination=mock/mock_service.go -package=mockparty -source=service.go

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/battle-ammo/internal/domain/items"
)

// Service is the party inventory collaborator: owned consumable
// stacks shared by the whole party. The ammo engine only ever deducts
// what it previously counted, so Deduct clamps silently at zero.
type Service interface {
	// OwnedCount returns how many units of an item the party owns
	OwnedCount(itemID int) int

	// HasAny reports whether the party owns at least one unit
	HasAny(itemID int) bool

	// FirstOwnedMatching returns the lowest-id owned item whose ammo
	// category matches, and whether one exists
	FirstOwnedMatching(category string) (int, bool)

	// Deduct removes up to count units of an item
	Deduct(itemID, count int)

	// Add grants units of an item
	Add(itemID, count int)
}

type service struct {
	mu      sync.RWMutex
	library *items.Library
	stacks  map[int]int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Library *items.Library
	Stacks  map[int]int // initial item id -> owned count
}

// NewService creates a new in-memory party inventory
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Library == nil {
		panic("library is required")
	}

	svc := &service{
		library: cfg.Library,
		stacks:  make(map[int]int),
	}

	for itemID, count := range cfg.Stacks {
		if count > 0 {
			svc.stacks[itemID] = count
		}
	}

	return svc
}

func (s *service) OwnedCount(itemID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stacks[itemID]
}

func (s *service) HasAny(itemID int) bool {
	return s.OwnedCount(itemID) > 0
}

func (s *service) FirstOwnedMatching(category string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Stable, deterministic scan order over owned stacks
	ids := make([]int, 0, len(s.stacks))
	for itemID := range s.stacks {
		ids = append(ids, itemID)
	}
	sort.Ints(ids)

	for _, itemID := range ids {
		if s.stacks[itemID] <= 0 {
			continue
		}
		if s.library.AmmoCategory(itemID) == category {
			return itemID, true
		}
	}

	return 0, false
}

func (s *service) Deduct(itemID, count int) {
	if count <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.stacks[itemID] - count
	if remaining <= 0 {
		delete(s.stacks, itemID)
		return
	}
	s.stacks[itemID] = remaining
}

func (s *service) Add(itemID, count int) {
	if count <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stacks[itemID] += count
}
