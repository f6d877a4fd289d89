package ammo

import (
	"context"

	"github.com/KirkDiggler/battle-ammo/internal/domain/items"
)

// IsValidSelection implements Service.IsValidSelection. A selection is
// valid when the category has no configured slot, or the slotted item
// still matches the category tag and the party still owns some.
func (s *service) IsValidSelection(ctx context.Context, category string) (bool, error) {
	slotID, ok := s.library.SlotForCategory(category)
	if !ok {
		return true, nil
	}

	itemID, err := s.slots.Get(ctx, slotID)
	if err != nil {
		return false, err
	}
	if itemID <= 0 {
		return false, nil
	}
	if s.library.AmmoCategory(itemID) != category {
		return false, nil
	}

	return s.party.HasAny(itemID), nil
}

// EnsureSelection implements Service.EnsureSelection. A stale or
// missing selection triggers a scan over the party's owned stacks in
// stable order; the result — or 0 when nothing matches — is written
// back to the slot.
func (s *service) EnsureSelection(ctx context.Context, category string) (*items.AmmoDefinition, error) {
	slotID, ok := s.library.SlotForCategory(category)
	if !ok {
		// No selection required for this category
		return nil, nil
	}

	valid, err := s.IsValidSelection(ctx, category)
	if err != nil {
		return nil, err
	}
	if valid {
		itemID, err := s.slots.Get(ctx, slotID)
		if err != nil {
			return nil, err
		}
		def, _ := s.library.Ammo(itemID)
		return def, nil
	}

	itemID, found := s.party.FirstOwnedMatching(category)
	if !found {
		if err := s.slots.Set(ctx, slotID, 0); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err := s.slots.Set(ctx, slotID, itemID); err != nil {
		return nil, err
	}

	def, _ := s.library.Ammo(itemID)
	return def, nil
}

// hasValidAmmo is the strict-fallback check: either the current
// selection is valid, or an uninitialized slot could be satisfied by a
// fresh scan. Matching stock counts even before any explicit selection
// has happened.
func (s *service) hasValidAmmo(ctx context.Context, category string) (bool, error) {
	valid, err := s.IsValidSelection(ctx, category)
	if err != nil || valid {
		return valid, err
	}

	_, found := s.party.FirstOwnedMatching(category)
	return found, nil
}
