package slots

//go:generate mockgen -destination=mock/mock_repository.go -package=mockslots -source=repository.go

import (
	"context"
)

// Repository is the persistent selection-slot store: one integer cell
// per ammo category holding the currently selected item id for the
// whole party. This is the host's generic variable store and the only
// state that outlives an encounter.
type Repository interface {
	// Get returns the item id stored in a slot, 0 when the slot was
	// never written
	Get(ctx context.Context, slotID int) (int, error)

	// Set writes the selected item id into a slot
	Set(ctx context.Context, slotID, itemID int) error

	// GetAll returns the values of several slots keyed by slot id
	GetAll(ctx context.Context, slotIDs []int) (map[int]int, error)
}
