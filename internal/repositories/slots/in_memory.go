package slots

import (
	"context"
	"sync"
)

type inMemoryRepository struct {
	mu     sync.RWMutex
	values map[int]int
}

// NewInMemoryRepository creates a new in-memory slot store
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		values: make(map[int]int),
	}
}

func (r *inMemoryRepository) Get(ctx context.Context, slotID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.values[slotID], nil
}

func (r *inMemoryRepository) Set(ctx context.Context, slotID, itemID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[slotID] = itemID
	return nil
}

func (r *inMemoryRepository) GetAll(ctx context.Context, slotIDs []int) (map[int]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[int]int, len(slotIDs))
	for _, slotID := range slotIDs {
		result[slotID] = r.values[slotID]
	}

	return result, nil
}
