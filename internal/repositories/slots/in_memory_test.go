package slots_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/battle-ammo/internal/repositories/slots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := slots.NewInMemoryRepository()

	// Unset slots read as zero
	itemID, err := repo.Get(ctx, 41)
	require.NoError(t, err)
	assert.Equal(t, 0, itemID)

	require.NoError(t, repo.Set(ctx, 41, 5))
	require.NoError(t, repo.Set(ctx, 42, 7))

	itemID, err = repo.Get(ctx, 41)
	require.NoError(t, err)
	assert.Equal(t, 5, itemID)

	values, err := repo.GetAll(ctx, []int{41, 42, 43})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{41: 5, 42: 7, 43: 0}, values)

	// Overwrite sticks
	require.NoError(t, repo.Set(ctx, 41, 0))
	itemID, err = repo.Get(ctx, 41)
	require.NoError(t, err)
	assert.Equal(t, 0, itemID)
}
