//go:build integration
// +build integration

package slots_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/battle-ammo/internal/repositories/slots"
	"github.com/KirkDiggler/battle-ammo/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	// This test requires Redis to be running
	client := testutils.CreateTestRedisClientOrSkip(t)

	repo := slots.NewRedis(client)
	ctx := context.Background()

	t.Run("unset slot reads as zero", func(t *testing.T) {
		itemID, err := repo.Get(ctx, 41)
		require.NoError(t, err)
		assert.Equal(t, 0, itemID)
	})

	t.Run("set and get round trip", func(t *testing.T) {
		err := repo.Set(ctx, 41, 5)
		require.NoError(t, err)

		itemID, err := repo.Get(ctx, 41)
		require.NoError(t, err)
		assert.Equal(t, 5, itemID)
	})

	t.Run("selection survives a new repository handle", func(t *testing.T) {
		err := repo.Set(ctx, 42, 9)
		require.NoError(t, err)

		fresh := slots.NewRedis(client)
		itemID, err := fresh.Get(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, 9, itemID)
	})

	t.Run("get all", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, 41, 5))
		require.NoError(t, repo.Set(ctx, 42, 9))

		values, err := repo.GetAll(ctx, []int{41, 42, 43})
		require.NoError(t, err)
		assert.Equal(t, map[int]int{41: 5, 42: 9, 43: 0}, values)
	})
}
