package slots

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed slot store
func NewRedis(client redis.UniversalClient) Repository {
	return &redisRepo{
		client: client,
	}
}

func slotKey(slotID int) string {
	return fmt.Sprintf("ammo:slot:%d", slotID)
}

func (r *redisRepo) Get(ctx context.Context, slotID int) (int, error) {
	value, err := r.client.Get(ctx, slotKey(slotID)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get slot %d from Redis: %w", slotID, err)
	}

	itemID, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("slot %d holds a non-numeric value %q: %w", slotID, value, err)
	}

	return itemID, nil
}

func (r *redisRepo) Set(ctx context.Context, slotID, itemID int) error {
	if err := r.client.Set(ctx, slotKey(slotID), itemID, 0).Err(); err != nil {
		return fmt.Errorf("failed to set slot %d in Redis: %w", slotID, err)
	}

	return nil
}

func (r *redisRepo) GetAll(ctx context.Context, slotIDs []int) (map[int]int, error) {
	values := make([]int, len(slotIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, slotID := range slotIDs {
		i, slotID := i, slotID
		g.Go(func() error {
			value, err := r.Get(ctx, slotID)
			if err != nil {
				return err
			}
			values[i] = value
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make(map[int]int, len(slotIDs))
	for i, slotID := range slotIDs {
		result[slotID] = values[i]
	}

	return result, nil
}
