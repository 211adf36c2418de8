package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisRepository stores the draft blob under a single Redis key, keeping the
// whole-blob write semantics of the store.
type RedisRepository struct {
	client *redis.Client
	key    string
}

func NewRedisRepository(client *redis.Client, key string) *RedisRepository {
	if key == "" {
		key = DefaultBlobKey
	}
	return &RedisRepository{client: client, key: key}
}

func (r *RedisRepository) Load(ctx context.Context) (Store, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Store{}, ErrNotFound
		}
		return Store{}, fmt.Errorf("drafts/redis: get %s: %w", r.key, err)
	}
	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return Store{}, fmt.Errorf("drafts/redis: decode %s: %w", r.key, err)
	}
	return store, nil
}

func (r *RedisRepository) Save(ctx context.Context, store Store) error {
	data, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("drafts/redis: encode: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("drafts/redis: set %s: %w", r.key, err)
	}
	return nil
}
