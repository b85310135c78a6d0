package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"heavylingam-backend/internal/domain"
)

const snapshotKey = "listings:snapshot"

// SnapshotCache keeps the last listing snapshot in Redis so a restarted
// server can serve the catalog before the first store push arrives.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(addr, password string, ttl time.Duration) (*SnapshotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &SnapshotCache{client: client, ttl: ttl}, nil
}

func (c *SnapshotCache) Save(ctx context.Context, listings []domain.Listing) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey, data, c.ttl).Err()
}

// Load returns the cached snapshot, or nil on a cache miss.
func (c *SnapshotCache) Load(ctx context.Context) ([]domain.Listing, error) {
	data, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var listings []domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (c *SnapshotCache) Close() error {
	return c.client.Close()
}
