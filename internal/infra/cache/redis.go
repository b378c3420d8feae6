package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

const directoryKey = "directory:barbers"

// NewRedisClient connects to url and checks the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// DirectoryCache keeps the barber listing as one JSON value with a TTL.
type DirectoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ profile.DirectoryCache = (*DirectoryCache)(nil)

func NewDirectoryCache(client *redis.Client, ttl time.Duration) *DirectoryCache {
	return &DirectoryCache{client: client, ttl: ttl}
}

func (c *DirectoryCache) Get(ctx context.Context) ([]models.User, bool, error) {
	data, err := c.client.Get(ctx, directoryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var barbers []models.User
	if err := json.Unmarshal(data, &barbers); err != nil {
		return nil, false, fmt.Errorf("decode directory cache: %w", err)
	}
	return barbers, true, nil
}

func (c *DirectoryCache) Set(ctx context.Context, barbers []models.User) error {
	data, err := json.Marshal(barbers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, directoryKey, data, c.ttl).Err()
}

func (c *DirectoryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, directoryKey).Err()
}
