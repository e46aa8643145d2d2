// Read-through cache for the hot ingest path: slug -> webhook id.
// Correctness does not depend on it; a stale hit fails the FK-checked
// insert and is reported as not-found, same as an uncached miss.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"webhooknest/internal/pkg/config"
)

const slugKeyPrefix = "webhooknest:slug:"

type EndpointCache interface {
	GetWebhookID(ctx context.Context, slug string) (uuid.UUID, bool)
	SetWebhookID(ctx context.Context, slug string, id uuid.UUID)
	Invalidate(ctx context.Context, slug string)
}

type RedisEndpointCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisEndpointCache(client *redis.Client, cfg config.RedisConfig) *RedisEndpointCache {
	return &RedisEndpointCache{
		client: client,
		ttl:    cfg.SlugTTL,
	}
}

func (c *RedisEndpointCache) GetWebhookID(ctx context.Context, slug string) (uuid.UUID, bool) {
	val, err := c.client.Get(ctx, slugKeyPrefix+slug).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("slug cache read failed", "slug", slug, "error", err)
		}
		return uuid.Nil, false
	}

	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (c *RedisEndpointCache) SetWebhookID(ctx context.Context, slug string, id uuid.UUID) {
	if err := c.client.Set(ctx, slugKeyPrefix+slug, id.String(), c.ttl).Err(); err != nil {
		slog.Debug("slug cache write failed", "slug", slug, "error", err)
	}
}

func (c *RedisEndpointCache) Invalidate(ctx context.Context, slug string) {
	if err := c.client.Del(ctx, slugKeyPrefix+slug).Err(); err != nil {
		slog.Debug("slug cache invalidation failed", "slug", slug, "error", err)
	}
}

// NoopEndpointCache is used when no Redis address is configured; every
// lookup falls through to the store.
type NoopEndpointCache struct{}

func NewNoopEndpointCache() *NoopEndpointCache {
	return &NoopEndpointCache{}
}

func (NoopEndpointCache) GetWebhookID(context.Context, string) (uuid.UUID, bool) { return uuid.Nil, false }
func (NoopEndpointCache) SetWebhookID(context.Context, string, uuid.UUID)       {}
func (NoopEndpointCache) Invalidate(context.Context, string)                    {}
