package bootstrap

import (
	"context"
	"log/slog"

	"webhooknest/internal/infra/cache"
	"webhooknest/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewEndpointCache,
	),
)

// NewEndpointCache wires the optional Redis slug cache. Without a
// configured address the ingest path always hits the database directly.
func NewEndpointCache(lc fx.Lifecycle, cfg config.Config) cache.EndpointCache {
	if cfg.Redis.Addr == "" {
		return cache.NewNoopEndpointCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("slug cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.SlugTTL)
	return cache.NewRedisEndpointCache(client, cfg.Redis)
}
