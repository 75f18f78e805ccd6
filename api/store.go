package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/bowling-catalog/internal/config"
	"github.com/rogerio-castellano/bowling-catalog/internal/db"
	"github.com/rogerio-castellano/bowling-catalog/internal/redissvc"
	"github.com/rogerio-castellano/bowling-catalog/internal/repo"
)

// openStore builds the repository selected by cfg, behind the Redis cache
// when one is configured. The returned func releases every connection.
func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (repo.CatalogRepository, func(), error) {
	var (
		store   repo.CatalogRepository
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { _ = client.Disconnect(context.Background()) })
		store = repo.NewMongoCatalogRepository(client.Database(cfg.MongoDatabase),
			cfg.MongoProductsCollection, cfg.MongoCategoriesCollection, cfg.StoreTimeout)
	case config.DriverPostgres:
		database, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { _ = database.Close() })
		store = repo.NewPostgresCatalogRepository(database, cfg.StoreTimeout)
	case config.DriverMemory:
		store = repo.NewInMemoryCatalogRepository()
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	log.Info("catalog store ready", "driver", cfg.StoreDriver)

	if cfg.CacheEnabled() {
		cache := redissvc.NewRedisService(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}))
		if err := cache.Ping(ctx); err != nil {
			log.Warn("redis unavailable, cache disabled", "addr", cfg.RedisAddr, "error", err)
			_ = cache.Close()
		} else {
			closers = append(closers, func() { _ = cache.Close() })
			store = repo.NewCachedCatalogRepository(store, cache, cfg.CacheTTL, log)
			log.Info("catalog cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
		}
	}

	return store, closeAll, nil
}
