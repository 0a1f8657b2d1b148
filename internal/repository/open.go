package repository

import (
	"context"
	"fmt"

	"go-hardware-demo/internal/config"
	"go-hardware-demo/pkg/database"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Open builds the snapshot repository selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (SnapshotRepository, error) {
	switch cfg.Storage.Driver {
	case "file":
		log.Info("using file snapshot storage", zap.String("path", cfg.Storage.FilePath))
		return NewFileSnapshotRepo(cfg.Storage.FilePath), nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		log.Info("using redis snapshot storage", zap.String("addr", cfg.Redis.Addr), zap.String("key", cfg.Storage.Key))
		return NewRedisSnapshotRepo(client, cfg.Storage.Key), nil

	case "postgres", "sqlite":
		db, err := database.ConnectDB(cfg.Storage.Driver, cfg.Storage.DSN, log)
		if err != nil {
			return nil, err
		}
		return NewGormSnapshotRepo(db, cfg.Storage.Key)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
