package repository

import (
	"context"
	"errors"
	"fmt"

	"go-hardware-demo/internal/model"

	"github.com/redis/go-redis/v9"
)

type redisSnapshotRepo struct {
	client *redis.Client
	key    string
}

func NewRedisSnapshotRepo(client *redis.Client, key string) SnapshotRepository {
	return &redisSnapshotRepo{client: client, key: key}
}

func (r *redisSnapshotRepo) Load(ctx context.Context) (*model.Snapshot, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return decodeSnapshot(payload)
}

// Save stores the envelope without expiry.
func (r *redisSnapshotRepo) Save(ctx context.Context, snap *model.Snapshot) error {
	payload, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

func (r *redisSnapshotRepo) Delete(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

func (r *redisSnapshotRepo) Close() error {
	return r.client.Close()
}
