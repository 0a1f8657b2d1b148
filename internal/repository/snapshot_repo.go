package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-hardware-demo/internal/model"
)

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrSnapshotCorrupt  = errors.New("snapshot payload is unreadable")
	ErrSchemaVersion    = errors.New("snapshot schema version mismatch")
)

// SnapshotRepository persists the whole shop state as a single entry.
type SnapshotRepository interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	Save(ctx context.Context, snap *model.Snapshot) error
	Delete(ctx context.Context) error
	Close() error
}

// IsUnreadable reports whether err means the stored entry exists but cannot
// be used, as opposed to a transport or I/O failure.
func IsUnreadable(err error) bool {
	return errors.Is(err, ErrSnapshotCorrupt) || errors.Is(err, ErrSchemaVersion)
}

func encodeSnapshot(snap *model.Snapshot) ([]byte, error) {
	payload, err := json.Marshal(model.PersistedState{State: *snap, Version: model.SchemaVersion})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return payload, nil
}

func decodeSnapshot(payload []byte) (*model.Snapshot, error) {
	var persisted model.PersistedState
	if err := json.Unmarshal(payload, &persisted); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
	}
	if persisted.Version != model.SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaVersion, persisted.Version, model.SchemaVersion)
	}
	snap := persisted.State
	snap.Normalize()
	return &snap, nil
}
