package repository

import (
	"context"
	"errors"
	"fmt"

	"go-hardware-demo/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormSnapshotRepo struct {
	db  *gorm.DB
	key string
}

// NewGormSnapshotRepo migrates the demo_snapshots table and returns a
// repository keeping the snapshot in the row identified by key.
func NewGormSnapshotRepo(db *gorm.DB, key string) (SnapshotRepository, error) {
	if err := db.AutoMigrate(&model.SnapshotRecord{}); err != nil {
		return nil, fmt.Errorf("migrate demo_snapshots: %w", err)
	}
	return &gormSnapshotRepo{db: db, key: key}, nil
}

func (r *gormSnapshotRepo) Load(ctx context.Context) (*model.Snapshot, error) {
	var record model.SnapshotRecord
	err := r.db.WithContext(ctx).First(&record, "snapshot_key = ?", r.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	return decodeSnapshot([]byte(record.Payload))
}

func (r *gormSnapshotRepo) Save(ctx context.Context, snap *model.Snapshot) error {
	payload, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}
	record := model.SnapshotRecord{
		SnapshotKey: r.key,
		Version:     model.SchemaVersion,
		Payload:     string(payload),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "snapshot_key"}},
			UpdateAll: true,
		}).
		Create(&record).Error
}

func (r *gormSnapshotRepo) Delete(ctx context.Context) error {
	return r.db.WithContext(ctx).Delete(&model.SnapshotRecord{}, "snapshot_key = ?", r.key).Error
}

func (r *gormSnapshotRepo) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
