package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go-hardware-demo/internal/model"
	"go-hardware-demo/internal/repository"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

// memoryRepo is an in-process SnapshotRepository that can be told to fail.
type memoryRepo struct {
	mu       sync.Mutex
	snap     *model.Snapshot
	loadErr  error
	saveErr  error
	delErr   error
	saves    int
	released bool
}

func (r *memoryRepo) Load(ctx context.Context) (*model.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.snap == nil {
		return nil, repository.ErrSnapshotNotFound
	}
	snap := r.snap.Clone()
	return &snap, nil
}

func (r *memoryRepo) Save(ctx context.Context, snap *model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	clone := snap.Clone()
	r.snap = &clone
	r.saves++
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.delErr != nil {
		return r.delErr
	}
	r.snap = nil
	return nil
}

func (r *memoryRepo) Close() error {
	r.released = true
	return nil
}

var errDiskFull = errors.New("disk full")

// sequentialIDs yields item_001, cust_002, ... in call order.
func sequentialIDs() func(string) string {
	var mu sync.Mutex
	n := 0
	return func(prefix string) string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s_%03d", prefix, n)
	}
}

func newTestStore(t *testing.T, repo *memoryRepo) *Store {
	t.Helper()
	s := New(repo,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
	)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func seededStore(t *testing.T) (*Store, *memoryRepo) {
	t.Helper()
	repo := &memoryRepo{}
	s := newTestStore(t, repo)
	seeded, err := s.SeedIfNeeded(context.Background())
	require.NoError(t, err)
	require.True(t, seeded)
	return s, repo
}

func itemBySKU(t *testing.T, s *Store, sku string) model.InventoryItem {
	t.Helper()
	for _, it := range s.Items() {
		if it.SKU == sku {
			return it
		}
	}
	t.Fatalf("no item with sku %s", sku)
	return model.InventoryItem{}
}
