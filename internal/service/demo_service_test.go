package service

import (
	"context"
	"path/filepath"
	"testing"

	"go-hardware-demo/internal/repository"
	"go-hardware-demo/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoSeedAndReset(t *testing.T) {
	hub := &recordingHub{}
	svc := NewDemoService(newStore(t), hub, nopLogger())
	ctx := context.Background()

	assert.Equal(t, ShopInfo{ShopName: "Hardware Demo"}, svc.ShopInfo())

	seeded, err := svc.SeedIfNeeded(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Equal(t, ShopInfo{ShopName: "Sharma Hardware", Seeded: true, Items: 7, Customers: 3, Invoices: 3, Movements: 5}, svc.ShopInfo())

	seeded, err = svc.SeedIfNeeded(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	require.NoError(t, svc.Reset(ctx))
	assert.Equal(t, ShopInfo{ShopName: "Hardware Demo"}, svc.ShopInfo())

	assert.Equal(t, []string{"demo_seeded", "demo_reset"}, hub.actions())
}

func TestDemoPurgeDeletesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hardware-demo-v1.json")
	st := store.New(repository.NewFileSnapshotRepo(path))
	require.NoError(t, st.Load(context.Background()))
	hub := &recordingHub{}
	svc := NewDemoService(st, hub, nopLogger())

	_, err := svc.SeedIfNeeded(context.Background())
	require.NoError(t, err)
	require.FileExists(t, path)

	require.NoError(t, svc.Purge(context.Background()))
	assert.NoFileExists(t, path)
	assert.Equal(t, ShopInfo{ShopName: "Hardware Demo"}, svc.ShopInfo())
	assert.Equal(t, "Demo data purged", hub.last().Message)
}
