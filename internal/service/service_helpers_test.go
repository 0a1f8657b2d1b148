package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go-hardware-demo/internal/repository"
	"go-hardware-demo/internal/store"
	"go-hardware-demo/internal/ws"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// 15:00 in Kolkata
var testNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

type recordingHub struct {
	mu     sync.Mutex
	events []ws.Event
}

func (h *recordingHub) Publish(event ws.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
}

func (h *recordingHub) actions() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.events))
	for i, e := range h.events {
		out[i] = e.Action
	}
	return out
}

func (h *recordingHub) last() ws.Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.events[len(h.events)-1]
}

func newStore(t *testing.T) *store.Store {
	t.Helper()
	repo := repository.NewFileSnapshotRepo(filepath.Join(t.TempDir(), "hardware-demo-v1.json"))
	st := store.New(repo, store.WithClock(func() time.Time { return testNow }))
	require.NoError(t, st.Load(context.Background()))
	return st
}

func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	st := newStore(t)
	_, err := st.SeedIfNeeded(context.Background())
	require.NoError(t, err)
	return st
}

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}
