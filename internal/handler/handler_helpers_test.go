package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"go-hardware-demo/internal/repository"
	"go-hardware-demo/internal/service"
	"go-hardware-demo/internal/store"
	"go-hardware-demo/internal/ws"
	"go-hardware-demo/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

type testServer struct {
	app   *fiber.App
	store *store.Store
}

// newTestServer wires a seeded shop behind the full route table. An empty
// password leaves the API open.
func newTestServer(t *testing.T, password string) *testServer {
	t.Helper()
	log := zap.NewNop()

	repo := repository.NewFileSnapshotRepo(filepath.Join(t.TempDir(), "hardware-demo-v1.json"))
	st := store.New(repo, store.WithClock(func() time.Time { return testNow }), store.WithLogger(log))
	require.NoError(t, st.Load(context.Background()))

	hub := ws.NewHub(log)
	go hub.Run()
	t.Cleanup(hub.Stop)

	loc := time.FixedZone("IST", 5*3600+30*60)
	demo := service.NewDemoService(st, hub, log)
	_, err := demo.SeedIfNeeded(context.Background())
	require.NoError(t, err)

	auth, err := service.NewAuthService(password, jwt.NewIssuer("test-secret", time.Hour, "go-hardware-demo"), hub, log)
	require.NoError(t, err)

	app := fiber.New()
	SetupRoutes(app, Handlers{
		Auth:      NewAuthHandler(auth),
		Inventory: NewInventoryHandler(service.NewInventoryService(st, hub, log)),
		Billing:   NewBillingHandler(service.NewBillingService(st, hub, log, "IN"), demo, loc),
		Dashboard: NewDashboardHandler(service.NewDashboardService(st, loc, func() time.Time { return testNow })),
		Demo:      NewDemoHandler(demo, st),
	}, auth, hub.Handler)

	return &testServer{app: app, store: st}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func (s *testServer) itemID(t *testing.T, sku string) string {
	t.Helper()
	for _, it := range s.store.Items() {
		if it.SKU == sku {
			return it.ID
		}
	}
	t.Fatalf("no item with sku %s", sku)
	return ""
}

func (s *testServer) customerID(t *testing.T, name string) string {
	t.Helper()
	for _, c := range s.store.Customers() {
		if c.Name == name {
			return c.ID
		}
	}
	t.Fatalf("no customer named %s", name)
	return ""
}
