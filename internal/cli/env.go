package cli

import (
	"context"

	"go-hardware-demo/internal/config"
	"go-hardware-demo/internal/repository"
	"go-hardware-demo/internal/service"
	"go-hardware-demo/internal/store"
	"go-hardware-demo/internal/ws"
	"go-hardware-demo/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// shopEnv is a loaded store plus the services commands work through.
type shopEnv struct {
	cfg       *config.Config
	log       *zap.Logger
	repo      repository.SnapshotRepository
	store     *store.Store
	demo      service.DemoService
	billing   service.BillingService
	inventory service.InventoryService
	dashboard service.DashboardService
	out       *OutputFormatter
}

// offline drops store events; there are no websocket clients outside the server.
type offline struct{}

func (offline) Publish(ws.Event) {}

func openShop(ctx context.Context, opts *RootOptions, cmd *cobra.Command) (*shopEnv, error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to init logger", err)
	}

	repo, err := repository.Open(ctx, cfg, log)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open storage", err)
	}

	st := store.New(repo, store.WithLogger(log), store.WithStrictLoad(cfg.Storage.StrictLoad))
	if err := st.Load(ctx); err != nil {
		repo.Close()
		return nil, WrapExitError(ExitCommandError, "failed to load snapshot", err)
	}

	loc := cfg.Shop.Location()
	return &shopEnv{
		cfg:       cfg,
		log:       log,
		repo:      repo,
		store:     st,
		demo:      service.NewDemoService(st, offline{}, log),
		billing:   service.NewBillingService(st, offline{}, log, cfg.Shop.PhoneRegion),
		inventory: service.NewInventoryService(st, offline{}, log),
		dashboard: service.NewDashboardService(st, loc, nil),
		out:       &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()},
	}, nil
}

func (e *shopEnv) Close() {
	if err := e.repo.Close(); err != nil {
		e.log.Warn("failed to close storage", zap.Error(err))
	}
	_ = e.log.Sync()
}
