package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hardware-demo/internal/config"
	"go-hardware-demo/internal/handler"
	"go-hardware-demo/internal/repository"
	"go-hardware-demo/internal/service"
	"go-hardware-demo/internal/store"
	"go-hardware-demo/internal/ws"
	"go-hardware-demo/pkg/jwt"
	"go-hardware-demo/pkg/logger"
	"go-hardware-demo/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Env
	envErr := godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if envErr != nil {
		log.Debug(".env file not found, relying on system env")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx := context.Background()
	validator.SetDefaultRegion(cfg.Shop.PhoneRegion)

	// 2. Setup Storage
	repo, err := repository.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer repo.Close()

	st := store.New(repo, store.WithLogger(log), store.WithStrictLoad(cfg.Storage.StrictLoad))
	if err := st.Load(ctx); err != nil {
		return err
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub(log)
	go wsHub.Run()
	defer wsHub.Stop()

	// 4. Dependency Injection (Wiring Layers)
	loc := cfg.Shop.Location()
	demoService := service.NewDemoService(st, wsHub, log)
	if cfg.Shop.AutoSeed {
		if _, err := demoService.SeedIfNeeded(ctx); err != nil {
			log.Warn("failed to seed demo data", zap.Error(err))
		}
	}

	issuer := jwt.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer)
	authService, err := service.NewAuthService(cfg.Auth.OperatorPassword, issuer, wsHub, log)
	if err != nil {
		return err
	}
	invService := service.NewInventoryService(st, wsHub, log)
	billingService := service.NewBillingService(st, wsHub, log, cfg.Shop.PhoneRegion)
	dashService := service.NewDashboardService(st, loc, time.Now)

	handlers := handler.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Inventory: handler.NewInventoryHandler(invService),
		Billing:   handler.NewBillingHandler(billingService, demoService, loc),
		Dashboard: handler.NewDashboardHandler(dashService),
		Demo:      handler.NewDemoHandler(demoService, st),
	}

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Hardware Shop Demo v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.AllowOrigins}))

	// 6. Routes
	handler.SetupRoutes(app, handlers, authService, wsHub.Handler)

	// 7. Graceful Shutdown
	listenErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("server listening", zap.String("addr", addr), zap.String("storage", cfg.Storage.Driver))
		listenErr <- app.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		return err
	case <-quit:
	}

	log.Info("shutting down server")
	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("server exited")
	return nil
}
