package service

import (
	"context"

	"go-hardware-demo/internal/store"

	"go.uber.org/zap"
)

type ShopInfo struct {
	ShopName  string `json:"shopName"`
	Seeded    bool   `json:"seeded"`
	Items     int    `json:"items"`
	Customers int    `json:"customers"`
	Invoices  int    `json:"invoices"`
	Movements int    `json:"movements"`
}

type DemoService interface {
	SeedIfNeeded(ctx context.Context) (bool, error)
	Reset(ctx context.Context) error
	Purge(ctx context.Context) error
	ShopInfo() ShopInfo
}

type demoService struct {
	store *store.Store
	hub   Broadcaster
	log   *zap.Logger
}

func NewDemoService(st *store.Store, hub Broadcaster, log *zap.Logger) DemoService {
	return &demoService{store: st, hub: hub, log: log}
}

func (s *demoService) SeedIfNeeded(ctx context.Context) (bool, error) {
	seeded, err := s.store.SeedIfNeeded(ctx)
	if err != nil {
		return false, err
	}
	if seeded {
		info := s.ShopInfo()
		s.log.Info("demo data loaded", zap.String("shop", info.ShopName), zap.Int("items", info.Items), zap.Int("invoices", info.Invoices))
		s.hub.Publish(storeEvent("demo_seeded", "Sample data loaded", info))
	}
	return seeded, nil
}

func (s *demoService) Reset(ctx context.Context) error {
	if err := s.store.ResetDemo(ctx); err != nil {
		return err
	}
	s.log.Info("demo data reset")
	s.hub.Publish(storeEvent("demo_reset", "Demo data cleared", s.ShopInfo()))
	return nil
}

// Purge deletes the persisted entry instead of saving an empty snapshot.
func (s *demoService) Purge(ctx context.Context) error {
	if err := s.store.Purge(ctx); err != nil {
		return err
	}
	s.log.Info("persisted demo data purged")
	s.hub.Publish(storeEvent("demo_reset", "Demo data purged", s.ShopInfo()))
	return nil
}

func (s *demoService) ShopInfo() ShopInfo {
	snap := s.store.Snapshot()
	return ShopInfo{
		ShopName:  snap.ShopName,
		Seeded:    snap.Seeded,
		Items:     len(snap.Items),
		Customers: len(snap.Customers),
		Invoices:  len(snap.Invoices),
		Movements: len(snap.Movements),
	}
}
