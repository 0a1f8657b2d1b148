package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-hardware-demo/internal/model"
	"go-hardware-demo/internal/store"

	"go.uber.org/zap"
)

var ErrInvalidStockRequest = errors.New("invalid stock request")

type AdjustDirection string

const (
	AdjustIncrease AdjustDirection = "INCREASE"
	AdjustDecrease AdjustDirection = "DECREASE"
)

// StockRequest is the counter-side stock form: an unsigned quantity plus a
// movement type and, for adjustments, a direction.
type StockRequest struct {
	Type      model.MovementType
	ItemID    string
	Quantity  int
	Direction AdjustDirection
	Note      string
	Reference string
}

// Delta converts the form into a signed quantity change. Quantities are
// bounded to [1, MaxQuantity].
func (r StockRequest) Delta() (int, error) {
	q := min(max(1, r.Quantity), model.MaxQuantity)
	switch r.Type {
	case model.MovementReceive:
		return q, nil
	case model.MovementIssue:
		return -q, nil
	case model.MovementAdjust:
		if r.Direction == AdjustDecrease {
			return -q, nil
		}
		return q, nil
	default:
		return 0, fmt.Errorf("%w: unknown movement type %q", ErrInvalidStockRequest, r.Type)
	}
}

type InventoryService interface {
	ListItems(query string) []model.InventoryItem
	GetItem(id string) (model.InventoryItem, error)
	CreateItem(ctx context.Context, in model.NewItem) (model.InventoryItem, error)
	UpdateItem(ctx context.Context, id string, patch model.ItemPatch) (model.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error
	LowStock() []model.InventoryItem
	ListMovements(limit int) []model.StockMovement
	RecordMovement(ctx context.Context, in model.MovementInput) (model.StockMovement, error)
	RecordStock(ctx context.Context, req StockRequest) (model.StockMovement, error)
}

type inventoryService struct {
	store *store.Store
	hub   Broadcaster
	log   *zap.Logger
}

func NewInventoryService(st *store.Store, hub Broadcaster, log *zap.Logger) InventoryService {
	return &inventoryService{store: st, hub: hub, log: log}
}

func (s *inventoryService) ListItems(query string) []model.InventoryItem {
	items := s.store.Items()
	if strings.TrimSpace(query) == "" {
		return items
	}
	matched := make([]model.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.Matches(query) {
			matched = append(matched, it)
		}
	}
	return matched
}

func (s *inventoryService) GetItem(id string) (model.InventoryItem, error) {
	return s.store.Item(id)
}

func (s *inventoryService) CreateItem(ctx context.Context, in model.NewItem) (model.InventoryItem, error) {
	item, err := s.store.AddItem(ctx, in)
	if err != nil {
		return model.InventoryItem{}, err
	}

	s.log.Info("item created", zap.String("item_id", item.ID), zap.String("sku", item.SKU))
	s.hub.Publish(storeEvent("item_created", fmt.Sprintf("Item '%s' added", item.Name), item))
	return item, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, patch model.ItemPatch) (model.InventoryItem, error) {
	before, err := s.store.Item(id)
	if err != nil {
		return model.InventoryItem{}, err
	}
	item, err := s.store.UpdateItem(ctx, id, patch)
	if err != nil {
		return model.InventoryItem{}, err
	}

	s.log.Info("item updated", zap.String("item_id", item.ID), zap.Int("old_quantity", before.Quantity), zap.Int("new_quantity", item.Quantity))
	s.hub.Publish(storeEvent("item_updated", fmt.Sprintf("Item '%s' updated", item.Name), map[string]interface{}{
		"item":         item,
		"old_quantity": before.Quantity,
	}))
	return item, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.store.Item(id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteItem(ctx, id); err != nil {
		return err
	}

	s.log.Info("item deleted", zap.String("item_id", id), zap.String("sku", item.SKU))
	s.hub.Publish(storeEvent("item_deleted", fmt.Sprintf("Item '%s' removed", item.Name), map[string]string{"id": id}))
	return nil
}

func (s *inventoryService) LowStock() []model.InventoryItem {
	var low []model.InventoryItem
	for _, it := range s.store.Items() {
		if it.IsLowStock() {
			low = append(low, it)
		}
	}
	if low == nil {
		return []model.InventoryItem{}
	}
	return low
}

// ListMovements returns the newest movements first; limit <= 0 returns all.
func (s *inventoryService) ListMovements(limit int) []model.StockMovement {
	movements := s.store.Movements()
	if limit > 0 && len(movements) > limit {
		return movements[:limit]
	}
	return movements
}

func (s *inventoryService) RecordMovement(ctx context.Context, in model.MovementInput) (model.StockMovement, error) {
	mov, item, err := s.store.RecordMovement(ctx, in)
	if err != nil {
		return model.StockMovement{}, err
	}

	s.log.Info("stock movement recorded",
		zap.String("movement_id", mov.ID),
		zap.String("type", string(mov.Type)),
		zap.Int("delta", mov.QuantityDelta),
		zap.Int("new_quantity", item.Quantity),
	)
	s.hub.Publish(storeEvent("movement_recorded", movementMessage(mov), map[string]interface{}{
		"movement":     mov,
		"new_quantity": item.Quantity,
	}))
	return mov, nil
}

func (s *inventoryService) RecordStock(ctx context.Context, req StockRequest) (model.StockMovement, error) {
	delta, err := req.Delta()
	if err != nil {
		return model.StockMovement{}, err
	}
	return s.RecordMovement(ctx, model.MovementInput{
		Type:          req.Type,
		ItemID:        req.ItemID,
		QuantityDelta: delta,
		Note:          strings.TrimSpace(req.Note),
		Reference:     strings.TrimSpace(req.Reference),
	})
}

func movementMessage(mov model.StockMovement) string {
	verb := "added"
	n := mov.QuantityDelta
	if n < 0 {
		verb = "removed"
		n = -n
	}
	return fmt.Sprintf("%s %d units of '%s' (%s)", verb, n, mov.ItemName, mov.Type)
}
