package service

import (
	"context"
	"math"
	"testing"

	"go-hardware-demo/internal/model"
	"go-hardware-demo/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skuID(t *testing.T, svc InventoryService, sku string) string {
	t.Helper()
	items := svc.ListItems(sku)
	require.Len(t, items, 1)
	return items[0].ID
}

func TestListItemsSearch(t *testing.T) {
	svc := NewInventoryService(newSeededStore(t), &recordingHub{}, nopLogger())

	assert.Len(t, svc.ListItems(""), 7)
	assert.Len(t, svc.ListItems("SUPREME"), 2)
	assert.Len(t, svc.ListItems("cement & putty"), 2)
	assert.Len(t, svc.ListItems("hdw-40"), 2)
	assert.Empty(t, svc.ListItems("hammer"))
}

func TestLowStock(t *testing.T) {
	svc := NewInventoryService(newSeededStore(t), &recordingHub{}, nopLogger())

	low := svc.LowStock()
	require.Len(t, low, 2)
	names := []string{low[0].Name, low[1].Name}
	assert.ElementsMatch(t, []string{"Wall Putty 20kg", "LED Bulb 9W"}, names)

	empty := NewInventoryService(newStore(t), &recordingHub{}, nopLogger())
	assert.NotNil(t, empty.LowStock())
	assert.Empty(t, empty.LowStock())
}

func TestStockRequestDelta(t *testing.T) {
	tests := []struct {
		name string
		req  StockRequest
		want int
	}{
		{name: "receive", req: StockRequest{Type: model.MovementReceive, Quantity: 12}, want: 12},
		{name: "issue", req: StockRequest{Type: model.MovementIssue, Quantity: 4}, want: -4},
		{name: "adjust decrease", req: StockRequest{Type: model.MovementAdjust, Quantity: 3, Direction: AdjustDecrease}, want: -3},
		{name: "adjust increase", req: StockRequest{Type: model.MovementAdjust, Quantity: 3, Direction: AdjustIncrease}, want: 3},
		{name: "adjust without direction increases", req: StockRequest{Type: model.MovementAdjust, Quantity: 2}, want: 2},
		{name: "zero counts as one", req: StockRequest{Type: model.MovementIssue}, want: -1},
		{name: "negative counts as one", req: StockRequest{Type: model.MovementReceive, Quantity: -8}, want: 1},
		{name: "huge receive is bounded", req: StockRequest{Type: model.MovementReceive, Quantity: math.MaxInt}, want: model.MaxQuantity},
		{name: "huge issue is bounded", req: StockRequest{Type: model.MovementIssue, Quantity: math.MaxInt}, want: -model.MaxQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Delta()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := StockRequest{Type: "TRANSFER", Quantity: 1}.Delta()
	assert.ErrorIs(t, err, ErrInvalidStockRequest)
}

func TestRecordStock(t *testing.T) {
	hub := &recordingHub{}
	svc := NewInventoryService(newSeededStore(t), hub, nopLogger())
	tapeID := skuID(t, svc, "HDW-402")

	mov, err := svc.RecordStock(context.Background(), StockRequest{
		Type: model.MovementAdjust, ItemID: tapeID, Quantity: 4, Direction: AdjustDecrease,
		Note: "  damaged roll  ", Reference: "   ",
	})
	require.NoError(t, err)

	assert.Equal(t, -4, mov.QuantityDelta)
	assert.Equal(t, "damaged roll", mov.Note)
	assert.Empty(t, mov.Reference)

	item, err := svc.GetItem(tapeID)
	require.NoError(t, err)
	assert.Equal(t, 170, item.Quantity)

	assert.Equal(t, []string{"movement_recorded"}, hub.actions())
	assert.Equal(t, "removed 4 units of 'Teflon Tape' (ADJUST)", hub.last().Message)
	payload := hub.last().Data.(map[string]interface{})
	assert.Equal(t, 170, payload["new_quantity"])
}

func TestRecordMovementReportsSaturatedQuantity(t *testing.T) {
	hub := &recordingHub{}
	svc := NewInventoryService(newSeededStore(t), hub, nopLogger())
	pipeID := skuID(t, svc, "HDW-101")

	_, err := svc.RecordMovement(context.Background(), model.MovementInput{Type: model.MovementReceive, ItemID: pipeID, QuantityDelta: math.MaxInt})
	require.NoError(t, err)

	item, err := svc.GetItem(pipeID)
	require.NoError(t, err)
	assert.Equal(t, model.MaxQuantity, item.Quantity)
	payload := hub.last().Data.(map[string]interface{})
	assert.Equal(t, model.MaxQuantity, payload["new_quantity"])
}

func TestRecordStockUnknownItemBroadcastsNothing(t *testing.T) {
	hub := &recordingHub{}
	svc := NewInventoryService(newSeededStore(t), hub, nopLogger())

	_, err := svc.RecordStock(context.Background(), StockRequest{Type: model.MovementReceive, ItemID: "item_x", Quantity: 1})

	assert.ErrorIs(t, err, store.ErrItemNotFound)
	assert.Empty(t, hub.actions())
}

func TestItemLifecycleEvents(t *testing.T) {
	hub := &recordingHub{}
	svc := NewInventoryService(newStore(t), hub, nopLogger())
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, model.NewItem{SKU: "HDW-500", Name: "Hacksaw Blade", Unit: model.UnitPcs, Quantity: 30, MinStock: 10})
	require.NoError(t, err)

	qty := 5
	updated, err := svc.UpdateItem(ctx, item.ID, model.ItemPatch{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.True(t, updated.IsLowStock())

	require.NoError(t, svc.DeleteItem(ctx, item.ID))
	assert.ErrorIs(t, svc.DeleteItem(ctx, item.ID), store.ErrItemNotFound)

	_, err = svc.UpdateItem(ctx, item.ID, model.ItemPatch{Quantity: &qty})
	assert.ErrorIs(t, err, store.ErrItemNotFound)

	assert.Equal(t, []string{"item_created", "item_updated", "item_deleted"}, hub.actions())
}

func TestListMovementsLimit(t *testing.T) {
	svc := NewInventoryService(newSeededStore(t), &recordingHub{}, nopLogger())

	assert.Len(t, svc.ListMovements(0), 5)
	assert.Len(t, svc.ListMovements(3), 3)
	assert.Len(t, svc.ListMovements(50), 5)
}
