package handler

import (
	"time"

	"go-hardware-demo/internal/model"
	"go-hardware-demo/internal/service"

	"github.com/shopspring/decimal"
)

type CreateItemRequest struct {
	SKU          string `json:"sku" validate:"required,max=50"`
	Name         string `json:"name" validate:"required,max=255"`
	Brand        string `json:"brand" validate:"max=100"`
	Category     string `json:"category" validate:"max=100"`
	Unit         string `json:"unit" validate:"required,oneof=pcs box kg m bag"`
	CostPrice    int64  `json:"costPrice" validate:"gte=0"`
	SellingPrice int64  `json:"sellingPrice" validate:"gte=0"`
	Quantity     int    `json:"quantity"`
	MinStock     int    `json:"minStock"`
	Location     string `json:"location" validate:"max=100"`
}

func (r CreateItemRequest) toModel() model.NewItem {
	return model.NewItem{
		SKU:          r.SKU,
		Name:         r.Name,
		Brand:        r.Brand,
		Category:     r.Category,
		Unit:         model.Unit(r.Unit),
		CostPrice:    r.CostPrice,
		SellingPrice: r.SellingPrice,
		Quantity:     r.Quantity,
		MinStock:     r.MinStock,
		Location:     r.Location,
	}
}

// UpdateItemRequest carries only the fields being changed.
type UpdateItemRequest struct {
	SKU          *string `json:"sku" validate:"omitempty,min=1,max=50"`
	Name         *string `json:"name" validate:"omitempty,min=1,max=255"`
	Brand        *string `json:"brand" validate:"omitempty,max=100"`
	Category     *string `json:"category" validate:"omitempty,max=100"`
	Unit         *string `json:"unit" validate:"omitempty,oneof=pcs box kg m bag"`
	CostPrice    *int64  `json:"costPrice" validate:"omitempty,gte=0"`
	SellingPrice *int64  `json:"sellingPrice" validate:"omitempty,gte=0"`
	Quantity     *int    `json:"quantity"`
	MinStock     *int    `json:"minStock"`
	Location     *string `json:"location" validate:"omitempty,max=100"`
}

func (r UpdateItemRequest) toModel() model.ItemPatch {
	patch := model.ItemPatch{
		SKU:          r.SKU,
		Name:         r.Name,
		Brand:        r.Brand,
		Category:     r.Category,
		CostPrice:    r.CostPrice,
		SellingPrice: r.SellingPrice,
		Quantity:     r.Quantity,
		MinStock:     r.MinStock,
		Location:     r.Location,
	}
	if r.Unit != nil {
		unit := model.Unit(*r.Unit)
		patch.Unit = &unit
	}
	return patch
}

type RecordMovementRequest struct {
	Type          string     `json:"type" validate:"required,oneof=RECEIVE ISSUE ADJUST"`
	ItemID        string     `json:"itemId" validate:"required"`
	QuantityDelta int        `json:"quantityDelta" validate:"min=-1000000,max=1000000"`
	Note          string     `json:"note" validate:"max=500"`
	Reference     string     `json:"reference" validate:"max=100"`
	CreatedAt     *time.Time `json:"createdAt"`
}

func (r RecordMovementRequest) toModel() model.MovementInput {
	in := model.MovementInput{
		Type:          model.MovementType(r.Type),
		ItemID:        r.ItemID,
		QuantityDelta: r.QuantityDelta,
		Note:          r.Note,
		Reference:     r.Reference,
	}
	if r.CreatedAt != nil {
		in.CreatedAt = r.CreatedAt.UTC()
	}
	return in
}

// StockFormRequest mirrors the stock screen: an unsigned quantity and, for
// adjustments, a direction.
type StockFormRequest struct {
	Type      string `json:"type" validate:"required,oneof=RECEIVE ISSUE ADJUST"`
	ItemID    string `json:"itemId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"max=1000000"`
	Direction string `json:"direction" validate:"omitempty,oneof=INCREASE DECREASE"`
	Note      string `json:"note" validate:"max=500"`
	Reference string `json:"reference" validate:"max=100"`
}

func (r StockFormRequest) toService() service.StockRequest {
	return service.StockRequest{
		Type:      model.MovementType(r.Type),
		ItemID:    r.ItemID,
		Quantity:  r.Quantity,
		Direction: service.AdjustDirection(r.Direction),
		Note:      r.Note,
		Reference: r.Reference,
	}
}

type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,phone"`
	Address string `json:"address" validate:"max=500"`
	GSTIN   string `json:"gstin" validate:"omitempty,len=15,alphanum"`
}

type InvoiceLineRequest struct {
	ItemID    string `json:"itemId" validate:"required"`
	ItemName  string `json:"itemName"`
	Qty       int    `json:"qty" validate:"gte=1,max=1000000"`
	UnitPrice int64  `json:"unitPrice" validate:"gte=0,max=100000000"`
	Discount  int64  `json:"discount" validate:"gte=0,max=100000000000000"`
}

type CreateInvoiceRequest struct {
	CustomerID    string               `json:"customerId" validate:"required"`
	Lines         []InvoiceLineRequest `json:"lines" validate:"required,min=1,dive"`
	TaxRate       decimal.Decimal      `json:"taxRate"`
	Paid          bool                 `json:"paid"`
	PaymentMethod string               `json:"paymentMethod" validate:"omitempty,oneof=Cash UPI Card Bank"`
	CreatedAt     *time.Time           `json:"createdAt"`
}

func (r CreateInvoiceRequest) toModel() model.InvoiceInput {
	in := model.InvoiceInput{
		CustomerID:    r.CustomerID,
		Lines:         toLineInputs(r.Lines),
		TaxRate:       r.TaxRate,
		Paid:          r.Paid,
		PaymentMethod: model.PaymentMethod(r.PaymentMethod),
	}
	if r.CreatedAt != nil {
		in.CreatedAt = r.CreatedAt.UTC()
	}
	return in
}

type QuoteInvoiceRequest struct {
	Lines   []InvoiceLineRequest `json:"lines" validate:"dive"`
	TaxRate decimal.Decimal      `json:"taxRate"`
}

func toLineInputs(lines []InvoiceLineRequest) []model.LineInput {
	out := make([]model.LineInput, len(lines))
	for i, l := range lines {
		out[i] = model.LineInput{ItemID: l.ItemID, ItemName: l.ItemName, Qty: l.Qty, UnitPrice: l.UnitPrice, Discount: l.Discount}
	}
	return out
}
