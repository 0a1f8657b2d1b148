package export

import (
	"testing"
	"time"

	"go-hardware-demo/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func cellValue(t *testing.T, f *excelize.File, sheet, axis string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, axis)
	require.NoError(t, err)
	return v
}

func TestInventoryWorkbook(t *testing.T) {
	items := []model.InventoryItem{
		{SKU: "HDW-201", Name: "Wall Putty 20kg", Unit: model.UnitBag, CostPrice: 410, SellingPrice: 465, Quantity: 28, MinStock: 30},
		{SKU: "HDW-402", Name: "Teflon Tape", Unit: model.UnitPcs, CostPrice: 9, SellingPrice: 15, Quantity: 174, MinStock: 50},
	}

	f, err := InventoryWorkbook(items)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{InventorySheet}, f.GetSheetList())
	assert.Equal(t, "SKU", cellValue(t, f, InventorySheet, "A1"))
	assert.Equal(t, "Status", cellValue(t, f, InventorySheet, "L1"))
	assert.Equal(t, "HDW-201", cellValue(t, f, InventorySheet, "A2"))
	assert.Equal(t, "Low", cellValue(t, f, InventorySheet, "L2"))
	assert.Equal(t, "OK", cellValue(t, f, InventorySheet, "L3"))
	assert.Equal(t, "Total", cellValue(t, f, InventorySheet, "A4"))

	raw, err := f.GetCellValue(InventorySheet, "K4", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "13046", raw)
}

func TestInventoryWorkbookEmpty(t *testing.T) {
	f, err := InventoryWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Total", cellValue(t, f, InventorySheet, "A2"))
}

func TestInvoiceWorkbook(t *testing.T) {
	inv := model.Invoice{
		InvoiceNo:       "INV-0007",
		CustomerName:    "Rohit Sharma",
		CustomerPhone:   "+91 98765 43210",
		CustomerAddress: "Ward 3, Main Road",
		Lines: []model.InvoiceLine{
			{ItemName: "PVC Elbow 1 inch", Qty: 10, UnitPrice: 12},
			{ItemName: "Teflon Tape", Qty: 6, UnitPrice: 15},
		},
		TaxRate:       decimal.RequireFromString("0.18"),
		Totals:        model.Totals{Subtotal: 210, Tax: 38, Total: 248},
		Paid:          true,
		PaymentMethod: model.PaymentUPI,
		CreatedAt:     time.Date(2026, 10, 14, 20, 0, 0, 0, time.UTC),
	}
	ist := time.FixedZone("IST", 5*3600+30*60)

	f, name, err := InvoiceWorkbook("Sharma Hardware", inv, ist)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "INV-0007.xlsx", name)
	assert.Equal(t, "Sharma Hardware", cellValue(t, f, InvoiceSheet, "A1"))
	assert.Equal(t, "INV-0007", cellValue(t, f, InvoiceSheet, "B2"))
	assert.Equal(t, "15 Oct 2026", cellValue(t, f, InvoiceSheet, "B3"))
	assert.Equal(t, "Rohit Sharma", cellValue(t, f, InvoiceSheet, "B4"))
	assert.Equal(t, "-", cellValue(t, f, InvoiceSheet, "B7"))

	assert.Equal(t, "Item", cellValue(t, f, InvoiceSheet, "B9"))
	assert.Equal(t, "PVC Elbow 1 inch", cellValue(t, f, InvoiceSheet, "B10"))
	assert.Equal(t, "Teflon Tape", cellValue(t, f, InvoiceSheet, "B11"))

	assert.Equal(t, "Subtotal", cellValue(t, f, InvoiceSheet, "E13"))
	assert.Equal(t, "Tax (18%)", cellValue(t, f, InvoiceSheet, "E14"))
	assert.Equal(t, "Total", cellValue(t, f, InvoiceSheet, "E15"))
	assert.Equal(t, "248", cellValue(t, f, InvoiceSheet, "F15"))
	assert.Equal(t, "Paid (UPI)", cellValue(t, f, InvoiceSheet, "F16"))
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹803", FormatINR(803))
	assert.Contains(t, FormatINR(4560), "4,560")
	assert.Equal(t, "₹0", FormatINR(0))
}
