// Package export renders shop data as XLSX workbooks.
package export

import (
	"fmt"
	"time"

	"go-hardware-demo/internal/model"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	ContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	InventorySheet = "Inventory"
	InvoiceSheet   = "Invoice"
)

// numFmtThousands is the built-in "#,##0" number format.
const numFmtThousands = 3

var inventoryHeaders = []string{
	"SKU", "Name", "Brand", "Category", "Unit", "Location",
	"Quantity", "Min Stock", "Cost Price", "Selling Price", "Stock Value", "Status",
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

type styles struct {
	header int
	money  int
	total  int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E7E6E6"}},
	}); err != nil {
		return s, err
	}
	if s.money, err = f.NewStyle(&excelize.Style{NumFmt: numFmtThousands}); err != nil {
		return s, err
	}
	if s.total, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: numFmtThousands}); err != nil {
		return s, err
	}
	return s, nil
}

// InventoryWorkbook lists every item with its stock value and a low-stock
// status, followed by a total row.
func InventoryWorkbook(items []model.InventoryItem) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", InventorySheet); err != nil {
		return nil, err
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	for i, h := range inventoryHeaders {
		f.SetCellValue(InventorySheet, cell(i+1, 1), h)
	}
	f.SetCellStyle(InventorySheet, "A1", cell(len(inventoryHeaders), 1), st.header)

	var totalValue int64
	for i, it := range items {
		row := i + 2
		status := "OK"
		if it.IsLowStock() {
			status = "Low"
		}
		values := []interface{}{
			it.SKU, it.Name, it.Brand, it.Category, string(it.Unit), it.Location,
			it.Quantity, it.MinStock, it.CostPrice, it.SellingPrice, it.StockValue(), status,
		}
		for col, v := range values {
			f.SetCellValue(InventorySheet, cell(col+1, row), v)
		}
		totalValue += it.StockValue()
	}
	if len(items) > 0 {
		f.SetCellStyle(InventorySheet, "I2", cell(11, len(items)+1), st.money)
	}

	totalRow := len(items) + 2
	f.SetCellValue(InventorySheet, cell(1, totalRow), "Total")
	f.SetCellValue(InventorySheet, cell(11, totalRow), totalValue)
	f.SetCellStyle(InventorySheet, cell(1, totalRow), cell(11, totalRow), st.total)

	f.SetColWidth(InventorySheet, "A", "A", 12)
	f.SetColWidth(InventorySheet, "B", "B", 24)
	f.SetColWidth(InventorySheet, "C", "F", 18)
	f.SetColWidth(InventorySheet, "G", "L", 13)
	return f, nil
}

// Row layout of the invoice sheet.
const (
	invoiceLineHeaderRow = 9
	invoiceFirstLineRow  = 10
)

// InvoiceWorkbook renders a printable invoice. Dates are shown in loc.
// It returns the workbook and a suggested file name.
func InvoiceWorkbook(shopName string, inv model.Invoice, loc *time.Location) (*excelize.File, string, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", InvoiceSheet); err != nil {
		return nil, "", err
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, "", err
	}

	gstin := inv.CustomerGSTIN
	if gstin == "" {
		gstin = "-"
	}
	header := [][2]interface{}{
		{shopName, nil},
		{"Invoice", inv.InvoiceNo},
		{"Date", inv.CreatedAt.In(loc).Format("02 Jan 2006")},
		{"Bill To", inv.CustomerName},
		{"Phone", inv.CustomerPhone},
		{"Address", inv.CustomerAddress},
		{"GSTIN", gstin},
	}
	for i, kv := range header {
		f.SetCellValue(InvoiceSheet, cell(1, i+1), kv[0])
		if kv[1] != nil {
			f.SetCellValue(InvoiceSheet, cell(2, i+1), kv[1])
		}
	}
	f.SetCellStyle(InvoiceSheet, "A1", "A1", st.header)

	for i, h := range []string{"#", "Item", "Qty", "Unit Price", "Discount", "Amount"} {
		f.SetCellValue(InvoiceSheet, cell(i+1, invoiceLineHeaderRow), h)
	}
	f.SetCellStyle(InvoiceSheet, cell(1, invoiceLineHeaderRow), cell(6, invoiceLineHeaderRow), st.header)

	for i, line := range inv.Lines {
		row := invoiceFirstLineRow + i
		values := []interface{}{i + 1, line.ItemName, line.Qty, line.UnitPrice, line.Discount, line.Amount()}
		for col, v := range values {
			f.SetCellValue(InvoiceSheet, cell(col+1, row), v)
		}
	}
	if len(inv.Lines) > 0 {
		f.SetCellStyle(InvoiceSheet, cell(4, invoiceFirstLineRow), cell(6, invoiceFirstLineRow+len(inv.Lines)-1), st.money)
	}

	status := "Unpaid"
	if inv.Paid {
		status = fmt.Sprintf("Paid (%s)", inv.PaymentMethod)
	}
	summaryRow := invoiceFirstLineRow + len(inv.Lines) + 1
	summary := [][2]interface{}{
		{"Subtotal", inv.Subtotal},
		{fmt.Sprintf("Tax (%s%%)", inv.TaxRate.Mul(decimal.NewFromInt(100)).String()), inv.Tax},
		{"Total", inv.Total},
		{"Status", status},
	}
	for i, kv := range summary {
		f.SetCellValue(InvoiceSheet, cell(5, summaryRow+i), kv[0])
		f.SetCellValue(InvoiceSheet, cell(6, summaryRow+i), kv[1])
	}
	f.SetCellStyle(InvoiceSheet, cell(5, summaryRow), cell(6, summaryRow+1), st.money)
	f.SetCellStyle(InvoiceSheet, cell(5, summaryRow+2), cell(6, summaryRow+2), st.total)

	f.SetColWidth(InvoiceSheet, "A", "A", 10)
	f.SetColWidth(InvoiceSheet, "B", "B", 28)
	f.SetColWidth(InvoiceSheet, "C", "F", 14)
	return f, inv.InvoiceNo + ".xlsx", nil
}
