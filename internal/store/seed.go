package store

import (
	_ "embed"
	"fmt"
	"time"

	"go-hardware-demo/internal/model"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

type sampleDataset struct {
	ShopName  string           `yaml:"shopName"`
	Items     []sampleItem     `yaml:"items"`
	Customers []sampleCustomer `yaml:"customers"`
	Invoices  []sampleInvoice  `yaml:"invoices"`
}

type sampleItem struct {
	SKU            string `yaml:"sku"`
	Name           string `yaml:"name"`
	Brand          string `yaml:"brand"`
	Category       string `yaml:"category"`
	Unit           string `yaml:"unit"`
	CostPrice      int64  `yaml:"costPrice"`
	SellingPrice   int64  `yaml:"sellingPrice"`
	Quantity       int    `yaml:"quantity"`
	MinStock       int    `yaml:"minStock"`
	Location       string `yaml:"location"`
	UpdatedDaysAgo int    `yaml:"updatedDaysAgo"`
}

type sampleCustomer struct {
	Ref     string `yaml:"ref"`
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
	GSTIN   string `yaml:"gstin"`
}

type sampleInvoice struct {
	InvoiceNo      string       `yaml:"invoiceNo"`
	Customer       string       `yaml:"customer"`
	TaxRate        string       `yaml:"taxRate"`
	Paid           bool         `yaml:"paid"`
	PaymentMethod  string       `yaml:"paymentMethod"`
	CreatedDaysAgo int          `yaml:"createdDaysAgo"`
	Lines          []sampleLine `yaml:"lines"`
}

type sampleLine struct {
	SKU      string `yaml:"sku"`
	Qty      int    `yaml:"qty"`
	Discount int64  `yaml:"discount"`
}

// buildSample materialises the embedded dataset relative to now. Item
// quantities in the file are opening stock; the sales on the sample invoices
// are issued against them, so the result matches a shop that has traded.
func buildSample(now time.Time, newID func(string) string) (model.Snapshot, error) {
	var data sampleDataset
	if err := yaml.Unmarshal(sampleYAML, &data); err != nil {
		return model.Snapshot{}, fmt.Errorf("parse sample dataset: %w", err)
	}
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	snap := model.EmptySnapshot()
	snap.ShopName = data.ShopName
	snap.Seeded = true

	bySKU := make(map[string]int, len(data.Items))
	for i, it := range data.Items {
		snap.Items = append(snap.Items, model.InventoryItem{
			ID:           newID(model.PrefixItem),
			SKU:          it.SKU,
			Name:         it.Name,
			Brand:        it.Brand,
			Category:     it.Category,
			Unit:         model.Unit(it.Unit),
			CostPrice:    it.CostPrice,
			SellingPrice: it.SellingPrice,
			Quantity:     model.ClampQuantity(it.Quantity),
			MinStock:     model.ClampQuantity(it.MinStock),
			Location:     it.Location,
			UpdatedAt:    daysAgo(it.UpdatedDaysAgo),
		})
		bySKU[it.SKU] = i
	}

	byRef := make(map[string]model.Customer, len(data.Customers))
	for _, c := range data.Customers {
		customer := model.Customer{
			ID:      newID(model.PrefixCustomer),
			Name:    c.Name,
			Phone:   c.Phone,
			Address: c.Address,
			GSTIN:   c.GSTIN,
		}
		snap.Customers = append(snap.Customers, customer)
		byRef[c.Ref] = customer
	}

	for _, si := range data.Invoices {
		customer, ok := byRef[si.Customer]
		if !ok {
			return model.Snapshot{}, fmt.Errorf("sample invoice %s: unknown customer %q", si.InvoiceNo, si.Customer)
		}
		rate, err := decimal.NewFromString(si.TaxRate)
		if err != nil {
			return model.Snapshot{}, fmt.Errorf("sample invoice %s: tax rate: %w", si.InvoiceNo, err)
		}

		lines := make([]model.InvoiceLine, 0, len(si.Lines))
		for _, sl := range si.Lines {
			idx, ok := bySKU[sl.SKU]
			if !ok {
				return model.Snapshot{}, fmt.Errorf("sample invoice %s: unknown sku %q", si.InvoiceNo, sl.SKU)
			}
			item := snap.Items[idx]
			lines = append(lines, model.InvoiceLine{
				ID:        newID(model.PrefixLine),
				ItemID:    item.ID,
				ItemName:  item.Name,
				Qty:       sl.Qty,
				UnitPrice: item.SellingPrice,
				Discount:  sl.Discount,
			})
		}

		snap.Invoices = append(snap.Invoices, model.Invoice{
			ID:              newID(model.PrefixInvoice),
			InvoiceNo:       si.InvoiceNo,
			CustomerID:      customer.ID,
			CustomerName:    customer.Name,
			CustomerPhone:   customer.Phone,
			CustomerAddress: customer.Address,
			CustomerGSTIN:   customer.GSTIN,
			Lines:           lines,
			TaxRate:         rate,
			Totals:          ComputeTotals(lines, rate),
			Paid:            si.Paid,
			PaymentMethod:   model.PaymentMethod(si.PaymentMethod),
			CreatedAt:       daysAgo(si.CreatedDaysAgo),
		})
	}

	for _, inv := range snap.Invoices {
		for _, line := range inv.Lines {
			snap.Movements = append(snap.Movements, model.StockMovement{
				ID:            newID(model.PrefixMovement),
				Type:          model.MovementIssue,
				ItemID:        line.ItemID,
				ItemName:      line.ItemName,
				QuantityDelta: -model.ClampQuantity(line.Qty),
				Note:          "Sold via " + inv.InvoiceNo,
				Reference:     inv.InvoiceNo,
				CreatedAt:     inv.CreatedAt,
			})
		}
	}

	for _, mov := range snap.Movements {
		idx := indexOfItem(snap.Items, mov.ItemID)
		snap.Items[idx].Quantity = model.ClampQuantity(snap.Items[idx].Quantity + mov.QuantityDelta)
	}

	return snap, nil
}
