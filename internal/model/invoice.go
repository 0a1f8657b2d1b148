package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCard PaymentMethod = "Card"
	PaymentBank PaymentMethod = "Bank"
)

var PaymentMethods = []PaymentMethod{PaymentCash, PaymentUPI, PaymentCard, PaymentBank}

// Bounds accepted for a single invoice line, in whole rupees.
const (
	MaxUnitPrice  int64 = 100_000_000
	MaxLineAmount       = MaxQuantity * MaxUnitPrice
)

// InvoiceLine keeps the item name and price as they were when the invoice was raised.
type InvoiceLine struct {
	ID        string `json:"id"`
	ItemID    string `json:"itemId"`
	ItemName  string `json:"itemName"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Discount  int64  `json:"discount"`
}

func (l InvoiceLine) Amount() int64 {
	return int64(l.Qty)*l.UnitPrice - l.Discount
}

// LineInput is an invoice line before it has an identity. An empty ItemName
// is filled from the current item record.
type LineInput struct {
	ItemID    string `json:"itemId"`
	ItemName  string `json:"itemName"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Discount  int64  `json:"discount"`
}

func (l LineInput) Amount() int64 {
	return int64(l.Qty)*l.UnitPrice - l.Discount
}

type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

type Invoice struct {
	ID              string          `json:"id"`
	InvoiceNo       string          `json:"invoiceNo"`
	CustomerID      string          `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerAddress string          `json:"customerAddress"`
	CustomerGSTIN   string          `json:"customerGstin,omitempty"`
	Lines           []InvoiceLine   `json:"lines"`
	TaxRate         decimal.Decimal `json:"taxRate"`
	Totals
	Paid          bool          `json:"paid"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// InvoiceInput is what a caller supplies to raise an invoice. A zero
// CreatedAt means "now"; an empty PaymentMethod defaults to Cash.
type InvoiceInput struct {
	CustomerID    string          `json:"customerId"`
	Lines         []LineInput     `json:"lines"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	Paid          bool            `json:"paid"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
}
