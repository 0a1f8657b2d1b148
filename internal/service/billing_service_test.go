package service

import (
	"context"
	"math"
	"testing"

	"go-hardware-demo/internal/model"
	"go-hardware-demo/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCustomerNormalisesPhone(t *testing.T) {
	hub := &recordingHub{}
	svc := NewBillingService(newStore(t), hub, nopLogger(), "IN")

	c, err := svc.AddCustomer(context.Background(), model.NewCustomer{Name: "Sunil Traders", Phone: "9876543210", Address: "Station Road"})
	require.NoError(t, err)

	assert.Equal(t, "+91 98765 43210", c.Phone)
	assert.Len(t, svc.ListCustomers(), 1)
	assert.Equal(t, []string{"customer_created"}, hub.actions())
}

func TestQuoteInvoiceHasNoSideEffects(t *testing.T) {
	st := newSeededStore(t)
	svc := NewBillingService(st, &recordingHub{}, nopLogger(), "IN")
	before := st.Snapshot()

	totals, err := svc.QuoteInvoice([]model.LineInput{{Qty: 1, UnitPrice: 905}}, decimal.RequireFromString("0.18"))
	require.NoError(t, err)

	assert.Equal(t, model.Totals{Subtotal: 905, Tax: 163, Total: 1068}, totals)
	assert.Equal(t, before, st.Snapshot())

	_, err = svc.QuoteInvoice(nil, decimal.RequireFromString("1.5"))
	assert.ErrorIs(t, err, ErrInvalidTaxRate)
}

func TestCreateInvoice(t *testing.T) {
	st := newSeededStore(t)
	hub := &recordingHub{}
	svc := NewBillingService(st, hub, nopLogger(), "IN")
	customer := svc.ListCustomers()[1]
	cement := st.Items()[3]
	require.Equal(t, "HDW-202", cement.SKU)

	inv, err := svc.CreateInvoice(context.Background(), model.InvoiceInput{
		CustomerID:    customer.ID,
		Lines:         []model.LineInput{{ItemID: cement.ID, Qty: 2, UnitPrice: cement.SellingPrice}},
		TaxRate:       decimal.RequireFromString("0.18"),
		PaymentMethod: model.PaymentUPI,
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-0010", inv.InvoiceNo)
	assert.Equal(t, "Maa Durga Contractors", inv.CustomerName)
	assert.Equal(t, model.Totals{Subtotal: 780, Tax: 140, Total: 920}, inv.Totals)

	found, err := svc.FindInvoiceByNumber("INV-0010")
	require.NoError(t, err)
	assert.Equal(t, inv.ID, found.ID)

	assert.Equal(t, []string{"invoice_created"}, hub.actions())
	assert.Equal(t, "Invoice INV-0010 raised for Maa Durga Contractors", hub.last().Message)
}

func TestCreateInvoiceErrors(t *testing.T) {
	st := newSeededStore(t)
	hub := &recordingHub{}
	svc := NewBillingService(st, hub, nopLogger(), "IN")
	item := st.Items()[0]

	_, err := svc.CreateInvoice(context.Background(), model.InvoiceInput{
		CustomerID: "cust_missing",
		Lines:      []model.LineInput{{ItemID: item.ID, Qty: 1, UnitPrice: 1}},
	})
	assert.ErrorIs(t, err, store.ErrCustomerNotFound)

	_, err = svc.CreateInvoice(context.Background(), model.InvoiceInput{
		CustomerID: svc.ListCustomers()[0].ID,
		TaxRate:    decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, ErrInvalidTaxRate)

	assert.Len(t, svc.ListInvoices(), 3)
	assert.Empty(t, hub.actions())
}

func TestInvoiceLinesOutOfRange(t *testing.T) {
	st := newSeededStore(t)
	svc := NewBillingService(st, &recordingHub{}, nopLogger(), "IN")
	item := st.Items()[0]
	before := st.Snapshot()

	tests := []struct {
		name string
		line model.LineInput
	}{
		{name: "qty above stock limit", line: model.LineInput{ItemID: item.ID, Qty: math.MaxInt, UnitPrice: 52}},
		{name: "unit price would wrap", line: model.LineInput{ItemID: item.ID, Qty: 2, UnitPrice: math.MaxInt64}},
		{name: "negative unit price", line: model.LineInput{ItemID: item.ID, Qty: 1, UnitPrice: -52}},
		{name: "negative discount", line: model.LineInput{ItemID: item.ID, Qty: 1, UnitPrice: 52, Discount: math.MinInt64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.QuoteInvoice([]model.LineInput{tt.line}, decimal.Zero)
			assert.ErrorIs(t, err, ErrInvalidInvoiceLine)

			_, err = svc.CreateInvoice(context.Background(), model.InvoiceInput{
				CustomerID: svc.ListCustomers()[0].ID,
				Lines:      []model.LineInput{tt.line},
			})
			assert.ErrorIs(t, err, ErrInvalidInvoiceLine)
		})
	}
	assert.Equal(t, before, st.Snapshot())

	totals, err := svc.QuoteInvoice([]model.LineInput{{Qty: model.MaxQuantity, UnitPrice: model.MaxUnitPrice}}, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, model.MaxLineAmount, totals.Total)
}

func TestTogglePaid(t *testing.T) {
	hub := &recordingHub{}
	svc := NewBillingService(newSeededStore(t), hub, nopLogger(), "IN")
	inv, err := svc.FindInvoiceByNumber("INV-0008")
	require.NoError(t, err)

	toggled, err := svc.TogglePaid(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Paid)
	assert.Equal(t, "Invoice INV-0008 marked paid", hub.last().Message)

	_, err = svc.TogglePaid(context.Background(), "inv_missing")
	assert.ErrorIs(t, err, store.ErrInvoiceNotFound)
}

func TestBillingOptions(t *testing.T) {
	opts := NewBillingService(newStore(t), &recordingHub{}, nopLogger(), "IN").Options()

	require.Len(t, opts.TaxPresets, 4)
	assert.Equal(t, "18%", opts.TaxPresets[3].Label)
	assert.True(t, opts.TaxPresets[3].Rate.Equal(decimal.RequireFromString("0.18")))
	assert.Equal(t, []model.PaymentMethod{"Cash", "UPI", "Card", "Bank"}, opts.PaymentMethods)
}
