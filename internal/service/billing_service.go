package service

import (
	"context"
	"errors"
	"fmt"

	"go-hardware-demo/internal/model"
	"go-hardware-demo/internal/store"
	"go-hardware-demo/pkg/validator"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidTaxRate     = errors.New("tax rate must be between 0 and 1")
	ErrInvalidInvoiceLine = errors.New("invoice line out of range")
)

type TaxPreset struct {
	Label string          `json:"label"`
	Rate  decimal.Decimal `json:"rate"`
}

var TaxPresets = []TaxPreset{
	{Label: "0%", Rate: decimal.Zero},
	{Label: "5%", Rate: decimal.New(5, -2)},
	{Label: "12%", Rate: decimal.New(12, -2)},
	{Label: "18%", Rate: decimal.New(18, -2)},
}

type BillingOptions struct {
	TaxPresets     []TaxPreset           `json:"taxPresets"`
	PaymentMethods []model.PaymentMethod `json:"paymentMethods"`
}

type BillingService interface {
	ListCustomers() []model.Customer
	AddCustomer(ctx context.Context, in model.NewCustomer) (model.Customer, error)
	ListInvoices() []model.Invoice
	GetInvoice(id string) (model.Invoice, error)
	FindInvoiceByNumber(invoiceNo string) (model.Invoice, error)
	QuoteInvoice(lines []model.LineInput, taxRate decimal.Decimal) (model.Totals, error)
	CreateInvoice(ctx context.Context, in model.InvoiceInput) (model.Invoice, error)
	TogglePaid(ctx context.Context, id string) (model.Invoice, error)
	Options() BillingOptions
}

type billingService struct {
	store  *store.Store
	hub    Broadcaster
	log    *zap.Logger
	region string
}

func NewBillingService(st *store.Store, hub Broadcaster, log *zap.Logger, phoneRegion string) BillingService {
	return &billingService{store: st, hub: hub, log: log, region: phoneRegion}
}

func (s *billingService) ListCustomers() []model.Customer {
	return s.store.Customers()
}

// AddCustomer stores the phone number in international format when it parses.
func (s *billingService) AddCustomer(ctx context.Context, in model.NewCustomer) (model.Customer, error) {
	if phone, err := validator.NormalizePhone(in.Phone, s.region); err == nil {
		in.Phone = phone
	}
	customer, err := s.store.AddCustomer(ctx, in)
	if err != nil {
		return model.Customer{}, err
	}

	s.log.Info("customer added", zap.String("customer_id", customer.ID))
	s.hub.Publish(storeEvent("customer_created", fmt.Sprintf("Customer '%s' added", customer.Name), customer))
	return customer, nil
}

func (s *billingService) ListInvoices() []model.Invoice {
	return s.store.Invoices()
}

func (s *billingService) GetInvoice(id string) (model.Invoice, error) {
	return s.store.Invoice(id)
}

func (s *billingService) FindInvoiceByNumber(invoiceNo string) (model.Invoice, error) {
	return s.store.InvoiceByNumber(invoiceNo)
}

// QuoteInvoice previews the totals of a draft without touching the store.
func (s *billingService) QuoteInvoice(lines []model.LineInput, taxRate decimal.Decimal) (model.Totals, error) {
	if err := checkTaxRate(taxRate); err != nil {
		return model.Totals{}, err
	}
	if err := checkLines(lines); err != nil {
		return model.Totals{}, err
	}
	return store.ComputeTotals(lines, taxRate), nil
}

func (s *billingService) CreateInvoice(ctx context.Context, in model.InvoiceInput) (model.Invoice, error) {
	if err := checkTaxRate(in.TaxRate); err != nil {
		return model.Invoice{}, err
	}
	if err := checkLines(in.Lines); err != nil {
		return model.Invoice{}, err
	}
	id, err := s.store.CreateInvoice(ctx, in)
	if err != nil {
		return model.Invoice{}, err
	}
	invoice, err := s.store.Invoice(id)
	if err != nil {
		return model.Invoice{}, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_no", invoice.InvoiceNo),
		zap.String("customer_id", invoice.CustomerID),
		zap.Int64("total", invoice.Total),
		zap.Int("lines", len(invoice.Lines)),
	)
	s.hub.Publish(storeEvent("invoice_created", fmt.Sprintf("Invoice %s raised for %s", invoice.InvoiceNo, invoice.CustomerName), invoice))
	return invoice, nil
}

func (s *billingService) TogglePaid(ctx context.Context, id string) (model.Invoice, error) {
	invoice, err := s.store.ToggleInvoicePaid(ctx, id)
	if err != nil {
		return model.Invoice{}, err
	}

	status := "unpaid"
	if invoice.Paid {
		status = "paid"
	}
	s.log.Info("invoice payment toggled", zap.String("invoice_no", invoice.InvoiceNo), zap.Bool("paid", invoice.Paid))
	s.hub.Publish(storeEvent("invoice_payment_updated", fmt.Sprintf("Invoice %s marked %s", invoice.InvoiceNo, status), invoice))
	return invoice, nil
}

func (s *billingService) Options() BillingOptions {
	return BillingOptions{TaxPresets: TaxPresets, PaymentMethods: model.PaymentMethods}
}

func checkTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return ErrInvalidTaxRate
	}
	return nil
}

// checkLines keeps every line amount, and so every invoice total, far from
// int64 overflow.
func checkLines(lines []model.LineInput) error {
	for i, l := range lines {
		if l.Qty < 0 || l.Qty > model.MaxQuantity ||
			l.UnitPrice < 0 || l.UnitPrice > model.MaxUnitPrice ||
			l.Discount < 0 || l.Discount > model.MaxLineAmount {
			return fmt.Errorf("line %d: %w", i+1, ErrInvalidInvoiceLine)
		}
	}
	return nil
}
