// Package store owns the shop snapshot: every read is served from memory and
// every mutation is persisted through a repository before it becomes visible.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"go-hardware-demo/internal/model"
	"go-hardware-demo/internal/repository"

	"go.uber.org/zap"
)

type Store struct {
	repo   repository.SnapshotRepository
	log    *zap.Logger
	now    func() time.Time
	newID  func(prefix string) string
	strict bool

	mu     sync.RWMutex
	state  model.Snapshot
	loaded atomic.Bool
}

type Option func(*Store)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces model.NewID as the source of record identities.
func WithIDGenerator(newID func(prefix string) string) Option {
	return func(s *Store) { s.newID = newID }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithStrictLoad makes Load fail on an unreadable or wrong-version entry
// instead of starting empty.
func WithStrictLoad(strict bool) Option {
	return func(s *Store) { s.strict = strict }
}

func New(repo repository.SnapshotRepository, opts ...Option) *Store {
	s := &Store{
		repo:  repo,
		log:   zap.NewNop(),
		now:   time.Now,
		newID: model.NewID,
		state: model.EmptySnapshot(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load hydrates the store from the repository. A missing entry leaves the
// empty defaults in place.
func (s *Store) Load(ctx context.Context) error {
	snap, err := s.repo.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrSnapshotNotFound):
		empty := model.EmptySnapshot()
		snap = &empty
	case repository.IsUnreadable(err) && !s.strict:
		s.log.Warn("persisted snapshot ignored, starting empty", zap.Error(err))
		empty := model.EmptySnapshot()
		snap = &empty
	default:
		return fmt.Errorf("load snapshot: %w", err)
	}

	s.mu.Lock()
	s.state = *snap
	s.mu.Unlock()
	s.loaded.Store(true)
	return nil
}

// Loaded reports whether Load has completed.
func (s *Store) Loaded() bool {
	return s.loaded.Load()
}

// update applies fn to a private copy of the state, persists the copy and
// only then publishes it. Any error from fn or from the repository leaves
// the published state untouched.
func (s *Store) update(ctx context.Context, fn func(next *model.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		if errors.Is(err, errNoChange) {
			return nil
		}
		return err
	}
	if err := s.repo.Save(ctx, &next); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	s.state = next
	return nil
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

func (s *Store) SeedIfNeeded(ctx context.Context) (bool, error) {
	seeded := false
	err := s.update(ctx, func(next *model.Snapshot) error {
		if next.Seeded {
			return errNoChange
		}
		sample, err := buildSample(s.timestamp(), s.newID)
		if err != nil {
			return err
		}
		*next = sample
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if seeded {
		s.log.Info("sample dataset seeded")
	}
	return seeded, nil
}

// Purge removes the persisted entry altogether and returns the store to its
// empty defaults. The next Load behaves as on a fresh install.
func (s *Store) Purge(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	s.state = model.EmptySnapshot()
	return nil
}

// ResetDemo empties every collection and clears the seeded flag.
func (s *Store) ResetDemo(ctx context.Context) error {
	return s.update(ctx, func(next *model.Snapshot) error {
		*next = model.EmptySnapshot()
		return nil
	})
}

func (s *Store) AddItem(ctx context.Context, in model.NewItem) (model.InventoryItem, error) {
	item := model.InventoryItem{
		ID:           s.newID(model.PrefixItem),
		SKU:          in.SKU,
		Name:         in.Name,
		Brand:        in.Brand,
		Category:     in.Category,
		Unit:         in.Unit,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		Quantity:     model.ClampQuantity(in.Quantity),
		MinStock:     model.ClampQuantity(in.MinStock),
		Location:     in.Location,
		UpdatedAt:    s.timestamp(),
	}
	err := s.update(ctx, func(next *model.Snapshot) error {
		next.Items = prepend(next.Items, item)
		return nil
	})
	if err != nil {
		return model.InventoryItem{}, err
	}
	return item, nil
}

func (s *Store) UpdateItem(ctx context.Context, id string, patch model.ItemPatch) (model.InventoryItem, error) {
	var updated model.InventoryItem
	err := s.update(ctx, func(next *model.Snapshot) error {
		idx := indexOfItem(next.Items, id)
		if idx < 0 {
			return ErrItemNotFound
		}
		item := next.Items[idx]
		patch.Apply(&item)
		item.UpdatedAt = s.timestamp()
		next.Items[idx] = item
		updated = item
		return nil
	})
	if err != nil {
		return model.InventoryItem{}, err
	}
	return updated, nil
}

// DeleteItem removes the item and every movement that references it.
// Invoices keep their lines.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	return s.update(ctx, func(next *model.Snapshot) error {
		if indexOfItem(next.Items, id) < 0 {
			return ErrItemNotFound
		}
		next.Items = slices.DeleteFunc(next.Items, func(it model.InventoryItem) bool { return it.ID == id })
		next.Movements = slices.DeleteFunc(next.Movements, func(m model.StockMovement) bool { return m.ItemID == id })
		return nil
	})
}

// RecordMovement appends a movement and returns it together with the item
// as it stands after the quantity change.
func (s *Store) RecordMovement(ctx context.Context, in model.MovementInput) (model.StockMovement, model.InventoryItem, error) {
	var (
		recorded model.StockMovement
		item     model.InventoryItem
	)
	err := s.update(ctx, func(next *model.Snapshot) error {
		mov, err := s.applyMovement(next, in)
		if err != nil {
			return err
		}
		recorded = mov
		item = next.Items[indexOfItem(next.Items, mov.ItemID)]
		return nil
	})
	if err != nil {
		return model.StockMovement{}, model.InventoryItem{}, err
	}
	return recorded, item, nil
}

// applyMovement prepends the movement, trims the log and moves the item's
// quantity by the delta, saturating at the quantity bounds.
func (s *Store) applyMovement(next *model.Snapshot, in model.MovementInput) (model.StockMovement, error) {
	idx := indexOfItem(next.Items, in.ItemID)
	if idx < 0 {
		return model.StockMovement{}, ErrItemNotFound
	}
	item := next.Items[idx]

	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.timestamp()
	}
	mov := model.StockMovement{
		ID:            s.newID(model.PrefixMovement),
		Type:          in.Type,
		ItemID:        item.ID,
		ItemName:      item.Name,
		QuantityDelta: in.QuantityDelta,
		Note:          in.Note,
		Reference:     in.Reference,
		CreatedAt:     createdAt,
	}
	next.Movements = prepend(next.Movements, mov)
	if len(next.Movements) > model.MovementLogCap {
		next.Movements = next.Movements[:model.MovementLogCap]
	}

	// both operands stay within ±MaxQuantity, so the sum cannot overflow
	item.Quantity = model.ClampQuantity(item.Quantity + model.ClampDelta(in.QuantityDelta))
	item.UpdatedAt = createdAt
	next.Items[idx] = item
	return mov, nil
}

func (s *Store) AddCustomer(ctx context.Context, in model.NewCustomer) (model.Customer, error) {
	customer := model.Customer{
		ID:      s.newID(model.PrefixCustomer),
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
		GSTIN:   in.GSTIN,
	}
	err := s.update(ctx, func(next *model.Snapshot) error {
		next.Customers = prepend(next.Customers, customer)
		return nil
	})
	if err != nil {
		return model.Customer{}, err
	}
	return customer, nil
}

// CreateInvoice numbers and totals a new invoice, snapshots the customer and
// issues stock for every line. On any error nothing is changed and the
// returned id is empty.
func (s *Store) CreateInvoice(ctx context.Context, in model.InvoiceInput) (string, error) {
	var id string
	err := s.update(ctx, func(next *model.Snapshot) error {
		ci := slices.IndexFunc(next.Customers, func(c model.Customer) bool { return c.ID == in.CustomerID })
		if ci < 0 {
			return ErrCustomerNotFound
		}
		customer := next.Customers[ci]

		for i, line := range in.Lines {
			if indexOfItem(next.Items, line.ItemID) < 0 {
				return fmt.Errorf("line %d: %w", i+1, ErrItemNotFound)
			}
		}

		createdAt := in.CreatedAt
		if createdAt.IsZero() {
			createdAt = s.timestamp()
		}
		method := in.PaymentMethod
		if method == "" {
			method = model.PaymentCash
		}
		invoiceNo := NextInvoiceNo(next.Invoices)

		lines := make([]model.InvoiceLine, len(in.Lines))
		for i, line := range in.Lines {
			name := line.ItemName
			if name == "" {
				name = next.Items[indexOfItem(next.Items, line.ItemID)].Name
			}
			lines[i] = model.InvoiceLine{
				ID:        s.newID(model.PrefixLine),
				ItemID:    line.ItemID,
				ItemName:  name,
				Qty:       line.Qty,
				UnitPrice: line.UnitPrice,
				Discount:  line.Discount,
			}
		}

		invoice := model.Invoice{
			ID:              s.newID(model.PrefixInvoice),
			InvoiceNo:       invoiceNo,
			CustomerID:      customer.ID,
			CustomerName:    customer.Name,
			CustomerPhone:   customer.Phone,
			CustomerAddress: customer.Address,
			CustomerGSTIN:   customer.GSTIN,
			Lines:           lines,
			TaxRate:         in.TaxRate,
			Totals:          ComputeTotals(lines, in.TaxRate),
			Paid:            in.Paid,
			PaymentMethod:   method,
			CreatedAt:       createdAt,
		}

		for _, line := range lines {
			_, err := s.applyMovement(next, model.MovementInput{
				Type:          model.MovementIssue,
				ItemID:        line.ItemID,
				QuantityDelta: -model.ClampQuantity(line.Qty),
				Note:          "Sold via " + invoiceNo,
				Reference:     invoiceNo,
				CreatedAt:     createdAt,
			})
			if err != nil {
				return err
			}
		}

		next.Invoices = prepend(next.Invoices, invoice)
		id = invoice.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ToggleInvoicePaid(ctx context.Context, id string) (model.Invoice, error) {
	var toggled model.Invoice
	err := s.update(ctx, func(next *model.Snapshot) error {
		idx := slices.IndexFunc(next.Invoices, func(inv model.Invoice) bool { return inv.ID == id })
		if idx < 0 {
			return ErrInvoiceNotFound
		}
		next.Invoices[idx].Paid = !next.Invoices[idx].Paid
		toggled = next.Invoices[idx].Clone()
		return nil
	})
	if err != nil {
		return model.Invoice{}, err
	}
	return toggled, nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *Store) ShopName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ShopName
}

func (s *Store) Seeded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Seeded
}

func (s *Store) Items() []model.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Items)
}

func (s *Store) Item(id string) (model.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := indexOfItem(s.state.Items, id)
	if idx < 0 {
		return model.InventoryItem{}, ErrItemNotFound
	}
	return s.state.Items[idx], nil
}

func (s *Store) Customers() []model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Customers)
}

func (s *Store) Invoices() []model.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Invoice, len(s.state.Invoices))
	for i, inv := range s.state.Invoices {
		out[i] = inv.Clone()
	}
	return out
}

func (s *Store) Invoice(id string) (model.Invoice, error) {
	return s.findInvoice(func(inv model.Invoice) bool { return inv.ID == id })
}

func (s *Store) InvoiceByNumber(invoiceNo string) (model.Invoice, error) {
	return s.findInvoice(func(inv model.Invoice) bool { return inv.InvoiceNo == invoiceNo })
}

func (s *Store) findInvoice(match func(model.Invoice) bool) (model.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := slices.IndexFunc(s.state.Invoices, match)
	if idx < 0 {
		return model.Invoice{}, ErrInvoiceNotFound
	}
	return s.state.Invoices[idx].Clone(), nil
}

func (s *Store) Movements() []model.StockMovement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Movements)
}

func indexOfItem(items []model.InventoryItem, id string) int {
	return slices.IndexFunc(items, func(it model.InventoryItem) bool { return it.ID == id })
}

func prepend[T any](list []T, v T) []T {
	return append([]T{v}, list...)
}
