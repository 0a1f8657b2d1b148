package model

import "slices"

const (
	DefaultShopName = "Hardware Demo"
	// SchemaVersion is written into every persisted envelope. Entries with
	// any other version are not read back.
	SchemaVersion = 1
	// DefaultStorageKey names the persisted entry.
	DefaultStorageKey = "hardware-demo-v1"
)

// Snapshot is the complete shop state. Items, invoices and movements are
// ordered newest first.
type Snapshot struct {
	ShopName  string          `json:"shopName"`
	Seeded    bool            `json:"seeded"`
	Items     []InventoryItem `json:"items"`
	Customers []Customer      `json:"customers"`
	Invoices  []Invoice       `json:"invoices"`
	Movements []StockMovement `json:"movements"`
}

// PersistedState is the on-storage envelope around a Snapshot.
type PersistedState struct {
	State   Snapshot `json:"state"`
	Version int      `json:"version"`
}

func EmptySnapshot() Snapshot {
	return Snapshot{
		ShopName:  DefaultShopName,
		Items:     []InventoryItem{},
		Customers: []Customer{},
		Invoices:  []Invoice{},
		Movements: []StockMovement{},
	}
}

// Normalize replaces nil collections with empty ones and fills a blank shop name.
func (s *Snapshot) Normalize() {
	if s.ShopName == "" {
		s.ShopName = DefaultShopName
	}
	if s.Items == nil {
		s.Items = []InventoryItem{}
	}
	if s.Customers == nil {
		s.Customers = []Customer{}
	}
	if s.Invoices == nil {
		s.Invoices = []Invoice{}
	}
	if s.Movements == nil {
		s.Movements = []StockMovement{}
	}
}

// Clone returns a copy that shares no mutable memory with s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		ShopName:  s.ShopName,
		Seeded:    s.Seeded,
		Items:     slices.Clone(s.Items),
		Customers: slices.Clone(s.Customers),
		Invoices:  make([]Invoice, len(s.Invoices)),
		Movements: slices.Clone(s.Movements),
	}
	for i, inv := range s.Invoices {
		out.Invoices[i] = inv.Clone()
	}
	out.Normalize()
	return out
}

func (inv Invoice) Clone() Invoice {
	inv.Lines = slices.Clone(inv.Lines)
	return inv
}
