package model

import (
	"strings"
	"time"
)

type Unit string

const (
	UnitPcs Unit = "pcs"
	UnitBox Unit = "box"
	UnitKg  Unit = "kg"
	UnitM   Unit = "m"
	UnitBag Unit = "bag"
)

var Units = []Unit{UnitPcs, UnitBox, UnitKg, UnitM, UnitBag}

type InventoryItem struct {
	ID           string    `json:"id"`
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Category     string    `json:"category"`
	Unit         Unit      `json:"unit"`
	CostPrice    int64     `json:"costPrice"`
	SellingPrice int64     `json:"sellingPrice"`
	Quantity     int       `json:"quantity"`
	MinStock     int       `json:"minStock"`
	Location     string    `json:"location"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsLowStock reports whether the item sits at or below its re-order level.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinStock
}

// StockValue is quantity on hand valued at cost.
func (i InventoryItem) StockValue() int64 {
	return int64(i.Quantity) * i.CostPrice
}

// Matches reports whether query is a case-insensitive substring of the
// item's name, brand, category or SKU. An empty query matches everything.
func (i InventoryItem) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join([]string{i.Name, i.Brand, i.Category, i.SKU}, " "))
	return strings.Contains(haystack, q)
}

// NewItem carries the caller-supplied fields of an item about to be created.
type NewItem struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Category     string `json:"category"`
	Unit         Unit   `json:"unit"`
	CostPrice    int64  `json:"costPrice"`
	SellingPrice int64  `json:"sellingPrice"`
	Quantity     int    `json:"quantity"`
	MinStock     int    `json:"minStock"`
	Location     string `json:"location"`
}

// ItemPatch is a partial update; nil fields are left untouched.
type ItemPatch struct {
	SKU          *string `json:"sku,omitempty"`
	Name         *string `json:"name,omitempty"`
	Brand        *string `json:"brand,omitempty"`
	Category     *string `json:"category,omitempty"`
	Unit         *Unit   `json:"unit,omitempty"`
	CostPrice    *int64  `json:"costPrice,omitempty"`
	SellingPrice *int64  `json:"sellingPrice,omitempty"`
	Quantity     *int    `json:"quantity,omitempty"`
	MinStock     *int    `json:"minStock,omitempty"`
	Location     *string `json:"location,omitempty"`
}

// Apply copies the set fields onto item. Quantity and MinStock are clamped.
func (p ItemPatch) Apply(item *InventoryItem) {
	if p.SKU != nil {
		item.SKU = *p.SKU
	}
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Brand != nil {
		item.Brand = *p.Brand
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Unit != nil {
		item.Unit = *p.Unit
	}
	if p.CostPrice != nil {
		item.CostPrice = *p.CostPrice
	}
	if p.SellingPrice != nil {
		item.SellingPrice = *p.SellingPrice
	}
	if p.Quantity != nil {
		item.Quantity = ClampQuantity(*p.Quantity)
	}
	if p.MinStock != nil {
		item.MinStock = ClampQuantity(*p.MinStock)
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
}
