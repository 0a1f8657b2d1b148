package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stock quantities and re-order levels are always kept inside these bounds.
const (
	MinQuantity = 0
	MaxQuantity = 1_000_000
)

// Prefixes used when minting record identities.
const (
	PrefixItem     = "item"
	PrefixCustomer = "cust"
	PrefixInvoice  = "inv"
	PrefixLine     = "line"
	PrefixMovement = "mov"
)

// NewID returns an opaque identity such as "item_5b0f...". Uniqueness within
// a snapshot is all that is required of it.
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// ClampQuantity saturates n into [MinQuantity, MaxQuantity].
func ClampQuantity(n int) int {
	return min(max(n, MinQuantity), MaxQuantity)
}

// ClampDelta bounds a quantity change to what can move any stock level
// between the quantity limits.
func ClampDelta(n int) int {
	return min(max(n, -MaxQuantity), MaxQuantity)
}

// SnapshotRecord is the SQL row holding one persisted snapshot entry.
type SnapshotRecord struct {
	SnapshotKey string    `gorm:"type:varchar(128);primaryKey" json:"key"`
	Version     int       `gorm:"not null" json:"version"`
	Payload     string    `gorm:"type:text;not null" json:"payload"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (SnapshotRecord) TableName() string {
	return "demo_snapshots"
}

// BeforeSave stamps updated_at so an upsert always refreshes it.
func (r *SnapshotRecord) BeforeSave(tx *gorm.DB) (err error) {
	r.UpdatedAt = time.Now().UTC()
	return
}
