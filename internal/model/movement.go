package model

import "time"

type MovementType string

const (
	MovementReceive MovementType = "RECEIVE"
	MovementIssue   MovementType = "ISSUE"
	MovementAdjust  MovementType = "ADJUST"
)

// MovementLogCap bounds the movement log; the oldest entries fall off first.
const MovementLogCap = 200

type StockMovement struct {
	ID            string       `json:"id"`
	Type          MovementType `json:"type"`
	ItemID        string       `json:"itemId"`
	ItemName      string       `json:"itemName"`
	QuantityDelta int          `json:"quantityDelta"`
	Note          string       `json:"note,omitempty"`
	Reference     string       `json:"reference,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// MovementInput describes a movement to record. A zero CreatedAt means "now".
type MovementInput struct {
	Type          MovementType `json:"type"`
	ItemID        string       `json:"itemId"`
	QuantityDelta int          `json:"quantityDelta"`
	Note          string       `json:"note,omitempty"`
	Reference     string       `json:"reference,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}
