package entity

import "time"

// DraftSlotKey is the fixed key of the single draft slot. The editor
// works on one logical document; last write wins.
const DraftSlotKey = "invoice_draft"

// DraftRecord is the persisted form of a draft: one row in the local
// database holding the serialized draft JSON.
type DraftRecord struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Payload   []byte    `gorm:"type:blob;not null" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the DraftRecord model
func (DraftRecord) TableName() string {
	return "draft_slots"
}
