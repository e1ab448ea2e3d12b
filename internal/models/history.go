// internal/models/history.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// UserHistory is the per-user aggregate root for scan history. The average
// is derived state, recomputed after every mutation; it is never set by
// callers directly.
type UserHistory struct {
	UserID          uuid.UUID      `json:"user_id" gorm:"type:uuid;primaryKey"`
	EcoscoreAverage float64        `json:"ecoscore_average"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	Entries         []HistoryEntry `json:"products,omitempty" gorm:"foreignKey:UserID;references:UserID"`
}

// HistoryEntry is one scan event. ProductID is a weak reference: the product
// may no longer resolve by the time the average is recomputed.
type HistoryEntry struct {
	ScanID    uuid.UUID `json:"scan_id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_scan_history_user_time,priority:1"`
	ProductID string    `json:"product_id" gorm:"size:64;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index:idx_scan_history_user_time,priority:2,sort:desc"`
}
