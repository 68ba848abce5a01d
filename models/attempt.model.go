package models

import (
	"time"

	"gorm.io/gorm"
)

// Attempt actions recorded by the quiz frontend.
const (
	AttemptActionStart      = "start"
	AttemptActionRefresh    = "refresh"
	AttemptActionSubmit     = "submit"
	AttemptActionAutoSubmit = "auto-submit" // submit forced by a page refresh
)

// AttemptEvent is an append-only audit entry. Nothing in the submission flow
// reads it back; it exists for diagnostics only.
type AttemptEvent struct {
	gorm.Model
	Phone     string    `gorm:"size:32;index" json:"phone"`
	Action    string    `gorm:"size:20" json:"action"`
	UserAgent string    `json:"userAgent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
