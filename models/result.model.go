package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Result is the single authoritative quiz result for one participant phone number.
// The store itself has no uniqueness constraint on Phone; the submission service is
// responsible for keeping at most one live row per phone.
type Result struct {
	gorm.Model
	ResultID           string         `gorm:"size:36;uniqueIndex" json:"resultId"` // public identifier used by admin operations
	Name               string         `json:"name"`
	Phone              string         `gorm:"size:32;index" json:"phone"`
	Correct            int            `json:"correct"`
	Wrong              int            `json:"wrong"`
	Score              int            `json:"score"`
	RawAnswers         datatypes.JSON `json:"rawAnswers,omitempty"` // opaque answer payload, not interpreted
	AllowedRetake      bool           `gorm:"default:false" json:"allowedRetake"`
	RetakeAllowedAt    *time.Time     `json:"retakeAllowedAt,omitempty"`
	RetakeDisallowedAt *time.Time     `json:"retakeDisallowedAt,omitempty"`
}
