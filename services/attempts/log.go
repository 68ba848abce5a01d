package attempts

import (
	"time"

	"quizapi/models"

	"gorm.io/gorm"
)

// Service is the append-only attempt log. Events are never updated or deleted
// by the request path; the only deletion is the retention sweep.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Record appends one lifecycle event for a phone number.
func (s *Service) Record(phone, action, userAgent string) (*models.AttemptEvent, error) {
	event := models.AttemptEvent{
		Phone:     phone,
		Action:    action,
		UserAgent: userAgent,
		Timestamp: time.Now(),
	}
	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns the events recorded for a phone number, newest first.
func (s *Service) List(phone string) ([]models.AttemptEvent, error) {
	var events []models.AttemptEvent
	err := s.db.Where("phone = ?", phone).Order("timestamp DESC, id DESC").Find(&events).Error
	return events, err
}

// DeleteOlderThan removes events whose timestamp is before the cutoff and
// reports how many were removed. Used by the retention scheduler only.
func (s *Service) DeleteOlderThan(cutoff time.Time) (int64, error) {
	tx := s.db.Where("timestamp < ?", cutoff).Delete(&models.AttemptEvent{})
	return tx.RowsAffected, tx.Error
}
