package results

import (
	"errors"
	"time"

	"quizapi/models"

	"gorm.io/gorm"
)

// List returns every stored result, newest first.
func (s *Service) List() ([]models.Result, error) {
	var results []models.Result
	err := s.db.Order("created_at DESC, id DESC").Find(&results).Error
	return results, err
}

// Delete removes the result with the given public id.
func (s *Service) Delete(resultID string) error {
	tx := s.db.Where("result_id = ?", resultID).Delete(&models.Result{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrResultNotFound
	}
	return nil
}

// AllowRetake grants a retake on one specific result and stamps when it was
// granted. Only the flag and the stamp are touched.
func (s *Service) AllowRetake(resultID string) (*models.Result, error) {
	return s.setRetake(resultID, true)
}

// DisallowRetake revokes a retake grant on one specific result and stamps
// when it was revoked.
func (s *Service) DisallowRetake(resultID string) (*models.Result, error) {
	return s.setRetake(resultID, false)
}

func (s *Service) setRetake(resultID string, allowed bool) (*models.Result, error) {
	var result models.Result
	if err := s.db.Where("result_id = ?", resultID).First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{"allowed_retake": allowed}
	if allowed {
		updates["retake_allowed_at"] = now
		result.RetakeAllowedAt = &now
	} else {
		updates["retake_disallowed_at"] = now
		result.RetakeDisallowedAt = &now
	}
	result.AllowedRetake = allowed

	if err := s.db.Model(&result).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// CheckRetake reports whether the given phone number may retake the quiz.
// An unknown number is not an error: it answers false with no result, the
// same shape as a known number without a grant. Read-only; duplicates are
// tolerated (newest wins) but never repaired here.
func (s *Service) CheckRetake(phone string) (bool, *models.Result, error) {
	var existing []models.Result
	if err := s.db.Where("phone = ?", phone).Find(&existing).Error; err != nil {
		return false, nil, err
	}
	if len(existing) == 0 {
		return false, nil, nil
	}
	latest := latestResult(existing)
	return latest.AllowedRetake, &latest, nil
}
