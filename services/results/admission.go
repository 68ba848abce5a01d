package results

import (
	"fmt"

	"quizapi/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service owns the result slot for each participant phone number. It is the
// only writer of the results table together with the retake operations in
// store.go.
type Service struct {
	db    *gorm.DB
	locks *phoneLocks
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		db:    db,
		locks: newPhoneLocks(),
	}
}

// Submission is one completed quiz attempt as sent by the frontend.
type Submission struct {
	Name       string
	Phone      string
	Correct    int
	Wrong      int
	Score      int
	RawAnswers datatypes.JSON
}

// Submit decides whether a submission is stored. A phone number with no result
// is accepted. A phone number with an existing result is rejected unless its
// latest result has a retake grant, in which case every result for that number
// is deleted and the new one takes the slot. The delete-all also collapses any
// duplicate rows left behind by earlier races.
func (s *Service) Submit(sub Submission) (*models.Result, error) {
	lock := s.locks.get(sub.Phone)
	lock.Lock()
	defer lock.Unlock()

	var existing []models.Result
	if err := s.db.Where("phone = ?", sub.Phone).Find(&existing).Error; err != nil {
		return nil, err
	}

	if len(existing) > 0 {
		latest := latestResult(existing)
		if !latest.AllowedRetake {
			return nil, ErrAlreadySubmitted
		}
		if err := s.clearResults(existing); err != nil {
			return nil, err
		}
	}

	result := models.Result{
		ResultID:   uuid.NewString(),
		Name:       sub.Name,
		Phone:      sub.Phone,
		Correct:    sub.Correct,
		Wrong:      sub.Wrong,
		Score:      sub.Score,
		RawAnswers: sub.RawAnswers,
	}

	if err := s.db.Create(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// clearResults deletes every given row. A partial failure is reported as an
// error rather than treated as success, since it leaves the slot in a mixed
// state the caller must know about.
func (s *Service) clearResults(rows []models.Result) error {
	var failed int
	var firstErr error
	for _, row := range rows {
		if err := s.db.Delete(&models.Result{}, row.ID).Error; err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return fmt.Errorf("failed to clear %d of %d results: %w", failed, len(rows), firstErr)
	}
	return nil
}

// latestResult picks the authoritative result when more than one row exists
// for a phone number: newest creation timestamp wins, ties go to the higher
// primary key.
func latestResult(rows []models.Result) models.Result {
	latest := rows[0]
	for _, row := range rows[1:] {
		if row.CreatedAt.After(latest.CreatedAt) ||
			(row.CreatedAt.Equal(latest.CreatedAt) && row.ID > latest.ID) {
			latest = row
		}
	}
	return latest
}
