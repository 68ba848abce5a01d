package utils

import (
	"fmt"
	"log"
	"time"

	"quizapi/config"
	"quizapi/services/attempts"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[ATTEMPT-RETENTION %s] %s", time.Now().Format(time.RFC3339), message)
}

// sweepAttemptLog deletes attempt events older than the retention horizon
func sweepAttemptLog(svc *attempts.Service, days int) {
	cutoff := now.BeginningOfDay().AddDate(0, 0, -days)

	removed, err := svc.DeleteOlderThan(cutoff)
	if err != nil {
		logScheduler("Error sweeping attempt log: " + err.Error())
		return
	}

	logScheduler(fmt.Sprintf("Removed %d attempt events older than %s", removed, cutoff.Format("2006-01-02")))
}

// InitializeRetentionScheduler starts the daily attempt log sweep. Returns nil
// when retention is disabled.
func InitializeRetentionScheduler(db *gorm.DB) *cron.Cron {
	days := config.AppConfig.AttemptRetentionDays
	if days <= 0 {
		logScheduler("Attempt log retention disabled")
		return nil
	}

	svc := attempts.NewService(db)

	c := cron.New()
	c.AddFunc("0 3 * * *", func() {
		sweepAttemptLog(svc, days)
	})
	c.Start()

	logScheduler(fmt.Sprintf("Attempt log retention scheduler started - keeping %d days", days))
	return c
}
