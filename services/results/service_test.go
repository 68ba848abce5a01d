package results

import (
	"testing"

	"quizapi/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Result{}, &models.AttemptEvent{}))
	return db
}

func countResults(t *testing.T, db *gorm.DB, phone string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Result{}).Where("phone = ?", phone).Count(&count).Error)
	return count
}
