package results

import (
	"testing"
	"time"

	"quizapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	base := time.Now().Add(-3 * time.Hour)
	// Insert out of order on purpose
	for i, phone := range []string{"2", "3", "1"} {
		offsets := []time.Duration{1 * time.Hour, 2 * time.Hour, 0}
		require.NoError(t, db.Create(&models.Result{
			Model:    gorm.Model{CreatedAt: base.Add(offsets[i])},
			ResultID: "r-" + phone,
			Phone:    phone,
		}).Error)
	}

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "3", list[0].Phone)
	assert.Equal(t, "2", list[1].Phone)
	assert.Equal(t, "1", list[2].Phone)
}

func TestDeleteResult(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	result, err := svc.Submit(Submission{Name: "Alice", Phone: "555", Score: 8})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(result.ResultID))
	assert.Equal(t, int64(0), countResults(t, db, "555"))
}

func TestDeleteUnknownResultNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	_, err := svc.Submit(Submission{Name: "Alice", Phone: "555", Score: 8})
	require.NoError(t, err)

	err = svc.Delete("no-such-id")
	require.ErrorIs(t, err, ErrResultNotFound)

	// Store untouched
	assert.Equal(t, int64(1), countResults(t, db, "555"))
}

func TestAllowThenDisallowRetake(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	result, err := svc.Submit(Submission{Name: "Alice", Phone: "555", Correct: 8, Wrong: 2, Score: 8})
	require.NoError(t, err)

	allowed, err := svc.AllowRetake(result.ResultID)
	require.NoError(t, err)
	assert.True(t, allowed.AllowedRetake)
	require.NotNil(t, allowed.RetakeAllowedAt)

	disallowed, err := svc.DisallowRetake(result.ResultID)
	require.NoError(t, err)
	assert.False(t, disallowed.AllowedRetake)
	require.NotNil(t, disallowed.RetakeDisallowedAt)

	// Only the flag and the stamps moved
	var stored models.Result
	require.NoError(t, db.Where("result_id = ?", result.ResultID).First(&stored).Error)
	assert.Equal(t, "Alice", stored.Name)
	assert.Equal(t, 8, stored.Correct)
	assert.Equal(t, 2, stored.Wrong)
	assert.Equal(t, 8, stored.Score)
	assert.False(t, stored.AllowedRetake)
	assert.NotNil(t, stored.RetakeAllowedAt)
	assert.NotNil(t, stored.RetakeDisallowedAt)
}

func TestRetakeUnknownIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	_, err := svc.AllowRetake("no-such-id")
	require.ErrorIs(t, err, ErrResultNotFound)

	_, err = svc.DisallowRetake("no-such-id")
	require.ErrorIs(t, err, ErrResultNotFound)
}

func TestCheckRetakeUnknownPhone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	allowed, result, err := svc.CheckRetake("000")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Nil(t, result)
}

func TestCheckRetakeKnownPhone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	submitted, err := svc.Submit(Submission{Name: "Alice", Phone: "555", Score: 8})
	require.NoError(t, err)

	allowed, result, err := svc.CheckRetake("555")
	require.NoError(t, err)
	assert.False(t, allowed)
	require.NotNil(t, result)
	assert.Equal(t, submitted.ResultID, result.ResultID)

	_, err = svc.AllowRetake(submitted.ResultID)
	require.NoError(t, err)

	allowed, result, err = svc.CheckRetake("555")
	require.NoError(t, err)
	assert.True(t, allowed)
	require.NotNil(t, result)
}

func TestCheckRetakePicksNewestAndNeverRepairs(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	older := time.Now().Add(-2 * time.Hour)
	newer := time.Now().Add(-1 * time.Hour)

	require.NoError(t, db.Create(&models.Result{
		Model: gorm.Model{CreatedAt: older}, ResultID: "dup-old", Phone: "777", AllowedRetake: true,
	}).Error)
	require.NoError(t, db.Create(&models.Result{
		Model: gorm.Model{CreatedAt: newer}, ResultID: "dup-new", Phone: "777",
	}).Error)

	allowed, result, err := svc.CheckRetake("777")
	require.NoError(t, err)
	assert.False(t, allowed)
	require.NotNil(t, result)
	assert.Equal(t, "dup-new", result.ResultID)

	// Read path leaves the duplicates alone
	assert.Equal(t, int64(2), countResults(t, db, "777"))
}
