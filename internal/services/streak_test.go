package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trademomentumllc/ihep-application-sub007/internal/models"
)

func TestStreakContinuityWithin36Hours(t *testing.T) {
	ledger, db, clk := newTestLedger(t)
	activity := createActivity(t, db, "Walk", 10, models.FrequencyDaily)

	// t0
	_, err := ledger.RecordActivity("user1", activity.ID, "", "")
	assert.NoError(t, err)
	assert.Equal(t, 1, loadAccount(t, db, "user1").CurrentStreak)

	// t0+20h: next calendar day, inside the tolerance window.
	clk.Advance(20 * time.Hour)
	_, err = ledger.RecordActivity("user1", activity.ID, "", "")
	assert.NoError(t, err)
	assert.Equal(t, 2, loadAccount(t, db, "user1").CurrentStreak)

	// t0+44h: 24h after the previous completion.
	clk.Advance(24 * time.Hour)
	_, err = ledger.RecordActivity("user1", activity.ID, "", "")
	assert.NoError(t, err)

	account := loadAccount(t, db, "user1")
	assert.Equal(t, 3, account.CurrentStreak)
	assert.Equal(t, 3, account.LongestStreak)
}

func TestStreakResetAfterGap(t *testing.T) {
	ledger, db, clk := newTestLedger(t)
	activity := createActivity(t, db, "Walk", 10, models.FrequencyDaily)

	for i := 0; i < 3; i++ {
		_, err := ledger.RecordActivity("user1", activity.ID, "", "")
		assert.NoError(t, err)
		clk.Advance(24 * time.Hour)
	}
	assert.Equal(t, 3, loadAccount(t, db, "user1").CurrentStreak)

	// Skip beyond the 36-hour window.
	clk.Advance(48 * time.Hour)
	_, err := ledger.RecordActivity("user1", activity.ID, "", "")
	assert.NoError(t, err)

	account := loadAccount(t, db, "user1")
	assert.Equal(t, 1, account.CurrentStreak)
	// The peak survives the reset.
	assert.Equal(t, 3, account.LongestStreak)
}

func TestStreakSecondActivitySameDayDoesNotAdvance(t *testing.T) {
	ledger, db, clk := newTestLedger(t)
	walk := createActivity(t, db, "Walk", 10, models.FrequencyDaily)
	meditate := createActivity(t, db, "Meditate", 5, models.FrequencyDaily)

	_, err := ledger.RecordActivity("user1", walk.ID, "", "")
	assert.NoError(t, err)

	clk.Advance(24 * time.Hour)
	_, err = ledger.RecordActivity("user1", walk.ID, "", "")
	assert.NoError(t, err)
	assert.Equal(t, 2, loadAccount(t, db, "user1").CurrentStreak)

	// A second completion the same day counts points but not streak days.
	clk.Advance(2 * time.Hour)
	_, err = ledger.RecordActivity("user1", meditate.ID, "", "")
	assert.NoError(t, err)

	account := loadAccount(t, db, "user1")
	assert.Equal(t, 2, account.CurrentStreak)
	assert.Equal(t, 25, account.TotalPoints)
}

func TestStreakBonusAtMultiplesOfFive(t *testing.T) {
	ledger, db, clk := newTestLedger(t)
	activity := createActivity(t, db, "Walk", 10, models.FrequencyDaily)

	for day := 1; day <= 10; day++ {
		_, err := ledger.RecordActivity("user1", activity.ID, "", "")
		assert.NoError(t, err)

		account := loadAccount(t, db, "user1")
		assert.Equal(t, day, account.CurrentStreak)
		clk.Advance(24 * time.Hour)
	}

	var bonuses []models.PointsTransaction
	db.Where("user_id = ? AND type = ? AND source_type = ?",
		"user1", models.TransactionBonus, models.SourceStreak).
		Order("created_at asc").
		Find(&bonuses)

	assert.Len(t, bonuses, 2)
	assert.Equal(t, 25, bonuses[0].Amount) // day 5: 25 * (5/5)
	assert.Equal(t, 50, bonuses[1].Amount) // day 10: 25 * (10/5)

	account := loadAccount(t, db, "user1")
	// 10 days x 10 points + 75 bonus points.
	assert.Equal(t, 175, account.TotalPoints)
	assert.Equal(t, 175, account.AvailablePoints)
	assert.Equal(t, 175, account.LifetimePoints)
	assert.Equal(t, 10, account.LongestStreak)
}
