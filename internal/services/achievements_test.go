package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trademomentumllc/ihep-application-sub007/internal/models"
)

func TestAchievementUnlockAtThreshold(t *testing.T) {
	ledger, db, _ := newTestLedger(t)
	activity := createActivity(t, db, "Walk", 15, models.FrequencyDaily)

	achievement := &models.Achievement{
		Name:           "First Steps",
		Level:          1,
		PointsRequired: 10,
		Category:       "milestone",
		IsActive:       true,
	}
	assert.NoError(t, db.Create(achievement).Error)

	_, err := ledger.RecordActivity("user1", activity.ID, "", "")
	assert.NoError(t, err)

	var unlocks []models.UserAchievement
	db.Find(&unlocks, "user_id = ?", "user1")
	assert.Len(t, unlocks, 1)
	assert.Equal(t, achievement.ID, unlocks[0].AchievementID)

	// Level 1 carries no bonus.
	account := loadAccount(t, db, "user1")
	assert.Equal(t, 15, account.TotalPoints)
}

func TestAchievementLevelBonus(t *testing.T) {
	ledger, db, _ := newTestLedger(t)
	activity := createActivity(t, db, "Checkup", 100, models.FrequencyOnce)

	achievement := &models.Achievement{
		Name:           "Committed",
		Level:          3,
		PointsRequired: 100,
		Category:       "milestone",
		IsActive:       true,
	}
	assert.NoError(t, db.Create(achievement).Error)

	_, err := ledger.RecordActivity("user1", activity.ID, "", "")
	assert.NoError(t, err)

	account := loadAccount(t, db, "user1")
	assert.Equal(t, 250, account.TotalPoints) // 100 earned + 50*3 bonus
	assert.Equal(t, 250, account.AvailablePoints)
	assert.Equal(t, 250, account.LifetimePoints)

	var bonus models.PointsTransaction
	err = db.First(&bonus, "user_id = ? AND source_type = ?", "user1", models.SourceAchievement).Error
	assert.NoError(t, err)
	assert.Equal(t, 150, bonus.Amount)
	assert.Equal(t, models.TransactionBonus, bonus.Type)
	assert.Equal(t, achievement.ID, bonus.SourceID)
}

func TestAchievementMonotonicNoDuplicateUnlock(t *testing.T) {
	ledger, db, clk := newTestLedger(t)
	activity := createActivity(t, db, "Walk", 15, models.FrequencyDaily)

	achievement := &models.Achievement{
		Name:           "First Steps",
		Level:          1,
		PointsRequired: 10,
		IsActive:       true,
	}
	assert.NoError(t, db.Create(achievement).Error)

	// Lifetime points cross the threshold repeatedly; the unlock happens once.
	for i := 0; i < 3; i++ {
		_, err := ledger.RecordActivity("user1", activity.ID, "", "")
		assert.NoError(t, err)
		clk.Advance(24 * time.Hour)
	}

	var unlocks int64
	db.Model(&models.UserAchievement{}).Where("user_id = ?", "user1").Count(&unlocks)
	assert.Equal(t, int64(1), unlocks)
}

func TestInactiveAchievementIgnored(t *testing.T) {
	ledger, db, _ := newTestLedger(t)
	activity := createActivity(t, db, "Walk", 50, models.FrequencyDaily)

	achievement := &models.Achievement{
		Name:           "Retired",
		Level:          2,
		PointsRequired: 10,
		IsActive:       false,
	}
	assert.NoError(t, db.Create(achievement).Error)

	_, err := ledger.RecordActivity("user1", activity.ID, "", "")
	assert.NoError(t, err)

	var unlocks int64
	db.Model(&models.UserAchievement{}).Count(&unlocks)
	assert.Equal(t, int64(0), unlocks)
}

func TestMultipleAchievementsUnlockTogether(t *testing.T) {
	ledger, db, _ := newTestLedger(t)
	activity := createActivity(t, db, "Checkup", 100, models.FrequencyOnce)

	assert.NoError(t, db.Create(&models.Achievement{
		Name: "First Steps", Level: 1, PointsRequired: 1, IsActive: true,
	}).Error)
	assert.NoError(t, db.Create(&models.Achievement{
		Name: "Getting Going", Level: 2, PointsRequired: 100, IsActive: true,
	}).Error)

	_, err := ledger.RecordActivity("user1", activity.ID, "", "")
	assert.NoError(t, err)

	var unlocks int64
	db.Model(&models.UserAchievement{}).Where("user_id = ?", "user1").Count(&unlocks)
	assert.Equal(t, int64(2), unlocks)

	account := loadAccount(t, db, "user1")
	assert.Equal(t, 200, account.LifetimePoints) // 100 earned + 50*2 bonus
}
