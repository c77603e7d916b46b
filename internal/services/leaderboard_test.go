package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trademomentumllc/ihep-application-sub007/internal/models"
)

func TestLeaderboardRanksByLifetimePoints(t *testing.T) {
	db := setupTestDB(t)
	board := NewLeaderboard(db)

	accounts := []models.PointsAccount{
		{UserID: "alice", LifetimePoints: 300, CurrentStreak: 4, LongestStreak: 9},
		{UserID: "bob", LifetimePoints: 500, CurrentStreak: 2, LongestStreak: 2},
		{UserID: "carol", LifetimePoints: 100, CurrentStreak: 1, LongestStreak: 5},
	}
	for i := range accounts {
		assert.NoError(t, db.Create(&accounts[i]).Error)
	}

	entries, err := board.Top(2)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "bob", entries[0].UserID)
	assert.Equal(t, 500, entries[0].LifetimePoints)

	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "alice", entries[1].UserID)
}

func TestLeaderboardReflectsRecordedActivity(t *testing.T) {
	ledger, db, _ := newTestLedger(t)
	board := NewLeaderboard(db)
	activity := createActivity(t, db, "30-Minute Walk", 15, models.FrequencyDaily)

	assert.NoError(t, db.Create(&models.PointsAccount{UserID: "bob", LifetimePoints: 10}).Error)

	_, err := ledger.RecordActivity("alice", activity.ID, "", "")
	assert.NoError(t, err)

	entries, err := board.Top(10)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "alice", entries[0].UserID)
	assert.Equal(t, 15, entries[0].LifetimePoints)
	assert.Equal(t, "bob", entries[1].UserID)
}

func TestLeaderboardDefaultLimit(t *testing.T) {
	db := setupTestDB(t)
	board := NewLeaderboard(db)

	entries, err := board.Top(0)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
