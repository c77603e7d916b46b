package services

import (
	"fmt"
	"time"

	"github.com/trademomentumllc/ihep-application-sub007/internal/models"
	"gorm.io/gorm"
)

// streakWindow is the continuity tolerance. It lets a user complete their
// daily activity at varying times (11pm one day, 10am the next) without
// breaking the streak, while the daily dedup upstream keeps the cadence at
// one qualifying completion per calendar day.
const streakWindow = 36 * time.Hour

// updateStreak advances or resets the account's streak. Called only when an
// account pre-exists; first-ever activity initializes the streak to 1 by
// construction. Mutates the account in memory (the caller saves it) and may
// append bonus ledger entries on the open transaction.
func (l *Ledger) updateStreak(tx *gorm.DB, account *models.PointsAccount, now time.Time) ([]Event, error) {
	if account.LastStreakUpdate == nil {
		account.CurrentStreak = 1
		if account.LongestStreak < 1 {
			account.LongestStreak = 1
		}
		account.LastStreakUpdate = &now
		return nil, nil
	}

	elapsed := now.Sub(*account.LastStreakUpdate)
	if elapsed > streakWindow {
		// Streak broken. The account is active again today, so restart at 1;
		// longestStreak keeps the old peak.
		account.CurrentStreak = 1
		account.LastStreakUpdate = &now
		return nil, nil
	}

	// Already advanced for this calendar day; nothing further to count.
	if sameDay(*account.LastStreakUpdate, now) {
		return nil, nil
	}

	yesterdayStart := startOfDay(now).AddDate(0, 0, -1)
	var count int64
	if err := tx.Model(&models.UserActivity{}).
		Where("user_id = ? AND completed_at >= ? AND completed_at < ?",
			account.UserID, yesterdayStart, startOfDay(now)).
		Count(&count).Error; err != nil {
		return nil, persistErr("check streak continuity", err)
	}
	if count == 0 {
		return nil, nil
	}

	account.CurrentStreak++
	if account.CurrentStreak > account.LongestStreak {
		account.LongestStreak = account.CurrentStreak
	}
	account.LastStreakUpdate = &now

	if account.CurrentStreak%5 != 0 {
		return nil, nil
	}

	bonus := 25 * (account.CurrentStreak / 5)
	account.TotalPoints += bonus
	account.AvailablePoints += bonus
	account.LifetimePoints += bonus

	description := fmt.Sprintf("%d-day streak bonus", account.CurrentStreak)
	entry := models.PointsTransaction{
		UserID:      account.UserID,
		Amount:      bonus,
		Type:        models.TransactionBonus,
		Description: description,
		SourceID:    account.UserID,
		SourceType:  models.SourceStreak,
		CreatedAt:   now,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, persistErr("append streak bonus", err)
	}

	return []Event{{
		Type:    EventStreakBonus,
		UserID:  account.UserID,
		Amount:  bonus,
		Message: description,
	}}, nil
}
