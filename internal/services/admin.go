package services

import (
	"errors"

	"github.com/trademomentumllc/ihep-application-sub007/internal/database"
	"github.com/trademomentumllc/ihep-application-sub007/internal/models"
	"gorm.io/gorm"
)

// AdjustPoints applies an out-of-band administrative correction to an
// account. The amount (positive or negative) is applied to all three
// counters and recorded as an adjustment entry; this is the only path that
// may move lifetimePoints downward. A negative amount that would drive any
// counter below zero is rejected, so every adjustment entry records exactly
// the delta that was applied and the ledger keeps reconciling to the
// counters. Already-earned achievements are never revoked, but an upward
// adjustment can unlock new ones.
func (l *Ledger) AdjustPoints(userID string, amount int, reason string) error {
	if amount == 0 {
		return nil
	}
	now := l.now()
	var events []Event

	err := l.db.Transaction(func(tx *gorm.DB) error {
		events = events[:0]

		var account models.PointsAccount
		if err := lockForUpdate(tx).First(&account, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoAccount
			}
			return persistErr("load account", err)
		}

		if account.TotalPoints+amount < 0 ||
			account.AvailablePoints+amount < 0 ||
			account.LifetimePoints+amount < 0 {
			return ErrInsufficientPoints
		}
		account.TotalPoints += amount
		account.AvailablePoints += amount
		account.LifetimePoints += amount

		entry := models.PointsTransaction{
			UserID:      userID,
			Amount:      amount,
			Type:        models.TransactionAdjustment,
			Description: reason,
			SourceID:    userID,
			SourceType:  models.SourceAdmin,
			CreatedAt:   now,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return persistErr("append adjustment", err)
		}

		if amount > 0 {
			_, achievementEvents, err := l.evaluateAchievements(tx, &account, now)
			if err != nil {
				return err
			}
			events = append(events, achievementEvents...)
		}

		if err := tx.Save(&account).Error; err != nil {
			return persistErr("update account", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = database.CacheInvalidate(leaderboardCachePattern)
	for _, e := range events {
		l.emitter.Emit(e)
	}
	return nil
}
