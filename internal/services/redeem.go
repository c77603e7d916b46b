package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/trademomentumllc/ihep-application-sub007/internal/models"
	"gorm.io/gorm"
)

// redemptionExpiry applies to time-limited reward categories.
const redemptionExpiry = 30 * 24 * time.Hour

// RedeemReward exchanges available points for a reward. The redemption
// record, points deduction and inventory decrement commit or roll back
// together; two concurrent redemptions against the same account cannot both
// pass the balance check because the account row is locked.
func (l *Ledger) RedeemReward(userID, rewardID string) (*models.UserReward, error) {
	now := l.now()
	var redemption *models.UserReward
	var cost int

	err := l.db.Transaction(func(tx *gorm.DB) error {
		var reward models.Reward
		if err := lockForUpdate(tx).First(&reward, "id = ? AND is_active = ?", rewardID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRewardNotFound
			}
			return persistErr("load reward", err)
		}

		if reward.Inventory != nil && *reward.Inventory <= 0 {
			return ErrOutOfStock
		}

		var account models.PointsAccount
		if err := lockForUpdate(tx).First(&account, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoAccount
			}
			return persistErr("load account", err)
		}

		if account.AvailablePoints < reward.PointsCost {
			return ErrInsufficientPoints
		}
		cost = reward.PointsCost

		code, err := redemptionCode(reward.Category)
		if err != nil {
			return persistErr("generate redemption code", err)
		}

		var expiresAt *time.Time
		if reward.Category == models.RewardDiscount || reward.Category == models.RewardGiftCard {
			expiry := now.Add(redemptionExpiry)
			expiresAt = &expiry
		}

		redemption = &models.UserReward{
			UserID:    userID,
			RewardID:  reward.ID,
			Code:      code,
			Status:    models.UserRewardActive,
			EarnedAt:  now,
			ExpiresAt: expiresAt,
		}
		if err := tx.Create(redemption).Error; err != nil {
			return persistErr("insert redemption", err)
		}

		// Spending reduces the spendable balance only; totalPoints and
		// lifetimePoints track points ever earned.
		account.AvailablePoints -= reward.PointsCost
		if err := tx.Save(&account).Error; err != nil {
			return persistErr("update account", err)
		}

		entry := models.PointsTransaction{
			UserID:      userID,
			Amount:      -reward.PointsCost,
			Type:        models.TransactionSpent,
			Description: "Redeemed: " + reward.Name,
			SourceID:    reward.ID,
			SourceType:  models.SourceReward,
			CreatedAt:   now,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return persistErr("append ledger entry", err)
		}

		if reward.Inventory != nil {
			if err := tx.Model(&models.Reward{}).
				Where("id = ?", reward.ID).
				UpdateColumn("inventory", gorm.Expr("inventory - 1")).Error; err != nil {
				return persistErr("decrement inventory", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.emitter.Emit(Event{
		Type:     EventPointsSpent,
		UserID:   userID,
		Amount:   -cost,
		SourceID: rewardID,
	})
	l.emitter.Emit(Event{
		Type:     EventRewardRedeemed,
		UserID:   userID,
		SourceID: redemption.ID,
		Message:  "Redemption code " + redemption.Code,
	})
	return redemption, nil
}

// redemptionCode builds a code like GIF-3FA81C2B from the reward category
// and a random suffix.
func redemptionCode(category models.RewardCategory) (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	prefix := strings.ToUpper(string(category))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return prefix + "-" + strings.ToUpper(hex.EncodeToString(buf)), nil
}
