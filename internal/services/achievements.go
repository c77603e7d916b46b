package services

import (
	"time"

	"github.com/trademomentumllc/ihep-application-sub007/internal/models"
	"gorm.io/gorm"
)

// evaluateAchievements unlocks every active achievement whose lifetime-points
// threshold the account has crossed and that the user does not already hold.
// Unlocking is monotonic: the not-in-earned-set predicate is re-evaluated
// against persisted state, so a retried recording never double-awards.
func (l *Ledger) evaluateAchievements(tx *gorm.DB, account *models.PointsAccount, now time.Time) ([]models.Achievement, []Event, error) {
	var earnedIDs []string
	if err := tx.Model(&models.UserAchievement{}).
		Where("user_id = ?", account.UserID).
		Pluck("achievement_id", &earnedIDs).Error; err != nil {
		return nil, nil, persistErr("load earned achievements", err)
	}

	query := tx.Where("is_active = ? AND points_required <= ?", true, account.LifetimePoints)
	if len(earnedIDs) > 0 {
		query = query.Where("id NOT IN ?", earnedIDs)
	}

	var eligible []models.Achievement
	if err := query.Order("points_required asc").Find(&eligible).Error; err != nil {
		return nil, nil, persistErr("load eligible achievements", err)
	}

	var events []Event
	for _, achievement := range eligible {
		unlock := models.UserAchievement{
			UserID:        account.UserID,
			AchievementID: achievement.ID,
			EarnedAt:      now,
		}
		if err := tx.Create(&unlock).Error; err != nil {
			return nil, nil, persistErr("insert achievement unlock", err)
		}
		events = append(events, Event{
			Type:     EventAchievementUnlocked,
			UserID:   account.UserID,
			SourceID: achievement.ID,
			Message:  "Unlocked: " + achievement.Name,
		})

		if achievement.Level <= 1 {
			continue
		}

		bonus := 50 * achievement.Level
		account.TotalPoints += bonus
		account.AvailablePoints += bonus
		account.LifetimePoints += bonus

		entry := models.PointsTransaction{
			UserID:      account.UserID,
			Amount:      bonus,
			Type:        models.TransactionBonus,
			Description: "Achievement bonus: " + achievement.Name,
			SourceID:    achievement.ID,
			SourceType:  models.SourceAchievement,
			CreatedAt:   now,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return nil, nil, persistErr("append achievement bonus", err)
		}
	}

	return eligible, events, nil
}
