package services

import (
	"errors"
	"time"

	"github.com/trademomentumllc/ihep-application-sub007/internal/database"
	"github.com/trademomentumllc/ihep-application-sub007/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger is the engagement rewards service: it records activity completions,
// maintains point balances and streaks, unlocks achievements and redeems
// rewards. Every balance mutation runs inside a single database transaction
// with the account row locked, so operations for one user are serialized
// while different users proceed in parallel.
type Ledger struct {
	db      *gorm.DB
	now     func() time.Time
	emitter Emitter
}

type LedgerOption func(*Ledger)

// WithClock overrides the time source (deterministic streak/expiry tests).
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithEmitter sets the domain event sink.
func WithEmitter(e Emitter) LedgerOption {
	return func(l *Ledger) {
		l.emitter = e
	}
}

func NewLedger(db *gorm.DB, opts ...LedgerOption) *Ledger {
	l := &Ledger{
		db:      db,
		now:     time.Now,
		emitter: LogEmitter{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// lockForUpdate locks the selected rows for the duration of the transaction.
// Postgres gets a row lock; sqlite (tests) has a single writer and does not
// accept FOR UPDATE.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// RecordActivity validates and records a single activity completion. The
// completion insert, account update, streak evaluation, ledger append and
// achievement unlocks commit or roll back together.
func (l *Ledger) RecordActivity(userID, activityID, notes, proofImageURL string) (*models.UserActivity, error) {
	now := l.now()
	var completion *models.UserActivity
	var events []Event

	err := l.db.Transaction(func(tx *gorm.DB) error {
		events = events[:0]

		var activity models.Activity
		if err := tx.First(&activity, "id = ? AND is_active = ?", activityID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrActivityNotFound
			}
			return persistErr("load activity", err)
		}

		// Lock (or create) the account row before the dedup read so two
		// concurrent recordings for the same user serialize here instead of
		// both passing the count below.
		var account models.PointsAccount
		err := lockForUpdate(tx).First(&account, "user_id = ?", userID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			account = models.PointsAccount{UserID: userID}
			if err := tx.Create(&account).Error; err != nil {
				return persistErr("create account", err)
			}
		case err != nil:
			return persistErr("load account", err)
		}

		// Only daily completions are deduplicated; weekly/monthly windows are
		// not enforced, matching upstream behavior.
		if activity.Frequency == models.FrequencyDaily {
			dayStart := startOfDay(now)
			var count int64
			if err := tx.Model(&models.UserActivity{}).
				Where("user_id = ? AND activity_id = ? AND completed_at >= ? AND completed_at < ?",
					userID, activityID, dayStart, dayStart.AddDate(0, 0, 1)).
				Count(&count).Error; err != nil {
				return persistErr("check duplicate completion", err)
			}
			if count > 0 {
				return ErrDuplicateCompletion
			}
		}

		completion = &models.UserActivity{
			UserID:        userID,
			ActivityID:    activityID,
			PointsEarned:  activity.PointsValue,
			Notes:         notes,
			ProofImageURL: proofImageURL,
			CompletedAt:   now,
		}
		if err := tx.Create(completion).Error; err != nil {
			return persistErr("insert completion", err)
		}

		account.TotalPoints += activity.PointsValue
		account.AvailablePoints += activity.PointsValue
		account.LifetimePoints += activity.PointsValue
		account.LastActivity = &now

		streakEvents, err := l.updateStreak(tx, &account, now)
		if err != nil {
			return err
		}
		events = append(events, streakEvents...)

		entry := models.PointsTransaction{
			UserID:      userID,
			Amount:      activity.PointsValue,
			Type:        models.TransactionEarned,
			Description: "Completed: " + activity.Name,
			SourceID:    completion.ID,
			SourceType:  models.SourceActivity,
			CreatedAt:   now,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return persistErr("append ledger entry", err)
		}
		events = append(events, Event{
			Type:     EventPointsEarned,
			UserID:   userID,
			Amount:   activity.PointsValue,
			SourceID: completion.ID,
			Message:  "Completed: " + activity.Name,
		})

		_, achievementEvents, err := l.evaluateAchievements(tx, &account, now)
		if err != nil {
			return err
		}
		events = append(events, achievementEvents...)

		if err := tx.Save(&account).Error; err != nil {
			return persistErr("update account", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = database.CacheInvalidate(leaderboardCachePattern)
	for _, e := range events {
		l.emitter.Emit(e)
	}
	return completion, nil
}

// GetAccount returns the user's points account, lazily creating a zeroed one
// on first read. No ledger entry is written for the lazy create.
func (l *Ledger) GetAccount(userID string) (*models.PointsAccount, error) {
	var account models.PointsAccount
	if err := l.db.Where(models.PointsAccount{UserID: userID}).FirstOrCreate(&account).Error; err != nil {
		return nil, persistErr("load account", err)
	}
	return &account, nil
}

// GetTransactionHistory returns the user's ledger entries, most recent first.
func (l *Ledger) GetTransactionHistory(userID string, limit, offset int) ([]models.PointsTransaction, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	var entries []models.PointsTransaction
	err := l.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, persistErr("load transaction history", err)
	}
	return entries, nil
}

// ListActivities returns the active activity catalog.
func (l *Ledger) ListActivities() ([]models.Activity, error) {
	var activities []models.Activity
	if err := l.db.Where("is_active = ?", true).Order("category, name").Find(&activities).Error; err != nil {
		return nil, persistErr("list activities", err)
	}
	return activities, nil
}

// ListRewards returns the active reward catalog.
func (l *Ledger) ListRewards() ([]models.Reward, error) {
	var rewards []models.Reward
	if err := l.db.Where("is_active = ?", true).Order("points_cost").Find(&rewards).Error; err != nil {
		return nil, persistErr("list rewards", err)
	}
	return rewards, nil
}

// ListUserAchievements returns a user's unlock records with their catalog
// definitions preloaded.
func (l *Ledger) ListUserAchievements(userID string) ([]models.UserAchievement, error) {
	var earned []models.UserAchievement
	err := l.db.Preload("Achievement").
		Where("user_id = ?", userID).
		Order("earned_at desc").
		Find(&earned).Error
	if err != nil {
		return nil, persistErr("list user achievements", err)
	}
	return earned, nil
}

// ListUserRewards returns a user's redemption records, most recent first.
func (l *Ledger) ListUserRewards(userID string) ([]models.UserReward, error) {
	var redeemed []models.UserReward
	err := l.db.Preload("Reward").
		Where("user_id = ?", userID).
		Order("earned_at desc").
		Find(&redeemed).Error
	if err != nil {
		return nil, persistErr("list user rewards", err)
	}
	return redeemed, nil
}
