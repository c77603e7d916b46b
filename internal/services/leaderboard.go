package services

import (
	"fmt"
	"time"

	"github.com/trademomentumllc/ihep-application-sub007/internal/database"
	"github.com/trademomentumllc/ihep-application-sub007/internal/models"
	"gorm.io/gorm"
)

// leaderboardCachePattern matches every cached leaderboard page; writes that
// change lifetime points or streaks invalidate it after committing.
const leaderboardCachePattern = "leaderboard:*"

type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	UserID         string `json:"userId"`
	LifetimePoints int    `json:"lifetimePoints"`
	CurrentStreak  int    `json:"currentStreak"`
	LongestStreak  int    `json:"longestStreak"`
}

// Leaderboard ranks users by lifetime points. Results are cached in redis
// for a short TTL; when redis is down it reads the database directly.
type Leaderboard struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewLeaderboard(db *gorm.DB) *Leaderboard {
	return &Leaderboard{
		db:  db,
		ttl: 30 * time.Second,
	}
}

// Top returns the highest-ranked accounts, at most limit entries.
func (b *Leaderboard) Top(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	cacheKey := fmt.Sprintf("leaderboard:lifetime:%d", limit)
	var cached []LeaderboardEntry
	if err := database.CacheGet(cacheKey, &cached); err == nil {
		return cached, nil
	}

	var accounts []models.PointsAccount
	err := b.db.Order("lifetime_points desc, user_id").Limit(limit).Find(&accounts).Error
	if err != nil {
		return nil, persistErr("load leaderboard", err)
	}

	entries := make([]LeaderboardEntry, 0, len(accounts))
	for i, account := range accounts {
		entries = append(entries, LeaderboardEntry{
			Rank:           i + 1,
			UserID:         account.UserID,
			LifetimePoints: account.LifetimePoints,
			CurrentStreak:  account.CurrentStreak,
			LongestStreak:  account.LongestStreak,
		})
	}

	_ = database.CacheSet(cacheKey, entries, b.ttl)
	return entries, nil
}
