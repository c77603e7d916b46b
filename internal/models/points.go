package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PointsAccount holds the cached point counters and streak state for one
// user. The transaction ledger is the source of truth; these counters are a
// projection kept in sync inside the same transaction as every ledger append.
//
// Invariants: availablePoints <= totalPoints <= lifetimePoints,
// lifetimePoints never decreases, longestStreak >= currentStreak.
type PointsAccount struct {
	UserID           string     `gorm:"primaryKey;type:text" json:"userId"`
	TotalPoints      int        `gorm:"default:0" json:"totalPoints"`
	AvailablePoints  int        `gorm:"default:0" json:"availablePoints"`
	LifetimePoints   int        `gorm:"default:0" json:"lifetimePoints"`
	CurrentStreak    int        `gorm:"default:0" json:"currentStreak"`
	LongestStreak    int        `gorm:"default:0" json:"longestStreak"`
	LastActivity     *time.Time `json:"lastActivity,omitempty"`
	LastStreakUpdate *time.Time `json:"lastStreakUpdate,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (PointsAccount) TableName() string {
	return "points_accounts"
}

type TransactionType string

const (
	TransactionEarned     TransactionType = "earned"
	TransactionSpent      TransactionType = "spent"
	TransactionExpired    TransactionType = "expired"
	TransactionBonus      TransactionType = "bonus"
	TransactionAdjustment TransactionType = "adjustment"
)

type TransactionSource string

const (
	SourceActivity    TransactionSource = "activity"
	SourceReward      TransactionSource = "reward"
	SourceAchievement TransactionSource = "achievement"
	SourceAdmin       TransactionSource = "admin"
	SourceStreak      TransactionSource = "streak"
)

// PointsTransaction is an append-only ledger entry. Amount is positive for
// earned/bonus and negative for spent/expired. Rows are never mutated or
// deleted.
type PointsTransaction struct {
	ID          string            `gorm:"primaryKey;type:text" json:"id"`
	UserID      string            `gorm:"index;not null" json:"userId"`
	Amount      int               `gorm:"not null" json:"amount"`
	Type        TransactionType   `gorm:"type:text;not null" json:"type"`
	Description string            `json:"description"`
	SourceID    string            `gorm:"index" json:"sourceId"`
	SourceType  TransactionSource `gorm:"type:text;not null" json:"sourceType"`
	CreatedAt   time.Time         `gorm:"index" json:"createdAt"`
}

func (PointsTransaction) TableName() string {
	return "points_transactions"
}

func (pt *PointsTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if pt.ID == "" {
		pt.ID = uuid.New().String()
	}
	return
}
