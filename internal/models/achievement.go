package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Achievement is a catalog definition unlocked when a user's lifetime points
// cross PointsRequired.
type Achievement struct {
	ID             string    `gorm:"primaryKey;type:text" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Description    string    `json:"description"`
	Level          int       `gorm:"default:1" json:"level"`
	PointsRequired int       `gorm:"not null;index" json:"pointsRequired"`
	Category       string    `gorm:"type:text;index" json:"category"`
	Icon           string    `json:"icon"`
	IsActive       bool      `gorm:"default:true" json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (Achievement) TableName() string {
	return "achievements"
}

func (a *Achievement) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

// UserAchievement records an unlock. One row per (user, achievement), never
// deleted; an earned achievement is never revoked.
type UserAchievement struct {
	UserID        string    `gorm:"primaryKey;type:text" json:"userId"`
	AchievementID string    `gorm:"primaryKey;type:text" json:"achievementId"`
	EarnedAt      time.Time `json:"earnedAt"`

	Achievement Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
