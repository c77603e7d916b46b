package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityCategory string

const (
	CategoryPhysical    ActivityCategory = "physical"
	CategoryMental      ActivityCategory = "mental"
	CategoryMedication  ActivityCategory = "medication"
	CategoryAppointment ActivityCategory = "appointment"
	CategoryEducation   ActivityCategory = "education"
	CategorySocial      ActivityCategory = "social"
)

type ActivityFrequency string

const (
	FrequencyDaily   ActivityFrequency = "daily"
	FrequencyWeekly  ActivityFrequency = "weekly"
	FrequencyMonthly ActivityFrequency = "monthly"
	FrequencyOnce    ActivityFrequency = "once"
)

// Activity is a catalog definition of a health activity that earns points.
// Immutable once created; deactivation hides it from future recording but
// never touches past completions.
type Activity struct {
	ID          string            `gorm:"primaryKey;type:text" json:"id"`
	Name        string            `gorm:"not null" json:"name"`
	Description string            `json:"description"`
	Category    ActivityCategory  `gorm:"type:text;not null;index" json:"category"`
	PointsValue int               `gorm:"not null" json:"pointsValue"`
	Frequency   ActivityFrequency `gorm:"type:text;not null;default:'daily'" json:"frequency"`
	IsActive    bool              `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func (Activity) TableName() string {
	return "activities"
}

func (a *Activity) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

// UserActivity is a single completion record. PointsEarned snapshots the
// activity's point value at completion time and is never recomputed.
type UserActivity struct {
	ID            string    `gorm:"primaryKey;type:text" json:"id"`
	UserID        string    `gorm:"index;not null" json:"userId"`
	ActivityID    string    `gorm:"index;not null" json:"activityId"`
	Activity      Activity  `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
	PointsEarned  int       `gorm:"not null" json:"pointsEarned"`
	Notes         string    `json:"notes,omitempty"`
	ProofImageURL string    `json:"proofImageUrl,omitempty"`
	CompletedAt   time.Time `gorm:"index" json:"completedAt"`
}

func (UserActivity) TableName() string {
	return "user_activities"
}

func (ua *UserActivity) BeforeCreate(tx *gorm.DB) (err error) {
	if ua.ID == "" {
		ua.ID = uuid.New().String()
	}
	return
}
