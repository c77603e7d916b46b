package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RewardCategory string

const (
	RewardDiscount    RewardCategory = "discount"
	RewardGiftCard    RewardCategory = "gift_card"
	RewardMerchandise RewardCategory = "merchandise"
	RewardExperience  RewardCategory = "experience"
	RewardDonation    RewardCategory = "donation"
)

// Reward is a catalog item redeemable with available points. A nil Inventory
// means unlimited stock.
type Reward struct {
	ID          string         `gorm:"primaryKey;type:text" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Category    RewardCategory `gorm:"type:text;not null;index" json:"category"`
	PointsCost  int            `gorm:"not null" json:"pointsCost"`
	Inventory   *int           `json:"inventory,omitempty"`
	IsActive    bool           `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (Reward) TableName() string {
	return "rewards"
}

func (r *Reward) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

type UserRewardStatus string

const (
	UserRewardActive   UserRewardStatus = "active"
	UserRewardRedeemed UserRewardStatus = "redeemed"
	UserRewardExpired  UserRewardStatus = "expired"
)

// UserReward is a redemption record issued together with the points deduction
// and inventory decrement in one transaction.
type UserReward struct {
	ID        string           `gorm:"primaryKey;type:text" json:"id"`
	UserID    string           `gorm:"index;not null" json:"userId"`
	RewardID  string           `gorm:"index;not null" json:"rewardId"`
	Reward    Reward           `gorm:"foreignKey:RewardID" json:"reward,omitempty"`
	Code      string           `gorm:"uniqueIndex;not null" json:"code"`
	Status    UserRewardStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	EarnedAt  time.Time        `json:"earnedAt"`
	ExpiresAt *time.Time       `json:"expiresAt,omitempty"`
}

func (UserReward) TableName() string {
	return "user_rewards"
}

func (ur *UserReward) BeforeCreate(tx *gorm.DB) (err error) {
	if ur.ID == "" {
		ur.ID = uuid.New().String()
	}
	return
}
