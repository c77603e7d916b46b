package services

import (
	"github.com/trademomentumllc/ihep-application-sub007/pkg/logger"
)

type EventType string

const (
	EventPointsEarned        EventType = "points.earned"
	EventPointsSpent         EventType = "points.spent"
	EventStreakBonus         EventType = "streak.bonus"
	EventAchievementUnlocked EventType = "achievement.unlocked"
	EventRewardRedeemed      EventType = "reward.redeemed"
)

// Event is a domain event published after an atomic unit commits. External
// collaborators (notifier, audit logger) subscribe through an Emitter;
// events are never emitted for rolled-back work.
type Event struct {
	Type     EventType `json:"type"`
	UserID   string    `json:"userId"`
	Amount   int       `json:"amount,omitempty"`
	SourceID string    `json:"sourceId,omitempty"`
	Message  string    `json:"message,omitempty"`
}

type Emitter interface {
	Emit(event Event)
}

// LogEmitter writes events to the structured log. It is the default sink
// when no notifier is wired in.
type LogEmitter struct{}

func (LogEmitter) Emit(event Event) {
	logger.Info().
		Str("event", string(event.Type)).
		Str("user_id", event.UserID).
		Int("amount", event.Amount).
		Str("source_id", event.SourceID).
		Msg(event.Message)
}
