package services

import (
	"context"
	"time"

	"github.com/trademomentumllc/ihep-application-sub007/internal/models"
	"github.com/trademomentumllc/ihep-application-sub007/pkg/logger"
)

// ExpireRewards flips active redemptions whose expiry has passed to expired.
// Reward codes lapse; the points spent on them are not refunded.
func (l *Ledger) ExpireRewards() (int64, error) {
	now := l.now()

	result := l.db.Model(&models.UserReward{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", models.UserRewardActive, now).
		Update("status", models.UserRewardExpired)
	if result.Error != nil {
		return 0, persistErr("expire rewards", result.Error)
	}
	return result.RowsAffected, nil
}

// StartExpirySweeper runs ExpireRewards on an hourly ticker until the context
// is cancelled.
func (l *Ledger) StartExpirySweeper(ctx context.Context) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	logger.Info().Msg("Starting reward expiry sweeper")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Stopping reward expiry sweeper")
			return
		case <-ticker.C:
			expired, err := l.ExpireRewards()
			if err != nil {
				logger.Error().Err(err).Msg("Reward expiry sweep failed")
				continue
			}
			if expired > 0 {
				logger.Info().Int64("expired", expired).Msg("Expired reward codes")
			}
		}
	}
}
