package migrations

import (
	"gorm.io/gorm"
)

// Migration001LedgerIndexes adds composite indexes for the ledger hot paths:
// per-user transaction history and the daily-dedup completion lookup.
func Migration001LedgerIndexes() Migration {
	return Migration{
		ID:   "001_ledger_indexes",
		Name: "Add composite indexes for transaction history and daily dedup",
		Up: func(db *gorm.DB) error {
			statements := []string{
				`CREATE INDEX IF NOT EXISTS idx_points_transactions_user_created
					ON points_transactions (user_id, created_at DESC)`,
				`CREATE INDEX IF NOT EXISTS idx_user_activities_user_activity_completed
					ON user_activities (user_id, activity_id, completed_at)`,
				`CREATE INDEX IF NOT EXISTS idx_user_activities_user_completed
					ON user_activities (user_id, completed_at)`,
			}
			for _, stmt := range statements {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
		Down: func(db *gorm.DB) error {
			statements := []string{
				`DROP INDEX IF EXISTS idx_points_transactions_user_created`,
				`DROP INDEX IF EXISTS idx_user_activities_user_activity_completed`,
				`DROP INDEX IF EXISTS idx_user_activities_user_completed`,
			}
			for _, stmt := range statements {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
	}
}
