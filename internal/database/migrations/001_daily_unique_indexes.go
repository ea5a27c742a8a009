package migrations

import "gorm.io/gorm"

// The one-entry-per-day invariant is ultimately enforced here: concurrent
// creates for the same user and day both pass the application-level existence
// check, and the second insert fails on these indexes.
func init() {
	Register("001_daily_unique_indexes",
		func(db *gorm.DB) error {
			if err := db.Exec(
				"CREATE UNIQUE INDEX IF NOT EXISTS idx_moods_user_date ON moods (user_id, date)",
			).Error; err != nil {
				return err
			}
			return db.Exec(
				"CREATE UNIQUE INDEX IF NOT EXISTS idx_reflections_user_date ON reflections (user_id, date)",
			).Error
		},
		func(db *gorm.DB) error {
			if err := db.Exec("DROP INDEX IF EXISTS idx_moods_user_date").Error; err != nil {
				return err
			}
			return db.Exec("DROP INDEX IF EXISTS idx_reflections_user_date").Error
		},
	)
}
