package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds the query-path indexes the auto-migration does not cover.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"opportunities", "idx_opportunities_creator_id", "creator_id"},
		{"opportunities", "idx_opportunities_category", "category"},

		{"enrollments", "idx_enrollments_volunteer_id", "volunteer_id"},
		{"enrollments", "idx_enrollments_opportunity_id", "opportunity_id"},
		{"enrollments", "idx_enrollments_confirmed", "confirmed"},

		{"chat_messages", "idx_chat_messages_opportunity_created", "opportunity_id, created_at"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
