package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes that gorm tags can't describe
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

type indexStatement struct {
	name string
	sql  string
}

var advancedIndexes = []indexStatement{
	{
		// repeat records are only ever looked up by owner; keep withdrawable one-shots separate
		name: "idx_records_owner_repeat",
		sql: `CREATE INDEX IF NOT EXISTS idx_records_owner_repeat
			ON records (owner, repeat, end_time)`,
	},
	{
		name: "idx_records_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_records_created_at_brin
			ON records USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_owner_locks_expires_at",
		sql: `CREATE INDEX IF NOT EXISTS idx_owner_locks_expires_at
			ON owner_locks (expires_at)`,
	},
	{
		name: "idx_processed_notifications_owner",
		sql: `CREATE INDEX IF NOT EXISTS idx_processed_notifications_owner
			ON processed_notifications (owner, start_time)`,
	},
}

var performanceTweaks = []indexStatement{
	// records are updated in place on every repeat toggle
	{name: "records_fillfactor", sql: `ALTER TABLE records SET (fillfactor = 85)`},
	{name: "owner_locks_fillfactor", sql: `ALTER TABLE owner_locks SET (fillfactor = 70)`},
	{name: "records_owner_statistics", sql: `ALTER TABLE records ALTER COLUMN owner SET STATISTICS 1000`},
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates the extra PostgreSQL indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies storage tweaks. Failures are logged, not returned.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	for _, tweak := range performanceTweaks {
		if err := m.db.WithContext(ctx).Exec(tweak.sql).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"tweak": tweak.name,
				"error": err.Error(),
			})
		}
	}

	return nil
}
