package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"gorm.io/gorm"
)

// BackfillRecordConfigVersion stamps records written before 1.1.0 with the cycle config version
// that was active when the migration runs. Those records never carried one.
type BackfillRecordConfigVersion struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBackfillRecordConfigVersion creates a new migration instance
func NewBackfillRecordConfigVersion(db *gorm.DB, logger coreport.Logger) *BackfillRecordConfigVersion {
	return &BackfillRecordConfigVersion{db: db, logger: logger}
}

// Run executes the migration
func (m *BackfillRecordConfigVersion) Run(ctx context.Context) error {
	m.logger.Info("Backfilling config_version on records", nil)

	db := m.db.WithContext(ctx)

	hasColumn, err := m.columnExists(ctx, "records", "config_version")
	if err != nil {
		return err
	}
	if !hasColumn {
		if err := db.Exec(`ALTER TABLE records ADD COLUMN config_version BIGINT NOT NULL DEFAULT 0`).Error; err != nil {
			m.logger.Error("Failed to add config_version column", map[string]any{"error": err.Error()})
			return err
		}
	}

	result := db.Exec(`
		UPDATE records SET config_version = cycle_configs.version
		FROM cycle_configs
		WHERE records.config_version = 0 AND cycle_configs.id = 1
	`)
	if result.Error != nil {
		m.logger.Error("Failed to backfill config_version", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Backfilled config_version on records", map[string]any{
		"rows": result.RowsAffected,
	})
	return nil
}

func (m *BackfillRecordConfigVersion) columnExists(ctx context.Context, table, column string) (bool, error) {
	var count int64
	err := m.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM information_schema.columns
		WHERE table_name = ? AND column_name = ?
	`, table, column).Scan(&count).Error
	if err != nil {
		m.logger.Error("Failed to check column existence", map[string]any{
			"table":  table,
			"column": column,
			"error":  err.Error(),
		})
		return false, err
	}
	return count > 0, nil
}
