package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ persistence.RecordRepository = (*RecordRepository)(nil)

// RecordRepository implements persistence.RecordRepository using GORM
type RecordRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRecordRepository creates a new RecordRepository instance
func NewRecordRepository(db *gorm.DB, logger coreport.Logger) *RecordRepository {
	return &RecordRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func recordToModel(record *entity.Record) model.Record {
	return model.Record{
		Owner:           record.Owner,
		StartTime:       record.StartTime.Unix(),
		EndTime:         record.EndTime.Unix(),
		CycleSeconds:    int64(record.CycleDuration / time.Second),
		ConfigVersion:   record.ConfigVersion,
		Issuer:          record.Issuer,
		Amount:          record.Quantity.Amount,
		SymbolCode:      record.Quantity.Symbol.Code,
		SymbolPrecision: record.Quantity.Symbol.Precision,
		Repeat:          record.Repeat,
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}
}

func recordToEntity(m *model.Record) *entity.Record {
	return &entity.Record{
		Owner:         m.Owner,
		StartTime:     time.Unix(m.StartTime, 0).UTC(),
		EndTime:       time.Unix(m.EndTime, 0).UTC(),
		CycleDuration: time.Duration(m.CycleSeconds) * time.Second,
		ConfigVersion: m.ConfigVersion,
		Issuer:        m.Issuer,
		Quantity: entity.Quantity{
			Amount: m.Amount,
			Symbol: entity.Symbol{Precision: m.SymbolPrecision, Code: m.SymbolCode},
		},
		Repeat:    m.Repeat,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *RecordRepository) handleDatabaseError(operation string, err error, owner string, startTime int64) error {
	fields := map[string]any{
		"operation":  operation,
		"owner":      owner,
		"start_time": startTime,
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("Record not found", fields)
		return errs.ErrRecordNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Record already exists for start time", fields)
		return errs.ErrDuplicateRecord
	}

	fields["error"] = err.Error()
	fields["error_type"] = string(r.errorClassifier.Classify(err))
	r.logger.Error("Database error on records", fields)
	return wrapDatabaseError(err)
}

// Create inserts a new record
func (r *RecordRepository) Create(ctx context.Context, record *entity.Record) error {
	owner, start := record.Key()
	row := recordToModel(record)

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.handleDatabaseError("create", err, owner, start)
	}

	r.logger.Debug("Record stored", map[string]any{
		"owner":      owner,
		"start_time": start,
		"end_time":   row.EndTime,
	})
	return nil
}

// Get retrieves one record
func (r *RecordRepository) Get(ctx context.Context, owner string, startTime int64) (*entity.Record, error) {
	return r.get(r.db.WithContext(ctx), "get", owner, startTime)
}

// GetForUpdate retrieves one record under a row lock
func (r *RecordRepository) GetForUpdate(ctx context.Context, owner string, startTime int64) (*entity.Record, error) {
	db := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.get(db, "get_for_update", owner, startTime)
}

func (r *RecordRepository) get(db *gorm.DB, operation, owner string, startTime int64) (*entity.Record, error) {
	var row model.Record
	err := db.Where("owner = ? AND start_time = ?", owner, startTime).First(&row).Error
	if err != nil {
		return nil, r.handleDatabaseError(operation, err, owner, startTime)
	}
	return recordToEntity(&row), nil
}

// Update persists the end time and repeat flag
func (r *RecordRepository) Update(ctx context.Context, record *entity.Record) error {
	owner, start := record.Key()

	result := r.db.WithContext(ctx).Model(&model.Record{}).
		Where("owner = ? AND start_time = ?", owner, start).
		Updates(map[string]any{
			"end_time":   record.EndTime.Unix(),
			"repeat":     record.Repeat,
			"updated_at": record.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("update", result.Error, owner, start)
	}
	if result.RowsAffected == 0 {
		return errs.ErrRecordNotFound
	}
	return nil
}

// Delete removes a record
func (r *RecordRepository) Delete(ctx context.Context, owner string, startTime int64) error {
	result := r.db.WithContext(ctx).
		Where("owner = ? AND start_time = ?", owner, startTime).
		Delete(&model.Record{})

	if result.Error != nil {
		return r.handleDatabaseError("delete", result.Error, owner, startTime)
	}
	if result.RowsAffected == 0 {
		return errs.ErrRecordNotFound
	}
	return nil
}

// Exists reports whether a record exists for the key
func (r *RecordRepository) Exists(ctx context.Context, owner string, startTime int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Record{}).
		Where("owner = ? AND start_time = ?", owner, startTime).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("exists", err, owner, startTime)
	}
	return count > 0, nil
}

// ListByOwner returns the owner's records ordered by start time
func (r *RecordRepository) ListByOwner(ctx context.Context, owner string) ([]*entity.Record, error) {
	var rows []model.Record
	err := r.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("start_time asc").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("list", err, owner, 0)
	}

	records := make([]*entity.Record, 0, len(rows))
	for i := range rows {
		records = append(records, recordToEntity(&rows[i]))
	}
	return records, nil
}

// CountWithdrawable counts one-shot records whose end time is before now
func (r *RecordRepository) CountWithdrawable(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Record{}).
		Where("repeat = ? AND end_time < ?", false, now.Unix()).
		Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("count_withdrawable", err, "", 0)
	}
	return count, nil
}
