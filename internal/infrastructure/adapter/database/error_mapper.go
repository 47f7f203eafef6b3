package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeRecord represents a lock record
	EntityTypeRecord EntityType = "record"
	// EntityTypeAsset represents an allowlist entry
	EntityTypeAsset EntityType = "asset"
	// EntityTypeOwnerLock represents an owner lease
	EntityTypeOwnerLock EntityType = "owner_lock"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error.
// Driver messages are kept in the wrapped text so retry decisions can still see them.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serializ") ||
		strings.Contains(errMsg, "lock timeout"):
		return fmt.Errorf("%w: %s conflicted with a concurrent transaction: %s", domainErr.ErrDatabaseConnection, operation, err.Error())

	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return fmt.Errorf("%w: %s", domainErr.ErrDuplicateEntry, operation)

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s: %s", domainErr.ErrDatabaseConnection, operation, err.Error())

	default:
		return fmt.Errorf("%w: %s: %s", domainErr.ErrInternalServer, operation, err.Error())
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeRecord:
			return domainErr.ErrRecordNotFound
		case EntityTypeAsset:
			return domainErr.ErrAssetNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}
