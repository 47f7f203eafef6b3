package vault

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/persistence"
)

// IdempotencyHandler recognizes inbound transfers that were already turned into records
type IdempotencyHandler struct {
	uow persistence.UnitOfWork
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(uow persistence.UnitOfWork) *IdempotencyHandler {
	return &IdempotencyHandler{
		uow: uow,
	}
}

// CheckIdempotency looks the transfer id up.
// Returns the record it produced (nil once withdrawn), whether it was found, and any error.
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	transferID string,
) (*entity.Record, bool, error) {
	if transferID == "" {
		return nil, false, nil
	}

	notifications := h.uow.GetNotificationRepository(ctx)
	exists, err := notifications.Exists(ctx, transferID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check if transfer was processed: %w", err)
	}
	if !exists {
		return nil, false, nil
	}

	processed, err := notifications.Get(ctx, transferID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, false, nil
		}
		return nil, true, fmt.Errorf("failed to retrieve processed transfer: %w", err)
	}

	record, err := h.uow.GetRecordRepository(ctx).Get(ctx, processed.Owner, processed.StartTime.Unix())
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return nil, true, nil
		}
		return nil, true, fmt.Errorf("failed to retrieve record of processed transfer: %w", err)
	}

	return record, true, nil
}

// MarkProcessed stores the transfer id against the record it produced
func (h *IdempotencyHandler) MarkProcessed(
	ctx context.Context,
	transferID string,
	record *entity.Record,
	processedAt time.Time,
) error {
	if transferID == "" {
		return nil
	}
	return h.uow.GetNotificationRepository(ctx).MarkProcessed(ctx, &entity.ProcessedNotification{
		TransferID:  transferID,
		Owner:       record.Owner,
		StartTime:   record.StartTime,
		ProcessedAt: processedAt,
	})
}
