package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Deposit outcome labels
const (
	depositRecorded = "recorded"
	depositReplayed = "replayed"
	depositIgnored  = "ignored"
)

// NotificationHandler receives transfer notifications from the ledger.
// A non-2xx answer tells the ledger to abort the inbound transfer, so nothing about a
// transfer is validated here before the use case has seen whether it concerns the vault.
type NotificationHandler struct {
	vault    usecase.VaultUseCase
	recorder OperationRecorder
	logger   coreport.Logger
}

// NewNotificationHandler creates a new notification handler instance
func NewNotificationHandler(vault usecase.VaultUseCase, recorder OperationRecorder, logger coreport.Logger) *NotificationHandler {
	return &NotificationHandler{
		vault:    vault,
		recorder: recorder,
		logger:   logger,
	}
}

// HandleTransfer handles POST /v1/notifications/transfer
func (h *NotificationHandler) HandleTransfer(c *gin.Context) {
	var req dto.TransferNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.recorder.IncDeposit(resultRejected)
		respondError(c, h.logger, "Invalid transfer notification format", invalidBody(err), nil)
		return
	}

	caller := middleware.Caller(c)
	issuer := req.Issuer
	if issuer == "" {
		issuer = caller
	}

	result, err := h.vault.HandleTransfer(c.Request.Context(), caller, usecase.TransferNotification{
		TransferID: req.TransferID,
		From:       req.From,
		To:         req.To,
		Issuer:     issuer,
		Quantity:   req.Quantity,
		Memo:       req.Memo,
		Repeat:     req.Repeat,
	})
	if err != nil {
		h.recorder.IncDeposit(outcome(err))
		respondError(c, h.logger, "Transfer rejected", err, map[string]any{
			"transfer_id": req.TransferID,
			"from":        req.From,
			"quantity":    req.Quantity,
		})
		return
	}

	resp := dto.DepositResponse{Applicable: result.Applicable, Replayed: result.Replayed}
	switch {
	case !result.Applicable:
		h.recorder.IncDeposit(depositIgnored)
	case result.Replayed:
		h.recorder.IncDeposit(depositReplayed)
	default:
		h.recorder.IncDeposit(depositRecorded)
	}
	if result.Record != nil {
		record := dto.NewRecordResponse(result.Record)
		resp.Record = &record
	}

	status := http.StatusOK
	if result.Applicable && !result.Replayed {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}
