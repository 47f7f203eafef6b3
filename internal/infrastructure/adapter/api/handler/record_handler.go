package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// RecordHandler handles depositor-facing record requests
type RecordHandler struct {
	vault    usecase.VaultUseCase
	recorder OperationRecorder
	logger   coreport.Logger
}

// NewRecordHandler creates a new record handler instance
func NewRecordHandler(vault usecase.VaultUseCase, recorder OperationRecorder, logger coreport.Logger) *RecordHandler {
	return &RecordHandler{
		vault:    vault,
		recorder: recorder,
		logger:   logger,
	}
}

// Withdraw handles POST /v1/records/:owner/:startTime/withdraw
func (h *RecordHandler) Withdraw(c *gin.Context) {
	owner, startTime, err := recordKeyParams(c)
	if err != nil {
		respondError(c, h.logger, "Invalid withdraw request", err, nil)
		return
	}

	record, err := h.vault.Withdraw(c.Request.Context(), middleware.Caller(c), owner, startTime)
	h.recorder.IncWithdrawal(outcome(err))
	if err != nil {
		respondError(c, h.logger, "Withdraw failed", err, map[string]any{
			"owner":      owner,
			"start_time": startTime,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewRecordResponse(record))
}

// ChangeRepeat handles PUT /v1/records/:owner/:startTime/repeat
func (h *RecordHandler) ChangeRepeat(c *gin.Context) {
	owner, startTime, err := recordKeyParams(c)
	if err != nil {
		respondError(c, h.logger, "Invalid repeat request", err, nil)
		return
	}

	var req dto.RepeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "Invalid repeat request format", invalidBody(err), nil)
		return
	}

	record, err := h.vault.ChangeRepeat(c.Request.Context(), middleware.Caller(c), owner, startTime, *req.Repeat)
	h.recorder.IncRepeatChange(*req.Repeat, outcome(err))
	if err != nil {
		respondError(c, h.logger, "Repeat change failed", err, map[string]any{
			"owner":      owner,
			"start_time": startTime,
			"repeat":     *req.Repeat,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewRecordResponse(record))
}

// ListRecords handles GET /v1/records/:owner
func (h *RecordHandler) ListRecords(c *gin.Context) {
	owner, err := ownerParam(c, "owner")
	if err != nil {
		respondError(c, h.logger, "Invalid owner", err, nil)
		return
	}

	records, err := h.vault.ListRecords(c.Request.Context(), owner)
	if err != nil {
		respondError(c, h.logger, "Error listing records", err, map[string]any{"owner": owner})
		return
	}

	c.JSON(http.StatusOK, dto.NewRecordListResponse(owner, records))
}

// GetRecord handles GET /v1/records/:owner/:startTime
func (h *RecordHandler) GetRecord(c *gin.Context) {
	owner, startTime, err := recordKeyParams(c)
	if err != nil {
		respondError(c, h.logger, "Invalid record key", err, nil)
		return
	}

	record, err := h.vault.GetRecord(c.Request.Context(), owner, startTime)
	if err != nil {
		respondError(c, h.logger, "Error getting record", err, map[string]any{
			"owner":      owner,
			"start_time": startTime,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewRecordResponse(record))
}

// RecordExists handles GET /v1/vaults/:vault/records/:owner/:startTime/exists
func (h *RecordHandler) RecordExists(c *gin.Context) {
	owner, startTime, err := recordKeyParams(c)
	if err != nil {
		respondError(c, h.logger, "Invalid record key", err, nil)
		return
	}

	exists, err := h.vault.RecordExists(c.Request.Context(), c.Param("vault"), owner, startTime)
	if err != nil {
		respondError(c, h.logger, "Error checking record existence", err, map[string]any{
			"owner":      owner,
			"start_time": startTime,
		})
		return
	}

	c.JSON(http.StatusOK, dto.ExistsResponse{Exists: exists})
}
