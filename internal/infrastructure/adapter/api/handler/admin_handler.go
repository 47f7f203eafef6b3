package handler

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// larger values overflow time.Duration
const maxCycleSeconds = math.MaxInt64 / int64(time.Second)

// AdminHandler handles allowlist and cycle configuration requests
type AdminHandler struct {
	cycle     usecase.CycleUseCase
	allowlist usecase.AllowlistUseCase
	logger    coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(cycle usecase.CycleUseCase, allowlist usecase.AllowlistUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		cycle:     cycle,
		allowlist: allowlist,
		logger:    logger,
	}
}

// SetCycle handles PUT /v1/admin/cycle
func (h *AdminHandler) SetCycle(c *gin.Context) {
	var req dto.CycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "Invalid cycle request format", invalidBody(err), nil)
		return
	}

	seconds := *req.CycleSeconds
	if seconds > maxCycleSeconds {
		respondError(c, h.logger, "Invalid cycle duration", domainerr.ErrInvalidDuration, map[string]any{
			"cycle_seconds": seconds,
		})
		return
	}

	config, err := h.cycle.SetCycleDuration(c.Request.Context(), middleware.Caller(c), time.Duration(seconds)*time.Second)
	if err != nil {
		respondError(c, h.logger, "Error setting cycle duration", err, map[string]any{
			"cycle_seconds": seconds,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewCycleResponse(config))
}

// GetCycle handles GET /v1/admin/cycle
func (h *AdminHandler) GetCycle(c *gin.Context) {
	config, err := h.cycle.CurrentCycle(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Error getting cycle duration", err, nil)
		return
	}

	c.JSON(http.StatusOK, dto.NewCycleResponse(config))
}

// AddAsset handles POST /v1/admin/assets
func (h *AdminHandler) AddAsset(c *gin.Context) {
	var req dto.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "Invalid asset request format", invalidBody(err), nil)
		return
	}

	symbol, err := entity.ParseSymbol(req.Symbol)
	if err != nil {
		respondError(c, h.logger, "Invalid asset symbol", err, map[string]any{"symbol": req.Symbol})
		return
	}

	asset, err := h.allowlist.AddAsset(c.Request.Context(), middleware.Caller(c), req.Issuer, symbol)
	if err != nil {
		respondError(c, h.logger, "Error adding asset", err, map[string]any{
			"issuer": req.Issuer,
			"symbol": req.Symbol,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.NewAssetResponse(asset))
}

// RemoveAsset handles DELETE /v1/admin/assets/:id
func (h *AdminHandler) RemoveAsset(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		respondError(c, h.logger, "Invalid asset id",
			fmt.Errorf("%w: invalid asset id %q", domainerr.ErrInvalidValue, idParam), nil)
		return
	}

	if err := h.allowlist.RemoveAsset(c.Request.Context(), middleware.Caller(c), id); err != nil {
		respondError(c, h.logger, "Error removing asset", err, map[string]any{"id": id})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListAssets handles GET /v1/assets
func (h *AdminHandler) ListAssets(c *gin.Context) {
	assets, err := h.allowlist.ListAssets(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Error listing assets", err, nil)
		return
	}

	c.JSON(http.StatusOK, dto.NewAssetListResponse(assets))
}
