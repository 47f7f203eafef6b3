package middleware

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/api/dto"
	applogger "github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": applogger.RequestIDFromContext(c.Request.Context()),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.CodeInternalServer,
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

// HTTPStatus maps a domain error to the status code the API answers with
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateEntry),
		errors.Is(err, domainerr.ErrNoOp),
		errors.Is(err, domainerr.ErrExpired),
		errors.Is(err, domainerr.ErrCycleNotConfigured):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrUnsupportedAsset):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrStillLocked), errors.Is(err, domainerr.ErrNotMature):
		return http.StatusLocked
	case errors.Is(err, domainerr.ErrOwnerBusy):
		return http.StatusTooManyRequests
	case errors.Is(err, domainerr.ErrLedgerUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the response body for err. Server-side failures never expose their cause.
func NewErrorResponse(err error) dto.ErrorResponse {
	switch status := HTTPStatus(err); {
	case status == http.StatusBadGateway:
		return dto.ErrorResponse{Code: domainerr.CodeLedgerUnavailable, Message: domainerr.ErrLedgerUnavailable.Error()}
	case status == http.StatusServiceUnavailable:
		return dto.ErrorResponse{Code: domainerr.CodeDatabase, Message: "Service temporarily unavailable"}
	case status >= http.StatusInternalServerError:
		return dto.ErrorResponse{Code: domainerr.CodeInternalServer, Message: "Internal server error"}
	default:
		return dto.ErrorResponse{Code: domainerr.ErrorCode(err), Message: err.Error()}
	}
}

// AbortWithError answers the request with the status and body mapped from err
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(HTTPStatus(err), NewErrorResponse(err))
}
