package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/api/middleware"
	applogger "github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// OperationRecorder counts vault operation outcomes
type OperationRecorder interface {
	IncDeposit(result string)
	IncWithdrawal(result string)
	IncRepeatChange(repeat bool, result string)
}

// Outcome labels
const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultFailed   = "failed"
)

func outcome(err error) string {
	switch {
	case err == nil:
		return resultOK
	case middleware.HTTPStatus(err) >= http.StatusInternalServerError:
		return resultFailed
	default:
		return resultRejected
	}
}

// respondError logs err with its structured fields and writes the mapped response
func respondError(c *gin.Context, logger coreport.Logger, message string, err error, fields map[string]any) {
	logFields := domainerr.LogFields(err)
	for k, v := range fields {
		logFields[k] = v
	}
	logFields["request_id"] = applogger.RequestIDFromContext(c.Request.Context())

	if middleware.HTTPStatus(err) >= http.StatusInternalServerError {
		logger.Error(message, logFields)
	} else {
		logger.Warn(message, logFields)
	}

	middleware.AbortWithError(c, err)
}

func ownerParam(c *gin.Context, name string) (string, error) {
	owner := c.Param(name)
	if err := entity.ValidateAccountName(owner); err != nil {
		return "", err
	}
	return owner, nil
}

func startTimeParam(c *gin.Context) (int64, error) {
	raw := c.Param("startTime")
	startTime, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || startTime < 0 {
		return 0, fmt.Errorf("%w: invalid start time %q", domainerr.ErrInvalidValue, raw)
	}
	return startTime, nil
}

func recordKeyParams(c *gin.Context) (string, int64, error) {
	owner, err := ownerParam(c, "owner")
	if err != nil {
		return "", 0, err
	}
	startTime, err := startTimeParam(c)
	if err != nil {
		return "", 0, err
	}
	return owner, startTime, nil
}

func invalidBody(err error) error {
	return fmt.Errorf("%w: invalid request format: %s", domainerr.ErrInvalidValue, err.Error())
}
