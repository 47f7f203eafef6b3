package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	applogger "github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	bearerPrefix = "Bearer "
	callerKey    = "caller"
)

// CallerClaims are the claims issued by the authorization layer in front of the vault
type CallerClaims struct {
	Account string `json:"account"`
	jwt.RegisteredClaims
}

// TokenValidator verifies HS256 caller tokens
type TokenValidator struct {
	signingKey []byte
	parser     *jwt.Parser
}

// NewTokenValidator creates a validator; empty issuer or audience are not checked
func NewTokenValidator(signingKey, issuer, audience string) *TokenValidator {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	return &TokenValidator{
		signingKey: []byte(signingKey),
		parser:     jwt.NewParser(opts...),
	}
}

// Validate returns the caller account carried by the token
func (v *TokenValidator) Validate(token string) (string, error) {
	claims := &CallerClaims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: token has expired", domainerr.ErrUnauthorized)
		}
		return "", fmt.Errorf("%w: invalid token", domainerr.ErrUnauthorized)
	}
	if !parsed.Valid {
		return "", fmt.Errorf("%w: invalid token", domainerr.ErrUnauthorized)
	}
	if err := entity.ValidateAccountName(claims.Account); err != nil {
		return "", fmt.Errorf("%w: token carries no valid account", domainerr.ErrUnauthorized)
	}

	return claims.Account, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the caller account
func RequireAuth(validator *TokenValidator, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), bearerPrefix)
		if !ok || token == "" {
			logger.Warn("Unauthorized access - missing token", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": applogger.RequestIDFromContext(c.Request.Context()),
			})
			AbortWithError(c, fmt.Errorf("%w: missing bearer token", domainerr.ErrUnauthorized))
			return
		}

		account, err := validator.Validate(token)
		if err != nil {
			logger.Warn("Unauthorized access - invalid token", map[string]any{
				"path":       c.Request.URL.Path,
				"error":      err.Error(),
				"request_id": applogger.RequestIDFromContext(c.Request.Context()),
			})
			AbortWithError(c, err)
			return
		}

		c.Set(callerKey, account)
		c.Next()
	}
}

// Caller returns the authenticated account, or "" on public routes
func Caller(c *gin.Context) string {
	return c.GetString(callerKey)
}
