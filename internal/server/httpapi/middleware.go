package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/userdeck/internal/common"
	"github.com/dmitrijs2005/userdeck/internal/logging"
)

const (
	ctxKeyEmail     = "email"
	ctxKeyRequestID = "requestID"
)

// TokenAuthenticator resolves a bearer token to the email it was issued for.
type TokenAuthenticator interface {
	Authenticate(token string) (string, error)
}

// AuthRequired rejects requests without a valid "Authorization: Bearer" token.
func AuthRequired(a TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "missing Authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid Authorization header format"})
			return
		}

		email, err := a.Authenticate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired token"})
			return
		}

		c.Set(ctxKeyEmail, email)
		c.Next()
	}
}

// RequestLogger echoes or assigns X-Request-ID and logs one line per request.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(common.RequestIDHeaderName)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Header(common.RequestIDHeaderName, id)

		c.Next()

		logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", id,
		)
	}
}

// isTokenError reports whether err came from token validation.
func isTokenError(err error) bool {
	return errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrTokenExpired)
}
