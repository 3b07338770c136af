package rest

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/dmitrijs2005/motorpool/internal/logging"
	"github.com/dmitrijs2005/motorpool/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDKey = "request_id"
	claimsKey    = "claims"
)

// requestID reuses the caller's X-Request-ID or generates one, and echoes it
// back on the response.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(common.RequestIDHeaderName, id)
		c.Next()
	}
}

func accessLog(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", c.GetString(requestIDKey),
		)
	}
}

// recovery turns a panic into a 500 with the usual JSON error body.
func recovery(log logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		log.Error(c.Request.Context(), "panic recovered",
			"panic", rec,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
		)
		abortWithMessages(c, http.StatusInternalServerError, msgInternal)
	})
}

// requireRoles admits the request only when the bearer token is valid and
// its role is one of roles. The verified claims are stored on the context.
func requireRoles(gate Authorizer, log logging.Logger, roles ...models.Role) gin.HandlerFunc {
	allowed := models.NewRoleSet(roles...)

	return func(c *gin.Context) {
		claims, err := gate.Authorize(c.GetHeader(common.AuthorizationHeaderName), allowed)
		if err != nil {
			log.Info(c.Request.Context(), "access denied",
				"path", c.Request.URL.Path,
				"forbidden", errors.Is(err, common.ErrorForbidden),
				"reason", err.Error(),
				"request_id", c.GetString(requestIDKey),
			)
			respondError(c, err)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}
