package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
	"github.com/peterzzshi/gmgn-clone/pkg/apperror"
	"github.com/peterzzshi/gmgn-clone/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// CtxUserID is the context key carrying the resolved user identity.
const CtxUserID = "user_id"

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Failure{
					Success: false,
					Error: response.ErrorBody{
						Code:    "INTERNAL_ERROR",
						Message: "Internal server error",
					},
					Timestamp: time.Now().UTC().Format(time.RFC3339),
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits how many bytes of a request body will be read.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// CORS wraps the rs/cors handler for gin. An empty origin list allows all.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	co := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	})
	return func(c *gin.Context) {
		co.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Identity resolves the acting user for every request. A valid bearer token
// wins; otherwise the userId query parameter; otherwise the demo user.
// Requests are never rejected here.
func Identity(tokens ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := domain.DefaultUserID

		if q := c.Query("userId"); q != "" {
			userID = q
		}

		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			if tokens != nil {
				if sub, err := tokens.Validate(strings.TrimPrefix(auth, "Bearer ")); err == nil {
					userID = sub
				}
			}
		}

		c.Set(CtxUserID, userID)
		c.Next()
	}
}

// RequireAuth rejects requests without a valid bearer token. Used only for
// routes that must know who the caller is.
func RequireAuth(tokens ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			response.Error(c, apperror.Auth("No token provided"))
			c.Abort()
			return
		}

		sub, err := tokens.Validate(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			response.Error(c, apperror.Auth("Invalid token"))
			c.Abort()
			return
		}

		c.Set(CtxUserID, sub)
		c.Next()
	}
}

// UserID reads the identity resolved by Identity/RequireAuth.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(CtxUserID); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return domain.DefaultUserID
}
