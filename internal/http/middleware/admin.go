package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Forhemit/StarterClub-sub002/internal/model"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
)

const AdminAPIKeyHeader = "X-Admin-API-Key"

type KeyVerifier interface {
	Verify(ctx context.Context, token string) (*model.APIKey, error)
}

// RequireAdmin accepts the static ADMIN_API_KEY or any live issued key.
// keys may be nil, in which case only the static key is accepted.
func RequireAdmin(adminAPIKey string, keys KeyVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if adminAPIKey == "" && keys == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "admin API not configured"})
			return
		}

		token := c.GetHeader(AdminAPIKeyHeader)
		if token == "" {
			token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
			return
		}

		if adminAPIKey != "" && subtle.ConstantTimeCompare([]byte(token), []byte(adminAPIKey)) == 1 {
			c.Next()
			return
		}

		if keys == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
			return
		}

		key, err := keys.Verify(ctx, token)
		if err != nil {
			if errors.Is(err, service.ErrInvalidAPIKey) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
				return
			}
			slog.ErrorContext(ctx, "failed to verify api key", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to verify API key"})
			return
		}

		slog.DebugContext(ctx, "admin request authorized", "api_key_id", key.ID, "api_key_name", key.Name)
		c.Next()
	}
}
