package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Forhemit/StarterClub-sub002/internal/http/middleware"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrSessionExpired, http.StatusUnauthorized},
	{service.ErrInvalidAPIKey, http.StatusUnauthorized},
	{service.ErrBusinessNotFound, http.StatusNotFound},
	{service.ErrModuleNotFound, http.StatusNotFound},
	{service.ErrItemNotFound, http.StatusNotFound},
	{service.ErrAPIKeyNotFound, http.StatusNotFound},
	{service.ErrModuleNotInstalled, http.StatusConflict},
	{service.ErrInvalidTransition, http.StatusConflict},
	{service.ErrAlreadyOnboarded, http.StatusConflict},
	{service.ErrBusinessNameEmpty, http.StatusBadRequest},
	{service.ErrInvalidStatus, http.StatusBadRequest},
	{service.ErrAPIKeyNameEmpty, http.StatusBadRequest},
	{service.ErrInvalidLeadSource, http.StatusBadRequest},
}

// respondError writes {"error": msg} with the status matching err's sentinel.
// Unknown errors are logged and reported as 500 without detail.
func respondError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var notFound *service.ModuleNotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}

	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			if e.status == http.StatusUnauthorized {
				c.JSON(e.status, gin.H{"error": service.ErrUnauthorized.Error()})
				return
			}
			c.JSON(e.status, gin.H{"error": e.err.Error()})
			return
		}
	}

	var pgErr *pgconn.PgError
	if (errors.As(err, &pgErr) && pgErr.Code == "23505") || errors.Is(err, store.ErrConflict) {
		slog.InfoContext(ctx, "unique constraint violated", "error", err)
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}

	slog.ErrorContext(ctx, "request failed", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func currentUser(c *gin.Context) (int64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrUnauthorized.Error()})
		return 0, false
	}
	return userID, true
}
