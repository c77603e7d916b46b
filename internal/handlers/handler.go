package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trademomentumllc/ihep-application-sub007/internal/services"
	apperrors "github.com/trademomentumllc/ihep-application-sub007/pkg/errors"
	"github.com/trademomentumllc/ihep-application-sub007/pkg/logger"
)

// Handler exposes the ledger operations over HTTP. The caller-supplied
// identity comes from the URL; authentication lives in front of this service.
type Handler struct {
	Ledger *services.Ledger
	Board  *services.Leaderboard
}

func NewHandler(ledger *services.Ledger, board *services.Leaderboard) *Handler {
	return &Handler{
		Ledger: ledger,
		Board:  board,
	}
}

// respondError maps domain failures to HTTP statuses so the calling layer can
// render "already completed today", "out of stock" and friends.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, services.ErrActivityNotFound),
		errors.Is(err, services.ErrRewardNotFound),
		errors.Is(err, services.ErrNoAccount):
		appErr = apperrors.NotFound(err.Error())
	case errors.Is(err, services.ErrDuplicateCompletion),
		errors.Is(err, services.ErrOutOfStock):
		appErr = apperrors.Conflict(err.Error())
	case errors.Is(err, services.ErrInsufficientPoints):
		appErr = apperrors.UnprocessableEntity(err.Error())
	default:
		logger.Error().Err(err).Msg("Ledger operation failed")
		appErr = apperrors.ErrInternalServer
	}

	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}

func userID(c *gin.Context) (string, bool) {
	id := c.Param("userId")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return "", false
	}
	return id, true
}
