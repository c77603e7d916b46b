package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetAccount handles GET /api/users/:userId/account
func (h *Handler) GetAccount(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	account, err := h.Ledger.GetAccount(uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// GetTransactionHistory handles GET /api/users/:userId/transactions
func (h *Handler) GetTransactionHistory(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.Ledger.GetTransactionHistory(uid, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": entries})
}

// ListUserAchievements handles GET /api/users/:userId/achievements
func (h *Handler) ListUserAchievements(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	earned, err := h.Ledger.ListUserAchievements(uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": earned})
}

// GetLeaderboard handles GET /api/leaderboard
func (h *Handler) GetLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.Board.Top(limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
