package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type redeemRewardRequest struct {
	RewardID string `json:"rewardId" binding:"required"`
}

// RedeemReward handles POST /api/users/:userId/redemptions
func (h *Handler) RedeemReward(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req redeemRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rewardId is required"})
		return
	}

	redemption, err := h.Ledger.RedeemReward(uid, req.RewardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"redemption": redemption})
}

// ListRewards handles GET /api/rewards (active catalog)
func (h *Handler) ListRewards(c *gin.Context) {
	rewards, err := h.Ledger.ListRewards()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

// ListUserRewards handles GET /api/users/:userId/redemptions
func (h *Handler) ListUserRewards(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	redeemed, err := h.Ledger.ListUserRewards(uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"redemptions": redeemed})
}
