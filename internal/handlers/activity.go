package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type recordActivityRequest struct {
	ActivityID    string `json:"activityId" binding:"required"`
	Notes         string `json:"notes"`
	ProofImageURL string `json:"proofImageUrl"`
}

// RecordActivity handles POST /api/users/:userId/activities
func (h *Handler) RecordActivity(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req recordActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activityId is required"})
		return
	}

	completion, err := h.Ledger.RecordActivity(uid, req.ActivityID, req.Notes, req.ProofImageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"completion": completion})
}

// ListActivities handles GET /api/activities (active catalog)
func (h *Handler) ListActivities(c *gin.Context) {
	activities, err := h.Ledger.ListActivities()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
