package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boleia/internal/advisory"
)

type SafetyHandler struct {
	advisor *advisory.Client
}

func NewSafetyHandler(advisor *advisory.Client) *SafetyHandler {
	return &SafetyHandler{advisor: advisor}
}

type SafetyInsightsRequest struct {
	PickupName  string  `json:"pickup_name" binding:"required"`
	DropoffName string  `json:"dropoff_name" binding:"required"`
	DistanceKm  float64 `json:"distance_km"`
	TimeOfDay   string  `json:"time_of_day"`
	Weather     string  `json:"weather"`
}

// Insights handles POST /safety/insights. The advisory client degrades to a
// fixed low-risk verdict on any failure, so this endpoint never errors on
// the external call.
func (h *SafetyHandler) Insights(c *gin.Context) {
	var req SafetyInsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	insight := h.advisor.Insights(c.Request.Context(), advisory.Route{
		PickupName:  req.PickupName,
		DropoffName: req.DropoffName,
		DistanceKm:  req.DistanceKm,
	}, req.TimeOfDay, req.Weather)

	c.JSON(http.StatusOK, insight)
}
