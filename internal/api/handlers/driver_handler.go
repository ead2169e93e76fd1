package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"boleia/internal/services"
)

type DriverHandler struct {
	rewardsService *services.RewardsService
}

func NewDriverHandler(rewardsService *services.RewardsService) *DriverHandler {
	return &DriverHandler{rewardsService: rewardsService}
}

// Stats handles GET /driver/stats
func (h *DriverHandler) Stats(c *gin.Context) {
	driver, err := h.rewardsService.DriverStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, driver)
}

type PointsRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// UpdatePoints handles PATCH /driver/points
func (h *DriverHandler) UpdatePoints(c *gin.Context) {
	var req PointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.rewardsService.AddPoints(c.Request.Context(), req.Delta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, driver)
}

type RedeemRequest struct {
	Cost int `json:"cost" binding:"required,gt=0"`
}

// Redeem handles POST /driver/redeem. The deduct-if-sufficient check lives
// in the rewards service, not here.
func (h *DriverHandler) Redeem(c *gin.Context) {
	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.rewardsService.Redeem(c.Request.Context(), req.Cost)
	if errors.Is(err, services.ErrInsufficientPoints) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, driver)
}

type OnlineRequest struct {
	Online *bool `json:"online" binding:"required"`
}

// SetOnline handles PATCH /driver/online
func (h *DriverHandler) SetOnline(c *gin.Context) {
	var req OnlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.rewardsService.SetOnline(c.Request.Context(), *req.Online)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, driver)
}
