package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boleia/internal/api/middleware"
	"boleia/internal/services"
)

type RideHandler struct {
	rideService   *services.RideService
	walletService *services.WalletService
}

func NewRideHandler(rideService *services.RideService, walletService *services.WalletService) *RideHandler {
	return &RideHandler{
		rideService:   rideService,
		walletService: walletService,
	}
}

// CreateRide handles POST /rides. Guests can browse but not request rides.
func (h *RideHandler) CreateRide(c *gin.Context) {
	account := middleware.GetAccount(c)
	if account.IsGuest() {
		c.JSON(http.StatusForbidden, gin.H{"error": "guest sessions cannot request rides"})
		return
	}

	var req services.CreateRideInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ride, err := h.rideService.CreateRide(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ride)
}

// ListRides handles GET /rides?account_id=. An empty account_id returns the
// full ledger.
func (h *RideHandler) ListRides(c *gin.Context) {
	rides, err := h.rideService.Rides(c.Request.Context(), c.Query("account_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rides)
}

// WalletBalance handles GET /wallet/:account_id/balance
func (h *RideHandler) WalletBalance(c *gin.Context) {
	balance, err := h.walletService.Balance(c.Request.Context(), c.Param("account_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"account_id": c.Param("account_id"), "balance": balance})
}

// WalletTransactions handles GET /wallet/:account_id/transactions
func (h *RideHandler) WalletTransactions(c *gin.Context) {
	txs, err := h.walletService.Transactions(c.Request.Context(), c.Param("account_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, txs)
}

type WalletUpdateRequest struct {
	Amount int64  `json:"amount" binding:"required"`
	Detail string `json:"detail"`
}

// UpdateWallet handles POST /wallet/:account_id/transactions. The sign of
// the amount picks the ledger direction.
func (h *RideHandler) UpdateWallet(c *gin.Context) {
	var req WalletUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.walletService.Record(c.Request.Context(), c.Param("account_id"), req.Amount, req.Detail); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "recorded"})
}
