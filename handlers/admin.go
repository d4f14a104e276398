package handlers

import (
	"net/http"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminListUsersHandler pages through all accounts.
func (h *HandlerBundle) AdminListUsersHandler(c *gin.Context) {
	page, perPage := pagination(c)

	users, err := h.UserSvc.GetAllUsers(page, perPage)
	if err != nil {
		getLogger(c).Error("Admin user listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// AdminBanUserHandler bans or unbans an account.
func (h *HandlerBundle) AdminBanUserHandler(c *gin.Context) {
	userID := c.Param("id")

	var req struct {
		Banned bool   `json:"banned"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserSvc.SetUserBanStatus(userID, req.Banned, req.Reason); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ban status updated"})
}

// AdminPendingVenuesHandler lists venues awaiting moderation.
func (h *HandlerBundle) AdminPendingVenuesHandler(c *gin.Context) {
	status := c.DefaultQuery("status", models.VenueStatusPending)

	venues, err := h.VenueSvc.GetVenuesByStatus(status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, venues)
}

// AdminApproveVenueHandler approves a venue listing.
func (h *HandlerBundle) AdminApproveVenueHandler(c *gin.Context) {
	venueID := c.Param("id")

	if err := h.VenueSvc.ApproveVenue(venueID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Venue approved"})
}

// AdminRejectVenueHandler rejects a venue listing with a reason.
func (h *HandlerBundle) AdminRejectVenueHandler(c *gin.Context) {
	venueID := c.Param("id")

	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.VenueSvc.RejectVenue(venueID, req.Reason); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Venue rejected"})
}

// AdminStatsHandler reports platform-wide totals.
func (h *HandlerBundle) AdminStatsHandler(c *gin.Context) {
	users, err := h.UserSvc.CountUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	venues, err := h.VenueSvc.CountVenues()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	bookings, err := h.BookingSvc.CountBookings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":    users,
		"venues":   venues,
		"bookings": bookings,
	})
}
