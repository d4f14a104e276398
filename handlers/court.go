package handlers

import (
	"net/http"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetCourtHandler returns one court.
func (h *HandlerBundle) GetCourtHandler(c *gin.Context) {
	crt, err := h.CourtSvc.GetCourtByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, crt)
}

// GetCourtsBySportHandler lists active courts for a sport.
func (h *HandlerBundle) GetCourtsBySportHandler(c *gin.Context) {
	sport := c.Query("sportType")
	if sport == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sportType query parameter is required"})
		return
	}

	courts, err := h.CourtSvc.GetCourtsBySport(sport)
	if err != nil {
		getLogger(c).Error("Failed to list courts by sport", zap.String("sportType", sport), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load courts"})
		return
	}
	c.JSON(http.StatusOK, courts)
}

// GetCourtAvailabilityHandler returns the bookable slots for a court on a
// date, with already-taken hours removed. Optional start/end query params
// restrict the window.
func (h *HandlerBundle) GetCourtAvailabilityHandler(c *gin.Context) {
	courtID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required (YYYY-MM-DD)"})
		return
	}

	slots, err := h.BookingSvc.GetAvailableSlots(courtID, date, c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// CreateCourtHandler adds a court to one of the caller's venues.
func (h *HandlerBundle) CreateCourtHandler(c *gin.Context) {
	ownerID := c.GetString("userID")

	var req models.Court
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	crt, err := h.CourtSvc.CreateCourt(ownerID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, crt)
}

// UpdateCourtHandler edits a court on one of the caller's venues.
func (h *HandlerBundle) UpdateCourtHandler(c *gin.Context) {
	ownerID := c.GetString("userID")
	courtID := c.Param("id")

	var req models.Court
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	crt, err := h.CourtSvc.UpdateCourt(ownerID, courtID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, crt)
}

// DeleteCourtHandler removes a court from one of the caller's venues.
func (h *HandlerBundle) DeleteCourtHandler(c *gin.Context) {
	ownerID := c.GetString("userID")
	courtID := c.Param("id")

	if err := h.CourtSvc.DeleteCourt(ownerID, courtID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Court deleted"})
}

// SetCourtAvailabilityHandler replaces a court's weekly open hours.
func (h *HandlerBundle) SetCourtAvailabilityHandler(c *gin.Context) {
	ownerID := c.GetString("userID")
	courtID := c.Param("id")

	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.CourtSvc.SetAvailability(ownerID, courtID, req.DefaultAvailability); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

// SetCourtPricingHandler replaces a court's pricing rules.
func (h *HandlerBundle) SetCourtPricingHandler(c *gin.Context) {
	ownerID := c.GetString("userID")
	courtID := c.Param("id")

	var req models.SetPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.CourtSvc.SetPricing(ownerID, courtID, req.Pricing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pricing updated"})
}
