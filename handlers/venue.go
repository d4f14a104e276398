package handlers

import (
	"net/http"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchVenuesHandler lists approved venues matching the query filter.
func (h *HandlerBundle) SearchVenuesHandler(c *gin.Context) {
	var filter models.VenueFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	venues, err := h.VenueSvc.SearchVenues(filter)
	if err != nil {
		getLogger(c).Error("Venue search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, venues)
}

// GetVenueHandler returns one approved venue with its courts.
func (h *HandlerBundle) GetVenueHandler(c *gin.Context) {
	venueID := c.Param("id")

	ven, err := h.VenueSvc.GetPublicVenueByID(venueID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	courts, err := h.CourtSvc.GetCourtsByVenue(venueID)
	if err != nil {
		getLogger(c).Error("Failed to list courts for venue", zap.String("venueID", venueID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load venue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"venue": ven, "courts": courts})
}

// CreateVenueHandler registers a new venue for the calling owner.
func (h *HandlerBundle) CreateVenueHandler(c *gin.Context) {
	ownerID := c.GetString("userID")

	var req models.Venue
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ven, err := h.VenueSvc.CreateVenue(ownerID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ven)
}

// UpdateVenueHandler edits one of the caller's venues.
func (h *HandlerBundle) UpdateVenueHandler(c *gin.Context) {
	ownerID := c.GetString("userID")
	venueID := c.Param("id")

	var req models.Venue
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ven, err := h.VenueSvc.UpdateVenue(ownerID, venueID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ven)
}

// DeleteVenueHandler removes one of the caller's venues.
func (h *HandlerBundle) DeleteVenueHandler(c *gin.Context) {
	ownerID := c.GetString("userID")
	venueID := c.Param("id")

	if err := h.VenueSvc.DeleteVenue(ownerID, venueID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Venue deleted"})
}

// GetMyVenuesHandler lists the calling owner's venues, any status.
func (h *HandlerBundle) GetMyVenuesHandler(c *gin.Context) {
	ownerID := c.GetString("userID")

	venues, err := h.VenueSvc.GetVenuesByOwner(ownerID)
	if err != nil {
		getLogger(c).Error("Failed to list owner venues", zap.String("ownerID", ownerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load venues"})
		return
	}
	c.JSON(http.StatusOK, venues)
}

// GetVenueBookingsHandler lists bookings across one of the caller's venues.
func (h *HandlerBundle) GetVenueBookingsHandler(c *gin.Context) {
	ownerID := c.GetString("userID")
	venueID := c.Param("id")

	bookings, err := h.BookingSvc.GetBookingsForVenue(ownerID, venueID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}
