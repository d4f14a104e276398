package handlers

import (
	"errors"
	"net/http"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateBookingHandler reserves slots on a court for the caller.
func (h *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString("userID")

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.BookingSvc.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		var unavailable booking.SlotUnavailableError
		if errors.As(err, &unavailable) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "requested slots are not available",
				"slots": unavailable.Slots,
			})
			return
		}
		logger.Error("Booking creation failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ConfirmPaymentHandler settles a pending card booking.
func (h *HandlerBundle) ConfirmPaymentHandler(c *gin.Context) {
	userID := c.GetString("userID")
	bookingID := c.Param("id")

	bk, err := h.BookingSvc.ConfirmPayment(c.Request.Context(), userID, bookingID)
	if err != nil {
		var transition booking.InvalidTransitionError
		if errors.As(err, &transition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bk)
}

// CancelBookingHandler cancels one of the caller's bookings.
func (h *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	userID := c.GetString("userID")
	bookingID := c.Param("id")

	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	if err := h.BookingSvc.CancelBooking(c.Request.Context(), userID, bookingID, req.Reason); err != nil {
		var transition booking.InvalidTransitionError
		if errors.As(err, &transition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// CompleteBookingHandler lets a venue owner mark a booking as played.
func (h *HandlerBundle) CompleteBookingHandler(c *gin.Context) {
	ownerID := c.GetString("userID")
	bookingID := c.Param("id")

	if err := h.BookingSvc.CompleteBooking(c.Request.Context(), ownerID, bookingID); err != nil {
		var transition booking.InvalidTransitionError
		if errors.As(err, &transition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking completed"})
}

// GetMyBookingsHandler lists the caller's bookings.
func (h *HandlerBundle) GetMyBookingsHandler(c *gin.Context) {
	userID := c.GetString("userID")

	bookings, err := h.BookingSvc.GetBookingsForUser(userID)
	if err != nil {
		getLogger(c).Error("Failed to list bookings", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler returns one booking, visible to its user or the venue owner.
func (h *HandlerBundle) GetBookingHandler(c *gin.Context) {
	userID := c.GetString("userID")
	bookingID := c.Param("id")

	bk, err := h.BookingSvc.GetBookingByID(bookingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if bk.UserID != userID {
		ven, err := h.VenueSvc.GetVenueByID(bk.VenueID)
		if err != nil || ven.OwnerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "booking is not yours"})
			return
		}
	}
	c.JSON(http.StatusOK, bk)
}
