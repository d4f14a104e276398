package handlers

import (
	"net/http"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProfileHandler returns the caller's own account.
func (h *HandlerBundle) GetProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")

	usr, err := h.UserSvc.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler edits the caller's profile fields.
func (h *HandlerBundle) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString("userID")

	var req models.User
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = userID

	updated, err := h.UserSvc.UpdateUser(req)
	if err != nil {
		logger.Error("Profile update failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdatePasswordHandler rotates the caller's password.
func (h *HandlerBundle) UpdatePasswordHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserSvc.UpdateUserPassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated, please sign in again"})
}

// UpdateFCMTokenHandler stores the caller's device push token.
func (h *HandlerBundle) UpdateFCMTokenHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserSvc.UpdateFCMToken(userID, req.FCMToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Push token updated"})
}

// DeleteAccountHandler removes the caller's account.
func (h *HandlerBundle) DeleteAccountHandler(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.UserSvc.DeleteUser(userID); err != nil {
		getLogger(c).Error("Account deletion failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// GetLoyaltyHandler reports the caller's points balance and tier.
func (h *HandlerBundle) GetLoyaltyHandler(c *gin.Context) {
	userID := c.GetString("userID")

	usr, err := h.UserSvc.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"loyaltyPoints": usr.LoyaltyPoints,
		"loyaltyTier":   usr.LoyaltyTier,
	})
}
