package handlers

import (
	"errors"
	"net/http"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterUserHandler creates a pending account and triggers email OTP.
func (h *HandlerBundle) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	userID, err := h.UserSvc.RegisterUser(req)
	if err != nil {
		logger.Error("User registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      userID,
		"message": "Registration received, please verify the OTP sent to your email",
	})
}

// VerifyOTPHandler activates a pending account and signs it in.
func (h *HandlerBundle) VerifyOTPHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email string `json:"email" binding:"required,email"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserSvc.VerifyRegistrationOTP(req.Email, req.OTP)
	if err != nil {
		logger.Error("OTP verification failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LoginHandler authenticates a user and returns a token.
func (h *HandlerBundle) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserSvc.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		var otpPending user.OTPPendingError
		var banned user.BannedError
		switch {
		case errors.As(err, &otpPending):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "account pending verification",
				"email": otpPending.Email,
			})
		case errors.As(err, &banned):
			c.JSON(http.StatusForbidden, gin.H{"error": banned.Error()})
		default:
			logger.Error("Login failed", zap.String("email", req.Email), zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the caller's auth token.
func (h *HandlerBundle) LogoutHandler(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.UserSvc.RevokeUserAuthToken(userID); err != nil {
		getLogger(c).Error("Logout failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
