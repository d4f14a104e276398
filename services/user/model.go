package user

import (
	userRepo "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/user"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"
)

// UserService defines business logic for user operations.
type UserService interface {
	// RegisterUser validates registration details, creates a pending account
	// and initiates email OTP verification.
	RegisterUser(req models.UserRegistrationRequest) (string, error)
	// VerifyRegistrationOTP activates a pending account and signs it in.
	VerifyRegistrationOTP(email, otp string) (*models.AuthResponse, error)
	// AuthenticateUser verifies credentials and returns ID and token.
	AuthenticateUser(email, password string) (*models.AuthResponse, error)
	// RevokeUserAuthToken revokes the user's authentication token (for logout).
	RevokeUserAuthToken(userID string) error
	// GetUserByID retrieves a user (safe view) by its unique ID.
	GetUserByID(userID string) (*models.User, error)
	// GetUserByEmail retrieves a user (safe view) by its email.
	GetUserByEmail(email string) (*models.User, error)
	// UpdateUser updates an existing user's profile.
	UpdateUser(user models.User) (*models.User, error)
	// UpdateUserPassword verifies the current password and updates the user's password.
	UpdateUserPassword(userID, currentPassword, newPassword string) error
	// UpdateFCMToken stores the device push token for the user.
	UpdateFCMToken(userID, fcmToken string) error
	// DeleteUser removes a user record.
	DeleteUser(userID string) error

	// Loyalty operations.
	AwardLoyaltyPoints(userID string, amount float64) (int64, error)
	RedeemLoyaltyPoints(userID string, points int64) error
	RefundLoyaltyPoints(userID string, points int64) error

	// Admin routes.
	GetAllUsers(page, perPage int64) ([]models.User, error)
	SetUserBanStatus(userID string, banned bool, reason string) error
	CountUsers() (int64, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
