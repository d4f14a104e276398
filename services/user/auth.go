package user

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// VerifyPasswordComplexity enforces the minimum password policy.
func VerifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain both letters and digits")
	}
	return nil
}

// RegisterUser creates a pending account and sends an email OTP. The account
// cannot sign in until the OTP is verified.
func (s *DefaultUserService) RegisterUser(req models.UserRegistrationRequest) (string, error) {
	if req.Email == "" || req.Password == "" || req.FullName == "" || req.PhoneNumber == "" {
		return "", fmt.Errorf("all fields are required")
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return "", err
	}

	existing, err := s.Repo.GetByEmailWithProjection(req.Email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check for existing user", zap.Error(err))
		return "", fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return "", fmt.Errorf("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to hash password", zap.Error(err))
		return "", fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleUser,
		Status:       models.UserStatusPending,
		LoyaltyTier:  TierFor(0),
	}

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return "", fmt.Errorf("registration failed, please try again")
	}

	if err := utils.InitiateEmailOTP(req.Email); err != nil {
		return "", fmt.Errorf("failed to initiate OTP: %w", err)
	}

	return userObj.ID, nil
}

// VerifyRegistrationOTP activates a pending account once the emailed code
// checks out, then issues the first auth token.
func (s *DefaultUserService) VerifyRegistrationOTP(email, otp string) (*models.AuthResponse, error) {
	if err := utils.VerifyEmailOTPRecord(email, otp); err != nil {
		return nil, fmt.Errorf("OTP verification failed: %w", err)
	}

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("verification failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("no account found for %s", email)
	}

	token, tokenHash, err := s.issueToken(userRec)
	if err != nil {
		return nil, err
	}

	update := bson.M{"status": models.UserStatusActive, "tokenHash": tokenHash}
	if err := s.Repo.UpdateSetDocument(userRec.ID, update); err != nil {
		return nil, fmt.Errorf("verification failed, please try again")
	}

	return authResponse(userRec, token), nil
}

// AuthenticateUser verifies credentials and issues a fresh token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*models.AuthResponse, error) {
	userRec, err := s.Repo.GetByEmailWithProjection(email, bson.M{})
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	switch userRec.Status {
	case models.UserStatusBanned:
		return nil, BannedError{Reason: userRec.BanReason}
	case models.UserStatusPending:
		if err := utils.InitiateEmailOTP(userRec.Email); err != nil {
			return nil, fmt.Errorf("failed to initiate OTP: %w", err)
		}
		return nil, OTPPendingError{Email: userRec.Email}
	}

	// Clear any stale cached token hash before rotating.
	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to clear old token cache", zap.Error(err))
	}

	token, tokenHash, err := s.issueToken(userRec)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateSetDocument(userRec.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return authResponse(userRec, token), nil
}

// RevokeUserAuthToken clears the stored token hash and the auth cache entry.
func (s *DefaultUserService) RevokeUserAuthToken(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userID
	if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("RevokeUserAuthToken: failed to clear token cache", zap.Error(err))
	}
	return nil
}

func (s *DefaultUserService) issueToken(userRec *models.User) (token, tokenHash string, err error) {
	token, err = utils.GenerateToken(userRec.ID, userRec.Email, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to generate auth token", zap.Error(err))
		return "", "", fmt.Errorf("authentication failed, please try again")
	}
	return token, utils.HashToken(token), nil
}

func authResponse(userRec *models.User, token string) *models.AuthResponse {
	return &models.AuthResponse{
		ID:            userRec.ID,
		Token:         token,
		FullName:      userRec.FullName,
		Email:         userRec.Email,
		PhoneNumber:   userRec.PhoneNumber,
		Role:          userRec.Role,
		AvatarURL:     userRec.AvatarURL,
		LoyaltyPoints: userRec.LoyaltyPoints,
		LoyaltyTier:   userRec.LoyaltyTier,
	}
}
