package user

import (
	"fmt"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	return usr, nil
}

// GetUserByEmail retrieves a user by its email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	return usr, nil
}

// UpdateUser updates profile fields a user may edit about themselves.
func (s *DefaultUserService) UpdateUser(user models.User) (*models.User, error) {
	update := bson.M{}
	if user.FullName != "" {
		update["fullName"] = user.FullName
	}
	if user.PhoneNumber != "" {
		update["phoneNumber"] = user.PhoneNumber
	}
	if user.AvatarURL != "" {
		update["avatarUrl"] = user.AvatarURL
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(user.ID, update); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.GetUserByID(user.ID)
}

// UpdateUserPassword verifies the current password and replaces it.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) error {
	usr, err := s.Repo.GetByIDWithProjection(userID, bson.M{"id": 1, "passwordHash": 1})
	if err != nil || usr == nil {
		return fmt.Errorf("user %s not found", userID)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("UpdateUserPassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to update password, please try again")
	}

	// Rotating the password invalidates the current session.
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"passwordHash": string(hashed), "tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return s.RevokeUserAuthToken(userID)
}

// UpdateFCMToken stores the device push token for the user.
func (s *DefaultUserService) UpdateFCMToken(userID, fcmToken string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"fcmToken": fcmToken}); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}
	return nil
}

// DeleteUser removes a user record.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// GetAllUsers returns a page of users for the admin console.
func (s *DefaultUserService) GetAllUsers(page, perPage int64) ([]models.User, error) {
	users, err := s.Repo.GetAll(page, perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SetUserBanStatus bans or unbans an account. Banning also revokes the
// current session so the ban takes effect immediately.
func (s *DefaultUserService) SetUserBanStatus(userID string, banned bool, reason string) error {
	update := bson.M{"status": models.UserStatusActive, "banReason": ""}
	if banned {
		update = bson.M{"status": models.UserStatusBanned, "banReason": reason}
	}
	if err := s.Repo.UpdateSetDocument(userID, update); err != nil {
		return fmt.Errorf("failed to update ban status: %w", err)
	}
	if banned {
		return s.RevokeUserAuthToken(userID)
	}
	return nil
}

// CountUsers returns the total number of accounts.
func (s *DefaultUserService) CountUsers() (int64, error) {
	return s.Repo.Count()
}
