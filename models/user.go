// models/user.go
package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

// User account statuses.
const (
	UserStatusPending = "pending"
	UserStatusActive  = "active"
	UserStatusBanned  = "banned"
)

// User represents a platform account: a customer, a venue owner or an admin.
type User struct {
	ID            string    `bson:"id" json:"id"`
	FullName      string    `bson:"fullName" json:"fullName"`
	Email         string    `bson:"email" json:"email"`
	PhoneNumber   string    `bson:"phoneNumber" json:"phoneNumber"`
	Password      string    `bson:"-" json:"password,omitempty"`
	PasswordHash  string    `bson:"passwordHash" json:"-"`
	AvatarURL     string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Role          string    `bson:"role" json:"role"`
	Status        string    `bson:"status" json:"status"`
	LoyaltyPoints int64     `bson:"loyaltyPoints" json:"loyaltyPoints"`
	LoyaltyTier   string    `bson:"loyaltyTier" json:"loyaltyTier"`
	FCMToken      string    `bson:"fcmToken,omitempty" json:"-"`
	TokenHash     string    `bson:"tokenHash,omitempty" json:"-"`
	BanReason     string    `bson:"banReason,omitempty" json:"banReason,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRegistrationRequest is the payload for account creation.
type UserRegistrationRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// AuthRequest is the payload for login.
type AuthRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful registration or login.
type AuthResponse struct {
	ID            string `json:"id"`
	Token         string `json:"token"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	Role          string `json:"role"`
	AvatarURL     string `json:"avatarUrl,omitempty"`
	LoyaltyPoints int64  `json:"loyaltyPoints"`
	LoyaltyTier   string `json:"loyaltyTier"`
}
