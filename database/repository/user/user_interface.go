package userRepo

import (
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	IncrementLoyaltyPoints(id string, delta int64) (*models.User, error)
	Delete(id string) error
	GetByID(id string) (*models.User, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByEmailWithProjection(email string, projection bson.M) (*models.User, error)
	GetAll(page, perPage int64) ([]models.User, error)
	Count() (int64, error)
}
