package courtRepo

import (
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CourtRepository defines the persistence contract for courts.
type CourtRepository interface {
	Create(court *models.Court) error
	Update(court *models.Court) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.Court, error)
	GetByVenue(venueID string) ([]models.Court, error)
	GetBySport(sportType string) ([]models.Court, error)
}
