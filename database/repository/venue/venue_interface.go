package venueRepo

import (
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"go.mongodb.org/mongo-driver/bson"
)

// VenueRepository defines the persistence contract for venues.
type VenueRepository interface {
	Create(venue *models.Venue) error
	Update(venue *models.Venue) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.Venue, error)
	GetByOwner(ownerID string) ([]models.Venue, error)
	GetByStatus(status string) ([]models.Venue, error)
	Search(filter models.VenueFilter) ([]models.Venue, error)
	Count() (int64, error)
}
