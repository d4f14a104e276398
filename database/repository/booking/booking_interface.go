package bookingRepo

import (
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines the persistence contract for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	GetByID(id string) (*models.Booking, error)
	GetByUser(userID string) ([]models.Booking, error)
	GetByVenue(venueID string) ([]models.Booking, error)
	// GetActiveByCourtDate returns non-cancelled bookings for a court on a
	// "2006-01-02" date. Used to overlay taken slots onto availability.
	GetActiveByCourtDate(courtID, date string) ([]models.Booking, error)
	Count() (int64, error)
}
