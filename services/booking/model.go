package booking

import (
	"context"

	bookingRepo "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/booking"
	courtRepo "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/court"
	venueRepo "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/venue"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/notification"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/user"

	"github.com/hibiken/asynq"
)

// CreateBookingResult is returned from CreateBooking. ClientSecret is set
// only for card payments, for the frontend to finish the Stripe flow.
type CreateBookingResult struct {
	Booking      *models.Booking `json:"booking"`
	ClientSecret string          `json:"clientSecret,omitempty"`
}

// BookingService defines business logic for bookings.
type BookingService interface {
	// CreateBooking validates the requested slots against availability and
	// existing bookings, applies loyalty redemption and opens payment.
	CreateBooking(ctx context.Context, userID string, req models.CreateBookingRequest) (*CreateBookingResult, error)
	// ConfirmPayment settles a pending card booking once its payment intent
	// has succeeded.
	ConfirmPayment(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	// CancelBooking cancels a pending or confirmed booking and refunds any
	// redeemed points.
	CancelBooking(ctx context.Context, userID, bookingID, reason string) error
	// CompleteBooking marks a confirmed booking as played and queues the
	// loyalty award. Restricted to the venue owner.
	CompleteBooking(ctx context.Context, ownerID, bookingID string) error
	// GetBookingByID returns a booking visible to its user or venue owner.
	GetBookingByID(bookingID string) (*models.Booking, error)
	// GetBookingsForUser lists a user's bookings, newest first.
	GetBookingsForUser(userID string) ([]models.Booking, error)
	// GetBookingsForVenue lists bookings across a venue, owner only.
	GetBookingsForVenue(ownerID, venueID string) ([]models.Booking, error)
	// GetAvailableSlots returns the bookable slots for a court and date with
	// already-taken hours removed.
	GetAvailableSlots(courtID, date, filterStart, filterEnd string) ([]models.Slot, error)
	// CountBookings returns the total number of bookings, admin only.
	CountBookings() (int64, error)
}

// TaskEnqueuer abstracts the asynq client for background work.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Courts   courtRepo.CourtRepository
	Venues   venueRepo.VenueRepository
	Users    user.UserService
	Payments PaymentProvider
	Queue    TaskEnqueuer
	Notifier notification.NotificationService
}
