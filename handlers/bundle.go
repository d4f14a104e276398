package handlers

import (
	userRepoPkg "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/user"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/booking"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/chat"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/court"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/storage"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/user"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/venue"
)

// HandlerBundle groups the endpoint handlers and the services they call.
// Routes are registered against a single bundle built in main.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	UserSvc    user.UserService
	VenueSvc   venue.VenueService
	CourtSvc   court.CourtService
	BookingSvc booking.BookingService
	ChatSvc    chat.ChatService
	Storage    storage.StorageService
}
