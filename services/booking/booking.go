package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/middleware"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/court"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/tasks"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/user"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// reminderLead is how long before the first slot the reminder push fires.
const reminderLead = time.Hour

// CreateBooking reserves the requested hours on a court. Every requested
// range must exactly match a bookable slot for that date and must not collide
// with another active booking. Cash bookings confirm immediately; card
// bookings stay pending until ConfirmPayment.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, req models.CreateBookingRequest) (*CreateBookingResult, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", req.Date)
	}

	crt, err := s.Courts.GetByID(req.CourtID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch court: %w", err)
	}
	if crt == nil || !crt.Active {
		return nil, fmt.Errorf("court %s is not available for booking", req.CourtID)
	}

	available, err := court.ComputeSlots(crt, date, "", "")
	if err != nil {
		return nil, err
	}
	offered := make(map[string]models.Slot, len(available))
	for _, slot := range available {
		offered[slot.Start] = slot
	}

	taken, err := s.takenStarts(req.CourtID, req.Date)
	if err != nil {
		return nil, err
	}

	var (
		booked   []models.BookedSlot
		subTotal float64
		rejected []string
		seen     = map[string]bool{}
	)
	for _, want := range req.Slots {
		slot, ok := offered[want.Start]
		if !ok || slot.End != want.End || taken[want.Start] || seen[want.Start] {
			rejected = append(rejected, want.Start)
			continue
		}
		seen[want.Start] = true
		booked = append(booked, models.BookedSlot{Start: slot.Start, End: slot.End, Price: slot.Price})
		subTotal += slot.Price
	}
	if len(rejected) > 0 {
		return nil, SlotUnavailableError{Slots: rejected}
	}

	discount, consumed := user.RedeemDiscount(req.RedeemPoints, subTotal)
	if consumed > 0 {
		if err := s.Users.RedeemLoyaltyPoints(userID, consumed); err != nil {
			return nil, err
		}
	}

	bk := models.Booking{
		ID:             uuid.New().String(),
		UserID:         userID,
		CourtID:        crt.ID,
		VenueID:        crt.VenueID,
		Date:           req.Date,
		Slots:          booked,
		SubTotal:       subTotal,
		Discount:       discount,
		Total:          subTotal - discount,
		Currency:       crt.Currency,
		RedeemedPoints: consumed,
		PaymentMethod:  req.PaymentMethod,
		Status:         models.BookingStatusPending,
	}

	result := &CreateBookingResult{}
	if req.PaymentMethod == models.PaymentMethodCard && bk.Total > 0 {
		intentID, clientSecret, err := s.Payments.CreateIntent(int64(bk.Total), bk.ID)
		if err != nil {
			s.refundPoints(userID, consumed)
			return nil, err
		}
		bk.PaymentIntentID = intentID
		result.ClientSecret = clientSecret
	} else {
		// Cash (or fully discounted) bookings confirm on the spot.
		bk.Status = models.BookingStatusConfirmed
	}

	if err := s.Bookings.Create(&bk); err != nil {
		s.refundPoints(userID, consumed)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	middleware.BookingsCreated.Inc()

	if bk.Status == models.BookingStatusConfirmed {
		s.afterConfirm(ctx, &bk, crt.Name)
	}

	result.Booking = &bk
	return result, nil
}

// ConfirmPayment promotes a pending card booking once Stripe reports the
// payment intent as succeeded.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	bk, err := s.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}
	if bk.UserID != userID {
		return nil, fmt.Errorf("booking %s does not belong to you", bookingID)
	}
	if bk.Status != models.BookingStatusPending {
		return nil, InvalidTransitionError{From: bk.Status, To: models.BookingStatusConfirmed}
	}
	if bk.PaymentIntentID == "" {
		return nil, fmt.Errorf("booking %s has no payment to confirm", bookingID)
	}

	status, err := s.Payments.IntentStatus(bk.PaymentIntentID)
	if err != nil {
		return nil, err
	}
	if status != "succeeded" {
		return nil, fmt.Errorf("payment not settled yet, current status: %s", status)
	}

	if err := s.Bookings.UpdateSetDocument(bookingID, bson.M{"status": models.BookingStatusConfirmed}); err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}
	bk.Status = models.BookingStatusConfirmed

	courtName := bk.CourtID
	if crt, err := s.Courts.GetByID(bk.CourtID); err == nil && crt != nil {
		courtName = crt.Name
	}
	s.afterConfirm(ctx, bk, courtName)

	return bk, nil
}

// CancelBooking cancels a pending or confirmed booking and hands back any
// redeemed points.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, userID, bookingID, reason string) error {
	bk, err := s.GetBookingByID(bookingID)
	if err != nil {
		return err
	}
	if bk.UserID != userID {
		return fmt.Errorf("booking %s does not belong to you", bookingID)
	}
	if bk.Status != models.BookingStatusPending && bk.Status != models.BookingStatusConfirmed {
		return InvalidTransitionError{From: bk.Status, To: models.BookingStatusCancelled}
	}
	if start, ok := bookingStart(bk); ok && !time.Now().Before(start) {
		return CancelWindowClosedError{Start: start}
	}

	update := bson.M{"status": models.BookingStatusCancelled, "cancelReason": reason}
	if err := s.Bookings.UpdateSetDocument(bookingID, update); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.refundPoints(userID, bk.RedeemedPoints)
	return nil
}

// CompleteBooking marks a confirmed booking as played and queues the loyalty
// award. Only the owner of the venue may complete bookings.
func (s *DefaultBookingService) CompleteBooking(ctx context.Context, ownerID, bookingID string) error {
	bk, err := s.GetBookingByID(bookingID)
	if err != nil {
		return err
	}

	ven, err := s.Venues.GetByID(bk.VenueID)
	if err != nil || ven == nil {
		return fmt.Errorf("failed to fetch venue for booking %s", bookingID)
	}
	if ven.OwnerID != ownerID {
		return fmt.Errorf("booking %s is not at one of your venues", bookingID)
	}
	if bk.Status != models.BookingStatusConfirmed {
		return InvalidTransitionError{From: bk.Status, To: models.BookingStatusCompleted}
	}

	if err := s.Bookings.UpdateSetDocument(bookingID, bson.M{"status": models.BookingStatusCompleted}); err != nil {
		return fmt.Errorf("failed to complete booking: %w", err)
	}

	task, err := tasks.NewLoyaltyAwardTask(models.LoyaltyAwardPayload{
		UserID:    bk.UserID,
		BookingID: bk.ID,
		Amount:    bk.Total,
	})
	if err != nil {
		return err
	}
	if _, err := s.Queue.Enqueue(task); err != nil {
		utils.GetLogger().Error("CompleteBooking: failed to enqueue loyalty award",
			zap.String("bookingID", bk.ID), zap.Error(err))
	}
	return nil
}

func (s *DefaultBookingService) GetBookingByID(bookingID string) (*models.Booking, error) {
	bk, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if bk == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	return bk, nil
}

func (s *DefaultBookingService) GetBookingsForUser(userID string) ([]models.Booking, error) {
	return s.Bookings.GetByUser(userID)
}

func (s *DefaultBookingService) GetBookingsForVenue(ownerID, venueID string) ([]models.Booking, error) {
	ven, err := s.Venues.GetByID(venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch venue: %w", err)
	}
	if ven == nil {
		return nil, fmt.Errorf("venue %s not found", venueID)
	}
	if ven.OwnerID != ownerID {
		return nil, fmt.Errorf("venue %s does not belong to you", venueID)
	}
	return s.Bookings.GetByVenue(venueID)
}

func (s *DefaultBookingService) CountBookings() (int64, error) {
	return s.Bookings.Count()
}

// takenStarts maps slot start times already held by active bookings.
func (s *DefaultBookingService) takenStarts(courtID, date string) (map[string]bool, error) {
	active, err := s.Bookings.GetActiveByCourtDate(courtID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing bookings: %w", err)
	}
	taken := map[string]bool{}
	for _, bk := range active {
		for _, slot := range bk.Slots {
			taken[slot.Start] = true
		}
	}
	return taken, nil
}

// bookingStart resolves the wall-clock instant the booking's earliest slot
// begins. ok is false when the booking has no slots or carries malformed
// date/time strings.
func bookingStart(bk *models.Booking) (time.Time, bool) {
	if len(bk.Slots) == 0 {
		return time.Time{}, false
	}
	first := bk.Slots[0].Start
	for _, slot := range bk.Slots[1:] {
		if slot.Start < first {
			first = slot.Start
		}
	}
	startAt, err := time.ParseInLocation(dateLayout+" 15:04", bk.Date+" "+first, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return startAt, true
}

// afterConfirm fires the confirmation push and schedules the pre-game
// reminder. Neither failure unwinds the booking.
func (s *DefaultBookingService) afterConfirm(ctx context.Context, bk *models.Booking, courtName string) {
	if err := s.Notifier.NotifyBookingConfirmed(ctx, bk.UserID, courtName, bk.Date); err != nil {
		utils.GetLogger().Error("afterConfirm: failed to send confirmation push",
			zap.String("bookingID", bk.ID), zap.Error(err))
	}

	startAt, ok := bookingStart(bk)
	if !ok {
		return
	}
	remindAt := startAt.Add(-reminderLead)
	if remindAt.Before(time.Now()) {
		return
	}

	task, opts, err := tasks.NewBookingReminderTask(models.BookingReminderPayload{
		UserID:    bk.UserID,
		BookingID: bk.ID,
		CourtName: courtName,
		Date:      bk.Date,
		Start:     startAt.Format("15:04"),
	}, remindAt)
	if err != nil {
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Error("afterConfirm: failed to enqueue reminder",
			zap.String("bookingID", bk.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) refundPoints(userID string, points int64) {
	if points <= 0 {
		return
	}
	if err := s.Users.RefundLoyaltyPoints(userID, points); err != nil {
		utils.GetLogger().Error("failed to refund loyalty points",
			zap.String("userID", userID), zap.Int64("points", points), zap.Error(err))
	}
}
