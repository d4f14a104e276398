package booking

import (
	"context"
	"testing"
	"time"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/user"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// monday is 2025-06-02, a weekday.
const monday = "2025-06-02"

func testCourt() *models.Court {
	return &models.Court{
		ID:        "court-1",
		VenueID:   "venue-1",
		Name:      "Court 1",
		SportType: "badminton",
		Currency:  "VND",
		Active:    true,
		DefaultAvailability: []models.WeeklyAvailabilityEntry{
			{DayOfWeek: 1, TimeSlots: []models.TimeRange{{Start: "08:00", End: "12:00"}}},
		},
		Pricing: []models.PricingRule{
			{DayType: models.DayTypeWeekday, TimeSlot: models.TimeRange{Start: "08:00", End: "12:00"}, PricePerHour: 100000, IsActive: true},
		},
	}
}

type fakeBookingRepo struct {
	created []*models.Booking
	active  []models.Booking
	byID    map[string]*models.Booking
	updates map[string]bson.M
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: map[string]*models.Booking{}, updates: map[string]bson.M{}}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.created = append(f.created, b)
	f.byID[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) UpdateSetDocument(id string, doc bson.M) error {
	f.updates[id] = doc
	if b, ok := f.byID[id]; ok {
		if status, ok := doc["status"].(string); ok {
			b.Status = status
		}
	}
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error)  { return f.byID[id], nil }
func (f *fakeBookingRepo) GetByUser(string) ([]models.Booking, error)  { return nil, nil }
func (f *fakeBookingRepo) GetByVenue(string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) Count() (int64, error)                       { return int64(len(f.byID)), nil }
func (f *fakeBookingRepo) GetActiveByCourtDate(string, string) ([]models.Booking, error) {
	return f.active, nil
}

type fakeCourtRepo struct {
	court *models.Court
}

func (f *fakeCourtRepo) Create(*models.Court) error                { return nil }
func (f *fakeCourtRepo) Update(*models.Court) error                { return nil }
func (f *fakeCourtRepo) UpdateSetDocument(string, bson.M) error    { return nil }
func (f *fakeCourtRepo) Delete(string) error                       { return nil }
func (f *fakeCourtRepo) GetByID(string) (*models.Court, error)     { return f.court, nil }
func (f *fakeCourtRepo) GetByVenue(string) ([]models.Court, error) { return nil, nil }
func (f *fakeCourtRepo) GetBySport(string) ([]models.Court, error) { return nil, nil }

type fakeVenueRepo struct {
	venue *models.Venue
}

func (f *fakeVenueRepo) Create(*models.Venue) error                        { return nil }
func (f *fakeVenueRepo) Update(*models.Venue) error                        { return nil }
func (f *fakeVenueRepo) UpdateSetDocument(string, bson.M) error            { return nil }
func (f *fakeVenueRepo) Delete(string) error                               { return nil }
func (f *fakeVenueRepo) GetByID(string) (*models.Venue, error)             { return f.venue, nil }
func (f *fakeVenueRepo) GetByOwner(string) ([]models.Venue, error)         { return nil, nil }
func (f *fakeVenueRepo) GetByStatus(string) ([]models.Venue, error)        { return nil, nil }
func (f *fakeVenueRepo) Search(models.VenueFilter) ([]models.Venue, error) { return nil, nil }
func (f *fakeVenueRepo) Count() (int64, error)                             { return 0, nil }

// fakeUserService only implements the loyalty methods the booking flow uses.
type fakeUserService struct {
	user.UserService
	redeemed int64
	refunded int64
}

func (f *fakeUserService) RedeemLoyaltyPoints(userID string, points int64) error {
	f.redeemed += points
	return nil
}

func (f *fakeUserService) RefundLoyaltyPoints(userID string, points int64) error {
	f.refunded += points
	return nil
}

type fakePayments struct {
	status  string
	created int
}

func (f *fakePayments) CreateIntent(amount int64, bookingID string) (string, string, error) {
	f.created++
	return "pi_test", "pi_test_secret", nil
}

func (f *fakePayments) IntentStatus(id string) (string, error) { return f.status, nil }

type fakeQueue struct {
	tasks []*asynq.Task
}

func (f *fakeQueue) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

type fakeNotifier struct {
	confirmed int
	reminders int
	messages  int
}

func (f *fakeNotifier) NotifyBookingConfirmed(context.Context, string, string, string) error {
	f.confirmed++
	return nil
}

func (f *fakeNotifier) NotifyBookingReminder(context.Context, string, string, string, string) error {
	f.reminders++
	return nil
}

func (f *fakeNotifier) NotifyNewMessage(context.Context, string, string, string) error {
	f.messages++
	return nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeUserService, *fakePayments, *fakeQueue, *fakeNotifier) {
	bookings := newFakeBookingRepo()
	users := &fakeUserService{}
	payments := &fakePayments{status: "succeeded"}
	queue := &fakeQueue{}
	notifier := &fakeNotifier{}
	svc := &DefaultBookingService{
		Bookings: bookings,
		Courts:   &fakeCourtRepo{court: testCourt()},
		Venues:   &fakeVenueRepo{venue: &models.Venue{ID: "venue-1", OwnerID: "owner-1", Status: models.VenueStatusApproved}},
		Users:    users,
		Payments: payments,
		Queue:    queue,
		Notifier: notifier,
	}
	return svc, bookings, users, payments, queue, notifier
}

func TestCreateBookingCashConfirmsImmediately(t *testing.T) {
	svc, bookings, _, payments, _, notifier := newTestService()

	res, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		CourtID:       "court-1",
		Date:          monday,
		Slots:         []models.TimeRange{{Start: "08:00", End: "09:00"}, {Start: "09:00", End: "10:00"}},
		PaymentMethod: models.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, res.Booking.Status)
	assert.Equal(t, float64(200000), res.Booking.SubTotal)
	assert.Equal(t, float64(200000), res.Booking.Total)
	assert.Empty(t, res.ClientSecret)
	assert.Zero(t, payments.created)
	assert.Len(t, bookings.created, 1)
	assert.Equal(t, 1, notifier.confirmed)
}

func TestCreateBookingCardStaysPending(t *testing.T) {
	svc, _, _, payments, _, notifier := newTestService()

	res, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		CourtID:       "court-1",
		Date:          monday,
		Slots:         []models.TimeRange{{Start: "10:00", End: "11:00"}},
		PaymentMethod: models.PaymentMethodCard,
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, res.Booking.Status)
	assert.Equal(t, "pi_test", res.Booking.PaymentIntentID)
	assert.Equal(t, "pi_test_secret", res.ClientSecret)
	assert.Equal(t, 1, payments.created)
	assert.Zero(t, notifier.confirmed)
}

func TestCreateBookingRejectsTakenSlot(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()
	bookings.active = []models.Booking{
		{Slots: []models.BookedSlot{{Start: "08:00", End: "09:00"}}, Status: models.BookingStatusConfirmed},
	}

	_, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		CourtID:       "court-1",
		Date:          monday,
		Slots:         []models.TimeRange{{Start: "08:00", End: "09:00"}},
		PaymentMethod: models.PaymentMethodCash,
	})
	require.Error(t, err)

	var unavailable SlotUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, []string{"08:00"}, unavailable.Slots)
}

func TestCreateBookingRejectsSlotOutsideTemplate(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		CourtID:       "court-1",
		Date:          monday,
		Slots:         []models.TimeRange{{Start: "13:00", End: "14:00"}},
		PaymentMethod: models.PaymentMethodCash,
	})

	var unavailable SlotUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestCreateBookingRedeemsPointsWithCap(t *testing.T) {
	svc, _, users, _, _, _ := newTestService()

	// Two hours at 100,000: cap is half of 200,000, worth 1000 points.
	res, err := svc.CreateBooking(context.Background(), "user-1", models.CreateBookingRequest{
		CourtID:       "court-1",
		Date:          monday,
		Slots:         []models.TimeRange{{Start: "08:00", End: "09:00"}, {Start: "09:00", End: "10:00"}},
		PaymentMethod: models.PaymentMethodCash,
		RedeemPoints:  5000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1000), users.redeemed)
	assert.Equal(t, int64(1000), res.Booking.RedeemedPoints)
	assert.Equal(t, float64(100000), res.Booking.Discount)
	assert.Equal(t, float64(100000), res.Booking.Total)
}

func TestConfirmPayment(t *testing.T) {
	svc, bookings, _, payments, _, notifier := newTestService()
	bookings.byID["bk-1"] = &models.Booking{
		ID:              "bk-1",
		UserID:          "user-1",
		CourtID:         "court-1",
		VenueID:         "venue-1",
		Date:            monday,
		Status:          models.BookingStatusPending,
		PaymentMethod:   models.PaymentMethodCard,
		PaymentIntentID: "pi_test",
	}

	payments.status = "requires_payment_method"
	_, err := svc.ConfirmPayment(context.Background(), "user-1", "bk-1")
	require.Error(t, err)

	payments.status = "succeeded"
	bk, err := svc.ConfirmPayment(context.Background(), "user-1", "bk-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, bk.Status)
	assert.Equal(t, 1, notifier.confirmed)

	// A second confirm is no longer a valid transition.
	_, err = svc.ConfirmPayment(context.Background(), "user-1", "bk-1")
	var transition InvalidTransitionError
	require.ErrorAs(t, err, &transition)
}

func TestCancelBookingRefundsPoints(t *testing.T) {
	svc, bookings, users, _, _, _ := newTestService()
	bookings.byID["bk-1"] = &models.Booking{
		ID:             "bk-1",
		UserID:         "user-1",
		Status:         models.BookingStatusConfirmed,
		RedeemedPoints: 300,
	}

	require.NoError(t, svc.CancelBooking(context.Background(), "user-1", "bk-1", "rained out"))
	assert.Equal(t, int64(300), users.refunded)
	assert.Equal(t, models.BookingStatusCancelled, bookings.byID["bk-1"].Status)

	// Completed bookings cannot be cancelled.
	bookings.byID["bk-2"] = &models.Booking{ID: "bk-2", UserID: "user-1", Status: models.BookingStatusCompleted}
	err := svc.CancelBooking(context.Background(), "user-1", "bk-2", "")
	var transition InvalidTransitionError
	require.ErrorAs(t, err, &transition)
}

func TestCancelBookingRejectedAfterStart(t *testing.T) {
	svc, bookings, users, _, _, _ := newTestService()
	yesterday := time.Now().Add(-24 * time.Hour).Format("2006-01-02")
	bookings.byID["bk-1"] = &models.Booking{
		ID:             "bk-1",
		UserID:         "user-1",
		Date:           yesterday,
		Slots:          []models.BookedSlot{{Start: "08:00", End: "09:00"}},
		Status:         models.BookingStatusConfirmed,
		RedeemedPoints: 500,
	}

	err := svc.CancelBooking(context.Background(), "user-1", "bk-1", "changed my mind")
	var closed CancelWindowClosedError
	require.ErrorAs(t, err, &closed)
	assert.Zero(t, users.refunded)
	assert.Equal(t, models.BookingStatusConfirmed, bookings.byID["bk-1"].Status)
}

func TestCancelBookingOwnershipCheck(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()
	bookings.byID["bk-1"] = &models.Booking{ID: "bk-1", UserID: "user-1", Status: models.BookingStatusPending}

	err := svc.CancelBooking(context.Background(), "someone-else", "bk-1", "")
	require.Error(t, err)
}

func TestCompleteBookingEnqueuesLoyaltyAward(t *testing.T) {
	svc, bookings, _, _, queue, _ := newTestService()
	bookings.byID["bk-1"] = &models.Booking{
		ID:      "bk-1",
		UserID:  "user-1",
		VenueID: "venue-1",
		Status:  models.BookingStatusConfirmed,
		Total:   150000,
	}

	require.NoError(t, svc.CompleteBooking(context.Background(), "owner-1", "bk-1"))
	assert.Equal(t, models.BookingStatusCompleted, bookings.byID["bk-1"].Status)
	require.Len(t, queue.tasks, 1)
	assert.Equal(t, "loyalty:award", queue.tasks[0].Type())

	// Not the venue owner.
	bookings.byID["bk-2"] = &models.Booking{ID: "bk-2", VenueID: "venue-1", Status: models.BookingStatusConfirmed}
	require.Error(t, svc.CompleteBooking(context.Background(), "intruder", "bk-2"))
}

func TestGetAvailableSlotsHidesTakenHours(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()
	bookings.active = []models.Booking{
		{Slots: []models.BookedSlot{{Start: "09:00", End: "10:00"}}, Status: models.BookingStatusConfirmed},
	}

	slots, err := svc.GetAvailableSlots("court-1", monday, "", "")
	require.NoError(t, err)

	starts := make([]string, 0, len(slots))
	for _, slot := range slots {
		starts = append(starts, slot.Start)
	}
	assert.Equal(t, []string{"08:00", "10:00", "11:00"}, starts)
}
