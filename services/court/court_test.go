package court

import (
	"testing"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeCourtRepo struct {
	court   *models.Court
	created *models.Court
	updates map[string]bson.M
}

func (f *fakeCourtRepo) Create(c *models.Court) error { f.created = c; return nil }
func (f *fakeCourtRepo) Update(*models.Court) error   { return nil }
func (f *fakeCourtRepo) UpdateSetDocument(id string, doc bson.M) error {
	if f.updates == nil {
		f.updates = map[string]bson.M{}
	}
	f.updates[id] = doc
	return nil
}
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

func newCourtService() (*DefaultCourtService, *fakeCourtRepo) {
	courts := &fakeCourtRepo{
		court: &models.Court{ID: "court-1", VenueID: "venue-1", Name: "Court 1", Active: true},
	}
	venues := &fakeVenueRepo{venue: &models.Venue{ID: "venue-1", OwnerID: "owner-1"}}
	return &DefaultCourtService{Courts: courts, Venues: venues}, courts
}

func TestSetAvailabilityValidation(t *testing.T) {
	svc, courts := newCourtService()

	err := svc.SetAvailability("owner-1", "court-1", []models.WeeklyAvailabilityEntry{
		{DayOfWeek: 7, TimeSlots: []models.TimeRange{{Start: "08:00", End: "10:00"}}},
	})
	assert.ErrorContains(t, err, "dayOfWeek")

	err = svc.SetAvailability("owner-1", "court-1", []models.WeeklyAvailabilityEntry{
		{DayOfWeek: 1, TimeSlots: []models.TimeRange{{Start: "8am", End: "10:00"}}},
	})
	assert.ErrorContains(t, err, "invalid time")

	err = svc.SetAvailability("owner-1", "court-1", []models.WeeklyAvailabilityEntry{
		{DayOfWeek: 1, TimeSlots: []models.TimeRange{{Start: "10:00", End: "10:00"}}},
	})
	assert.ErrorContains(t, err, "empty")

	err = svc.SetAvailability("owner-1", "court-1", []models.WeeklyAvailabilityEntry{
		{DayOfWeek: 1, TimeSlots: []models.TimeRange{{Start: "08:00", End: "12:00"}}},
		{DayOfWeek: 1, TimeSlots: []models.TimeRange{{Start: "14:00", End: "18:00"}}},
	})
	assert.ErrorContains(t, err, "duplicate")

	err = svc.SetAvailability("owner-1", "court-1", []models.WeeklyAvailabilityEntry{
		{DayOfWeek: 1, TimeSlots: []models.TimeRange{{Start: "08:00", End: "12:00"}}},
	})
	require.NoError(t, err)
	assert.Contains(t, courts.updates["court-1"], "defaultAvailability")
}

func TestSetAvailabilityOwnershipCheck(t *testing.T) {
	svc, _ := newCourtService()

	err := svc.SetAvailability("intruder", "court-1", nil)
	assert.ErrorContains(t, err, "does not belong to you")
}

func TestSetPricingValidation(t *testing.T) {
	svc, courts := newCourtService()

	err := svc.SetPricing("owner-1", "court-1", []models.PricingRule{
		{DayType: "holiday", TimeSlot: models.TimeRange{Start: "08:00", End: "12:00"}, PricePerHour: 100000},
	})
	assert.ErrorContains(t, err, "dayType")

	err = svc.SetPricing("owner-1", "court-1", []models.PricingRule{
		{DayType: models.DayTypeWeekday, TimeSlot: models.TimeRange{Start: "08:00", End: "12:00"}, PricePerHour: -1},
	})
	assert.ErrorContains(t, err, "negative")

	err = svc.SetPricing("owner-1", "court-1", []models.PricingRule{
		{DayType: models.DayTypeWeekday, TimeSlot: models.TimeRange{Start: "08:00", End: "12:00"}, PricePerHour: 100000, IsActive: true},
	})
	require.NoError(t, err)
	assert.Contains(t, courts.updates["court-1"], "pricing")
}

func TestCreateCourtDefaults(t *testing.T) {
	svc, courts := newCourtService()

	crt, err := svc.CreateCourt("owner-1", models.Court{
		VenueID:   "venue-1",
		Name:      "Court 2",
		SportType: "futsal",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, crt.ID)
	assert.Equal(t, "VND", crt.Currency)
	assert.True(t, crt.Active)
	assert.Same(t, crt, courts.created)
}
