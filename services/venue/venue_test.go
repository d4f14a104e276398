package venue

import (
	"testing"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeVenueRepo struct {
	byID    map[string]*models.Venue
	updates map[string]bson.M
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{byID: map[string]*models.Venue{}, updates: map[string]bson.M{}}
}

func (f *fakeVenueRepo) Create(v *models.Venue) error {
	f.byID[v.ID] = v
	return nil
}

func (f *fakeVenueRepo) Update(v *models.Venue) error {
	f.byID[v.ID] = v
	return nil
}

func (f *fakeVenueRepo) UpdateSetDocument(id string, doc bson.M) error {
	f.updates[id] = doc
	if v, ok := f.byID[id]; ok {
		if status, ok := doc["status"].(string); ok {
			v.Status = status
		}
	}
	return nil
}

func (f *fakeVenueRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeVenueRepo) GetByID(id string) (*models.Venue, error)          { return f.byID[id], nil }
func (f *fakeVenueRepo) GetByOwner(string) ([]models.Venue, error)         { return nil, nil }
func (f *fakeVenueRepo) GetByStatus(string) ([]models.Venue, error)        { return nil, nil }
func (f *fakeVenueRepo) Search(models.VenueFilter) ([]models.Venue, error) { return nil, nil }
func (f *fakeVenueRepo) Count() (int64, error)                             { return int64(len(f.byID)), nil }

func TestGetPublicVenueByIDHidesUnapproved(t *testing.T) {
	repo := newFakeVenueRepo()
	repo.byID["v-pending"] = &models.Venue{ID: "v-pending", Status: models.VenueStatusPending}
	repo.byID["v-rejected"] = &models.Venue{ID: "v-rejected", Status: models.VenueStatusRejected}
	repo.byID["v-approved"] = &models.Venue{ID: "v-approved", Status: models.VenueStatusApproved}
	svc := &DefaultVenueService{Repo: repo}

	ven, err := svc.GetPublicVenueByID("v-approved")
	require.NoError(t, err)
	assert.Equal(t, "v-approved", ven.ID)

	_, err = svc.GetPublicVenueByID("v-pending")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = svc.GetPublicVenueByID("v-rejected")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = svc.GetPublicVenueByID("v-missing")
	require.Error(t, err)
}

func TestApproveVenueMakesItPublic(t *testing.T) {
	repo := newFakeVenueRepo()
	repo.byID["v-1"] = &models.Venue{ID: "v-1", Status: models.VenueStatusPending}
	svc := &DefaultVenueService{Repo: repo}

	_, err := svc.GetPublicVenueByID("v-1")
	require.Error(t, err)

	require.NoError(t, svc.ApproveVenue("v-1"))

	ven, err := svc.GetPublicVenueByID("v-1")
	require.NoError(t, err)
	assert.Equal(t, models.VenueStatusApproved, ven.Status)
}
