package venue

import (
	"context"
	"fmt"
	"time"

	venueRepo "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/venue"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// VenueService defines business logic for venue management and discovery.
type VenueService interface {
	// CreateVenue registers a new venue for an owner. It starts in pending
	// status and must be approved by an admin before it appears in search.
	CreateVenue(ownerID string, venue models.Venue) (*models.Venue, error)
	// UpdateVenue edits an owner's venue. Edits put the venue back to
	// pending so admins re-review the listing.
	UpdateVenue(ownerID, venueID string, venue models.Venue) (*models.Venue, error)
	// DeleteVenue removes an owner's venue and its images.
	DeleteVenue(ownerID, venueID string) error
	// GetVenueByID returns a single venue.
	GetVenueByID(venueID string) (*models.Venue, error)
	// GetPublicVenueByID returns a venue only if it is approved. Pending and
	// rejected venues look like not-found to the public.
	GetPublicVenueByID(venueID string) (*models.Venue, error)
	// GetVenuesByOwner lists everything an owner manages, any status.
	GetVenuesByOwner(ownerID string) ([]models.Venue, error)
	// SearchVenues lists approved venues matching the filter.
	SearchVenues(filter models.VenueFilter) ([]models.Venue, error)
	// AttachImage uploads a venue photo and stores its public ID.
	AttachImage(ctx context.Context, ownerID, venueID, localFilePath string) (string, error)

	// Moderation, admin only.
	GetVenuesByStatus(status string) ([]models.Venue, error)
	ApproveVenue(venueID string) error
	RejectVenue(venueID, reason string) error
	CountVenues() (int64, error)
}

// DefaultVenueService is the production implementation.
type DefaultVenueService struct {
	Repo    venueRepo.VenueRepository
	Storage storage.StorageService
}

// requireOwnership loads the venue and checks the caller owns it.
func (s *DefaultVenueService) requireOwnership(ownerID, venueID string) (*models.Venue, error) {
	ven, err := s.Repo.GetByID(venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch venue: %w", err)
	}
	if ven == nil {
		return nil, fmt.Errorf("venue %s not found", venueID)
	}
	if ven.OwnerID != ownerID {
		return nil, fmt.Errorf("venue %s does not belong to you", venueID)
	}
	return ven, nil
}

func (s *DefaultVenueService) CreateVenue(ownerID string, venue models.Venue) (*models.Venue, error) {
	if venue.Name == "" || venue.Address.City == "" || venue.Address.District == "" {
		return nil, fmt.Errorf("name, city and district are required")
	}

	venue.ID = uuid.New().String()
	venue.OwnerID = ownerID
	venue.Status = models.VenueStatusPending
	venue.RejectReason = ""
	venue.Rating = 0
	venue.RatingCount = 0
	venue.Images = nil

	if err := s.Repo.Create(&venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	return &venue, nil
}

func (s *DefaultVenueService) UpdateVenue(ownerID, venueID string, venue models.Venue) (*models.Venue, error) {
	if _, err := s.requireOwnership(ownerID, venueID); err != nil {
		return nil, err
	}

	update := bson.M{"status": models.VenueStatusPending, "rejectReason": ""}
	if venue.Name != "" {
		update["name"] = venue.Name
	}
	if venue.Description != "" {
		update["description"] = venue.Description
	}
	if venue.Address.City != "" {
		update["address"] = venue.Address
	}
	if venue.Amenities != nil {
		update["amenities"] = venue.Amenities
	}

	if err := s.Repo.UpdateSetDocument(venueID, update); err != nil {
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}
	return s.Repo.GetByID(venueID)
}

func (s *DefaultVenueService) DeleteVenue(ownerID, venueID string) error {
	ven, err := s.requireOwnership(ownerID, venueID)
	if err != nil {
		return err
	}

	for _, publicID := range ven.Images {
		// Best effort; a dangling image is not worth failing the delete.
		_ = s.Storage.DeleteFile(context.Background(), publicID)
	}
	if err := s.Repo.Delete(venueID); err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}
	return nil
}

func (s *DefaultVenueService) GetVenueByID(venueID string) (*models.Venue, error) {
	ven, err := s.Repo.GetByID(venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch venue: %w", err)
	}
	if ven == nil {
		return nil, fmt.Errorf("venue %s not found", venueID)
	}
	return ven, nil
}

func (s *DefaultVenueService) GetPublicVenueByID(venueID string) (*models.Venue, error) {
	ven, err := s.GetVenueByID(venueID)
	if err != nil {
		return nil, err
	}
	if ven.Status != models.VenueStatusApproved {
		return nil, fmt.Errorf("venue %s not found", venueID)
	}
	return ven, nil
}

func (s *DefaultVenueService) GetVenuesByOwner(ownerID string) ([]models.Venue, error) {
	return s.Repo.GetByOwner(ownerID)
}

func (s *DefaultVenueService) SearchVenues(filter models.VenueFilter) ([]models.Venue, error) {
	return s.Repo.Search(filter)
}

// AttachImage uploads the photo to cloudinary and appends the resulting
// public ID to the venue document.
func (s *DefaultVenueService) AttachImage(ctx context.Context, ownerID, venueID, localFilePath string) (string, error) {
	ven, err := s.requireOwnership(ownerID, venueID)
	if err != nil {
		return "", err
	}

	folder := "venues/" + venueID
	publicID, err := s.Storage.UploadFile(ctx, localFilePath, folder)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	images := append(ven.Images, publicID)
	if err := s.Repo.UpdateSetDocument(venueID, bson.M{"images": images}); err != nil {
		return "", fmt.Errorf("failed to attach image: %w", err)
	}
	return publicID, nil
}

func (s *DefaultVenueService) GetVenuesByStatus(status string) ([]models.Venue, error) {
	switch status {
	case models.VenueStatusPending, models.VenueStatusApproved, models.VenueStatusRejected:
	default:
		return nil, fmt.Errorf("unknown venue status %q", status)
	}
	return s.Repo.GetByStatus(status)
}

func (s *DefaultVenueService) ApproveVenue(venueID string) error {
	ven, err := s.GetVenueByID(venueID)
	if err != nil {
		return err
	}
	if ven.Status == models.VenueStatusApproved {
		return nil
	}
	update := bson.M{
		"status":       models.VenueStatusApproved,
		"rejectReason": "",
		"updated_at":   time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(venueID, update); err != nil {
		return fmt.Errorf("failed to approve venue: %w", err)
	}
	return nil
}

func (s *DefaultVenueService) RejectVenue(venueID, reason string) error {
	if _, err := s.GetVenueByID(venueID); err != nil {
		return err
	}
	update := bson.M{
		"status":       models.VenueStatusRejected,
		"rejectReason": reason,
		"updated_at":   time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(venueID, update); err != nil {
		return fmt.Errorf("failed to reject venue: %w", err)
	}
	return nil
}

func (s *DefaultVenueService) CountVenues() (int64, error) {
	return s.Repo.Count()
}
