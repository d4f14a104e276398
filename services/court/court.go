package court

import (
	"fmt"
	"time"

	courtRepo "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/court"
	venueRepo "github.com/Vic-Sports/Vic-Sports-BE-sub001/database/repository/venue"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// CourtService defines business logic for court management.
type CourtService interface {
	CreateCourt(ownerID string, court models.Court) (*models.Court, error)
	UpdateCourt(ownerID, courtID string, court models.Court) (*models.Court, error)
	DeleteCourt(ownerID, courtID string) error
	GetCourtByID(courtID string) (*models.Court, error)
	GetCourtsByVenue(venueID string) ([]models.Court, error)
	GetCourtsBySport(sportType string) ([]models.Court, error)
	// SetAvailability replaces the weekly availability template.
	SetAvailability(ownerID, courtID string, entries []models.WeeklyAvailabilityEntry) error
	// SetPricing replaces the pricing rules.
	SetPricing(ownerID, courtID string, rules []models.PricingRule) error
}

// DefaultCourtService is the production implementation.
type DefaultCourtService struct {
	Courts courtRepo.CourtRepository
	Venues venueRepo.VenueRepository
}

// requireVenueOwnership checks that the caller owns the venue the court
// belongs to.
func (s *DefaultCourtService) requireVenueOwnership(ownerID, venueID string) error {
	ven, err := s.Venues.GetByID(venueID)
	if err != nil {
		return fmt.Errorf("failed to fetch venue: %w", err)
	}
	if ven == nil {
		return fmt.Errorf("venue %s not found", venueID)
	}
	if ven.OwnerID != ownerID {
		return fmt.Errorf("venue %s does not belong to you", venueID)
	}
	return nil
}

func (s *DefaultCourtService) loadOwnedCourt(ownerID, courtID string) (*models.Court, error) {
	crt, err := s.Courts.GetByID(courtID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch court: %w", err)
	}
	if crt == nil {
		return nil, fmt.Errorf("court %s not found", courtID)
	}
	if err := s.requireVenueOwnership(ownerID, crt.VenueID); err != nil {
		return nil, err
	}
	return crt, nil
}

func validateTimeRange(tr models.TimeRange) error {
	start, err := time.Parse(clockLayout, tr.Start)
	if err != nil {
		return fmt.Errorf("invalid time %q: expected HH:mm", tr.Start)
	}
	end, err := time.Parse(clockLayout, tr.End)
	if err != nil {
		return fmt.Errorf("invalid time %q: expected HH:mm", tr.End)
	}
	if !start.Before(end) {
		return fmt.Errorf("time range %s-%s is empty", tr.Start, tr.End)
	}
	return nil
}

func (s *DefaultCourtService) CreateCourt(ownerID string, court models.Court) (*models.Court, error) {
	if court.VenueID == "" || court.Name == "" || court.SportType == "" {
		return nil, fmt.Errorf("venueId, name and sportType are required")
	}
	if err := s.requireVenueOwnership(ownerID, court.VenueID); err != nil {
		return nil, err
	}

	court.ID = uuid.New().String()
	if court.Currency == "" {
		court.Currency = "VND"
	}
	court.Active = true
	court.DefaultAvailability = nil
	court.Pricing = nil

	if err := s.Courts.Create(&court); err != nil {
		return nil, fmt.Errorf("failed to create court: %w", err)
	}
	return &court, nil
}

func (s *DefaultCourtService) UpdateCourt(ownerID, courtID string, court models.Court) (*models.Court, error) {
	if _, err := s.loadOwnedCourt(ownerID, courtID); err != nil {
		return nil, err
	}

	update := bson.M{"active": court.Active}
	if court.Name != "" {
		update["name"] = court.Name
	}
	if court.SportType != "" {
		update["sportType"] = court.SportType
	}
	if court.Surface != "" {
		update["surface"] = court.Surface
	}
	update["indoor"] = court.Indoor

	if err := s.Courts.UpdateSetDocument(courtID, update); err != nil {
		return nil, fmt.Errorf("failed to update court: %w", err)
	}
	return s.Courts.GetByID(courtID)
}

func (s *DefaultCourtService) DeleteCourt(ownerID, courtID string) error {
	if _, err := s.loadOwnedCourt(ownerID, courtID); err != nil {
		return err
	}
	if err := s.Courts.Delete(courtID); err != nil {
		return fmt.Errorf("failed to delete court: %w", err)
	}
	return nil
}

func (s *DefaultCourtService) GetCourtByID(courtID string) (*models.Court, error) {
	crt, err := s.Courts.GetByID(courtID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch court: %w", err)
	}
	if crt == nil {
		return nil, fmt.Errorf("court %s not found", courtID)
	}
	return crt, nil
}

func (s *DefaultCourtService) GetCourtsByVenue(venueID string) ([]models.Court, error) {
	return s.Courts.GetByVenue(venueID)
}

func (s *DefaultCourtService) GetCourtsBySport(sportType string) ([]models.Court, error) {
	return s.Courts.GetBySport(sportType)
}

func (s *DefaultCourtService) SetAvailability(ownerID, courtID string, entries []models.WeeklyAvailabilityEntry) error {
	if _, err := s.loadOwnedCourt(ownerID, courtID); err != nil {
		return err
	}

	seen := map[int]bool{}
	for _, entry := range entries {
		if entry.DayOfWeek < 0 || entry.DayOfWeek > 6 {
			return fmt.Errorf("dayOfWeek %d out of range 0..6", entry.DayOfWeek)
		}
		if seen[entry.DayOfWeek] {
			return fmt.Errorf("duplicate availability entry for dayOfWeek %d", entry.DayOfWeek)
		}
		seen[entry.DayOfWeek] = true
		for _, tr := range entry.TimeSlots {
			if err := validateTimeRange(tr); err != nil {
				return err
			}
		}
	}

	if err := s.Courts.UpdateSetDocument(courtID, bson.M{"defaultAvailability": entries}); err != nil {
		return fmt.Errorf("failed to set availability: %w", err)
	}
	return nil
}

func (s *DefaultCourtService) SetPricing(ownerID, courtID string, rules []models.PricingRule) error {
	if _, err := s.loadOwnedCourt(ownerID, courtID); err != nil {
		return err
	}

	for _, rule := range rules {
		if rule.DayType != models.DayTypeWeekday && rule.DayType != models.DayTypeWeekend {
			return fmt.Errorf("unknown dayType %q", rule.DayType)
		}
		if err := validateTimeRange(rule.TimeSlot); err != nil {
			return err
		}
		if rule.PricePerHour < 0 {
			return fmt.Errorf("pricePerHour must not be negative")
		}
	}

	if err := s.Courts.UpdateSetDocument(courtID, bson.M{"pricing": rules}); err != nil {
		return fmt.Errorf("failed to set pricing: %w", err)
	}
	return nil
}
