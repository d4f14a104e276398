package models

import "time"

// Day types used by pricing rules.
const (
	DayTypeWeekday = "weekday"
	DayTypeWeekend = "weekend"
)

// TimeRange is a half-open [Start, End) interval expressed as "HH:mm" strings
// in the venue's local wall-clock time.
type TimeRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// WeeklyAvailabilityEntry declares the open hours of a court for one weekday.
// DayOfWeek follows time.Weekday numbering: 0 = Sunday .. 6 = Saturday.
// TimeSlots are assumed non-overlapping and pre-sorted by the data owner.
type WeeklyAvailabilityEntry struct {
	DayOfWeek int         `bson:"dayOfWeek" json:"dayOfWeek"`
	TimeSlots []TimeRange `bson:"timeSlots" json:"timeSlots"`
}

// PricingRule maps a (day type, time range) pair to an hourly rate.
// Inactive rules are ignored entirely. When several active rules cover the
// same slot start, the first one in document order wins.
type PricingRule struct {
	DayType      string    `bson:"dayType" json:"dayType"`
	TimeSlot     TimeRange `bson:"timeSlot" json:"timeSlot"`
	PricePerHour float64   `bson:"pricePerHour" json:"pricePerHour"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
}

// Court is a bookable playing surface inside a venue.
type Court struct {
	ID                  string                    `bson:"id" json:"id"`
	VenueID             string                    `bson:"venueId" json:"venueId"`
	Name                string                    `bson:"name" json:"name"`
	SportType           string                    `bson:"sportType" json:"sportType"` // e.g. "badminton", "futsal", "tennis"
	Surface             string                    `bson:"surface,omitempty" json:"surface,omitempty"`
	Indoor              bool                      `bson:"indoor" json:"indoor"`
	Currency            string                    `bson:"currency" json:"currency"` // "VND"
	DefaultAvailability []WeeklyAvailabilityEntry `bson:"defaultAvailability,omitempty" json:"defaultAvailability,omitempty"`
	Pricing             []PricingRule             `bson:"pricing,omitempty" json:"pricing,omitempty"`
	Active              bool                      `bson:"active" json:"active"`
	CreatedAt           time.Time                 `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time                 `bson:"updated_at" json:"updatedAt"`
}

// SetAvailabilityRequest replaces a court's weekly availability template.
type SetAvailabilityRequest struct {
	DefaultAvailability []WeeklyAvailabilityEntry `json:"defaultAvailability" binding:"required"`
}

// SetPricingRequest replaces a court's pricing rules.
type SetPricingRequest struct {
	Pricing []PricingRule `json:"pricing" binding:"required"`
}
