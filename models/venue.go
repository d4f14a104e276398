package models

import "time"

// Venue moderation statuses.
const (
	VenueStatusPending  = "pending"
	VenueStatusApproved = "approved"
	VenueStatusRejected = "rejected"
)

// Address is a Vietnamese-style street address.
type Address struct {
	Street   string `bson:"street" json:"street"`
	Ward     string `bson:"ward,omitempty" json:"ward,omitempty"`
	District string `bson:"district" json:"district"`
	City     string `bson:"city" json:"city"`
}

// Venue is a sports facility owned by an owner account. A venue holds one or
// more courts and must be approved by an admin before it is publicly listed.
type Venue struct {
	ID           string    `bson:"id" json:"id"`
	OwnerID      string    `bson:"ownerId" json:"ownerId"`
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Address      Address   `bson:"address" json:"address"`
	Images       []string  `bson:"images,omitempty" json:"images,omitempty"` // cloudinary public IDs
	Amenities    []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Status       string    `bson:"status" json:"status"`
	RejectReason string    `bson:"rejectReason,omitempty" json:"rejectReason,omitempty"`
	Rating       float64   `bson:"rating" json:"rating"`
	RatingCount  int       `bson:"ratingCount" json:"ratingCount"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// VenueFilter narrows venue listings.
type VenueFilter struct {
	City      string `form:"city"`
	District  string `form:"district"`
	SportType string `form:"sportType"`
	Search    string `form:"search"`
}
