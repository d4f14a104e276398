package models

import "time"

// Booking statuses. Transitions: pending → confirmed → completed;
// pending|confirmed → cancelled.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment methods.
const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

// BookedSlot records one reserved hour inside a booking.
type BookedSlot struct {
	Start string  `bson:"start" json:"start"` // "HH:mm"
	End   string  `bson:"end" json:"end"`
	Price float64 `bson:"price" json:"price"`
}

// Booking reserves one or more one-hour slots on a court for a calendar date.
type Booking struct {
	ID              string       `bson:"id" json:"id"`
	UserID          string       `bson:"userId" json:"userId"`
	CourtID         string       `bson:"courtId" json:"courtId"`
	VenueID         string       `bson:"venueId" json:"venueId"`
	Date            string       `bson:"date" json:"date"` // "2006-01-02"
	Slots           []BookedSlot `bson:"slots" json:"slots"`
	SubTotal        float64      `bson:"subTotal" json:"subTotal"`
	Discount        float64      `bson:"discount,omitempty" json:"discount,omitempty"`
	Total           float64      `bson:"total" json:"total"`
	Currency        string       `bson:"currency" json:"currency"`
	RedeemedPoints  int64        `bson:"redeemedPoints,omitempty" json:"redeemedPoints,omitempty"`
	PaymentMethod   string       `bson:"paymentMethod" json:"paymentMethod"`
	PaymentIntentID string       `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	Status          string       `bson:"status" json:"status"`
	CancelReason    string       `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt       time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time    `bson:"updated_at" json:"updatedAt"`
}

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	CourtID       string      `json:"courtId" binding:"required"`
	Date          string      `json:"date" binding:"required"` // "2006-01-02"
	Slots         []TimeRange `json:"slots" binding:"required,min=1"`
	PaymentMethod string      `json:"paymentMethod" binding:"required,oneof=cash card"`
	RedeemPoints  int64       `json:"redeemPoints,omitempty"`
}
