package models

// LoyaltyAwardPayload is carried by the asynq task that credits loyalty
// points once a booking completes.
type LoyaltyAwardPayload struct {
	UserID    string  `json:"userId"`
	BookingID string  `json:"bookingId"`
	Amount    float64 `json:"amount"` // booking total in VND
}

// BookingReminderPayload is carried by the asynq task that fires a push
// notification shortly before a booking starts.
type BookingReminderPayload struct {
	UserID    string `json:"userId"`
	BookingID string `json:"bookingId"`
	CourtName string `json:"courtName"`
	Date      string `json:"date"`
	Start     string `json:"start"`
}
