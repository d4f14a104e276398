package models

// Slot is a one-hour bookable unit generated from a court's weekly template,
// annotated with the hourly price that applies to it. Label is a display
// rendering of the range and localized price, e.g. "14:00 - 15:00 (150,000 đ)".
type Slot struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Price float64 `json:"price"`
	Label string  `json:"label"`
}
