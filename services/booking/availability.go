package booking

import (
	"fmt"
	"time"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"
	"github.com/Vic-Sports/Vic-Sports-BE-sub001/services/court"
)

// GetAvailableSlots computes the bookable slots for a court on a date and
// removes hours already held by active bookings.
func (s *DefaultBookingService) GetAvailableSlots(courtID, dateStr, filterStart, filterEnd string) ([]models.Slot, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
	}

	crt, err := s.Courts.GetByID(courtID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch court: %w", err)
	}
	if crt == nil {
		return nil, fmt.Errorf("court %s not found", courtID)
	}

	slots, err := court.ComputeSlots(crt, date, filterStart, filterEnd)
	if err != nil {
		return nil, err
	}

	taken, err := s.takenStarts(courtID, dateStr)
	if err != nil {
		return nil, err
	}

	free := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		if !taken[slot.Start] {
			free = append(free, slot)
		}
	}
	return free, nil
}
