package booking

import (
	"fmt"
	"strings"
	"time"
)

// SlotUnavailableError reports requested hours already taken by another
// booking or outside the court's open hours.
type SlotUnavailableError struct {
	Slots []string // "HH:mm" slot starts
}

func (e SlotUnavailableError) Error() string {
	return "slots unavailable: " + strings.Join(e.Slots, ", ")
}

// CancelWindowClosedError reports a cancellation attempted at or after the
// booking's start time.
type CancelWindowClosedError struct {
	Start time.Time
}

func (e CancelWindowClosedError) Error() string {
	return fmt.Sprintf("booking can no longer be cancelled, it started at %s", e.Start.Format("2006-01-02 15:04"))
}

// InvalidTransitionError reports a booking status change that the lifecycle
// does not allow.
type InvalidTransitionError struct {
	From, To string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move booking from %s to %s", e.From, e.To)
}
