package court

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"
)

// slotDuration is the fixed size of a bookable unit. Courts are rented by
// the full hour only; a trailing remainder shorter than this is not offered.
const slotDuration = time.Hour

const clockLayout = "15:04"

// parseClock anchors an "HH:mm" wall-clock string to the given calendar date.
func parseClock(date time.Time, value string) (time.Time, error) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", value, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// dayTypeFor classifies a date for pricing purposes.
func dayTypeFor(date time.Time) string {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return models.DayTypeWeekend
	}
	return models.DayTypeWeekday
}

// ComputeSlots expands a court's weekly availability template into the
// one-hour bookable slots for the given date, each annotated with the hourly
// price from the court's pricing rules.
//
// filterStart and filterEnd ("HH:mm") restrict generation to a sub-range of
// the day; they default to "00:00" and "23:59" when empty. A date whose
// weekday has no template entry yields an empty slice, not an error. Any
// malformed time string fails the whole call with no partial output.
func ComputeSlots(court *models.Court, date time.Time, filterStart, filterEnd string) ([]models.Slot, error) {
	if filterStart == "" {
		filterStart = "00:00"
	}
	if filterEnd == "" {
		filterEnd = "23:59"
	}

	windowStart, err := parseClock(date, filterStart)
	if err != nil {
		return nil, err
	}
	windowEnd, err := parseClock(date, filterEnd)
	if err != nil {
		return nil, err
	}

	var entry *models.WeeklyAvailabilityEntry
	for i := range court.DefaultAvailability {
		if court.DefaultAvailability[i].DayOfWeek == int(date.Weekday()) {
			entry = &court.DefaultAvailability[i]
			break
		}
	}
	if entry == nil {
		return []models.Slot{}, nil
	}

	dayType := dayTypeFor(date)

	slots := []models.Slot{}
	for _, block := range entry.TimeSlots {
		blockStart, err := parseClock(date, block.Start)
		if err != nil {
			return nil, err
		}
		blockEnd, err := parseClock(date, block.End)
		if err != nil {
			return nil, err
		}

		effectiveStart := blockStart
		if windowStart.After(effectiveStart) {
			effectiveStart = windowStart
		}
		effectiveEnd := blockEnd
		if windowEnd.Before(effectiveEnd) {
			effectiveEnd = windowEnd
		}

		for cur := effectiveStart; !cur.Add(slotDuration).After(effectiveEnd); cur = cur.Add(slotDuration) {
			price, err := priceForSlot(court.Pricing, dayType, date, cur)
			if err != nil {
				return nil, err
			}
			start := cur.Format(clockLayout)
			end := cur.Add(slotDuration).Format(clockLayout)
			slots = append(slots, models.Slot{
				Start: start,
				End:   end,
				Price: price,
				Label: fmt.Sprintf("%s - %s (%s)", start, end, FormatVND(price)),
			})
		}
	}

	return slots, nil
}

// priceForSlot selects the hourly rate for a slot starting at slotStart.
// Among active rules of the matching day type whose interval contains the
// slot start, the first one in document order wins; with no match the price
// defaults to zero.
func priceForSlot(rules []models.PricingRule, dayType string, date, slotStart time.Time) (float64, error) {
	for _, rule := range rules {
		if !rule.IsActive || rule.DayType != dayType {
			continue
		}
		ruleStart, err := parseClock(date, rule.TimeSlot.Start)
		if err != nil {
			return 0, err
		}
		ruleEnd, err := parseClock(date, rule.TimeSlot.End)
		if err != nil {
			return 0, err
		}
		if !slotStart.Before(ruleStart) && slotStart.Before(ruleEnd) {
			return rule.PricePerHour, nil
		}
	}
	return 0, nil
}

// FormatVND renders an amount as a Vietnamese đồng display string with
// thousands grouping, e.g. 150000 → "150,000 đ".
func FormatVND(amount float64) string {
	digits := strconv.FormatInt(int64(amount+0.5), 10)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if negative {
		return "-" + b.String() + " đ"
	}
	return b.String() + " đ"
}
