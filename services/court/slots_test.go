package court

import (
	"testing"
	"time"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday   = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
)

func courtWith(avail []models.WeeklyAvailabilityEntry, pricing []models.PricingRule) *models.Court {
	return &models.Court{
		ID:                  "court-1",
		VenueID:             "venue-1",
		Name:                "Court 1",
		SportType:           "badminton",
		Currency:            "VND",
		DefaultAvailability: avail,
		Pricing:             pricing,
	}
}

func weekdayAvail(day int, ranges ...models.TimeRange) []models.WeeklyAvailabilityEntry {
	return []models.WeeklyAvailabilityEntry{{DayOfWeek: day, TimeSlots: ranges}}
}

func TestComputeSlotsNoEntryForWeekday(t *testing.T) {
	c := courtWith(weekdayAvail(2, models.TimeRange{Start: "08:00", End: "12:00"}), nil)

	slots, err := ComputeSlots(c, monday, "", "")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeSlotsHourGranularityAndRemainderDrop(t *testing.T) {
	c := courtWith(
		weekdayAvail(1, models.TimeRange{Start: "08:00", End: "10:30"}),
		[]models.PricingRule{
			{DayType: "weekday", TimeSlot: models.TimeRange{Start: "08:00", End: "09:00"}, PricePerHour: 100000, IsActive: true},
			{DayType: "weekday", TimeSlot: models.TimeRange{Start: "09:00", End: "11:00"}, PricePerHour: 80000, IsActive: true},
		},
	)

	slots, err := ComputeSlots(c, monday, "", "")
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, "08:00", slots[0].Start)
	assert.Equal(t, "09:00", slots[0].End)
	assert.Equal(t, float64(100000), slots[0].Price)

	assert.Equal(t, "09:00", slots[1].Start)
	assert.Equal(t, "10:00", slots[1].End)
	assert.Equal(t, float64(80000), slots[1].Price)

	// The trailing 10:00-10:30 remainder is never offered.
	for _, s := range slots {
		start, err := time.Parse(clockLayout, s.Start)
		require.NoError(t, err)
		end, err := time.Parse(clockLayout, s.End)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, end.Sub(start))
	}
}

func TestComputeSlotsFilterContainment(t *testing.T) {
	c := courtWith(weekdayAvail(1, models.TimeRange{Start: "06:00", End: "22:00"}), nil)

	slots, err := ComputeSlots(c, monday, "09:30", "13:00")
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		assert.GreaterOrEqual(t, s.Start, "09:30")
		assert.LessOrEqual(t, s.End, "13:00")
	}
	// 09:30, 10:30, 11:30 fit the window; 12:30+1h would exceed it.
	assert.Len(t, slots, 3)
	assert.Equal(t, "09:30", slots[0].Start)
	assert.Equal(t, "12:30", slots[2].End)
}

func TestComputeSlotsEmptyIntersection(t *testing.T) {
	c := courtWith(weekdayAvail(1, models.TimeRange{Start: "08:00", End: "10:00"}), nil)

	slots, err := ComputeSlots(c, monday, "10:00", "12:00")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeSlotsPricingTieBreak(t *testing.T) {
	c := courtWith(
		weekdayAvail(1, models.TimeRange{Start: "08:00", End: "09:00"}),
		[]models.PricingRule{
			{DayType: "weekday", TimeSlot: models.TimeRange{Start: "07:00", End: "10:00"}, PricePerHour: 90000, IsActive: true},
			{DayType: "weekday", TimeSlot: models.TimeRange{Start: "08:00", End: "09:00"}, PricePerHour: 150000, IsActive: true},
		},
	)

	slots, err := ComputeSlots(c, monday, "", "")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, float64(90000), slots[0].Price)
}

func TestComputeSlotsInactiveRulesIgnored(t *testing.T) {
	c := courtWith(
		weekdayAvail(1, models.TimeRange{Start: "08:00", End: "09:00"}),
		[]models.PricingRule{
			{DayType: "weekday", TimeSlot: models.TimeRange{Start: "08:00", End: "09:00"}, PricePerHour: 150000, IsActive: false},
			{DayType: "weekday", TimeSlot: models.TimeRange{Start: "08:00", End: "09:00"}, PricePerHour: 70000, IsActive: true},
		},
	)

	slots, err := ComputeSlots(c, monday, "", "")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, float64(70000), slots[0].Price)
}

func TestComputeSlotsZeroDefaultPrice(t *testing.T) {
	c := courtWith(weekdayAvail(1, models.TimeRange{Start: "08:00", End: "09:00"}), nil)

	slots, err := ComputeSlots(c, monday, "", "")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Zero(t, slots[0].Price)
	assert.Equal(t, "08:00 - 09:00 (0 đ)", slots[0].Label)
}

func TestComputeSlotsWeekendPricingSelection(t *testing.T) {
	c := courtWith(
		weekdayAvail(6, models.TimeRange{Start: "08:00", End: "10:30"}),
		[]models.PricingRule{
			{DayType: "weekday", TimeSlot: models.TimeRange{Start: "08:00", End: "10:00"}, PricePerHour: 100000, IsActive: true},
			{DayType: "weekend", TimeSlot: models.TimeRange{Start: "08:00", End: "10:00"}, PricePerHour: 120000, IsActive: true},
		},
	)

	slots, err := ComputeSlots(c, saturday, "", "")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.Equal(t, float64(120000), s.Price)
	}
}

func TestComputeSlotsOverlappingBlocksNotDeduplicated(t *testing.T) {
	c := courtWith(
		weekdayAvail(1,
			models.TimeRange{Start: "08:00", End: "10:00"},
			models.TimeRange{Start: "09:00", End: "11:00"},
		),
		nil,
	)

	slots, err := ComputeSlots(c, monday, "", "")
	require.NoError(t, err)
	// Blocks are expanded independently: 08-09, 09-10 from the first block,
	// then 09-10, 10-11 from the second. The 09-10 duplicate survives.
	require.Len(t, slots, 4)
	assert.Equal(t, "09:00", slots[1].Start)
	assert.Equal(t, "09:00", slots[2].Start)
}

func TestComputeSlotsMalformedInput(t *testing.T) {
	c := courtWith(weekdayAvail(1, models.TimeRange{Start: "08:00", End: "10:00"}), nil)

	_, err := ComputeSlots(c, monday, "9am", "")
	assert.Error(t, err)

	bad := courtWith(weekdayAvail(1, models.TimeRange{Start: "08:00", End: "25:99"}), nil)
	_, err = ComputeSlots(bad, monday, "", "")
	assert.Error(t, err)
}

func TestComputeSlotsLabelFormat(t *testing.T) {
	c := courtWith(
		weekdayAvail(1, models.TimeRange{Start: "14:00", End: "15:00"}),
		[]models.PricingRule{
			{DayType: "weekday", TimeSlot: models.TimeRange{Start: "14:00", End: "15:00"}, PricePerHour: 150000, IsActive: true},
		},
	)

	slots, err := ComputeSlots(c, monday, "", "")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "14:00 - 15:00 (150,000 đ)", slots[0].Label)
}

func TestFormatVND(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0 đ"},
		{500, "500 đ"},
		{80000, "80,000 đ"},
		{150000, "150,000 đ"},
		{1500000, "1,500,000 đ"},
		{12345678, "12,345,678 đ"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVND(tt.amount))
	}
}
