package availability

import (
	"errors"
	"fmt"
	"testing"

	"tableBooker/internal/config"
	"tableBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = "2026-03-14"

func defaultConfig() config.Restaurant {
	return config.Restaurant{
		OpeningTime:     "10:00",
		ClosingTime:     "22:00",
		BookingDuration: 90,
		MaxCapacity:     50,
		SlotGranularity: 30,
	}
}

// fakeSource mimics the store contract: non-cancelled bookings on a date,
// with one id optionally excluded.
type fakeSource struct {
	bookings []models.Booking
	err      error
}

func (f *fakeSource) ActiveBookingsForDate(date string, excludeID int64) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}

	var result []models.Booking
	for _, b := range f.bookings {
		if b.Date != date || b.Status == models.StatusCancelled || b.ID == excludeID {
			continue
		}
		result = append(result, b)
	}

	return result, nil
}

func newEngine(t *testing.T, cfg config.Restaurant, source BookingSource) *Engine {
	t.Helper()

	engine, err := New(cfg, source)
	require.NoError(t, err)

	return engine
}

func TestNew(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(cfg *config.Restaurant)
		wantErr bool
	}{
		{
			name:   "Valid config",
			mutate: func(cfg *config.Restaurant) {},
		},
		{
			name:    "Bad opening time",
			mutate:  func(cfg *config.Restaurant) { cfg.OpeningTime = "ten" },
			wantErr: true,
		},
		{
			name:    "Bad closing time",
			mutate:  func(cfg *config.Restaurant) { cfg.ClosingTime = "25:00" },
			wantErr: true,
		},
		{
			name:    "Closing before opening",
			mutate:  func(cfg *config.Restaurant) { cfg.ClosingTime = "09:00" },
			wantErr: true,
		},
		{
			name:    "Zero capacity",
			mutate:  func(cfg *config.Restaurant) { cfg.MaxCapacity = 0 },
			wantErr: true,
		},
		{
			name:    "Zero granularity",
			mutate:  func(cfg *config.Restaurant) { cfg.SlotGranularity = 0 },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tc.mutate(&cfg)

			_, err := New(cfg, &fakeSource{})
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsSlotAvailable_WorkingHours(t *testing.T) {
	t.Parallel()

	engine := newEngine(t, defaultConfig(), &fakeSource{})

	testCases := []struct {
		time      string
		available bool
	}{
		{"09:59", false},
		{"09:00", false},
		{"10:00", true},
		{"12:30", true},
		{"21:30", true},
		{"21:59", true},
		// a seating may not begin at or after closing
		{"22:00", false},
		{"22:30", false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.time, func(t *testing.T) {
			t.Parallel()

			available, err := engine.IsSlotAvailable(testDate, tc.time, 2, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.available, available)
		})
	}
}

func TestIsSlotAvailable_InvalidTime(t *testing.T) {
	t.Parallel()

	engine := newEngine(t, defaultConfig(), &fakeSource{})

	_, err := engine.IsSlotAvailable(testDate, "not-a-time", 2, 0)
	assert.Error(t, err)
}

func TestIsSlotAvailable_CapacityWindow(t *testing.T) {
	t.Parallel()

	// booking A: [10:00, 11:30) for 30 guests
	source := &fakeSource{bookings: []models.Booking{
		{ID: 1, Date: testDate, Time: "10:00", Guests: 30, Status: models.StatusPending},
	}}

	engine := newEngine(t, defaultConfig(), source)

	// B starts exactly where A ends: half-open windows do not overlap
	available, err := engine.IsSlotAvailable(testDate, "11:30", 30, 0)
	require.NoError(t, err)
	assert.True(t, available, "back-to-back booking must not count against the previous window")

	// C at 11:00 overlaps A: 30 + 25 = 55 > 50
	available, err = engine.IsSlotAvailable(testDate, "11:00", 25, 0)
	require.NoError(t, err)
	assert.False(t, available, "overlapping booking exceeding capacity must be rejected")

	// C shrunk to 20 guests fits: 30 + 20 = 50
	available, err = engine.IsSlotAvailable(testDate, "11:00", 20, 0)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsSlotAvailable_SumsAllOverlapping(t *testing.T) {
	t.Parallel()

	source := &fakeSource{bookings: []models.Booking{
		{ID: 1, Date: testDate, Time: "12:00", Guests: 20, Status: models.StatusConfirmed},
		{ID: 2, Date: testDate, Time: "12:30", Guests: 20, Status: models.StatusPending},
		{ID: 3, Date: testDate, Time: "18:00", Guests: 20, Status: models.StatusPending},
	}}

	engine := newEngine(t, defaultConfig(), source)

	// 12:45 overlaps both lunch bookings (load 40), not the dinner one
	available, err := engine.IsSlotAvailable(testDate, "12:45", 11, 0)
	require.NoError(t, err)
	assert.False(t, available)

	available, err = engine.IsSlotAvailable(testDate, "12:45", 10, 0)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsSlotAvailable_IgnoresCancelledAndOtherDates(t *testing.T) {
	t.Parallel()

	source := &fakeSource{bookings: []models.Booking{
		{ID: 1, Date: testDate, Time: "12:00", Guests: 50, Status: models.StatusCancelled},
		{ID: 2, Date: "2026-03-15", Time: "12:00", Guests: 50, Status: models.StatusPending},
	}}

	engine := newEngine(t, defaultConfig(), source)

	available, err := engine.IsSlotAvailable(testDate, "12:00", 20, 0)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsSlotAvailable_ExcludesOwnBooking(t *testing.T) {
	t.Parallel()

	source := &fakeSource{bookings: []models.Booking{
		{ID: 7, Date: testDate, Time: "12:00", Guests: 50, Status: models.StatusPending},
	}}

	engine := newEngine(t, defaultConfig(), source)

	// without exclusion the day is full
	available, err := engine.IsSlotAvailable(testDate, "12:00", 1, 0)
	require.NoError(t, err)
	assert.False(t, available)

	// an edit of booking 7 must not collide with itself
	available, err = engine.IsSlotAvailable(testDate, "12:00", 50, 7)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsSlotAvailable_SourceError(t *testing.T) {
	t.Parallel()

	engine := newEngine(t, defaultConfig(), &fakeSource{err: errors.New("connection refused")})

	_, err := engine.IsSlotAvailable(testDate, "12:00", 2, 0)
	assert.Error(t, err)
}

func TestListSlots_FullDay(t *testing.T) {
	t.Parallel()

	engine := newEngine(t, defaultConfig(), &fakeSource{})

	slots, err := engine.ListSlots(testDate, 2)
	require.NoError(t, err)

	// 10:00 .. 21:30 every 30 minutes
	require.Len(t, slots, 24)
	assert.Equal(t, "10:00", slots[0].Time)
	assert.Equal(t, "21:30", slots[len(slots)-1].Time)

	for i := 1; i < len(slots); i++ {
		assert.Greater(t, slots[i].Time, slots[i-1].Time, "slots must be in ascending order")
	}

	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}

func TestListSlots_MatchesIsSlotAvailable(t *testing.T) {
	t.Parallel()

	source := &fakeSource{bookings: []models.Booking{
		{ID: 1, Date: testDate, Time: "12:00", Guests: 45, Status: models.StatusConfirmed},
		{ID: 2, Date: testDate, Time: "19:00", Guests: 40, Status: models.StatusPending},
	}}

	engine := newEngine(t, defaultConfig(), source)

	slots, err := engine.ListSlots(testDate, 10)
	require.NoError(t, err)
	require.Len(t, slots, 24)

	for _, slot := range slots {
		available, err := engine.IsSlotAvailable(testDate, slot.Time, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, available, slot.Available, fmt.Sprintf("slot %s disagrees with IsSlotAvailable", slot.Time))
	}

	// the 45-guest booking occupies [12:00, 13:30)
	bySlot := make(map[string]bool, len(slots))
	for _, slot := range slots {
		bySlot[slot.Time] = slot.Available
	}

	assert.True(t, bySlot["10:30"])
	assert.False(t, bySlot["11:00"], "11:00 window reaches into the 12:00 booking")
	assert.False(t, bySlot["12:00"])
	assert.False(t, bySlot["13:00"])
	assert.True(t, bySlot["13:30"])
}

func TestListSlots_CustomHours(t *testing.T) {
	t.Parallel()

	cfg := config.Restaurant{
		OpeningTime:     "09:00",
		ClosingTime:     "11:00",
		BookingDuration: 60,
		MaxCapacity:     10,
		SlotGranularity: 60,
	}

	engine := newEngine(t, cfg, &fakeSource{})

	slots, err := engine.ListSlots(testDate, 3)
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "10:00", slots[1].Time)
}

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	minutes, err := ParseTimeOfDay("13:45")
	require.NoError(t, err)
	assert.Equal(t, 13*60+45, minutes)

	_, err = ParseTimeOfDay("24:00")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("")
	assert.Error(t, err)
}
