package scheduling_test

import (
	"testing"

	"servify/models"
	"servify/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateMatchesHoliday(t *testing.T) {
	holidays := []models.Holiday{
		{ID: "h1", Date: "2024-07-04"},
		{ID: "h2", Recurring: true, Month: 12, Day: 25},
	}

	match, err := scheduling.DateMatchesHoliday("2024-07-04", holidays)
	require.NoError(t, err)
	assert.True(t, match)

	// Recurring entries match every year.
	match, err = scheduling.DateMatchesHoliday("2024-12-25", holidays)
	require.NoError(t, err)
	assert.True(t, match)
	match, err = scheduling.DateMatchesHoliday("2031-12-25", holidays)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = scheduling.DateMatchesHoliday("2024-07-05", holidays)
	require.NoError(t, err)
	assert.False(t, match)

	_, err = scheduling.DateMatchesHoliday("not-a-date", holidays)
	assert.Error(t, err)
}

func TestBookingCountsExcludeTerminalStatuses(t *testing.T) {
	repo := newFakeBookingRepo(
		models.Booking{ID: "b1", BusinessID: "biz", ScheduledDate: "2024-06-12", Status: models.BookingStatusPending},
		models.Booking{ID: "b2", BusinessID: "biz", ScheduledDate: "2024-06-12", Status: models.BookingStatusConfirmed},
		models.Booking{ID: "b3", BusinessID: "biz", ScheduledDate: "2024-06-12", Status: models.BookingStatusCompleted},
		models.Booking{ID: "b4", BusinessID: "biz", ScheduledDate: "2024-06-12", Status: models.BookingStatusCancelled},
		models.Booking{ID: "b5", BusinessID: "other", ScheduledDate: "2024-06-12", Status: models.BookingStatusPending},
	)
	gate := &scheduling.CapacityGate{BookingRepo: repo, SettingsRepo: &fakeSettingsRepo{}}

	count, err := gate.GetBookingCountForDate("biz", "2024-06-12")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGetBookingCountForWeekUsesMondayWeek(t *testing.T) {
	// 2024-06-12 is a Wednesday; its week runs Mon 2024-06-10 .. Sun 2024-06-16.
	repo := newFakeBookingRepo(
		models.Booking{ID: "b1", BusinessID: "biz", ScheduledDate: "2024-06-10", Status: models.BookingStatusPending},
		models.Booking{ID: "b2", BusinessID: "biz", ScheduledDate: "2024-06-16", Status: models.BookingStatusPending},
		models.Booking{ID: "b3", BusinessID: "biz", ScheduledDate: "2024-06-09", Status: models.BookingStatusPending},
		models.Booking{ID: "b4", BusinessID: "biz", ScheduledDate: "2024-06-17", Status: models.BookingStatusPending},
	)
	gate := &scheduling.CapacityGate{BookingRepo: repo, SettingsRepo: &fakeSettingsRepo{}}

	count, err := gate.GetBookingCountForWeek("biz", "2024-06-12")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestWithinBookingLimits(t *testing.T) {
	repo := newFakeBookingRepo(
		models.Booking{ID: "b1", BusinessID: "biz", ScheduledDate: "2024-06-12", Status: models.BookingStatusPending},
		models.Booking{ID: "b2", BusinessID: "biz", ScheduledDate: "2024-06-12", Status: models.BookingStatusConfirmed},
	)
	gate := &scheduling.CapacityGate{BookingRepo: repo, SettingsRepo: &fakeSettingsRepo{}}

	ok, err := gate.WithinBookingLimits("biz", "2024-06-12", &models.SchedulingConfig{MaxBookingsPerDay: 3})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gate.WithinBookingLimits("biz", "2024-06-12", &models.SchedulingConfig{MaxBookingsPerDay: 2})
	require.NoError(t, err)
	assert.False(t, ok)

	// Zero ceilings mean unlimited.
	ok, err = gate.WithinBookingLimits("biz", "2024-06-12", &models.SchedulingConfig{})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gate.WithinBookingLimits("biz", "2024-06-12", &models.SchedulingConfig{MaxBookingsPerMonth: 2})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTimeSlotAvailability(t *testing.T) {
	// 2024-06-12 is a Wednesday.
	reserve := &models.ReserveSlotConfig{
		BusinessID: "biz",
		Days: []models.ReserveSlotDay{
			{
				DayOfWeek: "Wednesday",
				Slots: []models.ReserveSlot{
					{Time: "09:00", MaxJobs: 2, DisplayOn: true},
					{Time: "14:00", MaxJobs: 1, DisplayOn: true},
				},
			},
		},
	}
	repo := newFakeBookingRepo(
		models.Booking{ID: "b1", BusinessID: "biz", ScheduledDate: "2024-06-12", ScheduledTime: "9:00 AM", Status: models.BookingStatusConfirmed},
		models.Booking{ID: "b2", BusinessID: "biz", ScheduledDate: "2024-06-12", ScheduledTime: "14:00", Status: models.BookingStatusConfirmed},
	)
	gate := &scheduling.CapacityGate{
		BookingRepo: repo,
		SettingsRepo: &fakeSettingsRepo{
			cfg:     models.SchedulingConfig{SpotLimitsEnabled: true},
			reserve: reserve,
		},
	}

	// One of two 09:00 seats taken; the 12-hour form counts against it.
	available, err := gate.IsTimeSlotAvailableForBooking("biz", "2024-06-12", "09:00")
	require.NoError(t, err)
	assert.True(t, available)

	// The single 14:00 seat is taken.
	available, err = gate.IsTimeSlotAvailableForBooking("biz", "2024-06-12", "2:00 PM")
	require.NoError(t, err)
	assert.False(t, available)

	// A time with no slot entry carries no limit.
	available, err = gate.IsTimeSlotAvailableForBooking("biz", "2024-06-12", "16:00")
	require.NoError(t, err)
	assert.True(t, available)

	// A day with no slot entries carries no limit. 2024-06-13 is a Thursday.
	available, err = gate.IsTimeSlotAvailableForBooking("biz", "2024-06-13", "14:00")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestTimeSlotAvailabilityNoConfig(t *testing.T) {
	gate := &scheduling.CapacityGate{
		BookingRepo: newFakeBookingRepo(),
		SettingsRepo: &fakeSettingsRepo{
			cfg:     models.SchedulingConfig{SpotLimitsEnabled: true},
			reserve: nil,
		},
	}
	available, err := gate.IsTimeSlotAvailableForBooking("biz", "2024-06-12", "09:00")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestTimeSlotAvailabilitySpotLimitsDisabled(t *testing.T) {
	// The slot below is full, but the tenant has spot limits switched off, so
	// the reserve-slot config is ignored entirely.
	reserve := &models.ReserveSlotConfig{
		BusinessID: "biz",
		Days: []models.ReserveSlotDay{
			{DayOfWeek: "Wednesday", Slots: []models.ReserveSlot{{Time: "09:00", MaxJobs: 1}}},
		},
	}
	repo := newFakeBookingRepo(
		models.Booking{ID: "b1", BusinessID: "biz", ScheduledDate: "2024-06-12", ScheduledTime: "09:00", Status: models.BookingStatusConfirmed},
	)
	gate := &scheduling.CapacityGate{
		BookingRepo:  repo,
		SettingsRepo: &fakeSettingsRepo{reserve: reserve},
	}

	available, err := gate.IsTimeSlotAvailableForBooking("biz", "2024-06-12", "09:00")
	require.NoError(t, err)
	assert.True(t, available)
}
