package earnings_test

import (
	"fmt"
	"testing"
	"time"

	"servify/models"
	"servify/services/earnings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func (r *fakeBookingRepo) GetByID(businessID, bookingID string) (*models.Booking, error) {
	b, ok := r.bookings[bookingID]
	if !ok || b.BusinessID != businessID {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) Create(b *models.Booking) error       { return nil }
func (r *fakeBookingRepo) CreateMany(bs []models.Booking) error { return nil }
func (r *fakeBookingRepo) ClaimForAssignment(businessID, bookingID, providerID string) (bool, error) {
	return false, nil
}
func (r *fakeBookingRepo) CountInDateRange(businessID, from, to string) (int, error) { return 0, nil }
func (r *fakeBookingRepo) ListActiveForDate(businessID, date string) ([]models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) CountInSeriesAfter(businessID, seriesID, date string) (int, error) {
	return 0, nil
}
func (r *fakeBookingRepo) LatestDateInSeries(businessID, seriesID string) (string, error) {
	return "", nil
}

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func (r *fakeProviderRepo) GetByID(businessID, providerID string) (*models.Provider, error) {
	p, ok := r.providers[providerID]
	if !ok || p.BusinessID != businessID {
		return nil, fmt.Errorf("provider %s not found", providerID)
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProviderRepo) ListActive(businessID string) ([]models.Provider, error) { return nil, nil }
func (r *fakeProviderRepo) ListAll(businessID string) ([]models.Provider, error)    { return nil, nil }

type fakeEarningsRepo struct {
	records map[string]*models.Earnings // keyed by booking ID
}

func (r *fakeEarningsRepo) Create(e *models.Earnings) error {
	cp := *e
	r.records[e.BookingID] = &cp
	return nil
}

func (r *fakeEarningsRepo) GetByBooking(businessID, bookingID string) (*models.Earnings, error) {
	e, ok := r.records[bookingID]
	if !ok || e.BusinessID != businessID {
		return nil, fmt.Errorf("no earnings for booking %s", bookingID)
	}
	cp := *e
	return &cp, nil
}

func newEarningsService(bookings []models.Booking, providers []models.Provider) (*earnings.DefaultEarningsService, *fakeEarningsRepo) {
	br := &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
	for i := range bookings {
		b := bookings[i]
		br.bookings[b.ID] = &b
	}
	pr := &fakeProviderRepo{providers: make(map[string]*models.Provider)}
	for i := range providers {
		p := providers[i]
		pr.providers[p.ID] = &p
	}
	er := &fakeEarningsRepo{records: make(map[string]*models.Earnings)}
	svc := &earnings.DefaultEarningsService{
		BookingRepo:  br,
		ProviderRepo: pr,
		EarningsRepo: er,
		Now: func() time.Time {
			return time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
		},
	}
	return svc, er
}

func completedBooking(mods ...func(*models.Booking)) models.Booking {
	b := models.Booking{
		ID:              "b1",
		BusinessID:      "biz",
		ServiceID:       "cleaning",
		ProviderID:      "p1",
		ScheduledDate:   "2024-06-10",
		DurationMinutes: 60,
		Status:          models.BookingStatusCompleted,
		TotalPrice:      200,
	}
	for _, m := range mods {
		m(&b)
	}
	return b
}

func TestFinalizeBookingOverrideWins(t *testing.T) {
	// A per-booking wage override beats the provider's own default rate.
	booking := completedBooking(func(b *models.Booking) {
		b.ProviderWageType = models.PayRateFixed
		b.ProviderWage = 75
	})
	provider := models.Provider{
		ID: "p1", BusinessID: "biz",
		PayRates: []models.ServicePayRate{{ServiceID: "cleaning", RateType: models.PayRatePercentage, Amount: 50}},
	}
	svc, _ := newEarningsService([]models.Booking{booking}, []models.Provider{provider})

	record, err := svc.FinalizeBookingEarnings("biz", "b1")
	require.NoError(t, err)
	assert.Equal(t, models.RateSourceBookingOverride, record.RateSource)
	assert.Equal(t, models.PayRateFixed, record.PayRateType)
	assert.Equal(t, 75.0, record.NetAmount)
	assert.Equal(t, 125.0, record.CommissionAmount)
	assert.Equal(t, 200.0, record.GrossAmount)
}

func TestFinalizeProviderDefaultRate(t *testing.T) {
	provider := models.Provider{
		ID: "p1", BusinessID: "biz",
		PayRates: []models.ServicePayRate{{ServiceID: "cleaning", RateType: models.PayRatePercentage, Amount: 50}},
	}
	svc, _ := newEarningsService([]models.Booking{completedBooking()}, []models.Provider{provider})

	record, err := svc.FinalizeBookingEarnings("biz", "b1")
	require.NoError(t, err)
	assert.Equal(t, models.RateSourceProviderDefault, record.RateSource)
	assert.Equal(t, 100.0, record.NetAmount)
	assert.Equal(t, 100.0, record.CommissionAmount)
}

func TestFinalizeCommissionDefault(t *testing.T) {
	// No override, no provider rate for the service: the 20/80 split applies.
	svc, _ := newEarningsService(
		[]models.Booking{completedBooking()},
		[]models.Provider{{ID: "p1", BusinessID: "biz"}},
	)

	record, err := svc.FinalizeBookingEarnings("biz", "b1")
	require.NoError(t, err)
	assert.Equal(t, models.RateSourceCommissionDefault, record.RateSource)
	assert.Equal(t, models.PayRatePercentage, record.PayRateType)
	assert.Equal(t, 160.0, record.NetAmount)
	assert.Equal(t, 40.0, record.CommissionAmount)
}

func TestFinalizeHourlyUsesDuration(t *testing.T) {
	booking := completedBooking(func(b *models.Booking) {
		b.ProviderWageType = models.PayRateHourly
		b.ProviderWage = 40
		b.DurationMinutes = 90
		b.Notes = "probably 5 hours" // ignored while the structured field is set
	})
	svc, _ := newEarningsService([]models.Booking{booking}, nil)

	record, err := svc.FinalizeBookingEarnings("biz", "b1")
	require.NoError(t, err)
	assert.Equal(t, models.RateSourceBookingOverride, record.RateSource)
	assert.Equal(t, 60.0, record.NetAmount) // 40 * 1.5h
}

func TestFinalizeHourlyNotesFallback(t *testing.T) {
	booking := completedBooking(func(b *models.Booking) {
		b.ProviderWageType = models.PayRateHourly
		b.ProviderWage = 40
		b.DurationMinutes = 0
		b.Notes = "Deep clean, 2.5 hrs agreed with customer"
	})
	svc, _ := newEarningsService([]models.Booking{booking}, nil)

	record, err := svc.FinalizeBookingEarnings("biz", "b1")
	require.NoError(t, err)
	assert.Equal(t, models.RateSourceNotesRegexFallback, record.RateSource)
	assert.Equal(t, 100.0, record.NetAmount) // 40 * 2.5h
}

func TestFinalizeHourlyNoDurationNoNotes(t *testing.T) {
	booking := completedBooking(func(b *models.Booking) {
		b.ProviderWageType = models.PayRateHourly
		b.ProviderWage = 40
		b.DurationMinutes = 0
	})
	svc, _ := newEarningsService([]models.Booking{booking}, nil)

	record, err := svc.FinalizeBookingEarnings("biz", "b1")
	require.NoError(t, err)
	// One hour assumed when nothing else is known.
	assert.Equal(t, models.RateSourceNotesRegexFallback, record.RateSource)
	assert.Equal(t, 40.0, record.NetAmount)
}

func TestFinalizeNetClampedToGross(t *testing.T) {
	booking := completedBooking(func(b *models.Booking) {
		b.ProviderWageType = models.PayRateFixed
		b.ProviderWage = 500 // more than the 200 gross
	})
	svc, _ := newEarningsService([]models.Booking{booking}, nil)

	record, err := svc.FinalizeBookingEarnings("biz", "b1")
	require.NoError(t, err)
	assert.Equal(t, 200.0, record.NetAmount)
	assert.Zero(t, record.CommissionAmount)
}

func TestFinalizeIsIdempotent(t *testing.T) {
	svc, repo := newEarningsService(
		[]models.Booking{completedBooking()},
		[]models.Provider{{ID: "p1", BusinessID: "biz"}},
	)

	first, err := svc.FinalizeBookingEarnings("biz", "b1")
	require.NoError(t, err)
	second, err := svc.FinalizeBookingEarnings("biz", "b1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.records, 1)
}

func TestFinalizeRejectsUnfinishedOrUnassigned(t *testing.T) {
	pending := completedBooking(func(b *models.Booking) {
		b.Status = models.BookingStatusConfirmed
	})
	unassigned := completedBooking(func(b *models.Booking) {
		b.ID = "b2"
		b.ProviderID = ""
	})
	svc, _ := newEarningsService([]models.Booking{pending, unassigned}, nil)

	_, err := svc.FinalizeBookingEarnings("biz", "b1")
	assert.Error(t, err)
	_, err = svc.FinalizeBookingEarnings("biz", "b2")
	assert.Error(t, err)
	_, err = svc.FinalizeBookingEarnings("biz", "missing")
	assert.Error(t, err)
}
