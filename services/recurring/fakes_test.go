package recurring_test

import (
	"fmt"
	"sync"

	"servify/models"
)

// In-memory fakes for the series and booking stores.

type fakeSeriesRepo struct {
	series map[string]*models.RecurringSeries
}

func newFakeSeriesRepo(series ...models.RecurringSeries) *fakeSeriesRepo {
	repo := &fakeSeriesRepo{series: make(map[string]*models.RecurringSeries)}
	for i := range series {
		s := series[i]
		repo.series[s.ID] = &s
	}
	return repo
}

func (r *fakeSeriesRepo) Create(s *models.RecurringSeries) error {
	cp := *s
	r.series[s.ID] = &cp
	return nil
}

func (r *fakeSeriesRepo) GetByID(businessID, seriesID string) (*models.RecurringSeries, error) {
	s, ok := r.series[seriesID]
	if !ok || s.BusinessID != businessID {
		return nil, fmt.Errorf("series %s not found", seriesID)
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSeriesRepo) ListActive(businessID string) ([]models.RecurringSeries, error) {
	var out []models.RecurringSeries
	for _, s := range r.series {
		if s.BusinessID == businessID && s.Status == models.SeriesStatusActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSeriesRepo) UpdateStatus(businessID, seriesID, status string) error {
	s, ok := r.series[seriesID]
	if !ok || s.BusinessID != businessID {
		return fmt.Errorf("series %s not found", seriesID)
	}
	s.Status = status
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo(bookings ...models.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
	for i := range bookings {
		b := bookings[i]
		repo.bookings[b.ID] = &b
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(businessID, bookingID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok || b.BusinessID != businessID {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) CreateMany(bookings []models.Booking) error {
	for i := range bookings {
		if err := r.Create(&bookings[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeBookingRepo) ClaimForAssignment(businessID, bookingID, providerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok || b.BusinessID != businessID {
		return false, fmt.Errorf("booking %s not found", bookingID)
	}
	if b.ProviderID != "" {
		return false, nil
	}
	b.ProviderID = providerID
	b.Status = models.BookingStatusConfirmed
	return true, nil
}

func (r *fakeBookingRepo) CountInDateRange(businessID, from, to string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, b := range r.bookings {
		if b.BusinessID == businessID && b.CountsAgainstLimits() &&
			b.ScheduledDate >= from && b.ScheduledDate <= to {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) ListActiveForDate(businessID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BusinessID == businessID && b.CountsAgainstLimits() && b.ScheduledDate == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CountInSeriesAfter(businessID, seriesID, date string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, b := range r.bookings {
		if b.BusinessID == businessID && b.RecurringSeriesID == seriesID &&
			b.Status != models.BookingStatusCancelled && b.ScheduledDate > date {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) LatestDateInSeries(businessID, seriesID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	latest := ""
	for _, b := range r.bookings {
		if b.BusinessID == businessID && b.RecurringSeriesID == seriesID && b.ScheduledDate > latest {
			latest = b.ScheduledDate
		}
	}
	return latest, nil
}

// inSeries lists the stored dates for a series, unsorted.
func (r *fakeBookingRepo) datesInSeries(seriesID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, b := range r.bookings {
		if b.RecurringSeriesID == seriesID {
			out = append(out, b.ScheduledDate)
		}
	}
	return out
}

type fakeSettingsRepo struct {
	cfg      models.SchedulingConfig
	holidays []models.Holiday
	reserve  *models.ReserveSlotConfig
}

func (r *fakeSettingsRepo) GetSchedulingConfig(businessID string) (*models.SchedulingConfig, error) {
	cfg := r.cfg
	cfg.BusinessID = businessID
	return &cfg, nil
}

func (r *fakeSettingsRepo) ListHolidays(businessID string) ([]models.Holiday, error) {
	return r.holidays, nil
}

func (r *fakeSettingsRepo) GetReserveSlotConfig(businessID string) (*models.ReserveSlotConfig, error) {
	return r.reserve, nil
}

// fakeHolidayChecker marks fixed dates (or every date) as holidays.
type fakeHolidayChecker struct {
	dates  map[string]bool
	always bool
}

func (f *fakeHolidayChecker) IsDateHoliday(businessID, date string) (bool, error) {
	if f.always {
		return true, nil
	}
	return f.dates[date], nil
}
