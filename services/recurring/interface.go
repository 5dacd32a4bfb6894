package recurring

import (
	"time"

	"servify/database/repository"
)

// CreateSeriesInput is the template plus frequency settings for a new series.
type CreateSeriesInput struct {
	ServiceID        string  `json:"serviceId,omitempty"`
	CustomerName     string  `json:"customerName,omitempty"`
	CustomerEmail    string  `json:"customerEmail,omitempty"`
	Address          string  `json:"address,omitempty"`
	ScheduledTime    string  `json:"scheduledTime,omitempty"`
	DurationMinutes  int     `json:"durationMinutes,omitempty"`
	TotalPrice       float64 `json:"totalPrice,omitempty"`
	ProviderWage     float64 `json:"providerWage,omitempty"`
	ProviderWageType string  `json:"providerWageType,omitempty"`
	ProviderID       string  `json:"providerId,omitempty"`
	StartDate        string  `json:"startDate"`
	EndDate          string  `json:"endDate,omitempty"`
	FrequencyName    string  `json:"frequencyName"`
	FrequencyRepeats int     `json:"frequencyRepeats,omitempty"`
	OccurrencesAhead int     `json:"occurrencesAhead,omitempty"`
	SameProvider     bool    `json:"sameProvider,omitempty"`
}

// CreateSeriesResult reports the persisted series and its materialized bookings.
type CreateSeriesResult struct {
	SeriesID   string   `json:"seriesId"`
	BookingIDs []string `json:"bookingIds"`
}

// ExtendAllResult summarizes an extend-all run over a tenant's active series.
type ExtendAllResult struct {
	Extended     int `json:"extended"`
	TotalCreated int `json:"totalCreated"`
}

// RecurringService materializes and maintains recurring booking series.
type RecurringService interface {
	CreateSeries(businessID string, input CreateSeriesInput) (*CreateSeriesResult, error)

	// ExtendSeries tops the series back up to its lookahead window, creating
	// only the deficit. Returns how many bookings were created.
	ExtendSeries(businessID, seriesID string) (int, error)

	// ExtendAllSeries runs ExtendSeries for every active series of a tenant.
	ExtendAllSeries(businessID string) (*ExtendAllResult, error)
}

// DefaultRecurringService implements RecurringService.
type DefaultRecurringService struct {
	SeriesRepo   repository.SeriesRepository
	BookingRepo  repository.BookingRepository
	SettingsRepo repository.SettingsRepository
	Holidays     HolidayChecker

	// Now overrides the clock in tests. Nil = time.Now.
	Now func() time.Time
}

func (s *DefaultRecurringService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
