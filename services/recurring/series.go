package recurring

import (
	"fmt"

	"servify/models"
	"servify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Default lookahead window when a series does not specify one.
const defaultOccurrencesAhead = 4

// CreateSeries persists one series row plus its initial occurrence bookings.
// Each materialized booking re-enters the scheduling path downstream when
// assignment is requested; nothing is assigned here.
func (s *DefaultRecurringService) CreateSeries(businessID string, input CreateSeriesInput) (*CreateSeriesResult, error) {
	if input.StartDate == "" {
		return nil, fmt.Errorf("start date is required")
	}
	if input.FrequencyName == "" {
		return nil, fmt.Errorf("frequency name is required")
	}
	ahead := input.OccurrencesAhead
	if ahead <= 0 {
		ahead = defaultOccurrencesAhead
	}
	repeats := input.FrequencyRepeats
	if repeats < 1 {
		repeats = 1
	}

	cfg, err := s.SettingsRepo.GetSchedulingConfig(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scheduling config: %w", err)
	}

	now := s.now().UTC()
	series := &models.RecurringSeries{
		ID:               uuid.New().String(),
		BusinessID:       businessID,
		ServiceID:        input.ServiceID,
		CustomerName:     input.CustomerName,
		CustomerEmail:    input.CustomerEmail,
		Address:          input.Address,
		ScheduledTime:    input.ScheduledTime,
		DurationMinutes:  input.DurationMinutes,
		TotalPrice:       input.TotalPrice,
		ProviderWage:     input.ProviderWage,
		ProviderWageType: input.ProviderWageType,
		ProviderID:       input.ProviderID,
		Frequency:        input.FrequencyName,
		FrequencyRepeats: repeats,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		OccurrencesAhead: ahead,
		SameProvider:     input.SameProvider,
		Status:           models.SeriesStatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	dates, err := OccurrenceDates(businessID, series.StartDate, series.Frequency, series.FrequencyRepeats,
		ahead, series.EndDate, cfg.HolidaySkipToNext, s.Holidays)
	if err != nil {
		return nil, fmt.Errorf("failed to compute occurrence dates: %w", err)
	}

	if err := s.SeriesRepo.Create(series); err != nil {
		return nil, fmt.Errorf("failed to create series: %w", err)
	}

	bookings := s.materializeBookings(series, dates)
	if err := s.BookingRepo.CreateMany(bookings); err != nil {
		return nil, fmt.Errorf("failed to create series bookings: %w", err)
	}

	ids := make([]string, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}
	utils.GetLogger().Info("recurring series created",
		zap.String("seriesId", series.ID),
		zap.String("businessId", businessID),
		zap.String("frequency", series.Frequency),
		zap.Int("bookings", len(ids)),
	)
	return &CreateSeriesResult{SeriesID: series.ID, BookingIDs: ids}, nil
}

// ExtendSeries keeps the rolling lookahead: count the series' future bookings
// and generate only the deficit, continuing from the latest existing date.
// Never creates bookings beyond the series end date.
func (s *DefaultRecurringService) ExtendSeries(businessID, seriesID string) (int, error) {
	series, err := s.SeriesRepo.GetByID(businessID, seriesID)
	if err != nil {
		return 0, fmt.Errorf("failed to load series: %w", err)
	}
	if series.Status != models.SeriesStatusActive {
		return 0, nil
	}
	ahead := series.OccurrencesAhead
	if ahead <= 0 {
		ahead = defaultOccurrencesAhead
	}

	today := s.now().Format(dateLayout)
	future, err := s.BookingRepo.CountInSeriesAfter(businessID, seriesID, today)
	if err != nil {
		return 0, fmt.Errorf("failed to count future bookings: %w", err)
	}
	deficit := ahead - future
	if deficit <= 0 {
		return 0, nil
	}

	cfg, err := s.SettingsRepo.GetSchedulingConfig(businessID)
	if err != nil {
		return 0, fmt.Errorf("failed to load scheduling config: %w", err)
	}

	latest, err := s.BookingRepo.LatestDateInSeries(businessID, seriesID)
	if err != nil {
		return 0, fmt.Errorf("failed to find latest series booking: %w", err)
	}

	dates, err := s.continuationDates(series, latest, today, deficit, cfg.HolidaySkipToNext)
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	bookings := s.materializeBookings(series, dates)
	if err := s.BookingRepo.CreateMany(bookings); err != nil {
		return 0, fmt.Errorf("failed to create series bookings: %w", err)
	}

	utils.GetLogger().Info("recurring series extended",
		zap.String("seriesId", seriesID),
		zap.String("businessId", businessID),
		zap.Int("created", len(bookings)),
	)
	return len(bookings), nil
}

// ExtendAllSeries extends every active series of a tenant. Invoked on demand
// by the triggering request; there is no background scheduler.
func (s *DefaultRecurringService) ExtendAllSeries(businessID string) (*ExtendAllResult, error) {
	active, err := s.SeriesRepo.ListActive(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active series: %w", err)
	}

	result := &ExtendAllResult{}
	for _, series := range active {
		created, err := s.ExtendSeries(businessID, series.ID)
		if err != nil {
			utils.GetLogger().Warn("series extension failed",
				zap.String("seriesId", series.ID), zap.Error(err))
			continue
		}
		if created > 0 {
			result.Extended++
			result.TotalCreated += created
		}
	}
	return result, nil
}

// continuationDates yields up to count future dates for a series, starting
// after the latest existing booking (or from the series start when empty).
func (s *DefaultRecurringService) continuationDates(series *models.RecurringSeries, latest, today string, count int, skipHolidays bool) ([]string, error) {
	current := latest
	if current == "" {
		// No bookings yet: seed from the series start, advancing into the future.
		current = series.StartDate
		if current > today {
			dates, err := OccurrenceDates(series.BusinessID, current, series.Frequency, series.FrequencyRepeats,
				count, series.EndDate, skipHolidays, s.Holidays)
			if err != nil {
				return nil, err
			}
			return dates, nil
		}
	}

	var dates []string
	for len(dates) < count {
		next, err := NextOccurrenceDate(series.BusinessID, current, series.Frequency, series.FrequencyRepeats,
			skipHolidays, s.Holidays)
		if err != nil {
			return nil, err
		}
		current = next
		if series.EndDate != "" && current > series.EndDate {
			break
		}
		if current <= today {
			continue
		}
		dates = append(dates, current)
	}
	return dates, nil
}

// materializeBookings stamps pending bookings from the series template. The
// provider binding is copied only when the series pins a single provider.
func (s *DefaultRecurringService) materializeBookings(series *models.RecurringSeries, dates []string) []models.Booking {
	now := s.now().UTC()
	bookings := make([]models.Booking, 0, len(dates))
	for _, date := range dates {
		b := models.Booking{
			ID:                uuid.New().String(),
			BusinessID:        series.BusinessID,
			ServiceID:         series.ServiceID,
			CustomerName:      series.CustomerName,
			CustomerEmail:     series.CustomerEmail,
			Address:           series.Address,
			ScheduledDate:     date,
			ScheduledTime:     series.ScheduledTime,
			DurationMinutes:   series.DurationMinutes,
			Status:            models.BookingStatusPending,
			RecurringSeriesID: series.ID,
			TotalPrice:        series.TotalPrice,
			ProviderWage:      series.ProviderWage,
			ProviderWageType:  series.ProviderWageType,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if series.SameProvider {
			b.ProviderID = series.ProviderID
		}
		bookings = append(bookings, b)
	}
	return bookings
}
