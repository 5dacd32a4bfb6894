package scheduling

import (
	"fmt"
	"time"

	"servify/database/repository"
	"servify/models"
	"servify/utils"
)

const dateLayout = "2006-01-02"

// CapacityGate answers the read-side capacity questions: holidays, booking
// count ceilings and reserve-slot limits. It performs no writes.
type CapacityGate struct {
	BookingRepo  repository.BookingRepository
	SettingsRepo repository.SettingsRepository
}

// IsDateHoliday reports whether the date falls on a tenant holiday, matching
// either an exact date or a recurring month+day entry.
func (g *CapacityGate) IsDateHoliday(businessID, date string) (bool, error) {
	holidays, err := g.SettingsRepo.ListHolidays(businessID)
	if err != nil {
		return false, fmt.Errorf("failed to load holidays: %w", err)
	}
	return DateMatchesHoliday(date, holidays)
}

// DateMatchesHoliday checks one date against a holiday list.
func DateMatchesHoliday(date string, holidays []models.Holiday) (bool, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", date, err)
	}
	for _, h := range holidays {
		if h.Recurring {
			if int(day.Month()) == h.Month && day.Day() == h.Day {
				return true, nil
			}
			continue
		}
		if h.Date == date {
			return true, nil
		}
	}
	return false, nil
}

// GetBookingCountForDate counts capacity-occupying bookings on a single date.
func (g *CapacityGate) GetBookingCountForDate(businessID, date string) (int, error) {
	return g.BookingRepo.CountInDateRange(businessID, date, date)
}

// GetBookingCountForWeek counts capacity-occupying bookings in the Monday-based
// week containing the date.
func (g *CapacityGate) GetBookingCountForWeek(businessID, date string) (int, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	weekStart := day.AddDate(0, 0, -offset)
	weekEnd := weekStart.AddDate(0, 0, 6)
	return g.BookingRepo.CountInDateRange(businessID, weekStart.Format(dateLayout), weekEnd.Format(dateLayout))
}

// GetBookingCountForMonth counts capacity-occupying bookings in the calendar
// month containing the date.
func (g *CapacityGate) GetBookingCountForMonth(businessID, date string) (int, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	return g.BookingRepo.CountInDateRange(businessID, monthStart.Format(dateLayout), monthEnd.Format(dateLayout))
}

// WithinBookingLimits checks the tenant's day/week/month ceilings for one more
// booking on the date. A zero ceiling means unlimited.
func (g *CapacityGate) WithinBookingLimits(businessID, date string, cfg *models.SchedulingConfig) (bool, error) {
	if cfg.MaxBookingsPerDay > 0 {
		count, err := g.GetBookingCountForDate(businessID, date)
		if err != nil {
			return false, err
		}
		if count >= cfg.MaxBookingsPerDay {
			return false, nil
		}
	}
	if cfg.MaxBookingsPerWeek > 0 {
		count, err := g.GetBookingCountForWeek(businessID, date)
		if err != nil {
			return false, err
		}
		if count >= cfg.MaxBookingsPerWeek {
			return false, nil
		}
	}
	if cfg.MaxBookingsPerMonth > 0 {
		count, err := g.GetBookingCountForMonth(businessID, date)
		if err != nil {
			return false, err
		}
		if count >= cfg.MaxBookingsPerMonth {
			return false, nil
		}
	}
	return true, nil
}

// IsTimeSlotAvailableForBooking checks the reserve-slot limits for a date and
// time. Tenants with spot limits disabled keep every slot open. A day or time
// with no configured slot entry carries no limit; only an exact slot match at
// or over its maxJobs rejects.
func (g *CapacityGate) IsTimeSlotAvailableForBooking(businessID, date, timeOfDay string) (bool, error) {
	schedCfg, err := g.SettingsRepo.GetSchedulingConfig(businessID)
	if err != nil {
		return false, fmt.Errorf("failed to load scheduling config: %w", err)
	}
	if !schedCfg.SpotLimitsEnabled {
		return true, nil
	}

	cfg, err := g.SettingsRepo.GetReserveSlotConfig(businessID)
	if err != nil {
		return false, fmt.Errorf("failed to load reserve slot config: %w", err)
	}
	if cfg == nil {
		return true, nil
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", date, err)
	}

	slots := cfg.SlotsFor(day.Weekday().String())
	if len(slots) == 0 {
		return true, nil
	}

	requested, err := utils.NormalizeClockTime(timeOfDay)
	if err != nil {
		// An unparseable requested time cannot match any slot entry.
		return true, nil
	}

	var slot *models.ReserveSlot
	for i := range slots {
		if normalized, err := utils.NormalizeClockTime(slots[i].Time); err == nil && normalized == requested {
			slot = &slots[i]
			break
		}
	}
	if slot == nil {
		return true, nil
	}

	bookings, err := g.BookingRepo.ListActiveForDate(businessID, date)
	if err != nil {
		return false, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}
	count := 0
	for _, b := range bookings {
		if utils.SameClockTime(b.ScheduledTime, requested) {
			count++
		}
	}
	return count < slot.MaxJobs, nil
}
