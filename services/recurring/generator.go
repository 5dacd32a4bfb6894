package recurring

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Holiday lookahead bound when skipping to the next working date.
const maxHolidaySkips = 31

// HolidayChecker answers whether a tenant date is a holiday. Satisfied by the
// scheduling capacity gate.
type HolidayChecker interface {
	IsDateHoliday(businessID, date string) (bool, error)
}

// Interval is one frequency step.
type Interval struct {
	Days   int
	Months int
	Years  int
}

// IntervalForFrequency maps a free-form frequency name to its step. Checks run
// in order; the first match wins. Unknown names default to weekly.
func IntervalForFrequency(frequency string) Interval {
	f := strings.ToLower(frequency)
	switch {
	case strings.Contains(f, "daily"):
		return Interval{Days: 1}
	case strings.Contains(f, "bi"), strings.Contains(f, "every-other"), strings.Contains(f, "every-2"):
		return Interval{Days: 14}
	case strings.Contains(f, "weekly"):
		return Interval{Days: 7}
	case strings.Contains(f, "monthly"):
		return Interval{Months: 1}
	case strings.Contains(f, "yearly"):
		return Interval{Years: 1}
	default:
		return Interval{Days: 7}
	}
}

// addClamped advances a date by the interval, clamping month and year steps to
// the last valid day (Jan 31 + 1 month = Feb 29/28, not Mar 2).
func addClamped(t time.Time, iv Interval) time.Time {
	if iv.Days != 0 {
		return t.AddDate(0, 0, iv.Days)
	}
	year := t.Year() + iv.Years
	month := t.Month()
	if iv.Months != 0 {
		m := int(t.Month()) - 1 + iv.Months
		year += m / 12
		month = time.Month(m%12 + 1)
	}
	day := t.Day()
	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

// NextOccurrenceDate applies the frequency interval once, then, when holiday
// skipping is enabled, advances day by day past holidays, bounded to
// maxHolidaySkips attempts.
func NextOccurrenceDate(businessID, date, frequency string, repeats int, skipHolidays bool, holidays HolidayChecker) (string, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	iv := IntervalForFrequency(frequency)
	if repeats < 1 {
		repeats = 1
	}
	for i := 0; i < repeats; i++ {
		t = addClamped(t, iv)
	}

	if skipHolidays && holidays != nil {
		for i := 0; i < maxHolidaySkips; i++ {
			isHoliday, err := holidays.IsDateHoliday(businessID, t.Format(dateLayout))
			if err != nil {
				return "", fmt.Errorf("holiday lookup failed: %w", err)
			}
			if !isHoliday {
				break
			}
			t = t.AddDate(0, 0, 1)
		}
	}
	return t.Format(dateLayout), nil
}

// OccurrenceDates produces up to count dates starting at startDate, stopping
// early once endDate (when set) is exceeded.
func OccurrenceDates(businessID, startDate, frequency string, repeats, count int, endDate string, skipHolidays bool, holidays HolidayChecker) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}
	if _, err := time.Parse(dateLayout, startDate); err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}

	dates := make([]string, 0, count)
	current := startDate
	for len(dates) < count {
		if endDate != "" && current > endDate {
			break
		}
		dates = append(dates, current)

		next, err := NextOccurrenceDate(businessID, current, frequency, repeats, skipHolidays, holidays)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return dates, nil
}
