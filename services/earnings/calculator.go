package earnings

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"servify/database/repository"
	"servify/models"
	"servify/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Default split when no wage information exists anywhere: 20% commission.
var defaultCommissionPercent = decimal.NewFromInt(20)

// Deprecated fallback: hours scraped from free-text notes, e.g. "3 hrs".
var notesHoursPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:hours?|hrs?)`)

// EarningsService resolves the payable amount for completed bookings.
type EarningsService interface {
	// FinalizeBookingEarnings runs the wage-precedence chain once for a
	// completed booking and persists the result. Idempotent: an existing
	// earnings row is returned as-is.
	FinalizeBookingEarnings(businessID, bookingID string) (*models.Earnings, error)
}

// DefaultEarningsService implements EarningsService.
type DefaultEarningsService struct {
	BookingRepo  repository.BookingRepository
	ProviderRepo repository.ProviderRepository
	EarningsRepo repository.EarningsRepository

	// Now overrides the clock in tests. Nil = time.Now.
	Now func() time.Time
}

func (s *DefaultEarningsService) FinalizeBookingEarnings(businessID, bookingID string) (*models.Earnings, error) {
	if existing, err := s.EarningsRepo.GetByBooking(businessID, bookingID); err == nil && existing != nil {
		return existing, nil
	}

	booking, err := s.BookingRepo.GetByID(businessID, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, fmt.Errorf("booking %s is not completed", bookingID)
	}
	if booking.ProviderID == "" {
		return nil, fmt.Errorf("booking %s has no provider", bookingID)
	}

	rateType, rateAmount, rateSource := s.resolveRate(booking)
	gross := decimal.NewFromFloat(booking.TotalPrice)
	net, rateSource := s.computeNet(booking, gross, rateType, rateAmount, rateSource)

	// Never negative, never more than gross.
	if net.IsNegative() {
		net = decimal.Zero
	}
	if net.GreaterThan(gross) {
		net = gross
	}
	commission := gross.Sub(net)

	record := &models.Earnings{
		ID:               uuid.New().String(),
		BusinessID:       businessID,
		BookingID:        bookingID,
		ProviderID:       booking.ProviderID,
		GrossAmount:      gross.Round(2).InexactFloat64(),
		CommissionAmount: commission.Round(2).InexactFloat64(),
		NetAmount:        net.Round(2).InexactFloat64(),
		PayRateType:      rateType,
		RateSource:       rateSource,
		Status:           models.EarningsStatusPending,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.EarningsRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to persist earnings: %w", err)
	}

	utils.GetLogger().Info("earnings finalized",
		zap.String("bookingId", bookingID),
		zap.String("providerId", booking.ProviderID),
		zap.String("rateSource", rateSource),
		zap.Float64("net", record.NetAmount),
	)
	return record, nil
}

// resolveRate walks the wage-precedence chain: booking override, then the
// provider's default rate for the service, then the platform commission split.
func (s *DefaultEarningsService) resolveRate(booking *models.Booking) (rateType string, amount decimal.Decimal, source string) {
	if booking.ProviderWageType != "" && booking.ProviderWage > 0 {
		return booking.ProviderWageType, decimal.NewFromFloat(booking.ProviderWage), models.RateSourceBookingOverride
	}

	if provider, err := s.ProviderRepo.GetByID(booking.BusinessID, booking.ProviderID); err == nil {
		if rate := provider.PayRateFor(booking.ServiceID); rate != nil {
			return rate.RateType, decimal.NewFromFloat(rate.Amount), models.RateSourceProviderDefault
		}
	}

	return models.PayRatePercentage, decimal.NewFromInt(100).Sub(defaultCommissionPercent), models.RateSourceCommissionDefault
}

func (s *DefaultEarningsService) computeNet(booking *models.Booking, gross decimal.Decimal, rateType string, rate decimal.Decimal, source string) (decimal.Decimal, string) {
	switch rateType {
	case models.PayRateFixed:
		return rate, source
	case models.PayRateHourly:
		hours, fromNotes := s.bookingHours(booking)
		if fromNotes {
			source = models.RateSourceNotesRegexFallback
		}
		return rate.Mul(hours), source
	default: // percentage
		return gross.Mul(rate).Div(decimal.NewFromInt(100)), source
	}
}

// bookingHours returns the hours an hourly wage pays for. The structured
// duration field is authoritative; the notes regex survives only as a
// deprecated fallback for legacy bookings, defaulting to one hour.
func (s *DefaultEarningsService) bookingHours(booking *models.Booking) (decimal.Decimal, bool) {
	if booking.DurationMinutes > 0 {
		return decimal.NewFromInt(int64(booking.DurationMinutes)).Div(decimal.NewFromInt(60)), false
	}

	utils.GetLogger().Warn("hourly wage without structured duration, scraping notes",
		zap.String("bookingId", booking.ID))
	if m := notesHoursPattern.FindStringSubmatch(strings.ToLower(booking.Notes)); m != nil {
		if hours, err := decimal.NewFromString(m[1]); err == nil && hours.IsPositive() {
			return hours, true
		}
	}
	return decimal.NewFromInt(1), true
}

func (s *DefaultEarningsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
