package scheduling_test

import (
	"context"
	"fmt"
	"sync"

	"servify/database/repository"
	"servify/models"
	"servify/services/notification"
)

// In-memory repository fakes so the engine can be exercised without MongoDB.

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

type fakeProviderRepo struct {
	providers []models.Provider
}

func (r *fakeProviderRepo) GetByID(businessID, providerID string) (*models.Provider, error) {
	for i := range r.providers {
		if r.providers[i].BusinessID == businessID && r.providers[i].ID == providerID {
			cp := r.providers[i]
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("provider %s not found", providerID)
}

func (r *fakeProviderRepo) ListActive(businessID string) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range r.providers {
		if p.BusinessID == businessID && p.Status == models.ProviderStatusActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProviderRepo) ListAll(businessID string) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range r.providers {
		if p.BusinessID == businessID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAssignmentRepo struct {
	assignments []models.Assignment
	failCreate  bool
	getErr      error
}

func (r *fakeAssignmentRepo) Create(a *models.Assignment) error {
	if r.failCreate {
		return fmt.Errorf("forced assignment write failure")
	}
	r.assignments = append(r.assignments, *a)
	return nil
}

func (r *fakeAssignmentRepo) GetActiveByBooking(businessID, bookingID string) (*models.Assignment, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	for i := range r.assignments {
		a := r.assignments[i]
		if a.BusinessID == businessID && a.BookingID == bookingID && a.Status == models.AssignmentStatusActive {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("no active assignment for booking %s: %w", bookingID, repository.ErrAssignmentNotFound)
}

type fakeInvitationRepo struct {
	invitations []models.Invitation
	failCreate  bool
}

func (r *fakeInvitationRepo) Create(inv *models.Invitation) error {
	if r.failCreate {
		return fmt.Errorf("forced invitation write failure")
	}
	r.invitations = append(r.invitations, *inv)
	return nil
}

func (r *fakeInvitationRepo) GetByID(businessID, invitationID string) (*models.Invitation, error) {
	for i := range r.invitations {
		if r.invitations[i].BusinessID == businessID && r.invitations[i].ID == invitationID {
			cp := r.invitations[i]
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("invitation %s not found", invitationID)
}

func (r *fakeInvitationRepo) UpdateStatus(businessID, invitationID, status string) error {
	for i := range r.invitations {
		if r.invitations[i].BusinessID == businessID && r.invitations[i].ID == invitationID {
			r.invitations[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("invitation %s not found", invitationID)
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

// fakeDispatcher records notification side effects.
type fakeDispatcher struct {
	adminTypes     []string
	providerEmails []string
	customerEmails []string
	failAdmin      bool
}

func (d *fakeDispatcher) CreateAdminNotification(_ context.Context, businessID, notifType string, _ notification.AdminAlert) error {
	if d.failAdmin {
		return fmt.Errorf("forced admin notification failure")
	}
	d.adminTypes = append(d.adminTypes, notifType)
	return nil
}

func (d *fakeDispatcher) SendProviderBookingAssigned(_ context.Context, provider models.Provider, _ models.Booking) error {
	if !provider.Preferences.EmailNotifications || provider.Email == "" {
		return nil
	}
	d.providerEmails = append(d.providerEmails, provider.Email)
	return nil
}

func (d *fakeDispatcher) SendNeverFoundProviderEmail(_ context.Context, booking models.Booking) error {
	d.customerEmails = append(d.customerEmails, booking.CustomerEmail)
	return nil
}
