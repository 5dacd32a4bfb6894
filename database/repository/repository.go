package repository

import (
	adminfeedRepo "servify/database/repository/adminfeed"
	assignmentRepo "servify/database/repository/assignment"
	bookingRepo "servify/database/repository/booking"
	earningsRepo "servify/database/repository/earnings"
	invitationRepo "servify/database/repository/invitation"
	providerRepo "servify/database/repository/provider"
	seriesRepo "servify/database/repository/series"
	settingsRepo "servify/database/repository/settings"
)

// Re-export the per-entity repository interfaces and constructors.

type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

type ProviderRepository = providerRepo.ProviderRepository

var NewMongoProviderRepo = providerRepo.NewMongoProviderRepo

type AssignmentRepository = assignmentRepo.AssignmentRepository

var (
	NewMongoAssignmentRepo = assignmentRepo.NewMongoAssignmentRepo
	ErrAssignmentNotFound  = assignmentRepo.ErrNotFound
)

type InvitationRepository = invitationRepo.InvitationRepository

var NewMongoInvitationRepo = invitationRepo.NewMongoInvitationRepo

type SeriesRepository = seriesRepo.SeriesRepository

var NewMongoSeriesRepo = seriesRepo.NewMongoSeriesRepo

type SettingsRepository = settingsRepo.SettingsRepository

var NewMongoSettingsRepo = settingsRepo.NewMongoSettingsRepo

type EarningsRepository = earningsRepo.EarningsRepository

var NewMongoEarningsRepo = earningsRepo.NewMongoEarningsRepo

type AdminFeedRepository = adminfeedRepo.AdminFeedRepository

var NewMongoAdminFeedRepo = adminfeedRepo.NewMongoAdminFeedRepo

// EnsureIndexes bootstraps the indexes the engine's queries rely on.
func EnsureIndexes() error {
	if err := bookingRepo.EnsureBookingIndexes(); err != nil {
		return err
	}
	return assignmentRepo.EnsureAssignmentIndexes()
}
