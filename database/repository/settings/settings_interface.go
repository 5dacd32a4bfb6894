package settingsRepo

import "servify/models"

// SettingsRepository defines read access to a tenant's scheduling settings:
// the scheduling config, holiday calendar and reserve-slot setup. The engine
// never writes these; the admin surface owns them.
type SettingsRepository interface {
	GetSchedulingConfig(businessID string) (*models.SchedulingConfig, error)
	ListHolidays(businessID string) ([]models.Holiday, error)

	// GetReserveSlotConfig returns nil (no error) when the tenant has no
	// reserve-slot setup, which means no slot limits apply.
	GetReserveSlotConfig(businessID string) (*models.ReserveSlotConfig, error)
}
