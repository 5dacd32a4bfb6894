package providerRepo

import "servify/models"

// ProviderRepository defines provider data access. Providers come back with
// their joined services, preferences and capacity snapshot embedded.
type ProviderRepository interface {
	GetByID(businessID, providerID string) (*models.Provider, error)
	ListActive(businessID string) ([]models.Provider, error)
	ListAll(businessID string) ([]models.Provider, error)
}
