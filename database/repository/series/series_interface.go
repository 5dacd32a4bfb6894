package seriesRepo

import "servify/models"

// SeriesRepository defines recurring-series data access.
type SeriesRepository interface {
	Create(series *models.RecurringSeries) error
	GetByID(businessID, seriesID string) (*models.RecurringSeries, error)
	ListActive(businessID string) ([]models.RecurringSeries, error)
	UpdateStatus(businessID, seriesID, status string) error
}
