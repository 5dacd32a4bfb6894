package invitationRepo

import "servify/models"

// InvitationRepository defines invitation data access.
type InvitationRepository interface {
	Create(invitation *models.Invitation) error
	GetByID(businessID, invitationID string) (*models.Invitation, error)
	UpdateStatus(businessID, invitationID, status string) error
}
