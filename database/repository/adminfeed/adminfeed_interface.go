package adminfeedRepo

import "servify/models"

// AdminFeedRepository persists admin notification feed entries. Written by the
// notification worker, read by the (external) admin dashboard.
type AdminFeedRepository interface {
	Create(notification *models.AdminNotification) error
}
