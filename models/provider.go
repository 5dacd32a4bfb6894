package models

import "time"

const (
	ProviderStatusActive   = "active"
	ProviderStatusInactive = "inactive"
)

// ProviderPreferences holds per-provider opt-ins honoured by the engine.
type ProviderPreferences struct {
	AutoAssignEnabled  bool `bson:"autoAssignEnabled" json:"autoAssignEnabled"`   // Provider accepts auto-assignment
	EmailNotifications bool `bson:"emailNotifications" json:"emailNotifications"` // Provider wants booking emails
}

// CapacitySnapshot is the provider's current load picture, maintained by the
// (external) workload tracker and read here for eligibility checks.
type CapacitySnapshot struct {
	CurrentWorkload float64 `bson:"currentWorkload" json:"currentWorkload"` // Percent, 0-100
	MaxConcurrent   int     `bson:"maxConcurrent" json:"maxConcurrent"`
	MaxDaily        int     `bson:"maxDaily" json:"maxDaily"`
}

// ServicePayRate is a provider's default rate for one service.
type ServicePayRate struct {
	ServiceID string  `bson:"serviceId" json:"serviceId"`
	RateType  string  `bson:"rateType" json:"rateType"` // percentage | fixed | hourly
	Amount    float64 `bson:"amount" json:"amount"`     // Percent, flat amount or hourly rate
}

// Provider represents a tenant's service provider with the joined data the
// engine needs: capability set, preferences and capacity snapshot.
type Provider struct {
	ID                 string              `bson:"id" json:"id"`
	BusinessID         string              `bson:"business_id" json:"business_id"`
	Name               string              `bson:"name" json:"name"`
	Email              string              `bson:"email,omitempty" json:"email,omitempty"`
	Status             string              `bson:"status" json:"status"` // active | inactive
	InvitationPriority int                 `bson:"invitationPriority" json:"invitationPriority"` // Higher = preferred
	Services           []string            `bson:"services,omitempty" json:"services,omitempty"` // Service IDs offered
	Preferences        ProviderPreferences `bson:"preferences" json:"preferences"`
	Capacity           *CapacitySnapshot   `bson:"capacity,omitempty" json:"capacity,omitempty"`
	PayRates           []ServicePayRate    `bson:"payRates,omitempty" json:"payRates,omitempty"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"` // Tie-break key, oldest wins
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// OffersService reports whether the provider's capability set includes the service.
func (p Provider) OffersService(serviceID string) bool {
	for _, s := range p.Services {
		if s == serviceID {
			return true
		}
	}
	return false
}

// PayRateFor returns the provider's default rate for a service, if any.
func (p Provider) PayRateFor(serviceID string) *ServicePayRate {
	for i := range p.PayRates {
		if p.PayRates[i].ServiceID == serviceID {
			return &p.PayRates[i]
		}
	}
	return nil
}
