package scheduling

import (
	"fmt"

	"servify/models"
)

// Scoring constants. Scores rank eligible providers; they never gate.
const (
	serviceMatchPoints    = 30.0
	noServiceFilterPoints = 20.0
	maxHeadroomPoints     = 20.0
)

// EligibilityRequest describes the booking being matched.
type EligibilityRequest struct {
	ServiceID       string `json:"serviceId,omitempty" form:"serviceId"`
	DurationMinutes int    `json:"durationMinutes,omitempty" form:"durationMinutes"`
	ScheduledDate   string `json:"scheduledDate,omitempty" form:"scheduledDate"`
}

// EligibilityProvider is one provider's evaluation result. Reasons exist for
// observability and the admin preview, not for control flow.
type EligibilityProvider struct {
	Provider models.Provider `json:"provider"`
	Eligible bool            `json:"eligible"`
	Score    float64         `json:"score"`
	Reasons  []string        `json:"reasons"`
}

// EvaluateProviders filters and scores every provider in the roster against a
// booking request. maxMinutes is the tenant's per-booking duration cap for a
// provider; zero means no cap.
func EvaluateProviders(roster []models.Provider, req EligibilityRequest, maxMinutes int) []EligibilityProvider {
	results := make([]EligibilityProvider, 0, len(roster))
	for _, p := range roster {
		results = append(results, evaluateProvider(p, req, maxMinutes))
	}
	return results
}

func evaluateProvider(p models.Provider, req EligibilityRequest, maxMinutes int) EligibilityProvider {
	out := EligibilityProvider{Provider: p, Eligible: true}

	if !p.Preferences.AutoAssignEnabled {
		out.Eligible = false
		out.Reasons = append(out.Reasons, "provider opted out of auto-assignment")
	}

	if req.ServiceID != "" {
		if p.OffersService(req.ServiceID) {
			out.Score += serviceMatchPoints
			out.Reasons = append(out.Reasons, "offers requested service")
		} else {
			out.Eligible = false
			out.Reasons = append(out.Reasons, "does not offer requested service")
		}
	} else {
		out.Score += noServiceFilterPoints
		out.Reasons = append(out.Reasons, "no service filter applies")
	}

	if maxMinutes > 0 && req.DurationMinutes > maxMinutes {
		out.Eligible = false
		out.Reasons = append(out.Reasons,
			fmt.Sprintf("booking duration %dm exceeds per-provider cap %dm", req.DurationMinutes, maxMinutes))
	}

	if p.Capacity != nil {
		if p.Capacity.CurrentWorkload >= 100 {
			out.Eligible = false
			out.Reasons = append(out.Reasons, "provider at full workload")
		}
		headroom := maxHeadroomPoints - p.Capacity.CurrentWorkload
		if headroom > 0 {
			out.Score += headroom
			out.Reasons = append(out.Reasons, fmt.Sprintf("workload headroom bonus %.1f", headroom))
		}
	} else {
		// No capacity snapshot: full headroom bonus, nothing to gate on.
		out.Score += maxHeadroomPoints
	}

	return out
}
