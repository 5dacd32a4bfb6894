package models

// ReserveSlot caps how many jobs may share one time-of-day slot.
type ReserveSlot struct {
	Time      string `bson:"time" json:"time"` // "HH:mm"
	MaxJobs   int    `bson:"maxJobs" json:"maxJobs"`
	DisplayOn bool   `bson:"displayOn" json:"displayOn"`
}

// ReserveSlotDay is the slot list for one day of the week.
type ReserveSlotDay struct {
	DayOfWeek string        `bson:"dayOfWeek" json:"dayOfWeek"` // "Monday" ... "Sunday"
	Slots     []ReserveSlot `bson:"slots" json:"slots"`
}

// ReserveSlotConfig is a tenant's reserve-slot setup. A day or time with no
// matching entry carries no limit.
type ReserveSlotConfig struct {
	BusinessID string           `bson:"business_id" json:"business_id"`
	Days       []ReserveSlotDay `bson:"days" json:"days"`
}

// SlotsFor returns the slot entries configured for a weekday name, or nil.
func (c ReserveSlotConfig) SlotsFor(dayOfWeek string) []ReserveSlot {
	for _, d := range c.Days {
		if d.DayOfWeek == dayOfWeek {
			return d.Slots
		}
	}
	return nil
}
