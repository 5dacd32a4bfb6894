package models

// Holiday marks a date no work is scheduled on. Either an exact date or a
// recurring month+day (e.g. Dec 25 every year).
type Holiday struct {
	ID         string `bson:"id" json:"id"`
	BusinessID string `bson:"business_id" json:"business_id"`
	Name       string `bson:"name,omitempty" json:"name,omitempty"`
	Date       string `bson:"date,omitempty" json:"date,omitempty"` // "YYYY-MM-DD" for exact holidays
	Recurring  bool   `bson:"recurring" json:"recurring"`
	Month      int    `bson:"month,omitempty" json:"month,omitempty"` // 1-12, recurring only
	Day        int    `bson:"day,omitempty" json:"day,omitempty"`     // 1-31, recurring only
}
