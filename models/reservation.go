package models

import "time"

// ReservationSummary is one row of a guest's completed-stay listing:
// the property joined with the stay's start date. AverageRating on the
// embedded Property carries the review average for that property.
type ReservationSummary struct {
	Property  `bson:",inline"`
	StartDate time.Time `json:"start_date" db:"start_date" bson:"start_date"`
}
