package models

// TripSummaryData feeds the trip-summary PDF template.
type TripSummaryData struct {
	Guest       *User
	Stays       []ReservationSummary
	TotalStays  int
	GeneratedAt string
}
