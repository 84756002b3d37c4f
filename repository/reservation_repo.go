package repository

import "lightbnb/models"

// ReservationRepository lists a guest's completed stays. The result is
// nil (not an empty slice) when the guest has no completed stays —
// callers distinguish "no results" by that sentinel. Property search
// deliberately uses the opposite convention; both are pinned by tests.
type ReservationRepository interface {
	CompletedForGuest(guestID int64, limit int) ([]models.ReservationSummary, error)
}
