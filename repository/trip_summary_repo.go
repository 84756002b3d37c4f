package repository

import (
	"lightbnb/models"
)

// TripSummaryRepository combines the lookups the PDF export needs.
type TripSummaryRepository struct {
	UserRepo        UserRepository
	ReservationRepo ReservationRepository
}

func NewTripSummaryRepository(userRepo UserRepository, reservationRepo ReservationRepository) *TripSummaryRepository {
	return &TripSummaryRepository{
		UserRepo:        userRepo,
		ReservationRepo: reservationRepo,
	}
}

// GetGuestForSummary fetches the guest the summary is for.
func (r *TripSummaryRepository) GetGuestForSummary(id int64) (*models.User, error) {
	return r.UserRepo.GetUserByID(id)
}

// GetStaysForSummary fetches the guest's completed stays.
func (r *TripSummaryRepository) GetStaysForSummary(guestID int64, limit int) ([]models.ReservationSummary, error) {
	return r.ReservationRepo.CompletedForGuest(guestID, limit)
}
