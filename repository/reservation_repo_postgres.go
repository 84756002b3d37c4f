package repository

import (
	"database/sql"

	"lightbnb/models"
)

type PostgresReservationRepo struct {
	DB *sql.DB
}

func NewPostgresReservationRepo(db *sql.DB) *PostgresReservationRepo {
	return &PostgresReservationRepo{DB: db}
}

// CompletedForGuest lists the guest's past stays, most recent first.
// A stay counts as completed once its end date is strictly before
// today. Returns nil when the guest has none.
func (r *PostgresReservationRepo) CompletedForGuest(guestID int64, limit int) ([]models.ReservationSummary, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	rows, err := r.DB.Query(`
		SELECT `+propertyColumns+`, AVG(property_reviews.rating) AS average_rating, reservations.start_date
		FROM properties
		INNER JOIN reservations ON properties.id = reservations.property_id
		INNER JOIN property_reviews ON properties.id = property_reviews.property_id
		WHERE reservations.guest_id = $1
		  AND reservations.end_date < now()::date
		GROUP BY properties.id, reservations.start_date
		ORDER BY reservations.start_date DESC
		LIMIT $2
	`, guestID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ReservationSummary
	for rows.Next() {
		var s models.ReservationSummary
		var avg float64
		err := rows.Scan(
			&s.ID, &s.OwnerID, &s.Title, &s.Description,
			&s.ThumbnailPhotoURL, &s.CoverPhotoURL, &s.CostPerNight,
			&s.ParkingSpaces, &s.NumberOfBathrooms, &s.NumberOfBedrooms,
			&s.Country, &s.Street, &s.City, &s.Province,
			&s.PostCode, &s.Active,
			&avg, &s.StartDate,
		)
		if err != nil {
			return nil, err
		}
		s.AverageRating = &avg
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
