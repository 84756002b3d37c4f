package repository

import (
	"database/sql"

	"lightbnb/models"
)

type PostgresPropertyRepo struct {
	DB *sql.DB
}

func NewPostgresPropertyRepo(db *sql.DB) *PostgresPropertyRepo {
	return &PostgresPropertyRepo{DB: db}
}

const propertyColumns = `properties.id, properties.owner_id, properties.title, properties.description,
	properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
	properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms,
	properties.country, properties.street, properties.city, properties.province,
	properties.post_code, properties.active`

// buildPropertySearch translates the optional filters into a single
// statement. Filters are evaluated in a fixed order (city, owner,
// price range, rating) so parameter numbering is deterministic. The
// rating filter runs after aggregation; it belongs to the HAVING
// chain, independent of the WHERE chain.
func buildPropertySearch(filter models.PropertyFilter, limit int) (string, []interface{}) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	q := &searchQuery{
		selectFrom: `SELECT ` + propertyColumns + `, AVG(property_reviews.rating) AS average_rating
FROM properties
INNER JOIN property_reviews ON properties.id = property_reviews.property_id`,
		groupBy: "properties.id, properties.cost_per_night",
		orderBy: "cost_per_night",
		limit:   limit,
	}

	if filter.City != "" {
		q.Where("city LIKE %s", "%"+filter.City+"%")
	}
	if filter.OwnerID != nil {
		q.Where("owner_id = %s", *filter.OwnerID)
	}
	if filter.MinPricePerNight != nil && filter.MaxPricePerNight != nil {
		// Callers supply dollars; cost_per_night is stored in cents.
		q.Where("cost_per_night >= %s AND cost_per_night <= %s",
			*filter.MinPricePerNight*100, *filter.MaxPricePerNight*100)
	}
	if filter.MinRating != nil {
		q.Having("AVG(property_reviews.rating) >= %s", *filter.MinRating)
	}

	return q.Build()
}

// SearchProperties returns up to limit properties matching the filter,
// cheapest first. The slice is empty, never nil, when nothing matches.
func (r *PostgresPropertyRepo) SearchProperties(filter models.PropertyFilter, limit int) ([]models.Property, error) {
	query, params := buildPropertySearch(filter, limit)

	rows, err := r.DB.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		var p models.Property
		var avg float64
		err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Title, &p.Description,
			&p.ThumbnailPhotoURL, &p.CoverPhotoURL, &p.CostPerNight,
			&p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms,
			&p.Country, &p.Street, &p.City, &p.Province,
			&p.PostCode, &p.Active,
			&avg,
		)
		if err != nil {
			return nil, err
		}
		p.AverageRating = &avg
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return properties, nil
}
