package models

type Property struct {
	ID                 int64  `json:"id" db:"id" bson:"_id,omitempty"`
	OwnerID            int64  `json:"owner_id" db:"owner_id" bson:"owner_id"`
	Title              string `json:"title" db:"title" bson:"title"`
	Description        string `json:"description" db:"description" bson:"description"`
	ThumbnailPhotoURL  string `json:"thumbnail_photo_url" db:"thumbnail_photo_url" bson:"thumbnail_photo_url"`
	CoverPhotoURL      string `json:"cover_photo_url" db:"cover_photo_url" bson:"cover_photo_url"`
	CostPerNight       int64  `json:"cost_per_night" db:"cost_per_night" bson:"cost_per_night"` // cents
	ParkingSpaces      int    `json:"parking_spaces" db:"parking_spaces" bson:"parking_spaces"`
	NumberOfBathrooms  int    `json:"number_of_bathrooms" db:"number_of_bathrooms" bson:"number_of_bathrooms"`
	NumberOfBedrooms   int    `json:"number_of_bedrooms" db:"number_of_bedrooms" bson:"number_of_bedrooms"`
	Country            string `json:"country" db:"country" bson:"country"`
	Street             string `json:"street" db:"street" bson:"street"`
	City               string `json:"city" db:"city" bson:"city"`
	Province           string `json:"province" db:"province" bson:"province"`
	PostCode           string `json:"post_code" db:"post_code" bson:"post_code"`
	Active             bool   `json:"active" db:"active" bson:"active"`

	// Averaged review rating, present on rows coming out of search
	// and reservation queries (denormalized for responses).
	AverageRating *float64 `json:"average_rating,omitempty" bson:"average_rating,omitempty"`
}

// CostPerNightDollars converts the stored cents value for display.
func (p Property) CostPerNightDollars() float64 {
	return float64(p.CostPerNight) / 100
}

// Rating returns the averaged review rating, zero when none exists.
func (p Property) Rating() float64 {
	if p.AverageRating == nil {
		return 0
	}
	return *p.AverageRating
}

// PropertyFilter carries the optional search predicates. Every field
// is independently optional; min and max price must be supplied
// together. Prices are in dollars and converted to cents at query
// time.
type PropertyFilter struct {
	City             string
	OwnerID          *int64
	MinPricePerNight *int64
	MaxPricePerNight *int64
	MinRating        *float64
}
