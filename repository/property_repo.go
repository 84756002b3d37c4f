package repository

import "lightbnb/models"

// DefaultSearchLimit caps result sets when the caller does not supply
// a limit of its own.
const DefaultSearchLimit = 10

// PropertyRepository searches the persistent store. The result slice
// is never nil; an empty slice means nothing matched.
type PropertyRepository interface {
	SearchProperties(filter models.PropertyFilter, limit int) ([]models.Property, error)
}
