package repository

import (
	"sync"

	"lightbnb/models"
)

// PropertyStore is a process-local, non-durable holding area for
// newly submitted properties. Entries never reach the persistent
// store and never show up in search results; the submission flow is
// deliberately disconnected from the live schema. Data is lost on
// restart.
type PropertyStore struct {
	mu         sync.Mutex
	properties map[int64]*models.Property
}

func NewPropertyStore() *PropertyStore {
	return &PropertyStore{properties: make(map[int64]*models.Property)}
}

// AddProperty assigns the next synthetic id (store size + 1) and
// keeps the property in memory only. The mutex makes id assignment
// safe under concurrent submissions.
func (s *PropertyStore) AddProperty(p *models.Property) *models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = int64(len(s.properties) + 1)
	s.properties[p.ID] = p
	return p
}

// Len reports how many properties are being held.
func (s *PropertyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.properties)
}
