package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lightbnb/models"
	"lightbnb/repository"
)

type PropertyHandler struct {
	Repo  repository.PropertyRepository
	Store *repository.PropertyStore
}

// SearchProperties handler. All filters are optional query params;
// min and max price only apply when both are present, matching the
// repository contract.
func (h *PropertyHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter models.PropertyFilter
	filter.City = q.Get("city")

	if v := q.Get("owner_id"); v != "" {
		ownerID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid owner_id", http.StatusBadRequest)
			return
		}
		filter.OwnerID = &ownerID
	}
	if v := q.Get("minimum_price_per_night"); v != "" {
		min, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid minimum_price_per_night", http.StatusBadRequest)
			return
		}
		filter.MinPricePerNight = &min
	}
	if v := q.Get("maximum_price_per_night"); v != "" {
		max, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid maximum_price_per_night", http.StatusBadRequest)
			return
		}
		filter.MaxPricePerNight = &max
	}
	if v := q.Get("minimum_rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "invalid minimum_rating", http.StatusBadRequest)
			return
		}
		filter.MinRating = &rating
	}

	limit := 0
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	properties, err := h.Repo.SearchProperties(filter, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(properties)
}

// AddProperty handler. Submissions land in the in-memory store only;
// they are not persisted and will not appear in search results.
func (h *PropertyHandler) AddProperty(w http.ResponseWriter, r *http.Request) {
	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.Store.AddProperty(&property)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(property)
}
