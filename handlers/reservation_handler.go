package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lightbnb/repository"
)

type ReservationHandler struct {
	Repo repository.ReservationRepository
}

// GetReservations lists a guest's completed stays. The repository
// yields nil when there are none, and that sentinel is passed through
// to the response body as JSON null rather than an empty array.
func (h *ReservationHandler) GetReservations(w http.ResponseWriter, r *http.Request) {
	guestIDStr := r.URL.Query().Get("guest_id")
	if guestIDStr == "" {
		http.Error(w, "missing guest_id", http.StatusBadRequest)
		return
	}
	guestID, err := strconv.ParseInt(guestIDStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid guest_id", http.StatusBadRequest)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	reservations, err := h.Repo.CompletedForGuest(guestID, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(reservations)
}
