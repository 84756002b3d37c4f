package routes

import (
	"net/http"

	"lightbnb/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	propertyHandler *handlers.PropertyHandler,
	reservationHandler *handlers.ReservationHandler,
	summaryHandler *handlers.TripSummaryHandler,
) {
	// User routes
	http.Handle("/signup", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Signup))))
	http.Handle("/users", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.GetUser))))

	// Property routes
	http.Handle("/properties", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			propertyHandler.SearchProperties(w, r)
		case http.MethodPost:
			propertyHandler.AddProperty(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Reservation routes
	http.Handle("/reservations", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		reservationHandler.GetReservations(w, r)
	}))))
	http.Handle("/reservations/pdf", withCORS(http.HandlerFunc(handlers.RecoverWrapper(summaryHandler.TripSummaryPDF))))
}
