package main

import (
	"fmt"
	"net/http"

	"lightbnb/config"
	"lightbnb/db"
	"lightbnb/db/mongo"
	"lightbnb/db/postgres"
	"lightbnb/handlers"
	"lightbnb/repository"
	"lightbnb/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var userRepo repository.UserRepository
	var propertyRepo repository.PropertyRepository
	var reservationRepo repository.ReservationRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		// Migrations own the schema (incl. UNIQUE(users.email))
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		propertyRepo = repository.NewPostgresPropertyRepo(pg.Conn)
		reservationRepo = repository.NewPostgresReservationRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		userRepo = repository.NewMongoUserRepo(mg.Client)
		propertyRepo = repository.NewMongoPropertyRepo(mg.Client)
		reservationRepo = repository.NewMongoReservationRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo}
	propertyHandler := &handlers.PropertyHandler{
		Repo:  propertyRepo,
		Store: repository.NewPropertyStore(),
	}
	reservationHandler := &handlers.ReservationHandler{Repo: reservationRepo}

	// Trip summary PDF with combined repository
	summaryRepo := repository.NewTripSummaryRepository(userRepo, reservationRepo)
	summaryHandler := &handlers.TripSummaryHandler{Repo: summaryRepo}

	routes.SetupRoutes(userHandler, propertyHandler, reservationHandler, summaryHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
