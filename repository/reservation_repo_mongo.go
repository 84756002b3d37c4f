package repository

import (
	"context"
	"time"

	"lightbnb/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoReservationRepo struct {
	DB *mongo.Client
}

func NewMongoReservationRepo(db *mongo.Client) *MongoReservationRepo {
	return &MongoReservationRepo{DB: db}
}

// CompletedForGuest mirrors the Postgres listing: join reservations to
// their property and the property's reviews, keep stays whose end date
// is strictly before today, average the rating, newest first.
// Returns nil when the guest has no completed stays.
func (r *MongoReservationRepo) CompletedForGuest(guestID int64, limit int) ([]models.ReservationSummary, error) {
	ctx := context.Background()
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "guest_id", Value: guestID},
			{Key: "end_date", Value: bson.D{{Key: "$lt", Value: today}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "properties"},
			{Key: "localField", Value: "property_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "property"},
		}}},
		bson.D{{Key: "$unwind", Value: "$property"}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "property_reviews"},
			{Key: "localField", Value: "property_id"},
			{Key: "foreignField", Value: "property_id"},
			{Key: "as", Value: "reviews"},
		}}},
		bson.D{{Key: "$unwind", Value: "$reviews"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "property_id", Value: "$property_id"},
				{Key: "start_date", Value: "$start_date"},
			}},
			{Key: "property", Value: bson.D{{Key: "$first", Value: "$property"}}},
			{Key: "start_date", Value: bson.D{{Key: "$first", Value: "$start_date"}}},
			{Key: "average_rating", Value: bson.D{{Key: "$avg", Value: "$reviews.rating"}}},
		}}},
		bson.D{{Key: "$replaceRoot", Value: bson.D{
			{Key: "newRoot", Value: bson.D{{Key: "$mergeObjects", Value: bson.A{
				"$property",
				bson.D{
					{Key: "start_date", Value: "$start_date"},
					{Key: "average_rating", Value: "$average_rating"},
				},
			}}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "start_date", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.DB.Database("lightbnb").Collection("reservations").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []models.ReservationSummary
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}
