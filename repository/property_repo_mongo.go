package repository

import (
	"context"
	"regexp"

	"lightbnb/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoPropertyRepo struct {
	DB *mongo.Client
}

func NewMongoPropertyRepo(db *mongo.Client) *MongoPropertyRepo {
	return &MongoPropertyRepo{DB: db}
}

// SearchProperties runs the same join/aggregate semantics as the
// Postgres implementation, expressed as an aggregation pipeline:
// $lookup + $unwind reproduce the inner join against reviews, the
// row-stage filters run before $group, the rating filter after.
func (r *MongoPropertyRepo) SearchProperties(filter models.PropertyFilter, limit int) ([]models.Property, error) {
	ctx := context.Background()
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "property_reviews"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "property_id"},
			{Key: "as", Value: "reviews"},
		}}},
		bson.D{{Key: "$unwind", Value: "$reviews"}},
	}

	match := bson.D{}
	if filter.City != "" {
		// Case-sensitive substring match, same as LIKE '%city%'.
		match = append(match, bson.E{Key: "city", Value: primitive.Regex{Pattern: regexp.QuoteMeta(filter.City)}})
	}
	if filter.OwnerID != nil {
		match = append(match, bson.E{Key: "owner_id", Value: *filter.OwnerID})
	}
	if filter.MinPricePerNight != nil && filter.MaxPricePerNight != nil {
		match = append(match, bson.E{Key: "cost_per_night", Value: bson.D{
			{Key: "$gte", Value: *filter.MinPricePerNight * 100},
			{Key: "$lte", Value: *filter.MaxPricePerNight * 100},
		}})
	}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$_id"},
			{Key: "doc", Value: bson.D{{Key: "$first", Value: "$$ROOT"}}},
			{Key: "average_rating", Value: bson.D{{Key: "$avg", Value: "$reviews.rating"}}},
		}}},
		bson.D{{Key: "$replaceRoot", Value: bson.D{
			{Key: "newRoot", Value: bson.D{{Key: "$mergeObjects", Value: bson.A{
				"$doc",
				bson.D{{Key: "average_rating", Value: "$average_rating"}},
			}}}},
		}}},
		bson.D{{Key: "$unset", Value: "reviews"}},
	)

	if filter.MinRating != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{
			{Key: "average_rating", Value: bson.D{{Key: "$gte", Value: *filter.MinRating}}},
		}}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "cost_per_night", Value: 1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	)

	cursor, err := r.DB.Database("lightbnb").Collection("properties").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []models.Property{}
	}

	return properties, nil
}
