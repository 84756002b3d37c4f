package repository

import (
	"context"
	"errors"

	"lightbnb/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

// nextSequence hands out store-assigned numeric ids from the counters
// collection, one atomic $inc per insert.
func nextSequence(ctx context.Context, db *mongo.Client, name string) (int64, error) {
	res := db.Database("lightbnb").Collection("counters").FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

func (r *MongoUserRepo) CreateUser(user *models.User) error {
	ctx := context.Background()

	existing, err := r.GetUserByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateEmail
	}

	if user.Password == "" {
		return errors.New("password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	id, err := nextSequence(ctx, r.DB, "users")
	if err != nil {
		return err
	}
	user.ID = id

	_, err = r.DB.Database("lightbnb").Collection("users").InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepo) GetUserByEmail(email string) (*models.User, error) {
	ctx := context.Background()
	user := &models.User{}

	err := r.DB.Database("lightbnb").Collection("users").
		FindOne(ctx, bson.M{"email": email}).Decode(user)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *MongoUserRepo) GetUserByID(id int64) (*models.User, error) {
	ctx := context.Background()
	user := &models.User{}

	err := r.DB.Database("lightbnb").Collection("users").
		FindOne(ctx, bson.M{"_id": id}).Decode(user)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}
