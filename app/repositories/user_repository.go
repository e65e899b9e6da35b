package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/kusina/app/models"
	"github.com/shashiranjanraj/kusina/pkg/database"
	"github.com/shashiranjanraj/kusina/pkg/metrics"
)

// UserRepository handles persistence for accounts.
// Create surfaces the unique-index violation on email as a Mongo duplicate
// key error; callers detect it with mongo.IsDuplicateKeyError.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) ([]models.User, error)
}

const userCollection = "users"

type mongoUserRepository struct{}

// NewUserRepository returns the Mongo-backed account repository.
func NewUserRepository() UserRepository {
	return &mongoUserRepository{}
}

func (r *mongoUserRepository) col() *mongo.Collection {
	return database.Collection(userCollection)
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	defer metrics.ObserveDBQuery("users.find_by_email", time.Now())

	var user models.User
	err := r.col().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	defer metrics.ObserveDBQuery("users.find_one", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, mongo.ErrNoDocuments
	}
	var user models.User
	err = r.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	return user, err
}

func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) error {
	defer metrics.ObserveDBQuery("users.insert", time.Now())

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	res, err := r.col().InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *mongoUserRepository) Update(ctx context.Context, user *models.User) error {
	defer metrics.ObserveDBQuery("users.update", time.Now())

	user.UpdatedAt = time.Now()
	res, err := r.col().ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoUserRepository) Delete(ctx context.Context, id string) error {
	defer metrics.ObserveDBQuery("users.delete", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.col().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoUserRepository) All(ctx context.Context) ([]models.User, error) {
	defer metrics.ObserveDBQuery("users.find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
