package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/kusina/app/models"
	"github.com/shashiranjanraj/kusina/pkg/database"
	"github.com/shashiranjanraj/kusina/pkg/metrics"
)

// EntryRepository handles the record book. Edits and deletes address
// entries by email, matching how clients use the book.
type EntryRepository interface {
	Create(ctx context.Context, entry *models.Entry) error
	All(ctx context.Context) ([]models.Entry, error)
	FindByEmail(ctx context.Context, email string) (models.Entry, error)
	Update(ctx context.Context, entry *models.Entry) error
	DeleteByEmail(ctx context.Context, email string) error
}

const entryCollection = "entries"

type mongoEntryRepository struct{}

// NewEntryRepository returns the Mongo-backed record book repository.
func NewEntryRepository() EntryRepository {
	return &mongoEntryRepository{}
}

func (r *mongoEntryRepository) col() *mongo.Collection {
	return database.Collection(entryCollection)
}

func (r *mongoEntryRepository) Create(ctx context.Context, entry *models.Entry) error {
	defer metrics.ObserveDBQuery("entries.insert", time.Now())

	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	res, err := r.col().InsertOne(ctx, entry)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		entry.ID = oid
	}
	return nil
}

func (r *mongoEntryRepository) All(ctx context.Context) ([]models.Entry, error) {
	defer metrics.ObserveDBQuery("entries.find", time.Now())

	cur, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var entries []models.Entry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mongoEntryRepository) FindByEmail(ctx context.Context, email string) (models.Entry, error) {
	defer metrics.ObserveDBQuery("entries.find_by_email", time.Now())

	var entry models.Entry
	err := r.col().FindOne(ctx, bson.M{"email": email}).Decode(&entry)
	return entry, err
}

func (r *mongoEntryRepository) Update(ctx context.Context, entry *models.Entry) error {
	defer metrics.ObserveDBQuery("entries.update", time.Now())

	entry.UpdatedAt = time.Now()
	res, err := r.col().ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoEntryRepository) DeleteByEmail(ctx context.Context, email string) error {
	defer metrics.ObserveDBQuery("entries.delete", time.Now())

	res, err := r.col().DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
