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

// MenuRepository handles persistence for catalogue items.
//
// DecrementStock performs the conditional check-and-decrement as a single
// update, so two concurrent callers can never jointly over-sell an item.
// It returns mongo.ErrNoDocuments when no document matched, which means
// either the item does not exist or its quantity is below qty; callers
// that care about the difference follow up with Find.
type MenuRepository interface {
	All(ctx context.Context) ([]models.MenuItem, error)
	Find(ctx context.Context, id string) (models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, id string, qty int) (models.MenuItem, error)
}

const menuCollection = "menus"

type mongoMenuRepository struct{}

// NewMenuRepository returns the Mongo-backed catalogue repository.
func NewMenuRepository() MenuRepository {
	return &mongoMenuRepository{}
}

func (r *mongoMenuRepository) col() *mongo.Collection {
	return database.Collection(menuCollection)
}

func (r *mongoMenuRepository) All(ctx context.Context) ([]models.MenuItem, error) {
	defer metrics.ObserveDBQuery("menus.find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.col().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoMenuRepository) Find(ctx context.Context, id string) (models.MenuItem, error) {
	defer metrics.ObserveDBQuery("menus.find_one", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.MenuItem{}, mongo.ErrNoDocuments
	}
	var item models.MenuItem
	err = r.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	return item, err
}

func (r *mongoMenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	defer metrics.ObserveDBQuery("menus.insert", time.Now())

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	res, err := r.col().InsertOne(ctx, item)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

func (r *mongoMenuRepository) Update(ctx context.Context, item *models.MenuItem) error {
	defer metrics.ObserveDBQuery("menus.update", time.Now())

	item.UpdatedAt = time.Now()
	res, err := r.col().ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoMenuRepository) Delete(ctx context.Context, id string) error {
	defer metrics.ObserveDBQuery("menus.delete", time.Now())

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

func (r *mongoMenuRepository) DecrementStock(ctx context.Context, id string, qty int) (models.MenuItem, error) {
	defer metrics.ObserveDBQuery("menus.decrement_stock", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.MenuItem{}, mongo.ErrNoDocuments
	}

	filter := bson.M{
		"_id":      oid,
		"quantity": bson.M{"$gte": qty},
	}
	update := bson.M{
		"$inc": bson.M{"quantity": -qty},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item models.MenuItem
	err = r.col().FindOneAndUpdate(ctx, filter, update, opts).Decode(&item)
	return item, err
}
