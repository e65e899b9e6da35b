package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/kusina/pkg/migration"
)

func init() {
	migration.Register("20260101000000_create_users_indexes", &CreateUsersIndexes{})
	migration.Register("20260101000001_create_menus_indexes", &CreateMenusIndexes{})
	migration.Register("20260101000002_create_entries_indexes", &CreateEntriesIndexes{})
}

// -------- 0001: users --------

// CreateUsersIndexes enforces email uniqueness at the database, so two
// concurrent sign-ups with the same address cannot both win.
type CreateUsersIndexes struct{}

func (m *CreateUsersIndexes) Up(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	return err
}

func (m *CreateUsersIndexes) Down(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().DropOne(ctx, "uniq_email")
	return err
}

// -------- 0002: menus --------

type CreateMenusIndexes struct{}

func (m *CreateMenusIndexes) Up(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("menus").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("idx_name"),
	})
	return err
}

func (m *CreateMenusIndexes) Down(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("menus").Indexes().DropOne(ctx, "idx_name")
	return err
}

// -------- 0003: entries --------

type CreateEntriesIndexes struct{}

func (m *CreateEntriesIndexes) Up(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("entries").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("idx_email"),
	})
	return err
}

func (m *CreateEntriesIndexes) Down(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("entries").Indexes().DropOne(ctx, "idx_email")
	return err
}
