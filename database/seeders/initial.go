package seeders

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/kusina/app/models"
	"github.com/shashiranjanraj/kusina/pkg/auth"
)

func init() {
	Register("admin_user", SeedAdminUser)
	Register("menus", SeedMenus)
}

// SeedAdminUser creates the default back-office account when no admin
// exists yet. Change the password right after the first login.
func SeedAdminUser(ctx context.Context, db *mongo.Database) error {
	n, err := db.Collection("users").CountDocuments(ctx, bson.M{"role": "admin"})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := auth.HashPassword("changeme123")
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = db.Collection("users").InsertOne(ctx, models.User{
		FirstName: "Admin",
		LastName:  "Kusina",
		Email:     "admin@kusina.app",
		Password:  hash,
		Role:      "admin",
		CreatedAt: now,
		UpdatedAt: now,
	})
	return err
}

// SeedMenus fills an empty catalogue with a starter menu.
func SeedMenus(ctx context.Context, db *mongo.Database) error {
	n, err := db.Collection("menus").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	now := time.Now()
	dishes := []interface{}{
		models.MenuItem{Name: "Chicken Adobo", Price: 120, Description: "Braised in soy and vinegar", Quantity: 25, CreatedAt: now, UpdatedAt: now},
		models.MenuItem{Name: "Sinigang na Baboy", Price: 150, Description: "Pork in sour tamarind broth", Quantity: 20, CreatedAt: now, UpdatedAt: now},
		models.MenuItem{Name: "Pancit Canton", Price: 90, Description: "Stir-fried noodles with vegetables", Quantity: 30, CreatedAt: now, UpdatedAt: now},
		models.MenuItem{Name: "Halo-Halo", Price: 85, Description: "Shaved ice dessert", Quantity: 15, CreatedAt: now, UpdatedAt: now},
		models.MenuItem{Name: "Lechon Kawali", Price: 180, Description: "Crispy fried pork belly", Quantity: 10, CreatedAt: now, UpdatedAt: now},
	}
	_, err = db.Collection("menus").InsertMany(ctx, dishes)
	return err
}
