package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/kusina/config"
	"github.com/shashiranjanraj/kusina/database/seeders"
	"github.com/shashiranjanraj/kusina/pkg/database"
	"github.com/shashiranjanraj/kusina/pkg/migration"
)

// bootDB loads config and opens the Mongo connection.
func bootDB(ctx context.Context) error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect(ctx)
}

func dbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// kusina migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := dbCtx()
		defer cancel()
		if err := bootDB(ctx); err != nil {
			return err
		}
		fmt.Println("Running migrations…")
		return migration.New(database.DB).Run(ctx)
	},
}

// kusina migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := dbCtx()
		defer cancel()
		if err := bootDB(ctx); err != nil {
			return err
		}
		fmt.Println("Rolling back last batch…")
		return migration.New(database.DB).Rollback(ctx)
	},
}

// kusina migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := dbCtx()
		defer cancel()
		if err := bootDB(ctx); err != nil {
			return err
		}
		return migration.New(database.DB).Status(ctx)
	},
}

// kusina seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := dbCtx()
		defer cancel()
		if err := bootDB(ctx); err != nil {
			return err
		}
		fmt.Println("Running seeders…")
		return seeders.RunAll(ctx, database.DB)
	},
}
