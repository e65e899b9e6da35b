// Package server boots the service: configuration, stores, background
// workers and the HTTP listener, with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/kusina/app/controllers"
	appgraphql "github.com/shashiranjanraj/kusina/app/graphql"
	"github.com/shashiranjanraj/kusina/app/listeners"
	"github.com/shashiranjanraj/kusina/app/repositories"
	"github.com/shashiranjanraj/kusina/app/routes"
	"github.com/shashiranjanraj/kusina/app/services"
	"github.com/shashiranjanraj/kusina/config"
	_ "github.com/shashiranjanraj/kusina/database/migrations"
	"github.com/shashiranjanraj/kusina/internal/kernel"
	"github.com/shashiranjanraj/kusina/pkg/cache"
	"github.com/shashiranjanraj/kusina/pkg/database"
	"github.com/shashiranjanraj/kusina/pkg/logger"
	"github.com/shashiranjanraj/kusina/pkg/migration"
	"github.com/shashiranjanraj/kusina/pkg/notification"
	"github.com/shashiranjanraj/kusina/pkg/queue"
	"github.com/shashiranjanraj/kusina/pkg/schedule"
	"github.com/shashiranjanraj/kusina/pkg/storage"
	"github.com/shashiranjanraj/kusina/pkg/workerpool"
)

// Start runs the service until the process receives SIGINT or SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := database.Connect(bootCtx); err != nil {
		return fmt.Errorf("server: mongo: %w", err)
	}
	defer func() {
		disCtx, disCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disCancel()
		if err := database.Disconnect(disCtx); err != nil {
			logger.Error("mongo disconnect failed", "error", err)
		}
	}()

	// Indexes (unique email among them) must exist before traffic.
	if err := migration.New(database.DB).Run(bootCtx); err != nil {
		return fmt.Errorf("server: migrate: %w", err)
	}

	if err := cache.Connect(); err != nil {
		return fmt.Errorf("server: redis: %w", err)
	}
	storage.Connect()
	setupLogSink()

	notification.SetSlackWebhook(config.Get("SLACK_WEBHOOK_URL", ""))

	// Queue: Redis in production, in-process for dev runs without workers
	// elsewhere. Failed jobs land in their own collection either way.
	if config.Get("QUEUE_DRIVER", "redis") == "memory" {
		queue.SetDriver(queue.NewMemoryDriver())
	} else {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.UseCollection(database.Collection("failed_jobs"))

	// Stores and services.
	menus := repositories.NewMenuRepository()
	users := repositories.NewUserRepository()
	entries := repositories.NewEntryRepository()

	var carts repositories.CartStore
	var memCarts *repositories.MemoryCartStore
	if config.Get("CART_DRIVER", "redis") == "memory" {
		memCarts = repositories.NewMemoryCartStore(config.CartTTL())
		carts = memCarts
	} else {
		carts = repositories.NewRedisCartStore()
	}

	stockService := services.NewStockService(menus, config.LowStockThreshold())
	catalogService := services.NewCatalogService(menus)
	authService := services.NewAuthService(users)
	userService := services.NewUserService(users)
	cartService := services.NewCartService(stockService, carts)
	entryService := services.NewEntryService(entries)

	schema, err := appgraphql.NewSchema(menus, users)
	if err != nil {
		return fmt.Errorf("server: graphql schema: %w", err)
	}

	httpKernel := kernel.NewHTTPKernel(routes.Controllers{
		Auth:    controllers.NewAuthController(authService),
		User:    controllers.NewUserController(userService),
		Menu:    controllers.NewMenuController(catalogService, stockService),
		Cart:    controllers.NewCartController(cartService),
		Entry:   controllers.NewEntryController(entryService),
		GraphQL: appgraphql.Handler(schema),
	})

	// Background machinery.
	pool := workerpool.New(4)
	defer pool.Shutdown()
	listeners.Register(pool)
	queue.StartWorkers(ctx, 2)

	if memCarts != nil {
		schedule.Every(5).Minutes().Name("purge-carts").Run(func() {
			if dropped := memCarts.Purge(time.Now()); dropped > 0 {
				logger.Info("expired carts purged", "count", dropped)
			}
		})
	}
	schedule.Start(ctx)

	addr := net.JoinHostPort(config.AppHost(), config.AppPort())
	srv := &http.Server{
		Addr:              addr,
		Handler:           httpKernel.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("kusina listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// setupLogSink tees log output into Mongo when LOG_TO_MONGO is enabled.
func setupLogSink() {
	if config.Get("LOG_TO_MONGO", "false") != "true" {
		return
	}
	h, err := logger.NewMongoHandler(config.MongoURI(), config.MongoDB(), "logs")
	if err != nil {
		logger.Warn("mongo log sink disabled", "error", err)
		return
	}
	logger.L = slog.New(logger.NewMultiHandler(logger.L.Handler(), h))
	slog.SetDefault(logger.L)
}
