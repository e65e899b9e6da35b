package routes_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kusina/app/controllers"
	appgraphql "github.com/shashiranjanraj/kusina/app/graphql"
	"github.com/shashiranjanraj/kusina/app/repositories"
	"github.com/shashiranjanraj/kusina/app/routes"
	"github.com/shashiranjanraj/kusina/app/services"
	"github.com/shashiranjanraj/kusina/pkg/router"
	"github.com/shashiranjanraj/kusina/pkg/testkit"
)

// newTestHandler wires the full route table onto in-memory drivers. The cart
// routes stay mounted but the scenarios below avoid them because they need
// the session middleware, which the kernel adds on top of this router.
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	menus := repositories.NewMemoryMenuRepository()
	users := repositories.NewMemoryUserRepository()
	entries := repositories.NewMemoryEntryRepository()
	carts := repositories.NewMemoryCartStore(time.Hour)

	stock := services.NewStockService(menus, 0)
	schema, err := appgraphql.NewSchema(menus, users)
	require.NoError(t, err)

	r := router.New()
	routes.RegisterAPI(r, routes.Controllers{
		Auth:    controllers.NewAuthController(services.NewAuthService(users)),
		User:    controllers.NewUserController(services.NewUserService(users)),
		Menu:    controllers.NewMenuController(services.NewCatalogService(menus), stock),
		Cart:    controllers.NewCartController(services.NewCartService(stock, carts)),
		Entry:   controllers.NewEntryController(services.NewEntryService(entries)),
		GraphQL: appgraphql.Handler(schema),
	})
	return r.Handler()
}

// Scenarios share one handler and run in file name order, so the signup
// fixtures build on each other (the duplicate case reposts the first body).
func TestAPIScenarios(t *testing.T) {
	testkit.RunDir(t, newTestHandler(t), "testdata")
}
