package routes

import (
	"net/http"

	"github.com/shashiranjanraj/kusina/app/controllers"
	"github.com/shashiranjanraj/kusina/pkg/middleware"
	"github.com/shashiranjanraj/kusina/pkg/rbac"
	"github.com/shashiranjanraj/kusina/pkg/router"
)

// Controllers bundles everything RegisterAPI mounts.
type Controllers struct {
	Auth    *controllers.AuthController
	User    *controllers.UserController
	Menu    *controllers.MenuController
	Cart    *controllers.CartController
	Entry   *controllers.EntryController
	GraphQL http.HandlerFunc
}

// RegisterAPI mounts every route. Paths follow what the dashboard and the
// storefront already call, casing included.
func RegisterAPI(r *router.Router, c Controllers) {
	// Accounts
	r.Post("/signup", "auth.signup", c.Auth.SignUp)
	r.Post("/signin", "auth.signin", c.Auth.SignIn)

	// Catalogue, public read
	r.Get("/get-menu", "menu.list", c.Menu.GetMenu)
	r.Get("/viewmenu", "menu.list_alias", c.Menu.GetMenu)

	// Cart, keyed by session
	cart := r.Group("/cart")
	cart.Post("/add", "cart.add", c.Cart.Add)
	cart.Get("", "cart.show", c.Cart.Get)
	cart.Delete("", "cart.clear", c.Cart.Clear)

	// Record book
	r.Post("/AddEntry", "entries.add", c.Entry.Add)
	r.Get("/ViewEntries", "entries.list", c.Entry.View)
	r.Post("/EditEntry", "entries.edit", c.Entry.Edit)
	r.Delete("/delete", "entries.delete", c.Entry.Delete)

	// Back office
	admin := r.Group("", middleware.AuthMiddleware, rbac.HasRole("admin"))
	admin.Get("/viewusers", "users.list", c.User.ViewUsers)
	admin.Post("/adduser", "users.add", c.User.AddUser)
	admin.Post("/updateuser", "users.update", c.User.UpdateUser)
	admin.Post("/deleteuser", "users.delete", c.User.DeleteUser)

	admin.Post("/upload-menu", "menu.upload", c.Menu.UploadMenu)
	admin.Put("/update-menu/{id}", "menu.update", c.Menu.UpdateMenu)
	admin.Delete("/delete-menu/{id}", "menu.delete", c.Menu.DeleteMenu)
	admin.Put("/update-stock", "menu.update_stock", c.Menu.UpdateStock)

	admin.Post("/graphql", "admin.graphql", c.GraphQL)
}
