// Package routes exposes the controllers over HTTP under /ezelectronics.
package routes

import (
	"context"
	"net/http"

	"ezelectronics/models"

	"github.com/go-michi/michi"
	"github.com/gorilla/sessions"
)

const Prefix = "/ezelectronics"

type UserService interface {
	CreateUser(ctx context.Context, username, name, surname, password string, role models.Role) error
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
	GetUserByUsername(ctx context.Context, caller models.User, username string) (models.User, error)
	DeleteUser(ctx context.Context, caller models.User, username string) error
	DeleteAll(ctx context.Context) error
	UpdateUserInfo(ctx context.Context, caller models.User, name, surname, address, birthdate, username string) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	SessionUser(ctx context.Context, username string) (models.User, error)
}

type ProductService interface {
	RegisterProducts(ctx context.Context, p models.Product) error
	ChangeProductQuantity(ctx context.Context, model string, delta int, changeDate string) (int, error)
	SellProduct(ctx context.Context, model string, quantity int, sellingDate string) (int, error)
	GetProducts(ctx context.Context, grouping, category, model string) ([]models.Product, error)
	GetAvailableProducts(ctx context.Context, grouping, category, model string) ([]models.Product, error)
	DeleteProduct(ctx context.Context, model string) error
	DeleteAllProducts(ctx context.Context) error
}

type CartService interface {
	GetCart(ctx context.Context, user models.User) (models.Cart, error)
	AddToCart(ctx context.Context, user models.User, model string) error
	CheckoutCart(ctx context.Context, user models.User) error
	GetCustomerCarts(ctx context.Context, user models.User) ([]models.Cart, error)
	RemoveProductFromCart(ctx context.Context, user models.User, model string) error
	ClearCart(ctx context.Context, user models.User) error
	DeleteAllCarts(ctx context.Context) error
	GetAllCarts(ctx context.Context) ([]models.Cart, error)
}

type ReviewService interface {
	AddReview(ctx context.Context, model string, user models.User, score int, comment string) error
	GetProductReviews(ctx context.Context, model string) ([]models.ProductReview, error)
	DeleteReview(ctx context.Context, model string, user models.User) error
	DeleteReviewsOfProduct(ctx context.Context, model string) error
	DeleteAllReviews(ctx context.Context) error
}

type Services struct {
	Users    UserService
	Products ProductService
	Carts    CartService
	Reviews  ReviewService
}

// NewRouter builds the API. Sessions are read from and written to store.
func NewRouter(svc Services, store sessions.Store) http.Handler {
	a := &auth{store: store, users: svc.Users}
	users := &userRoutes{users: svc.Users}
	products := &productRoutes{products: svc.Products}
	carts := &cartRoutes{carts: svc.Carts}
	reviews := &reviewRoutes{reviews: svc.Reviews}

	r := michi.NewRouter()
	r.Route(Prefix, func(sub *michi.Router) {
		sub.HandleFunc("POST /sessions", a.login)
		sub.HandleFunc("GET /sessions/current", a.loggedIn(a.current))
		sub.HandleFunc("DELETE /sessions/current", a.loggedIn(a.logout))

		sub.HandleFunc("POST /users", users.create)
		sub.HandleFunc("GET /users", a.admin(users.list))
		sub.HandleFunc("GET /users/roles/{role}", a.admin(users.listByRole))
		sub.HandleFunc("GET /users/{username}", a.loggedIn(users.get))
		sub.HandleFunc("DELETE /users/{username}", a.loggedIn(users.delete))
		sub.HandleFunc("DELETE /users", a.admin(users.deleteAll))
		sub.HandleFunc("PATCH /users/{username}", a.loggedIn(users.update))

		sub.HandleFunc("POST /products", a.adminOrManager(products.register))
		sub.HandleFunc("PATCH /products/{model}", a.adminOrManager(products.changeQuantity))
		sub.HandleFunc("PATCH /products/{model}/sell", a.adminOrManager(products.sell))
		sub.HandleFunc("GET /products", a.adminOrManager(products.list))
		sub.HandleFunc("GET /products/available", a.loggedIn(products.listAvailable))
		sub.HandleFunc("DELETE /products", a.adminOrManager(products.deleteAll))
		sub.HandleFunc("DELETE /products/{model}", a.adminOrManager(products.delete))

		sub.HandleFunc("GET /carts", a.customer(carts.get))
		sub.HandleFunc("POST /carts", a.customer(carts.add))
		sub.HandleFunc("PATCH /carts", a.customer(carts.checkout))
		sub.HandleFunc("GET /carts/history", a.customer(carts.history))
		sub.HandleFunc("DELETE /carts/products/{model}", a.customer(carts.removeProduct))
		sub.HandleFunc("DELETE /carts/current", a.customer(carts.clear))
		sub.HandleFunc("DELETE /carts", a.adminOrManager(carts.deleteAll))
		sub.HandleFunc("GET /carts/all", a.adminOrManager(carts.all))

		sub.HandleFunc("POST /reviews/{model}", a.customer(reviews.add))
		sub.HandleFunc("GET /reviews/{model}", a.loggedIn(reviews.list))
		sub.HandleFunc("DELETE /reviews/{model}", a.customer(reviews.delete))
		sub.HandleFunc("DELETE /reviews/{model}/all", a.adminOrManager(reviews.deleteOfProduct))
		sub.HandleFunc("DELETE /reviews", a.adminOrManager(reviews.deleteAll))
	})

	return r
}
