// Package controllers holds the business rules of the store. Controllers
// talk to storage only through the small interfaces below, which the dao
// package satisfies.
package controllers

import (
	"context"
	"time"

	"ezelectronics/dao"
	"ezelectronics/models"

	"github.com/google/uuid"
)

type UserStore interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
	DeleteUser(ctx context.Context, username string) error
	DeleteAllNonAdmin(ctx context.Context) error
	UpdateUserInfo(ctx context.Context, user models.User) (models.User, error)
}

type ProductStore interface {
	CreateProduct(ctx context.Context, p models.Product) error
	GetProductByModel(ctx context.Context, model string) (models.Product, error)
	GetProducts(ctx context.Context, filter dao.ProductFilter) ([]models.Product, error)
	IncreaseQuantity(ctx context.Context, model string, delta int) (int, error)
	SellProduct(ctx context.Context, model string, quantity int) (int, error)
	DeleteProduct(ctx context.Context, model string) error
	DeleteAllProducts(ctx context.Context) error
}

type CartStore interface {
	GetCurrentCart(ctx context.Context, username string) (models.Cart, error)
	CreateCart(ctx context.Context, cart models.Cart) (uuid.UUID, error)
	UpdateCurrentCart(ctx context.Context, cart models.Cart) error
	DeleteCurrentCart(ctx context.Context, username string) error
	CheckoutCart(ctx context.Context, cart models.Cart, paymentDate string) error
	GetCustomerCarts(ctx context.Context, username string) ([]models.Cart, error)
	GetAllCarts(ctx context.Context) ([]models.Cart, error)
	DeleteAllCarts(ctx context.Context) error
}

type ReviewStore interface {
	AddReview(ctx context.Context, review models.ProductReview) error
	GetProductReviews(ctx context.Context, model string) ([]models.ProductReview, error)
	DeleteReview(ctx context.Context, model, username string) error
	DeleteReviewsOfProduct(ctx context.Context, model string) error
	DeleteAllReviews(ctx context.Context) error
}

// clock is swapped in tests to pin "today".
type clock func() time.Time

func (c clock) today() string {
	return models.FormatDate(c())
}
