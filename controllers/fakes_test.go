package controllers

import (
	"context"
	"sort"
	"time"

	"ezelectronics/dao"
	"ezelectronics/errs"
	"ezelectronics/models"

	"github.com/google/uuid"
)

var testNow = time.Date(2026, time.October, 19, 15, 0, 0, 0, time.UTC)

func fixedClock() clock {
	return func() time.Time { return testNow }
}

type fakeProducts struct {
	byModel map[string]models.Product
	sold    map[string]int
}

func newFakeProducts(products ...models.Product) *fakeProducts {
	f := &fakeProducts{byModel: map[string]models.Product{}, sold: map[string]int{}}
	for _, p := range products {
		f.byModel[p.Model] = p
	}
	return f
}

func (f *fakeProducts) CreateProduct(_ context.Context, p models.Product) error {
	if _, ok := f.byModel[p.Model]; ok {
		return errs.ErrProductAlreadyExists
	}
	f.byModel[p.Model] = p
	return nil
}

func (f *fakeProducts) GetProductByModel(_ context.Context, model string) (models.Product, error) {
	p, ok := f.byModel[model]
	if !ok {
		return models.Product{}, errs.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProducts) GetProducts(_ context.Context, filter dao.ProductFilter) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range f.byModel {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Model != "" && p.Model != filter.Model {
			continue
		}
		if filter.AvailableOnly && p.Quantity == 0 {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}

func (f *fakeProducts) IncreaseQuantity(_ context.Context, model string, delta int) (int, error) {
	p, ok := f.byModel[model]
	if !ok {
		return 0, errs.ErrProductNotFound
	}
	p.Quantity += delta
	f.byModel[model] = p
	return p.Quantity, nil
}

func (f *fakeProducts) SellProduct(_ context.Context, model string, quantity int) (int, error) {
	p, ok := f.byModel[model]
	if !ok {
		return 0, errs.ErrProductNotFound
	}
	if p.Quantity < quantity {
		return 0, errs.ErrLowProductStock
	}
	p.Quantity -= quantity
	f.byModel[model] = p
	f.sold[model] += quantity
	return p.Quantity, nil
}

func (f *fakeProducts) DeleteProduct(_ context.Context, model string) error {
	if _, ok := f.byModel[model]; !ok {
		return errs.ErrProductNotFound
	}
	delete(f.byModel, model)
	return nil
}

func (f *fakeProducts) DeleteAllProducts(context.Context) error {
	f.byModel = map[string]models.Product{}
	return nil
}

// fakeCarts keeps carts in insertion order and checks out against the
// product fake, mirroring the transactional store.
type fakeCarts struct {
	carts    []models.Cart
	products *fakeProducts
	writes   int
	// beforeCreate runs ahead of CreateCart to interleave another writer.
	beforeCreate func()
}

func (f *fakeCarts) current(username string) int {
	for i, c := range f.carts {
		if c.Customer == username && !c.Paid {
			return i
		}
	}
	return -1
}

func (f *fakeCarts) GetCurrentCart(_ context.Context, username string) (models.Cart, error) {
	i := f.current(username)
	if i < 0 {
		return models.Cart{}, errs.ErrCartNotFound
	}
	cart := f.carts[i]
	cart.Products = append(models.ProductsInCart{}, cart.Products...)
	return cart, nil
}

func (f *fakeCarts) CreateCart(_ context.Context, cart models.Cart) (uuid.UUID, error) {
	if f.beforeCreate != nil {
		f.beforeCreate()
		f.beforeCreate = nil
	}
	f.writes++
	if f.current(cart.Customer) >= 0 {
		return uuid.Nil, errs.ErrCurrentCartExists
	}
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	f.carts = append(f.carts, cart)
	return cart.ID, nil
}

func (f *fakeCarts) UpdateCurrentCart(_ context.Context, cart models.Cart) error {
	f.writes++
	i := f.current(cart.Customer)
	if i < 0 {
		return errs.ErrCartNotFound
	}
	f.carts[i] = cart
	return nil
}

func (f *fakeCarts) DeleteCurrentCart(_ context.Context, username string) error {
	f.writes++
	i := f.current(username)
	if i < 0 {
		return errs.ErrCartNotFound
	}
	f.carts = append(f.carts[:i], f.carts[i+1:]...)
	return nil
}

func (f *fakeCarts) CheckoutCart(ctx context.Context, cart models.Cart, paymentDate string) error {
	f.writes++
	i := f.current(cart.Customer)
	if i < 0 {
		return errs.ErrCartNotFound
	}
	for _, item := range cart.Products {
		if _, err := f.products.SellProduct(ctx, item.Model, item.Quantity); err != nil {
			return err
		}
	}
	f.carts[i].Paid = true
	f.carts[i].PaymentDate = &paymentDate
	return nil
}

func (f *fakeCarts) GetCustomerCarts(_ context.Context, username string) ([]models.Cart, error) {
	out := []models.Cart{}
	for _, c := range f.carts {
		if c.Customer == username && c.Paid {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCarts) GetAllCarts(context.Context) ([]models.Cart, error) {
	return append([]models.Cart{}, f.carts...), nil
}

func (f *fakeCarts) DeleteAllCarts(context.Context) error {
	f.carts = nil
	return nil
}

type fakeReviews struct {
	reviews []models.ProductReview
}

func (f *fakeReviews) find(model, username string) int {
	for i, r := range f.reviews {
		if r.Model == model && r.User == username {
			return i
		}
	}
	return -1
}

func (f *fakeReviews) AddReview(_ context.Context, review models.ProductReview) error {
	if f.find(review.Model, review.User) >= 0 {
		return errs.ErrExistingReview
	}
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviews) GetProductReviews(_ context.Context, model string) ([]models.ProductReview, error) {
	out := []models.ProductReview{}
	for _, r := range f.reviews {
		if r.Model == model {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviews) DeleteReview(_ context.Context, model, username string) error {
	i := f.find(model, username)
	if i < 0 {
		return errs.ErrNoReviewProduct
	}
	f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
	return nil
}

func (f *fakeReviews) DeleteReviewsOfProduct(_ context.Context, model string) error {
	kept := f.reviews[:0]
	for _, r := range f.reviews {
		if r.Model != model {
			kept = append(kept, r)
		}
	}
	f.reviews = kept
	return nil
}

func (f *fakeReviews) DeleteAllReviews(context.Context) error {
	f.reviews = nil
	return nil
}

type fakeUsers struct {
	byName  map[string]models.User
	updated []models.User
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{byName: map[string]models.User{}}
	for _, u := range users {
		f.byName[u.Username] = u
	}
	return f
}

func (f *fakeUsers) CreateUser(_ context.Context, user models.User) error {
	if _, ok := f.byName[user.Username]; ok {
		return errs.ErrUserAlreadyExists
	}
	f.byName[user.Username] = user
	return nil
}

func (f *fakeUsers) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return models.User{}, errs.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetUsers(context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range f.byName {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (f *fakeUsers) GetUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	all, _ := f.GetUsers(ctx)
	out := []models.User{}
	for _, u := range all {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) DeleteUser(_ context.Context, username string) error {
	if _, ok := f.byName[username]; !ok {
		return errs.ErrUserNotFound
	}
	delete(f.byName, username)
	return nil
}

func (f *fakeUsers) DeleteAllNonAdmin(context.Context) error {
	for name, u := range f.byName {
		if u.Role != models.RoleAdmin {
			delete(f.byName, name)
		}
	}
	return nil
}

func (f *fakeUsers) UpdateUserInfo(_ context.Context, user models.User) (models.User, error) {
	if _, ok := f.byName[user.Username]; !ok {
		return models.User{}, errs.ErrUserNotFound
	}
	f.byName[user.Username] = user
	f.updated = append(f.updated, user)
	return user, nil
}
