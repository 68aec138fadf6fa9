package dao

import (
	"context"
	"database/sql"
	"errors"

	"ezelectronics/errs"
	"ezelectronics/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var cartColumns = []string{"id", "customer", "paid", "payment_date", "total", "products"}

type CartDAO struct {
	db *sqlx.DB
}

func NewCartDAO(db *sqlx.DB) *CartDAO {
	return &CartDAO{db: db}
}

// GetCurrentCart returns the unpaid cart of username.
func (d *CartDAO) GetCurrentCart(ctx context.Context, username string) (models.Cart, error) {
	var cart models.Cart
	query, args, err := QB.Select(cartColumns...).
		From("cart").
		Where(squirrel.Eq{"customer": username, "paid": false}).
		ToSql()
	if err != nil {
		return cart, err
	}

	if err := d.db.GetContext(ctx, &cart, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cart, errs.ErrCartNotFound
		}
		return cart, err
	}
	return cart, nil
}

// CreateCart stores a new unpaid cart. A zero ID is replaced with a fresh
// one, which is returned. ErrCurrentCartExists reports that the customer
// already has an unpaid cart.
func (d *CartDAO) CreateCart(ctx context.Context, cart models.Cart) (uuid.UUID, error) {
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}

	query, args, err := QB.Insert("cart").
		Columns(cartColumns...).
		Values(cart.ID, cart.Customer, false, nil, cart.Total, cart.Products).
		ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := d.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, errs.ErrCurrentCartExists
		}
		return uuid.Nil, err
	}
	return cart.ID, nil
}

// UpdateCurrentCart writes the lines and total of an unpaid cart.
func (d *CartDAO) UpdateCurrentCart(ctx context.Context, cart models.Cart) error {
	return exec(ctx, d.db, QB.Update("cart").
		Set("total", cart.Total).
		Set("products", cart.Products).
		Where(squirrel.Eq{"id": cart.ID, "paid": false}), errs.ErrCartNotFound)
}

// DeleteCurrentCart removes the unpaid cart of username.
func (d *CartDAO) DeleteCurrentCart(ctx context.Context, username string) error {
	return exec(ctx, d.db, QB.Delete("cart").Where(squirrel.Eq{"customer": username, "paid": false}), errs.ErrCartNotFound)
}

// CheckoutCart sells every line of the unpaid cart and marks it paid, all in
// one transaction.
func (d *CartDAO) CheckoutCart(ctx context.Context, cart models.Cart, paymentDate string) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	for _, item := range cart.Products {
		if _, err := decrementStock(ctx, tx, item.Model, item.Quantity); err != nil {
			tx.Rollback()
			return err
		}
	}

	err = exec(ctx, tx, QB.Update("cart").
		Set("paid", true).
		Set("payment_date", paymentDate).
		Where(squirrel.Eq{"id": cart.ID, "paid": false}), errs.ErrCartNotFound)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// GetCustomerCarts returns the paid carts of username.
func (d *CartDAO) GetCustomerCarts(ctx context.Context, username string) ([]models.Cart, error) {
	return d.selectCarts(ctx, QB.Select(cartColumns...).
		From("cart").
		Where(squirrel.Eq{"customer": username, "paid": true}).
		OrderBy("payment_date"))
}

func (d *CartDAO) GetAllCarts(ctx context.Context) ([]models.Cart, error) {
	return d.selectCarts(ctx, QB.Select(cartColumns...).From("cart").OrderBy("customer", "paid"))
}

func (d *CartDAO) selectCarts(ctx context.Context, builder squirrel.SelectBuilder) ([]models.Cart, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	carts := []models.Cart{}
	if err := d.db.SelectContext(ctx, &carts, query, args...); err != nil {
		return nil, err
	}
	return carts, nil
}

func (d *CartDAO) DeleteAllCarts(ctx context.Context) error {
	return exec(ctx, d.db, QB.Delete("cart"), nil)
}
