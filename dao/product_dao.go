package dao

import (
	"context"
	"database/sql"
	"errors"

	"ezelectronics/errs"
	"ezelectronics/models"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var productColumns = []string{"model", "category", "quantity", "details", "selling_price", "arrival_date"}

// ProductFilter narrows GetProducts. Empty fields do not filter.
type ProductFilter struct {
	Category      models.Category
	Model         string
	AvailableOnly bool
}

type ProductDAO struct {
	db *sqlx.DB
}

func NewProductDAO(db *sqlx.DB) *ProductDAO {
	return &ProductDAO{db: db}
}

func (d *ProductDAO) CreateProduct(ctx context.Context, p models.Product) error {
	query, args, err := QB.Insert("products").
		Columns(productColumns...).
		Values(p.Model, p.Category, p.Quantity, p.Details, p.SellingPrice, p.ArrivalDate).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := d.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrProductAlreadyExists
		}
		return err
	}
	return nil
}

func (d *ProductDAO) GetProductByModel(ctx context.Context, model string) (models.Product, error) {
	var product models.Product
	query, args, err := QB.Select(productColumns...).From("products").Where(squirrel.Eq{"model": model}).ToSql()
	if err != nil {
		return product, err
	}

	if err := d.db.GetContext(ctx, &product, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return product, errs.ErrProductNotFound
		}
		return product, err
	}
	return product, nil
}

func (d *ProductDAO) GetProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	builder := QB.Select(productColumns...).From("products")
	if filter.Category != "" {
		builder = builder.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Model != "" {
		builder = builder.Where(squirrel.Eq{"model": filter.Model})
	}
	if filter.AvailableOnly {
		builder = builder.Where(squirrel.Gt{"quantity": 0})
	}

	query, args, err := builder.OrderBy("model").ToSql()
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := d.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, err
	}
	return products, nil
}

// IncreaseQuantity adds delta units to the stock and returns the new
// quantity.
func (d *ProductDAO) IncreaseQuantity(ctx context.Context, model string, delta int) (int, error) {
	query, args, err := QB.Update("products").
		Set("quantity", squirrel.Expr("quantity + ?", delta)).
		Where(squirrel.Eq{"model": model}).
		Suffix("RETURNING quantity").
		ToSql()
	if err != nil {
		return 0, err
	}

	var quantity int
	if err := d.db.GetContext(ctx, &quantity, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.ErrProductNotFound
		}
		return 0, err
	}
	return quantity, nil
}

// SellProduct removes quantity units from the stock and returns what is
// left.
func (d *ProductDAO) SellProduct(ctx context.Context, model string, quantity int) (int, error) {
	return decrementStock(ctx, d.db, model, quantity)
}

func (d *ProductDAO) DeleteProduct(ctx context.Context, model string) error {
	return exec(ctx, d.db, QB.Delete("products").Where(squirrel.Eq{"model": model}), errs.ErrProductNotFound)
}

func (d *ProductDAO) DeleteAllProducts(ctx context.Context) error {
	return exec(ctx, d.db, QB.Delete("products"), nil)
}

// decrementStock only touches a row that still holds at least quantity units.
func decrementStock(ctx context.Context, q querier, model string, quantity int) (int, error) {
	query, args, err := QB.Update("products").
		Set("quantity", squirrel.Expr("quantity - ?", quantity)).
		Where(squirrel.Eq{"model": model}).
		Where(squirrel.GtOrEq{"quantity": quantity}).
		Suffix("RETURNING quantity").
		ToSql()
	if err != nil {
		return 0, err
	}

	var left int
	if err := q.GetContext(ctx, &left, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.ErrLowProductStock
		}
		return 0, err
	}
	return left, nil
}
