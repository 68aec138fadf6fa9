package controllers

import (
	"context"
	"fmt"
	"time"

	"ezelectronics/dao"
	"ezelectronics/errs"
	"ezelectronics/models"
)

const (
	GroupingCategory = "category"
	GroupingModel    = "model"
)

type ProductController struct {
	products ProductStore
	now      clock
}

func NewProductController(products ProductStore) *ProductController {
	return &ProductController{products: products, now: time.Now}
}

// resolveDate returns raw, or today when raw is empty. Dates after today are
// rejected with ErrDate.
func resolveDate(raw string, now clock) (time.Time, string, error) {
	if raw == "" {
		raw = now.today()
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		return time.Time{}, "", errs.ErrValidation
	}
	if models.IsAfterDay(date, now()) {
		return time.Time{}, "", errs.ErrDate
	}
	return date, raw, nil
}

// notBeforeArrival rejects operations dated before the product arrived.
func notBeforeArrival(date time.Time, p models.Product) error {
	arrival, err := models.ParseDate(p.ArrivalDate)
	if err != nil {
		return fmt.Errorf("product %s arrival date: %w", p.Model, err)
	}
	if date.Before(arrival) {
		return errs.ErrDate
	}
	return nil
}

func (c *ProductController) RegisterProducts(ctx context.Context, p models.Product) error {
	_, arrival, err := resolveDate(p.ArrivalDate, c.now)
	if err != nil {
		return err
	}
	p.ArrivalDate = arrival
	return c.products.CreateProduct(ctx, p)
}

// ChangeProductQuantity restocks model by delta and returns the new stock.
func (c *ProductController) ChangeProductQuantity(ctx context.Context, model string, delta int, changeDate string) (int, error) {
	date, _, err := resolveDate(changeDate, c.now)
	if err != nil {
		return 0, err
	}

	product, err := c.products.GetProductByModel(ctx, model)
	if err != nil {
		return 0, err
	}
	if err := notBeforeArrival(date, product); err != nil {
		return 0, err
	}

	return c.products.IncreaseQuantity(ctx, model, delta)
}

// SellProduct removes quantity units of model from stock and returns what is
// left.
func (c *ProductController) SellProduct(ctx context.Context, model string, quantity int, sellingDate string) (int, error) {
	date, _, err := resolveDate(sellingDate, c.now)
	if err != nil {
		return 0, err
	}

	product, err := c.products.GetProductByModel(ctx, model)
	if err != nil {
		return 0, err
	}
	if err := notBeforeArrival(date, product); err != nil {
		return 0, err
	}
	if product.Quantity == 0 {
		return 0, errs.ErrEmptyProductStock
	}
	if product.Quantity < quantity {
		return 0, errs.ErrLowProductStock
	}

	return c.products.SellProduct(ctx, model, quantity)
}

// GetProducts lists the catalog. grouping selects which of category and model
// is used as a filter, and exactly that one must be set.
func (c *ProductController) GetProducts(ctx context.Context, grouping, category, model string) ([]models.Product, error) {
	return c.list(ctx, grouping, category, model, false)
}

// GetAvailableProducts is GetProducts restricted to products in stock.
func (c *ProductController) GetAvailableProducts(ctx context.Context, grouping, category, model string) ([]models.Product, error) {
	return c.list(ctx, grouping, category, model, true)
}

func (c *ProductController) list(ctx context.Context, grouping, category, model string, availableOnly bool) ([]models.Product, error) {
	filter, err := productFilter(grouping, category, model)
	if err != nil {
		return nil, err
	}
	filter.AvailableOnly = availableOnly

	if filter.Model != "" {
		if _, err := c.products.GetProductByModel(ctx, filter.Model); err != nil {
			return nil, err
		}
	}

	return c.products.GetProducts(ctx, filter)
}

func productFilter(grouping, category, model string) (dao.ProductFilter, error) {
	switch grouping {
	case "":
		if category != "" || model != "" {
			return dao.ProductFilter{}, errs.ErrGrouping
		}
		return dao.ProductFilter{}, nil
	case GroupingCategory:
		if category == "" || model != "" {
			return dao.ProductFilter{}, errs.ErrGrouping
		}
		return dao.ProductFilter{Category: models.Category(category)}, nil
	case GroupingModel:
		if model == "" || category != "" {
			return dao.ProductFilter{}, errs.ErrGrouping
		}
		return dao.ProductFilter{Model: model}, nil
	default:
		return dao.ProductFilter{}, errs.ErrGrouping
	}
}

func (c *ProductController) DeleteProduct(ctx context.Context, model string) error {
	return c.products.DeleteProduct(ctx, model)
}

func (c *ProductController) DeleteAllProducts(ctx context.Context) error {
	return c.products.DeleteAllProducts(ctx)
}
