package controllers

import (
	"context"
	"errors"
	"time"

	"ezelectronics/errs"
	"ezelectronics/models"

	"golang.org/x/exp/slices"
)

type CartController struct {
	carts    CartStore
	products ProductStore
	now      clock
}

func NewCartController(carts CartStore, products ProductStore) *CartController {
	return &CartController{carts: carts, products: products, now: time.Now}
}

// GetCart returns the unpaid cart of the user, or an empty unsaved one.
func (c *CartController) GetCart(ctx context.Context, user models.User) (models.Cart, error) {
	cart, err := c.carts.GetCurrentCart(ctx, user.Username)
	if errors.Is(err, errs.ErrCartNotFound) {
		return models.NewCart(user.Username), nil
	}
	return cart, err
}

// AddToCart puts one unit of model in the user's unpaid cart, creating the
// cart when there is none. A cart created concurrently by another request is
// re-read and updated instead.
func (c *CartController) AddToCart(ctx context.Context, user models.User, model string) error {
	product, err := c.products.GetProductByModel(ctx, model)
	if err != nil {
		return err
	}
	if product.Quantity < 1 {
		return errs.ErrEmptyProductStock
	}

	err = c.addProduct(ctx, user.Username, product)
	if errors.Is(err, errs.ErrCurrentCartExists) {
		err = c.addProduct(ctx, user.Username, product)
	}
	return err
}

func (c *CartController) addProduct(ctx context.Context, username string, product models.Product) error {
	exists := true
	cart, err := c.carts.GetCurrentCart(ctx, username)
	if errors.Is(err, errs.ErrCartNotFound) {
		exists = false
		cart = models.NewCart(username)
	} else if err != nil {
		return err
	}

	idx := slices.IndexFunc(cart.Products, func(item models.ProductInCart) bool {
		return item.Model == product.Model
	})
	if idx >= 0 {
		cart.Products[idx].Quantity++
		cart.Products[idx].Price = product.SellingPrice
		cart.Products[idx].Category = product.Category
	} else {
		cart.Products = append(cart.Products, models.ProductInCart{
			Model:    product.Model,
			Quantity: 1,
			Category: product.Category,
			Price:    product.SellingPrice,
		})
	}
	cart.Total = models.CalculateTotal(cart.Products)

	if exists {
		return c.carts.UpdateCurrentCart(ctx, cart)
	}
	_, err = c.carts.CreateCart(ctx, cart)
	return err
}

// CheckoutCart pays the unpaid cart. Stock is checked for every line before
// anything is written.
func (c *CartController) CheckoutCart(ctx context.Context, user models.User) error {
	cart, err := c.carts.GetCurrentCart(ctx, user.Username)
	if err != nil {
		return err
	}
	if len(cart.Products) == 0 {
		return errs.ErrEmptyCart
	}

	for _, item := range cart.Products {
		product, err := c.products.GetProductByModel(ctx, item.Model)
		if err != nil {
			return err
		}
		if product.Quantity == 0 {
			return errs.ErrEmptyProductStock
		}
		if item.Quantity > product.Quantity {
			return errs.ErrLowProductStock
		}
	}

	return c.carts.CheckoutCart(ctx, cart, c.now.today())
}

func (c *CartController) GetCustomerCarts(ctx context.Context, user models.User) ([]models.Cart, error) {
	return c.carts.GetCustomerCarts(ctx, user.Username)
}

// RemoveProductFromCart takes one unit of model out of the unpaid cart and
// drops the line when it reaches zero.
func (c *CartController) RemoveProductFromCart(ctx context.Context, user models.User, model string) error {
	if _, err := c.products.GetProductByModel(ctx, model); err != nil {
		return err
	}

	cart, err := c.carts.GetCurrentCart(ctx, user.Username)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(cart.Products, func(item models.ProductInCart) bool {
		return item.Model == model
	})
	if idx < 0 {
		return errs.ErrProductNotInCart
	}
	if cart.Products[idx].Quantity > 1 {
		cart.Products[idx].Quantity--
	} else {
		cart.Products = slices.Delete(cart.Products, idx, idx+1)
	}
	cart.Total = models.CalculateTotal(cart.Products)

	return c.carts.UpdateCurrentCart(ctx, cart)
}

// ClearCart deletes the unpaid cart of the user.
func (c *CartController) ClearCart(ctx context.Context, user models.User) error {
	return c.carts.DeleteCurrentCart(ctx, user.Username)
}

func (c *CartController) DeleteAllCarts(ctx context.Context) error {
	return c.carts.DeleteAllCarts(ctx)
}

func (c *CartController) GetAllCarts(ctx context.Context) ([]models.Cart, error) {
	return c.carts.GetAllCarts(ctx)
}
