package controllers

import (
	"context"
	"time"

	"ezelectronics/models"
)

type ReviewController struct {
	reviews  ReviewStore
	products ProductStore
	now      clock
}

func NewReviewController(reviews ReviewStore, products ProductStore) *ReviewController {
	return &ReviewController{reviews: reviews, products: products, now: time.Now}
}

// AddReview records the user's review of model, dated today.
func (c *ReviewController) AddReview(ctx context.Context, model string, user models.User, score int, comment string) error {
	if err := c.productExists(ctx, model); err != nil {
		return err
	}
	return c.reviews.AddReview(ctx, models.ProductReview{
		Model:   model,
		User:    user.Username,
		Score:   score,
		Date:    c.now.today(),
		Comment: comment,
	})
}

func (c *ReviewController) GetProductReviews(ctx context.Context, model string) ([]models.ProductReview, error) {
	if err := c.productExists(ctx, model); err != nil {
		return nil, err
	}
	return c.reviews.GetProductReviews(ctx, model)
}

func (c *ReviewController) DeleteReview(ctx context.Context, model string, user models.User) error {
	if err := c.productExists(ctx, model); err != nil {
		return err
	}
	return c.reviews.DeleteReview(ctx, model, user.Username)
}

func (c *ReviewController) DeleteReviewsOfProduct(ctx context.Context, model string) error {
	if err := c.productExists(ctx, model); err != nil {
		return err
	}
	return c.reviews.DeleteReviewsOfProduct(ctx, model)
}

func (c *ReviewController) DeleteAllReviews(ctx context.Context) error {
	return c.reviews.DeleteAllReviews(ctx)
}

func (c *ReviewController) productExists(ctx context.Context, model string) error {
	_, err := c.products.GetProductByModel(ctx, model)
	return err
}
