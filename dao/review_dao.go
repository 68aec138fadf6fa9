package dao

import (
	"context"

	"ezelectronics/errs"
	"ezelectronics/models"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var reviewColumns = []string{"model", "username", "score", "review_date", "comment"}

type ReviewDAO struct {
	db *sqlx.DB
}

func NewReviewDAO(db *sqlx.DB) *ReviewDAO {
	return &ReviewDAO{db: db}
}

// AddReview relies on the (model, username) primary key to reject a second
// review by the same user.
func (d *ReviewDAO) AddReview(ctx context.Context, review models.ProductReview) error {
	query, args, err := QB.Insert("reviews").
		Columns(reviewColumns...).
		Values(review.Model, review.User, review.Score, review.Date, review.Comment).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := d.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrExistingReview
		}
		return err
	}
	return nil
}

func (d *ReviewDAO) GetProductReviews(ctx context.Context, model string) ([]models.ProductReview, error) {
	query, args, err := QB.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"model": model}).
		OrderBy("review_date", "username").
		ToSql()
	if err != nil {
		return nil, err
	}

	reviews := []models.ProductReview{}
	if err := d.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (d *ReviewDAO) DeleteReview(ctx context.Context, model, username string) error {
	return exec(ctx, d.db, QB.Delete("reviews").Where(squirrel.Eq{"model": model, "username": username}), errs.ErrNoReviewProduct)
}

func (d *ReviewDAO) DeleteReviewsOfProduct(ctx context.Context, model string) error {
	return exec(ctx, d.db, QB.Delete("reviews").Where(squirrel.Eq{"model": model}), nil)
}

func (d *ReviewDAO) DeleteAllReviews(ctx context.Context) error {
	return exec(ctx, d.db, QB.Delete("reviews"), nil)
}
