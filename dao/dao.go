// Package dao holds one data access object per table. Every method issues
// parameterized SQL built with squirrel and maps rows onto models.
package dao

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

var QB = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// querier is implemented by both *sqlx.DB and *sqlx.Tx.
type querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// exec runs a statement and reports notFound when it touched no rows.
func exec(ctx context.Context, q querier, builder squirrel.Sqlizer, notFound error) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if notFound == nil {
		return nil
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
