package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"ezelectronics/errs"
	"ezelectronics/models"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var userColumns = []string{"username", "name", "surname", "password", "role", "address", "birthdate"}

type UserDAO struct {
	db *sqlx.DB
}

func NewUserDAO(db *sqlx.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser inserts a user whose password is already hashed.
func (d *UserDAO) CreateUser(ctx context.Context, user models.User) error {
	query, args, err := QB.Insert("users").
		Columns(userColumns...).
		Values(user.Username, user.Name, user.Surname, user.Password, user.Role, user.Address, user.Birthdate).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := d.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (d *UserDAO) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	query, args, err := QB.Select(userColumns...).From("users").Where(squirrel.Eq{"username": username}).ToSql()
	if err != nil {
		return user, err
	}

	if err := d.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, errs.ErrUserNotFound
		}
		return user, err
	}
	return user, nil
}

func (d *UserDAO) GetUsers(ctx context.Context) ([]models.User, error) {
	return d.selectUsers(ctx, QB.Select(userColumns...).From("users").OrderBy("username"))
}

func (d *UserDAO) GetUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return d.selectUsers(ctx, QB.Select(userColumns...).From("users").Where(squirrel.Eq{"role": role}).OrderBy("username"))
}

func (d *UserDAO) selectUsers(ctx context.Context, builder squirrel.SelectBuilder) ([]models.User, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if err := d.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (d *UserDAO) DeleteUser(ctx context.Context, username string) error {
	return exec(ctx, d.db, QB.Delete("users").Where(squirrel.Eq{"username": username}), errs.ErrUserNotFound)
}

// DeleteAllNonAdmin removes every Customer and Manager.
func (d *UserDAO) DeleteAllNonAdmin(ctx context.Context) error {
	return exec(ctx, d.db, QB.Delete("users").Where(squirrel.NotEq{"role": models.RoleAdmin}), nil)
}

// UpdateUserInfo overwrites the personal fields of user.Username and returns
// the stored row.
func (d *UserDAO) UpdateUserInfo(ctx context.Context, user models.User) (models.User, error) {
	var updated models.User
	query, args, err := QB.Update("users").
		Set("name", user.Name).
		Set("surname", user.Surname).
		Set("address", user.Address).
		Set("birthdate", user.Birthdate).
		Where(squirrel.Eq{"username": user.Username}).
		Suffix(fmt.Sprintf("RETURNING %s", strings.Join(userColumns, ", "))).
		ToSql()
	if err != nil {
		return updated, err
	}

	if err := d.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return updated, errs.ErrUserNotFound
		}
		return updated, err
	}
	return updated, nil
}
