package controllers

import (
	"context"
	"errors"
	"time"

	"ezelectronics/errs"
	"ezelectronics/models"
	"ezelectronics/utils"
)

type UserController struct {
	users UserStore
	now   clock
}

func NewUserController(users UserStore) *UserController {
	return &UserController{users: users, now: time.Now}
}

// CreateUser stores a new account with a bcrypt-hashed password.
func (c *UserController) CreateUser(ctx context.Context, username, name, surname, password string, role models.Role) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return c.users.CreateUser(ctx, models.User{
		Username: username,
		Name:     name,
		Surname:  surname,
		Password: hashed,
		Role:     role,
	})
}

func (c *UserController) GetUsers(ctx context.Context) ([]models.User, error) {
	return c.users.GetUsers(ctx)
}

func (c *UserController) GetUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return c.users.GetUsersByRole(ctx, role)
}

// GetUserByUsername lets admins read any account and everyone else only
// their own.
func (c *UserController) GetUserByUsername(ctx context.Context, caller models.User, username string) (models.User, error) {
	if caller.Role != models.RoleAdmin && caller.Username != username {
		return models.User{}, errs.ErrUserNotAdmin
	}
	return c.users.GetUserByUsername(ctx, username)
}

func (c *UserController) DeleteUser(ctx context.Context, caller models.User, username string) error {
	if _, err := c.target(ctx, caller, username); err != nil {
		return err
	}
	return c.users.DeleteUser(ctx, username)
}

// DeleteAll removes every account except admins.
func (c *UserController) DeleteAll(ctx context.Context) error {
	return c.users.DeleteAllNonAdmin(ctx)
}

// UpdateUserInfo changes the personal data of username and returns the
// stored result.
func (c *UserController) UpdateUserInfo(ctx context.Context, caller models.User, name, surname, address, birthdate, username string) (models.User, error) {
	target, err := c.target(ctx, caller, username)
	if err != nil {
		return models.User{}, err
	}

	born, err := models.ParseDate(birthdate)
	if err != nil {
		return models.User{}, errs.ErrValidation
	}
	if models.IsAfterDay(born, c.now()) {
		return models.User{}, errs.ErrUserInvalidDate
	}

	target.Name = name
	target.Surname = surname
	target.Address = address
	target.Birthdate = birthdate
	return c.users.UpdateUserInfo(ctx, target)
}

// Authenticate checks a username and password pair.
func (c *UserController) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := c.users.GetUserByUsername(ctx, username)
	if errors.Is(err, errs.ErrUserNotFound) {
		return models.User{}, errs.ErrUnauthorizedUser
	}
	if err != nil {
		return models.User{}, err
	}
	if err := utils.CheckPassword(user.Password, password); err != nil {
		return models.User{}, errs.ErrUnauthorizedUser
	}
	return user, nil
}

// SessionUser loads the account behind an authenticated session.
func (c *UserController) SessionUser(ctx context.Context, username string) (models.User, error) {
	return c.users.GetUserByUsername(ctx, username)
}

// target loads the account caller wants to modify. Non-admins may only touch
// their own account and admins may not touch other admins.
func (c *UserController) target(ctx context.Context, caller models.User, username string) (models.User, error) {
	if caller.Role != models.RoleAdmin && caller.Username != username {
		return models.User{}, errs.ErrUserNotAdmin
	}

	user, err := c.users.GetUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if caller.Username != username && user.Role == models.RoleAdmin {
		return models.User{}, errs.ErrUserIsAdmin
	}
	return user, nil
}
