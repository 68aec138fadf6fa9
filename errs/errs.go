// Package errs holds the named error conditions of the store. Each one
// carries the HTTP status it is reported with.
package errs

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Products
var (
	ErrProductNotFound      = New(http.StatusNotFound, "Product not found")
	ErrProductAlreadyExists = New(http.StatusConflict, "The product already exists")
	ErrEmptyProductStock    = New(http.StatusConflict, "Product stock is empty")
	ErrLowProductStock      = New(http.StatusConflict, "Product stock cannot satisfy the requested quantity")
	ErrDate                 = New(http.StatusBadRequest, "Input date is not compatible with the current date")
	ErrGrouping             = New(http.StatusUnprocessableEntity, "Grouping does not match the given filters")
)

// Carts
var (
	ErrCartNotFound     = New(http.StatusNotFound, "Cart not found")
	ErrEmptyCart        = New(http.StatusBadRequest, "Cart is empty")
	ErrProductNotInCart = New(http.StatusNotFound, "Product not in cart")

	ErrCurrentCartExists = New(http.StatusConflict, "The customer already has an unpaid cart")
)

// Reviews
var (
	ErrExistingReview  = New(http.StatusConflict, "You have already reviewed this product")
	ErrNoReviewProduct = New(http.StatusNotFound, "You have not reviewed this product")
)

// Users
var (
	ErrUserNotFound      = New(http.StatusNotFound, "The user does not exist")
	ErrUserAlreadyExists = New(http.StatusConflict, "The username already exists")
	ErrUserNotAdmin      = New(http.StatusUnauthorized, "This operation can be performed only by an admin")
	ErrUserIsAdmin       = New(http.StatusUnauthorized, "Admins cannot be deleted or modified by other admins")
	ErrUnauthorizedUser  = New(http.StatusUnauthorized, "Unauthenticated user")
	ErrUserNotCustomer   = New(http.StatusUnauthorized, "User is not a customer")
	ErrUserNotManager    = New(http.StatusUnauthorized, "User is not an admin or manager")
	ErrUserInvalidDate   = New(http.StatusBadRequest, "Birthdate cannot be after the current date")
)

var ErrValidation = New(http.StatusUnprocessableEntity, "The parameters are not formatted properly")

// Status reports the HTTP status for err, falling back to 500 for errors
// outside the taxonomy.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}
