package identity

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid login or password")
	ErrDuplicateLogin      = errors.New("login is already taken")
	ErrInvalidPhoneNumber  = errors.New("phone number must be exactly 10 digits")
	ErrInvalidRole         = errors.New("role must be one of customer, driver, manager")
	ErrInvalidPassword     = errors.New("password must be 1 to 72 bytes")
	ErrInvalidProfileField = errors.New("profile field must be one of favoriteItem, phoneNumber, password")
	ErrForbidden           = errors.New("forbidden")
	ErrUserNotFound        = errors.New("user not found")
)
