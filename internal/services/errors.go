package services

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("username or password wrong")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUserNotFound       = errors.New("user is not found")
	ErrContactNotFound    = errors.New("contact is not found")
	ErrAddressNotFound    = errors.New("address is not found")
)
