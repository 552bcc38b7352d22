package services

import "errors"

// Errors returned (wrapped) by the services. Handlers map them to status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrStoreExists        = errors.New("store already exists")
	ErrItemExists         = errors.New("item already exists")
	ErrUserExists         = errors.New("user already exists")
	ErrPasswordTooLong    = errors.New("password too long")
	ErrUnknownStore       = errors.New("store does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
