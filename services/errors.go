package services

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrImplausibleProfile = errors.New("implausible health profile")
)
