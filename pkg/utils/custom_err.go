package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
	ErrUpstreamFailure      = errors.New("upstream AI failure")
	ErrTourNotFound         = errors.New("tour not found")
	ErrPlaceNotFound        = errors.New("place not found")
	ErrPostNotFound         = errors.New("post not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrForbidden            = errors.New("forbidden")
	ErrDatabaseError        = errors.New("database error")
)
