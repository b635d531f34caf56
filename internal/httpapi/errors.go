package httpapi

import "errors"

var (
	ErrInvalidBody     = errors.New("invalid request body")
	ErrNoScreenOutput  = errors.New("request context carries no screen output")
	ErrSessionNotFound = errors.New("registration session not found")
)
