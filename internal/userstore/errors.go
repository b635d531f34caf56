package userstore

import "errors"

var (
	ErrHashPassword  = errors.New("failed to hash password")
	ErrEncodeRecord  = errors.New("failed to encode user record")
	ErrDecodeRecord  = errors.New("failed to decode user record")
	ErrInvalidRecord = errors.New("user record is missing its national id")

	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)
