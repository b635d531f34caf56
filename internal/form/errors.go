package form

import "errors"

var (
	ErrUnknownField   = errors.New("unknown form field")
	ErrDuplicateField = errors.New("duplicate form field")
	ErrEmptyFieldName = errors.New("form field name cannot be empty")
)
