package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownKind is returned when a rule carries a kind the interpreter does not know.
	ErrUnknownKind = errors.New("unknown rule kind")

	// ErrInvalidRule is returned when a rule is missing its parameter.
	ErrInvalidRule = errors.New("invalid rule definition")
)
