package registration

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable wraps transport failures from the user store.
	ErrStoreUnavailable = errors.New("user store unavailable")

	// ErrSaveRejected is returned when the store declined the record.
	ErrSaveRejected = errors.New("user store rejected the record")
)

// ParseError reports a field value that could not be converted for the record.
type ParseError struct {
	Field string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse field %s: %q", e.Field, e.Value)
}

// IsParseError reports whether err wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
