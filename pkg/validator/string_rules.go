package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required is violated when the value is empty after trimming whitespace.
func Required(message string) Rule {
	return Rule{Kind: KindRequired, Message: message}
}

// MinLength is violated when a non-empty value has fewer than n characters.
func MinLength(n int, message string) Rule {
	return Rule{Kind: KindMinLength, Length: n, Message: message}
}

// MaxLength is violated when a value has more than n characters.
func MaxLength(n int, message string) Rule {
	return Rule{Kind: KindMaxLength, Length: n, Message: message}
}

// MaxBytes is violated when a value is longer than n bytes in UTF-8.
// Use it where a downstream limit is defined in bytes, such as bcrypt's 72.
func MaxBytes(n int, message string) Rule {
	return Rule{Kind: KindMaxBytes, Length: n, Message: message}
}

// Validate reports a malformed rule definition.
func (r Rule) Validate() error {
	switch r.Kind {
	case KindRequired, KindChecksum:
		return nil
	case KindMinLength, KindMaxLength, KindMaxBytes:
		if r.Length < 0 {
			return fmt.Errorf("%w: %s bound must be >= 0, got %d", ErrInvalidRule, r.Kind, r.Length)
		}
		return nil
	case KindEqualsField:
		if r.Other == "" {
			return fmt.Errorf("%w: %s needs a sibling field", ErrInvalidRule, r.Kind)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
	}
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// length counts characters, so accented names are not over-counted.
func length(value string) int {
	return utf8.RuneCountInString(value)
}
