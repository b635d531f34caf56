package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a family of validation rule.
// A field's violations are reported as a set of kinds.
type Kind string

const (
	KindRequired    Kind = "required"
	KindMinLength   Kind = "min_length"
	KindMaxLength   Kind = "max_length"
	KindMaxBytes    Kind = "max_bytes"
	KindChecksum    Kind = "checksum"
	KindEqualsField Kind = "equals_field"
)

// Rule is a declarative constraint on a single field value together with
// the human-readable message shown when it is violated.
// Rules are plain values; they are interpreted by Violated.
type Rule struct {
	Kind    Kind
	Length  int    // bound for KindMinLength, KindMaxLength and KindMaxBytes
	Other   string // sibling field for KindEqualsField
	Message string
}

// Values gives read access to sibling field values.
// A missing key reads as the empty string.
type Values map[string]string

// Get returns the value stored for field or "" when absent.
func (v Values) Get(field string) string {
	if v == nil {
		return ""
	}
	return v[field]
}

// References reports the sibling field a rule reads, if any.
func (r Rule) References() (string, bool) {
	if r.Kind == KindEqualsField && r.Other != "" {
		return r.Other, true
	}
	return "", false
}

// Violated reports whether value breaks the rule.
// Length and checksum rules only apply to non-empty values; presence is
// the job of KindRequired. Unknown kinds never report a violation.
func (r Rule) Violated(value string, siblings Values) bool {
	switch r.Kind {
	case KindRequired:
		return isBlank(value)
	case KindMinLength:
		return value != "" && length(value) < r.Length
	case KindMaxLength:
		return value != "" && length(value) > r.Length
	case KindMaxBytes:
		return len(value) > r.Length
	case KindChecksum:
		return value != "" && !ValidCPF(value)
	case KindEqualsField:
		return value != siblings.Get(r.Other)
	default:
		return false
	}
}

// Evaluate runs rules in order against value and returns the violated kinds.
// Each kind appears at most once. The result is nil when nothing is violated.
func Evaluate(rules []Rule, value string, siblings Values) []Kind {
	var kinds []Kind
	for _, rule := range rules {
		if !rule.Violated(value, siblings) {
			continue
		}
		if !containsKind(kinds, rule.Kind) {
			kinds = append(kinds, rule.Kind)
		}
	}
	return kinds
}

// Check evaluates rules for a named field and returns one ValidationError
// per violated rule, carrying the rule's message.
func Check(field string, rules []Rule, value string, siblings Values) ValidationErrors {
	var errs ValidationErrors
	for _, rule := range rules {
		if rule.Violated(value, siblings) && !errs.HasKind(field, rule.Kind) {
			errs.Add(ValidationError{Field: field, Kind: rule.Kind, Message: rule.Message})
		}
	}
	return errs
}

// ValidationError represents a single violated rule on a field.
type ValidationError struct {
	Field   string
	Kind    Kind
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) HasKind(field string, kind Kind) bool {
	for _, err := range ve {
		if err.Field == field && err.Kind == kind {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field, in insertion order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Messages flattens every message, field order preserved.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Message)
	}
	return messages
}

// Details groups messages by field, the shape used in API error payloads.
func (ve ValidationErrors) Details() map[string][]string {
	details := make(map[string][]string, len(ve))
	for _, err := range ve {
		details[err.Field] = append(details[err.Field], err.Message)
	}
	return details
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

func containsKind(kinds []Kind, kind Kind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
